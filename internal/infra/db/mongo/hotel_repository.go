package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	domainhotel "stayhub/internal/domain/hotel"
)

type HotelRepository struct {
	col *mongo.Collection
}

func NewHotelRepository(db *mongo.Database) *HotelRepository {
	return &HotelRepository{col: db.Collection("hotels")}
}

func (r *HotelRepository) ByID(ctx context.Context, id domainhotel.HotelID) (*domainhotel.Hotel, error) {
	return r.findOne(ctx, bson.M{"_id": string(id)})
}

func (r *HotelRepository) BySlug(ctx context.Context, slug string) (*domainhotel.Hotel, error) {
	return r.findOne(ctx, bson.M{"slug": slug})
}

// ByNameLike performs a case-insensitive substring match on the hotel name,
// the legacy fallback for records created before the slug field existed.
func (r *HotelRepository) ByNameLike(ctx context.Context, name string) (*domainhotel.Hotel, error) {
	if name == "" {
		return nil, domainhotel.ErrNotFound
	}
	pattern := regexp.QuoteMeta(name)
	return r.findOne(ctx, bson.M{"name": bson.M{"$regex": pattern, "$options": "i"}})
}

func (r *HotelRepository) findOne(ctx context.Context, filter bson.M) (*domainhotel.Hotel, error) {
	var doc hotelDocument
	if err := r.col.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domainhotel.ErrNotFound
		}
		return nil, err
	}
	return doc.toAggregate(), nil
}

func (r *HotelRepository) List(ctx context.Context, filter domainhotel.Filter) ([]*domainhotel.Hotel, error) {
	query := bson.M{}
	if filter.City != "" {
		query["city"] = caseInsensitiveEquals(filter.City)
	}
	if filter.Country != "" {
		query["country"] = caseInsensitiveEquals(filter.Country)
	}
	if filter.Category != "" {
		query["category"] = caseInsensitiveEquals(filter.Category)
	}
	if filter.ManagerID != "" {
		query["manager_id"] = filter.ManagerID
	}
	if filter.MinRating > 0 {
		query["rating"] = bson.M{"$gte": filter.MinRating}
	}
	if filter.MaxPrice > 0 {
		query["room_types"] = bson.M{"$elemMatch": bson.M{"price": bson.M{"$lte": filter.MaxPrice}}}
	}
	opts := options.Find().SetSort(bson.D{{Key: "rating", Value: -1}, {Key: "name", Value: 1}})
	cursor, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []*domainhotel.Hotel
	for cursor.Next(ctx) {
		var doc hotelDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		records = append(records, doc.toAggregate())
	}
	return records, cursor.Err()
}

func (r *HotelRepository) Save(ctx context.Context, record *domainhotel.Hotel) error {
	doc := newHotelDocument(record)
	opts := options.Replace().SetUpsert(true)
	_, err := r.col.ReplaceOne(ctx, bson.M{"_id": doc.ID}, doc, opts)
	return err
}

func (r *HotelRepository) Delete(ctx context.Context, id domainhotel.HotelID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": string(id)})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domainhotel.ErrNotFound
	}
	return nil
}

func (r *HotelRepository) ReplaceAll(ctx context.Context, records []*domainhotel.Hotel) (int, error) {
	if _, err := r.col.DeleteMany(ctx, bson.M{}); err != nil {
		return 0, fmt.Errorf("clear hotels: %w", err)
	}
	if len(records) == 0 {
		return 0, nil
	}
	docs := make([]any, 0, len(records))
	for _, record := range records {
		docs = append(docs, newHotelDocument(record))
	}
	res, err := r.col.InsertMany(ctx, docs)
	if err != nil {
		return 0, fmt.Errorf("insert hotels: %w", err)
	}
	return len(res.InsertedIDs), nil
}

// Reserve decrements the room type's availability with a single conditional
// update, so concurrent reservations can never drive the counter negative.
// On a miss it re-reads the record to report which precondition failed.
func (r *HotelRepository) Reserve(ctx context.Context, id domainhotel.HotelID, roomType string, rooms int) error {
	filter := bson.M{
		"_id": string(id),
		"room_types": bson.M{"$elemMatch": bson.M{
			"type":      roomType,
			"available": bson.M{"$gte": rooms},
		}},
	}
	update := bson.M{
		"$inc": bson.M{"room_types.$.available": -rooms},
		"$set": bson.M{"updated_at": time.Now().UTC().UnixMilli()},
	}
	res, err := r.col.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount > 0 {
		return nil
	}

	record, err := r.ByID(ctx, id)
	if err != nil {
		return err
	}
	rt, ok := record.RoomTypeNamed(roomType)
	if !ok {
		return domainhotel.ErrRoomTypeNotFound
	}
	return domainhotel.CapacityError{RoomType: roomType, Requested: rooms, Available: rt.Available}
}

func (r *HotelRepository) Restock(ctx context.Context, id domainhotel.HotelID, roomType string, rooms int) error {
	filter := bson.M{
		"_id":        string(id),
		"room_types": bson.M{"$elemMatch": bson.M{"type": roomType}},
	}
	update := bson.M{
		"$inc": bson.M{"room_types.$.available": rooms},
		"$set": bson.M{"updated_at": time.Now().UTC().UnixMilli()},
	}
	res, err := r.col.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		if _, err := r.ByID(ctx, id); err != nil {
			return err
		}
		return domainhotel.ErrRoomTypeNotFound
	}
	return nil
}

func caseInsensitiveEquals(value string) bson.M {
	return bson.M{"$regex": "^" + regexp.QuoteMeta(value) + "$", "$options": "i"}
}

var _ domainhotel.Repository = (*HotelRepository)(nil)

type hotelDocument struct {
	ID           string             `bson:"_id"`
	ManagerID    string             `bson:"manager_id"`
	Name         string             `bson:"name"`
	Slug         string             `bson:"slug"`
	Description  string             `bson:"description"`
	Location     string             `bson:"location"`
	City         string             `bson:"city"`
	Country      string             `bson:"country"`
	Category     string             `bson:"category"`
	Rating       float64            `bson:"rating"`
	Images       []string           `bson:"images"`
	Amenities    []string           `bson:"amenities"`
	RoomTypes    []roomTypeDocument `bson:"room_types"`
	CheckInTime  string             `bson:"check_in_time"`
	CheckOutTime string             `bson:"check_out_time"`
	CreatedAt    int64              `bson:"created_at"`
	UpdatedAt    int64              `bson:"updated_at"`
}

type roomTypeDocument struct {
	Type      string `bson:"type"`
	Price     int64  `bson:"price"`
	MaxGuests int    `bson:"max_guests"`
	Available int    `bson:"available"`
}

func newHotelDocument(h *domainhotel.Hotel) hotelDocument {
	roomTypes := make([]roomTypeDocument, 0, len(h.RoomTypes))
	for _, rt := range h.RoomTypes {
		roomTypes = append(roomTypes, roomTypeDocument{
			Type:      rt.Type,
			Price:     rt.Price,
			MaxGuests: rt.MaxGuests,
			Available: rt.Available,
		})
	}
	return hotelDocument{
		ID:           string(h.ID),
		ManagerID:    h.ManagerID,
		Name:         h.Name,
		Slug:         h.Slug,
		Description:  h.Description,
		Location:     h.Location,
		City:         h.City,
		Country:      h.Country,
		Category:     h.Category,
		Rating:       h.Rating,
		Images:       h.Images,
		Amenities:    h.Amenities,
		RoomTypes:    roomTypes,
		CheckInTime:  h.CheckInTime,
		CheckOutTime: h.CheckOutTime,
		CreatedAt:    h.CreatedAt.UnixMilli(),
		UpdatedAt:    h.UpdatedAt.UnixMilli(),
	}
}

func (d hotelDocument) toAggregate() *domainhotel.Hotel {
	roomTypes := make([]domainhotel.RoomType, 0, len(d.RoomTypes))
	for _, rt := range d.RoomTypes {
		roomTypes = append(roomTypes, domainhotel.RoomType{
			Type:      rt.Type,
			Price:     rt.Price,
			MaxGuests: rt.MaxGuests,
			Available: rt.Available,
		})
	}
	return &domainhotel.Hotel{
		ID:           domainhotel.HotelID(d.ID),
		ManagerID:    d.ManagerID,
		Name:         d.Name,
		Slug:         d.Slug,
		Description:  d.Description,
		Location:     d.Location,
		City:         d.City,
		Country:      d.Country,
		Category:     d.Category,
		Rating:       d.Rating,
		Images:       d.Images,
		Amenities:    d.Amenities,
		RoomTypes:    roomTypes,
		CheckInTime:  d.CheckInTime,
		CheckOutTime: d.CheckOutTime,
		CreatedAt:    timestampToTime(d.CreatedAt),
		UpdatedAt:    timestampToTime(d.UpdatedAt),
	}
}

func timestampToTime(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}
