package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	domainbooking "stayhub/internal/domain/booking"
	domainhotel "stayhub/internal/domain/hotel"
	"stayhub/internal/domain/shared/stay"
)

type BookingRepository struct {
	col *mongo.Collection
}

func NewBookingRepository(db *mongo.Database) *BookingRepository {
	return &BookingRepository{col: db.Collection("bookings")}
}

func (r *BookingRepository) ByID(ctx context.Context, id domainbooking.BookingID) (*domainbooking.Booking, error) {
	var doc bookingDocument
	if err := r.col.FindOne(ctx, bson.M{"_id": string(id)}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domainbooking.ErrNotFound
		}
		return nil, err
	}
	return doc.toAggregate(), nil
}

func (r *BookingRepository) Insert(ctx context.Context, b *domainbooking.Booking) error {
	_, err := r.col.InsertOne(ctx, newBookingDocument(b))
	return err
}

// Save replaces the document conditional on the stored status, the same
// filtered-write discipline the hotel repository uses for availability.
func (r *BookingRepository) Save(ctx context.Context, b *domainbooking.Booking, from domainbooking.Status) error {
	doc := newBookingDocument(b)
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": doc.ID, "status": string(from)}, doc)
	if err != nil {
		return err
	}
	if res.MatchedCount > 0 {
		return nil
	}
	if err := r.col.FindOne(ctx, bson.M{"_id": doc.ID}).Err(); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domainbooking.ErrNotFound
		}
		return err
	}
	return domainbooking.ErrStatusConflict
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID string) ([]*domainbooking.Booking, error) {
	return r.list(ctx, bson.M{"user_id": userID})
}

func (r *BookingRepository) ListAll(ctx context.Context) ([]*domainbooking.Booking, error) {
	return r.list(ctx, bson.M{})
}

func (r *BookingRepository) list(ctx context.Context, filter bson.M) ([]*domainbooking.Booking, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []*domainbooking.Booking
	for cursor.Next(ctx) {
		var doc bookingDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		records = append(records, doc.toAggregate())
	}
	return records, cursor.Err()
}

var _ domainbooking.Repository = (*BookingRepository)(nil)

type bookingDocument struct {
	ID              string            `bson:"_id"`
	Reference       string            `bson:"reference"`
	UserID          string            `bson:"user_id"`
	HotelID         string            `bson:"hotel_id"`
	RoomType        string            `bson:"room_type"`
	CheckIn         int64             `bson:"check_in"`
	CheckOut        int64             `bson:"check_out"`
	Guests          int               `bson:"guests"`
	Rooms           int               `bson:"rooms"`
	TotalNights     int               `bson:"total_nights"`
	BaseAmount      int64             `bson:"base_amount"`
	Tax             int64             `bson:"tax"`
	Amount          int64             `bson:"amount"`
	Guest           guestInfoDocument `bson:"guest_info"`
	SpecialRequests string            `bson:"special_requests"`
	Status          string            `bson:"status"`
	CreatedAt       int64             `bson:"created_at"`
	UpdatedAt       int64             `bson:"updated_at"`
}

type guestInfoDocument struct {
	FirstName string `bson:"first_name"`
	LastName  string `bson:"last_name"`
	Email     string `bson:"email"`
	Phone     string `bson:"phone"`
}

func newBookingDocument(b *domainbooking.Booking) bookingDocument {
	return bookingDocument{
		ID:          string(b.ID),
		Reference:   b.Reference,
		UserID:      b.UserID,
		HotelID:     string(b.HotelID),
		RoomType:    b.RoomType,
		CheckIn:     b.Stay.CheckIn.UnixMilli(),
		CheckOut:    b.Stay.CheckOut.UnixMilli(),
		Guests:      b.Guests,
		Rooms:       b.Rooms,
		TotalNights: b.TotalNights,
		BaseAmount:  b.BaseAmount,
		Tax:         b.Tax,
		Amount:      b.Amount,
		Guest: guestInfoDocument{
			FirstName: b.Guest.FirstName,
			LastName:  b.Guest.LastName,
			Email:     b.Guest.Email,
			Phone:     b.Guest.Phone,
		},
		SpecialRequests: b.SpecialRequests,
		Status:          string(b.Status),
		CreatedAt:       b.CreatedAt.UnixMilli(),
		UpdatedAt:       b.UpdatedAt.UnixMilli(),
	}
}

func (d bookingDocument) toAggregate() *domainbooking.Booking {
	return &domainbooking.Booking{
		ID:        domainbooking.BookingID(d.ID),
		Reference: d.Reference,
		UserID:    d.UserID,
		HotelID:   domainhotel.HotelID(d.HotelID),
		RoomType:  d.RoomType,
		Stay: stay.Range{
			CheckIn:  timestampToTime(d.CheckIn),
			CheckOut: timestampToTime(d.CheckOut),
		},
		Guests:      d.Guests,
		Rooms:       d.Rooms,
		TotalNights: d.TotalNights,
		BaseAmount:  d.BaseAmount,
		Tax:         d.Tax,
		Amount:      d.Amount,
		Guest: domainbooking.GuestInfo{
			FirstName: d.Guest.FirstName,
			LastName:  d.Guest.LastName,
			Email:     d.Guest.Email,
			Phone:     d.Guest.Phone,
		},
		SpecialRequests: d.SpecialRequests,
		Status:          domainbooking.Status(d.Status),
		CreatedAt:       timestampToTime(d.CreatedAt),
		UpdatedAt:       timestampToTime(d.UpdatedAt),
	}
}
