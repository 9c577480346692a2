package hotel

import (
	"context"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"stayhub/internal/app/dto"
	domainhotel "stayhub/internal/domain/hotel"
)

type GetHotelQuery struct {
	IDOrSlug string
}

type DeleteHotelCommand struct {
	IDOrSlug string
}

type AddHotelCommand struct {
	ManagerID    string
	Name         string
	Description  string
	Location     string
	City         string
	Country      string
	Category     string
	Rating       float64
	Images       []string
	Amenities    []string
	RoomTypes    []domainhotel.RoomType
	CheckInTime  string
	CheckOutTime string
}

type ListHotelsQuery struct {
	Filter domainhotel.Filter
}

type Handler struct {
	Hotels domainhotel.Repository
	Logger *slog.Logger
	Now    func() time.Time
}

func (h *Handler) Get(ctx context.Context, q GetHotelQuery) (dto.HotelDetail, error) {
	record, err := Resolve(ctx, h.Hotels, q.IDOrSlug)
	if err != nil {
		return dto.HotelDetail{}, err
	}
	return dto.MapHotelDetail(record), nil
}

// Delete resolves the hotel with the same id-or-slug strategy as Get and
// removes the matched record.
func (h *Handler) Delete(ctx context.Context, cmd DeleteHotelCommand) error {
	record, err := Resolve(ctx, h.Hotels, cmd.IDOrSlug)
	if err != nil {
		return err
	}
	if err := h.Hotels.Delete(ctx, record.ID); err != nil {
		return err
	}
	if h.Logger != nil {
		h.Logger.Info("hotel deleted", "hotel_id", record.ID, "name", record.Name)
	}
	return nil
}

func (h *Handler) Add(ctx context.Context, cmd AddHotelCommand) (dto.HotelDetail, error) {
	record, err := domainhotel.New(domainhotel.CreateParams{
		ID:           domainhotel.HotelID(primitive.NewObjectID().Hex()),
		ManagerID:    cmd.ManagerID,
		Name:         cmd.Name,
		Description:  cmd.Description,
		Location:     cmd.Location,
		City:         cmd.City,
		Country:      cmd.Country,
		Category:     cmd.Category,
		Rating:       cmd.Rating,
		Images:       cmd.Images,
		Amenities:    cmd.Amenities,
		RoomTypes:    cmd.RoomTypes,
		CheckInTime:  cmd.CheckInTime,
		CheckOutTime: cmd.CheckOutTime,
		Now:          h.now(),
	})
	if err != nil {
		return dto.HotelDetail{}, err
	}
	if err := h.Hotels.Save(ctx, record); err != nil {
		return dto.HotelDetail{}, err
	}
	if h.Logger != nil {
		h.Logger.Info("hotel added", "hotel_id", record.ID, "name", record.Name, "slug", record.Slug)
	}
	return dto.MapHotelDetail(record), nil
}

func (h *Handler) List(ctx context.Context, q ListHotelsQuery) (dto.HotelCollection, error) {
	records, err := h.Hotels.List(ctx, q.Filter)
	if err != nil {
		return dto.HotelCollection{}, err
	}
	items := make([]dto.HotelDetail, 0, len(records))
	for _, record := range records {
		items = append(items, dto.MapHotelDetail(record))
	}
	return dto.HotelCollection{Items: items}, nil
}

func (h *Handler) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now().UTC()
}
