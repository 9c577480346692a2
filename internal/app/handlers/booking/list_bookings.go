package booking

import (
	"context"
	"errors"
	"log/slog"

	"stayhub/internal/app/dto"
	domainbooking "stayhub/internal/domain/booking"
	domainhotel "stayhub/internal/domain/hotel"
)

type ListUserBookingsQuery struct {
	UserID string
}

type ListAllBookingsQuery struct{}

type ListBookingsHandler struct {
	Hotels   domainhotel.Repository
	Bookings domainbooking.Repository
	Logger   *slog.Logger
}

// HandleForUser lists a user's bookings ordered by recency, each carrying a
// snapshot of the hotel it references. A booking whose hotel was deleted is
// still returned, with an empty snapshot.
func (h *ListBookingsHandler) HandleForUser(ctx context.Context, q ListUserBookingsQuery) (dto.BookingCollection, error) {
	if q.UserID == "" {
		return dto.BookingCollection{}, domainbooking.ValidationError{Field: "user id"}
	}
	records, err := h.Bookings.ListByUser(ctx, q.UserID)
	if err != nil {
		return dto.BookingCollection{}, err
	}
	return h.collect(ctx, records), nil
}

// HandleAll lists every booking for the manager dashboard.
func (h *ListBookingsHandler) HandleAll(ctx context.Context, _ ListAllBookingsQuery) (dto.BookingCollection, error) {
	records, err := h.Bookings.ListAll(ctx)
	if err != nil {
		return dto.BookingCollection{}, err
	}
	return h.collect(ctx, records), nil
}

func (h *ListBookingsHandler) collect(ctx context.Context, records []*domainbooking.Booking) dto.BookingCollection {
	cache := make(map[domainhotel.HotelID]*domainhotel.Hotel)
	items := make([]dto.BookingDetail, 0, len(records))
	for _, record := range records {
		hotelRecord, err := h.loadHotel(ctx, record.HotelID, cache)
		if err != nil && !errors.Is(err, domainhotel.ErrNotFound) && h.Logger != nil {
			h.Logger.Warn("hotel snapshot unavailable", "booking_id", record.ID, "hotel_id", record.HotelID, "error", err)
		}
		items = append(items, dto.MapBookingDetail(record, hotelRecord))
	}
	return dto.BookingCollection{Items: items}
}

func (h *ListBookingsHandler) loadHotel(ctx context.Context, id domainhotel.HotelID, cache map[domainhotel.HotelID]*domainhotel.Hotel) (*domainhotel.Hotel, error) {
	if cached, ok := cache[id]; ok {
		return cached, nil
	}
	record, err := h.Hotels.ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	cache[id] = record
	return record, nil
}
