package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"stayhub/internal/app/dto"
	"stayhub/internal/app/policies"
	domainbooking "stayhub/internal/domain/booking"
	domainhotel "stayhub/internal/domain/hotel"
	"stayhub/internal/domain/shared/stay"
)

type CreateBookingCommand struct {
	UserID          string
	HotelID         string
	RoomType        string
	CheckIn         time.Time
	CheckOut        time.Time
	Guests          int
	Rooms           int
	Guest           domainbooking.GuestInfo
	SpecialRequests string
}

type CreateBookingResult struct {
	Booking dto.BookingDetail
}

type CreateBookingHandler struct {
	Hotels   domainhotel.Repository
	Bookings domainbooking.Repository
	Events   policies.EventPublisher
	Logger   *slog.Logger
	Now      func() time.Time
}

// Handle validates the request, reserves capacity atomically, persists the
// booking and publishes a creation event. The reservation happens before the
// insert; a failed insert restocks the rooms so no decrement is left behind
// without a booking record.
func (h *CreateBookingHandler) Handle(ctx context.Context, cmd CreateBookingCommand) (*CreateBookingResult, error) {
	now := h.now()

	stayRange, err := stay.New(cmd.CheckIn, cmd.CheckOut)
	if err != nil {
		return nil, err
	}

	hotelRecord, err := h.Hotels.ByID(ctx, domainhotel.HotelID(cmd.HotelID))
	if err != nil {
		return nil, err
	}
	roomType, ok := hotelRecord.RoomTypeNamed(cmd.RoomType)
	if !ok {
		return nil, domainhotel.ErrRoomTypeNotFound
	}

	record, err := domainbooking.New(domainbooking.CreateParams{
		ID:              domainbooking.BookingID(primitive.NewObjectID().Hex()),
		UserID:          cmd.UserID,
		HotelID:         hotelRecord.ID,
		RoomType:        cmd.RoomType,
		Stay:            stayRange,
		Guests:          cmd.Guests,
		Rooms:           cmd.Rooms,
		PricePerNight:   roomType.Price,
		Guest:           cmd.Guest,
		SpecialRequests: cmd.SpecialRequests,
		Now:             now,
	})
	if err != nil {
		return nil, err
	}

	// Input validation comes first: a sold-out room type must not mask a
	// malformed request.
	if roomType.Available < cmd.Rooms {
		return nil, domainhotel.CapacityError{
			RoomType:  cmd.RoomType,
			Requested: cmd.Rooms,
			Available: roomType.Available,
		}
	}

	// The repository decides acceptance against a consistent snapshot; the
	// availability check above only exists to fail fast with the remaining
	// count before any state is touched.
	if err := h.Hotels.Reserve(ctx, hotelRecord.ID, cmd.RoomType, cmd.Rooms); err != nil {
		return nil, err
	}
	if err := h.Bookings.Insert(ctx, record); err != nil {
		if restockErr := h.Hotels.Restock(ctx, hotelRecord.ID, cmd.RoomType, cmd.Rooms); restockErr != nil && h.Logger != nil {
			h.Logger.Error("restock after failed insert", "hotel_id", hotelRecord.ID, "room_type", cmd.RoomType, "error", restockErr)
		}
		return nil, fmt.Errorf("persist booking: %w", err)
	}

	h.publishCreated(ctx, record)

	if h.Logger != nil {
		h.Logger.Info("booking created",
			"booking_id", record.ID,
			"reference", record.Reference,
			"hotel_id", record.HotelID,
			"room_type", record.RoomType,
			"rooms", record.Rooms,
			"amount", record.Amount,
		)
	}
	return &CreateBookingResult{Booking: dto.MapBookingDetail(record, hotelRecord)}, nil
}

func (h *CreateBookingHandler) publishCreated(ctx context.Context, b *domainbooking.Booking) {
	if h.Events == nil {
		return
	}
	event := domainbooking.BookingCreated{
		BookingID: b.ID,
		Reference: b.Reference,
		UserID:    b.UserID,
		HotelID:   b.HotelID,
		RoomType:  b.RoomType,
		CheckIn:   b.Stay.CheckIn,
		CheckOut:  b.Stay.CheckOut,
		Rooms:     b.Rooms,
		Amount:    b.Amount,
		At:        b.CreatedAt,
	}
	payload, err := json.Marshal(event)
	if err == nil {
		err = h.Events.Publish(ctx, event.Name(), string(b.HotelID), payload)
	}
	if err != nil && h.Logger != nil {
		h.Logger.Warn("booking created event not published", "booking_id", b.ID, "error", err)
	}
}

func (h *CreateBookingHandler) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now().UTC()
}
