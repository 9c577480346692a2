package booking

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"stayhub/internal/app/dto"
	"stayhub/internal/app/policies"
	domainbooking "stayhub/internal/domain/booking"
	domainhotel "stayhub/internal/domain/hotel"
)

type UpdateBookingCommand struct {
	BookingID       string
	Status          string
	Guest           *domainbooking.GuestInfo
	SpecialRequests *string
}

type UpdateBookingResult struct {
	Booking dto.BookingDetail
}

type UpdateBookingHandler struct {
	Hotels   domainhotel.Repository
	Bookings domainbooking.Repository
	Events   policies.EventPublisher
	Logger   *slog.Logger
	// RestockOnCancel returns reserved rooms to the hotel when a booking is
	// cancelled. The original system never restocked; the behavior is kept
	// explicit and switchable.
	RestockOnCancel bool
	Now             func() time.Time
}

func (h *UpdateBookingHandler) Handle(ctx context.Context, cmd UpdateBookingCommand) (*UpdateBookingResult, error) {
	if strings.TrimSpace(cmd.BookingID) == "" {
		return nil, domainbooking.ValidationError{Field: "booking id"}
	}
	record, err := h.Bookings.ByID(ctx, domainbooking.BookingID(cmd.BookingID))
	if err != nil {
		return nil, err
	}
	now := h.now()

	previous := record.Status
	if strings.TrimSpace(cmd.Status) != "" {
		next, err := domainbooking.ParseStatus(cmd.Status)
		if err != nil {
			return nil, err
		}
		if err := record.TransitionTo(next, now); err != nil {
			return nil, err
		}
	}

	if cmd.Guest != nil {
		if err := cmd.Guest.Validate(); err != nil {
			return nil, err
		}
		record.Guest = cmd.Guest.Normalized()
	}
	if cmd.SpecialRequests != nil {
		record.SpecialRequests = strings.TrimSpace(*cmd.SpecialRequests)
	}
	record.UpdatedAt = now

	// The save is conditional on the status read above, so a transition and
	// its restock are applied at most once even under concurrent updates.
	if err := h.Bookings.Save(ctx, record, previous); err != nil {
		return nil, err
	}

	restocked := false
	if record.Status == domainbooking.StatusCancelled && previous != record.Status && h.RestockOnCancel {
		if err := h.Hotels.Restock(ctx, record.HotelID, record.RoomType, record.Rooms); err != nil {
			// The cancellation itself stands; the counter is reconciled
			// manually when the hotel record is gone or inconsistent.
			if h.Logger != nil {
				h.Logger.Warn("restock on cancellation failed", "booking_id", record.ID, "hotel_id", record.HotelID, "error", err)
			}
		} else {
			restocked = true
		}
	}

	if record.Status != previous {
		h.publishStatusChanged(ctx, record, previous, restocked)
	}

	hotelRecord, err := h.Hotels.ByID(ctx, record.HotelID)
	if err != nil {
		hotelRecord = nil
	}
	return &UpdateBookingResult{Booking: dto.MapBookingDetail(record, hotelRecord)}, nil
}

func (h *UpdateBookingHandler) publishStatusChanged(ctx context.Context, b *domainbooking.Booking, from domainbooking.Status, restocked bool) {
	if h.Events == nil {
		return
	}
	event := domainbooking.BookingStatusChanged{
		BookingID: b.ID,
		HotelID:   b.HotelID,
		From:      from,
		To:        b.Status,
		Restocked: restocked,
		At:        b.UpdatedAt,
	}
	payload, err := json.Marshal(event)
	if err == nil {
		err = h.Events.Publish(ctx, event.Name(), string(b.HotelID), payload)
	}
	if err != nil && h.Logger != nil {
		h.Logger.Warn("booking status event not published", "booking_id", b.ID, "error", err)
	}
}

func (h *UpdateBookingHandler) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now().UTC()
}
