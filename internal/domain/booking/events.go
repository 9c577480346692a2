package booking

import (
	"time"

	"stayhub/internal/domain/hotel"
)

// BookingCreated is published after a booking and its availability
// reservation are both persisted.
type BookingCreated struct {
	BookingID BookingID     `json:"booking_id"`
	Reference string        `json:"reference"`
	UserID    string        `json:"user_id"`
	HotelID   hotel.HotelID `json:"hotel_id"`
	RoomType  string        `json:"room_type"`
	CheckIn   time.Time     `json:"check_in"`
	CheckOut  time.Time     `json:"check_out"`
	Rooms     int           `json:"rooms"`
	Amount    int64         `json:"amount"`
	At        time.Time     `json:"at"`
}

func (BookingCreated) Name() string { return "booking.created" }

// BookingStatusChanged is published when a booking moves through its
// lifecycle.
type BookingStatusChanged struct {
	BookingID BookingID     `json:"booking_id"`
	HotelID   hotel.HotelID `json:"hotel_id"`
	From      Status        `json:"from"`
	To        Status        `json:"to"`
	Restocked bool          `json:"restocked"`
	At        time.Time     `json:"at"`
}

func (BookingStatusChanged) Name() string { return "booking.status_changed" }
