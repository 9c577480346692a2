package booking

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"stayhub/internal/domain/hotel"
	"stayhub/internal/domain/shared/stay"
)

var (
	ErrNotFound      = errors.New("booking: not found")
	ErrCheckInPast   = errors.New("booking: check-in date is in the past")
	ErrInvalidGuests = errors.New("booking: guests count must be positive")
	ErrInvalidRooms  = errors.New("booking: rooms count must be positive")
)

// TaxRatePercent is the fixed surcharge applied on top of the base amount.
const TaxRatePercent = 10

// ValidationError reports a missing or blank required input field.
type ValidationError struct {
	Field string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}

type BookingID string

type GuestInfo struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
}

// Normalized trims every field and lower-cases the email address.
func (g GuestInfo) Normalized() GuestInfo {
	return GuestInfo{
		FirstName: strings.TrimSpace(g.FirstName),
		LastName:  strings.TrimSpace(g.LastName),
		Email:     strings.ToLower(strings.TrimSpace(g.Email)),
		Phone:     strings.TrimSpace(g.Phone),
	}
}

func (g GuestInfo) Validate() error {
	fields := []struct {
		name  string
		value string
	}{
		{"guest first name", g.FirstName},
		{"guest last name", g.LastName},
		{"guest email", g.Email},
		{"guest phone", g.Phone},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return ValidationError{Field: f.name}
		}
	}
	return nil
}

// Charges is the deterministic price breakdown for a stay.
type Charges struct {
	Nights int
	Base   int64
	Tax    int64
	Total  int64
}

// Quote computes charges from the nightly price: base = price*nights*rooms,
// tax = base rounded at the fixed rate, total = base + tax.
func Quote(pricePerNight int64, nights, rooms int) Charges {
	base := pricePerNight * int64(nights) * int64(rooms)
	tax := int64(math.Round(float64(base) * float64(TaxRatePercent) / 100))
	return Charges{Nights: nights, Base: base, Tax: tax, Total: base + tax}
}

type Booking struct {
	ID              BookingID
	Reference       string
	UserID          string
	HotelID         hotel.HotelID
	RoomType        string
	Stay            stay.Range
	Guests          int
	Rooms           int
	TotalNights     int
	BaseAmount      int64
	Tax             int64
	Amount          int64
	Guest           GuestInfo
	SpecialRequests string
	Status          Status
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type CreateParams struct {
	ID              BookingID
	UserID          string
	HotelID         hotel.HotelID
	RoomType        string
	Stay            stay.Range
	Guests          int
	Rooms           int
	PricePerNight   int64
	Guest           GuestInfo
	SpecialRequests string
	Now             time.Time
}

func New(params CreateParams) (*Booking, error) {
	if strings.TrimSpace(params.UserID) == "" {
		return nil, ValidationError{Field: "user id"}
	}
	if strings.TrimSpace(string(params.HotelID)) == "" {
		return nil, ValidationError{Field: "hotel id"}
	}
	if strings.TrimSpace(params.RoomType) == "" {
		return nil, ValidationError{Field: "room type"}
	}
	if params.Guests <= 0 {
		return nil, ErrInvalidGuests
	}
	if params.Rooms <= 0 {
		return nil, ErrInvalidRooms
	}
	if err := params.Guest.Validate(); err != nil {
		return nil, err
	}
	if err := params.Stay.Validate(); err != nil {
		return nil, err
	}
	now := params.Now.UTC()
	if params.Stay.BeginsBefore(now) {
		return nil, ErrCheckInPast
	}
	nights := params.Stay.Nights()
	if nights <= 0 {
		return nil, stay.ErrInvalidRange
	}
	charges := Quote(params.PricePerNight, nights, params.Rooms)
	return &Booking{
		ID:              params.ID,
		Reference:       NewReference(now),
		UserID:          strings.TrimSpace(params.UserID),
		HotelID:         params.HotelID,
		RoomType:        params.RoomType,
		Stay:            params.Stay,
		Guests:          params.Guests,
		Rooms:           params.Rooms,
		TotalNights:     charges.Nights,
		BaseAmount:      charges.Base,
		Tax:             charges.Tax,
		Amount:          charges.Total,
		Guest:           params.Guest.Normalized(),
		SpecialRequests: strings.TrimSpace(params.SpecialRequests),
		Status:          StatusConfirmed,
		CreatedAt:       now,
		UpdatedAt:       now,
	}, nil
}

// NewReference builds the human-readable booking reference shown to guests:
// a date stamp plus a random suffix, distinct from the storage id.
func NewReference(now time.Time) string {
	suffix := make([]byte, 3)
	if _, err := rand.Read(suffix); err != nil {
		return fmt.Sprintf("BK-%s-%06d", now.UTC().Format("20060102"), now.UnixNano()%1_000_000)
	}
	return fmt.Sprintf("BK-%s-%s", now.UTC().Format("20060102"), strings.ToUpper(hex.EncodeToString(suffix)))
}

// TransitionTo moves the booking through its status lifecycle, rejecting
// transitions the lifecycle does not allow.
func (b *Booking) TransitionTo(next Status, now time.Time) error {
	if next == b.Status {
		return nil
	}
	if !b.Status.CanTransitionTo(next) {
		return TransitionError{From: b.Status, To: next}
	}
	b.Status = next
	b.UpdatedAt = now.UTC()
	return nil
}

func (b *Booking) Clone() *Booking {
	if b == nil {
		return nil
	}
	clone := *b
	return &clone
}

type Repository interface {
	ByID(ctx context.Context, id BookingID) (*Booking, error)
	Insert(ctx context.Context, b *Booking) error
	// Save replaces the record only while its stored status still matches
	// from, so a status transition can never be applied twice. Returns
	// ErrStatusConflict when another writer got there first.
	Save(ctx context.Context, b *Booking, from Status) error
	// ListByUser returns the user's bookings ordered by creation time,
	// most recent first.
	ListByUser(ctx context.Context, userID string) ([]*Booking, error)
	ListAll(ctx context.Context) ([]*Booking, error)
}
