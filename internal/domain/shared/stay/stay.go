package stay

import (
	"errors"
	"math"
	"time"
)

var ErrInvalidRange = errors.New("stay: check-out must be after check-in")

// Range represents a half-open interval [checkIn, checkOut).
type Range struct {
	CheckIn  time.Time
	CheckOut time.Time
}

func New(checkIn, checkOut time.Time) (Range, error) {
	r := Range{CheckIn: checkIn.UTC(), CheckOut: checkOut.UTC()}
	if err := r.Validate(); err != nil {
		return Range{}, err
	}
	return r, nil
}

func (r Range) Validate() error {
	if r.CheckIn.IsZero() || r.CheckOut.IsZero() {
		return ErrInvalidRange
	}
	if !r.CheckOut.After(r.CheckIn) {
		return ErrInvalidRange
	}
	return nil
}

// Nights is the number of nights billed for the stay, rounded up so that
// any partial day counts as a full night.
func (r Range) Nights() int {
	return int(math.Ceil(r.CheckOut.Sub(r.CheckIn).Hours() / 24))
}

// BeginsBefore reports whether the stay starts before the given calendar
// day. Time of day is ignored on both sides.
func (r Range) BeginsBefore(day time.Time) bool {
	day = day.UTC()
	today := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	checkIn := time.Date(r.CheckIn.Year(), r.CheckIn.Month(), r.CheckIn.Day(), 0, 0, 0, 0, time.UTC)
	return checkIn.Before(today)
}

func (r Range) Overlaps(other Range) bool {
	return r.CheckIn.Before(other.CheckOut) && other.CheckIn.Before(r.CheckOut)
}
