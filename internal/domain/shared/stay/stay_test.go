package stay

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNew_RejectsInvertedRange(t *testing.T) {
	_, err := New(date(2026, 10, 5), date(2026, 10, 3))
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = New(date(2026, 10, 5), date(2026, 10, 5))
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = New(time.Time{}, date(2026, 10, 5))
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestNights_RoundsPartialDaysUp(t *testing.T) {
	r, err := New(date(2026, 10, 1), date(2026, 10, 4))
	assert.NoError(t, err)
	assert.Equal(t, 3, r.Nights())

	late := time.Date(2026, 10, 4, 11, 0, 0, 0, time.UTC)
	r, err = New(date(2026, 10, 1), late)
	assert.NoError(t, err)
	assert.Equal(t, 4, r.Nights())

	r, err = New(date(2026, 10, 1), date(2026, 10, 2))
	assert.NoError(t, err)
	assert.Equal(t, 1, r.Nights())
}

func TestBeginsBefore_IgnoresTimeOfDay(t *testing.T) {
	r, err := New(date(2026, 10, 1), date(2026, 10, 3))
	assert.NoError(t, err)

	lateSameDay := time.Date(2026, 10, 1, 23, 30, 0, 0, time.UTC)
	assert.False(t, r.BeginsBefore(lateSameDay))
	assert.False(t, r.BeginsBefore(date(2026, 9, 30)))
	assert.True(t, r.BeginsBefore(date(2026, 10, 2)))
}

func TestOverlaps(t *testing.T) {
	a, _ := New(date(2026, 10, 1), date(2026, 10, 5))
	b, _ := New(date(2026, 10, 4), date(2026, 10, 8))
	c, _ := New(date(2026, 10, 5), date(2026, 10, 8))

	assert.True(t, a.Overlaps(b))
	assert.True(t, b.Overlaps(a))
	// Half-open intervals: checkout day equals next check-in day.
	assert.False(t, a.Overlaps(c))
}
