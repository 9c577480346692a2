package booking

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stayhub/internal/domain/shared/stay"
)

var testNow = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

func validParams() CreateParams {
	r, _ := stay.New(
		time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 10, 3, 0, 0, 0, 0, time.UTC),
	)
	return CreateParams{
		ID:            "bk-1",
		UserID:        "user-1",
		HotelID:       "hotel-1",
		RoomType:      "Deluxe Room",
		Stay:          r,
		Guests:        2,
		Rooms:         1,
		PricePerNight: 100,
		Guest: GuestInfo{
			FirstName: "Ada",
			LastName:  "Lovelace",
			Email:     "Ada@Example.com",
			Phone:     "+441234567890",
		},
		Now: testNow,
	}
}

func TestQuote(t *testing.T) {
	charges := Quote(100, 2, 1)
	assert.Equal(t, int64(200), charges.Base)
	assert.Equal(t, int64(20), charges.Tax)
	assert.Equal(t, int64(220), charges.Total)

	charges = Quote(450, 3, 2)
	assert.Equal(t, int64(2700), charges.Base)
	assert.Equal(t, int64(270), charges.Tax)
	assert.Equal(t, int64(2970), charges.Total)

	// Tax rounds to the nearest unit.
	charges = Quote(5, 1, 1)
	assert.Equal(t, int64(1), charges.Tax)
	assert.Equal(t, int64(6), charges.Total)
}

func TestNew_ComputesChargesAndDefaults(t *testing.T) {
	b, err := New(validParams())
	require.NoError(t, err)

	assert.Equal(t, StatusConfirmed, b.Status)
	assert.Equal(t, 2, b.TotalNights)
	assert.Equal(t, int64(200), b.BaseAmount)
	assert.Equal(t, int64(20), b.Tax)
	assert.Equal(t, int64(220), b.Amount)
	assert.Equal(t, testNow, b.CreatedAt)
	assert.Equal(t, testNow, b.UpdatedAt)
	// Email is normalized on the way in.
	assert.Equal(t, "ada@example.com", b.Guest.Email)
}

func TestNew_RejectsMissingFields(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*CreateParams)
		field  string
	}{
		{"user id", func(p *CreateParams) { p.UserID = " " }, "user id"},
		{"hotel id", func(p *CreateParams) { p.HotelID = "" }, "hotel id"},
		{"room type", func(p *CreateParams) { p.RoomType = "" }, "room type"},
		{"guest email", func(p *CreateParams) { p.Guest.Email = "" }, "guest email"},
		{"guest phone", func(p *CreateParams) { p.Guest.Phone = "  " }, "guest phone"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			params := validParams()
			tc.mutate(&params)
			_, err := New(params)
			var ve ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tc.field, ve.Field)
		})
	}
}

func TestNew_RejectsBadCounts(t *testing.T) {
	params := validParams()
	params.Guests = 0
	_, err := New(params)
	assert.ErrorIs(t, err, ErrInvalidGuests)

	params = validParams()
	params.Rooms = -1
	_, err = New(params)
	assert.ErrorIs(t, err, ErrInvalidRooms)
}

func TestNew_RejectsPastCheckIn(t *testing.T) {
	params := validParams()
	params.Now = time.Date(2026, 10, 2, 8, 0, 0, 0, time.UTC)
	_, err := New(params)
	assert.ErrorIs(t, err, ErrCheckInPast)

	// Check-in on the current calendar day is allowed.
	params.Now = time.Date(2026, 10, 1, 23, 0, 0, 0, time.UTC)
	_, err = New(params)
	assert.NoError(t, err)
}

func TestNewReference_Format(t *testing.T) {
	ref := NewReference(testNow)
	assert.True(t, strings.HasPrefix(ref, "BK-20260901-"), ref)
	assert.Len(t, ref, len("BK-20260901-")+6)

	// References are random, not derived from the timestamp alone.
	assert.NotEqual(t, ref, NewReference(testNow))
}

func TestParseStatus(t *testing.T) {
	s, err := ParseStatus("checked-in")
	require.NoError(t, err)
	assert.Equal(t, StatusCheckedIn, s)

	s, err = ParseStatus(" CANCELLED ")
	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, s)

	_, err = ParseStatus("Pending")
	assert.ErrorIs(t, err, ErrUnknownStatus)
}

func TestTransitionTo(t *testing.T) {
	b, err := New(validParams())
	require.NoError(t, err)

	later := testNow.Add(time.Hour)
	require.NoError(t, b.TransitionTo(StatusCheckedIn, later))
	assert.Equal(t, StatusCheckedIn, b.Status)
	assert.Equal(t, later, b.UpdatedAt)

	// Checked-in bookings can no longer be cancelled.
	err = b.TransitionTo(StatusCancelled, later)
	var te TransitionError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, StatusCheckedIn, te.From)
	assert.Equal(t, StatusCancelled, te.To)
	assert.Equal(t, StatusCheckedIn, b.Status)

	require.NoError(t, b.TransitionTo(StatusCheckedOut, later))
	assert.True(t, b.Status.Terminal())
	assert.Error(t, b.TransitionTo(StatusConfirmed, later))
}

func TestTransitionTo_SameStatusIsNoOp(t *testing.T) {
	b, err := New(validParams())
	require.NoError(t, err)

	before := b.UpdatedAt
	require.NoError(t, b.TransitionTo(StatusConfirmed, testNow.Add(time.Hour)))
	assert.Equal(t, before, b.UpdatedAt)
}

func TestTerminalStates(t *testing.T) {
	assert.False(t, StatusConfirmed.Terminal())
	assert.False(t, StatusCheckedIn.Terminal())
	assert.True(t, StatusCheckedOut.Terminal())
	assert.True(t, StatusCancelled.Terminal())
}
