package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainbooking "stayhub/internal/domain/booking"
	domainhotel "stayhub/internal/domain/hotel"
	"stayhub/internal/infra/storage/memory"
)

func TestListBookings_ForUser(t *testing.T) {
	hotels := memory.NewHotelRepository()
	bookings := memory.NewBookingRepository()
	seedHotel(t, hotels, 10)
	create := &CreateBookingHandler{Hotels: hotels, Bookings: bookings}

	clock := testNow
	create.Now = func() time.Time { return clock }

	first := createCommand()
	_, err := create.Handle(context.Background(), first)
	require.NoError(t, err)

	clock = clock.Add(time.Hour)
	second := createCommand()
	second.RoomType = "Suite"
	secondResult, err := create.Handle(context.Background(), second)
	require.NoError(t, err)

	clock = clock.Add(time.Hour)
	other := createCommand()
	other.UserID = "user-2"
	_, err = create.Handle(context.Background(), other)
	require.NoError(t, err)

	handler := &ListBookingsHandler{Hotels: hotels, Bookings: bookings}
	result, err := handler.HandleForUser(context.Background(), ListUserBookingsQuery{UserID: "user-1"})
	require.NoError(t, err)
	require.Len(t, result.Items, 2)
	// Most recent first, each with the hotel snapshot attached.
	assert.Equal(t, secondResult.Booking.ID, result.Items[0].ID)
	assert.Equal(t, "The Grand Palace", result.Items[0].Hotel.Name)

	all, err := handler.HandleAll(context.Background(), ListAllBookingsQuery{})
	require.NoError(t, err)
	assert.Len(t, all.Items, 3)
}

func TestListBookings_RequiresUserID(t *testing.T) {
	handler := &ListBookingsHandler{
		Hotels:   memory.NewHotelRepository(),
		Bookings: memory.NewBookingRepository(),
	}
	_, err := handler.HandleForUser(context.Background(), ListUserBookingsQuery{})
	var ve domainbooking.ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestListBookings_ToleratesDeletedHotel(t *testing.T) {
	hotels := memory.NewHotelRepository()
	bookings := memory.NewBookingRepository()
	seedHotel(t, hotels, 5)
	create := &CreateBookingHandler{
		Hotels:   hotels,
		Bookings: bookings,
		Now:      func() time.Time { return testNow },
	}
	_, err := create.Handle(context.Background(), createCommand())
	require.NoError(t, err)

	require.NoError(t, hotels.Delete(context.Background(), domainhotel.HotelID("hotel-1")))

	handler := &ListBookingsHandler{Hotels: hotels, Bookings: bookings}
	result, err := handler.HandleForUser(context.Background(), ListUserBookingsQuery{UserID: "user-1"})
	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Empty(t, result.Items[0].Hotel.ID)
	assert.Equal(t, "Confirmed", result.Items[0].Status)
}
