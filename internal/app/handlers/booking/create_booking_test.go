package booking

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainbooking "stayhub/internal/domain/booking"
	domainhotel "stayhub/internal/domain/hotel"
	"stayhub/internal/domain/shared/stay"
	"stayhub/internal/infra/storage/memory"
)

var testNow = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

func seedHotel(t *testing.T, hotels *memory.HotelRepository, available int) *domainhotel.Hotel {
	t.Helper()
	record, err := domainhotel.New(domainhotel.CreateParams{
		ID:        "hotel-1",
		ManagerID: "manager-1",
		Name:      "The Grand Palace",
		Location:  "1 Seaside Avenue",
		City:      "Lisbon",
		Country:   "Portugal",
		Rating:    4.5,
		RoomTypes: []domainhotel.RoomType{
			{Type: "Deluxe Room", Price: 200, MaxGuests: 2, Available: available},
			{Type: "Suite", Price: 600, MaxGuests: 4, Available: 1},
		},
		Now: testNow,
	})
	require.NoError(t, err)
	require.NoError(t, hotels.Save(context.Background(), record))
	return record
}

func createCommand() CreateBookingCommand {
	return CreateBookingCommand{
		UserID:   "user-1",
		HotelID:  "hotel-1",
		RoomType: "Deluxe Room",
		CheckIn:  time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		CheckOut: time.Date(2026, 10, 3, 0, 0, 0, 0, time.UTC),
		Guests:   2,
		Rooms:    1,
		Guest: domainbooking.GuestInfo{
			FirstName: "Ada",
			LastName:  "Lovelace",
			Email:     "ada@example.com",
			Phone:     "+44123",
		},
	}
}

func available(t *testing.T, hotels *memory.HotelRepository, roomType string) int {
	t.Helper()
	record, err := hotels.ByID(context.Background(), "hotel-1")
	require.NoError(t, err)
	rt, ok := record.RoomTypeNamed(roomType)
	require.True(t, ok)
	return rt.Available
}

type capturedEvent struct {
	name    string
	key     string
	payload []byte
}

type capturingPublisher struct {
	mu     sync.Mutex
	events []capturedEvent
}

func (p *capturingPublisher) Publish(ctx context.Context, event, key string, payload []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, capturedEvent{name: event, key: key, payload: payload})
	return nil
}

func TestCreateBooking_Success(t *testing.T) {
	hotels := memory.NewHotelRepository()
	bookings := memory.NewBookingRepository()
	seedHotel(t, hotels, 5)
	events := &capturingPublisher{}
	handler := &CreateBookingHandler{
		Hotels:   hotels,
		Bookings: bookings,
		Events:   events,
		Now:      func() time.Time { return testNow },
	}

	cmd := createCommand()
	cmd.Rooms = 2
	result, err := handler.Handle(context.Background(), cmd)
	require.NoError(t, err)

	assert.Equal(t, "Confirmed", result.Booking.Status)
	assert.Equal(t, 2, result.Booking.TotalNights)
	assert.Equal(t, int64(800), result.Booking.BaseAmount)
	assert.Equal(t, int64(80), result.Booking.Tax)
	assert.Equal(t, int64(880), result.Booking.Amount)
	assert.Equal(t, "The Grand Palace", result.Booking.Hotel.Name)
	assert.NotEmpty(t, result.Booking.Reference)

	// The booking is persisted and availability is decremented by rooms.
	stored, err := bookings.ByID(context.Background(), domainbooking.BookingID(result.Booking.ID))
	require.NoError(t, err)
	assert.Equal(t, domainbooking.StatusConfirmed, stored.Status)
	assert.Equal(t, 3, available(t, hotels, "Deluxe Room"))

	require.Len(t, events.events, 1)
	assert.Equal(t, "booking.created", events.events[0].name)
	assert.Equal(t, "hotel-1", events.events[0].key)
}

func TestCreateBooking_HotelNotFound(t *testing.T) {
	handler := &CreateBookingHandler{
		Hotels:   memory.NewHotelRepository(),
		Bookings: memory.NewBookingRepository(),
		Now:      func() time.Time { return testNow },
	}
	_, err := handler.Handle(context.Background(), createCommand())
	assert.ErrorIs(t, err, domainhotel.ErrNotFound)
}

func TestCreateBooking_UnknownRoomType(t *testing.T) {
	hotels := memory.NewHotelRepository()
	seedHotel(t, hotels, 5)
	handler := &CreateBookingHandler{
		Hotels:   hotels,
		Bookings: memory.NewBookingRepository(),
		Now:      func() time.Time { return testNow },
	}
	cmd := createCommand()
	cmd.RoomType = "Penthouse"
	_, err := handler.Handle(context.Background(), cmd)
	assert.ErrorIs(t, err, domainhotel.ErrRoomTypeNotFound)
}

func TestCreateBooking_InsufficientCapacity(t *testing.T) {
	hotels := memory.NewHotelRepository()
	bookings := memory.NewBookingRepository()
	seedHotel(t, hotels, 1)
	handler := &CreateBookingHandler{
		Hotels:   hotels,
		Bookings: bookings,
		Now:      func() time.Time { return testNow },
	}

	cmd := createCommand()
	cmd.Rooms = 2
	_, err := handler.Handle(context.Background(), cmd)
	var ce domainhotel.CapacityError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, 1, ce.Available)
	assert.Equal(t, 2, ce.Requested)

	// Nothing was written and the counter is untouched.
	assert.Equal(t, 1, available(t, hotels, "Deluxe Room"))
	all, err := bookings.ListAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestCreateBooking_SequentialUntilSoldOut(t *testing.T) {
	hotels := memory.NewHotelRepository()
	bookings := memory.NewBookingRepository()
	seedHotel(t, hotels, 2)
	handler := &CreateBookingHandler{
		Hotels:   hotels,
		Bookings: bookings,
		Now:      func() time.Time { return testNow },
	}

	for i := 0; i < 2; i++ {
		_, err := handler.Handle(context.Background(), createCommand())
		require.NoError(t, err)
	}
	assert.Equal(t, 0, available(t, hotels, "Deluxe Room"))

	_, err := handler.Handle(context.Background(), createCommand())
	var ce domainhotel.CapacityError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, 0, ce.Available)
}

func TestCreateBooking_ConcurrentNeverOversells(t *testing.T) {
	hotels := memory.NewHotelRepository()
	bookings := memory.NewBookingRepository()
	seedHotel(t, hotels, 3)
	handler := &CreateBookingHandler{
		Hotels:   hotels,
		Bookings: bookings,
		Now:      func() time.Time { return testNow },
	}

	const attempts = 12
	var wg sync.WaitGroup
	results := make(chan error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := handler.Handle(context.Background(), createCommand())
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	successes := 0
	for err := range results {
		if err == nil {
			successes++
		} else {
			var ce domainhotel.CapacityError
			assert.ErrorAs(t, err, &ce)
		}
	}
	assert.Equal(t, 3, successes)
	assert.Equal(t, 0, available(t, hotels, "Deluxe Room"))

	all, err := bookings.ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

type failingBookingRepo struct {
	domainbooking.Repository
}

func (failingBookingRepo) Insert(ctx context.Context, b *domainbooking.Booking) error {
	return errors.New("write failed")
}

func TestCreateBooking_RestocksWhenInsertFails(t *testing.T) {
	hotels := memory.NewHotelRepository()
	seedHotel(t, hotels, 5)
	handler := &CreateBookingHandler{
		Hotels:   hotels,
		Bookings: failingBookingRepo{Repository: memory.NewBookingRepository()},
		Now:      func() time.Time { return testNow },
	}

	_, err := handler.Handle(context.Background(), createCommand())
	require.Error(t, err)
	assert.Equal(t, 5, available(t, hotels, "Deluxe Room"))
}

func TestCreateBooking_ValidationBeforeCapacity(t *testing.T) {
	hotels := memory.NewHotelRepository()
	seedHotel(t, hotels, 0)
	handler := &CreateBookingHandler{
		Hotels:   hotels,
		Bookings: memory.NewBookingRepository(),
		Now:      func() time.Time { return testNow },
	}

	// A malformed request against a sold-out room type reports the input
	// problem, not the capacity one.
	cmd := createCommand()
	cmd.Guest.Email = ""
	_, err := handler.Handle(context.Background(), cmd)
	var ve domainbooking.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "guest email", ve.Field)

	cmd = createCommand()
	cmd.CheckIn = time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)
	cmd.CheckOut = time.Date(2026, 8, 22, 0, 0, 0, 0, time.UTC)
	_, err = handler.Handle(context.Background(), cmd)
	assert.ErrorIs(t, err, domainbooking.ErrCheckInPast)

	// A well-formed request still gets the capacity error.
	_, err = handler.Handle(context.Background(), createCommand())
	var ce domainhotel.CapacityError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, 0, ce.Available)
}

func TestCreateBooking_ValidationPropagates(t *testing.T) {
	hotels := memory.NewHotelRepository()
	seedHotel(t, hotels, 5)
	handler := &CreateBookingHandler{
		Hotels:   hotels,
		Bookings: memory.NewBookingRepository(),
		Now:      func() time.Time { return testNow },
	}

	cmd := createCommand()
	cmd.CheckOut = cmd.CheckIn
	_, err := handler.Handle(context.Background(), cmd)
	assert.ErrorIs(t, err, stay.ErrInvalidRange)

	cmd = createCommand()
	cmd.CheckIn = time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)
	cmd.CheckOut = time.Date(2026, 8, 22, 0, 0, 0, 0, time.UTC)
	_, err = handler.Handle(context.Background(), cmd)
	assert.ErrorIs(t, err, domainbooking.ErrCheckInPast)

	cmd = createCommand()
	cmd.Guest.Email = ""
	_, err = handler.Handle(context.Background(), cmd)
	var ve domainbooking.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "guest email", ve.Field)
	assert.Equal(t, 5, available(t, hotels, "Deluxe Room"))
}
