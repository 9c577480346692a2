package hotel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

func validParams() CreateParams {
	return CreateParams{
		ID:        "hotel-1",
		ManagerID: "manager-1",
		Name:      "The Grand Palace",
		Location:  "1 Seaside Avenue",
		City:      "Lisbon",
		Country:   "Portugal",
		Category:  "Luxury",
		Rating:    4.5,
		RoomTypes: []RoomType{
			{Type: "Deluxe Room", Price: 250, MaxGuests: 2, Available: 5},
			{Type: "Suite", Price: 600, MaxGuests: 4, Available: 2},
		},
		Now: testNow,
	}
}

func TestNew_AppliesDefaults(t *testing.T) {
	h, err := New(validParams())
	require.NoError(t, err)

	assert.Equal(t, "the-grand-palace", h.Slug)
	assert.Equal(t, []string{PlaceholderImageURL}, h.Images)
	assert.Equal(t, "15:00", h.CheckInTime)
	assert.Equal(t, "11:00", h.CheckOutTime)
	assert.Equal(t, "luxury", h.Category)
}

func TestNew_KeepsProvidedImages(t *testing.T) {
	params := validParams()
	params.Images = []string{"https://cdn.example.com/a.jpg"}
	h, err := New(params)
	require.NoError(t, err)
	assert.Equal(t, params.Images, h.Images)
}

func TestNew_Validation(t *testing.T) {
	params := validParams()
	params.Name = "  "
	_, err := New(params)
	assert.ErrorIs(t, err, ErrNameRequired)

	params = validParams()
	params.Location = ""
	_, err = New(params)
	assert.ErrorIs(t, err, ErrLocationRequired)

	params = validParams()
	params.ManagerID = ""
	_, err = New(params)
	assert.ErrorIs(t, err, ErrManagerRequired)

	params = validParams()
	params.Rating = 6
	_, err = New(params)
	assert.ErrorIs(t, err, ErrRatingRange)

	// Zero rating means "unrated" and passes.
	params = validParams()
	params.Rating = 0
	_, err = New(params)
	assert.NoError(t, err)
}

func TestNew_RoomTypeValidation(t *testing.T) {
	params := validParams()
	params.RoomTypes = []RoomType{{Type: "Suite", Price: 0, Available: 1}}
	_, err := New(params)
	assert.ErrorIs(t, err, ErrRoomPrice)

	params.RoomTypes = []RoomType{{Type: "Suite", Price: 100, Available: -1}}
	_, err = New(params)
	assert.ErrorIs(t, err, ErrRoomAvailability)

	params.RoomTypes = []RoomType{
		{Type: "Suite", Price: 100, Available: 1},
		{Type: "suite", Price: 200, Available: 1},
	}
	_, err = New(params)
	assert.ErrorIs(t, err, ErrDuplicateRoom)
}

func TestReserveAndRestock(t *testing.T) {
	h, err := New(validParams())
	require.NoError(t, err)

	require.NoError(t, h.Reserve("Deluxe Room", 3))
	rt, ok := h.RoomTypeNamed("Deluxe Room")
	require.True(t, ok)
	assert.Equal(t, 2, rt.Available)

	err = h.Reserve("Deluxe Room", 3)
	var ce CapacityError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "Deluxe Room", ce.RoomType)
	assert.Equal(t, 2, ce.Available)
	assert.Equal(t, "only 2 rooms available for Deluxe Room", ce.Error())
	// A failed reserve leaves the counter alone.
	assert.Equal(t, 2, rt.Available)

	assert.ErrorIs(t, h.Reserve("Penthouse", 1), ErrRoomTypeNotFound)

	require.NoError(t, h.Restock("Deluxe Room", 3))
	assert.Equal(t, 5, rt.Available)
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "the-ritz-carlton-maldives", Slugify("The Ritz-Carlton Maldives"))
	assert.Equal(t, "aman-tokyo", Slugify("Aman   Tokyo!"))
	assert.Equal(t, "hôtel-de-crillon", Slugify("  Hôtel de Crillon  "))
	assert.Equal(t, "plaza-new-york", Slugify("Plaza (New York)"))
	assert.Equal(t, "", Slugify("***"))
}

func TestDisplayNameFromSlug(t *testing.T) {
	assert.Equal(t, "The Savoy London", DisplayNameFromSlug("the-savoy-london"))
	assert.Equal(t, "Aman Tokyo", DisplayNameFromSlug("aman-tokyo"))
}

func TestFilterMatches(t *testing.T) {
	h, err := New(validParams())
	require.NoError(t, err)

	assert.True(t, Filter{}.Matches(h))
	assert.True(t, Filter{City: "lisbon", Category: "LUXURY"}.Matches(h))
	assert.False(t, Filter{City: "Porto"}.Matches(h))
	assert.False(t, Filter{MinRating: 4.8}.Matches(h))
	assert.True(t, Filter{MinRating: 4.5}.Matches(h))
	assert.True(t, Filter{ManagerID: "manager-1"}.Matches(h))
	assert.False(t, Filter{ManagerID: "manager-2"}.Matches(h))

	// Price filter compares against the cheapest room type.
	assert.True(t, Filter{MaxPrice: 250}.Matches(h))
	assert.False(t, Filter{MaxPrice: 200}.Matches(h))
}

func TestClone_IsIndependent(t *testing.T) {
	h, err := New(validParams())
	require.NoError(t, err)

	clone := h.Clone()
	require.NoError(t, clone.Reserve("Suite", 2))

	original, ok := h.RoomTypeNamed("Suite")
	require.True(t, ok)
	assert.Equal(t, 2, original.Available)
}
