package hotel

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"
)

var (
	ErrNotFound         = errors.New("hotel: not found")
	ErrRoomTypeNotFound = errors.New("hotel: room type not found")
	ErrNameRequired     = errors.New("hotel: name is required")
	ErrLocationRequired = errors.New("hotel: location is required")
	ErrManagerRequired  = errors.New("hotel: manager id is required")
	ErrRatingRange      = errors.New("hotel: rating must be between 1 and 5")
	ErrRoomTypeName     = errors.New("hotel: room type name is required")
	ErrDuplicateRoom    = errors.New("hotel: duplicate room type name")
	ErrRoomPrice        = errors.New("hotel: room type price must be positive")
	ErrRoomAvailability = errors.New("hotel: room type availability must be non-negative")
)

// PlaceholderImageURL is used when a hotel is created without any images.
const PlaceholderImageURL = "https://images.unsplash.com/photo-1571896349842-33c89424de2d?w=800&h=600&fit=crop"

// CapacityError reports that a room type cannot cover the requested number
// of rooms. Available carries the remaining count so callers can surface it.
type CapacityError struct {
	RoomType  string
	Requested int
	Available int
}

func (e CapacityError) Error() string {
	return fmt.Sprintf("only %d rooms available for %s", e.Available, e.RoomType)
}

type HotelID string

// RoomType is a named bookable unit with its own nightly price and
// availability counter. Type names are unique within one hotel.
type RoomType struct {
	Type      string
	Price     int64
	MaxGuests int
	Available int
}

type Hotel struct {
	ID           HotelID
	ManagerID    string
	Name         string
	Slug         string
	Description  string
	Location     string
	City         string
	Country      string
	Category     string
	Rating       float64
	Images       []string
	Amenities    []string
	RoomTypes    []RoomType
	CheckInTime  string
	CheckOutTime string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type CreateParams struct {
	ID           HotelID
	ManagerID    string
	Name         string
	Description  string
	Location     string
	City         string
	Country      string
	Category     string
	Rating       float64
	Images       []string
	Amenities    []string
	RoomTypes    []RoomType
	CheckInTime  string
	CheckOutTime string
	Now          time.Time
}

func New(params CreateParams) (*Hotel, error) {
	name := strings.TrimSpace(params.Name)
	if name == "" {
		return nil, ErrNameRequired
	}
	if strings.TrimSpace(params.Location) == "" {
		return nil, ErrLocationRequired
	}
	if strings.TrimSpace(params.ManagerID) == "" {
		return nil, ErrManagerRequired
	}
	if params.Rating != 0 && (params.Rating < 1 || params.Rating > 5) {
		return nil, ErrRatingRange
	}
	if err := validateRoomTypes(params.RoomTypes); err != nil {
		return nil, err
	}

	images := append([]string(nil), params.Images...)
	if len(images) == 0 {
		images = []string{PlaceholderImageURL}
	}
	checkIn := params.CheckInTime
	if checkIn == "" {
		checkIn = "15:00"
	}
	checkOut := params.CheckOutTime
	if checkOut == "" {
		checkOut = "11:00"
	}
	now := params.Now.UTC()
	return &Hotel{
		ID:           params.ID,
		ManagerID:    strings.TrimSpace(params.ManagerID),
		Name:         name,
		Slug:         Slugify(name),
		Description:  strings.TrimSpace(params.Description),
		Location:     strings.TrimSpace(params.Location),
		City:         strings.TrimSpace(params.City),
		Country:      strings.TrimSpace(params.Country),
		Category:     strings.ToLower(strings.TrimSpace(params.Category)),
		Rating:       params.Rating,
		Images:       images,
		Amenities:    append([]string(nil), params.Amenities...),
		RoomTypes:    append([]RoomType(nil), params.RoomTypes...),
		CheckInTime:  checkIn,
		CheckOutTime: checkOut,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

func validateRoomTypes(roomTypes []RoomType) error {
	seen := make(map[string]struct{}, len(roomTypes))
	for _, rt := range roomTypes {
		name := strings.TrimSpace(rt.Type)
		if name == "" {
			return ErrRoomTypeName
		}
		key := strings.ToLower(name)
		if _, dup := seen[key]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicateRoom, name)
		}
		seen[key] = struct{}{}
		if rt.Price <= 0 {
			return fmt.Errorf("%w: %s", ErrRoomPrice, name)
		}
		if rt.Available < 0 {
			return fmt.Errorf("%w: %s", ErrRoomAvailability, name)
		}
	}
	return nil
}

// RoomTypeNamed returns the room type whose name exactly matches.
func (h *Hotel) RoomTypeNamed(name string) (*RoomType, bool) {
	for i := range h.RoomTypes {
		if h.RoomTypes[i].Type == name {
			return &h.RoomTypes[i], true
		}
	}
	return nil, false
}

// Reserve decrements availability for the named room type. It never drives
// the counter below zero; callers relying on this under concurrency must
// hold whatever lock guards the hotel record.
func (h *Hotel) Reserve(roomType string, rooms int) error {
	rt, ok := h.RoomTypeNamed(roomType)
	if !ok {
		return ErrRoomTypeNotFound
	}
	if rt.Available < rooms {
		return CapacityError{RoomType: roomType, Requested: rooms, Available: rt.Available}
	}
	rt.Available -= rooms
	return nil
}

// Restock returns rooms to the named room type's availability counter.
func (h *Hotel) Restock(roomType string, rooms int) error {
	rt, ok := h.RoomTypeNamed(roomType)
	if !ok {
		return ErrRoomTypeNotFound
	}
	rt.Available += rooms
	return nil
}

func (h *Hotel) Clone() *Hotel {
	if h == nil {
		return nil
	}
	clone := *h
	clone.Images = append([]string(nil), h.Images...)
	clone.Amenities = append([]string(nil), h.Amenities...)
	clone.RoomTypes = append([]RoomType(nil), h.RoomTypes...)
	return &clone
}

// Slugify derives the persisted URL slug from a hotel name: lower-cased,
// with runs of non-alphanumeric characters collapsed to single hyphens.
func Slugify(name string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastHyphen = false
			continue
		}
		if !lastHyphen {
			b.WriteByte('-')
			lastHyphen = true
		}
	}
	return strings.TrimRight(b.String(), "-")
}

// DisplayNameFromSlug reverses a slug into a best-effort display name for
// matching records that predate the persisted slug field.
func DisplayNameFromSlug(slug string) string {
	words := strings.Split(strings.ReplaceAll(slug, "-", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}

// Filter narrows catalog listings. Zero values mean "no constraint".
type Filter struct {
	City      string
	Country   string
	Category  string
	ManagerID string
	MinRating float64
	MaxPrice  int64
}

// Matches applies the filter against a hotel. Price filtering considers the
// cheapest room type.
func (f Filter) Matches(h *Hotel) bool {
	if f.City != "" && !strings.EqualFold(h.City, f.City) {
		return false
	}
	if f.Country != "" && !strings.EqualFold(h.Country, f.Country) {
		return false
	}
	if f.Category != "" && !strings.EqualFold(h.Category, f.Category) {
		return false
	}
	if f.ManagerID != "" && h.ManagerID != f.ManagerID {
		return false
	}
	if f.MinRating > 0 && h.Rating < f.MinRating {
		return false
	}
	if f.MaxPrice > 0 {
		cheapest := int64(0)
		for _, rt := range h.RoomTypes {
			if cheapest == 0 || rt.Price < cheapest {
				cheapest = rt.Price
			}
		}
		if cheapest == 0 || cheapest > f.MaxPrice {
			return false
		}
	}
	return true
}

type Repository interface {
	ByID(ctx context.Context, id HotelID) (*Hotel, error)
	BySlug(ctx context.Context, slug string) (*Hotel, error)
	ByNameLike(ctx context.Context, name string) (*Hotel, error)
	List(ctx context.Context, filter Filter) ([]*Hotel, error)
	Save(ctx context.Context, hotel *Hotel) error
	Delete(ctx context.Context, id HotelID) error
	// ReplaceAll atomically swaps the whole collection for the given set and
	// returns the number of records inserted.
	ReplaceAll(ctx context.Context, hotels []*Hotel) (int, error)
	// Reserve performs a single conditional decrement of the room type's
	// availability: it succeeds only when the remaining count covers the
	// request, and concurrent calls can never drive the counter negative.
	Reserve(ctx context.Context, id HotelID, roomType string, rooms int) error
	// Restock returns previously reserved rooms to the availability counter.
	Restock(ctx context.Context, id HotelID, roomType string, rooms int) error
}
