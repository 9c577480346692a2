package dto

import (
	"time"

	domainhotel "stayhub/internal/domain/hotel"
)

type RoomTypeDTO struct {
	Type      string `json:"type"`
	Price     int64  `json:"price"`
	MaxGuests int    `json:"maxGuests"`
	Available int    `json:"available"`
}

type HotelDetail struct {
	ID           string        `json:"id"`
	ManagerID    string        `json:"managerId"`
	Name         string        `json:"name"`
	Slug         string        `json:"slug"`
	Description  string        `json:"description"`
	Location     string        `json:"location"`
	City         string        `json:"city"`
	Country      string        `json:"country"`
	Category     string        `json:"category"`
	Rating       float64       `json:"rating"`
	Images       []string      `json:"images"`
	Amenities    []string      `json:"amenities"`
	RoomTypes    []RoomTypeDTO `json:"roomTypes"`
	CheckInTime  string        `json:"checkInTime"`
	CheckOutTime string        `json:"checkOutTime"`
	CreatedAt    time.Time     `json:"createdAt"`
}

type HotelCollection struct {
	Items []HotelDetail `json:"items"`
}

// HotelSnapshot is the denormalized subset attached to booking responses.
type HotelSnapshot struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Location string  `json:"location"`
	City     string  `json:"city"`
	Country  string  `json:"country"`
	Rating   float64 `json:"rating"`
	Image    string  `json:"image,omitempty"`
}

func MapHotelDetail(h *domainhotel.Hotel) HotelDetail {
	roomTypes := make([]RoomTypeDTO, 0, len(h.RoomTypes))
	for _, rt := range h.RoomTypes {
		roomTypes = append(roomTypes, RoomTypeDTO{
			Type:      rt.Type,
			Price:     rt.Price,
			MaxGuests: rt.MaxGuests,
			Available: rt.Available,
		})
	}
	return HotelDetail{
		ID:           string(h.ID),
		ManagerID:    h.ManagerID,
		Name:         h.Name,
		Slug:         h.Slug,
		Description:  h.Description,
		Location:     h.Location,
		City:         h.City,
		Country:      h.Country,
		Category:     h.Category,
		Rating:       h.Rating,
		Images:       h.Images,
		Amenities:    h.Amenities,
		RoomTypes:    roomTypes,
		CheckInTime:  h.CheckInTime,
		CheckOutTime: h.CheckOutTime,
		CreatedAt:    h.CreatedAt,
	}
}

func MapHotelSnapshot(h *domainhotel.Hotel) HotelSnapshot {
	if h == nil {
		return HotelSnapshot{}
	}
	snapshot := HotelSnapshot{
		ID:       string(h.ID),
		Name:     h.Name,
		Location: h.Location,
		City:     h.City,
		Country:  h.Country,
		Rating:   h.Rating,
	}
	if len(h.Images) > 0 {
		snapshot.Image = h.Images[0]
	}
	return snapshot
}
