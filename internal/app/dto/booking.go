package dto

import (
	"time"

	domainbooking "stayhub/internal/domain/booking"
	domainhotel "stayhub/internal/domain/hotel"
)

type GuestInfoDTO struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

type BookingDetail struct {
	ID              string        `json:"id"`
	Reference       string        `json:"reference"`
	UserID          string        `json:"userId"`
	Hotel           HotelSnapshot `json:"hotel"`
	RoomType        string        `json:"roomType"`
	CheckIn         time.Time     `json:"checkInDate"`
	CheckOut        time.Time     `json:"checkOutDate"`
	Guests          int           `json:"guests"`
	Rooms           int           `json:"rooms"`
	TotalNights     int           `json:"totalNights"`
	BaseAmount      int64         `json:"baseAmount"`
	Tax             int64         `json:"tax"`
	Amount          int64         `json:"amount"`
	Guest           GuestInfoDTO  `json:"guestInfo"`
	SpecialRequests string        `json:"specialRequests"`
	Status          string        `json:"status"`
	CreatedAt       time.Time     `json:"createdAt"`
}

type BookingCollection struct {
	Items []BookingDetail `json:"items"`
}

func MapBookingDetail(b *domainbooking.Booking, h *domainhotel.Hotel) BookingDetail {
	return BookingDetail{
		ID:          string(b.ID),
		Reference:   b.Reference,
		UserID:      b.UserID,
		Hotel:       MapHotelSnapshot(h),
		RoomType:    b.RoomType,
		CheckIn:     b.Stay.CheckIn,
		CheckOut:    b.Stay.CheckOut,
		Guests:      b.Guests,
		Rooms:       b.Rooms,
		TotalNights: b.TotalNights,
		BaseAmount:  b.BaseAmount,
		Tax:         b.Tax,
		Amount:      b.Amount,
		Guest: GuestInfoDTO{
			FirstName: b.Guest.FirstName,
			LastName:  b.Guest.LastName,
			Email:     b.Guest.Email,
			Phone:     b.Guest.Phone,
		},
		SpecialRequests: b.SpecialRequests,
		Status:          string(b.Status),
		CreatedAt:       b.CreatedAt,
	}
}
