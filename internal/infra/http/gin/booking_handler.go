package ginserver

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	gin "github.com/gin-gonic/gin"

	bookingapp "stayhub/internal/app/handlers/booking"
	domainbooking "stayhub/internal/domain/booking"
)

type BookingHandler struct {
	Create *bookingapp.CreateBookingHandler
	Update *bookingapp.UpdateBookingHandler
	List   *bookingapp.ListBookingsHandler
	Logger *slog.Logger
}

type guestInfoRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

type createBookingRequest struct {
	UserID          string           `json:"userId"`
	HotelID         string           `json:"hotelId"`
	RoomType        string           `json:"roomType"`
	CheckInDate     time.Time        `json:"checkInDate"`
	CheckOutDate    time.Time        `json:"checkOutDate"`
	Guests          int              `json:"guests"`
	Rooms           int              `json:"rooms"`
	GuestInfo       guestInfoRequest `json:"guestInfo"`
	SpecialRequests string           `json:"specialRequests"`
}

func (h BookingHandler) CreateBooking(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}
	cmd := bookingapp.CreateBookingCommand{
		UserID:   req.UserID,
		HotelID:  req.HotelID,
		RoomType: req.RoomType,
		CheckIn:  req.CheckInDate,
		CheckOut: req.CheckOutDate,
		Guests:   req.Guests,
		Rooms:    req.Rooms,
		Guest: domainbooking.GuestInfo{
			FirstName: req.GuestInfo.FirstName,
			LastName:  req.GuestInfo.LastName,
			Email:     req.GuestInfo.Email,
			Phone:     req.GuestInfo.Phone,
		},
		SpecialRequests: req.SpecialRequests,
	}
	result, err := h.Create.Handle(c.Request.Context(), cmd)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"success":   true,
		"booking":   result.Booking,
		"bookingId": result.Booking.ID,
	})
}

type updateBookingRequest struct {
	Status          string            `json:"status"`
	GuestInfo       *guestInfoRequest `json:"guestInfo"`
	SpecialRequests *string           `json:"specialRequests"`
}

func (h BookingHandler) UpdateBooking(c *gin.Context) {
	var req updateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}
	cmd := bookingapp.UpdateBookingCommand{
		BookingID:       c.Param("id"),
		Status:          req.Status,
		SpecialRequests: req.SpecialRequests,
	}
	if req.GuestInfo != nil {
		cmd.Guest = &domainbooking.GuestInfo{
			FirstName: req.GuestInfo.FirstName,
			LastName:  req.GuestInfo.LastName,
			Email:     req.GuestInfo.Email,
			Phone:     req.GuestInfo.Phone,
		}
	}
	result, err := h.Update.Handle(c.Request.Context(), cmd)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "booking": result.Booking})
}

func (h BookingHandler) ListBookings(c *gin.Context) {
	userID := strings.TrimSpace(c.Query("userId"))
	if userID == "" {
		userID = strings.TrimSpace(c.Query("user_id"))
	}
	result, err := h.List.HandleForUser(c.Request.Context(), bookingapp.ListUserBookingsQuery{UserID: userID})
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "bookings": result.Items})
}
