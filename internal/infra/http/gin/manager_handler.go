package ginserver

import (
	"log/slog"
	"net/http"

	gin "github.com/gin-gonic/gin"

	bookingapp "stayhub/internal/app/handlers/booking"
	hotelapp "stayhub/internal/app/handlers/hotel"
	domainhotel "stayhub/internal/domain/hotel"
)

const maxHotelImageSizeBytes int64 = 10 * 1024 * 1024

// ManagerHandler serves the hotel-manager dashboard: CRUD over hotel
// listings, the booking overview, image uploads and the demo seed.
type ManagerHandler struct {
	Hotels      *hotelapp.Handler
	AttachImage *hotelapp.AttachImageHandler
	Seed        *hotelapp.SeedHandler
	Bookings    *bookingapp.ListBookingsHandler
	Logger      *slog.Logger
}

type roomTypeRequest struct {
	Type      string `json:"type"`
	Price     int64  `json:"price"`
	MaxGuests int    `json:"maxGuests"`
	Available int    `json:"available"`
}

type addHotelRequest struct {
	UserID       string            `json:"userId"`
	Name         string            `json:"name"`
	Description  string            `json:"description"`
	Location     string            `json:"location"`
	City         string            `json:"city"`
	Country      string            `json:"country"`
	Category     string            `json:"category"`
	Rating       float64           `json:"rating"`
	Images       []string          `json:"images"`
	Amenities    []string          `json:"amenities"`
	RoomTypes    []roomTypeRequest `json:"roomTypes"`
	CheckInTime  string            `json:"checkInTime"`
	CheckOutTime string            `json:"checkOutTime"`
}

func (h ManagerHandler) AddHotel(c *gin.Context) {
	p, ok := requireRole(c, "manager")
	if !ok {
		return
	}
	var req addHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}
	managerID := req.UserID
	if managerID == "" {
		managerID = p.ID
	}
	roomTypes := make([]domainhotel.RoomType, 0, len(req.RoomTypes))
	for _, rt := range req.RoomTypes {
		roomTypes = append(roomTypes, domainhotel.RoomType{
			Type:      rt.Type,
			Price:     rt.Price,
			MaxGuests: rt.MaxGuests,
			Available: rt.Available,
		})
	}
	cmd := hotelapp.AddHotelCommand{
		ManagerID:    managerID,
		Name:         req.Name,
		Description:  req.Description,
		Location:     req.Location,
		City:         req.City,
		Country:      req.Country,
		Category:     req.Category,
		Rating:       req.Rating,
		Images:       req.Images,
		Amenities:    req.Amenities,
		RoomTypes:    roomTypes,
		CheckInTime:  req.CheckInTime,
		CheckOutTime: req.CheckOutTime,
	}
	result, err := h.Hotels.Add(c.Request.Context(), cmd)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "hotel": result})
}

func (h ManagerHandler) DeleteHotel(c *gin.Context) {
	if _, ok := requireRole(c, "manager"); !ok {
		return
	}
	if err := h.Hotels.Delete(c.Request.Context(), hotelapp.DeleteHotelCommand{IDOrSlug: c.Param("id")}); err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Hotel deleted successfully"})
}

func (h ManagerHandler) ListManagerHotels(c *gin.Context) {
	p, ok := requireRole(c, "manager")
	if !ok {
		return
	}
	filter := domainhotel.Filter{ManagerID: p.ID}
	if c.Query("all") == "true" {
		filter.ManagerID = ""
	}
	result, err := h.Hotels.List(c.Request.Context(), hotelapp.ListHotelsQuery{Filter: filter})
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "hotels": result.Items})
}

func (h ManagerHandler) ListAllBookings(c *gin.Context) {
	if _, ok := requireRole(c, "manager"); !ok {
		return
	}
	result, err := h.Bookings.HandleAll(c.Request.Context(), bookingapp.ListAllBookingsQuery{})
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "bookings": result.Items})
}

func (h ManagerHandler) UploadHotelImage(c *gin.Context) {
	if _, ok := requireRole(c, "manager"); !ok {
		return
	}
	file, header, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "image file is required"})
		return
	}
	defer file.Close()
	if header.Size > maxHotelImageSizeBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"success": false, "message": "image exceeds the size limit"})
		return
	}
	cmd := hotelapp.AttachImageCommand{
		IDOrSlug:    c.Param("id"),
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Content:     file,
	}
	result, err := h.AttachImage.Handle(c.Request.Context(), cmd)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "url": result.URL})
}

// SeedHotels destructively replaces all hotel records with the demo set.
func (h ManagerHandler) SeedHotels(c *gin.Context) {
	if _, ok := requireRole(c, "manager"); !ok {
		return
	}
	result, err := h.Seed.Handle(c.Request.Context(), hotelapp.SeedCommand{})
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "count": result.Count})
}
