package ginserver

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	gin "github.com/gin-gonic/gin"

	hotelapp "stayhub/internal/app/handlers/hotel"
	domainhotel "stayhub/internal/domain/hotel"
)

type HotelHandler struct {
	Hotels *hotelapp.Handler
	Logger *slog.Logger
}

func (h HotelHandler) ListHotels(c *gin.Context) {
	filter := domainhotel.Filter{
		City:     strings.TrimSpace(c.Query("city")),
		Country:  strings.TrimSpace(c.Query("country")),
		Category: strings.TrimSpace(c.Query("category")),
	}
	if raw := c.Query("minRating"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			filter.MinRating = v
		}
	}
	if raw := c.Query("maxPrice"); raw != "" {
		if v, err := strconv.ParseInt(raw, 10, 64); err == nil {
			filter.MaxPrice = v
		}
	}
	result, err := h.Hotels.List(c.Request.Context(), hotelapp.ListHotelsQuery{Filter: filter})
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "hotels": result.Items})
}

// GetHotel accepts either a storage id or a name-derived slug.
func (h HotelHandler) GetHotel(c *gin.Context) {
	result, err := h.Hotels.Get(c.Request.Context(), hotelapp.GetHotelQuery{IDOrSlug: c.Param("id")})
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "hotel": result})
}
