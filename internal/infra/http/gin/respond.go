package ginserver

import (
	"errors"
	"log/slog"
	"net/http"

	gin "github.com/gin-gonic/gin"

	hotelapp "stayhub/internal/app/handlers/hotel"
	domainbooking "stayhub/internal/domain/booking"
	domainhotel "stayhub/internal/domain/hotel"
	"stayhub/internal/domain/shared/stay"
)

// Every response carries the uniform {success, ...} envelope; failures add a
// human-readable message the UI surfaces directly.
func respondError(c *gin.Context, logger *slog.Logger, err error) {
	status, message := classify(err)
	if status == http.StatusInternalServerError {
		if logger != nil {
			logger.Error("request failed", "error", err, "path", c.FullPath(), "request_id", c.GetString("request_id"))
		}
		message = "something went wrong, please try again"
	}
	c.JSON(status, gin.H{"success": false, "message": message})
}

func classify(err error) (int, string) {
	var (
		validationErr domainbooking.ValidationError
		capacityErr   domainhotel.CapacityError
		transitionErr domainbooking.TransitionError
	)
	switch {
	case errors.As(err, &capacityErr), errors.As(err, &transitionErr),
		errors.Is(err, domainbooking.ErrStatusConflict):
		return http.StatusConflict, err.Error()
	case errors.Is(err, hotelapp.ErrImageStoreUnavailable):
		return http.StatusServiceUnavailable, "image uploads are not configured"
	case errors.As(err, &validationErr),
		errors.Is(err, stay.ErrInvalidRange),
		errors.Is(err, domainbooking.ErrCheckInPast),
		errors.Is(err, domainbooking.ErrInvalidGuests),
		errors.Is(err, domainbooking.ErrInvalidRooms),
		errors.Is(err, domainbooking.ErrUnknownStatus),
		errors.Is(err, domainhotel.ErrNameRequired),
		errors.Is(err, domainhotel.ErrLocationRequired),
		errors.Is(err, domainhotel.ErrManagerRequired),
		errors.Is(err, domainhotel.ErrRatingRange),
		errors.Is(err, domainhotel.ErrRoomTypeName),
		errors.Is(err, domainhotel.ErrDuplicateRoom),
		errors.Is(err, domainhotel.ErrRoomPrice),
		errors.Is(err, domainhotel.ErrRoomAvailability):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domainhotel.ErrNotFound):
		return http.StatusNotFound, "Hotel not found"
	case errors.Is(err, domainhotel.ErrRoomTypeNotFound):
		return http.StatusNotFound, "Room type not found"
	case errors.Is(err, domainbooking.ErrNotFound):
		return http.StatusNotFound, "Booking not found"
	default:
		return http.StatusInternalServerError, ""
	}
}
