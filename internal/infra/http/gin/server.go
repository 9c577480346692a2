package ginserver

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	gin "github.com/gin-gonic/gin"

	"stayhub/internal/infra/config"
	"stayhub/internal/infra/obs"
)

type Handlers struct {
	Booking        BookingHandler
	Hotel          HotelHandler
	Manager        ManagerHandler
	AuthMiddleware gin.HandlerFunc
}

func NewServer(cfg config.Config, obsMW obs.Middleware, health obs.HealthHandlers, h Handlers) *http.Server {
	mode := configureGinMode(cfg.Env)
	if obsMW.Logger != nil {
		obsMW.Logger.Info("gin initialized", "mode", mode)
	}

	router := NewRouter(obsMW, health, h)
	return &http.Server{Addr: cfg.HTTPAddr, Handler: router}
}

// NewRouter wires middleware and routes; split from NewServer so tests can
// drive the handler chain directly.
func NewRouter(obsMW obs.Middleware, health obs.HealthHandlers, h Handlers) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(obsMW.RequestID())
	router.Use(obsMW.LoggerMiddleware())
	router.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{"Content-Length", "Content-Type", "X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}))
	if h.AuthMiddleware != nil {
		router.Use(h.AuthMiddleware)
	}

	router.GET("/livez", health.Livez)
	router.GET("/readyz", health.Readyz)

	api := router.Group("/api/v1")
	api.GET("/hotels", h.Hotel.ListHotels)
	api.GET("/hotels/:id", h.Hotel.GetHotel)
	api.POST("/bookings", h.Booking.CreateBooking)
	api.GET("/bookings", h.Booking.ListBookings)
	api.PATCH("/bookings/:id", h.Booking.UpdateBooking)

	manager := api.Group("/manager")
	manager.GET("/hotels", h.Manager.ListManagerHotels)
	manager.POST("/hotels", h.Manager.AddHotel)
	manager.DELETE("/hotels/:id", h.Manager.DeleteHotel)
	manager.POST("/hotels/:id/images", h.Manager.UploadHotelImage)
	manager.GET("/bookings", h.Manager.ListAllBookings)
	manager.POST("/seed", h.Manager.SeedHotels)

	return router
}

func configureGinMode(env string) string {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "debug":
		gin.SetMode(gin.DebugMode)
		return gin.DebugMode
	case "test", "testing":
		gin.SetMode(gin.TestMode)
		return gin.TestMode
	default:
		gin.SetMode(gin.ReleaseMode)
		return gin.ReleaseMode
	}
}
