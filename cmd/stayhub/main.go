package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	bookingapp "stayhub/internal/app/handlers/booking"
	hotelapp "stayhub/internal/app/handlers/hotel"
	"stayhub/internal/app/policies"
	domainbooking "stayhub/internal/domain/booking"
	domainhotel "stayhub/internal/domain/hotel"
	"stayhub/internal/infra/broker/kafka"
	"stayhub/internal/infra/config"
	mongodb "stayhub/internal/infra/db/mongo"
	ginserver "stayhub/internal/infra/http/gin"
	"stayhub/internal/infra/obs"
	"stayhub/internal/infra/storage/memory"
	"stayhub/internal/infra/storage/s3"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("configuration invalid", "error", err)
		os.Exit(1)
	}
	logger := obs.NewLogger(cfg.Env)

	hotels, bookings, ready, cleanup, err := buildRepositories(ctx, cfg, logger)
	if err != nil {
		logger.Error("storage init failed", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	events := buildEventPublisher(cfg, logger)
	images := buildImageStore(cfg, logger)

	handlers := buildHandlers(cfg, logger, hotels, bookings, events, images)
	server := ginserver.NewServer(cfg, obs.Middleware{Logger: logger}, obs.HealthHandlers{Ready: ready}, handlers)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("http shutdown failed", "error", err)
		}
	}()

	logger.Info("HTTP server starting", "addr", cfg.HTTPAddr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("http server failed", "error", err)
		os.Exit(1)
	}
	logger.Info("HTTP server stopped")
}

func buildRepositories(ctx context.Context, cfg config.Config, logger *slog.Logger) (domainhotel.Repository, domainbooking.Repository, func() error, func(), error) {
	if cfg.MongoURI == "" {
		logger.Warn("MONGO_URI not set, using in-memory demo store")
		hotels := memory.NewHotelRepository()
		seedDemo(ctx, hotels, logger)
		return hotels, memory.NewBookingRepository(), func() error { return nil }, func() {}, nil
	}
	client, err := mongodb.New(cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	ready := func() error {
		pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return client.Ping(pingCtx)
	}
	cleanup := func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Close(closeCtx); err != nil {
			logger.Warn("mongo disconnect failed", "error", err)
		}
	}
	return mongodb.NewHotelRepository(client.DB), mongodb.NewBookingRepository(client.DB), ready, cleanup, nil
}

func seedDemo(ctx context.Context, hotels domainhotel.Repository, logger *slog.Logger) {
	seeder := hotelapp.SeedHandler{Hotels: hotels, Logger: logger}
	if _, err := seeder.Handle(ctx, hotelapp.SeedCommand{}); err != nil {
		logger.Error("demo seed failed", "error", err)
	}
}

func buildEventPublisher(cfg config.Config, logger *slog.Logger) policies.EventPublisher {
	if len(cfg.KafkaBrokers) == 0 {
		logger.Info("kafka brokers not configured, booking events disabled")
		return nil
	}
	producer, err := kafka.NewProducer(cfg.KafkaBrokers, nil)
	if err != nil {
		logger.Warn("kafka producer unavailable, booking events disabled", "error", err)
		return nil
	}
	return kafka.EventPublisher{Producer: producer, TopicPrefix: cfg.KafkaTopicPrefix}
}

func buildImageStore(cfg config.Config, logger *slog.Logger) policies.ImageStore {
	if cfg.S3Endpoint == "" {
		logger.Info("s3 endpoint not configured, image uploads disabled")
		return nil
	}
	client, err := s3.NewClient(cfg.S3Endpoint, cfg.S3UseSSL, cfg.S3AccessKey, cfg.S3SecretKey, cfg.S3Bucket, cfg.S3PublicEndpoint, logger)
	if err != nil {
		logger.Warn("s3 client unavailable, image uploads disabled", "error", err)
		return nil
	}
	return client
}

func buildHandlers(cfg config.Config, logger *slog.Logger, hotels domainhotel.Repository, bookings domainbooking.Repository, events policies.EventPublisher, images policies.ImageStore) ginserver.Handlers {
	listHandler := &bookingapp.ListBookingsHandler{Hotels: hotels, Bookings: bookings, Logger: logger}
	hotelHandler := &hotelapp.Handler{Hotels: hotels, Logger: logger}
	return ginserver.Handlers{
		Booking: ginserver.BookingHandler{
			Create: &bookingapp.CreateBookingHandler{Hotels: hotels, Bookings: bookings, Events: events, Logger: logger},
			Update: &bookingapp.UpdateBookingHandler{
				Hotels:          hotels,
				Bookings:        bookings,
				Events:          events,
				Logger:          logger,
				RestockOnCancel: cfg.RestockOnCancel,
			},
			List:   listHandler,
			Logger: logger,
		},
		Hotel: ginserver.HotelHandler{Hotels: hotelHandler, Logger: logger},
		Manager: ginserver.ManagerHandler{
			Hotels:      hotelHandler,
			AttachImage: &hotelapp.AttachImageHandler{Hotels: hotels, Images: images, Logger: logger},
			Seed:        &hotelapp.SeedHandler{Hotels: hotels, Logger: logger},
			Bookings:    listHandler,
			Logger:      logger,
		},
		AuthMiddleware: ginserver.AuthMiddleware{Secret: []byte(cfg.AuthJWTSecret), Logger: logger}.Handle,
	}
}
