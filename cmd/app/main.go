package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sadmanCR7/aeropulse/config"
	"github.com/sadmanCR7/aeropulse/internal/bootstrap"
	"github.com/sadmanCR7/aeropulse/internal/cache"
	"github.com/sadmanCR7/aeropulse/internal/kafka"
	"github.com/sadmanCR7/aeropulse/internal/repository"
	"github.com/sadmanCR7/aeropulse/internal/service/accounts"
	"github.com/sadmanCR7/aeropulse/internal/service/booking"
	"github.com/sadmanCR7/aeropulse/internal/service/explore"
	"github.com/sadmanCR7/aeropulse/internal/service/flights"
	"github.com/sadmanCR7/aeropulse/internal/service/notifications"
	"github.com/sadmanCR7/aeropulse/internal/service/reviews"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	redisCache := cache.NewRedisCache(cfg.Redis,
		time.Duration(cfg.Cache.AirportsTTLSeconds)*time.Second,
		time.Duration(cfg.Cache.PriceMapTTLSeconds)*time.Second)
	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	flightRepo := repository.NewFlightRepository(pool)
	airportRepo := repository.NewAirportRepository(pool)
	bookingRepo := repository.NewBookingRepository(pool)
	reviewRepo := repository.NewReviewRepository(pool)
	userRepo := repository.NewUserRepository(pool)
	notificationRepo := repository.NewNotificationRepository(pool)

	svcs := bootstrap.Services{
		Flights: flights.NewFlightService(flightRepo, airportRepo, redisCache),
		Bookings: booking.NewBookingService(
			bookingRepo,
			flightRepo,
			producer,
			cfg.Kafka.BookingEventsTopic,
			booking.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
		),
		Explore:  explore.NewExploreService(flightRepo, airportRepo, redisCache),
		Reviews:  reviews.NewReviewService(reviewRepo, bookingRepo, flightRepo),
		Accounts: accounts.NewAccountService(userRepo, cfg.Registration.TokenSecret,
			time.Duration(cfg.Registration.StepTTLMinutes)*time.Minute),
		Notifications: notifications.NewNotificationService(notificationRepo),
	}

	if err := bootstrap.Run(ctx, cfg, svcs); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
