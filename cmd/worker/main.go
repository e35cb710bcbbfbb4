package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sadmanCR7/aeropulse/config"
	"github.com/sadmanCR7/aeropulse/internal/domain"
	"github.com/sadmanCR7/aeropulse/internal/email"
	"github.com/sadmanCR7/aeropulse/internal/kafka"
	"github.com/sadmanCR7/aeropulse/internal/repository"
	kafkaGo "github.com/segmentio/kafka-go"
)

// The worker drains the notifications topic: every booking lifecycle event
// becomes a notification row plus an email to the passenger. It never touches
// booking or seat state.
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

	userRepo := repository.NewUserRepository(pool)
	notificationRepo := repository.NewNotificationRepository(pool)
	sender := email.NewSender()

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.NotificationsTopic)
	defer consumer.Close()

	err = consumer.Consume(ctx, func(ctx context.Context, msg kafkaGo.Message) error {
		var event kafka.BookingEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Printf("decode event error: %v", err)
			return nil
		}

		notification := &domain.Notification{
			UserID:  event.UserID,
			Message: messageFor(event),
		}
		if err := notificationRepo.Create(ctx, notification); err != nil {
			log.Printf("store notification for booking %d: %v", event.BookingID, err)
		}

		user, err := userRepo.GetByID(ctx, event.UserID)
		if err != nil {
			log.Printf("lookup user %d: %v", event.UserID, err)
			return nil
		}
		return sender.Send(ctx, user.Email, event)
	})
	if err != nil && ctx.Err() == nil {
		log.Fatalf("consumer stopped: %v", err)
	}
}

func messageFor(event kafka.BookingEvent) string {
	switch event.Type {
	case kafka.EventBookingCreated:
		return fmt.Sprintf("Booking %d created for flight %d. Please proceed to payment.", event.BookingID, event.FlightID)
	case kafka.EventBookingConfirmed:
		return fmt.Sprintf("Payment received. Booking %d for flight %d is confirmed.", event.BookingID, event.FlightID)
	case kafka.EventBookingCancelled:
		return fmt.Sprintf("Booking %d was cancelled. A refund of %d cents is on its way.", event.BookingID, event.RefundCents)
	default:
		return fmt.Sprintf("Update on booking %d: %s", event.BookingID, event.Status)
	}
}
