package email

import (
	"context"
	"fmt"

	"github.com/sadmanCR7/aeropulse/internal/kafka"
)

type Sender struct{}

func NewSender() *Sender {
	return &Sender{}
}

func (s *Sender) Send(ctx context.Context, recipient string, event kafka.BookingEvent) error {
	fmt.Printf("send email to %s about %s for booking %d on flight %d\n", recipient, event.Type, event.BookingID, event.FlightID)
	return nil
}
