package booking

import (
	"context"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/sadmanCR7/aeropulse/internal/domain"
	"github.com/sadmanCR7/aeropulse/internal/kafka"
	"github.com/sadmanCR7/aeropulse/internal/repository"
)

// DefaultPaymentMethod is used when the caller does not name one. Payment is
// simulated; there is no external gateway behind it.
const DefaultPaymentMethod = "Credit Card (Simulated)"

type BookingUseCase interface {
	CreateBooking(ctx context.Context, input CreateBookingInput) (*domain.Booking, error)
	ConfirmPayment(ctx context.Context, bookingID, userID int64, method string) (*ConfirmResult, error)
	CancelBooking(ctx context.Context, bookingID, userID int64) (*domain.Cancellation, error)
	GetBooking(ctx context.Context, bookingID, userID int64) (*domain.Booking, error)
	GetBookingPayment(ctx context.Context, bookingID, userID int64) (*domain.Payment, error)
	ListBookings(ctx context.Context, userID int64) ([]domain.Booking, error)
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type BookingService struct {
	bookings           repository.BookingRepository
	flights            repository.FlightRepository
	producer           Producer
	bookingTopic       string
	notificationsTopic string
}

type CreateBookingInput struct {
	UserID    int64  `json:"user_id"`
	FlightID  int64  `json:"flight_id"`
	FareClass string `json:"fare_class"`
	Adults    int    `json:"adults"`
	Children  int    `json:"children"`
	Infants   int    `json:"infants"`
}

// ConfirmResult carries everything fulfillment produces in one payment.
type ConfirmResult struct {
	Booking *domain.Booking
	Payment *domain.Payment
	Ticket  *domain.Ticket
	Invoice *domain.Invoice
}

type BookingServiceOption func(*BookingService)

func WithNotificationsTopic(topic string) BookingServiceOption {
	return func(s *BookingService) {
		s.notificationsTopic = topic
	}
}

func NewBookingService(
	bookings repository.BookingRepository,
	flights repository.FlightRepository,
	producer Producer,
	bookingTopic string,
	opts ...BookingServiceOption,
) *BookingService {
	service := &BookingService{
		bookings:     bookings,
		flights:      flights,
		producer:     producer,
		bookingTopic: bookingTopic,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// CreateBooking validates the request and reserves seats. The seat decrement
// and the booking insert commit together; on contention the loser gets
// ErrInsufficientSeats and no booking row.
func (s *BookingService) CreateBooking(ctx context.Context, input CreateBookingInput) (*domain.Booking, error) {
	class := domain.FareClass(strings.ToUpper(input.FareClass))
	if !class.IsValid() {
		return nil, domain.ErrInvalidFareClass
	}
	if input.Adults < 1 || input.Children < 0 || input.Infants < 0 {
		return nil, domain.ErrInvalidPassengers
	}

	booking := &domain.Booking{
		UserID:    input.UserID,
		FlightID:  input.FlightID,
		FareClass: class,
		Adults:    input.Adults,
		Children:  input.Children,
		Infants:   input.Infants,
	}

	if err := s.bookings.CreatePending(ctx, booking); err != nil {
		return nil, err
	}

	booking.Status = domain.BookingStatusPending
	s.publish(ctx, kafka.EventBookingCreated, booking, 0)
	return booking, nil
}

// ConfirmPayment turns a PENDING booking the user owns into a CONFIRMED one,
// creating the payment, ticket and invoice in a single transaction.
func (s *BookingService) ConfirmPayment(ctx context.Context, bookingID, userID int64, method string) (*ConfirmResult, error) {
	current, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !current.BelongsToUser(userID) {
		return nil, domain.ErrNotAuthorized
	}
	if !current.CanConfirm() {
		return nil, domain.ErrInvalidState
	}

	if method == "" {
		method = DefaultPaymentMethod
	}

	payment, ticket, invoice, err := s.bookings.Confirm(ctx, bookingID, method)
	if err != nil {
		return nil, err
	}

	current.Status = domain.BookingStatusConfirmed
	s.publish(ctx, kafka.EventBookingConfirmed, current, 0)

	return &ConfirmResult{Booking: current, Payment: payment, Ticket: ticket, Invoice: invoice}, nil
}

// CancelBooking reverses a CONFIRMED booking: the held seats go back to the
// flight's pool and 90% of the paid amount is refunded. CANCELLED is terminal,
// so a repeat cancel fails with ErrInvalidState and nothing is applied twice.
func (s *BookingService) CancelBooking(ctx context.Context, bookingID, userID int64) (*domain.Cancellation, error) {
	current, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !current.BelongsToUser(userID) {
		return nil, domain.ErrNotAuthorized
	}
	if !current.CanCancel() {
		return nil, domain.ErrInvalidState
	}

	cancellation, err := s.bookings.Cancel(ctx, current)
	if err != nil {
		return nil, err
	}

	current.Status = domain.BookingStatusCancelled
	s.publish(ctx, kafka.EventBookingCancelled, current, cancellation.RefundCents)

	return cancellation, nil
}

func (s *BookingService) GetBooking(ctx context.Context, bookingID, userID int64) (*domain.Booking, error) {
	booking, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !booking.BelongsToUser(userID) {
		return nil, domain.ErrNotAuthorized
	}
	return booking, nil
}

// GetBookingPayment returns the payment behind a booking the user owns. A
// booking that was never paid has no payment row and reports not found.
func (s *BookingService) GetBookingPayment(ctx context.Context, bookingID, userID int64) (*domain.Payment, error) {
	booking, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !booking.BelongsToUser(userID) {
		return nil, domain.ErrNotAuthorized
	}
	return s.bookings.GetPayment(ctx, bookingID)
}

func (s *BookingService) ListBookings(ctx context.Context, userID int64) ([]domain.Booking, error) {
	return s.bookings.ListByUser(ctx, userID)
}

// publish sends the lifecycle event to the booking topic and, if configured,
// to the notifications topic. Delivery is best effort; the booking state has
// already committed.
func (s *BookingService) publish(ctx context.Context, eventType string, booking *domain.Booking, refundCents int64) {
	if s.producer == nil || s.bookingTopic == "" {
		return
	}
	event := kafka.BookingEvent{
		Type:           eventType,
		BookingID:      booking.ID,
		UserID:         booking.UserID,
		FlightID:       booking.FlightID,
		FareClass:      booking.FareClass.String(),
		Passengers:     booking.TotalPassengers(),
		TotalFareCents: booking.TotalFareCents,
		RefundCents:    refundCents,
		Status:         booking.Status.String(),
		OccurredAt:     time.Now(),
	}
	key := keyFor(booking.ID)
	if err := s.producer.Publish(ctx, s.bookingTopic, key, event); err != nil {
		log.Printf("WARNING: failed to publish %s for booking %d: %v", eventType, booking.ID, err)
	}
	if s.notificationsTopic != "" {
		if err := s.producer.Publish(ctx, s.notificationsTopic, key, event); err != nil {
			log.Printf("WARNING: failed to publish %s notification for booking %d: %v", eventType, booking.ID, err)
		}
	}
}

func keyFor(bookingID int64) string {
	return strconv.FormatInt(bookingID, 10)
}

var _ BookingUseCase = (*BookingService)(nil)
