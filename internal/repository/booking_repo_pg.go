package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sadmanCR7/aeropulse/internal/domain"
)

type BookingRepository interface {
	CreatePending(ctx context.Context, booking *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Booking, error)
	Confirm(ctx context.Context, bookingID int64, method string) (*domain.Payment, *domain.Ticket, *domain.Invoice, error)
	Cancel(ctx context.Context, booking *domain.Booking) (*domain.Cancellation, error)
	HasConfirmed(ctx context.Context, userID, flightID int64) (bool, error)
	GetPayment(ctx context.Context, bookingID int64) (*domain.Payment, error)
}

type PGBookingRepository struct {
	db *pgxpool.Pool
}

func NewBookingRepository(db *pgxpool.Pool) BookingRepository {
	return &PGBookingRepository{db: db}
}

const bookingColumns = `id, user_id, flight_id, fare_class, adults, children, infants, status, total_fare_cents, created_at, updated_at`

func scanBooking(row pgx.Row) (*domain.Booking, error) {
	var b domain.Booking
	err := row.Scan(&b.ID, &b.UserID, &b.FlightID, &b.FareClass, &b.Adults, &b.Children, &b.Infants,
		&b.Status, &b.TotalFareCents, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// CreatePending decrements the flight's seat pool and inserts the PENDING
// booking in one transaction. The decrement is conditional on enough seats
// remaining, so concurrent bookings can never oversell the class.
func (r *PGBookingRepository) CreatePending(ctx context.Context, booking *domain.Booking) error {
	passengers := booking.TotalPassengers()

	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	seats := seatColumn(booking.FareClass)
	decrement := fmt.Sprintf(`UPDATE flights SET %[1]s = %[1]s - $1, updated_at = now() WHERE id=$2 AND %[1]s >= $1 RETURNING %s`,
		seats, priceColumn(booking.FareClass))

	var priceCents int64
	if err := tx.QueryRow(ctx, decrement, passengers, booking.FlightID).Scan(&priceCents); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			var exists bool
			if err := tx.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM flights WHERE id=$1)`, booking.FlightID).Scan(&exists); err != nil {
				return err
			}
			if !exists {
				return domain.ErrFlightNotFound
			}
			return domain.ErrInsufficientSeats
		}
		return err
	}

	booking.Status = domain.BookingStatusPending
	booking.TotalFareCents = priceCents * int64(passengers)
	if err := tx.QueryRow(ctx, `INSERT INTO bookings (user_id, flight_id, fare_class, adults, children, infants, status, total_fare_cents)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at`,
		booking.UserID, booking.FlightID, booking.FareClass, booking.Adults, booking.Children, booking.Infants,
		booking.Status, booking.TotalFareCents).
		Scan(&booking.ID, &booking.CreatedAt, &booking.UpdatedAt); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *PGBookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	row := r.db.QueryRow(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id=$1`, id)
	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, err
	}
	return b, nil
}

func (r *PGBookingRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Booking, error) {
	rows, err := r.db.Query(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE user_id=$1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := make([]domain.Booking, 0)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, *b)
	}
	return bookings, rows.Err()
}

// Confirm flips a PENDING booking to CONFIRMED and creates the payment,
// ticket and invoice rows as one atomic unit. The status flip is conditional,
// so a concurrent confirm of the same booking fails with ErrInvalidState
// instead of paying twice.
func (r *PGBookingRepository) Confirm(ctx context.Context, bookingID int64, method string) (*domain.Payment, *domain.Ticket, *domain.Invoice, error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, nil, nil, err
	}
	defer tx.Rollback(ctx)

	var amountCents int64
	err = tx.QueryRow(ctx, `UPDATE bookings SET status=$1, updated_at=now() WHERE id=$2 AND status=$3 RETURNING total_fare_cents`,
		domain.BookingStatusConfirmed, bookingID, domain.BookingStatusPending).Scan(&amountCents)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, nil, domain.ErrInvalidState
		}
		return nil, nil, nil, err
	}

	payment := &domain.Payment{BookingID: bookingID, AmountCents: amountCents, Method: method}
	if err := tx.QueryRow(ctx, `INSERT INTO payments (booking_id, amount_cents, method) VALUES ($1, $2, $3) RETURNING id, paid_at`,
		bookingID, amountCents, method).Scan(&payment.ID, &payment.PaidAt); err != nil {
		return nil, nil, nil, err
	}

	ticket := &domain.Ticket{BookingID: bookingID, TicketNumber: uuid.NewString()}
	if err := tx.QueryRow(ctx, `INSERT INTO tickets (booking_id, ticket_number) VALUES ($1, $2) RETURNING id, issued_at`,
		bookingID, ticket.TicketNumber).Scan(&ticket.ID, &ticket.IssuedAt); err != nil {
		return nil, nil, nil, err
	}

	invoice := &domain.Invoice{PaymentID: payment.ID, InvoiceNumber: uuid.NewString()}
	if err := tx.QueryRow(ctx, `INSERT INTO invoices (payment_id, invoice_number) VALUES ($1, $2) RETURNING id, issued_at`,
		payment.ID, invoice.InvoiceNumber).Scan(&invoice.ID, &invoice.IssuedAt); err != nil {
		return nil, nil, nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, nil, nil, err
	}
	return payment, ticket, invoice, nil
}

// Cancel flips a CONFIRMED booking to CANCELLED, restores the seats it held
// and records the refund, all in one transaction. A second cancel finds the
// booking already CANCELLED and fails the conditional update, so seats are
// restored and the refund issued exactly once.
func (r *PGBookingRepository) Cancel(ctx context.Context, booking *domain.Booking) (*domain.Cancellation, error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	res, err := tx.Exec(ctx, `UPDATE bookings SET status=$1, updated_at=now() WHERE id=$2 AND status=$3`,
		domain.BookingStatusCancelled, booking.ID, domain.BookingStatusConfirmed)
	if err != nil {
		return nil, err
	}
	if res.RowsAffected() == 0 {
		return nil, domain.ErrInvalidState
	}

	seats := seatColumn(booking.FareClass)
	restore := fmt.Sprintf(`UPDATE flights SET %[1]s = %[1]s + $1, updated_at = now() WHERE id=$2`, seats)
	if _, err := tx.Exec(ctx, restore, booking.TotalPassengers(), booking.FlightID); err != nil {
		return nil, err
	}

	var payment domain.Payment
	if err := tx.QueryRow(ctx, `SELECT id, booking_id, amount_cents, method, paid_at FROM payments WHERE booking_id=$1`, booking.ID).
		Scan(&payment.ID, &payment.BookingID, &payment.AmountCents, &payment.Method, &payment.PaidAt); err != nil {
		return nil, err
	}

	cancellation := &domain.Cancellation{BookingID: booking.ID, RefundCents: payment.RefundCents()}
	if err := tx.QueryRow(ctx, `INSERT INTO cancellations (booking_id, refund_cents) VALUES ($1, $2) RETURNING id, cancelled_at`,
		booking.ID, cancellation.RefundCents).Scan(&cancellation.ID, &cancellation.CancelledAt); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return cancellation, nil
}

func (r *PGBookingRepository) HasConfirmed(ctx context.Context, userID, flightID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM bookings WHERE user_id=$1 AND flight_id=$2 AND status=$3)`,
		userID, flightID, domain.BookingStatusConfirmed).Scan(&exists)
	return exists, err
}

func (r *PGBookingRepository) GetPayment(ctx context.Context, bookingID int64) (*domain.Payment, error) {
	var p domain.Payment
	err := r.db.QueryRow(ctx, `SELECT id, booking_id, amount_cents, method, paid_at FROM payments WHERE booking_id=$1`, bookingID).
		Scan(&p.ID, &p.BookingID, &p.AmountCents, &p.Method, &p.PaidAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, err
	}
	return &p, nil
}

var _ BookingRepository = (*PGBookingRepository)(nil)
