package domain

import "time"

// RefundRate is the share of the paid amount returned on cancellation.
// The remaining 10% is kept as the cancellation fee.
const RefundRateNumerator, RefundRateDenominator = 90, 100

type Payment struct {
	ID          int64
	BookingID   int64
	AmountCents int64
	Method      string
	PaidAt      time.Time
}

// RefundCents computes the refund for this payment in integer cents.
func (p *Payment) RefundCents() int64 {
	return p.AmountCents * RefundRateNumerator / RefundRateDenominator
}

type Ticket struct {
	ID           int64
	BookingID    int64
	TicketNumber string
	IssuedAt     time.Time
}

type Invoice struct {
	ID            int64
	PaymentID     int64
	InvoiceNumber string
	IssuedAt      time.Time
}

type Cancellation struct {
	ID          int64
	BookingID   int64
	RefundCents int64
	CancelledAt time.Time
}
