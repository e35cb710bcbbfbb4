package domain

import "time"

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "PENDING"
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
)

func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled:
		return true
	}
	return false
}

func (s BookingStatus) String() string {
	return string(s)
}

type Booking struct {
	ID             int64
	UserID         int64
	FlightID       int64
	FareClass      FareClass
	Adults         int
	Children       int
	Infants        int
	Status         BookingStatus
	TotalFareCents int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TotalPassengers counts the seats the booking occupies. Infants travel on a
// lap and never consume inventory or fare.
func (b *Booking) TotalPassengers() int {
	return b.Adults + b.Children
}

func (b *Booking) BelongsToUser(userID int64) bool {
	return b.UserID == userID
}

// CanConfirm reports whether the booking may move to CONFIRMED.
func (b *Booking) CanConfirm() bool {
	return b.Status == BookingStatusPending
}

// CanCancel reports whether the booking may move to CANCELLED. Only paid
// bookings are cancellable; CANCELLED is terminal.
func (b *Booking) CanCancel() bool {
	return b.Status == BookingStatusConfirmed
}
