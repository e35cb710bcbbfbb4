package domain

import "errors"

var (
	ErrFlightNotFound       = errors.New("flight not found")
	ErrAirportNotFound      = errors.New("airport not found")
	ErrBookingNotFound      = errors.New("booking not found")
	ErrUserNotFound         = errors.New("user not found")
	ErrNotificationNotFound = errors.New("notification not found")

	ErrInsufficientSeats = errors.New("not enough seats available")
	ErrInvalidFareClass  = errors.New("invalid fare class")
	ErrInvalidState      = errors.New("operation not valid for current booking status")
	ErrNotAuthorized     = errors.New("booking does not belong to user")
	ErrNotEligible       = errors.New("no completed booking for this flight")

	ErrInvalidRating     = errors.New("rating must be between 1 and 5")
	ErrInvalidPassengers = errors.New("invalid passenger counts")

	ErrUsernameTaken     = errors.New("username already taken")
	ErrRegistrationToken = errors.New("invalid or expired registration token")
	ErrRegistrationStep  = errors.New("registration step out of order")
)
