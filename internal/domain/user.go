package domain

import "time"

type User struct {
	ID           int64
	Username     string
	PasswordHash string
	FirstName    string
	LastName     string
	Email        string
	CreatedAt    time.Time
}

type PassengerProfile struct {
	ID          int64
	UserID      int64
	PhoneNumber string
	Address     string
	Gender      string
}

type Review struct {
	ID        int64
	UserID    int64
	FlightID  int64
	Rating    int
	Comment   string
	CreatedAt time.Time
}

type Notification struct {
	ID      int64
	UserID  int64
	Message string
	SentAt  time.Time
	IsRead  bool
}
