package domain

import "time"

type FareClass string

const (
	FareClassEconomy  FareClass = "ECONOMY"
	FareClassBusiness FareClass = "BUSINESS"
)

func (f FareClass) IsValid() bool {
	switch f {
	case FareClassEconomy, FareClassBusiness:
		return true
	}
	return false
}

func (f FareClass) String() string {
	return string(f)
}

type Airport struct {
	Code string
	Name string
	// Location is free text in "City, Country" form.
	Location string
}

type Airline struct {
	Code string
	Name string
}

type Flight struct {
	ID                 int64
	AirlineCode        string
	DepartureAirport   string
	DestinationAirport string
	DepartureTime      time.Time
	ArrivalTime        time.Time
	EconomyPriceCents  int64
	EconomySeats       int
	BusinessPriceCents int64
	BusinessSeats      int
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// PriceCents returns the per-person price for the given fare class.
func (f *Flight) PriceCents(class FareClass) int64 {
	if class == FareClassBusiness {
		return f.BusinessPriceCents
	}
	return f.EconomyPriceCents
}

// AvailableSeats returns the remaining seat pool for the given fare class.
func (f *Flight) AvailableSeats(class FareClass) int {
	if class == FareClassBusiness {
		return f.BusinessSeats
	}
	return f.EconomySeats
}
