package flights

import (
	"context"
	"strings"

	"github.com/sadmanCR7/aeropulse/internal/domain"
	"github.com/sadmanCR7/aeropulse/internal/repository"
)

type FlightUseCase interface {
	Search(ctx context.Context, input SearchInput) ([]domain.Flight, error)
	GetByID(ctx context.Context, id int64) (*domain.Flight, error)
	ListAirports(ctx context.Context) ([]domain.Airport, error)
}

// Cache holds the airport list, which changes rarely and is read on every
// search page load.
type Cache interface {
	GetAirports(ctx context.Context) ([]domain.Airport, error)
	SetAirports(ctx context.Context, airports []domain.Airport) error
}

type SearchInput struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	FareClass   string `json:"fare_class"`
	Adults      int    `json:"adults"`
	Children    int    `json:"children"`
	Infants     int    `json:"infants"`
}

type FlightService struct {
	flights  repository.FlightRepository
	airports repository.AirportRepository
	cache    Cache
}

func NewFlightService(flights repository.FlightRepository, airports repository.AirportRepository, cache Cache) *FlightService {
	return &FlightService{flights: flights, airports: airports, cache: cache}
}

// Search lists flights on the route with enough unsold seats in the requested
// class for everyone who occupies one. Infants ride on a lap and do not count.
// With no route at all it returns the whole catalog.
func (s *FlightService) Search(ctx context.Context, input SearchInput) ([]domain.Flight, error) {
	class := domain.FareClass(strings.ToUpper(input.FareClass))
	if input.FareClass == "" {
		class = domain.FareClassEconomy
	}
	if !class.IsValid() {
		return nil, domain.ErrInvalidFareClass
	}

	if input.Origin == "" && input.Destination == "" {
		return s.flights.List(ctx)
	}

	adults := input.Adults
	if adults < 1 {
		adults = 1
	}
	passengers := adults + input.Children

	return s.flights.Search(ctx, input.Origin, input.Destination, class, passengers)
}

func (s *FlightService) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	return s.flights.GetByID(ctx, id)
}

func (s *FlightService) ListAirports(ctx context.Context) ([]domain.Airport, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetAirports(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	airports, err := s.airports.List(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.SetAirports(ctx, airports)
	}
	return airports, nil
}

var _ FlightUseCase = (*FlightService)(nil)
