package explore

import (
	"context"
	"strings"

	"github.com/sadmanCR7/aeropulse/internal/domain"
	"github.com/sadmanCR7/aeropulse/internal/repository"
)

type ExploreUseCase interface {
	PriceMap(ctx context.Context, origin string) (map[string]int64, error)
	Explore(ctx context.Context, input ExploreInput) ([]domain.Flight, error)
}

type Cache interface {
	GetPriceMap(ctx context.Context, origin string) (map[string]int64, error)
	SetPriceMap(ctx context.Context, origin string, prices map[string]int64) error
}

type ExploreInput struct {
	Origin      string `json:"origin"`
	BudgetCents int64  `json:"budget_cents"`
	FareClass   string `json:"fare_class"`
}

type ExploreService struct {
	flights  repository.FlightRepository
	airports repository.AirportRepository
	cache    Cache
}

func NewExploreService(flights repository.FlightRepository, airports repository.AirportRepository, cache Cache) *ExploreService {
	return &ExploreService{flights: flights, airports: airports, cache: cache}
}

// PriceMap returns the minimum economy fare per destination country for
// flights leaving origin. The country comes from the destination airport's
// free-text location; entries whose location cannot be parsed are skipped.
func (s *ExploreService) PriceMap(ctx context.Context, origin string) (map[string]int64, error) {
	if _, err := s.airports.GetByCode(ctx, origin); err != nil {
		return nil, err
	}

	if s.cache != nil {
		if cached, err := s.cache.GetPriceMap(ctx, origin); err == nil && cached != nil {
			return cached, nil
		}
	}

	perAirport, err := s.flights.MinEconomyByDestination(ctx, origin)
	if err != nil {
		return nil, err
	}

	prices := make(map[string]int64)
	for _, p := range perAirport {
		country, ok := CountryOf(p.Location)
		if !ok {
			continue
		}
		if current, seen := prices[country]; !seen || p.MinPriceCents < current {
			prices[country] = p.MinPriceCents
		}
	}

	if s.cache != nil {
		_ = s.cache.SetPriceMap(ctx, origin, prices)
	}
	return prices, nil
}

// Explore returns the single cheapest flight per destination at or under the
// budget in the requested class.
func (s *ExploreService) Explore(ctx context.Context, input ExploreInput) ([]domain.Flight, error) {
	class := domain.FareClass(strings.ToUpper(input.FareClass))
	if input.FareClass == "" {
		class = domain.FareClassEconomy
	}
	if !class.IsValid() {
		return nil, domain.ErrInvalidFareClass
	}

	return s.flights.CheapestPerDestination(ctx, input.Origin, input.BudgetCents, class)
}

// CountryOf extracts the country from a "City, Country" location string: the
// trimmed text after the last comma. Locations without a comma-separated
// country yield ok=false.
func CountryOf(location string) (string, bool) {
	idx := strings.LastIndex(location, ",")
	if idx < 0 {
		return "", false
	}
	country := strings.TrimSpace(location[idx+1:])
	if country == "" {
		return "", false
	}
	return country, true
}

var _ ExploreUseCase = (*ExploreService)(nil)
