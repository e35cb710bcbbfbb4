package explore

import (
	"context"
	"testing"

	"github.com/sadmanCR7/aeropulse/internal/domain"
	"github.com/sadmanCR7/aeropulse/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockFlightRepository struct {
	mock.Mock
}

func (m *MockFlightRepository) List(ctx context.Context) ([]domain.Flight, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *MockFlightRepository) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

func (m *MockFlightRepository) Search(ctx context.Context, origin, destination string, class domain.FareClass, passengers int) ([]domain.Flight, error) {
	args := m.Called(ctx, origin, destination, class, passengers)
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *MockFlightRepository) MinEconomyByDestination(ctx context.Context, origin string) ([]repository.DestinationPrice, error) {
	args := m.Called(ctx, origin)
	return args.Get(0).([]repository.DestinationPrice), args.Error(1)
}

func (m *MockFlightRepository) CheapestPerDestination(ctx context.Context, origin string, budgetCents int64, class domain.FareClass) ([]domain.Flight, error) {
	args := m.Called(ctx, origin, budgetCents, class)
	return args.Get(0).([]domain.Flight), args.Error(1)
}

type MockAirportRepository struct {
	mock.Mock
}

func (m *MockAirportRepository) List(ctx context.Context) ([]domain.Airport, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Airport), args.Error(1)
}

func (m *MockAirportRepository) GetByCode(ctx context.Context, code string) (*domain.Airport, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Airport), args.Error(1)
}

type MockCache struct {
	mock.Mock
}

func (m *MockCache) GetPriceMap(ctx context.Context, origin string) (map[string]int64, error) {
	args := m.Called(ctx, origin)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int64), args.Error(1)
}

func (m *MockCache) SetPriceMap(ctx context.Context, origin string, prices map[string]int64) error {
	args := m.Called(ctx, origin, prices)
	return args.Error(0)
}

func TestCountryOf(t *testing.T) {
	testCases := []struct {
		location string
		country  string
		ok       bool
	}{
		{"Paris, France", "France", true},
		{"New York, USA", "USA", true},
		{"Kuala Lumpur, Selangor, Malaysia", "Malaysia", true},
		{"Dhaka,Bangladesh", "Bangladesh", true},
		{"Singapore", "", false},
		{"Oslo, ", "", false},
		{"", "", false},
	}

	for _, tc := range testCases {
		t.Run(tc.location, func(t *testing.T) {
			country, ok := CountryOf(tc.location)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.country, country)
		})
	}
}

func TestExploreService_PriceMap(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	mockAirports := &MockAirportRepository{}
	mockCache := &MockCache{}
	service := NewExploreService(mockRepo, mockAirports, mockCache)
	ctx := context.Background()

	mockAirports.On("GetByCode", ctx, "DAC").Return(&domain.Airport{Code: "DAC"}, nil).Once()
	mockCache.On("GetPriceMap", ctx, "DAC").Return(nil, nil).Once()
	mockRepo.On("MinEconomyByDestination", ctx, "DAC").Return([]repository.DestinationPrice{
		{AirportCode: "CDG", Location: "Paris, France", MinPriceCents: 45000},
		{AirportCode: "NCE", Location: "Nice, France", MinPriceCents: 38000},
		{AirportCode: "JFK", Location: "New York, USA", MinPriceCents: 80000},
		{AirportCode: "XXX", Location: "Atlantis", MinPriceCents: 1},
	}, nil).Once()

	expected := map[string]int64{"France": 38000, "USA": 80000}
	mockCache.On("SetPriceMap", ctx, "DAC", expected).Return(nil).Once()

	prices, err := service.PriceMap(ctx, "DAC")

	assert.NoError(t, err)
	assert.Equal(t, expected, prices, "cheapest airport wins per country; unparsable locations dropped")
	mockRepo.AssertExpectations(t)
	mockCache.AssertExpectations(t)
}

func TestExploreService_PriceMap_CacheHit(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	mockAirports := &MockAirportRepository{}
	mockCache := &MockCache{}
	service := NewExploreService(mockRepo, mockAirports, mockCache)
	ctx := context.Background()

	mockAirports.On("GetByCode", ctx, "DAC").Return(&domain.Airport{Code: "DAC"}, nil).Once()
	cached := map[string]int64{"France": 38000}
	mockCache.On("GetPriceMap", ctx, "DAC").Return(cached, nil).Once()

	prices, err := service.PriceMap(ctx, "DAC")

	assert.NoError(t, err)
	assert.Equal(t, cached, prices)
	mockRepo.AssertNotCalled(t, "MinEconomyByDestination", mock.Anything, mock.Anything)
}

func TestExploreService_PriceMap_Empty(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	mockAirports := &MockAirportRepository{}
	service := NewExploreService(mockRepo, mockAirports, nil)
	ctx := context.Background()

	mockAirports.On("GetByCode", ctx, "XYZ").Return(&domain.Airport{Code: "XYZ"}, nil).Once()
	mockRepo.On("MinEconomyByDestination", ctx, "XYZ").Return([]repository.DestinationPrice{}, nil).Once()

	prices, err := service.PriceMap(ctx, "XYZ")

	assert.NoError(t, err)
	assert.Empty(t, prices)
	assert.NotNil(t, prices, "no flights yields an empty mapping, not null")
}

func TestExploreService_PriceMap_UnknownOrigin(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	mockAirports := &MockAirportRepository{}
	service := NewExploreService(mockRepo, mockAirports, nil)
	ctx := context.Background()

	mockAirports.On("GetByCode", ctx, "ZZZ").Return(nil, domain.ErrAirportNotFound).Once()

	_, err := service.PriceMap(ctx, "ZZZ")

	assert.ErrorIs(t, err, domain.ErrAirportNotFound)
	mockRepo.AssertNotCalled(t, "MinEconomyByDestination", mock.Anything, mock.Anything)
}

func TestExploreService_Explore(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	service := NewExploreService(mockRepo, &MockAirportRepository{}, nil)
	ctx := context.Background()

	flightsOut := []domain.Flight{{ID: 1, DestinationAirport: "CDG", EconomyPriceCents: 38000}}
	mockRepo.On("CheapestPerDestination", ctx, "DAC", int64(50000), domain.FareClassEconomy).
		Return(flightsOut, nil).Once()

	result, err := service.Explore(ctx, ExploreInput{Origin: "DAC", BudgetCents: 50000})

	assert.NoError(t, err)
	assert.Equal(t, flightsOut, result)

	_, err = service.Explore(ctx, ExploreInput{Origin: "DAC", BudgetCents: 50000, FareClass: "PREMIUM"})
	assert.ErrorIs(t, err, domain.ErrInvalidFareClass)
}
