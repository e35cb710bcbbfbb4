package flights

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

func (m *MockCache) GetAirports(ctx context.Context) ([]domain.Airport, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Airport), args.Error(1)
}

func (m *MockCache) SetAirports(ctx context.Context, airports []domain.Airport) error {
	args := m.Called(ctx, airports)
	return args.Error(0)
}

func TestFlightService_Search_PassengerCounting(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	service := NewFlightService(mockRepo, &MockAirportRepository{}, nil)
	ctx := context.Background()

	// 2 adults + 1 child need seats; 2 infants do not
	mockRepo.On("Search", ctx, "DAC", "CDG", domain.FareClassBusiness, 3).
		Return([]domain.Flight{{ID: 1}}, nil).Once()

	result, err := service.Search(ctx, SearchInput{
		Origin: "DAC", Destination: "CDG", FareClass: "business",
		Adults: 2, Children: 1, Infants: 2,
	})

	assert.NoError(t, err)
	assert.Len(t, result, 1)
	mockRepo.AssertExpectations(t)
}

func TestFlightService_Search_Defaults(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	service := NewFlightService(mockRepo, &MockAirportRepository{}, nil)
	ctx := context.Background()

	mockRepo.On("Search", ctx, "DAC", "", domain.FareClassEconomy, 1).
		Return([]domain.Flight{}, nil).Once()

	result, err := service.Search(ctx, SearchInput{Origin: "DAC"})

	assert.NoError(t, err)
	assert.Empty(t, result)
	mockRepo.AssertExpectations(t)
}

func TestFlightService_Search_NoRouteListsCatalog(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	service := NewFlightService(mockRepo, &MockAirportRepository{}, nil)
	ctx := context.Background()

	mockRepo.On("List", ctx).Return([]domain.Flight{{ID: 1}, {ID: 2}}, nil).Once()

	result, err := service.Search(ctx, SearchInput{})

	assert.NoError(t, err)
	assert.Len(t, result, 2)
	mockRepo.AssertNotCalled(t, "Search", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestFlightService_Search_InvalidClass(t *testing.T) {
	service := NewFlightService(&MockFlightRepository{}, &MockAirportRepository{}, nil)

	_, err := service.Search(context.Background(), SearchInput{Origin: "DAC", FareClass: "FIRST"})
	assert.ErrorIs(t, err, domain.ErrInvalidFareClass)
}

func TestFlightService_ListAirports_CacheMissThenSet(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	mockAirports := &MockAirportRepository{}
	mockCache := &MockCache{}
	service := NewFlightService(mockRepo, mockAirports, mockCache)
	ctx := context.Background()

	airports := []domain.Airport{{Code: "DAC", Name: "Hazrat Shahjalal", Location: "Dhaka, Bangladesh"}}
	mockCache.On("GetAirports", ctx).Return(nil, nil).Once()
	mockAirports.On("List", ctx).Return(airports, nil).Once()
	mockCache.On("SetAirports", ctx, airports).Return(nil).Once()

	result, err := service.ListAirports(ctx)

	assert.NoError(t, err)
	assert.Equal(t, airports, result)
	mockCache.AssertExpectations(t)
	mockAirports.AssertExpectations(t)
}

func TestFlightService_ListAirports_CacheHit(t *testing.T) {
	mockAirports := &MockAirportRepository{}
	mockCache := &MockCache{}
	service := NewFlightService(&MockFlightRepository{}, mockAirports, mockCache)
	ctx := context.Background()

	cached := []domain.Airport{{Code: "DAC"}}
	mockCache.On("GetAirports", ctx).Return(cached, nil).Once()

	result, err := service.ListAirports(ctx)

	assert.NoError(t, err)
	assert.Equal(t, cached, result)
	mockAirports.AssertNotCalled(t, "List", mock.Anything)
}
