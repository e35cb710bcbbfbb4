package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sadmanCR7/aeropulse/internal/domain"
	"github.com/sadmanCR7/aeropulse/internal/service/flights"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockFlightUseCase struct {
	mock.Mock
}

func (m *MockFlightUseCase) Search(ctx context.Context, input flights.SearchInput) ([]domain.Flight, error) {
	args := m.Called(ctx, input)
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *MockFlightUseCase) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

func (m *MockFlightUseCase) ListAirports(ctx context.Context) ([]domain.Airport, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Airport), args.Error(1)
}

func TestFlightHandler_search(t *testing.T) {
	mockService := &MockFlightUseCase{}
	handler := NewFlightHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/flights?origin=DAC&destination=CDG&fare_class=ECONOMY&adults=2&children=1", nil)

	mockService.On("Search", c.Request.Context(), flights.SearchInput{
		Origin: "DAC", Destination: "CDG", FareClass: "ECONOMY",
		Adults: 2, Children: 1, Infants: 0,
	}).Return([]domain.Flight{{ID: 1, DepartureAirport: "DAC", DestinationAirport: "CDG"}}, nil)

	handler.search(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []domain.Flight
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
	mockService.AssertExpectations(t)
}

func TestFlightHandler_search_NoMatches(t *testing.T) {
	mockService := &MockFlightUseCase{}
	handler := NewFlightHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/flights?origin=DAC", nil)

	mockService.On("Search", c.Request.Context(), mock.Anything).Return([]domain.Flight{}, nil)

	handler.search(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String(), "empty list, not an error")
}

func TestFlightHandler_get(t *testing.T) {
	mockService := &MockFlightUseCase{}
	handler := NewFlightHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/flights/4", nil)
	c.Params = gin.Params{{Key: "id", Value: "4"}}

	mockService.On("GetByID", c.Request.Context(), int64(4)).Return(&domain.Flight{ID: 4}, nil)

	handler.get(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestFlightHandler_get_NotFound(t *testing.T) {
	mockService := &MockFlightUseCase{}
	handler := NewFlightHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/flights/99", nil)
	c.Params = gin.Params{{Key: "id", Value: "99"}}

	mockService.On("GetByID", c.Request.Context(), int64(99)).Return(nil, domain.ErrFlightNotFound)

	handler.get(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestFlightHandler_get_InvalidID(t *testing.T) {
	handler := NewFlightHandler(&MockFlightUseCase{})

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/flights/abc", nil)
	c.Params = gin.Params{{Key: "id", Value: "abc"}}

	handler.get(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
