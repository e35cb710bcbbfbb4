package notifications

import (
	"context"
	"testing"

	"github.com/sadmanCR7/aeropulse/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) Create(ctx context.Context, n *domain.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockNotificationRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Notification, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Notification), args.Error(1)
}

func (m *MockNotificationRepository) MarkRead(ctx context.Context, id, userID int64) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

func TestNotificationService_ListByUser(t *testing.T) {
	repo := &MockNotificationRepository{}
	service := NewNotificationService(repo)

	repo.On("ListByUser", mock.Anything, int64(7)).Return([]domain.Notification{
		{ID: 1, UserID: 7, Message: "Booking 3 created for flight 5. Please proceed to payment."},
	}, nil)

	result, err := service.ListByUser(context.Background(), 7)

	assert.NoError(t, err)
	assert.Len(t, result, 1)
	repo.AssertExpectations(t)
}

func TestNotificationService_MarkRead_NotOwned(t *testing.T) {
	repo := &MockNotificationRepository{}
	service := NewNotificationService(repo)

	repo.On("MarkRead", mock.Anything, int64(1), int64(7)).Return(domain.ErrNotificationNotFound)

	err := service.MarkRead(context.Background(), 1, 7)

	assert.ErrorIs(t, err, domain.ErrNotificationNotFound)
}
