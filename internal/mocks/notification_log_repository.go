package mocks

import (
	"context"
	"testing"

	"purity/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockNotificationLogRepository is a mock implementation of
// repository.NotificationLogRepository.
type MockNotificationLogRepository struct {
	mock.Mock
}

// NewMockNotificationLogRepository creates a new mock and registers an
// expectation check on test cleanup.
func NewMockNotificationLogRepository(t *testing.T) *MockNotificationLogRepository {
	m := &MockNotificationLogRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockNotificationLogRepository) Append(ctx context.Context, log *entity.NotificationLog) error {
	args := m.Called(ctx, log)

	return args.Error(0)
}

func (m *MockNotificationLogRepository) FindByCustomer(ctx context.Context, customerID string, limit, offset int) ([]*entity.NotificationLog, error) {
	args := m.Called(ctx, customerID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.NotificationLog), args.Error(1)
}

func (m *MockNotificationLogRepository) FindRecent(ctx context.Context, limit, offset int) ([]*entity.NotificationLog, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.NotificationLog), args.Error(1)
}
