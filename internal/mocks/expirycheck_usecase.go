package mocks

import (
	"context"
	"testing"

	"purity/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockExpiryCheckUsecase is a mock implementation of usecase.ExpiryCheckUsecase.
type MockExpiryCheckUsecase struct {
	mock.Mock
}

// NewMockExpiryCheckUsecase creates a new mock and registers an expectation
// check on test cleanup.
func NewMockExpiryCheckUsecase(t *testing.T) *MockExpiryCheckUsecase {
	m := &MockExpiryCheckUsecase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockExpiryCheckUsecase) RunExpiryCheck(ctx context.Context, trigger entity.TriggerType) (*entity.RunSummary, error) {
	args := m.Called(ctx, trigger)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.RunSummary), args.Error(1)
}

func (m *MockExpiryCheckUsecase) GetNotificationHistory(ctx context.Context, customerID string, limit, offset int) ([]*entity.NotificationLog, error) {
	args := m.Called(ctx, customerID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.NotificationLog), args.Error(1)
}
