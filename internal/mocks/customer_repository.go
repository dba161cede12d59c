// Package mocks provides hand-written testify mocks for the domain
// interfaces used in unit tests.
package mocks

import (
	"context"
	"testing"

	"purity/internal/domain/entity"
	"purity/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// MockCustomerRepository is a mock implementation of repository.CustomerRepository.
type MockCustomerRepository struct {
	mock.Mock
}

// NewMockCustomerRepository creates a new mock and registers an expectation
// check on test cleanup.
func NewMockCustomerRepository(t *testing.T) *MockCustomerRepository {
	m := &MockCustomerRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockCustomerRepository) ScanAll(ctx context.Context) ([]*entity.Customer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindByID(ctx context.Context, customerID string) (*entity.Customer, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Customer), args.Error(1)
}

func (m *MockCustomerRepository) MarkUsageNotified(ctx context.Context, customerID string, threshold repository.UsageThreshold) error {
	args := m.Called(ctx, customerID, threshold)

	return args.Error(0)
}

func (m *MockCustomerRepository) SetFCMToken(ctx context.Context, customerID, token string) error {
	args := m.Called(ctx, customerID, token)

	return args.Error(0)
}

func (m *MockCustomerRepository) ClearFCMToken(ctx context.Context, customerID string) error {
	args := m.Called(ctx, customerID)

	return args.Error(0)
}
