package mocks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
)

// MockDeviceUsecase is a mock implementation of usecase.DeviceUsecase.
type MockDeviceUsecase struct {
	mock.Mock
}

// NewMockDeviceUsecase creates a new mock and registers an expectation check
// on test cleanup.
func NewMockDeviceUsecase(t *testing.T) *MockDeviceUsecase {
	m := &MockDeviceUsecase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockDeviceUsecase) RegisterToken(ctx context.Context, customerID, token string) error {
	args := m.Called(ctx, customerID, token)

	return args.Error(0)
}

func (m *MockDeviceUsecase) UnregisterToken(ctx context.Context, customerID string) error {
	args := m.Called(ctx, customerID)

	return args.Error(0)
}

func (m *MockDeviceUsecase) PairingQR(ctx context.Context, customerID string) ([]byte, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]byte), args.Error(1)
}
