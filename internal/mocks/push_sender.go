package mocks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
)

// MockPushSender is a mock implementation of service.PushSender.
type MockPushSender struct {
	mock.Mock
}

// NewMockPushSender creates a new mock and registers an expectation check on
// test cleanup.
func NewMockPushSender(t *testing.T) *MockPushSender {
	m := &MockPushSender{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockPushSender) Send(ctx context.Context, token, title, body string) error {
	args := m.Called(ctx, token, title, body)

	return args.Error(0)
}
