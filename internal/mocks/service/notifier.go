// Package service provides testify mocks for the capability interfaces.
package service

import (
	"context"
	"testing"
	"time"

	"pantry/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockNotifier is a mock implementation of service.Notifier.
type MockNotifier struct {
	mock.Mock
}

// NewMockNotifier creates a mock wired to the test's lifecycle.
func NewMockNotifier(t testing.TB) *MockNotifier {
	m := &MockNotifier{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockNotifier) DisplayNow(ctx context.Context, ownerID uuid.UUID, msg *service.PushMessage) (string, error) {
	args := m.Called(ctx, ownerID, msg)

	return args.String(0), args.Error(1)
}

func (m *MockNotifier) ScheduleAt(ctx context.Context, ownerID uuid.UUID, id string, msg *service.PushMessage, at time.Time, repeatDaily bool) (string, error) {
	args := m.Called(ctx, ownerID, id, msg, at, repeatDaily)

	return args.String(0), args.Error(1)
}

func (m *MockNotifier) Cancel(ctx context.Context, id string) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}
