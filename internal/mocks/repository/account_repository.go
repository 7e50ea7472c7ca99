package repository

import (
	"context"
	"testing"

	"pantry/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockSubscriptionRepository is a mock implementation of repository.SubscriptionRepository.
type MockSubscriptionRepository struct {
	mock.Mock
}

// NewMockSubscriptionRepository creates a mock wired to the test's lifecycle.
func NewMockSubscriptionRepository(t testing.TB) *MockSubscriptionRepository {
	m := &MockSubscriptionRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockSubscriptionRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.Subscription, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Subscription), args.Error(1)
}

// MockDeviceRepository is a mock implementation of repository.DeviceRepository.
type MockDeviceRepository struct {
	mock.Mock
}

// NewMockDeviceRepository creates a mock wired to the test's lifecycle.
func NewMockDeviceRepository(t testing.TB) *MockDeviceRepository {
	m := &MockDeviceRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockDeviceRepository) FindActiveByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Device, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Device), args.Error(1)
}

func (m *MockDeviceRepository) Upsert(ctx context.Context, device *entity.Device) error {
	args := m.Called(ctx, device)

	return args.Error(0)
}

func (m *MockDeviceRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}
