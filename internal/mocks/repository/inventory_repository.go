package repository

import (
	"context"
	"testing"

	"pantry/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockLocationRepository is a mock implementation of repository.LocationRepository.
type MockLocationRepository struct {
	mock.Mock
}

// NewMockLocationRepository creates a mock wired to the test's lifecycle.
func NewMockLocationRepository(t testing.TB) *MockLocationRepository {
	m := &MockLocationRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockLocationRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Location, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Location), args.Error(1)
}

func (m *MockLocationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Location, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Location), args.Error(1)
}

func (m *MockLocationRepository) UpdateDisabled(ctx context.Context, id uuid.UUID, disabled bool) error {
	args := m.Called(ctx, id, disabled)

	return args.Error(0)
}

// MockProductRepository is a mock implementation of repository.ProductRepository.
type MockProductRepository struct {
	mock.Mock
}

// NewMockProductRepository creates a mock wired to the test's lifecycle.
func NewMockProductRepository(t testing.TB) *MockProductRepository {
	m := &MockProductRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockProductRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Product, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Product), args.Error(1)
}

func (m *MockProductRepository) FindByLocation(ctx context.Context, locationID uuid.UUID) ([]*entity.Product, error) {
	args := m.Called(ctx, locationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Product), args.Error(1)
}
