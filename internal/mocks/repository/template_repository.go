// Package repository provides testify mocks for the persistence interfaces.
package repository

import (
	"context"
	"testing"

	"pantry/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockTemplateRepository is a mock implementation of repository.TemplateRepository.
type MockTemplateRepository struct {
	mock.Mock
}

// NewMockTemplateRepository creates a mock wired to the test's lifecycle.
func NewMockTemplateRepository(t testing.TB) *MockTemplateRepository {
	m := &MockTemplateRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTemplateRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.TemplateInstance, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.TemplateInstance), args.Error(1)
}

func (m *MockTemplateRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.TemplateInstance, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.TemplateInstance), args.Error(1)
}

func (m *MockTemplateRepository) FindBoundToEntity(ctx context.Context, entityID uuid.UUID) (*entity.TemplateInstance, error) {
	args := m.Called(ctx, entityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.TemplateInstance), args.Error(1)
}

func (m *MockTemplateRepository) CreateBatch(ctx context.Context, instances []*entity.TemplateInstance) error {
	args := m.Called(ctx, instances)

	return args.Error(0)
}

func (m *MockTemplateRepository) Update(ctx context.Context, instance *entity.TemplateInstance) error {
	args := m.Called(ctx, instance)

	return args.Error(0)
}

func (m *MockTemplateRepository) DeleteByOwnerExcept(ctx context.Context, ownerID uuid.UUID, keepIDs []uuid.UUID) error {
	args := m.Called(ctx, ownerID, keepIDs)

	return args.Error(0)
}

func (m *MockTemplateRepository) ListOwners(ctx context.Context) ([]uuid.UUID, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]uuid.UUID), args.Error(1)
}
