package repository

import (
	"context"
	"testing"

	"pantry/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockRuleRepository is a mock implementation of repository.RuleRepository.
type MockRuleRepository struct {
	mock.Mock
}

// NewMockRuleRepository creates a mock wired to the test's lifecycle.
func NewMockRuleRepository(t testing.TB) *MockRuleRepository {
	m := &MockRuleRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockRuleRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.ReminderRule, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.ReminderRule), args.Error(1)
}

// MockScheduleRepository is a mock implementation of repository.ScheduleRepository.
type MockScheduleRepository struct {
	mock.Mock
}

// NewMockScheduleRepository creates a mock wired to the test's lifecycle.
func NewMockScheduleRepository(t testing.TB) *MockScheduleRepository {
	m := &MockScheduleRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockScheduleRepository) FindRecord(ctx context.Context, ownerID uuid.UUID, kind entity.TriggerKind, day string) (*entity.ScheduleRecord, error) {
	args := m.Called(ctx, ownerID, kind, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.ScheduleRecord), args.Error(1)
}

func (m *MockScheduleRepository) MarkSent(ctx context.Context, record *entity.ScheduleRecord) error {
	args := m.Called(ctx, record)

	return args.Error(0)
}

// MockPreferenceRepository is a mock implementation of repository.PreferenceRepository.
type MockPreferenceRepository struct {
	mock.Mock
}

// NewMockPreferenceRepository creates a mock wired to the test's lifecycle.
func NewMockPreferenceRepository(t testing.TB) *MockPreferenceRepository {
	m := &MockPreferenceRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockPreferenceRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.ReminderPreferences, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.ReminderPreferences), args.Error(1)
}

func (m *MockPreferenceRepository) Save(ctx context.Context, prefs *entity.ReminderPreferences) error {
	args := m.Called(ctx, prefs)

	return args.Error(0)
}
