// Package usecase provides testify mocks for the use case interfaces.
package usecase

import (
	"context"
	"testing"
	"time"

	"pantry/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockCandidateUsecase is a mock implementation of usecase.CandidateUsecase.
type MockCandidateUsecase struct {
	mock.Mock
}

// NewMockCandidateUsecase creates a mock wired to the test's lifecycle.
func NewMockCandidateUsecase(t testing.TB) *MockCandidateUsecase {
	m := &MockCandidateUsecase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockCandidateUsecase) Generate(ctx context.Context, ownerID uuid.UUID, today time.Time) ([]*entity.NotificationCandidate, error) {
	args := m.Called(ctx, ownerID, today)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.NotificationCandidate), args.Error(1)
}
