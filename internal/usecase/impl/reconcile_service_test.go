package impl

import (
	"context"
	"testing"

	"pantry/internal/domain/entity"
	mockRepo "pantry/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newReconcileService(t *testing.T, locationRepo *mockRepo.MockLocationRepository, templateRepo *mockRepo.MockTemplateRepository) *reconcileService {
	t.Helper()

	return NewReconcileService(ReconcileServiceParams{
		LocationRepo: locationRepo,
		TemplateRepo: templateRepo,
		Logger:       newDiscardLogger(),
	}).(*reconcileService)
}

func TestReconcileService_DerivesDisabledFromPool(t *testing.T) {
	locationRepo := mockRepo.NewMockLocationRepository(t)
	templateRepo := mockRepo.NewMockTemplateRepository(t)
	svc := newReconcileService(t, locationRepo, templateRepo)

	ownerID := uuid.New()
	linked := &entity.Location{ID: uuid.New(), OwnerID: ownerID, Disabled: true}
	orphaned := &entity.Location{ID: uuid.New(), OwnerID: ownerID, Disabled: false}

	locationRepo.On("FindByOwner", mock.Anything, ownerID).
		Return([]*entity.Location{linked, orphaned}, nil)
	templateRepo.On("FindByOwner", mock.Anything, ownerID).
		Return([]*entity.TemplateInstance{
			{ID: uuid.New(), Used: true, UsedInEntityID: &linked.ID},
		}, nil)

	locationRepo.On("UpdateDisabled", mock.Anything, linked.ID, false).Return(nil)
	locationRepo.On("UpdateDisabled", mock.Anything, orphaned.ID, true).Return(nil)

	locations, err := svc.Reconcile(context.Background(), ownerID)
	require.NoError(t, err)
	require.Len(t, locations, 2)
	assert.False(t, linked.Disabled)
	assert.True(t, orphaned.Disabled)
}

func TestReconcileService_NoWritesWhenConsistent(t *testing.T) {
	locationRepo := mockRepo.NewMockLocationRepository(t)
	templateRepo := mockRepo.NewMockTemplateRepository(t)
	svc := newReconcileService(t, locationRepo, templateRepo)

	ownerID := uuid.New()
	linked := &entity.Location{ID: uuid.New(), OwnerID: ownerID, Disabled: false}
	orphaned := &entity.Location{ID: uuid.New(), OwnerID: ownerID, Disabled: true}

	locationRepo.On("FindByOwner", mock.Anything, ownerID).
		Return([]*entity.Location{linked, orphaned}, nil)
	templateRepo.On("FindByOwner", mock.Anything, ownerID).
		Return([]*entity.TemplateInstance{
			{ID: uuid.New(), Used: true, UsedInEntityID: &linked.ID},
		}, nil)

	_, err := svc.Reconcile(context.Background(), ownerID)
	require.NoError(t, err)
	locationRepo.AssertNotCalled(t, "UpdateDisabled", mock.Anything, mock.Anything, mock.Anything)
}

func TestReconcileService_ReadFailureLeavesCollectionUnchanged(t *testing.T) {
	locationRepo := mockRepo.NewMockLocationRepository(t)
	templateRepo := mockRepo.NewMockTemplateRepository(t)
	svc := newReconcileService(t, locationRepo, templateRepo)

	ownerID := uuid.New()
	locationRepo.On("FindByOwner", mock.Anything, ownerID).
		Return(nil, errors.New("connection reset"))

	locations, err := svc.Reconcile(context.Background(), ownerID)
	require.NoError(t, err)
	assert.Nil(t, locations)
}

func TestReconcileService_PoolReadFailureSkipsCycle(t *testing.T) {
	locationRepo := mockRepo.NewMockLocationRepository(t)
	templateRepo := mockRepo.NewMockTemplateRepository(t)
	svc := newReconcileService(t, locationRepo, templateRepo)

	ownerID := uuid.New()
	existing := []*entity.Location{
		{ID: uuid.New(), OwnerID: ownerID, Disabled: false},
	}

	locationRepo.On("FindByOwner", mock.Anything, ownerID).Return(existing, nil)
	templateRepo.On("FindByOwner", mock.Anything, ownerID).
		Return(nil, errors.New("connection reset"))

	locations, err := svc.Reconcile(context.Background(), ownerID)
	require.NoError(t, err)
	assert.Equal(t, existing, locations)
	assert.False(t, locations[0].Disabled)
}

func TestReconcileService_WriteFailurePropagates(t *testing.T) {
	locationRepo := mockRepo.NewMockLocationRepository(t)
	templateRepo := mockRepo.NewMockTemplateRepository(t)
	svc := newReconcileService(t, locationRepo, templateRepo)

	ownerID := uuid.New()
	orphaned := &entity.Location{ID: uuid.New(), OwnerID: ownerID, Disabled: false}

	locationRepo.On("FindByOwner", mock.Anything, ownerID).
		Return([]*entity.Location{orphaned}, nil)
	templateRepo.On("FindByOwner", mock.Anything, ownerID).
		Return([]*entity.TemplateInstance{}, nil)
	locationRepo.On("UpdateDisabled", mock.Anything, orphaned.ID, true).
		Return(errors.New("write timeout"))

	_, err := svc.Reconcile(context.Background(), ownerID)
	require.Error(t, err)
}
