package impl

import (
	"context"
	"testing"
	"time"

	"pantry/internal/domain/entity"
	domainerrors "pantry/internal/domain/errors"
	"pantry/internal/domain/repository"
	mockRepo "pantry/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTemplateService(t *testing.T, templateRepo *mockRepo.MockTemplateRepository, subRepo *mockRepo.MockSubscriptionRepository, tx repository.TransactionManager) *templateService {
	t.Helper()

	svc := NewTemplateService(TemplateServiceParams{
		TemplateRepo:     templateRepo,
		SubscriptionRepo: subRepo,
		TxManager:        tx,
		Config:           newTestConfig(),
	}).(*templateService)
	svc.clock = fixedClock{now: time.Date(2024, 1, 8, 12, 0, 0, 0, time.UTC)}

	return svc
}

func TestTemplateService_Load_ProvisionsGuestAllotment(t *testing.T) {
	templateRepo := mockRepo.NewMockTemplateRepository(t)
	subRepo := mockRepo.NewMockSubscriptionRepository(t)
	svc := newTemplateService(t, templateRepo, subRepo, nil)

	owner := entity.Owner{ID: uuid.New(), Identity: entity.IdentityGuest}

	templateRepo.On("FindByOwner", mock.Anything, owner.ID).Return([]*entity.TemplateInstance{}, nil)
	templateRepo.On("CreateBatch", mock.Anything, mock.MatchedBy(func(batch []*entity.TemplateInstance) bool {
		return len(batch) == 1
	})).Return(nil)

	pool, err := svc.Load(context.Background(), owner)
	require.NoError(t, err)
	require.Len(t, pool, 1)
	assert.Equal(t, entity.TemplateKindLocation, pool[0].Kind)
	assert.Equal(t, entity.ValidityNone, pool[0].Validity.Kind)
	assert.Equal(t, -1, pool[0].BaseSlots)
	assert.False(t, pool[0].Used)
}

func TestTemplateService_Load_ProvisionsMemberAllotment(t *testing.T) {
	templateRepo := mockRepo.NewMockTemplateRepository(t)
	subRepo := mockRepo.NewMockSubscriptionRepository(t)
	svc := newTemplateService(t, templateRepo, subRepo, nil)

	owner := entity.Owner{ID: uuid.New(), Identity: entity.IdentityMember}

	templateRepo.On("FindByOwner", mock.Anything, owner.ID).Return([]*entity.TemplateInstance{}, nil)
	templateRepo.On("CreateBatch", mock.Anything, mock.MatchedBy(func(batch []*entity.TemplateInstance) bool {
		return len(batch) == 3
	})).Return(nil)

	pool, err := svc.Load(context.Background(), owner)
	require.NoError(t, err)
	require.Len(t, pool, 3)
	// The first instance is the free tier; the rest ride on the subscription.
	assert.Equal(t, entity.ValidityNone, pool[0].Validity.Kind)
	assert.Equal(t, entity.ValiditySubscription, pool[1].Validity.Kind)
	assert.Equal(t, entity.ValiditySubscription, pool[2].Validity.Kind)
}

func TestTemplateService_Load_ReturnsExistingPool(t *testing.T) {
	templateRepo := mockRepo.NewMockTemplateRepository(t)
	subRepo := mockRepo.NewMockSubscriptionRepository(t)
	svc := newTemplateService(t, templateRepo, subRepo, nil)

	owner := entity.Owner{ID: uuid.New(), Identity: entity.IdentityGuest}
	existing := []*entity.TemplateInstance{
		{ID: uuid.New(), OwnerID: owner.ID, Kind: entity.TemplateKindLocation},
	}

	templateRepo.On("FindByOwner", mock.Anything, owner.ID).Return(existing, nil)

	pool, err := svc.Load(context.Background(), owner)
	require.NoError(t, err)
	assert.Equal(t, existing, pool)
	templateRepo.AssertNotCalled(t, "CreateBatch", mock.Anything, mock.Anything)
}

func TestTemplateService_Bind_Success(t *testing.T) {
	templateRepo := mockRepo.NewMockTemplateRepository(t)
	subRepo := mockRepo.NewMockSubscriptionRepository(t)
	svc := newTemplateService(t, templateRepo, subRepo, nil)

	templateID := uuid.New()
	entityID := uuid.New()
	instance := &entity.TemplateInstance{ID: templateID, Kind: entity.TemplateKindLocation}

	templateRepo.On("FindByID", mock.Anything, templateID).Return(instance, nil)
	templateRepo.On("Update", mock.Anything, instance).Return(nil)

	bound, err := svc.Bind(context.Background(), templateID, entityID)
	require.NoError(t, err)
	assert.True(t, bound.Used)
	require.NotNil(t, bound.UsedInEntityID)
	assert.Equal(t, entityID, *bound.UsedInEntityID)
}

func TestTemplateService_Bind_SameEntityIsNoop(t *testing.T) {
	templateRepo := mockRepo.NewMockTemplateRepository(t)
	subRepo := mockRepo.NewMockSubscriptionRepository(t)
	svc := newTemplateService(t, templateRepo, subRepo, nil)

	templateID := uuid.New()
	entityID := uuid.New()
	instance := &entity.TemplateInstance{ID: templateID, Used: true, UsedInEntityID: &entityID}

	templateRepo.On("FindByID", mock.Anything, templateID).Return(instance, nil)

	bound, err := svc.Bind(context.Background(), templateID, entityID)
	require.NoError(t, err)
	assert.Equal(t, instance, bound)
	templateRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestTemplateService_Bind_AlreadyBoundConflict(t *testing.T) {
	templateRepo := mockRepo.NewMockTemplateRepository(t)
	subRepo := mockRepo.NewMockSubscriptionRepository(t)
	svc := newTemplateService(t, templateRepo, subRepo, nil)

	templateID := uuid.New()
	otherEntity := uuid.New()
	instance := &entity.TemplateInstance{ID: templateID, Used: true, UsedInEntityID: &otherEntity}

	templateRepo.On("FindByID", mock.Anything, templateID).Return(instance, nil)

	_, err := svc.Bind(context.Background(), templateID, uuid.New())
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "TEMPLATE_ALREADY_BOUND", appErr.ErrorCode())
	// The conflict must not silently steal the binding.
	require.NotNil(t, instance.UsedInEntityID)
	assert.Equal(t, otherEntity, *instance.UsedInEntityID)
}

func TestTemplateService_Bind_NotFound(t *testing.T) {
	templateRepo := mockRepo.NewMockTemplateRepository(t)
	subRepo := mockRepo.NewMockSubscriptionRepository(t)
	svc := newTemplateService(t, templateRepo, subRepo, nil)

	templateID := uuid.New()
	templateRepo.On("FindByID", mock.Anything, templateID).Return(nil, repository.ErrTemplateNotFound)

	_, err := svc.Bind(context.Background(), templateID, uuid.New())
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "TEMPLATE_NOT_FOUND", appErr.ErrorCode())
}

func TestTemplateService_Release_ClearsBinding(t *testing.T) {
	templateRepo := mockRepo.NewMockTemplateRepository(t)
	subRepo := mockRepo.NewMockSubscriptionRepository(t)
	svc := newTemplateService(t, templateRepo, subRepo, nil)

	entityID := uuid.New()
	instance := &entity.TemplateInstance{ID: uuid.New(), Used: true, UsedInEntityID: &entityID}

	templateRepo.On("FindBoundToEntity", mock.Anything, entityID).Return(instance, nil)
	templateRepo.On("Update", mock.Anything, instance).Return(nil)

	require.NoError(t, svc.Release(context.Background(), entityID))
	assert.False(t, instance.Used)
	assert.Nil(t, instance.UsedInEntityID)
}

func TestTemplateService_Release_NothingBoundIsNoop(t *testing.T) {
	templateRepo := mockRepo.NewMockTemplateRepository(t)
	subRepo := mockRepo.NewMockSubscriptionRepository(t)
	svc := newTemplateService(t, templateRepo, subRepo, nil)

	entityID := uuid.New()
	templateRepo.On("FindBoundToEntity", mock.Anything, entityID).Return(nil, repository.ErrTemplateNotFound)

	require.NoError(t, svc.Release(context.Background(), entityID))
}

func TestTemplateService_ListAvailable_FiltersUsedAndInactive(t *testing.T) {
	templateRepo := mockRepo.NewMockTemplateRepository(t)
	subRepo := mockRepo.NewMockSubscriptionRepository(t)
	svc := newTemplateService(t, templateRepo, subRepo, nil)

	owner := entity.Owner{ID: uuid.New(), Identity: entity.IdentityMember}
	boundEntity := uuid.New()
	past := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	plain := &entity.TemplateInstance{ID: uuid.New(), Validity: entity.Validity{Kind: entity.ValidityNone}}
	used := &entity.TemplateInstance{ID: uuid.New(), Used: true, UsedInEntityID: &boundEntity}
	lapsed := &entity.TemplateInstance{ID: uuid.New(), Validity: entity.Validity{Kind: entity.ValidityAbsolute, ExpiresAt: &past}}
	subTied := &entity.TemplateInstance{ID: uuid.New(), Validity: entity.Validity{Kind: entity.ValiditySubscription}}

	templateRepo.On("FindByOwner", mock.Anything, owner.ID).
		Return([]*entity.TemplateInstance{plain, used, lapsed, subTied}, nil)
	subRepo.On("FindByOwner", mock.Anything, owner.ID).Return(nil, repository.ErrSubscriptionNotFound)

	available, err := svc.ListAvailable(context.Background(), owner)
	require.NoError(t, err)
	require.Len(t, available, 1)
	assert.Equal(t, plain.ID, available[0].ID)
}

func TestTemplateService_ResetForIdentityChange_PreservesBoundInstances(t *testing.T) {
	templateRepo := mockRepo.NewMockTemplateRepository(t)
	subRepo := mockRepo.NewMockSubscriptionRepository(t)
	locationRepo := mockRepo.NewMockLocationRepository(t)
	tx := &mockRepo.StubTransactionManager{
		Factory: &mockRepo.StubRepositoryFactory{TemplateRepo: templateRepo, LocationRepo: locationRepo},
	}
	svc := newTemplateService(t, templateRepo, subRepo, tx)

	owner := entity.Owner{ID: uuid.New(), Identity: entity.IdentityMember}
	locationID := uuid.New()
	bound := &entity.TemplateInstance{ID: uuid.New(), Kind: entity.TemplateKindLocation, Used: true, UsedInEntityID: &locationID}
	unbound := &entity.TemplateInstance{ID: uuid.New(), Kind: entity.TemplateKindLocation}

	templateRepo.On("FindByOwner", mock.Anything, owner.ID).
		Return([]*entity.TemplateInstance{bound, unbound}, nil)
	locationRepo.On("FindByID", mock.Anything, locationID).
		Return(&entity.Location{ID: locationID, OwnerID: owner.ID}, nil)
	templateRepo.On("DeleteByOwnerExcept", mock.Anything, owner.ID, []uuid.UUID{bound.ID}).Return(nil)
	templateRepo.On("CreateBatch", mock.Anything, mock.MatchedBy(func(batch []*entity.TemplateInstance) bool {
		return len(batch) == 2
	})).Return(nil)

	pool, err := svc.ResetForIdentityChange(context.Background(), owner)
	require.NoError(t, err)
	require.Len(t, pool, 3)
	assert.Equal(t, bound.ID, pool[0].ID)
}

func TestTemplateService_ResetForIdentityChange_DropsDanglingBinding(t *testing.T) {
	templateRepo := mockRepo.NewMockTemplateRepository(t)
	subRepo := mockRepo.NewMockSubscriptionRepository(t)
	locationRepo := mockRepo.NewMockLocationRepository(t)
	tx := &mockRepo.StubTransactionManager{
		Factory: &mockRepo.StubRepositoryFactory{TemplateRepo: templateRepo, LocationRepo: locationRepo},
	}
	svc := newTemplateService(t, templateRepo, subRepo, tx)

	owner := entity.Owner{ID: uuid.New(), Identity: entity.IdentityGuest}
	deletedLocation := uuid.New()
	dangling := &entity.TemplateInstance{ID: uuid.New(), Kind: entity.TemplateKindLocation, Used: true, UsedInEntityID: &deletedLocation}

	templateRepo.On("FindByOwner", mock.Anything, owner.ID).
		Return([]*entity.TemplateInstance{dangling}, nil)
	locationRepo.On("FindByID", mock.Anything, deletedLocation).
		Return(nil, repository.ErrLocationNotFound)
	templateRepo.On("DeleteByOwnerExcept", mock.Anything, owner.ID, []uuid.UUID{}).Return(nil)
	templateRepo.On("CreateBatch", mock.Anything, mock.MatchedBy(func(batch []*entity.TemplateInstance) bool {
		return len(batch) == 1
	})).Return(nil)

	pool, err := svc.ResetForIdentityChange(context.Background(), owner)
	require.NoError(t, err)
	require.Len(t, pool, 1)
	assert.NotEqual(t, dangling.ID, pool[0].ID)
}
