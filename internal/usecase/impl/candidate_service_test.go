package impl

import (
	"context"
	"testing"
	"time"

	"pantry/internal/domain/entity"
	"pantry/internal/domain/repository"
	mockRepo "pantry/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type candidateFixture struct {
	svc          *candidateService
	locationRepo *mockRepo.MockLocationRepository
	productRepo  *mockRepo.MockProductRepository
	templateRepo *mockRepo.MockTemplateRepository
	ruleRepo     *mockRepo.MockRuleRepository
	subRepo      *mockRepo.MockSubscriptionRepository
	ownerID      uuid.UUID
}

func newCandidateFixture(t *testing.T) *candidateFixture {
	t.Helper()

	f := &candidateFixture{
		locationRepo: mockRepo.NewMockLocationRepository(t),
		productRepo:  mockRepo.NewMockProductRepository(t),
		templateRepo: mockRepo.NewMockTemplateRepository(t),
		ruleRepo:     mockRepo.NewMockRuleRepository(t),
		subRepo:      mockRepo.NewMockSubscriptionRepository(t),
		ownerID:      uuid.New(),
	}
	f.svc = NewCandidateService(CandidateServiceParams{
		LocationRepo:     f.locationRepo,
		ProductRepo:      f.productRepo,
		TemplateRepo:     f.templateRepo,
		RuleRepo:         f.ruleRepo,
		SubscriptionRepo: f.subRepo,
	}).(*candidateService)

	return f
}

func (f *candidateFixture) expectState(locations []*entity.Location, products []*entity.Product, instances []*entity.TemplateInstance, rules []*entity.ReminderRule) {
	f.locationRepo.On("FindByOwner", mock.Anything, f.ownerID).Return(locations, nil)
	f.productRepo.On("FindByOwner", mock.Anything, f.ownerID).Return(products, nil)
	f.templateRepo.On("FindByOwner", mock.Anything, f.ownerID).Return(instances, nil)
	f.ruleRepo.On("FindByOwner", mock.Anything, f.ownerID).Return(rules, nil)
	f.subRepo.On("FindByOwner", mock.Anything, f.ownerID).Return(nil, repository.ErrSubscriptionNotFound)
}

// activeLocation builds a location backed by a bound never-expiring template.
func (f *candidateFixture) activeLocation() (*entity.Location, *entity.TemplateInstance) {
	locationID := uuid.New()
	instance := &entity.TemplateInstance{
		ID:             uuid.New(),
		OwnerID:        f.ownerID,
		Kind:           entity.TemplateKindLocation,
		Used:           true,
		UsedInEntityID: &locationID,
		Validity:       entity.Validity{Kind: entity.ValidityNone},
	}
	location := &entity.Location{
		ID:                 locationID,
		OwnerID:            f.ownerID,
		Title:              "Kitchen",
		TemplateInstanceID: &instance.ID,
	}

	return location, instance
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func TestCandidateService_LocationRuleWithinWindow(t *testing.T) {
	f := newCandidateFixture(t)
	location, instance := f.activeLocation()

	product := &entity.Product{
		ID:         uuid.New(),
		OwnerID:    f.ownerID,
		LocationID: &location.ID,
		Title:      "Milk",
		ExpiryDate: day(2024, time.January, 10),
	}
	rule := &entity.ReminderRule{
		ID:               uuid.New(),
		OwnerID:          f.ownerID,
		Scope:            entity.RuleScopeLocation,
		TargetID:         location.ID,
		NotifyType:       entity.NotifyExpiry,
		DaysBeforeTarget: 3,
	}
	f.expectState(
		[]*entity.Location{location},
		[]*entity.Product{product},
		[]*entity.TemplateInstance{instance},
		[]*entity.ReminderRule{rule},
	)

	candidates, err := f.svc.Generate(context.Background(), f.ownerID, day(2024, time.January, 8))
	require.NoError(t, err)
	require.Len(t, candidates, 1)

	got := candidates[0]
	assert.Equal(t, product.ID, got.ProductID)
	assert.Equal(t, entity.NotifyExpiry, got.Type)
	assert.Equal(t, 2, got.RemainingDays)
	assert.Equal(t, "Milk: 2 days left before expiry", got.Message)
	assert.Equal(t, entity.RuleScopeLocation, got.SourceType)
	assert.Equal(t, location.ID, got.SourceID)
	assert.Equal(t, rule.ID, got.RuleID)
	// The candidate is only good for its triggering date.
	assert.Equal(t, day(2024, time.January, 10).Add(24*time.Hour-time.Nanosecond), got.ExpireAt)
}

func TestCandidateService_OutsideWindowProducesNothing(t *testing.T) {
	f := newCandidateFixture(t)
	location, instance := f.activeLocation()

	product := &entity.Product{
		ID:         uuid.New(),
		OwnerID:    f.ownerID,
		LocationID: &location.ID,
		Title:      "Flour",
		ExpiryDate: day(2024, time.January, 20),
	}
	rule := &entity.ReminderRule{
		ID:               uuid.New(),
		Scope:            entity.RuleScopeLocation,
		TargetID:         location.ID,
		NotifyType:       entity.NotifyExpiry,
		DaysBeforeTarget: 3,
	}
	f.expectState(
		[]*entity.Location{location},
		[]*entity.Product{product},
		[]*entity.TemplateInstance{instance},
		[]*entity.ReminderRule{rule},
	)

	candidates, err := f.svc.Generate(context.Background(), f.ownerID, day(2024, time.January, 8))
	require.NoError(t, err)
	assert.Empty(t, candidates)
}

func TestCandidateService_PastTargetProducesNothing(t *testing.T) {
	f := newCandidateFixture(t)
	location, instance := f.activeLocation()

	product := &entity.Product{
		ID:         uuid.New(),
		OwnerID:    f.ownerID,
		LocationID: &location.ID,
		Title:      "Yogurt",
		ExpiryDate: day(2024, time.January, 5),
	}
	rule := &entity.ReminderRule{
		ID:               uuid.New(),
		Scope:            entity.RuleScopeLocation,
		TargetID:         location.ID,
		NotifyType:       entity.NotifyExpiry,
		DaysBeforeTarget: 30,
	}
	f.expectState(
		[]*entity.Location{location},
		[]*entity.Product{product},
		[]*entity.TemplateInstance{instance},
		[]*entity.ReminderRule{rule},
	)

	candidates, err := f.svc.Generate(context.Background(), f.ownerID, day(2024, time.January, 8))
	require.NoError(t, err)
	assert.Empty(t, candidates)
}

func TestCandidateService_TargetDayDisplaysAsOneDay(t *testing.T) {
	f := newCandidateFixture(t)
	location, instance := f.activeLocation()

	product := &entity.Product{
		ID:         uuid.New(),
		OwnerID:    f.ownerID,
		LocationID: &location.ID,
		Title:      "Cheese",
		ExpiryDate: day(2024, time.January, 8).Add(18 * time.Hour), // Later the same day.
	}
	rule := &entity.ReminderRule{
		ID:               uuid.New(),
		Scope:            entity.RuleScopeLocation,
		TargetID:         location.ID,
		NotifyType:       entity.NotifyExpiry,
		DaysBeforeTarget: 3,
	}
	f.expectState(
		[]*entity.Location{location},
		[]*entity.Product{product},
		[]*entity.TemplateInstance{instance},
		[]*entity.ReminderRule{rule},
	)

	candidates, err := f.svc.Generate(context.Background(), f.ownerID, day(2024, time.January, 8).Add(9*time.Hour))
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, 0, candidates[0].RemainingDays)
	assert.Equal(t, "Cheese: 1 day left before expiry", candidates[0].Message)
}

func TestCandidateService_DisabledLocationSkipped(t *testing.T) {
	f := newCandidateFixture(t)
	location, instance := f.activeLocation()
	location.Disabled = true

	product := &entity.Product{
		ID:         uuid.New(),
		OwnerID:    f.ownerID,
		LocationID: &location.ID,
		Title:      "Milk",
		ExpiryDate: day(2024, time.January, 9),
	}
	rule := &entity.ReminderRule{
		ID:               uuid.New(),
		Scope:            entity.RuleScopeLocation,
		TargetID:         location.ID,
		NotifyType:       entity.NotifyExpiry,
		DaysBeforeTarget: 3,
	}
	f.expectState(
		[]*entity.Location{location},
		[]*entity.Product{product},
		[]*entity.TemplateInstance{instance},
		[]*entity.ReminderRule{rule},
	)

	candidates, err := f.svc.Generate(context.Background(), f.ownerID, day(2024, time.January, 8))
	require.NoError(t, err)
	assert.Empty(t, candidates)
}

func TestCandidateService_MissingTemplateFailsClosed(t *testing.T) {
	f := newCandidateFixture(t)
	location, _ := f.activeLocation()
	// The referenced instance is absent from the pool entirely.

	product := &entity.Product{
		ID:         uuid.New(),
		OwnerID:    f.ownerID,
		LocationID: &location.ID,
		Title:      "Milk",
		ExpiryDate: day(2024, time.January, 9),
	}
	rule := &entity.ReminderRule{
		ID:               uuid.New(),
		Scope:            entity.RuleScopeLocation,
		TargetID:         location.ID,
		NotifyType:       entity.NotifyExpiry,
		DaysBeforeTarget: 3,
	}
	f.expectState(
		[]*entity.Location{location},
		[]*entity.Product{product},
		[]*entity.TemplateInstance{},
		[]*entity.ReminderRule{rule},
	)

	candidates, err := f.svc.Generate(context.Background(), f.ownerID, day(2024, time.January, 8))
	require.NoError(t, err)
	assert.Empty(t, candidates)
}

func TestCandidateService_ConsumedProductSkipped(t *testing.T) {
	f := newCandidateFixture(t)
	location, instance := f.activeLocation()

	product := &entity.Product{
		ID:         uuid.New(),
		OwnerID:    f.ownerID,
		LocationID: &location.ID,
		Title:      "Milk",
		ExpiryDate: day(2024, time.January, 9),
		IsConsumed: true,
	}
	rule := &entity.ReminderRule{
		ID:               uuid.New(),
		Scope:            entity.RuleScopeLocation,
		TargetID:         location.ID,
		NotifyType:       entity.NotifyExpiry,
		DaysBeforeTarget: 3,
	}
	f.expectState(
		[]*entity.Location{location},
		[]*entity.Product{product},
		[]*entity.TemplateInstance{instance},
		[]*entity.ReminderRule{rule},
	)

	candidates, err := f.svc.Generate(context.Background(), f.ownerID, day(2024, time.January, 8))
	require.NoError(t, err)
	assert.Empty(t, candidates)
}

func TestCandidateService_ProductRuleOverridesLocationRule(t *testing.T) {
	f := newCandidateFixture(t)
	location, instance := f.activeLocation()

	estimated := day(2024, time.January, 9)
	product := &entity.Product{
		ID:               uuid.New(),
		OwnerID:          f.ownerID,
		LocationID:       &location.ID,
		Title:            "Shampoo",
		ExpiryDate:       day(2024, time.January, 9),
		EstimatedEndDate: &estimated,
	}
	locationRule := &entity.ReminderRule{
		ID:               uuid.New(),
		Scope:            entity.RuleScopeLocation,
		TargetID:         location.ID,
		NotifyType:       entity.NotifyExpiry,
		DaysBeforeTarget: 3,
	}
	productRule := &entity.ReminderRule{
		ID:                         uuid.New(),
		Scope:                      entity.RuleScopeProduct,
		TargetID:                   product.ID,
		NotifyType:                 entity.NotifyEstimated,
		DaysBeforeTarget:           3,
		IgnoreLocationNotification: true,
	}
	f.expectState(
		[]*entity.Location{location},
		[]*entity.Product{product},
		[]*entity.TemplateInstance{instance},
		[]*entity.ReminderRule{locationRule, productRule},
	)

	candidates, err := f.svc.Generate(context.Background(), f.ownerID, day(2024, time.January, 8))
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, entity.RuleScopeProduct, candidates[0].SourceType)
	assert.Equal(t, entity.NotifyEstimated, candidates[0].Type)
	assert.Equal(t, 1, candidates[0].RemainingDays)
	assert.Equal(t, "Shampoo: about 1 day left", candidates[0].Message)
}

func TestCandidateService_EstimatedRuleWithoutDateSkipped(t *testing.T) {
	f := newCandidateFixture(t)
	location, instance := f.activeLocation()

	product := &entity.Product{
		ID:         uuid.New(),
		OwnerID:    f.ownerID,
		LocationID: &location.ID,
		Title:      "Soap",
		ExpiryDate: day(2024, time.June, 1),
	}
	rule := &entity.ReminderRule{
		ID:               uuid.New(),
		Scope:            entity.RuleScopeProduct,
		TargetID:         product.ID,
		NotifyType:       entity.NotifyEstimated,
		DaysBeforeTarget: 7,
	}
	f.expectState(
		[]*entity.Location{location},
		[]*entity.Product{product},
		[]*entity.TemplateInstance{instance},
		[]*entity.ReminderRule{rule},
	)

	candidates, err := f.svc.Generate(context.Background(), f.ownerID, day(2024, time.January, 8))
	require.NoError(t, err)
	assert.Empty(t, candidates)
}

func TestCandidateService_ProductWithoutLocationSkipped(t *testing.T) {
	f := newCandidateFixture(t)

	product := &entity.Product{
		ID:         uuid.New(),
		OwnerID:    f.ownerID,
		Title:      "Loose item",
		ExpiryDate: day(2024, time.January, 9),
	}
	rule := &entity.ReminderRule{
		ID:               uuid.New(),
		Scope:            entity.RuleScopeProduct,
		TargetID:         product.ID,
		NotifyType:       entity.NotifyExpiry,
		DaysBeforeTarget: 3,
	}
	f.expectState(
		[]*entity.Location{},
		[]*entity.Product{product},
		[]*entity.TemplateInstance{},
		[]*entity.ReminderRule{rule},
	)

	candidates, err := f.svc.Generate(context.Background(), f.ownerID, day(2024, time.January, 8))
	require.NoError(t, err)
	assert.Empty(t, candidates)
}

func TestCandidateService_MultipleProductsEmitIndependently(t *testing.T) {
	f := newCandidateFixture(t)
	location, instance := f.activeLocation()

	milk := &entity.Product{
		ID:         uuid.New(),
		OwnerID:    f.ownerID,
		LocationID: &location.ID,
		Title:      "Milk",
		ExpiryDate: day(2024, time.January, 9),
	}
	bread := &entity.Product{
		ID:         uuid.New(),
		OwnerID:    f.ownerID,
		LocationID: &location.ID,
		Title:      "Bread",
		ExpiryDate: day(2024, time.January, 10),
	}
	rule := &entity.ReminderRule{
		ID:               uuid.New(),
		Scope:            entity.RuleScopeLocation,
		TargetID:         location.ID,
		NotifyType:       entity.NotifyExpiry,
		DaysBeforeTarget: 3,
	}
	f.expectState(
		[]*entity.Location{location},
		[]*entity.Product{milk, bread},
		[]*entity.TemplateInstance{instance},
		[]*entity.ReminderRule{rule},
	)

	candidates, err := f.svc.Generate(context.Background(), f.ownerID, day(2024, time.January, 8))
	require.NoError(t, err)
	require.Len(t, candidates, 2)
	assert.Equal(t, 1, candidates[0].RemainingDays)
	assert.Equal(t, 2, candidates[1].RemainingDays)
}
