package impl

import (
	"context"
	"sync"

	"pantry/config"
	"pantry/internal/domain/entity"
	domainerrors "pantry/internal/domain/errors"
	"pantry/internal/domain/policy"
	"pantry/internal/domain/repository"
	"pantry/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type templateService struct {
	templateRepo     repository.TemplateRepository
	subscriptionRepo repository.SubscriptionRepository
	txManager        repository.TransactionManager
	config           *config.Config
	clock            clock

	// Serializes load-mutate-save on the pool so two bind attempts cannot
	// race for the same instance.
	mu sync.Mutex
}

// TemplateServiceParams holds dependencies for TemplateUsecase, injected by Fx.
type TemplateServiceParams struct {
	fx.In

	TemplateRepo     repository.TemplateRepository
	SubscriptionRepo repository.SubscriptionRepository
	TxManager        repository.TransactionManager
	Config           *config.Config
}

// NewTemplateService creates a new template lifecycle service instance
func NewTemplateService(params TemplateServiceParams) usecase.TemplateUsecase {
	return &templateService{
		templateRepo:     params.TemplateRepo,
		subscriptionRepo: params.SubscriptionRepo,
		txManager:        params.TxManager,
		config:           params.Config,
		clock:            systemClock{},
	}
}

// Load returns the owner's pool, provisioning the default allotment on first run.
func (s *templateService) Load(ctx context.Context, owner entity.Owner) ([]*entity.TemplateInstance, error) {
	instances, err := s.templateRepo.FindByOwner(ctx, owner.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load template pool")
	}

	if len(instances) > 0 {
		return instances, nil
	}

	allotment := s.defaultAllotment(owner, s.allotmentSize(owner.Identity))
	if err := s.templateRepo.CreateBatch(ctx, allotment); err != nil {
		return nil, errors.Wrap(err, "failed to provision default allotment")
	}

	return allotment, nil
}

// Bind marks the template as used by the entity.
func (s *templateService) Bind(ctx context.Context, templateID, entityID uuid.UUID) (*entity.TemplateInstance, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	instance, err := s.templateRepo.FindByID(ctx, templateID)
	if err != nil {
		if errors.Is(err, repository.ErrTemplateNotFound) {
			return nil, domainerrors.ErrTemplateNotFound.WithDetails("template " + templateID.String())
		}

		return nil, errors.Wrap(err, "failed to find template instance")
	}

	if instance.Used {
		// Re-binding the same entity is a no-op.
		if instance.BoundTo(entityID) {
			return instance, nil
		}

		return nil, domainerrors.ErrTemplateAlreadyBound.WithDetails("template " + templateID.String())
	}

	instance.Used = true
	instance.UsedInEntityID = &entityID
	instance.UpdatedAt = s.clock.Now()

	if err := s.templateRepo.Update(ctx, instance); err != nil {
		return nil, errors.Wrap(err, "failed to bind template instance")
	}

	return instance, nil
}

// Release clears the binding of whichever instance holds the entity.
func (s *templateService) Release(ctx context.Context, entityID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	instance, err := s.templateRepo.FindBoundToEntity(ctx, entityID)
	if err != nil {
		if errors.Is(err, repository.ErrTemplateNotFound) {
			// Nothing bound: release is a no-op.
			return nil
		}

		return errors.Wrap(err, "failed to find bound template instance")
	}

	instance.Used = false
	instance.UsedInEntityID = nil
	instance.UpdatedAt = s.clock.Now()

	if err := s.templateRepo.Update(ctx, instance); err != nil {
		return errors.Wrap(err, "failed to release template instance")
	}

	return nil
}

// ListAvailable returns unused instances that are active per the validity policy.
func (s *templateService) ListAvailable(ctx context.Context, owner entity.Owner) ([]*entity.TemplateInstance, error) {
	instances, err := s.Load(ctx, owner)
	if err != nil {
		return nil, err
	}

	sub, err := s.loadSubscription(ctx, owner.ID)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	available := make([]*entity.TemplateInstance, 0, len(instances))
	for _, instance := range instances {
		if instance.Used {
			continue
		}
		if !policy.IsTemplateActive(instance, sub, now) {
			continue
		}
		available = append(available, instance)
	}

	return available, nil
}

// ResetForIdentityChange replaces the pool with a freshly sized allotment,
// preserving instances still bound to live entities so an in-use location is
// never silently orphaned.
func (s *templateService) ResetForIdentityChange(ctx context.Context, owner entity.Owner) ([]*entity.TemplateInstance, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var pool []*entity.TemplateInstance

	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		templateRepo := factory.NewTemplateRepository()
		locationRepo := factory.NewLocationRepository()

		instances, err := templateRepo.FindByOwner(ctx, owner.ID)
		if err != nil {
			return errors.Wrap(err, "failed to load template pool")
		}

		kept := make([]*entity.TemplateInstance, 0, len(instances))
		keptIDs := make([]uuid.UUID, 0, len(instances))
		for _, instance := range instances {
			if !s.boundToLiveEntity(ctx, locationRepo, instance) {
				continue
			}
			kept = append(kept, instance)
			keptIDs = append(keptIDs, instance.ID)
		}

		if err := templateRepo.DeleteByOwnerExcept(ctx, owner.ID, keptIDs); err != nil {
			return errors.Wrap(err, "failed to clear superseded instances")
		}

		pool = kept
		if deficit := s.allotmentSize(owner.Identity) - len(kept); deficit > 0 {
			fresh := s.defaultAllotment(owner, deficit)
			if err := templateRepo.CreateBatch(ctx, fresh); err != nil {
				return errors.Wrap(err, "failed to grant fresh allotment")
			}
			pool = append(pool, fresh...)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return pool, nil
}

// boundToLiveEntity reports whether the instance is bound to an entity that
// still exists.
func (s *templateService) boundToLiveEntity(ctx context.Context, locationRepo repository.LocationRepository, instance *entity.TemplateInstance) bool {
	if !instance.Used || instance.UsedInEntityID == nil {
		return false
	}

	if instance.Kind != entity.TemplateKindLocation {
		// Product slots carry no separate liveness check; used means live.
		return true
	}

	if _, err := locationRepo.FindByID(ctx, *instance.UsedInEntityID); err != nil {
		return false
	}

	return true
}

func (s *templateService) loadSubscription(ctx context.Context, ownerID uuid.UUID) (*entity.Subscription, error) {
	sub, err := s.subscriptionRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrSubscriptionNotFound) {
			// No subscription record: the policy treats nil as "no active
			// subscription".
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to load subscription")
	}

	return sub, nil
}

func (s *templateService) allotmentSize(identity entity.IdentityKind) int {
	if identity == entity.IdentityMember {
		return s.config.Entitlement.MemberLocationTemplates
	}

	return s.config.Entitlement.GuestLocationTemplates
}

// defaultAllotment synthesizes count fresh location templates. The first one
// is the free tier and never expires; the rest ride on the subscription.
func (s *templateService) defaultAllotment(owner entity.Owner, count int) []*entity.TemplateInstance {
	now := s.clock.Now()
	instances := make([]*entity.TemplateInstance, 0, count)
	for i := 0; i < count; i++ {
		validity := entity.Validity{Kind: entity.ValidityNone}
		if i > 0 {
			validity = entity.Validity{Kind: entity.ValiditySubscription}
		}
		instances = append(instances, &entity.TemplateInstance{
			ID:        uuid.New(),
			OwnerID:   owner.ID,
			Kind:      entity.TemplateKindLocation,
			BaseSlots: s.config.Entitlement.DefaultBaseSlots,
			Validity:  validity,
			GrantedAt: now,
			UpdatedAt: now,
		})
	}

	return instances
}
