package impl

import (
	"context"
	"fmt"
	"time"

	"pantry/internal/domain/entity"
	"pantry/internal/domain/policy"
	"pantry/internal/domain/repository"
	"pantry/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type candidateService struct {
	locationRepo     repository.LocationRepository
	productRepo      repository.ProductRepository
	templateRepo     repository.TemplateRepository
	ruleRepo         repository.RuleRepository
	subscriptionRepo repository.SubscriptionRepository
}

// CandidateServiceParams holds dependencies for CandidateUsecase, injected by Fx.
type CandidateServiceParams struct {
	fx.In

	LocationRepo     repository.LocationRepository
	ProductRepo      repository.ProductRepository
	TemplateRepo     repository.TemplateRepository
	RuleRepo         repository.RuleRepository
	SubscriptionRepo repository.SubscriptionRepository
}

// NewCandidateService creates a new candidate generator instance
func NewCandidateService(params CandidateServiceParams) usecase.CandidateUsecase {
	return &candidateService{
		locationRepo:     params.LocationRepo,
		productRepo:      params.ProductRepo,
		templateRepo:     params.TemplateRepo,
		ruleRepo:         params.RuleRepo,
		subscriptionRepo: params.SubscriptionRepo,
	}
}

// candidateKey deduplicates emissions: every qualifying (rule, product, type)
// triple appears exactly once regardless of evaluation order.
type candidateKey struct {
	ruleID    uuid.UUID
	productID uuid.UUID
	notify    entity.NotifyType
}

// Generate computes all reminder candidates for the owner's calendar day.
func (s *candidateService) Generate(ctx context.Context, ownerID uuid.UUID, today time.Time) ([]*entity.NotificationCandidate, error) {
	locations, err := s.locationRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load locations")
	}

	products, err := s.productRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load products")
	}

	instances, err := s.templateRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load template pool")
	}

	rules, err := s.ruleRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load reminder rules")
	}

	sub, err := s.subscriptionRepo.FindByOwner(ctx, ownerID)
	if err != nil && !errors.Is(err, repository.ErrSubscriptionNotFound) {
		return nil, errors.Wrap(err, "failed to load subscription")
	}

	pool := make(map[uuid.UUID]*entity.TemplateInstance, len(instances))
	for _, instance := range instances {
		pool[instance.ID] = instance
	}

	locationByID := make(map[uuid.UUID]*entity.Location, len(locations))
	for _, location := range locations {
		locationByID[location.ID] = location
	}

	productByID := make(map[uuid.UUID]*entity.Product, len(products))
	productsByLocation := make(map[uuid.UUID][]*entity.Product)
	for _, product := range products {
		productByID[product.ID] = product
		if product.LocationID != nil {
			productsByLocation[*product.LocationID] = append(productsByLocation[*product.LocationID], product)
		}
	}

	// Partition rules by scope; product rules are also indexed by product so
	// the location pass can honor IgnoreLocationNotification.
	var locationRules, productRules []*entity.ReminderRule
	productRuleByProduct := make(map[uuid.UUID]*entity.ReminderRule)
	for _, rule := range rules {
		switch rule.Scope {
		case entity.RuleScopeLocation:
			locationRules = append(locationRules, rule)
		case entity.RuleScopeProduct:
			productRules = append(productRules, rule)
			productRuleByProduct[rule.TargetID] = rule
		}
	}

	skipLocation := func(location *entity.Location) bool {
		return location.Disabled || policy.IsLocationExpired(location, pool, sub, today)
	}

	seen := make(map[candidateKey]struct{})
	var candidates []*entity.NotificationCandidate

	emit := func(rule *entity.ReminderRule, product *entity.Product, sourceType entity.RuleScope, sourceID uuid.UUID) {
		candidate := s.evaluateWindow(rule, product, today)
		if candidate == nil {
			return
		}

		key := candidateKey{ruleID: rule.ID, productID: product.ID, notify: rule.NotifyType}
		if _, dup := seen[key]; dup {
			return
		}
		seen[key] = struct{}{}

		candidate.SourceType = sourceType
		candidate.SourceID = sourceID
		candidates = append(candidates, candidate)
	}

	for _, rule := range locationRules {
		location, ok := locationByID[rule.TargetID]
		if !ok || skipLocation(location) {
			continue
		}

		for _, product := range productsByLocation[location.ID] {
			if product.IsConsumed {
				continue
			}
			if productRule, ok := productRuleByProduct[product.ID]; ok && productRule.IgnoreLocationNotification {
				continue
			}
			emit(rule, product, entity.RuleScopeLocation, location.ID)
		}
	}

	for _, rule := range productRules {
		product, ok := productByID[rule.TargetID]
		if !ok || product.IsConsumed {
			continue
		}
		// Resolve the owning location; without one the disabled/expired gate
		// cannot be evaluated, so the product is skipped.
		if product.LocationID == nil {
			continue
		}
		location, ok := locationByID[*product.LocationID]
		if !ok || skipLocation(location) {
			continue
		}
		emit(rule, product, entity.RuleScopeProduct, product.ID)
	}

	return candidates, nil
}

// evaluateWindow applies the rule's date window to the product. Returns nil
// when no candidate is due.
func (s *candidateService) evaluateWindow(rule *entity.ReminderRule, product *entity.Product, today time.Time) *entity.NotificationCandidate {
	var target time.Time
	switch rule.NotifyType {
	case entity.NotifyExpiry:
		target = product.ExpiryDate
	case entity.NotifyEstimated:
		if product.EstimatedEndDate == nil {
			return nil
		}
		target = *product.EstimatedEndDate
	default:
		return nil
	}

	remaining := policy.DaysUntil(today, target)
	if remaining < 0 || remaining > rule.DaysBeforeTarget {
		return nil
	}

	return &entity.NotificationCandidate{
		ProductID:     product.ID,
		ProductTitle:  product.Title,
		Type:          rule.NotifyType,
		RemainingDays: remaining,
		Message:       candidateMessage(product.Title, rule.NotifyType, remaining),
		ExpireAt:      policy.EndOfDay(target),
		RuleID:        rule.ID,
	}
}

func candidateMessage(title string, notify entity.NotifyType, remaining int) string {
	days := policy.DisplayDays(remaining)
	unit := "days"
	if days == 1 {
		unit = "day"
	}

	if notify == entity.NotifyEstimated {
		return fmt.Sprintf("%s: about %d %s left", title, days, unit)
	}

	return fmt.Sprintf("%s: %d %s left before expiry", title, days, unit)
}
