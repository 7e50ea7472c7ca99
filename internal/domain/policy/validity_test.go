package policy

import (
	"testing"
	"time"

	"pantry/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

var testNow = time.Date(2024, 1, 8, 10, 30, 0, 0, time.UTC)

func TestIsSubscriptionValid_NilSubscription(t *testing.T) {
	assert.False(t, IsSubscriptionValid(nil, testNow))
}

func TestIsSubscriptionValid_GoodStanding(t *testing.T) {
	expires := testNow.Add(30 * 24 * time.Hour)
	sub := &entity.Subscription{Valid: true, ExpiresAt: &expires}

	assert.True(t, IsSubscriptionValid(sub, testNow))
}

func TestIsSubscriptionValid_Expired(t *testing.T) {
	expires := testNow.Add(-time.Hour)
	sub := &entity.Subscription{Valid: true, ExpiresAt: &expires}

	assert.False(t, IsSubscriptionValid(sub, testNow))
}

func TestIsSubscriptionValid_Unsubscribed(t *testing.T) {
	sub := &entity.Subscription{Valid: true, Unsubscribed: true}

	assert.False(t, IsSubscriptionValid(sub, testNow))
}

func TestIsTemplateActive_NoDescriptor(t *testing.T) {
	inst := &entity.TemplateInstance{Validity: entity.Validity{Kind: entity.ValidityNone}}

	assert.True(t, IsTemplateActive(inst, nil, testNow))
}

func TestIsTemplateActive_AbsoluteExpiry(t *testing.T) {
	future := testNow.Add(time.Hour)
	past := testNow.Add(-time.Hour)

	active := &entity.TemplateInstance{Validity: entity.Validity{Kind: entity.ValidityAbsolute, ExpiresAt: &future}}
	expired := &entity.TemplateInstance{Validity: entity.Validity{Kind: entity.ValidityAbsolute, ExpiresAt: &past}}

	assert.True(t, IsTemplateActive(active, nil, testNow))
	assert.False(t, IsTemplateActive(expired, nil, testNow))
}

func TestIsTemplateActive_TiedToSubscription(t *testing.T) {
	inst := &entity.TemplateInstance{Validity: entity.Validity{Kind: entity.ValiditySubscription}}

	assert.False(t, IsTemplateActive(inst, nil, testNow))
	assert.True(t, IsTemplateActive(inst, &entity.Subscription{Valid: true}, testNow))
}

func TestIsLocationExpired_Unlinked(t *testing.T) {
	loc := &entity.Location{ID: uuid.New()}

	assert.False(t, IsLocationExpired(loc, map[uuid.UUID]*entity.TemplateInstance{}, nil, testNow))
}

func TestIsLocationExpired_LookupMissFailsClosed(t *testing.T) {
	missing := uuid.New()
	loc := &entity.Location{ID: uuid.New(), TemplateInstanceID: &missing}

	assert.True(t, IsLocationExpired(loc, map[uuid.UUID]*entity.TemplateInstance{}, nil, testNow))
}

func TestIsLocationExpired_ActiveTemplate(t *testing.T) {
	inst := &entity.TemplateInstance{ID: uuid.New(), Validity: entity.Validity{Kind: entity.ValidityNone}}
	loc := &entity.Location{ID: uuid.New(), TemplateInstanceID: &inst.ID}
	pool := map[uuid.UUID]*entity.TemplateInstance{inst.ID: inst}

	assert.False(t, IsLocationExpired(loc, pool, nil, testNow))
}

func TestIsLocationExpired_InactiveTemplate(t *testing.T) {
	past := testNow.Add(-time.Minute)
	inst := &entity.TemplateInstance{ID: uuid.New(), Validity: entity.Validity{Kind: entity.ValidityAbsolute, ExpiresAt: &past}}
	loc := &entity.Location{ID: uuid.New(), TemplateInstanceID: &inst.ID}
	pool := map[uuid.UUID]*entity.TemplateInstance{inst.ID: inst}

	assert.True(t, IsLocationExpired(loc, pool, nil, testNow))
}
