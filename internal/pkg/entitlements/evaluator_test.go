package entitlements

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/craftora/craftora/app/models"
	"github.com/craftora/craftora/internal/pkg/catalog"
)

func TestEffectiveFeaturesCombinesPlanAndVertical(t *testing.T) {
	e := NewEvaluator(NewResolver(&fakePlanStore{}))
	tenant := &models.Tenant{Plan: "launch", BusinessType: "printing_press"}

	set, err := e.EffectiveFeatures(context.Background(), tenant)
	require.NoError(t, err)

	// Launch grants invoicing and the vertical allows it.
	assert.Contains(t, set, catalog.FeatureInvoicing)
	// Launch grants POS but printing presses may not use it.
	assert.NotContains(t, set, catalog.FeaturePOS)
	// The vertical allows analytics but launch does not grant it.
	assert.NotContains(t, set, catalog.FeatureAnalytics)
}

func TestEffectiveFeaturesNilTenant(t *testing.T) {
	e := NewEvaluator(NewResolver(&fakePlanStore{}))

	_, err := e.EffectiveFeatures(context.Background(), nil)
	assert.ErrorIs(t, err, ErrNoTenant)
}

func TestEffectiveFeaturesPropagatesResolverError(t *testing.T) {
	storeErr := errors.New("connection refused")
	e := NewEvaluator(NewResolver(&fakePlanStore{err: storeErr}))

	_, err := e.EffectiveFeatures(context.Background(), &models.Tenant{Plan: "trial"})
	assert.ErrorIs(t, err, storeErr)
}

func TestCanAccessFeature(t *testing.T) {
	set := setOf(catalog.FeatureInvoicing)
	assert.True(t, CanAccessFeature(set, catalog.FeatureInvoicing))
	assert.False(t, CanAccessFeature(set, catalog.FeaturePOS))
	assert.False(t, CanAccessFeature(set, "does_not_exist"))
	assert.False(t, CanAccessFeature(nil, catalog.FeatureInvoicing))
}

func TestCanAccessRoute(t *testing.T) {
	e := NewEvaluator(NewResolver(&fakePlanStore{}))

	tests := []struct {
		name     string
		features map[string]struct{}
		path     string
		want     bool
	}{
		{"Feature enabled", setOf(catalog.FeatureInvoicing), "/invoices", true},
		{"Subpath of enabled feature", setOf(catalog.FeatureInvoicing), "/invoices/123/pdf", true},
		{"Feature disabled", setOf(catalog.FeatureQuotes), "/invoices", false},
		{"Unmapped route is open", setOf(), "/settings/profile", true},
		{"Root is open", setOf(), "/", true},
		{"Secondary prefix of a feature", setOf(catalog.FeatureInventory), "/stock/adjustments", true},
		{"Secondary prefix disabled", setOf(catalog.FeatureInvoicing), "/stock", false},
		{"Prefix boundary is respected", setOf(), "/inventory-report", true},
		{"Boundary match still gated", setOf(), "/inventory", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.CanAccessRoute(tt.features, tt.path))
		})
	}
}

func TestMatchesPrefix(t *testing.T) {
	tests := []struct {
		path   string
		prefix string
		want   bool
	}{
		{"/inventory", "/inventory", true},
		{"/inventory/123", "/inventory", true},
		{"/inventory-report", "/inventory", false},
		{"/inv", "/inventory", false},
		{"/jobs/5/tasks", "/jobs", true},
	}

	for _, tt := range tests {
		if got := matchesPrefix(tt.path, tt.prefix); got != tt.want {
			t.Fatalf("matchesPrefix(%q, %q) = %v, want %v", tt.path, tt.prefix, got, tt.want)
		}
	}
}
