package quota

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/craftora/craftora/app/models"
	"github.com/craftora/craftora/internal/pkg/entitlements"
)

// The fakes below stand in for the repository layer; plan resolution
// always goes through the static tables unless a record is provided.

type fakePlanStore struct {
	records map[string]*models.Plan
	err     error
}

func (s *fakePlanStore) GetByPlanID(_ context.Context, planID string) (*models.Plan, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.records[planID], nil
}

type fakeTenantStore struct {
	tenants map[uint]*models.Tenant
	err     error
}

func (s *fakeTenantStore) GetByID(_ context.Context, id uint) (*models.Tenant, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.tenants[id], nil
}

type fakeCounter struct {
	count int64
	err   error
}

func (c *fakeCounter) CountActive(_ context.Context, _ uint) (int64, error) {
	return c.count, c.err
}

func intPtr(n int) *int { return &n }

func newSeatTracker(plan string, count int64) *SeatTracker {
	resolver := entitlements.NewResolver(&fakePlanStore{})
	tenants := &fakeTenantStore{tenants: map[uint]*models.Tenant{
		1: {Name: "Acme Print", Plan: plan},
	}}
	return NewSeatTracker(resolver, tenants, &fakeCounter{count: count})
}

func TestSeatUsage(t *testing.T) {
	tests := []struct {
		name       string
		plan       string
		current    int64
		wantPct    int
		wantNear   bool
		wantAt     bool
		wantCanAdd bool
		wantRemain int
	}{
		{"Empty launch tenant", "launch", 0, 0, false, false, true, 5},
		{"Launch with headroom", "launch", 2, 40, false, false, true, 3},
		{"Launch near limit", "launch", 3, 60, true, false, true, 2},
		{"Launch one seat left", "launch", 4, 80, true, false, true, 1},
		{"Launch at limit", "launch", 5, 100, true, true, false, 0},
		{"Launch over limit", "launch", 6, 120, true, true, false, -1},
		{"Trial is always near its limit", "trial", 0, 0, true, false, true, 2},
		{"Scale with headroom", "scale", 10, 67, false, false, true, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			usage, err := newSeatTracker(tt.plan, tt.current).Usage(context.Background(), 1)
			require.NoError(t, err)

			assert.Equal(t, int(tt.current), usage.Current)
			assert.False(t, usage.IsUnlimited)
			require.NotNil(t, usage.Remaining)
			assert.Equal(t, tt.wantRemain, *usage.Remaining)
			assert.Equal(t, tt.wantPct, usage.PercentageUsed)
			assert.Equal(t, tt.wantNear, usage.IsNearLimit)
			assert.Equal(t, tt.wantAt, usage.IsAtLimit)
			assert.Equal(t, tt.wantCanAdd, usage.CanAddMore)
			assert.Equal(t, entitlements.SourceConfig, usage.Source)
		})
	}
}

func TestSeatUsageUnlimitedPlan(t *testing.T) {
	usage, err := newSeatTracker("enterprise", 500).Usage(context.Background(), 1)
	require.NoError(t, err)

	assert.True(t, usage.IsUnlimited)
	assert.True(t, usage.CanAddMore)
	assert.Nil(t, usage.Limit)
	assert.Nil(t, usage.Remaining)
	assert.False(t, usage.IsNearLimit)
	assert.False(t, usage.IsAtLimit)
	assert.Equal(t, 500, usage.Current)
}

func TestSeatUsageDatabaseRecordWins(t *testing.T) {
	resolver := entitlements.NewResolver(&fakePlanStore{records: map[string]*models.Plan{
		"launch": {PlanID: "launch", Name: "Launch", SeatLimit: intPtr(10)},
	}})
	tenants := &fakeTenantStore{tenants: map[uint]*models.Tenant{1: {Plan: "launch"}}}
	tracker := NewSeatTracker(resolver, tenants, &fakeCounter{count: 4})

	usage, err := tracker.Usage(context.Background(), 1)
	require.NoError(t, err)

	require.NotNil(t, usage.Limit)
	assert.Equal(t, 10, *usage.Limit)
	assert.Equal(t, entitlements.SourceDatabase, usage.Source)
	assert.False(t, usage.IsNearLimit)
}

func TestSeatUsageUnknownTenant(t *testing.T) {
	tracker := NewSeatTracker(
		entitlements.NewResolver(&fakePlanStore{}),
		&fakeTenantStore{},
		&fakeCounter{},
	)

	_, err := tracker.Usage(context.Background(), 42)
	assert.ErrorIs(t, err, ErrTenantNotFound)
}

func TestSeatUsageCountErrorPropagates(t *testing.T) {
	countErr := errors.New("deadlock found")
	tracker := NewSeatTracker(
		entitlements.NewResolver(&fakePlanStore{}),
		&fakeTenantStore{tenants: map[uint]*models.Tenant{1: {Plan: "launch"}}},
		&fakeCounter{err: countErr},
	)

	_, err := tracker.Usage(context.Background(), 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, countErr)
}

func TestSeatValidateAllows(t *testing.T) {
	denial, err := newSeatTracker("launch", 4).Validate(context.Background(), 1)
	require.NoError(t, err)
	assert.Nil(t, denial)
}

func TestSeatValidateDenies(t *testing.T) {
	denial, err := newSeatTracker("launch", 5).Validate(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, denial)

	assert.Equal(t, CodeSeatLimitExceeded, denial.Code)
	assert.Contains(t, denial.Message, "Launch")
	assert.Contains(t, denial.Message, "5 active seats")

	details, ok := denial.Details.(SeatUsage)
	require.True(t, ok)
	assert.Equal(t, 5, details.Current)
	require.NotNil(t, details.Limit)
	assert.Equal(t, 5, *details.Limit)
	assert.True(t, details.IsAtLimit)
}

func TestSeatValidateUnlimitedNeverDenies(t *testing.T) {
	denial, err := newSeatTracker("enterprise", 10000).Validate(context.Background(), 1)
	require.NoError(t, err)
	assert.Nil(t, denial)
}

func TestSeatValidateUnknownPlanDenies(t *testing.T) {
	denial, err := newSeatTracker("ghost_plan", 0).Validate(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, denial)
	assert.Equal(t, CodeSeatLimitExceeded, denial.Code)
}

func TestSeatUsageIsIdempotent(t *testing.T) {
	// Usage never mutates anything: two reads with unchanged
	// memberships return identical snapshots.
	tracker := newSeatTracker("launch", 3)

	first, err := tracker.Usage(context.Background(), 1)
	require.NoError(t, err)
	second, err := tracker.Usage(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestSeatUsageFollowsMembershipGrowth(t *testing.T) {
	counter := &fakeCounter{count: 3}
	resolver := entitlements.NewResolver(&fakePlanStore{})
	tenants := &fakeTenantStore{tenants: map[uint]*models.Tenant{
		1: {Name: "Acme Print", Plan: "launch"},
	}}
	tracker := NewSeatTracker(resolver, tenants, counter)

	before, err := tracker.Usage(context.Background(), 1)
	require.NoError(t, err)

	counter.count++

	after, err := tracker.Usage(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, before.Current+1, after.Current)
	require.NotNil(t, before.Remaining)
	require.NotNil(t, after.Remaining)
	assert.Equal(t, *before.Remaining-1, *after.Remaining)
	assert.LessOrEqual(t, *after.Remaining, *before.Remaining,
		"remaining must never grow when members are added")
	assert.GreaterOrEqual(t, after.PercentageUsed, before.PercentageUsed)
}
