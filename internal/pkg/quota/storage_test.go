package quota

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/craftora/craftora/app/models"
	"github.com/craftora/craftora/internal/pkg/entitlements"
)

const mb = int64(1024 * 1024)

type fakeMeter struct {
	bytes int64
	err   error

	mu    sync.Mutex
	calls int
}

func (m *fakeMeter) BytesUsed(_ context.Context, _ uint) (int64, error) {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()
	return m.bytes, m.err
}

func newStorageTracker(plan string, usedBytes int64) *StorageTracker {
	resolver := entitlements.NewResolver(&fakePlanStore{})
	tenants := &fakeTenantStore{tenants: map[uint]*models.Tenant{
		1: {Name: "Acme Print", Plan: plan},
	}}
	return NewStorageTracker(resolver, tenants, &fakeMeter{bytes: usedBytes})
}

func TestStorageUsageThresholds(t *testing.T) {
	// Trial has a 1024 MB limit, so MB values map directly to percent
	// after rounding.
	tests := []struct {
		name     string
		usedMB   int64
		wantPct  int
		wantNear bool
		wantAt   bool
	}{
		{"Empty", 0, 0, false, false},
		{"Half full", 512, 50, false, false},
		{"Just below near threshold", 814, 79, false, false},
		{"At near threshold", 819, 80, true, false},
		{"Just below at threshold", 960, 94, true, false},
		{"At at threshold", 973, 95, true, true},
		{"Full", 1024, 100, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			usage, err := newStorageTracker("trial", tt.usedMB*mb).Usage(context.Background(), 1)
			require.NoError(t, err)

			assert.Equal(t, tt.wantPct, usage.PercentageUsed)
			assert.Equal(t, tt.wantNear, usage.IsNearLimit, "near-limit flag")
			assert.Equal(t, tt.wantAt, usage.IsAtLimit, "at-limit flag")
		})
	}
}

func TestStorageUsageFields(t *testing.T) {
	usage, err := newStorageTracker("launch", 2048*mb).Usage(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, 2048*mb, usage.UsedBytes)
	assert.InDelta(t, 2048.0, usage.UsedMB, 0.001)
	assert.InDelta(t, 2.0, usage.UsedGB, 0.001)
	require.NotNil(t, usage.LimitMB)
	assert.Equal(t, 10240, *usage.LimitMB)
	require.NotNil(t, usage.RemainingMB)
	assert.InDelta(t, 8192.0, *usage.RemainingMB, 0.001)
	assert.Equal(t, 20, usage.PercentageUsed)
	assert.True(t, usage.CanAddMore)
	assert.Equal(t, "Launch", usage.PlanName)
	assert.Equal(t, entitlements.SourceConfig, usage.Source)
}

func TestStorageUsageOverLimitClampsRemaining(t *testing.T) {
	usage, err := newStorageTracker("trial", 2000*mb).Usage(context.Background(), 1)
	require.NoError(t, err)

	require.NotNil(t, usage.RemainingMB)
	assert.Equal(t, 0.0, *usage.RemainingMB)
	assert.True(t, usage.IsAtLimit)
	assert.False(t, usage.CanAddMore)
}

func TestStorageUsageUnlimitedPlan(t *testing.T) {
	usage, err := newStorageTracker("enterprise", 5_000_000*mb).Usage(context.Background(), 1)
	require.NoError(t, err)

	assert.True(t, usage.IsUnlimited)
	assert.True(t, usage.CanAddMore)
	assert.Nil(t, usage.LimitMB)
	assert.Nil(t, usage.RemainingMB)
	assert.False(t, usage.IsNearLimit)
	assert.False(t, usage.IsAtLimit)
}

func TestStorageUsageMeterErrorPropagates(t *testing.T) {
	meterErr := errors.New("s3 timeout")
	tracker := NewStorageTracker(
		entitlements.NewResolver(&fakePlanStore{}),
		&fakeTenantStore{tenants: map[uint]*models.Tenant{1: {Plan: "trial"}}},
		&fakeMeter{err: meterErr},
	)

	_, err := tracker.Usage(context.Background(), 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, meterErr)
}

func TestStorageUsageUnknownTenant(t *testing.T) {
	tracker := NewStorageTracker(
		entitlements.NewResolver(&fakePlanStore{}),
		&fakeTenantStore{},
		&fakeMeter{},
	)

	_, err := tracker.Usage(context.Background(), 99)
	assert.ErrorIs(t, err, ErrTenantNotFound)
}

func TestWouldExceed(t *testing.T) {
	tests := []struct {
		name        string
		plan        string
		usedMB      int64
		candidateMB int64
		wantAllowed bool
		wantAfterMB float64
	}{
		{"Fits comfortably", "trial", 100, 50, true, 150},
		{"Fits exactly", "trial", 1000, 24, true, 1024},
		{"Exceeds by a little", "trial", 1000, 50, false, 1050},
		{"Already full", "trial", 1024, 1, false, 1025},
		{"Zero-byte write at limit", "trial", 1024, 0, true, 1024},
		{"Launch large upload fits", "launch", 1000, 50, true, 1050},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := newStorageTracker(tt.plan, tt.usedMB*mb).WouldExceed(context.Background(), 1, tt.candidateMB*mb)
			require.NoError(t, err)

			assert.Equal(t, tt.wantAllowed, result.Allowed)
			assert.InDelta(t, tt.wantAfterMB, result.AfterUploadMB, 0.001)
			assert.InDelta(t, float64(tt.candidateMB), result.FileSizeMB, 0.001)
		})
	}
}

func TestWouldExceedUnlimited(t *testing.T) {
	result, err := newStorageTracker("enterprise", 1_000_000*mb).WouldExceed(context.Background(), 1, 50_000*mb)
	require.NoError(t, err)

	assert.True(t, result.Allowed)
	assert.True(t, result.IsUnlimited)
	assert.Nil(t, result.LimitMB)
}

func TestStorageValidateAllows(t *testing.T) {
	denial, err := newStorageTracker("trial", 100*mb).Validate(context.Background(), 1, 50*mb)
	require.NoError(t, err)
	assert.Nil(t, denial)
}

func TestStorageValidateDenies(t *testing.T) {
	denial, err := newStorageTracker("trial", 1000*mb).Validate(context.Background(), 1, 50*mb)
	require.NoError(t, err)
	require.NotNil(t, denial)

	assert.Equal(t, CodeStorageLimitExceeded, denial.Code)
	assert.Contains(t, denial.Message, "Trial")

	details, ok := denial.Details.(StorageDenialDetails)
	require.True(t, ok)
	assert.InDelta(t, 50.0, details.FileSizeMB, 0.001)
	assert.InDelta(t, 1050.0, details.AfterUploadMB, 0.001)
	assert.InDelta(t, 1000.0, details.UsedMB, 0.001)
	require.NotNil(t, details.LimitMB)
	assert.Equal(t, 1024, *details.LimitMB)
}

func TestStorageValidateMeterErrorIsNotADenial(t *testing.T) {
	meterErr := errors.New("walk failed")
	tracker := NewStorageTracker(
		entitlements.NewResolver(&fakePlanStore{}),
		&fakeTenantStore{tenants: map[uint]*models.Tenant{1: {Plan: "trial"}}},
		&fakeMeter{err: meterErr},
	)

	denial, err := tracker.Validate(context.Background(), 1, 10*mb)
	require.Error(t, err)
	assert.Nil(t, denial)
}

// Two concurrent validations that both observe headroom can both pass;
// the limits are soft by contract. This pins the check-then-act
// behavior so a future "fix" does not silently change the semantics.
func TestStorageValidateIsCheckThenAct(t *testing.T) {
	tracker := newStorageTracker("trial", 1000*mb)

	var wg sync.WaitGroup
	denials := make([]*Denial, 2)
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			denials[i], errs[i] = tracker.Validate(context.Background(), 1, 20*mb)
		}(i)
	}
	wg.Wait()

	// Both validations read 1000 MB used and 24 MB of headroom, so both
	// allow a 20 MB write even though the two writes together exceed
	// the 1024 MB limit.
	for i := 0; i < 2; i++ {
		require.NoError(t, errs[i])
		assert.Nil(t, denials[i])
	}
}

func TestUsageAsync(t *testing.T) {
	seatCh := newSeatTracker("launch", 3).UsageAsync(context.Background(), 1)
	storageCh := newStorageTracker("launch", 2048*mb).UsageAsync(context.Background(), 1)

	seatRes := <-seatCh
	require.NoError(t, seatRes.Err)
	assert.Equal(t, 3, seatRes.Usage.Current)

	storageRes := <-storageCh
	require.NoError(t, storageRes.Err)
	assert.InDelta(t, 2048.0, storageRes.Usage.UsedMB, 0.001)
}

func TestRoundPct(t *testing.T) {
	tests := []struct {
		part  float64
		whole float64
		want  int
	}{
		{0, 100, 0},
		{50, 100, 50},
		{1, 3, 33},
		{2, 3, 67},
		{100, 100, 100},
		{150, 100, 150},
		{5, 0, 100},
		{0, 0, 100},
	}

	for _, tt := range tests {
		if got := roundPct(tt.part, tt.whole); got != tt.want {
			t.Fatalf("roundPct(%v, %v) = %d, want %d", tt.part, tt.whole, got, tt.want)
		}
	}
}
