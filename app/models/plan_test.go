package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeatureFlagsValueAndScan(t *testing.T) {
	flags := FeatureFlags{"invoicing": true, "pos": false}

	value, err := flags.Value()
	require.NoError(t, err)

	var scanned FeatureFlags
	require.NoError(t, scanned.Scan(value))

	assert.True(t, scanned["invoicing"])
	assert.False(t, scanned["pos"])
}

func TestFeatureFlagsScanNil(t *testing.T) {
	var flags FeatureFlags
	require.NoError(t, flags.Scan(nil))
	assert.Empty(t, flags)
}

func TestFeatureFlagsScanBytes(t *testing.T) {
	var flags FeatureFlags
	require.NoError(t, flags.Scan([]byte(`{"reports":true}`)))
	assert.True(t, flags["reports"])
}

func TestFeatureFlagsScanUnsupportedType(t *testing.T) {
	var flags FeatureFlags
	assert.Error(t, flags.Scan(42))
}

func TestPlanEnabledFeatureKeys(t *testing.T) {
	plan := &Plan{FeatureFlags: FeatureFlags{
		"invoicing": true,
		"quotes":    false,
		"reports":   true,
	}}

	keys := plan.EnabledFeatureKeys()
	assert.Len(t, keys, 2)
	assert.Contains(t, keys, "invoicing")
	assert.Contains(t, keys, "reports")
}

func TestPlanUnlimitedHelpers(t *testing.T) {
	seats := 5
	storage := 1024

	plan := &Plan{}
	assert.True(t, plan.IsSeatUnlimited())
	assert.True(t, plan.IsStorageUnlimited())

	plan.SeatLimit = &seats
	plan.StorageLimitMB = &storage
	assert.False(t, plan.IsSeatUnlimited())
	assert.False(t, plan.IsStorageUnlimited())
}

func TestPlanBeforeSaveRejectsNegativeLimits(t *testing.T) {
	negative := -1

	plan := &Plan{PlanID: "trial", Name: "Trial", SeatLimit: &negative}
	assert.Error(t, plan.BeforeSave(nil))

	plan = &Plan{PlanID: "trial", Name: "Trial", StorageLimitMB: &negative}
	assert.Error(t, plan.BeforeSave(nil))

	zero := 0
	plan = &Plan{PlanID: "trial", Name: "Trial", SeatLimit: &zero, StorageLimitMB: &zero}
	assert.NoError(t, plan.BeforeSave(nil))
}
