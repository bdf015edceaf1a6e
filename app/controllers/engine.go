package controllers

import (
	"github.com/craftora/craftora/app/repository"
	"github.com/craftora/craftora/internal/pkg/entitlements"
	"github.com/craftora/craftora/internal/pkg/quota"
	"github.com/craftora/craftora/internal/pkg/storagemeter"
)

// Engine wiring shared by all controllers. Installed once at startup.
var (
	evaluatorInstance      *entitlements.Evaluator
	seatTrackerInstance    *quota.SeatTracker
	storageTrackerInstance *quota.StorageTracker
)

// SetupEngine wires the entitlement evaluator and quota trackers from
// the repository layer and storage meter.
func SetupEngine(lister storagemeter.ObjectLister) {
	repos := repository.GetGlobalRepositories()

	resolver := entitlements.NewResolver(entitlements.NewCachedPlanStore(repos.Plan))
	evaluatorInstance = entitlements.NewEvaluator(resolver)

	meter := storagemeter.NewMeter(repos.StorageArea, lister)
	seatTrackerInstance = quota.NewSeatTracker(resolver, repos.Tenant, repos.Membership)
	storageTrackerInstance = quota.NewStorageTracker(resolver, repos.Tenant, meter)
}

// Evaluator returns the shared entitlement evaluator.
func Evaluator() *entitlements.Evaluator {
	if evaluatorInstance == nil {
		panic("Entitlement engine not initialized. Call SetupEngine first.")
	}
	return evaluatorInstance
}
