package entitlements

import (
	"context"

	"github.com/craftora/craftora/app/models"
	"github.com/craftora/craftora/internal/pkg/cache"
)

// Limit sources reported alongside resolved limits.
const (
	SourceDatabase = "database"
	SourceConfig   = "config"
)

// PlanStore loads durable plan records. Implementations return
// (nil, nil) when no active record exists for the plan id; an error
// means the store itself failed and must be surfaced, never treated as
// "plan absent".
type PlanStore interface {
	GetByPlanID(ctx context.Context, planID string) (*models.Plan, error)
}

// SeatLimitInfo is a resolved seat limit with its provenance.
type SeatLimitInfo struct {
	Limit              *int     // nil = unlimited
	PricePerAdditional *float64 // only present on database-backed plans
	PlanName           string
	Source             string
}

// StorageLimitInfo is a resolved storage limit with its provenance.
type StorageLimitInfo struct {
	LimitMB    *int     // nil = unlimited
	Price100GB *float64 // only present on database-backed plans
	PlanName   string
	Source     string
}

// Resolver answers "which features and limits does this plan grant",
// preferring the durable plan record over the static tables. An
// unrecognized plan id resolves to the empty feature set and zero
// limits: an unknown plan must never implicitly grant access.
type Resolver struct {
	store PlanStore
}

// NewResolver creates a plan resolver backed by the given store.
func NewResolver(store PlanStore) *Resolver {
	return &Resolver{store: store}
}

// FeaturesForPlan returns the set of feature keys enabled for a plan id.
func (r *Resolver) FeaturesForPlan(ctx context.Context, planID string) (map[string]struct{}, error) {
	planID = NormalizePlan(planID)

	record, err := r.store.GetByPlanID(ctx, planID)
	if err != nil {
		return nil, err
	}
	if record != nil {
		set := make(map[string]struct{})
		for key, enabled := range record.FeatureFlags {
			if enabled {
				set[key] = struct{}{}
			}
		}
		return set, nil
	}

	// No durable record, fall back to the static table. Unknown plan
	// ids resolve to the empty set.
	set := make(map[string]struct{})
	for _, key := range staticPlanFeatures[planID] {
		set[key] = struct{}{}
	}
	return set, nil
}

// SeatLimit resolves the seat limit for a plan id.
func (r *Resolver) SeatLimit(ctx context.Context, planID string) (SeatLimitInfo, error) {
	planID = NormalizePlan(planID)

	record, err := r.store.GetByPlanID(ctx, planID)
	if err != nil {
		return SeatLimitInfo{}, err
	}
	if record != nil {
		return SeatLimitInfo{
			Limit:              record.SeatLimit,
			PricePerAdditional: record.SeatPricePerAdditional,
			PlanName:           record.Name,
			Source:             SourceDatabase,
		}, nil
	}

	info := SeatLimitInfo{PlanName: StaticPlanName(planID), Source: SourceConfig}
	if lim, ok := staticSeatLimits[planID]; ok {
		info.Limit = lim
	} else {
		// Unknown plan id: zero seats rather than defaulting to any
		// tier, matching the feature resolution above.
		zero := 0
		info.Limit = &zero
	}
	return info, nil
}

// StorageLimit resolves the storage limit for a plan id.
func (r *Resolver) StorageLimit(ctx context.Context, planID string) (StorageLimitInfo, error) {
	planID = NormalizePlan(planID)

	record, err := r.store.GetByPlanID(ctx, planID)
	if err != nil {
		return StorageLimitInfo{}, err
	}
	if record != nil {
		return StorageLimitInfo{
			LimitMB:    record.StorageLimitMB,
			Price100GB: record.StoragePrice100GB,
			PlanName:   record.Name,
			Source:     SourceDatabase,
		}, nil
	}

	info := StorageLimitInfo{PlanName: StaticPlanName(planID), Source: SourceConfig}
	if lim, ok := staticStorageLimitsMB[planID]; ok {
		info.LimitMB = lim
	} else {
		zero := 0
		info.LimitMB = &zero
	}
	return info, nil
}

// cachedPlanStore wraps a PlanStore with the Redis plan-record cache.
// Cache misses and cache failures fall through to the inner store; the
// cache is an optimization, never authoritative.
type cachedPlanStore struct {
	inner PlanStore
}

// NewCachedPlanStore decorates a store with plan-record caching.
// Administrative plan edits must call cache.InvalidatePlanRecord.
func NewCachedPlanStore(inner PlanStore) PlanStore {
	return &cachedPlanStore{inner: inner}
}

func (s *cachedPlanStore) GetByPlanID(ctx context.Context, planID string) (*models.Plan, error) {
	var cached models.Plan
	if cache.GetPlanRecord(planID, &cached) {
		return &cached, nil
	}

	record, err := s.inner.GetByPlanID(ctx, planID)
	if err != nil {
		return nil, err
	}
	if record != nil {
		cache.SetPlanRecord(planID, record)
	}
	return record, nil
}
