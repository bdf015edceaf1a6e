package quota

import (
	"context"
	"fmt"

	"github.com/craftora/craftora/internal/pkg/entitlements"
)

// Storage classification uses percentage thresholds: consumption is
// continuous, so a fixed absolute margin is not meaningful across plans
// ranging from 1 GB to unlimited.
const (
	storageNearLimitPct = 80
	storageAtLimitPct   = 95
)

// Meter measures a tenant's stored bytes across its storage areas. An
// error means the measurement is incomplete and must be surfaced; a
// partial count is never reported as the tenant's usage, since an I/O
// failure on one area must not make the tenant appear to have headroom.
type Meter interface {
	BytesUsed(ctx context.Context, tenantID uint) (int64, error)
}

// StorageTracker classifies a tenant's storage usage against its plan
// limit. Stateless; every call re-measures.
type StorageTracker struct {
	resolver *entitlements.Resolver
	tenants  TenantStore
	meter    Meter
}

// NewStorageTracker wires a storage tracker from its collaborators.
func NewStorageTracker(resolver *entitlements.Resolver, tenants TenantStore, meter Meter) *StorageTracker {
	return &StorageTracker{resolver: resolver, tenants: tenants, meter: meter}
}

// Usage returns the current storage-quota snapshot for a tenant.
func (t *StorageTracker) Usage(ctx context.Context, tenantID uint) (StorageUsage, error) {
	tenant, err := t.tenants.GetByID(ctx, tenantID)
	if err != nil {
		return StorageUsage{}, err
	}
	if tenant == nil {
		return StorageUsage{}, ErrTenantNotFound
	}

	info, err := t.resolver.StorageLimit(ctx, tenant.Plan)
	if err != nil {
		return StorageUsage{}, err
	}

	usedBytes, err := t.meter.BytesUsed(ctx, tenantID)
	if err != nil {
		return StorageUsage{}, fmt.Errorf("measuring storage for tenant %d: %w", tenantID, err)
	}

	usedMB := bytesToMB(usedBytes)
	usage := StorageUsage{
		UsedBytes:  usedBytes,
		UsedMB:     usedMB,
		UsedGB:     usedMB / 1024,
		LimitMB:    info.LimitMB,
		PlanName:   info.PlanName,
		Price100GB: info.Price100GB,
		Source:     info.Source,
	}

	if info.LimitMB == nil {
		usage.IsUnlimited = true
		usage.CanAddMore = true
		return usage, nil
	}

	remaining := float64(*info.LimitMB) - usedMB
	if remaining < 0 {
		remaining = 0
	}
	usage.RemainingMB = &remaining
	usage.PercentageUsed = roundPct(usedMB, float64(*info.LimitMB))
	usage.IsNearLimit = usage.PercentageUsed >= storageNearLimitPct
	usage.IsAtLimit = usage.PercentageUsed >= storageAtLimitPct
	usage.CanAddMore = usedMB < float64(*info.LimitMB)
	return usage, nil
}

// WouldExceed pre-checks whether writing candidateBytes would push the
// tenant past its storage limit, before anything is written.
func (t *StorageTracker) WouldExceed(ctx context.Context, tenantID uint, candidateBytes int64) (WouldExceedResult, error) {
	usage, err := t.Usage(ctx, tenantID)
	if err != nil {
		return WouldExceedResult{}, err
	}
	return t.wouldExceedFromUsage(usage, candidateBytes), nil
}

func (t *StorageTracker) wouldExceedFromUsage(usage StorageUsage, candidateBytes int64) WouldExceedResult {
	fileSizeMB := bytesToMB(candidateBytes)
	result := WouldExceedResult{
		FileSizeMB:    fileSizeMB,
		AfterUploadMB: usage.UsedMB + fileSizeMB,
		LimitMB:       usage.LimitMB,
		RemainingMB:   usage.RemainingMB,
		IsUnlimited:   usage.IsUnlimited,
	}
	if usage.IsUnlimited {
		result.Allowed = true
		return result
	}
	result.Allowed = result.AfterUploadMB <= float64(*usage.LimitMB)
	return result
}

// Validate decides whether a write of candidateBytes may proceed. A nil
// denial means allowed. The denial details carry the usage snapshot and
// the pre-check numbers, including the per-100GB overage price when the
// plan defines one.
func (t *StorageTracker) Validate(ctx context.Context, tenantID uint, candidateBytes int64) (*Denial, error) {
	usage, err := t.Usage(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	check := t.wouldExceedFromUsage(usage, candidateBytes)
	if check.Allowed {
		return nil, nil
	}

	msg := fmt.Sprintf("This upload (%.1f MB) would exceed the storage included in your %s plan.",
		check.FileSizeMB, usage.PlanName)
	return &Denial{
		Code:    CodeStorageLimitExceeded,
		Message: msg,
		Details: StorageDenialDetails{
			StorageUsage:  usage,
			FileSizeMB:    check.FileSizeMB,
			AfterUploadMB: check.AfterUploadMB,
		},
	}, nil
}
