package quota

import (
	"context"
	"fmt"

	"github.com/craftora/craftora/internal/pkg/entitlements"
)

// MembershipCounter counts a tenant's active seats. An error means the
// count could not be read and must be surfaced; it is never coerced
// into "zero seats used", which would silently grant headroom.
type MembershipCounter interface {
	CountActive(ctx context.Context, tenantID uint) (int64, error)
}

// SeatTracker classifies a tenant's seat usage against its plan limit.
// Stateless; every call re-reads the live count.
type SeatTracker struct {
	resolver *entitlements.Resolver
	tenants  TenantStore
	members  MembershipCounter
}

// NewSeatTracker wires a seat tracker from its collaborators.
func NewSeatTracker(resolver *entitlements.Resolver, tenants TenantStore, members MembershipCounter) *SeatTracker {
	return &SeatTracker{resolver: resolver, tenants: tenants, members: members}
}

// Usage returns the current seat-quota snapshot for a tenant.
//
// Seats use a fixed absolute near-limit margin (two seats of headroom)
// rather than the percentage thresholds the storage tracker uses; the
// asymmetry is intentional and must not be unified.
func (t *SeatTracker) Usage(ctx context.Context, tenantID uint) (SeatUsage, error) {
	tenant, err := t.tenants.GetByID(ctx, tenantID)
	if err != nil {
		return SeatUsage{}, err
	}
	if tenant == nil {
		return SeatUsage{}, ErrTenantNotFound
	}

	info, err := t.resolver.SeatLimit(ctx, tenant.Plan)
	if err != nil {
		return SeatUsage{}, err
	}

	count, err := t.members.CountActive(ctx, tenantID)
	if err != nil {
		return SeatUsage{}, fmt.Errorf("counting active memberships for tenant %d: %w", tenantID, err)
	}
	current := int(count)

	usage := SeatUsage{
		Current:            current,
		Limit:              info.Limit,
		PlanName:           info.PlanName,
		PricePerAdditional: info.PricePerAdditional,
		Source:             info.Source,
	}

	if info.Limit == nil {
		usage.IsUnlimited = true
		usage.CanAddMore = true
		return usage, nil
	}

	remaining := *info.Limit - current
	usage.Remaining = &remaining
	usage.PercentageUsed = roundPct(float64(current), float64(*info.Limit))
	usage.IsNearLimit = remaining <= 2
	usage.IsAtLimit = remaining <= 0
	usage.CanAddMore = remaining > 0
	return usage, nil
}

// Validate decides whether one more seat may be added. A nil denial
// means allowed. The denial details carry the full usage snapshot so
// the caller can render an upgrade prompt without re-querying.
func (t *SeatTracker) Validate(ctx context.Context, tenantID uint) (*Denial, error) {
	usage, err := t.Usage(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	if usage.CanAddMore {
		return nil, nil
	}

	msg := fmt.Sprintf("Your %s plan has no seats left.", usage.PlanName)
	if usage.Limit != nil {
		msg = fmt.Sprintf("Your %s plan allows %d active seats and %d are in use.",
			usage.PlanName, *usage.Limit, usage.Current)
	}
	return &Denial{
		Code:    CodeSeatLimitExceeded,
		Message: msg,
		Details: usage,
	}, nil
}
