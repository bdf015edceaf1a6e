package controllers

import (
	"errors"

	"github.com/craftora/craftora/internal/pkg/cache"
	"github.com/craftora/craftora/internal/pkg/quota"
	"github.com/craftora/craftora/internal/pkg/tenantcontext"
	"github.com/gofiber/fiber/v2"
)

// HandleGetSeatUsage returns the tenant's current seat-quota snapshot.
func HandleGetSeatUsage(c *fiber.Ctx) error {
	tenantID := tenantcontext.GetTenantID(c)

	var cached quota.SeatUsage
	if cache.GetUsageSnapshot("seats", tenantID, &cached) {
		return c.JSON(cached)
	}

	usage, err := seatTrackerInstance.Usage(c.UserContext(), tenantID)
	if err != nil {
		if errors.Is(err, quota.ErrTenantNotFound) {
			return respondTenantNotFound(c)
		}
		return respondQuotaError(c, err)
	}
	cache.SetUsageSnapshot("seats", tenantID, usage)
	return c.JSON(usage)
}

// HandleGetStorageUsage returns the tenant's current storage snapshot.
func HandleGetStorageUsage(c *fiber.Ctx) error {
	tenantID := tenantcontext.GetTenantID(c)

	var cached quota.StorageUsage
	if cache.GetUsageSnapshot("storage", tenantID, &cached) {
		return c.JSON(cached)
	}

	usage, err := storageTrackerInstance.Usage(c.UserContext(), tenantID)
	if err != nil {
		if errors.Is(err, quota.ErrTenantNotFound) {
			return respondTenantNotFound(c)
		}
		return respondQuotaError(c, err)
	}
	cache.SetUsageSnapshot("storage", tenantID, usage)
	return c.JSON(usage)
}

// HandleGetUsageOverview returns both snapshots for dashboard pages,
// reading seat count and storage measurement concurrently.
func HandleGetUsageOverview(c *fiber.Ctx) error {
	ctx := c.UserContext()
	tenantID := tenantcontext.GetTenantID(c)

	seatCh := seatTrackerInstance.UsageAsync(ctx, tenantID)
	storageCh := storageTrackerInstance.UsageAsync(ctx, tenantID)

	seatRes := <-seatCh
	storageRes := <-storageCh
	if seatRes.Err != nil {
		if errors.Is(seatRes.Err, quota.ErrTenantNotFound) {
			return respondTenantNotFound(c)
		}
		return respondQuotaError(c, seatRes.Err)
	}
	if storageRes.Err != nil {
		return respondQuotaError(c, storageRes.Err)
	}

	return c.JSON(fiber.Map{
		"seats":   seatRes.Usage,
		"storage": storageRes.Usage,
	})
}

// HandleInvitePrecheck validates that one more seat may be added before
// the invite flow creates a membership.
func HandleInvitePrecheck(c *fiber.Ctx) error {
	tenantID := tenantcontext.GetTenantID(c)

	denial, err := seatTrackerInstance.Validate(c.UserContext(), tenantID)
	if err != nil {
		if errors.Is(err, quota.ErrTenantNotFound) {
			return respondTenantNotFound(c)
		}
		return respondQuotaError(c, err)
	}
	if denial != nil {
		return respondDenial(c, denial)
	}
	// The invite flow will create a membership next; drop the cached
	// snapshots so dashboards pick up the new seat promptly.
	cache.InvalidateUsageSnapshots(tenantID)
	return c.JSON(fiber.Map{"allowed": true})
}

type filePrecheckRequest struct {
	SizeBytes int64 `json:"size_bytes"`
}

// HandleFilePrecheck answers whether an upload of the given size would
// exceed the tenant's storage limit, before any bytes are written.
func HandleFilePrecheck(c *fiber.Ctx) error {
	tenantID := tenantcontext.GetTenantID(c)

	var req filePrecheckRequest
	if err := c.BodyParser(&req); err != nil || req.SizeBytes <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "bad_request",
			"message": "size_bytes must be a positive integer",
		})
	}

	check, err := storageTrackerInstance.WouldExceed(c.UserContext(), tenantID, req.SizeBytes)
	if err != nil {
		if errors.Is(err, quota.ErrTenantNotFound) {
			return respondTenantNotFound(c)
		}
		return respondQuotaError(c, err)
	}
	if check.Allowed {
		// The upload proceeds after this answer; drop the cached
		// snapshots so the next usage read measures the new bytes.
		cache.InvalidateUsageSnapshots(tenantID)
		return c.JSON(check)
	}

	// Re-validate to build the full denial payload (usage snapshot plus
	// overage pricing) for the upgrade prompt.
	denial, err := storageTrackerInstance.Validate(c.UserContext(), tenantID, req.SizeBytes)
	if err != nil {
		return respondQuotaError(c, err)
	}
	if denial == nil {
		// The usage moved between the two reads; treat as allowed.
		return c.JSON(check)
	}
	return respondDenial(c, denial)
}

func respondTenantNotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"error":   "tenant_not_found",
		"message": "tenant does not exist",
	})
}
