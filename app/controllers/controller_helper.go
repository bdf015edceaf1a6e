package controllers

import (
	"github.com/craftora/craftora/internal/pkg/metrics/counter"
	"github.com/craftora/craftora/internal/pkg/quota"
	"github.com/craftora/craftora/internal/pkg/tenantcontext"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

// respondDenial renders a policy denial. Policy denials are normal
// outcomes, not server errors: 409 with the structured payload the UI
// needs to render an upgrade prompt.
func respondDenial(c *fiber.Ctx, denial *quota.Denial) error {
	recordDenial(tenantcontext.GetTenantID(c), denial.Code)
	return c.Status(fiber.StatusConflict).JSON(fiber.Map{
		"error":   "quota_exceeded",
		"code":    denial.Code,
		"message": denial.Message,
		"details": denial.Details,
	})
}

// recordDenial bumps the tenant's denial counter. Counting must never
// affect the response, so failures are only logged.
func recordDenial(tenantID uint, code string) {
	if tenantID == 0 {
		return
	}
	var err error
	switch code {
	case quota.CodeSeatLimitExceeded:
		err = counter.AddSeatDenial(tenantID)
	case quota.CodeStorageLimitExceeded:
		err = counter.AddStorageDenial(tenantID)
	}
	if err != nil {
		log.Errorf("[Quota] Failed to count denial for tenant %d: %v", tenantID, err)
	}
}

// respondQuotaError renders an upstream I/O failure during a quota
// check: retryable 503, never a silent allow.
func respondQuotaError(c *fiber.Ctx, err error) error {
	log.Errorf("[Quota] Check failed: %v", err)
	return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
		"error":   "quota_check_failed",
		"message": "could not verify plan limits, try again",
	})
}
