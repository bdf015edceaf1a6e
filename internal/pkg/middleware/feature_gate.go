package middleware

import (
	"errors"

	"github.com/craftora/craftora/app/models"
	"github.com/craftora/craftora/internal/pkg/entitlements"
	"github.com/craftora/craftora/internal/pkg/metrics/counter"
	"github.com/craftora/craftora/internal/pkg/tenantcontext"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

// FeatureGate returns a middleware that denies requests to routes whose
// catalog feature is not in the tenant's effective feature set. Routes
// the catalog does not declare pass through: gating is opt-in per
// route. Platform administrators bypass route gating entirely.
func FeatureGate(evaluator *entitlements.Evaluator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tc := tenantcontext.GetTenantContext(c)
		if tc.IsPlatformAdmin {
			return c.Next()
		}
		if !tc.IsResolved {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error":   "tenant_required",
				"message": "no tenant context",
			})
		}

		tenant := &models.Tenant{
			ID:           tc.TenantID,
			Plan:         tc.Plan,
			BusinessType: tc.BusinessType,
		}
		features, err := evaluator.EffectiveFeatures(c.UserContext(), tenant)
		if err != nil {
			if errors.Is(err, entitlements.ErrNoTenant) {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"error":   "tenant_required",
					"message": "no tenant context",
				})
			}
			log.Errorf("[FeatureGate] Failed to resolve features for tenant %d: %v", tc.TenantID, err)
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"error":   "entitlements_unavailable",
				"message": "could not resolve plan entitlements, try again",
			})
		}

		if !evaluator.CanAccessRoute(features, c.Path()) {
			if err := counter.AddGateDenial(tc.TenantID); err != nil {
				log.Errorf("[FeatureGate] Failed to count denial for tenant %d: %v", tc.TenantID, err)
			}
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error":   "feature_not_available",
				"message": "this area is not included in your plan",
			})
		}
		return c.Next()
	}
}
