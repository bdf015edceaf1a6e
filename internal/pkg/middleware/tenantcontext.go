package middleware

import (
	"github.com/craftora/craftora/app/models"
	"github.com/craftora/craftora/app/repository"
	"github.com/craftora/craftora/internal/pkg/tenantcontext"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

// Header names supplied by the authentication collaborator (gateway or
// session layer). This engine trusts them; verifying the caller's
// identity is outside its scope.
const (
	HeaderTenantUUID    = "X-Tenant-ID"
	HeaderPlatformAdmin = "X-Platform-Admin"
)

// tenantStore is the slice of TenantRepository the middleware needs.
type tenantStore interface {
	GetByUUID(uuid string) (*models.Tenant, error)
}

// TenantContextMiddleware resolves the tenant for every request and
// stores it in Locals. Requests without a tenant header proceed with an
// unresolved context; downstream checks fail closed.
func TenantContextMiddleware(c *fiber.Ctx) error {
	return resolveTenantContext(c, repository.GetGlobalFactory().GetTenantRepository())
}

func resolveTenantContext(c *fiber.Ctx, store tenantStore) error {
	tc := tenantcontext.TenantContext{
		IsPlatformAdmin: c.Get(HeaderPlatformAdmin) == "true",
	}

	tenantUUID := c.Get(HeaderTenantUUID)
	if tenantUUID == "" {
		c.Locals(tenantcontext.ContextKey, tc)
		return c.Next()
	}

	tenant, err := store.GetByUUID(tenantUUID)
	if err != nil {
		// Lookup failure is an infrastructure error, not a client
		// error; surface it as retryable instead of an unresolved
		// context.
		log.Errorf("[TenantContext] Failed to resolve tenant %s: %v", tenantUUID, err)
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error":   "tenant_lookup_failed",
			"message": "could not resolve tenant, try again",
		})
	}
	if tenant == nil {
		// Unknown tenant id: keep the context unresolved rather than
		// failing the request here; gated routes will deny.
		c.Locals(tenantcontext.ContextKey, tc)
		return c.Next()
	}

	tc.TenantID = tenant.ID
	tc.TenantUUID = tenant.UUID
	tc.Plan = tenant.Plan
	tc.BusinessType = tenant.BusinessType
	tc.Status = tenant.Status
	tc.IsResolved = true
	c.Locals(tenantcontext.ContextKey, tc)
	return c.Next()
}

// RequireTenant ensures a resolved tenant context and returns JSON 400
// otherwise. Missing tenant context is a client error, distinct from a
// policy denial.
func RequireTenant(c *fiber.Ctx) error {
	if !tenantcontext.IsResolved(c) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "tenant_required",
			"message": "no tenant context",
		})
	}
	return c.Next()
}

// RequirePlatformAdmin ensures the caller is a platform administrator.
func RequirePlatformAdmin(c *fiber.Ctx) error {
	if !tenantcontext.IsPlatformAdmin(c) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error":   "forbidden",
			"message": "platform administrator required",
		})
	}
	return c.Next()
}
