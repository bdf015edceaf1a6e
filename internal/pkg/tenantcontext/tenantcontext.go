package tenantcontext

import "github.com/gofiber/fiber/v2"

// ContextKey is the Locals key the middleware stores the resolved
// tenant context under.
const ContextKey = "TENANT_CONTEXT"

// TenantContext represents the resolved tenant for a request. The
// authentication collaborator decides who the caller is; this context
// only carries what the entitlement engine needs.
type TenantContext struct {
	TenantID        uint   `json:"tenant_id"`
	TenantUUID      string `json:"tenant_uuid"`
	Plan            string `json:"plan"`
	BusinessType    string `json:"business_type"`
	Status          string `json:"status"`
	IsResolved      bool   `json:"is_resolved"`
	IsPlatformAdmin bool   `json:"is_platform_admin"`
}

// GetTenantContext retrieves the tenant context from fiber context.
// Returns an unresolved context if none is set.
func GetTenantContext(c *fiber.Ctx) TenantContext {
	if ctx := c.Locals(ContextKey); ctx != nil {
		return ctx.(TenantContext)
	}
	return TenantContext{IsResolved: false}
}

// IsResolved checks if the current request carries a tenant
func IsResolved(c *fiber.Ctx) bool {
	return GetTenantContext(c).IsResolved
}

// IsPlatformAdmin checks if the caller is a platform administrator
func IsPlatformAdmin(c *fiber.Ctx) bool {
	return GetTenantContext(c).IsPlatformAdmin
}

// GetTenantID returns the current tenant's ID, or 0 if unresolved
func GetTenantID(c *fiber.Ctx) uint {
	return GetTenantContext(c).TenantID
}
