package router

import (
	"github.com/craftora/craftora/app/controllers"
	"github.com/craftora/craftora/internal/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

type ApiRouter struct {
}

func (h ApiRouter) InstallRouter(app *fiber.App) {
	// Tenant context is resolved globally before any gated route runs.
	app.Use(middleware.TenantContextMiddleware)

	api := app.Group("/api", limiter.New())
	api.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": "Hello from api",
		})
	})

	// Marketing plan listing, public.
	api.Get("/plans", controllers.HandleGetMarketingPlans)

	// Entitlement and quota endpoints, tenant-scoped.
	api.Get("/entitlements", middleware.RequireTenant, controllers.HandleGetEntitlements)
	api.Get("/usage", middleware.RequireTenant, controllers.HandleGetUsageOverview)
	api.Get("/usage/seats", middleware.RequireTenant, controllers.HandleGetSeatUsage)
	api.Get("/usage/storage", middleware.RequireTenant, controllers.HandleGetStorageUsage)
	api.Post("/team/invites/precheck", middleware.RequireTenant, controllers.HandleInvitePrecheck)
	api.Post("/files/precheck", middleware.RequireTenant, controllers.HandleFilePrecheck)

	// Administrative plan editing, platform admins only.
	admin := app.Group("/admin", middleware.RequirePlatformAdmin)
	admin.Get("/catalog", controllers.HandleGetCatalog)
	admin.Get("/stats", controllers.HandleAdminStats)
	admin.Get("/plans", controllers.HandleAdminListPlans)
	admin.Put("/plans/:planId", controllers.HandleAdminUpsertPlan)
}

func NewApiRouter() *ApiRouter {
	return &ApiRouter{}
}
