package controllers

import (
	"errors"
	"sort"

	"github.com/craftora/craftora/app/models"
	"github.com/craftora/craftora/internal/pkg/catalog"
	"github.com/craftora/craftora/internal/pkg/entitlements"
	"github.com/craftora/craftora/internal/pkg/tenantcontext"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

// HandleGetEntitlements returns the tenant's effective feature keys and
// the module catalog annotated with enabled state, for client menus.
func HandleGetEntitlements(c *fiber.Ctx) error {
	tc := tenantcontext.GetTenantContext(c)

	tenant := &models.Tenant{
		ID:           tc.TenantID,
		Plan:         tc.Plan,
		BusinessType: tc.BusinessType,
	}
	features, err := Evaluator().EffectiveFeatures(c.UserContext(), tenant)
	if err != nil {
		if errors.Is(err, entitlements.ErrNoTenant) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error":   "tenant_required",
				"message": "no tenant context",
			})
		}
		log.Errorf("[Entitlements] Failed to resolve features for tenant %d: %v", tc.TenantID, err)
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error":   "entitlements_unavailable",
			"message": "could not resolve plan entitlements, try again",
		})
	}

	keys := make([]string, 0, len(features))
	for key := range features {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	type moduleView struct {
		Key          string `json:"key"`
		Name         string `json:"name"`
		Icon         string `json:"icon"`
		Category     string `json:"category"`
		FullyEnabled bool   `json:"fully_enabled"`
	}
	moduleViews := make([]moduleView, 0)
	for _, m := range catalog.Modules() {
		moduleViews = append(moduleViews, moduleView{
			Key:          m.Key,
			Name:         m.Name,
			Icon:         m.Icon,
			Category:     m.Category,
			FullyEnabled: catalog.ModuleFullyEnabled(m, features),
		})
	}

	return c.JSON(fiber.Map{
		"features": keys,
		"modules":  moduleViews,
	})
}

// HandleGetCatalog returns the feature and module catalog grouped by
// category. Read-only projection for administrative UIs.
func HandleGetCatalog(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"features": catalog.FeaturesGroupedByCategory(),
		"modules":  catalog.ModulesGroupedByCategory(),
	})
}
