package controllers

import (
	"github.com/craftora/craftora/app/repository"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

// HandleGetMarketingPlans returns the active plans shown on pricing and
// onboarding pages. Public: no tenant context required.
func HandleGetMarketingPlans(c *fiber.Ctx) error {
	plans, err := repository.GetGlobalFactory().GetPlanRepository().ListMarketing()
	if err != nil {
		log.Errorf("[Plans] Failed to list marketing plans: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "internal_error",
		})
	}
	return c.JSON(fiber.Map{"plans": plans})
}
