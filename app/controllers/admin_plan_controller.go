package controllers

import (
	"github.com/craftora/craftora/app/models"
	"github.com/craftora/craftora/app/repository"
	"github.com/craftora/craftora/internal/pkg/cache"
	"github.com/craftora/craftora/internal/pkg/catalog"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

// HandleAdminListPlans returns all plan records for the admin plan editor.
func HandleAdminListPlans(c *fiber.Ctx) error {
	plans, err := repository.GetGlobalFactory().GetPlanRepository().List()
	if err != nil {
		log.Errorf("[AdminPlans] Failed to list plans: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "internal_error",
		})
	}
	return c.JSON(fiber.Map{"plans": plans})
}

type adminPlanRequest struct {
	Name                   string          `json:"name"`
	Description            string          `json:"description"`
	SortIndex              int             `json:"sort_index"`
	PriceLabel             string          `json:"price_label"`
	FeatureFlags           map[string]bool `json:"feature_flags"`
	SeatLimit              *int            `json:"seat_limit"`
	SeatPricePerAdditional *float64        `json:"seat_price_per_additional"`
	StorageLimitMB         *int            `json:"storage_limit_mb"`
	StoragePrice100GB      *float64        `json:"storage_price_100gb"`
	IsActive               *bool           `json:"is_active"`
	ShowInMarketing        *bool           `json:"show_in_marketing"`
	ShowInOnboarding       *bool           `json:"show_in_onboarding"`
}

// HandleAdminUpsertPlan creates or updates a plan record and drops the
// cached copy so the change takes effect on the next entitlement check.
func HandleAdminUpsertPlan(c *fiber.Ctx) error {
	planID := c.Params("planId")
	if planID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "bad_request",
			"message": "plan id missing",
		})
	}

	var req adminPlanRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "bad_request",
			"message": "invalid plan payload",
		})
	}

	// Reject flags for feature keys the catalog does not know.
	for key := range req.FeatureFlags {
		if _, ok := catalog.FeatureByKey(key); !ok {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"error":   "unknown_feature",
				"message": "unknown feature key: " + key,
			})
		}
	}

	plan := &models.Plan{
		PlanID:                 planID,
		Name:                   req.Name,
		Description:            req.Description,
		SortIndex:              req.SortIndex,
		PriceLabel:             req.PriceLabel,
		FeatureFlags:           req.FeatureFlags,
		SeatLimit:              req.SeatLimit,
		SeatPricePerAdditional: req.SeatPricePerAdditional,
		StorageLimitMB:         req.StorageLimitMB,
		StoragePrice100GB:      req.StoragePrice100GB,
		IsActive:               true,
		ShowInMarketing:        true,
		ShowInOnboarding:       true,
	}
	if req.IsActive != nil {
		plan.IsActive = *req.IsActive
	}
	if req.ShowInMarketing != nil {
		plan.ShowInMarketing = *req.ShowInMarketing
	}
	if req.ShowInOnboarding != nil {
		plan.ShowInOnboarding = *req.ShowInOnboarding
	}

	if err := repository.GetGlobalFactory().GetPlanRepository().Upsert(plan); err != nil {
		log.Errorf("[AdminPlans] Failed to upsert plan %s: %v", planID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "internal_error",
		})
	}

	cache.InvalidatePlanRecord(planID)
	log.Infof("[AdminPlans] Plan %s updated, cache invalidated", planID)
	return c.JSON(plan)
}
