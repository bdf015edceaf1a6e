package controllers

import (
	"github.com/craftora/craftora/internal/pkg/statistics"
	"github.com/gofiber/fiber/v2"
)

// HandleAdminStats returns cached platform totals for the admin
// dashboard. The numbers may lag by the cache refresh interval;
// ?refresh=true forces a recount.
func HandleAdminStats(c *fiber.Ctx) error {
	if c.Query("refresh") == "true" {
		statistics.ResetCacheUpdateTimer()
	}
	return c.JSON(statistics.GetStatisticsData())
}
