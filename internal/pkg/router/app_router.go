package router

import (
	"github.com/craftora/craftora/app/controllers"
	"github.com/craftora/craftora/internal/pkg/middleware"

	"github.com/gofiber/fiber/v2"
)

type AppRouter struct {
}

// InstallRouter registers the feature-gated application route groups.
// The handlers behind these prefixes are the CRUD screens owned by
// other teams; only the gate itself lives here. Paths the catalog does
// not declare are untouched by the gate.
func (h AppRouter) InstallRouter(app *fiber.App) {
	gate := middleware.FeatureGate(controllers.Evaluator())

	for _, prefix := range []string{
		"/invoices",
		"/quotes",
		"/expenses",
		"/inventory",
		"/stock",
		"/suppliers",
		"/purchase-orders",
		"/jobs",
		"/schedule",
		"/pos",
		"/prescriptions",
		"/customers",
		"/reports",
		"/analytics",
		"/files",
		"/team",
		"/integrations",
	} {
		app.Use(prefix, gate)
	}
}

func NewAppRouter() *AppRouter {
	return &AppRouter{}
}
