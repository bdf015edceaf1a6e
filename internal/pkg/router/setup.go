package router

import (
	"github.com/gofiber/fiber/v2"
)

type Router interface {
	InstallRouter(app *fiber.App)
}

func InstallRouter(app *fiber.App) {
	// ApiRouter installs the global tenant-context middleware first;
	// AppRouter registers the feature-gated application route groups
	// which depend on it.
	setup(app, NewApiRouter(), NewAppRouter())
}

func setup(app *fiber.App, router ...Router) {
	for _, r := range router {
		r.InstallRouter(app)
	}
}
