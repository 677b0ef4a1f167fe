package routes

import (
	controllers "github.com/AreveiHQ/jenii-Admin/controllers/dashboard"
	"github.com/AreveiHQ/jenii-Admin/middlewares"

	"github.com/gofiber/fiber/v2"
)

func DashboardRoute(app *fiber.App, ct *controllers.DashboardController) {
	app.Get("/api/dashboard/metrics", middlewares.AuthMiddleware, ct.GetMetrics)
}
