package routes

import (
	controllers "github.com/AreveiHQ/jenii-Admin/controllers/admins"
	"github.com/AreveiHQ/jenii-Admin/middlewares"

	"github.com/gofiber/fiber/v2"
)

func AdminsRoute(app *fiber.App, ct *controllers.AdminController) {
	// Sign-up is itself admin-gated: only an existing admin can add one.
	app.Post("/api/admins/signup", middlewares.AuthMiddleware, ct.AdminSignUp)
	app.Post("/api/admins/signin", ct.AdminSignIn)
}
