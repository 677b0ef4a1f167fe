package routes

import (
	controllers "github.com/AreveiHQ/jenii-Admin/controllers/slides"
	"github.com/AreveiHQ/jenii-Admin/middlewares"

	"github.com/gofiber/fiber/v2"
)

func SlidesRoute(app *fiber.App, ct *controllers.SlideController) {
	app.Get("/api/slides", middlewares.AuthMiddleware, ct.GetSlides)
	app.Post("/api/slides", middlewares.AuthMiddleware, ct.CreateSlide)
}
