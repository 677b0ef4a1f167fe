package routes

import (
	controllers "github.com/AreveiHQ/jenii-Admin/controllers/categories"
	"github.com/AreveiHQ/jenii-Admin/middlewares"

	"github.com/gofiber/fiber/v2"
)

func CategoriesRoute(app *fiber.App, ct *controllers.CategoryController) {
	app.Get("/api/categories", middlewares.AuthMiddleware, ct.GetCategories)
	app.Post("/api/categories", middlewares.AuthMiddleware, ct.CreateCategory)
}
