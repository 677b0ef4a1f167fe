package routes

import (
	controllers "github.com/AreveiHQ/jenii-Admin/controllers/products"
	"github.com/AreveiHQ/jenii-Admin/middlewares"

	"github.com/gofiber/fiber/v2"
)

func ProductsRoute(app *fiber.App, ct *controllers.ProductController) {
	app.Get("/api/products", middlewares.AuthMiddleware, ct.GetAllProducts)
	app.Post("/api/products", middlewares.AuthMiddleware, ct.AddProduct)
	app.Get("/api/products/:productId", middlewares.AuthMiddleware, ct.GetProductById)
	app.Put("/api/products/:productId", middlewares.AuthMiddleware, ct.UpdateProduct)
	app.Delete("/api/products/:productId", middlewares.AuthMiddleware, ct.DeleteProduct)
}
