package routes

import (
	controllers "github.com/AreveiHQ/jenii-Admin/controllers/orders"
	"github.com/AreveiHQ/jenii-Admin/middlewares"

	"github.com/gofiber/fiber/v2"
)

func OrdersRoute(app *fiber.App, ct *controllers.OrderController) {
	app.Get("/api/orders", middlewares.AuthMiddleware, ct.GetOrders)
	app.Patch("/api/orders/status", middlewares.AuthMiddleware, ct.UpdateOrderStatus)
}
