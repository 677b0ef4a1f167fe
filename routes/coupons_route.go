package routes

import (
	controllers "github.com/AreveiHQ/jenii-Admin/controllers/coupons"
	"github.com/AreveiHQ/jenii-Admin/middlewares"

	"github.com/gofiber/fiber/v2"
)

func CouponsRoute(app *fiber.App, ct *controllers.CouponController) {
	app.Get("/api/coupons", middlewares.AuthMiddleware, ct.GetCoupons)
	app.Post("/api/coupons", middlewares.AuthMiddleware, ct.CreateCoupon)
	app.Patch("/api/coupons/redeem", middlewares.AuthMiddleware, ct.RedeemCoupon)
}
