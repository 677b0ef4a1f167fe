package controllers

import (
	"context"
	"errors"
	"time"

	"github.com/AreveiHQ/jenii-Admin/coupons"
	"github.com/AreveiHQ/jenii-Admin/responses"
	"github.com/gofiber/fiber/v2"
)

type CouponController struct {
	coupons *coupons.Service
}

func NewCouponController(service *coupons.Service) *CouponController {
	return &CouponController{coupons: service}
}

func (ct *CouponController) CreateCoupon(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	var input coupons.CreateInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.AdminResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
			Result:  nil,
		})
	}

	coupon, err := ct.coupons.Create(ctx, input)
	switch {
	case err == nil:
	case errors.Is(err, coupons.ErrInvalidCoupon), errors.Is(err, coupons.ErrDuplicateCoupon):
		return c.Status(fiber.StatusBadRequest).JSON(responses.AdminResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Failed to create coupon: " + err.Error(),
			Result:  nil,
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(responses.AdminResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to create coupon",
			Result:  nil,
		})
	}

	return c.Status(fiber.StatusCreated).JSON(responses.AdminResponse{
		Status:  fiber.StatusCreated,
		Message: "Coupon created successfully",
		Result: &fiber.Map{
			"coupon": coupon,
		},
	})
}

// RedeemCoupon consumes one use of a coupon by code.
func (ct *CouponController) RedeemCoupon(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	var body struct {
		Code string `json:"code"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.AdminResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
			Result:  nil,
		})
	}

	coupon, err := ct.coupons.Redeem(ctx, body.Code)
	switch {
	case err == nil:
	case errors.Is(err, coupons.ErrCouponNotFound),
		errors.Is(err, coupons.ErrCouponExpired),
		errors.Is(err, coupons.ErrCouponExhausted):
		return c.Status(fiber.StatusBadRequest).JSON(responses.AdminResponse{
			Status:  fiber.StatusBadRequest,
			Message: err.Error(),
			Result:  nil,
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(responses.AdminResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to redeem coupon",
			Result:  nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.AdminResponse{
		Status:  fiber.StatusOK,
		Message: "Coupon redeemed",
		Result: &fiber.Map{
			"coupon": coupon,
		},
	})
}

func (ct *CouponController) GetCoupons(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	all, err := ct.coupons.List(ctx)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.AdminResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error fetching coupons",
			Result:  nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.AdminResponse{
		Status:  fiber.StatusOK,
		Message: "Fetched coupons",
		Result: &fiber.Map{
			"coupons": all,
		},
	})
}
