package controllers

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/AreveiHQ/jenii-Admin/orders"
	"github.com/AreveiHQ/jenii-Admin/responses"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OrderController struct {
	orders *orders.Service
}

func NewOrderController(service *orders.Service) *OrderController {
	return &OrderController{orders: service}
}

func (ct *OrderController) GetOrders(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	page, err := strconv.ParseInt(c.Query("page", "1"), 10, 64)
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.ParseInt(c.Query("limit", "10"), 10, 64)
	if err != nil || limit < 1 {
		limit = 10
	}
	status := c.Query("status", "")

	all, total, err := ct.orders.List(ctx, page, limit, status)
	if errors.Is(err, orders.ErrInvalidStatus) {
		return c.Status(fiber.StatusBadRequest).JSON(responses.AdminResponse{
			Status:  fiber.StatusBadRequest,
			Message: err.Error(),
			Result:  nil,
		})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.AdminResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to fetch orders",
			Result:  nil,
		})
	}

	totalPages := (total + limit - 1) / limit
	return c.Status(fiber.StatusOK).JSON(responses.AdminResponse{
		Status:  fiber.StatusOK,
		Message: "Orders fetched successfully",
		Result: &fiber.Map{
			"orders":      all,
			"currentPage": page,
			"totalPages":  totalPages,
			"totalOrders": total,
		},
	})
}

// UpdateOrderStatus overwrites the status of one sub-order.
func (ct *OrderController) UpdateOrderStatus(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	var body struct {
		OrderID string `json:"orderId"`
		Status  string `json:"status"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.AdminResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
			Result:  nil,
		})
	}

	subOrderID, err := primitive.ObjectIDFromHex(body.OrderID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.AdminResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid order ID format",
			Result:  nil,
		})
	}

	order, err := ct.orders.SetStatus(ctx, subOrderID, body.Status)
	switch {
	case err == nil:
	case errors.Is(err, orders.ErrInvalidStatus):
		return c.Status(fiber.StatusBadRequest).JSON(responses.AdminResponse{
			Status:  fiber.StatusBadRequest,
			Message: err.Error(),
			Result:  nil,
		})
	case errors.Is(err, orders.ErrOrderNotFound):
		return c.Status(fiber.StatusNotFound).JSON(responses.AdminResponse{
			Status:  fiber.StatusNotFound,
			Message: "Order not found",
			Result:  nil,
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(responses.AdminResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to update order status",
			Result:  nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.AdminResponse{
		Status:  fiber.StatusOK,
		Message: "Order status updated",
		Result: &fiber.Map{
			"order": order,
		},
	})
}
