package controllers

import (
	"context"
	"time"

	"github.com/AreveiHQ/jenii-Admin/orders"
	"github.com/AreveiHQ/jenii-Admin/responses"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// DashboardController serves the aggregate numbers the dashboard UI
// renders: entity counts, per-status order counts and delivered revenue.
type DashboardController struct {
	db *mongo.Database
}

func NewDashboardController(db *mongo.Database) *DashboardController {
	return &DashboardController{db: db}
}

func (ct *DashboardController) GetMetrics(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	counts := fiber.Map{}
	for name, coll := range map[string]string{
		"products":        "products",
		"offlineProducts": "offlineProducts",
		"categories":      "categories",
		"coupons":         "coupons",
		"orders":          "orders",
	} {
		n, err := ct.db.Collection(coll).CountDocuments(ctx, bson.M{})
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(responses.AdminResponse{
				Status:  fiber.StatusInternalServerError,
				Message: "Error counting " + name,
				Result:  nil,
			})
		}
		counts[name] = n
	}

	statusCounts, err := ct.subOrderStatusCounts(ctx)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.AdminResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error aggregating order statuses",
			Result:  nil,
		})
	}

	revenue, err := ct.deliveredRevenue(ctx)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.AdminResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error aggregating revenue",
			Result:  nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.AdminResponse{
		Status:  fiber.StatusOK,
		Message: "Fetched dashboard metrics",
		Result: &fiber.Map{
			"counts":           counts,
			"ordersByStatus":   statusCounts,
			"deliveredRevenue": revenue,
		},
	})
}

func (ct *DashboardController) subOrderStatusCounts(ctx context.Context) (map[string]int64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$unwind", Value: "$orders"}},
		{{Key: "$group", Value: bson.M{
			"_id":   "$orders.orderStatus",
			"count": bson.M{"$sum": 1},
		}}},
	}
	cursor, err := ct.db.Collection("orders").Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	var rows []struct {
		Status string `bson:"_id"`
		Count  int64  `bson:"count"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}

	statusCounts := make(map[string]int64)
	for _, row := range rows {
		statusCounts[row.Status] = row.Count
	}
	return statusCounts, nil
}

func (ct *DashboardController) deliveredRevenue(ctx context.Context) (float64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$unwind", Value: "$orders"}},
		{{Key: "$match", Value: bson.M{"orders.orderStatus": orders.StatusDelivered}}},
		{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": "$orders.totalAmount"},
		}}},
	}
	cursor, err := ct.db.Collection("orders").Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}

	var rows []struct {
		Total float64 `bson:"total"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return rows[0].Total, nil
}
