package repositories

import (
	"context"

	"github.com/AreveiHQ/jenii-Admin/models"
	"github.com/AreveiHQ/jenii-Admin/orders"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// OrderRepository backs orders.Store with the orders collection.
type OrderRepository struct {
	coll *mongo.Collection
}

func NewOrderRepository(db *mongo.Database) *OrderRepository {
	return &OrderRepository{coll: db.Collection("orders")}
}

func (r *OrderRepository) List(ctx context.Context, page, limit int64, status string) ([]models.Order, int64, error) {
	filter := bson.M{}
	if status != "" {
		filter["orders.orderStatus"] = status
	}

	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	findOptions := options.Find()
	findOptions.SetSkip((page - 1) * limit)
	findOptions.SetLimit(limit)
	findOptions.SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.coll.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, err
	}
	var all []models.Order
	if err := cursor.All(ctx, &all); err != nil {
		return nil, 0, err
	}
	return all, total, nil
}

// SetSubOrderStatus overwrites the status of the matching sub-order via
// the positional operator; the write is a single document-level atomic
// update.
func (r *OrderRepository) SetSubOrderStatus(ctx context.Context, subOrderID primitive.ObjectID, status string) (*models.Order, error) {
	filter := bson.M{"orders._id": subOrderID}
	update := bson.M{"$set": bson.M{"orders.$.orderStatus": status}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var order models.Order
	err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&order)
	if err == mongo.ErrNoDocuments {
		return nil, orders.ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}
