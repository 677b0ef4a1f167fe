package repositories

import (
	"context"

	"github.com/AreveiHQ/jenii-Admin/catalog"
	"github.com/AreveiHQ/jenii-Admin/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ProductRepository backs catalog.ProductStore. Online and offline
// products share one schema but live in separate collections; the
// partition is picked once at creation time.
type ProductRepository struct {
	online  *mongo.Collection
	offline *mongo.Collection
}

func NewProductRepository(db *mongo.Database) *ProductRepository {
	return &ProductRepository{
		online:  db.Collection("products"),
		offline: db.Collection("offlineProducts"),
	}
}

func (r *ProductRepository) Create(ctx context.Context, product *models.Product, mode catalog.SaleMode) (primitive.ObjectID, error) {
	coll := r.online
	if mode == catalog.SaleModeOffline {
		coll = r.offline
	}
	result, err := coll.InsertOne(ctx, product)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return result.InsertedID.(primitive.ObjectID), nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	var product models.Product
	err := r.online.FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *ProductRepository) UpdateByID(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) (*models.Product, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var product models.Product
	err := r.online.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": updates}, opts).Decode(&product)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *ProductRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.online.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return catalog.ErrNotFound
	}
	return nil
}

func (r *ProductRepository) List(ctx context.Context, page, limit int64) ([]models.Product, int64, error) {
	total, err := r.online.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, err
	}

	findOptions := options.Find()
	findOptions.SetSkip((page - 1) * limit)
	findOptions.SetLimit(limit)

	cursor, err := r.online.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, 0, err
	}
	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, 0, err
	}
	return products, total, nil
}
