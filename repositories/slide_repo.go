package repositories

import (
	"context"

	"github.com/AreveiHQ/jenii-Admin/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SlideRepository backs catalog.SlideStore. Slides are append-only.
type SlideRepository struct {
	coll *mongo.Collection
}

func NewSlideRepository(db *mongo.Database) *SlideRepository {
	return &SlideRepository{coll: db.Collection("homepage")}
}

func (r *SlideRepository) Create(ctx context.Context, slide *models.Slide) (primitive.ObjectID, error) {
	result, err := r.coll.InsertOne(ctx, slide)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return result.InsertedID.(primitive.ObjectID), nil
}

func (r *SlideRepository) List(ctx context.Context) ([]models.Slide, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	var slides []models.Slide
	if err := cursor.All(ctx, &slides); err != nil {
		return nil, err
	}
	return slides, nil
}
