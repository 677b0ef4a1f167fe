package repositories

import (
	"context"
	"time"

	"github.com/AreveiHQ/jenii-Admin/coupons"
	"github.com/AreveiHQ/jenii-Admin/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CouponRepository backs coupons.Store with the coupons collection.
type CouponRepository struct {
	coll *mongo.Collection
}

func NewCouponRepository(db *mongo.Database) *CouponRepository {
	return &CouponRepository{coll: db.Collection("coupons")}
}

func (r *CouponRepository) Create(ctx context.Context, coupon *models.Coupon) (primitive.ObjectID, error) {
	result, err := r.coll.InsertOne(ctx, coupon)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return primitive.NilObjectID, coupons.ErrDuplicateCoupon
		}
		return primitive.NilObjectID, err
	}
	return result.InsertedID.(primitive.ObjectID), nil
}

func (r *CouponRepository) FindByCode(ctx context.Context, code string) (*models.Coupon, error) {
	var coupon models.Coupon
	err := r.coll.FindOne(ctx, bson.M{"code": code}).Decode(&coupon)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &coupon, nil
}

// RedeemOne is the single conditional update the redemption invariant
// hangs on: match only while the coupon is unexpired and under its
// limit, and increment in the same document-level atomic operation.
// Concurrent redeemers past the limit simply match nothing.
func (r *CouponRepository) RedeemOne(ctx context.Context, code string, now time.Time) (*models.Coupon, error) {
	filter := bson.M{
		"code":       code,
		"validUntil": bson.M{"$gt": now},
		"$or": bson.A{
			bson.M{"usageLimit": bson.M{"$exists": false}},
			bson.M{"usageLimit": bson.M{"$lte": 0}},
			bson.M{"$expr": bson.M{"$lt": bson.A{"$usedCount", "$usageLimit"}}},
		},
	}
	update := bson.M{"$inc": bson.M{"usedCount": 1}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var coupon models.Coupon
	err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&coupon)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &coupon, nil
}

func (r *CouponRepository) List(ctx context.Context) ([]models.Coupon, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	var all []models.Coupon
	if err := cursor.All(ctx, &all); err != nil {
		return nil, err
	}
	return all, nil
}
