package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Coupon struct {
	ID                primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Code              string             `bson:"code" json:"code" validate:"required"`
	DiscountType      string             `bson:"discountType" json:"discountType" validate:"required"`
	DiscountValue     float64            `bson:"discountValue" json:"discountValue" validate:"required,gt=0"`
	ValidUntil        time.Time          `bson:"validUntil" json:"validUntil" validate:"required"`
	MinimumOrderValue float64            `bson:"minimumOrderValue,omitempty" json:"minimumOrderValue,omitempty"`
	UsageLimit        int                `bson:"usageLimit,omitempty" json:"usageLimit,omitempty"`
	UsedCount         int                `bson:"usedCount" json:"usedCount"`
	CreatedAt         time.Time          `bson:"createdAt" json:"createdAt"`
}
