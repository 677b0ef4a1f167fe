package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// CategoryRef is the embedded reference a product keeps to the
// sub-category it was filed under.
type CategoryRef struct {
	Name string             `bson:"name" json:"name"`
	ID   primitive.ObjectID `bson:"id" json:"id"`
}

type Product struct {
	ID              primitive.ObjectID `json:"productId,omitempty" bson:"_id,omitempty"`
	SKU             string             `bson:"sku,omitempty" json:"sku,omitempty"`
	Name            string             `bson:"name" json:"name" validate:"required"`
	Description     string             `bson:"description" json:"description"`
	Price           float64            `bson:"price" json:"price" validate:"required,gt=0"`
	DiscountPrice   float64            `bson:"discountPrice" json:"discountPrice" validate:"min=0"`
	DiscountPercent int                `bson:"discountPercent" json:"discountPercent"`
	Category        CategoryRef        `bson:"category" json:"category"`
	CollectionName  []string           `bson:"collectionName" json:"collectionName"`
	Metal           string             `bson:"metal,omitempty" json:"metal,omitempty"`
	Stock           int                `bson:"stock" json:"stock" validate:"min=0"`
	Slug            string             `bson:"slug" json:"slug"`
	Images          []string           `bson:"images" json:"images" validate:"required,min=1,dive"`
}
