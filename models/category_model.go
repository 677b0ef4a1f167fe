package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// ParentCategories is the fixed set of top-level storefront sections a
// sub-category can belong to.
var ParentCategories = []string{"men", "women", "kid"}

type Category struct {
	ID             primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name           string             `bson:"name" json:"name" validate:"required,max=50"`
	Slug           string             `bson:"slug" json:"slug" validate:"required"`
	ParentCategory string             `bson:"parentCategory" json:"parentCategory" validate:"required"`
	Image          string             `bson:"image,omitempty" json:"image,omitempty"`
	BannerImages   []string           `bson:"bannerImages" json:"bannerImages"`
}
