package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SlideSections is the fixed set of home-page placements a slide can
// target.
var SlideSections = []string{"Hero Slider", "About Slider", "Medal Worthy"}

type Slide struct {
	ID                 primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	DesktopBannerImage string             `bson:"desktopBannerImage" json:"desktopBannerImage" validate:"required"`
	MobileBannerImage  string             `bson:"mobileBannerImage" json:"mobileBannerImage" validate:"required"`
	Links              string             `bson:"links" json:"links" validate:"required"`
	Section            string             `bson:"section" json:"section" validate:"required"`
	CreatedAt          time.Time          `bson:"createdAt" json:"createdAt"`
}
