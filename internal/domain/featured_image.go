package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FeaturedImage is a hero slider image. Order is the collection size at
// upload time, not a dense reorderable index.
type FeaturedImage struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	URL       string             `bson:"url" json:"url"`
	PublicID  string             `bson:"publicId" json:"publicId"`
	Alt       string             `bson:"alt" json:"alt"`
	Width     int                `bson:"width" json:"width"`
	Height    int                `bson:"height" json:"height"`
	Order     int64              `bson:"order" json:"order"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
