package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product is a store item shown on the marketing pages and managed from the
// admin dashboard. Discount is derived from the price pair at write time.
type Product struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name          string             `bson:"name" json:"name"`
	Description   string             `bson:"description" json:"description"`
	Image         string             `bson:"image" json:"image"`
	Price         float64            `bson:"price" json:"price"`
	OriginalPrice float64            `bson:"originalPrice" json:"originalPrice"`
	Discount      int                `bson:"discount" json:"discount"`
	Rating        float64            `bson:"rating" json:"rating"`
	Category      string             `bson:"category" json:"category"`
	InStock       bool               `bson:"inStock" json:"inStock"`
	OnSale        bool               `bson:"onSale" json:"onSale"`
	Highlight     string             `bson:"highlight" json:"highlight"`
	Disclaimer    string             `bson:"disclaimer" json:"disclaimer"`
	Wishlist      int64              `bson:"wishlist" json:"wishlist"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}
