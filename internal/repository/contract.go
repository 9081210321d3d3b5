package repository

import (
	"context"

	"github.com/curavet/clinic-admin-service/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ProductRepository interface {
	GetProducts(ctx context.Context) (data []domain.Product, err error)
	GetProductByID(ctx context.Context, id string) (product domain.Product, err error)
	AddProduct(ctx context.Context, data domain.Product) (id primitive.ObjectID, err error)
	UpdateProduct(ctx context.Context, data domain.Product) (err error)
	DeleteProduct(ctx context.Context, id string) (err error)
	AdjustWishlist(ctx context.Context, id string, delta int64) (err error)
}

type BookingRepository interface {
	GetBookings(ctx context.Context) (data []domain.Booking, err error)
	AddBooking(ctx context.Context, data domain.Booking) (id primitive.ObjectID, err error)
	SetBookingStatus(ctx context.Context, id string, booked bool) (err error)
	DeleteBooking(ctx context.Context, id string) (err error)
}

type FeaturedImageRepository interface {
	GetFeaturedImages(ctx context.Context) (data []domain.FeaturedImage, err error)
	CountFeaturedImages(ctx context.Context) (count int64, err error)
	AddFeaturedImage(ctx context.Context, data domain.FeaturedImage) (id primitive.ObjectID, err error)
	DeleteFeaturedImageByPublicID(ctx context.Context, publicID string) (err error)
}
