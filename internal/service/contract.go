package service

import (
	"context"
	"io"

	"github.com/curavet/clinic-admin-service/internal/domain"
	"github.com/curavet/clinic-admin-service/internal/dto"
	"github.com/curavet/clinic-admin-service/internal/infrastructure/blobstore"
)

type AuthService interface {
	Login(ctx context.Context, idToken string) (token string, err error)
	VerifySession(token string) bool
}

type ProductService interface {
	GetProducts(ctx context.Context) (data []domain.Product, err error)
	GetProduct(ctx context.Context, id string) (data domain.Product, err error)
	AddProduct(ctx context.Context, req dto.ProductRequest) (id string, err error)
	UpdateProduct(ctx context.Context, id string, req dto.ProductRequest) (err error)
	DeleteProduct(ctx context.Context, id string) (err error)
	AdjustWishlist(ctx context.Context, req dto.WishlistRequest) (err error)
	SeedProducts(ctx context.Context, req dto.SeedRequest) (count int, err error)
	UploadImage(ctx context.Context, file io.Reader, size int64, contentType string) (result blobstore.UploadResult, err error)
}

type BookingService interface {
	GetBookings(ctx context.Context) (data []domain.Booking, err error)
	AddBooking(ctx context.Context, req dto.BookingRequest) (id string, err error)
	SetBookingStatus(ctx context.Context, id string, booked bool) (err error)
	DeleteBooking(ctx context.Context, id string) (err error)
}

type FeaturedImageService interface {
	GetFeaturedImages(ctx context.Context) (data []domain.FeaturedImage, err error)
	UploadFeaturedImage(ctx context.Context, file io.Reader, size int64, contentType string, alt string) (result blobstore.UploadResult, err error)
	DeleteFeaturedImage(ctx context.Context, publicID string) (err error)
}

// MessageWriter publishes product change events to the marketing-site
// invalidation feed. A nil writer disables publishing.
type MessageWriter interface {
	WriteMessage(msg []byte) error
}
