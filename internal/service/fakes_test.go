package service

import (
	"context"
	"io"

	"github.com/curavet/clinic-admin-service/internal/domain"
	"github.com/curavet/clinic-admin-service/internal/infrastructure/blobstore"
	"github.com/curavet/clinic-admin-service/pkg/errs"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeProductRepository struct {
	products map[string]domain.Product
	addErr   error
}

func newFakeProductRepository() *fakeProductRepository {
	return &fakeProductRepository{products: map[string]domain.Product{}}
}

func (r *fakeProductRepository) GetProducts(ctx context.Context) ([]domain.Product, error) {
	data := make([]domain.Product, 0, len(r.products))
	for _, p := range r.products {
		data = append(data, p)
	}
	return data, nil
}

func (r *fakeProductRepository) GetProductByID(ctx context.Context, id string) (domain.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return domain.Product{}, errs.ErrNotFound
	}
	return p, nil
}

func (r *fakeProductRepository) AddProduct(ctx context.Context, data domain.Product) (primitive.ObjectID, error) {
	if r.addErr != nil {
		return primitive.NilObjectID, r.addErr
	}
	data.ID = primitive.NewObjectID()
	r.products[data.ID.Hex()] = data
	return data.ID, nil
}

func (r *fakeProductRepository) UpdateProduct(ctx context.Context, data domain.Product) error {
	id := data.ID.Hex()
	existing, ok := r.products[id]
	if !ok {
		return errs.ErrNotFound
	}
	// Wishlist and creation time are owned by other write paths.
	data.Wishlist = existing.Wishlist
	data.CreatedAt = existing.CreatedAt
	r.products[id] = data
	return nil
}

func (r *fakeProductRepository) DeleteProduct(ctx context.Context, id string) error {
	if _, ok := r.products[id]; !ok {
		return errs.ErrNotFound
	}
	delete(r.products, id)
	return nil
}

func (r *fakeProductRepository) AdjustWishlist(ctx context.Context, id string, delta int64) error {
	p, ok := r.products[id]
	if !ok {
		return errs.ErrNotFound
	}
	p.Wishlist += delta
	r.products[id] = p
	return nil
}

type fakeBookingRepository struct {
	bookings map[string]domain.Booking
}

func newFakeBookingRepository() *fakeBookingRepository {
	return &fakeBookingRepository{bookings: map[string]domain.Booking{}}
}

func (r *fakeBookingRepository) GetBookings(ctx context.Context) ([]domain.Booking, error) {
	data := make([]domain.Booking, 0, len(r.bookings))
	for _, b := range r.bookings {
		data = append(data, b)
	}
	return data, nil
}

func (r *fakeBookingRepository) AddBooking(ctx context.Context, data domain.Booking) (primitive.ObjectID, error) {
	data.ID = primitive.NewObjectID()
	r.bookings[data.ID.Hex()] = data
	return data.ID, nil
}

func (r *fakeBookingRepository) SetBookingStatus(ctx context.Context, id string, booked bool) error {
	b, ok := r.bookings[id]
	if !ok {
		return errs.ErrNotFound
	}
	b.Booked = booked
	r.bookings[id] = b
	return nil
}

func (r *fakeBookingRepository) DeleteBooking(ctx context.Context, id string) error {
	if _, ok := r.bookings[id]; !ok {
		return errs.ErrNotFound
	}
	delete(r.bookings, id)
	return nil
}

type fakeFeaturedImageRepository struct {
	images []domain.FeaturedImage
}

func (r *fakeFeaturedImageRepository) GetFeaturedImages(ctx context.Context) ([]domain.FeaturedImage, error) {
	return append([]domain.FeaturedImage(nil), r.images...), nil
}

func (r *fakeFeaturedImageRepository) CountFeaturedImages(ctx context.Context) (int64, error) {
	return int64(len(r.images)), nil
}

func (r *fakeFeaturedImageRepository) AddFeaturedImage(ctx context.Context, data domain.FeaturedImage) (primitive.ObjectID, error) {
	data.ID = primitive.NewObjectID()
	r.images = append(r.images, data)
	return data.ID, nil
}

func (r *fakeFeaturedImageRepository) DeleteFeaturedImageByPublicID(ctx context.Context, publicID string) error {
	for i, img := range r.images {
		if img.PublicID == publicID {
			r.images = append(r.images[:i], r.images[i+1:]...)
			return nil
		}
	}
	return errs.ErrNotFound
}

type fakeBlobStore struct {
	uploads   int
	deletes   int
	uploadErr error
	deleteErr error
	result    blobstore.UploadResult
}

func (b *fakeBlobStore) Upload(ctx context.Context, file io.Reader, size int64, contentType string, profile blobstore.UploadProfile) (blobstore.UploadResult, error) {
	if err := blobstore.ValidateFile(size, contentType, profile); err != nil {
		return blobstore.UploadResult{}, err
	}
	if b.uploadErr != nil {
		return blobstore.UploadResult{}, b.uploadErr
	}
	b.uploads++
	return b.result, nil
}

func (b *fakeBlobStore) Delete(ctx context.Context, publicID string) error {
	b.deletes++
	return b.deleteErr
}

type fakeMessageWriter struct {
	messages [][]byte
}

func (w *fakeMessageWriter) WriteMessage(msg []byte) error {
	w.messages = append(w.messages, msg)
	return nil
}

type fakeVerifier struct {
	valid bool
}

func (v *fakeVerifier) VerifyIDToken(ctx context.Context, idToken string) bool {
	return v.valid
}
