package service

import (
	"context"
	"encoding/json"
	"io"
	"math"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/curavet/clinic-admin-service/internal/domain"
	"github.com/curavet/clinic-admin-service/internal/dto"
	"github.com/curavet/clinic-admin-service/internal/infrastructure/blobstore"
	"github.com/curavet/clinic-admin-service/internal/metrics"
	"github.com/curavet/clinic-admin-service/internal/repository"
	"github.com/curavet/clinic-admin-service/pkg/errs"
)

type ProductServiceImpl struct {
	productRepo   repository.ProductRepository
	blobStore     blobstore.BlobStore
	messageWriter MessageWriter
}

func CreateProductService(productRepo repository.ProductRepository, blobStore blobstore.BlobStore, messageWriter MessageWriter) ProductService {
	return &ProductServiceImpl{productRepo: productRepo, blobStore: blobStore, messageWriter: messageWriter}
}

// computeDiscount derives the stored discount percentage from the price
// pair. It runs on every write that touches either price field so the
// stored value never goes stale.
func computeDiscount(price float64, originalPrice float64) int {
	if originalPrice > price {
		return int(math.Round((originalPrice - price) / originalPrice * 100))
	}
	return 0
}

func validateProduct(name string, price float64, originalPrice float64, rating float64) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValidationError("name", "Name is required")
	}
	if price <= 0 {
		return errs.NewValidationError("price", "Valid price is required")
	}
	if originalPrice <= 0 {
		return errs.NewValidationError("originalPrice", "Valid original price is required")
	}
	if originalPrice < price {
		return errs.NewValidationError("originalPrice", "Original price must be greater than or equal to price")
	}
	if rating < 0 || rating > 5 {
		return errs.NewValidationError("rating", "Rating must be 0-5")
	}
	return nil
}

func (s *ProductServiceImpl) GetProducts(ctx context.Context) (data []domain.Product, err error) {
	return s.productRepo.GetProducts(ctx)
}

func (s *ProductServiceImpl) GetProduct(ctx context.Context, id string) (data domain.Product, err error) {
	return s.productRepo.GetProductByID(ctx, id)
}

func (s *ProductServiceImpl) AddProduct(ctx context.Context, req dto.ProductRequest) (id string, err error) {
	var name, image string
	var price, originalPrice, rating float64

	if req.Name != nil {
		name = strings.TrimSpace(*req.Name)
	}
	if req.Image != nil {
		image = strings.TrimSpace(*req.Image)
	}
	if req.Price != nil {
		price = *req.Price
	}
	if req.OriginalPrice != nil {
		originalPrice = *req.OriginalPrice
	}
	if originalPrice == 0 {
		originalPrice = price
	}
	if req.Rating != nil {
		rating = *req.Rating
	}

	if image == "" {
		return "", errs.NewValidationError("image", "Image is required")
	}

	if err = validateProduct(name, price, originalPrice, rating); err != nil {
		return "", err
	}

	now := time.Now().UTC()
	product := domain.Product{
		Name:          name,
		Image:         image,
		Price:         price,
		OriginalPrice: originalPrice,
		Discount:      computeDiscount(price, originalPrice),
		Rating:        rating,
		InStock:       true,
		Wishlist:      0,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if req.Description != nil {
		product.Description = strings.TrimSpace(*req.Description)
	}
	if req.Category != nil {
		product.Category = *req.Category
	}
	if req.InStock != nil {
		product.InStock = *req.InStock
	}
	if req.OnSale != nil {
		product.OnSale = *req.OnSale
	}
	if req.Highlight != nil {
		product.Highlight = strings.TrimSpace(*req.Highlight)
	}
	if req.Disclaimer != nil {
		product.Disclaimer = strings.TrimSpace(*req.Disclaimer)
	}

	productID, err := s.productRepo.AddProduct(ctx, product)
	if err != nil {
		return "", err
	}

	metrics.ProductsCreated.Inc()

	product.ID = productID
	s.publishEvent(ctx, "product_created", product)

	return productID.Hex(), nil
}

func (s *ProductServiceImpl) UpdateProduct(ctx context.Context, id string, req dto.ProductRequest) (err error) {
	product, err := s.productRepo.GetProductByID(ctx, id)
	if err != nil {
		return err
	}

	if req.Name != nil {
		product.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		product.Description = strings.TrimSpace(*req.Description)
	}
	if req.Image != nil && strings.TrimSpace(*req.Image) != "" {
		// Image is optional on update: an absent or empty value keeps the
		// existing upload.
		product.Image = strings.TrimSpace(*req.Image)
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.OriginalPrice != nil {
		product.OriginalPrice = *req.OriginalPrice
	}
	if req.Rating != nil {
		product.Rating = *req.Rating
	}
	if req.Category != nil {
		product.Category = *req.Category
	}
	if req.InStock != nil {
		product.InStock = *req.InStock
	}
	if req.OnSale != nil {
		product.OnSale = *req.OnSale
	}
	if req.Highlight != nil {
		product.Highlight = strings.TrimSpace(*req.Highlight)
	}
	if req.Disclaimer != nil {
		product.Disclaimer = strings.TrimSpace(*req.Disclaimer)
	}

	if err = validateProduct(product.Name, product.Price, product.OriginalPrice, product.Rating); err != nil {
		return err
	}

	product.Discount = computeDiscount(product.Price, product.OriginalPrice)
	product.UpdatedAt = time.Now().UTC()

	err = s.productRepo.UpdateProduct(ctx, product)
	if err != nil {
		return err
	}

	s.publishEvent(ctx, "product_updated", product)

	return nil
}

func (s *ProductServiceImpl) DeleteProduct(ctx context.Context, id string) (err error) {
	err = s.productRepo.DeleteProduct(ctx, id)
	if err != nil {
		return err
	}

	metrics.ProductsDeleted.Inc()

	s.publishEvent(ctx, "product_deleted", map[string]string{"id": id})

	return nil
}

func (s *ProductServiceImpl) AdjustWishlist(ctx context.Context, req dto.WishlistRequest) (err error) {
	if req.ProductID == "" {
		return errs.NewValidationError("productId", "productId is required")
	}

	var delta int64
	switch req.Action {
	case "add":
		delta = 1
	case "remove":
		delta = -1
	default:
		return errs.NewValidationError("action", "action must be 'add' or 'remove'")
	}

	err = s.productRepo.AdjustWishlist(ctx, req.ProductID, delta)
	if err != nil {
		return err
	}

	metrics.WishlistUpdates.Inc()

	return nil
}

func (s *ProductServiceImpl) SeedProducts(ctx context.Context, req dto.SeedRequest) (count int, err error) {
	now := time.Now().UTC()

	for _, seed := range req.Products {
		originalPrice := seed.OriginalPrice
		if originalPrice == 0 {
			originalPrice = seed.Price
		}

		category := seed.Category
		if category == "" {
			category = "Uncategorized"
		}

		product := domain.Product{
			Name:          seed.Name,
			Description:   seed.Description,
			Image:         seed.Image,
			Price:         seed.Price,
			OriginalPrice: originalPrice,
			Discount:      computeDiscount(seed.Price, originalPrice),
			Rating:        seed.Rating,
			Category:      category,
			InStock:       true,
			Wishlist:      0,
			CreatedAt:     now,
			UpdatedAt:     now,
		}

		if _, err = s.productRepo.AddProduct(ctx, product); err != nil {
			return count, err
		}

		metrics.ProductsCreated.Inc()
		count++
	}

	return count, nil
}

func (s *ProductServiceImpl) UploadImage(ctx context.Context, file io.Reader, size int64, contentType string) (result blobstore.UploadResult, err error) {
	if s.blobStore == nil {
		return result, errs.ErrBlobStoreNotReady
	}

	return s.blobStore.Upload(ctx, file, size, contentType, blobstore.ProductProfile)
}

// publishEvent is best-effort: the marketing pages re-read the store on
// their own cadence, so a lost invalidation event never fails a mutation.
func (s *ProductServiceImpl) publishEvent(ctx context.Context, eventType string, data interface{}) {
	if s.messageWriter == nil {
		return
	}

	kafkaMsg := dto.KafkaMessage{
		EventType: eventType,
		Data:      data,
	}

	jsonMsg, err := json.Marshal(kafkaMsg)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "publishEvent").Msg("")
		return
	}

	maxRetries := 3
	for i := 0; i < maxRetries; i++ {
		err = s.messageWriter.WriteMessage(jsonMsg)
		if err == nil {
			return
		}
		log.Ctx(ctx).Error().Err(err).Str("component", "publishEvent").Msg("")
		time.Sleep(time.Second * time.Duration(i+1))
	}

	log.Ctx(ctx).Error().Err(err).Str("component", "publishEvent").Msgf("failed to write message after %d attempts", maxRetries)
}
