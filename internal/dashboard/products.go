package dashboard

import (
	"context"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/curavet/clinic-admin-service/internal/domain"
	"github.com/curavet/clinic-admin-service/internal/dto"
	"github.com/curavet/clinic-admin-service/pkg/errs"
)

// ProductForm holds the raw string inputs from the product editor.
// Validation happens here before any network call so a bad form never
// costs an image upload.
type ProductForm struct {
	Name          string
	Description   string
	Image         string
	Price         string
	OriginalPrice string
	Rating        string
	Category      string
	InStock       bool
	OnSale        bool
	Highlight     string
	Disclaimer    string

	// NewImage, when set, is uploaded before the product write and its
	// URL replaces Image.
	NewImage            io.Reader
	NewImageName        string
	NewImageContentType string
}

// Validate mirrors the server-side checks so errors surface before a
// round trip. Returns the first failing field's message.
func (f *ProductForm) Validate(requireImage bool) error {
	if strings.TrimSpace(f.Name) == "" {
		return errs.NewValidationError("name", "Name is required")
	}

	price, err := strconv.ParseFloat(f.Price, 64)
	if err != nil || price <= 0 {
		return errs.NewValidationError("price", "Valid price is required")
	}

	originalPrice := price
	if strings.TrimSpace(f.OriginalPrice) != "" {
		originalPrice, err = strconv.ParseFloat(f.OriginalPrice, 64)
		if err != nil || originalPrice <= 0 {
			return errs.NewValidationError("originalPrice", "Valid original price is required")
		}
	}

	if originalPrice < price {
		return errs.NewValidationError("originalPrice", "Original price must be greater than or equal to price")
	}

	if strings.TrimSpace(f.Rating) != "" {
		rating, err := strconv.ParseFloat(f.Rating, 64)
		if err != nil || rating < 0 || rating > 5 {
			return errs.NewValidationError("rating", "Rating must be 0-5")
		}
	}

	if requireImage && f.Image == "" && f.NewImage == nil {
		return errs.NewValidationError("image", "Image is required")
	}

	return nil
}

func (f *ProductForm) toRequest() dto.ProductRequest {
	req := dto.ProductRequest{
		Name:        &f.Name,
		Description: &f.Description,
		Category:    &f.Category,
		InStock:     &f.InStock,
		OnSale:      &f.OnSale,
		Highlight:   &f.Highlight,
		Disclaimer:  &f.Disclaimer,
	}

	if f.Image != "" {
		image := f.Image
		req.Image = &image
	}

	if price, err := strconv.ParseFloat(f.Price, 64); err == nil {
		req.Price = &price
	}
	if originalPrice, err := strconv.ParseFloat(f.OriginalPrice, 64); err == nil {
		req.OriginalPrice = &originalPrice
	}
	if rating, err := strconv.ParseFloat(f.Rating, 64); err == nil {
		req.Rating = &rating
	}

	return req
}

// ProductStore drives the product tab: it owns the list, the search
// filter and the per-mutation busy flags.
type ProductStore struct {
	client *Client
	toasts *Toaster

	mu          sync.RWMutex
	state       State
	products    []domain.Product
	detail      *domain.Product
	searchQuery string
	saving      bool
	deleting    bool
	seeding     bool
	lastError   error
}

func NewProductStore(client *Client, toasts *Toaster) *ProductStore {
	return &ProductStore{
		client: client,
		toasts: toasts,
	}
}

func (s *ProductStore) Refresh(ctx context.Context) error {
	s.mu.Lock()
	s.state = StateLoading
	s.mu.Unlock()

	products, err := s.client.GetProducts(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.state = StateError
		s.lastError = err
		return err
	}

	s.state = StateLoaded
	s.lastError = nil
	s.products = products
	return nil
}

// Save validates the form, uploads a new image when one is attached, then
// creates or updates depending on id. The list is refetched only after
// the write has completed.
func (s *ProductStore) Save(ctx context.Context, id string, form ProductForm) error {
	if err := form.Validate(id == ""); err != nil {
		s.toasts.Show(err.Error(), ToastError)
		return err
	}

	s.mu.Lock()
	s.saving = true
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.saving = false
		s.mu.Unlock()
	}()

	if form.NewImage != nil {
		uploaded, err := s.client.UploadProductImage(ctx, form.NewImageName, form.NewImageContentType, form.NewImage)
		if err != nil {
			s.toasts.Show(err.Error(), ToastError)
			return err
		}
		form.Image = uploaded.URL
	}

	req := form.toRequest()

	var err error
	if id == "" {
		_, err = s.client.CreateProduct(ctx, req)
	} else {
		err = s.client.UpdateProduct(ctx, id, req)
	}
	if err != nil {
		s.toasts.Show(err.Error(), ToastError)
		return err
	}

	if id == "" {
		s.toasts.Show("Product added", ToastSuccess)
	} else {
		s.toasts.Show("Product updated", ToastSuccess)
	}

	return s.Refresh(ctx)
}

func (s *ProductStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	s.deleting = true
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.deleting = false
		s.mu.Unlock()
	}()

	if err := s.client.DeleteProduct(ctx, id); err != nil {
		s.toasts.Show(err.Error(), ToastError)
		return err
	}

	s.toasts.Show("Product deleted", ToastSuccess)
	return s.Refresh(ctx)
}

func (s *ProductStore) Seed(ctx context.Context, req dto.SeedRequest) error {
	s.mu.Lock()
	s.seeding = true
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.seeding = false
		s.mu.Unlock()
	}()

	count, err := s.client.SeedProducts(ctx, req)
	if err != nil {
		s.toasts.Show(err.Error(), ToastError)
		return err
	}

	s.toasts.Show("Seeded "+strconv.Itoa(count)+" products", ToastSuccess)
	return s.Refresh(ctx)
}

// ViewDetail opens the detail view with the cached product immediately,
// then silently refreshes it from the server so live fields like the
// wishlist count are current. A failed refresh keeps the cached copy.
func (s *ProductStore) ViewDetail(ctx context.Context, product domain.Product) {
	cached := product
	s.mu.Lock()
	s.detail = &cached
	s.mu.Unlock()

	fresh, err := s.client.GetProduct(ctx, product.ID.Hex())
	if err != nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.detail = &fresh
	for i := range s.products {
		if s.products[i].ID == fresh.ID {
			s.products[i] = fresh
			break
		}
	}
}

func (s *ProductStore) Detail() *domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.detail == nil {
		return nil
	}

	detail := *s.detail
	return &detail
}

func (s *ProductStore) CloseDetail() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.detail = nil
}

func (s *ProductStore) SetSearchQuery(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searchQuery = query
}

// Filtered returns the products matching the search query by name,
// category or description, case-insensitively. An empty query returns
// everything.
func (s *ProductStore) Filtered() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := strings.ToLower(strings.TrimSpace(s.searchQuery))
	if query == "" {
		return append([]domain.Product(nil), s.products...)
	}

	filtered := make([]domain.Product, 0, len(s.products))
	for _, product := range s.products {
		if strings.Contains(strings.ToLower(product.Name), query) ||
			strings.Contains(strings.ToLower(product.Category), query) ||
			strings.Contains(strings.ToLower(product.Description), query) {
			filtered = append(filtered, product)
		}
	}

	return filtered
}

func (s *ProductStore) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *ProductStore) Saving() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.saving
}

func (s *ProductStore) Deleting() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.deleting
}

func (s *ProductStore) Seeding() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.seeding
}

func (s *ProductStore) LastError() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastError
}
