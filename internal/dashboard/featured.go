package dashboard

import (
	"context"
	"io"
	"sync"

	"github.com/curavet/clinic-admin-service/internal/domain"
)

// FeaturedImageStore drives the hero-image tab.
type FeaturedImageStore struct {
	client *Client
	toasts *Toaster

	mu        sync.RWMutex
	state     State
	images    []domain.FeaturedImage
	uploading bool
	deleting  bool
	lastError error
}

func NewFeaturedImageStore(client *Client, toasts *Toaster) *FeaturedImageStore {
	return &FeaturedImageStore{
		client: client,
		toasts: toasts,
	}
}

func (s *FeaturedImageStore) Refresh(ctx context.Context) error {
	s.mu.Lock()
	s.state = StateLoading
	s.mu.Unlock()

	images, err := s.client.GetFeaturedImages(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.state = StateError
		s.lastError = err
		return err
	}

	s.state = StateLoaded
	s.lastError = nil
	s.images = images
	return nil
}

func (s *FeaturedImageStore) Upload(ctx context.Context, fileName string, contentType string, file io.Reader, alt string) error {
	s.mu.Lock()
	s.uploading = true
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.uploading = false
		s.mu.Unlock()
	}()

	if _, err := s.client.UploadFeaturedImage(ctx, fileName, contentType, file, alt); err != nil {
		s.toasts.Show(err.Error(), ToastError)
		return err
	}

	s.toasts.Show("Image uploaded", ToastSuccess)
	return s.Refresh(ctx)
}

func (s *FeaturedImageStore) Delete(ctx context.Context, publicID string) error {
	s.mu.Lock()
	s.deleting = true
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.deleting = false
		s.mu.Unlock()
	}()

	if err := s.client.DeleteFeaturedImage(ctx, publicID); err != nil {
		s.toasts.Show(err.Error(), ToastError)
		return err
	}

	s.toasts.Show("Image removed", ToastSuccess)
	return s.Refresh(ctx)
}

func (s *FeaturedImageStore) Images() []domain.FeaturedImage {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.FeaturedImage(nil), s.images...)
}

func (s *FeaturedImageStore) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *FeaturedImageStore) Uploading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.uploading
}

func (s *FeaturedImageStore) Deleting() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.deleting
}

func (s *FeaturedImageStore) LastError() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastError
}
