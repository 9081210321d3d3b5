package service

import (
	"context"
	"io"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/curavet/clinic-admin-service/internal/domain"
	"github.com/curavet/clinic-admin-service/internal/infrastructure/blobstore"
	"github.com/curavet/clinic-admin-service/internal/metrics"
	"github.com/curavet/clinic-admin-service/internal/repository"
	"github.com/curavet/clinic-admin-service/pkg/errs"
)

const defaultAltText = "Curavet Pet Clinic"

type FeaturedImageServiceImpl struct {
	featuredImageRepo repository.FeaturedImageRepository
	blobStore         blobstore.BlobStore
}

func CreateFeaturedImageService(featuredImageRepo repository.FeaturedImageRepository, blobStore blobstore.BlobStore) FeaturedImageService {
	return &FeaturedImageServiceImpl{featuredImageRepo: featuredImageRepo, blobStore: blobStore}
}

func (s *FeaturedImageServiceImpl) GetFeaturedImages(ctx context.Context) (data []domain.FeaturedImage, err error) {
	return s.featuredImageRepo.GetFeaturedImages(ctx)
}

// UploadFeaturedImage is the two-phase hero image create: blob upload
// first, document write second. Order is the collection size at write
// time; concurrent uploads racing to the same value is accepted since
// ordering is display-only.
func (s *FeaturedImageServiceImpl) UploadFeaturedImage(ctx context.Context, file io.Reader, size int64, contentType string, alt string) (result blobstore.UploadResult, err error) {
	if s.blobStore == nil {
		return result, errs.ErrBlobStoreNotReady
	}

	result, err = s.blobStore.Upload(ctx, file, size, contentType, blobstore.HeroProfile)
	if err != nil {
		return result, err
	}

	count, err := s.featuredImageRepo.CountFeaturedImages(ctx)
	if err != nil {
		return result, err
	}

	if alt == "" {
		alt = defaultAltText
	}

	_, err = s.featuredImageRepo.AddFeaturedImage(ctx, domain.FeaturedImage{
		URL:       result.URL,
		PublicID:  result.PublicID,
		Alt:       alt,
		Width:     result.Width,
		Height:    result.Height,
		Order:     count,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return result, err
	}

	metrics.FeaturedImagesUploaded.Inc()

	return result, nil
}

// DeleteFeaturedImage removes the blob best-effort, then the document.
// A blob that is already gone must never block cleanup of the record.
func (s *FeaturedImageServiceImpl) DeleteFeaturedImage(ctx context.Context, publicID string) (err error) {
	if publicID == "" {
		return errs.NewValidationError("publicId", "publicId is required")
	}

	if s.blobStore != nil {
		if err = s.blobStore.Delete(ctx, publicID); err != nil {
			log.Ctx(ctx).Warn().Err(err).Str("component", "DeleteFeaturedImage").Msg("blob delete failed, continuing with document delete")
		}
	}

	err = s.featuredImageRepo.DeleteFeaturedImageByPublicID(ctx, publicID)
	if err == errs.ErrNotFound {
		// Already cleaned up elsewhere; deletion is idempotent.
		return nil
	}

	return err
}
