package cloudinary

import (
	"context"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/curavet/clinic-admin-service/internal/infrastructure/blobstore"
	"github.com/curavet/clinic-admin-service/pkg/errs"
	"github.com/rs/zerolog/log"
)

type CloudinaryBlobStore struct {
	cld *cloudinary.Cloudinary
}

func CreateNewBlobStore(cloudName string, apiKey string, apiSecret string) (blobstore.BlobStore, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, err
	}

	return &CloudinaryBlobStore{cld: cld}, nil
}

func (s *CloudinaryBlobStore) Upload(ctx context.Context, file io.Reader, size int64, contentType string, profile blobstore.UploadProfile) (result blobstore.UploadResult, err error) {
	if err = blobstore.ValidateFile(size, contentType, profile); err != nil {
		return
	}

	resp, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:         profile.Folder,
		ResourceType:   "image",
		Transformation: fmt.Sprintf("c_limit,w_%d,h_%d,q_%s,f_auto", profile.MaxWidth, profile.MaxHeight, profile.Quality),
	})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "Upload").Msg("")
		return result, errs.ErrUploadFailed
	}

	return blobstore.UploadResult{
		URL:      resp.SecureURL,
		PublicID: resp.PublicID,
		Width:    resp.Width,
		Height:   resp.Height,
	}, nil
}

func (s *CloudinaryBlobStore) Delete(ctx context.Context, publicID string) (err error) {
	_, err = s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("component", "Delete").Str("public_id", publicID).Msg("blob delete failed, image may not exist")
		return err
	}

	return nil
}
