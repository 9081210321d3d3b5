package blobstore

import (
	"context"
	"io"
)

// UploadProfile constrains an upload: the store produces a derivative capped
// at MaxWidth x MaxHeight with the requested quality.
type UploadProfile struct {
	Folder       string
	MaxWidth     int
	MaxHeight    int
	MaxSizeBytes int64
	Quality      string
}

var (
	ProductProfile = UploadProfile{
		Folder:       "curavet/products",
		MaxWidth:     800,
		MaxHeight:    800,
		MaxSizeBytes: 5 << 20,
		Quality:      "auto",
	}

	HeroProfile = UploadProfile{
		Folder:       "curavet/hero",
		MaxWidth:     1920,
		MaxHeight:    1080,
		MaxSizeBytes: 10 << 20,
		Quality:      "auto:best",
	}
)

type UploadResult struct {
	URL      string
	PublicID string
	Width    int
	Height   int
}

type BlobStore interface {
	Upload(ctx context.Context, file io.Reader, size int64, contentType string, profile UploadProfile) (result UploadResult, err error)
	Delete(ctx context.Context, publicID string) (err error)
}
