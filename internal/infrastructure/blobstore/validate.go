package blobstore

import (
	"fmt"
	"strings"

	"github.com/curavet/clinic-admin-service/pkg/errs"
)

// ValidateFile enforces the write-side contract before any network call:
// the payload must declare an image content type and fit the profile's size
// limit. Implementations call this first so a rejected file never reaches
// the blob store.
func ValidateFile(size int64, contentType string, profile UploadProfile) error {
	if !strings.HasPrefix(contentType, "image/") {
		return errs.ErrNotAnImage
	}

	if size > profile.MaxSizeBytes {
		return errs.NewValidationError("file", fmt.Sprintf("Image must be less than %dMB", profile.MaxSizeBytes>>20))
	}

	return nil
}
