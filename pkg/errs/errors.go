package errs

import (
	"errors"
	"net/http"
)

const (
	ErrStatusInternalServer         = http.StatusInternalServerError
	ErrStatusClient                 = http.StatusBadRequest
	ErrStatusUnauthorized           = http.StatusUnauthorized
	ErrStatusNotFound               = http.StatusNotFound
	ErrStatusFileSizeExceedingLimit = http.StatusBadRequest
)

var (
	ErrInternalServer     = errors.New("Internal server error")
	ErrClient             = errors.New("Bad request")
	ErrUnauthorized       = errors.New("Unauthorized")
	ErrInvalidSession     = errors.New("Invalid or expired session")
	ErrIDTokenRequired    = errors.New("ID token required")
	ErrInvalidCredentials = errors.New("Invalid credentials")
	ErrNotFound           = errors.New("Resource not found")
	ErrNotAnImage         = errors.New("File must be an image")
	ErrNoFile             = errors.New("No file provided")
	ErrUploadFailed       = errors.New("Failed to upload image")
	ErrBlobStoreNotReady  = errors.New("Image store not configured")
)

var errorMap = map[error]int{
	ErrInternalServer:     ErrStatusInternalServer,
	ErrClient:             ErrStatusClient,
	ErrUnauthorized:       ErrStatusUnauthorized,
	ErrInvalidSession:     ErrStatusUnauthorized,
	ErrIDTokenRequired:    ErrStatusClient,
	ErrInvalidCredentials: ErrStatusUnauthorized,
	ErrNotFound:           ErrStatusNotFound,
	ErrNotAnImage:         ErrStatusClient,
	ErrNoFile:             ErrStatusClient,
	ErrUploadFailed:       ErrStatusInternalServer,
	ErrBlobStoreNotReady:  ErrStatusInternalServer,
}

// ValidationError carries a field-scoped message that is safe to return
// to the client verbatim.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(field string, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// IsClientSafe reports whether an error's message may be returned to the
// client verbatim: field validation errors and the known sentinels.
// Anything else carries internal detail (driver errors, wrapped causes)
// and must be masked before it reaches a response body.
func IsClientSafe(err error) bool {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return true
	}

	_, ok := errorMap[err]
	return ok
}

func GetErrorStatusCode(err error) int {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return ErrStatusClient
	}

	errStatusCode, ok := errorMap[err]
	if !ok {
		errStatusCode = errorMap[ErrInternalServer]
	}
	return errStatusCode
}
