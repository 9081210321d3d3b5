package dto

import "github.com/curavet/clinic-admin-service/internal/domain"

type UploadResponse struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId"`
	Width    int    `json:"width,omitempty"`
	Height   int    `json:"height,omitempty"`
}

type FeaturedImagesResponse struct {
	Images []domain.FeaturedImage `json:"images"`
}

type DeleteImageRequest struct {
	PublicID string `json:"publicId"`
}
