package controller

import (
	"net/http"

	"github.com/curavet/clinic-admin-service/internal/dto"
	"github.com/curavet/clinic-admin-service/pkg/response"
)

func (s *ControllerTestSuite) Test_UploadFeaturedImage() {
	resp := s.doMultipart("/api/featured-images", "hero-bytes", "image/jpeg", map[string]string{"alt": "Happy dog"}, nil)
	s.Equal(http.StatusOK, resp.StatusCode)

	var body dto.UploadResponse
	s.decodeBody(resp, &body)
	s.Equal("curavet/hero/img", body.PublicID)
	s.Equal(1920, body.Width)
	s.Equal(1080, body.Height)

	s.Require().Len(s.featuredRepo.images, 1)
	s.Equal("Happy dog", s.featuredRepo.images[0].Alt)
	s.Equal(int64(0), s.featuredRepo.images[0].Order)
}

func (s *ControllerTestSuite) Test_UploadFeaturedImageOrdering() {
	resp := s.doMultipart("/api/featured-images", "hero-one", "image/jpeg", nil, nil)
	resp.Body.Close()
	resp = s.doMultipart("/api/featured-images", "hero-two", "image/jpeg", nil, nil)
	resp.Body.Close()

	s.Require().Len(s.featuredRepo.images, 2)
	s.Equal(int64(0), s.featuredRepo.images[0].Order)
	s.Equal(int64(1), s.featuredRepo.images[1].Order)
}

func (s *ControllerTestSuite) Test_UploadFeaturedImageRejectsNonImage() {
	resp := s.doMultipart("/api/featured-images", "<html>", "text/html", nil, nil)
	s.Equal(http.StatusBadRequest, resp.StatusCode)

	var body response.ErrorResponse
	s.decodeBody(resp, &body)
	s.Equal("File must be an image", body.Error)
	s.Empty(s.featuredRepo.images)
}

func (s *ControllerTestSuite) Test_GetFeaturedImages() {
	resp := s.doMultipart("/api/featured-images", "hero-bytes", "image/jpeg", nil, nil)
	resp.Body.Close()

	resp = s.doJSON(http.MethodGet, "/api/featured-images", nil, nil)
	s.Equal(http.StatusOK, resp.StatusCode)

	var body dto.FeaturedImagesResponse
	s.decodeBody(resp, &body)
	s.Require().Len(body.Images, 1)
	s.Equal("curavet/hero/img", body.Images[0].PublicID)
}

func (s *ControllerTestSuite) Test_DeleteFeaturedImage() {
	resp := s.doMultipart("/api/featured-images", "hero-bytes", "image/jpeg", nil, nil)
	resp.Body.Close()

	resp = s.doJSON(http.MethodDelete, "/api/featured-images", dto.DeleteImageRequest{PublicID: "curavet/hero/img"}, nil)
	defer resp.Body.Close()
	s.Equal(http.StatusOK, resp.StatusCode)
	s.Empty(s.featuredRepo.images)

	// Deleting again succeeds: the record is already gone.
	resp = s.doJSON(http.MethodDelete, "/api/featured-images", dto.DeleteImageRequest{PublicID: "curavet/hero/img"}, nil)
	defer resp.Body.Close()
	s.Equal(http.StatusOK, resp.StatusCode)
}

func (s *ControllerTestSuite) Test_DeleteFeaturedImageRequiresPublicID() {
	resp := s.doJSON(http.MethodDelete, "/api/featured-images", dto.DeleteImageRequest{}, nil)
	s.Equal(http.StatusBadRequest, resp.StatusCode)

	var body response.ErrorResponse
	s.decodeBody(resp, &body)
	s.Equal("publicId is required", body.Error)
}
