package controller

import (
	"net/http"

	"github.com/curavet/clinic-admin-service/internal/dto"
	"github.com/curavet/clinic-admin-service/internal/service"
	"github.com/curavet/clinic-admin-service/pkg/errs"
	"github.com/curavet/clinic-admin-service/pkg/response"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type FeaturedImageController struct {
	service service.FeaturedImageService
}

func CreateFeaturedImageController(e *echo.Group, service service.FeaturedImageService) {
	c := FeaturedImageController{
		service: service,
	}
	e.GET("/featured-images", c.GetFeaturedImages)
	e.POST("/featured-images", c.UploadFeaturedImage)
	e.DELETE("/featured-images", c.DeleteFeaturedImage)
}

func (c *FeaturedImageController) GetFeaturedImages(e echo.Context) error {
	data, err := c.service.GetFeaturedImages(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, errs.ErrInternalServer)
	}

	return e.JSON(http.StatusOK, dto.FeaturedImagesResponse{Images: data})
}

func (c *FeaturedImageController) UploadFeaturedImage(e echo.Context) error {
	fileHeader, err := e.FormFile("file")
	if err != nil || fileHeader.Size == 0 {
		return response.WriteErrorResponse(e, errs.ErrNoFile)
	}

	src, err := fileHeader.Open()
	if err != nil {
		log.Error().Err(err).Str("component", "UploadFeaturedImage").Msg("")
		return response.WriteErrorResponse(e, errs.ErrUploadFailed)
	}
	defer src.Close()

	alt := e.FormValue("alt")

	result, err := c.service.UploadFeaturedImage(e.Request().Context(), src, fileHeader.Size, fileHeader.Header.Get("Content-Type"), alt)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return e.JSON(http.StatusOK, dto.UploadResponse{
		URL:      result.URL,
		PublicID: result.PublicID,
		Width:    result.Width,
		Height:   result.Height,
	})
}

func (c *FeaturedImageController) DeleteFeaturedImage(e echo.Context) error {
	payload := dto.DeleteImageRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "DeleteFeaturedImage").Msg("")
	}

	err = c.service.DeleteFeaturedImage(e.Request().Context(), payload.PublicID)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e)
}
