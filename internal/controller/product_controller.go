package controller

import (
	"net/http"

	"github.com/curavet/clinic-admin-service/internal/dto"
	"github.com/curavet/clinic-admin-service/internal/infrastructure/blobstore"
	"github.com/curavet/clinic-admin-service/internal/service"
	"github.com/curavet/clinic-admin-service/pkg/errs"
	"github.com/curavet/clinic-admin-service/pkg/response"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type ProductController struct {
	service service.ProductService
}

func CreateProductController(e *echo.Group, service service.ProductService, sessionAuth echo.MiddlewareFunc) {
	c := ProductController{
		service: service,
	}
	e.GET("/products", c.GetProducts)
	e.POST("/wishlist", c.AdjustWishlist)
	e.POST("/upload", c.UploadImage)

	e.GET("/admin/products", c.GetProducts, sessionAuth)
	e.GET("/admin/products/:id", c.GetProduct, sessionAuth)
	e.POST("/admin/products", c.AddProduct, sessionAuth)
	e.PUT("/admin/products/:id", c.UpdateProduct, sessionAuth)
	e.DELETE("/admin/products/:id", c.DeleteProduct, sessionAuth)
	e.POST("/admin/products/seed", c.SeedProducts, sessionAuth)
	e.POST("/admin/upload", c.UploadImageAdmin, sessionAuth)
}

func (c *ProductController) GetProducts(e echo.Context) error {
	data, err := c.service.GetProducts(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, errs.ErrInternalServer)
	}

	return e.JSON(http.StatusOK, dto.ProductsResponse{Products: data})
}

func (c *ProductController) GetProduct(e echo.Context) error {
	data, err := c.service.GetProduct(e.Request().Context(), e.Param("id"))
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return e.JSON(http.StatusOK, dto.ProductDetailResponse{Product: data})
}

func (c *ProductController) AddProduct(e echo.Context) error {
	payload := dto.ProductRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "AddProduct").Msg("")
	}

	id, err := c.service.AddProduct(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return e.JSON(http.StatusOK, dto.CreateProductResponse{ID: id, Success: true})
}

func (c *ProductController) UpdateProduct(e echo.Context) error {
	id := e.Param("id")
	payload := dto.ProductRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateProduct").Msg("")
	}

	err = c.service.UpdateProduct(e.Request().Context(), id, payload)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e)
}

func (c *ProductController) DeleteProduct(e echo.Context) error {
	id := e.Param("id")
	err := c.service.DeleteProduct(e.Request().Context(), id)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e)
}

func (c *ProductController) AdjustWishlist(e echo.Context) error {
	payload := dto.WishlistRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "AdjustWishlist").Msg("")
	}

	err = c.service.AdjustWishlist(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e)
}

func (c *ProductController) SeedProducts(e echo.Context) error {
	payload := dto.SeedRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "SeedProducts").Msg("")
	}

	count, err := c.service.SeedProducts(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return e.JSON(http.StatusOK, dto.SeedResponse{Success: true, Count: count})
}

func (c *ProductController) UploadImage(e echo.Context) error {
	result, err := c.uploadFromForm(e)
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

// UploadImageAdmin is the session-guarded variant. It reports url and
// publicId only.
func (c *ProductController) UploadImageAdmin(e echo.Context) error {
	result, err := c.uploadFromForm(e)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return e.JSON(http.StatusOK, dto.UploadResponse{
		URL:      result.URL,
		PublicID: result.PublicID,
	})
}

func (c *ProductController) uploadFromForm(e echo.Context) (result blobstore.UploadResult, err error) {
	fileHeader, err := e.FormFile("file")
	if err != nil || fileHeader.Size == 0 {
		return result, errs.ErrNoFile
	}

	src, err := fileHeader.Open()
	if err != nil {
		log.Error().Err(err).Str("component", "uploadFromForm").Msg("")
		return result, errs.ErrUploadFailed
	}
	defer src.Close()

	return c.service.UploadImage(e.Request().Context(), src, fileHeader.Size, fileHeader.Header.Get("Content-Type"))
}
