package controller

import (
	"net/http"

	"github.com/curavet/clinic-admin-service/internal/dto"
	"github.com/curavet/clinic-admin-service/pkg/response"
)

func (s *ControllerTestSuite) seedProduct(name string, price float64, originalPrice float64) string {
	resp := s.doJSON(http.MethodPost, "/api/admin/products", dto.ProductRequest{
		Name:          &name,
		Image:         ptr("https://cdn.example.com/img.jpg"),
		Price:         &price,
		OriginalPrice: &originalPrice,
	}, s.sessionCookie())
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	var created dto.CreateProductResponse
	s.decodeBody(resp, &created)
	s.Require().NotEmpty(created.ID)
	return created.ID
}

func ptr[T any](v T) *T { return &v }

func (s *ControllerTestSuite) Test_AdminProductsRequireSession() {
	type TestCase struct {
		Name   string
		Method string
		Path   string
	}

	testCases := []TestCase{
		{Name: "List", Method: http.MethodGet, Path: "/api/admin/products"},
		{Name: "Detail", Method: http.MethodGet, Path: "/api/admin/products/abc"},
		{Name: "Create", Method: http.MethodPost, Path: "/api/admin/products"},
		{Name: "Update", Method: http.MethodPut, Path: "/api/admin/products/abc"},
		{Name: "Delete", Method: http.MethodDelete, Path: "/api/admin/products/abc"},
		{Name: "Seed", Method: http.MethodPost, Path: "/api/admin/products/seed"},
		{Name: "Upload", Method: http.MethodPost, Path: "/api/admin/upload"},
	}

	for _, tc := range testCases {
		s.Run(tc.Name, func() {
			resp := s.doJSON(tc.Method, tc.Path, nil, nil)
			defer resp.Body.Close()
			s.Equal(http.StatusUnauthorized, resp.StatusCode)
			s.Empty(s.productRepo.products)
		})
	}
}

func (s *ControllerTestSuite) Test_CreateProduct() {
	type TestCase struct {
		Name           string
		Request        dto.ProductRequest
		ExpectedStatus int
	}

	testCases := []TestCase{
		{
			Name: "Valid request",
			Request: dto.ProductRequest{
				Name:          ptr("Flea Shampoo"),
				Image:         ptr("https://cdn.example.com/img.jpg"),
				Price:         ptr(1850.0),
				OriginalPrice: ptr(2200.0),
			},
			ExpectedStatus: http.StatusOK,
		},
		{
			Name: "Missing name",
			Request: dto.ProductRequest{
				Image: ptr("https://cdn.example.com/img.jpg"),
				Price: ptr(1850.0),
			},
			ExpectedStatus: http.StatusBadRequest,
		},
		{
			Name: "Missing image",
			Request: dto.ProductRequest{
				Name:  ptr("Flea Shampoo"),
				Price: ptr(1850.0),
			},
			ExpectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.Name, func() {
			resp := s.doJSON(http.MethodPost, "/api/admin/products", tc.Request, s.sessionCookie())
			defer resp.Body.Close()
			s.Equal(tc.ExpectedStatus, resp.StatusCode)
		})
	}
}

func (s *ControllerTestSuite) Test_GetProductsIsPublic() {
	s.seedProduct("Flea Shampoo", 1850, 2200)

	resp := s.doJSON(http.MethodGet, "/api/products", nil, nil)
	s.Equal(http.StatusOK, resp.StatusCode)

	var body dto.ProductsResponse
	s.decodeBody(resp, &body)
	s.Require().Len(body.Products, 1)
	s.Equal("Flea Shampoo", body.Products[0].Name)
	s.Equal(16, body.Products[0].Discount)
}

func (s *ControllerTestSuite) Test_GetProductDetail() {
	id := s.seedProduct("Flea Shampoo", 1850, 2200)

	resp := s.doJSON(http.MethodGet, "/api/admin/products/"+id, nil, s.sessionCookie())
	s.Equal(http.StatusOK, resp.StatusCode)

	var body dto.ProductDetailResponse
	s.decodeBody(resp, &body)
	s.Equal("Flea Shampoo", body.Product.Name)
	s.Equal(id, body.Product.ID.Hex())

	resp = s.doJSON(http.MethodGet, "/api/admin/products/unknown", nil, s.sessionCookie())
	defer resp.Body.Close()
	s.Equal(http.StatusNotFound, resp.StatusCode)
}

func (s *ControllerTestSuite) Test_UpdateProduct() {
	id := s.seedProduct("Flea Shampoo", 1850, 2200)

	resp := s.doJSON(http.MethodPut, "/api/admin/products/"+id, dto.ProductRequest{
		Price: ptr(1100.0),
	}, s.sessionCookie())
	defer resp.Body.Close()
	s.Equal(http.StatusOK, resp.StatusCode)

	product := s.productRepo.products[id]
	s.Equal(1100.0, product.Price)
	s.Equal(50, product.Discount)

	resp = s.doJSON(http.MethodPut, "/api/admin/products/unknown", dto.ProductRequest{
		Price: ptr(1100.0),
	}, s.sessionCookie())
	defer resp.Body.Close()
	s.Equal(http.StatusNotFound, resp.StatusCode)
}

func (s *ControllerTestSuite) Test_DeleteProduct() {
	id := s.seedProduct("Flea Shampoo", 1850, 2200)

	resp := s.doJSON(http.MethodDelete, "/api/admin/products/"+id, nil, s.sessionCookie())
	s.Equal(http.StatusOK, resp.StatusCode)

	var body response.SuccessResponse
	s.decodeBody(resp, &body)
	s.True(body.Success)
	s.Empty(s.productRepo.products)
}

func (s *ControllerTestSuite) Test_Wishlist() {
	id := s.seedProduct("Flea Shampoo", 1850, 2200)

	// The wishlist endpoint is public: no cookie attached.
	resp := s.doJSON(http.MethodPost, "/api/wishlist", dto.WishlistRequest{ProductID: id, Action: "add"}, nil)
	defer resp.Body.Close()
	s.Equal(http.StatusOK, resp.StatusCode)
	s.Equal(int64(1), s.productRepo.products[id].Wishlist)

	resp = s.doJSON(http.MethodPost, "/api/wishlist", dto.WishlistRequest{ProductID: id, Action: "remove"}, nil)
	defer resp.Body.Close()
	s.Equal(http.StatusOK, resp.StatusCode)
	s.Equal(int64(0), s.productRepo.products[id].Wishlist)

	resp = s.doJSON(http.MethodPost, "/api/wishlist", dto.WishlistRequest{ProductID: id, Action: "toggle"}, nil)
	defer resp.Body.Close()
	s.Equal(http.StatusBadRequest, resp.StatusCode)
}

func (s *ControllerTestSuite) Test_SeedProducts() {
	resp := s.doJSON(http.MethodPost, "/api/admin/products/seed", dto.SeedRequest{
		Products: []dto.SeedProduct{
			{Name: "Flea Shampoo", Price: 1850, OriginalPrice: 2200},
			{Name: "Chew Toy", Price: 500},
		},
	}, s.sessionCookie())
	s.Equal(http.StatusOK, resp.StatusCode)

	var body dto.SeedResponse
	s.decodeBody(resp, &body)
	s.True(body.Success)
	s.Equal(2, body.Count)
	s.Len(s.productRepo.products, 2)
}

func (s *ControllerTestSuite) Test_UploadImage() {
	resp := s.doMultipart("/api/upload", "image-bytes", "image/jpeg", nil, nil)
	s.Equal(http.StatusOK, resp.StatusCode)

	var body dto.UploadResponse
	s.decodeBody(resp, &body)
	s.Equal("curavet/products/img", body.PublicID)
	s.Equal(800, body.Width)
	s.Equal(1, s.blobStore.uploads)
}

func (s *ControllerTestSuite) Test_UploadImageRejectsNonImage() {
	resp := s.doMultipart("/api/upload", "%PDF-1.4", "application/pdf", nil, nil)
	s.Equal(http.StatusBadRequest, resp.StatusCode)

	var body response.ErrorResponse
	s.decodeBody(resp, &body)
	s.Equal("File must be an image", body.Error)
	s.Equal(0, s.blobStore.uploads)
}

func (s *ControllerTestSuite) Test_AdminUploadOmitsDimensions() {
	resp := s.doMultipart("/api/admin/upload", "image-bytes", "image/jpeg", nil, s.sessionCookie())
	s.Equal(http.StatusOK, resp.StatusCode)

	var raw map[string]interface{}
	s.decodeBody(resp, &raw)
	s.Contains(raw, "url")
	s.Contains(raw, "publicId")
	s.NotContains(raw, "width")
	s.NotContains(raw, "height")
}
