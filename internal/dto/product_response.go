package dto

import "github.com/curavet/clinic-admin-service/internal/domain"

type ProductsResponse struct {
	Products []domain.Product `json:"products"`
}

type ProductDetailResponse struct {
	Product domain.Product `json:"product"`
}

type CreateProductResponse struct {
	ID      string `json:"id"`
	Success bool   `json:"success"`
}

type SeedResponse struct {
	Success bool `json:"success"`
	Count   int  `json:"count"`
}
