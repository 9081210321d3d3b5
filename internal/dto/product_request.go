package dto

// ProductRequest carries create/update payloads. Pointer fields distinguish
// "absent" from zero so updates stay partial.
type ProductRequest struct {
	Name          *string  `json:"name"`
	Description   *string  `json:"description"`
	Image         *string  `json:"image"`
	Price         *float64 `json:"price"`
	OriginalPrice *float64 `json:"originalPrice"`
	Rating        *float64 `json:"rating"`
	Category      *string  `json:"category"`
	InStock       *bool    `json:"inStock"`
	OnSale        *bool    `json:"onSale"`
	Highlight     *string  `json:"highlight"`
	Disclaimer    *string  `json:"disclaimer"`
}

type SeedProduct struct {
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Image         string  `json:"image"`
	Price         float64 `json:"price"`
	OriginalPrice float64 `json:"originalPrice"`
	Rating        float64 `json:"rating"`
	Category      string  `json:"category"`
}

type SeedRequest struct {
	Products []SeedProduct `json:"products"`
}

type WishlistRequest struct {
	ProductID string `json:"productId"`
	Action    string `json:"action"`
}
