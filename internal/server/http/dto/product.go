package dto

import "github.com/shopspring/decimal"

// ProductResponse is the list projection of a product.
type ProductResponse struct {
	ID    int64           `json:"id"`
	Title string          `json:"title"`
	Price decimal.Decimal `json:"price"`
}

// ProductDetailResponse adds the long description for detail reads.
type ProductDetailResponse struct {
	ProductResponse
	Description string `json:"description"`
}

// ProductCreateRequest describes the creation payload. A user field in
// the payload is accepted and ignored: ownership is always the caller.
type ProductCreateRequest struct {
	Title       string          `json:"title"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	User        *int64          `json:"user"`
}

// ProductUpdateRequest carries a partial patch; the user field is
// accepted and ignored.
type ProductUpdateRequest struct {
	Title       *string          `json:"title"`
	Price       *decimal.Decimal `json:"price"`
	Description *string          `json:"description"`
	User        *int64           `json:"user"`
}
