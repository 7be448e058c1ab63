package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItemResponse projects a line item with its snapshot fields.
type OrderItemResponse struct {
	ID        int64           `json:"id"`
	Order     *int64          `json:"order"`
	Product   *int64          `json:"product"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	CreatedAt time.Time       `json:"created_at"`
}

// OrderItemCreateRequest describes the creation payload. Name and price
// are stored as supplied; they are never copied from the product row.
type OrderItemCreateRequest struct {
	Order   int64           `json:"order"`
	Product *int64          `json:"product"`
	Name    string          `json:"name"`
	Price   decimal.Decimal `json:"price"`
}

// OrderItemUpdateRequest carries an admin-side partial patch. Order and
// product references are accepted but ignored.
type OrderItemUpdateRequest struct {
	Name    *string          `json:"name"`
	Price   *decimal.Decimal `json:"price"`
	Order   *int64           `json:"order"`
	Product *int64           `json:"product"`
}
