package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderResponse is the list projection of an order.
type OrderResponse struct {
	ID    int64           `json:"id"`
	Price decimal.Decimal `json:"price"`
	Done  bool            `json:"done"`
}

// OrderDetailResponse adds lifecycle timestamps for detail reads.
type OrderDetailResponse struct {
	OrderResponse
	ProcessedAt *time.Time `json:"processed_at"`
	CreatedAt   time.Time  `json:"created_at"`
}

// OrderCreateRequest describes the creation payload. Owner and lifecycle
// fields in the payload are accepted and ignored: orders start pending
// and belong to the caller.
type OrderCreateRequest struct {
	Price decimal.Decimal `json:"price"`
	User  *int64          `json:"user"`
	Done  *bool           `json:"done"`
}

// OrderUpdateRequest carries an admin-side partial patch.
type OrderUpdateRequest struct {
	Price       *decimal.Decimal `json:"price"`
	Done        *bool            `json:"done"`
	ProcessedAt *time.Time       `json:"processed_at"`
}

// ProcessOrderRequest names the order to transition.
type ProcessOrderRequest struct {
	Order *int64 `json:"order"`
}
