package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItem is a line item within an order. Name and price are snapshots
// taken at creation time and stay fixed even if the referenced product
// changes later. Both references are nullable and survive deletion of
// either side.
type OrderItem struct {
	ID        int64
	OrderID   *int64
	ProductID *int64
	Name      string
	Price     decimal.Decimal
	CreatedAt time.Time
}
