package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus describes the order lifecycle.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusProcessed OrderStatus = "PROCESSED"
)

// Order describes a purchase order owned by a user. Price is fixed at
// creation and never recomputed from items.
type Order struct {
	ID          int64
	UserID      int64
	Price       decimal.Decimal
	Done        bool
	ProcessedAt *time.Time
	CreatedAt   time.Time
}

// Status derives the lifecycle state from the done flag.
func (o *Order) Status() OrderStatus {
	if o.Done {
		return OrderStatusProcessed
	}
	return OrderStatusPending
}
