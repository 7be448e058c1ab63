package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product describes a catalog item owned by a user. The owner reference
// survives user deletion as NULL.
type Product struct {
	ID          int64
	UserID      *int64
	Title       string
	Price       decimal.Decimal
	Description string
	ImagePath   string
	CreatedAt   time.Time
}

// OwnedBy reports whether the product belongs to the given user.
func (p *Product) OwnedBy(userID int64) bool {
	return p.UserID != nil && *p.UserID == userID
}
