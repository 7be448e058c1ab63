package repository

import (
	"context"

	"github.com/shopmart/shopmart/internal/domain/model"
)

// OrderRepository describes persistence operations with orders.
type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) error
	GetByID(ctx context.Context, id int64) (*model.Order, error)
	// GetForUser returns the order only when it belongs to the given user.
	GetForUser(ctx context.Context, id, userID int64) (*model.Order, error)
	List(ctx context.Context) ([]model.Order, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Order, error)
	Update(ctx context.Context, order *model.Order) error
	Delete(ctx context.Context, id int64) error
	// Process stamps done/processed_at in a single statement and returns
	// the updated row.
	Process(ctx context.Context, id int64) (*model.Order, error)
}
