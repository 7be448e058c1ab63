package repository

import (
	"context"

	"github.com/shopmart/shopmart/internal/domain/model"
)

// OrderItemRepository describes persistence operations with order items.
// "ForUser" variants scope through order ownership.
type OrderItemRepository interface {
	Create(ctx context.Context, item *model.OrderItem) error
	GetByID(ctx context.Context, id int64) (*model.OrderItem, error)
	GetForUser(ctx context.Context, id, userID int64) (*model.OrderItem, error)
	List(ctx context.Context) ([]model.OrderItem, error)
	ListForUser(ctx context.Context, userID int64) ([]model.OrderItem, error)
	Update(ctx context.Context, item *model.OrderItem) error
	Delete(ctx context.Context, id int64) error
}
