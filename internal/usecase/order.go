package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	domainErrors "github.com/shopmart/shopmart/internal/domain/errors"
	"github.com/shopmart/shopmart/internal/domain/model"
	"github.com/shopmart/shopmart/internal/domain/repository"
)

// OrderUseCase encapsulates order lifecycle logic and order items.
type OrderUseCase struct {
	orders repository.OrderRepository
	items  repository.OrderItemRepository
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository, items repository.OrderItemRepository) *OrderUseCase {
	return &OrderUseCase{orders: orders, items: items}
}

// OrderPatch carries optional fields for admin-side partial updates.
type OrderPatch struct {
	Price       *decimal.Decimal
	Done        *bool
	ProcessedAt *time.Time
}

// OrderItemFields carries attributes for order item creation. Name and
// price are explicit snapshots; they are never pulled from the product.
type OrderItemFields struct {
	OrderID   int64
	ProductID *int64
	Name      string
	Price     decimal.Decimal
}

// OrderItemPatch carries optional fields for admin-side partial updates.
// Order and product references stay immutable after creation.
type OrderItemPatch struct {
	Name  *string
	Price *decimal.Decimal
}

// Create registers a new pending order owned by the caller, regardless of
// any owner value present in the payload.
func (u *OrderUseCase) Create(ctx context.Context, userID int64, price decimal.Decimal) (*model.Order, error) {
	order := &model.Order{UserID: userID, Price: price}
	if err := u.orders.Create(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// ListByUser returns orders owned by the user, newest first.
func (u *OrderUseCase) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	return u.orders.ListByUser(ctx, userID)
}

// List returns every order; reserved for the admin endpoint family.
func (u *OrderUseCase) List(ctx context.Context) ([]model.Order, error) {
	return u.orders.List(ctx)
}

// GetForUser returns the order only when owned by the caller; rows owned
// by someone else are reported as absent.
func (u *OrderUseCase) GetForUser(ctx context.Context, userID, id int64) (*model.Order, error) {
	return u.orders.GetForUser(ctx, id, userID)
}

// Get returns any order without ownership scoping.
func (u *OrderUseCase) Get(ctx context.Context, id int64) (*model.Order, error) {
	return u.orders.GetByID(ctx, id)
}

// Update applies an admin-side partial patch. The owner reference is not
// patchable.
func (u *OrderUseCase) Update(ctx context.Context, id int64, patch OrderPatch) (*model.Order, error) {
	order, err := u.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Price != nil {
		order.Price = *patch.Price
	}
	if patch.Done != nil {
		order.Done = *patch.Done
	}
	if patch.ProcessedAt != nil {
		order.ProcessedAt = patch.ProcessedAt
	}

	if err := u.orders.Update(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// Delete removes an order; admin endpoint family only.
func (u *OrderUseCase) Delete(ctx context.Context, id int64) error {
	if _, err := u.orders.GetByID(ctx, id); err != nil {
		return err
	}
	return u.orders.Delete(ctx, id)
}

// Process transitions the order to done and stamps processed_at. Calling
// it on an already processed order re-stamps the timestamp; the race
// between concurrent calls is accepted, last write wins.
func (u *OrderUseCase) Process(ctx context.Context, id int64) (*model.Order, error) {
	return u.orders.Process(ctx, id)
}

// CreateItem stores an order item after confirming the target order is
// owned by the caller. Snapshot fields must be supplied explicitly.
func (u *OrderUseCase) CreateItem(ctx context.Context, userID int64, fields OrderItemFields) (*model.OrderItem, error) {
	if strings.TrimSpace(fields.Name) == "" {
		return nil, domainErrors.ErrValidation
	}
	if _, err := u.orders.GetForUser(ctx, fields.OrderID, userID); err != nil {
		return nil, err
	}

	item := &model.OrderItem{
		OrderID:   &fields.OrderID,
		ProductID: fields.ProductID,
		Name:      fields.Name,
		Price:     fields.Price,
	}
	if err := u.items.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// ItemsForUser returns items whose parent order is owned by the caller.
func (u *OrderUseCase) ItemsForUser(ctx context.Context, userID int64) ([]model.OrderItem, error) {
	return u.items.ListForUser(ctx, userID)
}

// ItemForUser returns the item only when its order belongs to the caller.
func (u *OrderUseCase) ItemForUser(ctx context.Context, userID, id int64) (*model.OrderItem, error) {
	return u.items.GetForUser(ctx, id, userID)
}

// Items returns every order item; admin endpoint family only.
func (u *OrderUseCase) Items(ctx context.Context) ([]model.OrderItem, error) {
	return u.items.List(ctx)
}

// Item returns any order item without scoping.
func (u *OrderUseCase) Item(ctx context.Context, id int64) (*model.OrderItem, error) {
	return u.items.GetByID(ctx, id)
}

// UpdateItem applies an admin-side partial patch to the snapshot fields.
func (u *OrderUseCase) UpdateItem(ctx context.Context, id int64, patch OrderItemPatch) (*model.OrderItem, error) {
	item, err := u.items.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		item.Name = *patch.Name
	}
	if patch.Price != nil {
		item.Price = *patch.Price
	}

	if err := u.items.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// DeleteItem removes an order item; admin endpoint family only.
func (u *OrderUseCase) DeleteItem(ctx context.Context, id int64) error {
	if _, err := u.items.GetByID(ctx, id); err != nil {
		return err
	}
	return u.items.Delete(ctx, id)
}
