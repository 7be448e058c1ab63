package test

import (
	"context"
	"sort"
	"time"

	domainErrors "github.com/shopmart/shopmart/internal/domain/errors"
	"github.com/shopmart/shopmart/internal/domain/model"
)

// UserRepositoryStub keeps users in memory for use case tests.
type UserRepositoryStub struct {
	Users  map[int64]*model.User
	NextID int64
	Err    error
}

// NewUserRepositoryStub returns an empty in-memory user repository.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{Users: make(map[int64]*model.User), NextID: 1}
}

// Create stores a user, rejecting duplicate emails.
func (r *UserRepositoryStub) Create(_ context.Context, email, name, passwordHash string) (*model.User, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	for _, u := range r.Users {
		if u.Email == email {
			return nil, domainErrors.ErrAlreadyExists
		}
	}
	u := &model.User{
		ID:           r.NextID,
		Email:        email,
		Name:         name,
		PasswordHash: passwordHash,
		Active:       true,
		CreatedAt:    time.Now(),
	}
	r.Users[u.ID] = u
	r.NextID++
	copied := *u
	return &copied, nil
}

// GetByEmail finds a stored user by normalized email.
func (r *UserRepositoryStub) GetByEmail(_ context.Context, email string) (*model.User, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	for _, u := range r.Users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID finds a stored user by identifier.
func (r *UserRepositoryStub) GetByID(_ context.Context, id int64) (*model.User, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	u, ok := r.Users[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	copied := *u
	return &copied, nil
}

// Update overwrites the stored user row.
func (r *UserRepositoryStub) Update(_ context.Context, user *model.User) error {
	if r.Err != nil {
		return r.Err
	}
	if _, ok := r.Users[user.ID]; !ok {
		return domainErrors.ErrNotFound
	}
	copied := *user
	r.Users[user.ID] = &copied
	return nil
}

// ProductRepositoryStub keeps products in memory.
type ProductRepositoryStub struct {
	Products map[int64]*model.Product
	NextID   int64
	Err      error
}

// NewProductRepositoryStub returns an empty in-memory product repository.
func NewProductRepositoryStub() *ProductRepositoryStub {
	return &ProductRepositoryStub{Products: make(map[int64]*model.Product), NextID: 1}
}

// Create stores a product and assigns an identifier.
func (r *ProductRepositoryStub) Create(_ context.Context, product *model.Product) error {
	if r.Err != nil {
		return r.Err
	}
	product.ID = r.NextID
	product.CreatedAt = time.Now()
	r.NextID++
	copied := *product
	r.Products[product.ID] = &copied
	return nil
}

// GetByID returns the stored product.
func (r *ProductRepositoryStub) GetByID(_ context.Context, id int64) (*model.Product, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	p, ok := r.Products[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	copied := *p
	return &copied, nil
}

// List returns every stored product ordered by identifier.
func (r *ProductRepositoryStub) List(_ context.Context) ([]model.Product, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	return sortProducts(r.Products, func(*model.Product) bool { return true }), nil
}

// ListByOwner returns products owned by the user.
func (r *ProductRepositoryStub) ListByOwner(_ context.Context, userID int64) ([]model.Product, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	return sortProducts(r.Products, func(p *model.Product) bool { return p.OwnedBy(userID) }), nil
}

// Update overwrites the stored product row.
func (r *ProductRepositoryStub) Update(_ context.Context, product *model.Product) error {
	if r.Err != nil {
		return r.Err
	}
	if _, ok := r.Products[product.ID]; !ok {
		return domainErrors.ErrNotFound
	}
	copied := *product
	r.Products[product.ID] = &copied
	return nil
}

// Delete removes the stored product row.
func (r *ProductRepositoryStub) Delete(_ context.Context, id int64) error {
	if r.Err != nil {
		return r.Err
	}
	if _, ok := r.Products[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(r.Products, id)
	return nil
}

func sortProducts(m map[int64]*model.Product, keep func(*model.Product) bool) []model.Product {
	var result []model.Product
	for _, p := range m {
		if keep(p) {
			result = append(result, *p)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

// ReviewRepositoryStub keeps reviews in memory.
type ReviewRepositoryStub struct {
	Reviews map[int64]*model.Review
	NextID  int64
	Err     error
}

// NewReviewRepositoryStub returns an empty in-memory review repository.
func NewReviewRepositoryStub() *ReviewRepositoryStub {
	return &ReviewRepositoryStub{Reviews: make(map[int64]*model.Review), NextID: 1}
}

// Create stores a review and assigns an identifier.
func (r *ReviewRepositoryStub) Create(_ context.Context, review *model.Review) error {
	if r.Err != nil {
		return r.Err
	}
	review.ID = r.NextID
	review.CreatedAt = time.Now()
	r.NextID++
	copied := *review
	r.Reviews[review.ID] = &copied
	return nil
}

// GetByID returns the stored review.
func (r *ReviewRepositoryStub) GetByID(_ context.Context, id int64) (*model.Review, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	rev, ok := r.Reviews[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	copied := *rev
	return &copied, nil
}

// List returns every stored review ordered by identifier.
func (r *ReviewRepositoryStub) List(_ context.Context) ([]model.Review, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	var result []model.Review
	for _, rev := range r.Reviews {
		result = append(result, *rev)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// Update overwrites the stored review row.
func (r *ReviewRepositoryStub) Update(_ context.Context, review *model.Review) error {
	if r.Err != nil {
		return r.Err
	}
	if _, ok := r.Reviews[review.ID]; !ok {
		return domainErrors.ErrNotFound
	}
	copied := *review
	r.Reviews[review.ID] = &copied
	return nil
}

// Delete removes the stored review row.
func (r *ReviewRepositoryStub) Delete(_ context.Context, id int64) error {
	if r.Err != nil {
		return r.Err
	}
	if _, ok := r.Reviews[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(r.Reviews, id)
	return nil
}

// OrderRepositoryStub keeps orders in memory.
type OrderRepositoryStub struct {
	Orders map[int64]*model.Order
	NextID int64
	Err    error
	Now    func() time.Time
}

// NewOrderRepositoryStub returns an empty in-memory order repository.
func NewOrderRepositoryStub() *OrderRepositoryStub {
	return &OrderRepositoryStub{Orders: make(map[int64]*model.Order), NextID: 1, Now: time.Now}
}

// Create stores an order in the pending state.
func (r *OrderRepositoryStub) Create(_ context.Context, order *model.Order) error {
	if r.Err != nil {
		return r.Err
	}
	order.ID = r.NextID
	order.Done = false
	order.ProcessedAt = nil
	order.CreatedAt = r.Now()
	r.NextID++
	copied := *order
	r.Orders[order.ID] = &copied
	return nil
}

// GetByID returns the stored order.
func (r *OrderRepositoryStub) GetByID(_ context.Context, id int64) (*model.Order, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	o, ok := r.Orders[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	copied := *o
	return &copied, nil
}

// GetForUser returns the order only when owned by the user.
func (r *OrderRepositoryStub) GetForUser(ctx context.Context, id, userID int64) (*model.Order, error) {
	o, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o.UserID != userID {
		return nil, domainErrors.ErrNotFound
	}
	return o, nil
}

// List returns every stored order ordered by identifier.
func (r *OrderRepositoryStub) List(_ context.Context) ([]model.Order, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	return sortOrders(r.Orders, func(*model.Order) bool { return true }), nil
}

// ListByUser returns orders owned by the user.
func (r *OrderRepositoryStub) ListByUser(_ context.Context, userID int64) ([]model.Order, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	return sortOrders(r.Orders, func(o *model.Order) bool { return o.UserID == userID }), nil
}

// Update overwrites the stored order row.
func (r *OrderRepositoryStub) Update(_ context.Context, order *model.Order) error {
	if r.Err != nil {
		return r.Err
	}
	if _, ok := r.Orders[order.ID]; !ok {
		return domainErrors.ErrNotFound
	}
	copied := *order
	r.Orders[order.ID] = &copied
	return nil
}

// Delete removes the stored order row.
func (r *OrderRepositoryStub) Delete(_ context.Context, id int64) error {
	if r.Err != nil {
		return r.Err
	}
	if _, ok := r.Orders[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(r.Orders, id)
	return nil
}

// Process stamps done/processed_at and returns the updated order.
func (r *OrderRepositoryStub) Process(_ context.Context, id int64) (*model.Order, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	o, ok := r.Orders[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	now := r.Now()
	o.Done = true
	o.ProcessedAt = &now
	copied := *o
	return &copied, nil
}

func sortOrders(m map[int64]*model.Order, keep func(*model.Order) bool) []model.Order {
	var result []model.Order
	for _, o := range m {
		if keep(o) {
			result = append(result, *o)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

// OrderItemRepositoryStub keeps order items in memory. Ownership scoping
// resolves through the linked order repository.
type OrderItemRepositoryStub struct {
	Items  map[int64]*model.OrderItem
	Orders *OrderRepositoryStub
	NextID int64
	Err    error
}

// NewOrderItemRepositoryStub returns an item repository scoped through orders.
func NewOrderItemRepositoryStub(orders *OrderRepositoryStub) *OrderItemRepositoryStub {
	return &OrderItemRepositoryStub{Items: make(map[int64]*model.OrderItem), Orders: orders, NextID: 1}
}

// Create stores an order item and assigns an identifier.
func (r *OrderItemRepositoryStub) Create(_ context.Context, item *model.OrderItem) error {
	if r.Err != nil {
		return r.Err
	}
	item.ID = r.NextID
	item.CreatedAt = time.Now()
	r.NextID++
	copied := *item
	r.Items[item.ID] = &copied
	return nil
}

// GetByID returns the stored item.
func (r *OrderItemRepositoryStub) GetByID(_ context.Context, id int64) (*model.OrderItem, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	item, ok := r.Items[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	copied := *item
	return &copied, nil
}

// GetForUser returns the item only when its order belongs to the user.
func (r *OrderItemRepositoryStub) GetForUser(ctx context.Context, id, userID int64) (*model.OrderItem, error) {
	item, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !r.ownedBy(item, userID) {
		return nil, domainErrors.ErrNotFound
	}
	return item, nil
}

// List returns every stored item ordered by identifier.
func (r *OrderItemRepositoryStub) List(_ context.Context) ([]model.OrderItem, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	return r.collect(func(*model.OrderItem) bool { return true }), nil
}

// ListForUser returns items whose order belongs to the user.
func (r *OrderItemRepositoryStub) ListForUser(_ context.Context, userID int64) ([]model.OrderItem, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	return r.collect(func(item *model.OrderItem) bool { return r.ownedBy(item, userID) }), nil
}

// Update overwrites the stored item row.
func (r *OrderItemRepositoryStub) Update(_ context.Context, item *model.OrderItem) error {
	if r.Err != nil {
		return r.Err
	}
	if _, ok := r.Items[item.ID]; !ok {
		return domainErrors.ErrNotFound
	}
	copied := *item
	r.Items[item.ID] = &copied
	return nil
}

// Delete removes the stored item row.
func (r *OrderItemRepositoryStub) Delete(_ context.Context, id int64) error {
	if r.Err != nil {
		return r.Err
	}
	if _, ok := r.Items[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(r.Items, id)
	return nil
}

func (r *OrderItemRepositoryStub) ownedBy(item *model.OrderItem, userID int64) bool {
	if item.OrderID == nil || r.Orders == nil {
		return false
	}
	order, ok := r.Orders.Orders[*item.OrderID]
	return ok && order.UserID == userID
}

func (r *OrderItemRepositoryStub) collect(keep func(*model.OrderItem) bool) []model.OrderItem {
	var result []model.OrderItem
	for _, item := range r.Items {
		if keep(item) {
			result = append(result, *item)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}
