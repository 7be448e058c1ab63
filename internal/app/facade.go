package app

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/shopmart/shopmart/internal/domain/model"
	pkgAuth "github.com/shopmart/shopmart/internal/pkg/auth"
	"github.com/shopmart/shopmart/internal/usecase"
)

// ShopFacade bundles the use cases behind the single surface the HTTP
// layer depends on.
type ShopFacade struct {
	auth    *usecase.AuthUseCase
	catalog *usecase.CatalogUseCase
	orders  *usecase.OrderUseCase
}

func NewShopFacade(auth *usecase.AuthUseCase, catalog *usecase.CatalogUseCase, orders *usecase.OrderUseCase) *ShopFacade {
	return &ShopFacade{auth: auth, catalog: catalog, orders: orders}
}

// --- identity ---

func (f *ShopFacade) Signup(ctx context.Context, email, password, name string) (*model.User, error) {
	return f.auth.Register(ctx, email, password, name)
}

func (f *ShopFacade) Login(ctx context.Context, email, password string) (*model.User, pkgAuth.TokenPair, error) {
	return f.auth.Authenticate(ctx, email, password)
}

func (f *ShopFacade) RefreshTokens(ctx context.Context, refreshToken string) (pkgAuth.TokenPair, error) {
	return f.auth.Refresh(ctx, refreshToken)
}

func (f *ShopFacade) ParseAccessToken(token string) (int64, error) {
	return f.auth.ParseAccessToken(token)
}

func (f *ShopFacade) UserByID(ctx context.Context, id int64) (*model.User, error) {
	return f.auth.GetByID(ctx, id)
}

func (f *ShopFacade) UpdateUser(ctx context.Context, id int64, patch usecase.UserPatch) (*model.User, error) {
	return f.auth.Update(ctx, id, patch)
}

// --- catalog ---

func (f *ShopFacade) Products(ctx context.Context) ([]model.Product, error) {
	return f.catalog.Products(ctx)
}

func (f *ShopFacade) Product(ctx context.Context, id int64) (*model.Product, error) {
	return f.catalog.Product(ctx, id)
}

func (f *ShopFacade) OwnedProducts(ctx context.Context, userID int64) ([]model.Product, error) {
	return f.catalog.OwnedProducts(ctx, userID)
}

func (f *ShopFacade) OwnedProduct(ctx context.Context, userID, id int64) (*model.Product, error) {
	return f.catalog.OwnedProduct(ctx, userID, id)
}

func (f *ShopFacade) CreateProduct(ctx context.Context, userID int64, fields usecase.ProductFields) (*model.Product, error) {
	return f.catalog.CreateProduct(ctx, userID, fields)
}

func (f *ShopFacade) UpdateProduct(ctx context.Context, userID, id int64, patch usecase.ProductPatch) (*model.Product, error) {
	return f.catalog.UpdateProduct(ctx, userID, id, patch)
}

func (f *ShopFacade) DeleteProduct(ctx context.Context, userID, id int64) error {
	return f.catalog.DeleteProduct(ctx, userID, id)
}

func (f *ShopFacade) Reviews(ctx context.Context) ([]model.Review, error) {
	return f.catalog.Reviews(ctx)
}

func (f *ShopFacade) Review(ctx context.Context, id int64) (*model.Review, error) {
	return f.catalog.Review(ctx, id)
}

func (f *ShopFacade) CreateReview(ctx context.Context, userID int64, fields usecase.ReviewFields) (*model.Review, error) {
	return f.catalog.CreateReview(ctx, userID, fields)
}

func (f *ShopFacade) UpdateReview(ctx context.Context, id int64, patch usecase.ReviewPatch) (*model.Review, error) {
	return f.catalog.UpdateReview(ctx, id, patch)
}

func (f *ShopFacade) DeleteReview(ctx context.Context, id int64) error {
	return f.catalog.DeleteReview(ctx, id)
}

// --- orders ---

func (f *ShopFacade) CreateOrder(ctx context.Context, userID int64, price decimal.Decimal) (*model.Order, error) {
	return f.orders.Create(ctx, userID, price)
}

func (f *ShopFacade) OrdersForUser(ctx context.Context, userID int64) ([]model.Order, error) {
	return f.orders.ListByUser(ctx, userID)
}

func (f *ShopFacade) OrderForUser(ctx context.Context, userID, id int64) (*model.Order, error) {
	return f.orders.GetForUser(ctx, userID, id)
}

func (f *ShopFacade) AllOrders(ctx context.Context) ([]model.Order, error) {
	return f.orders.List(ctx)
}

func (f *ShopFacade) OrderByID(ctx context.Context, id int64) (*model.Order, error) {
	return f.orders.Get(ctx, id)
}

func (f *ShopFacade) UpdateOrder(ctx context.Context, id int64, patch usecase.OrderPatch) (*model.Order, error) {
	return f.orders.Update(ctx, id, patch)
}

func (f *ShopFacade) DeleteOrder(ctx context.Context, id int64) error {
	return f.orders.Delete(ctx, id)
}

func (f *ShopFacade) ProcessOrder(ctx context.Context, id int64) (*model.Order, error) {
	return f.orders.Process(ctx, id)
}

func (f *ShopFacade) CreateOrderItem(ctx context.Context, userID int64, fields usecase.OrderItemFields) (*model.OrderItem, error) {
	return f.orders.CreateItem(ctx, userID, fields)
}

func (f *ShopFacade) OrderItemsForUser(ctx context.Context, userID int64) ([]model.OrderItem, error) {
	return f.orders.ItemsForUser(ctx, userID)
}

func (f *ShopFacade) OrderItemForUser(ctx context.Context, userID, id int64) (*model.OrderItem, error) {
	return f.orders.ItemForUser(ctx, userID, id)
}

func (f *ShopFacade) AllOrderItems(ctx context.Context) ([]model.OrderItem, error) {
	return f.orders.Items(ctx)
}

func (f *ShopFacade) OrderItemByID(ctx context.Context, id int64) (*model.OrderItem, error) {
	return f.orders.Item(ctx, id)
}

func (f *ShopFacade) UpdateOrderItem(ctx context.Context, id int64, patch usecase.OrderItemPatch) (*model.OrderItem, error) {
	return f.orders.UpdateItem(ctx, id, patch)
}

func (f *ShopFacade) DeleteOrderItem(ctx context.Context, id int64) error {
	return f.orders.DeleteItem(ctx, id)
}
