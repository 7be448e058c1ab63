package handlers

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/shopmart/shopmart/internal/domain/model"
	pkgAuth "github.com/shopmart/shopmart/internal/pkg/auth"
	"github.com/shopmart/shopmart/internal/usecase"
)

// AuthFacade describes identity capabilities required by handlers.
type AuthFacade interface {
	Signup(ctx context.Context, email, password, name string) (*model.User, error)
	Login(ctx context.Context, email, password string) (*model.User, pkgAuth.TokenPair, error)
	RefreshTokens(ctx context.Context, refreshToken string) (pkgAuth.TokenPair, error)
	ParseAccessToken(token string) (int64, error)
	UserByID(ctx context.Context, id int64) (*model.User, error)
	UpdateUser(ctx context.Context, id int64, patch usecase.UserPatch) (*model.User, error)
}

// CatalogFacade encapsulates product and review operations exposed via HTTP.
type CatalogFacade interface {
	Products(ctx context.Context) ([]model.Product, error)
	Product(ctx context.Context, id int64) (*model.Product, error)
	OwnedProducts(ctx context.Context, userID int64) ([]model.Product, error)
	OwnedProduct(ctx context.Context, userID, id int64) (*model.Product, error)
	CreateProduct(ctx context.Context, userID int64, fields usecase.ProductFields) (*model.Product, error)
	UpdateProduct(ctx context.Context, userID, id int64, patch usecase.ProductPatch) (*model.Product, error)
	DeleteProduct(ctx context.Context, userID, id int64) error

	Reviews(ctx context.Context) ([]model.Review, error)
	Review(ctx context.Context, id int64) (*model.Review, error)
	CreateReview(ctx context.Context, userID int64, fields usecase.ReviewFields) (*model.Review, error)
	UpdateReview(ctx context.Context, id int64, patch usecase.ReviewPatch) (*model.Review, error)
	DeleteReview(ctx context.Context, id int64) error
}

// OrderFacade encapsulates order and order item operations exposed via HTTP.
type OrderFacade interface {
	CreateOrder(ctx context.Context, userID int64, price decimal.Decimal) (*model.Order, error)
	OrdersForUser(ctx context.Context, userID int64) ([]model.Order, error)
	OrderForUser(ctx context.Context, userID, id int64) (*model.Order, error)
	AllOrders(ctx context.Context) ([]model.Order, error)
	OrderByID(ctx context.Context, id int64) (*model.Order, error)
	UpdateOrder(ctx context.Context, id int64, patch usecase.OrderPatch) (*model.Order, error)
	DeleteOrder(ctx context.Context, id int64) error
	ProcessOrder(ctx context.Context, id int64) (*model.Order, error)

	CreateOrderItem(ctx context.Context, userID int64, fields usecase.OrderItemFields) (*model.OrderItem, error)
	OrderItemsForUser(ctx context.Context, userID int64) ([]model.OrderItem, error)
	OrderItemForUser(ctx context.Context, userID, id int64) (*model.OrderItem, error)
	AllOrderItems(ctx context.Context) ([]model.OrderItem, error)
	OrderItemByID(ctx context.Context, id int64) (*model.OrderItem, error)
	UpdateOrderItem(ctx context.Context, id int64, patch usecase.OrderItemPatch) (*model.OrderItem, error)
	DeleteOrderItem(ctx context.Context, id int64) error
}

// ShopFacade aggregates the full set of operations used across handlers.
type ShopFacade interface {
	AuthFacade
	CatalogFacade
	OrderFacade
}
