package test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/shopmart/shopmart/internal/domain/model"
	pkgAuth "github.com/shopmart/shopmart/internal/pkg/auth"
	"github.com/shopmart/shopmart/internal/usecase"
)

// ShopFacadeStub provides controllable behaviour for every HTTP endpoint.
// Unset functions fall back to plain defaults so tests only configure
// what they assert on.
type ShopFacadeStub struct {
	SignupFn        func(context.Context, string, string, string) (*model.User, error)
	LoginFn         func(context.Context, string, string) (*model.User, pkgAuth.TokenPair, error)
	RefreshFn       func(context.Context, string) (pkgAuth.TokenPair, error)
	ParseAccessFn   func(string) (int64, error)
	UserByIDFn      func(context.Context, int64) (*model.User, error)
	UpdateUserFn    func(context.Context, int64, usecase.UserPatch) (*model.User, error)
	ProductsFn      func(context.Context) ([]model.Product, error)
	ProductFn       func(context.Context, int64) (*model.Product, error)
	OwnedProductsFn func(context.Context, int64) ([]model.Product, error)
	OwnedProductFn  func(context.Context, int64, int64) (*model.Product, error)
	CreateProductFn func(context.Context, int64, usecase.ProductFields) (*model.Product, error)
	UpdateProductFn func(context.Context, int64, int64, usecase.ProductPatch) (*model.Product, error)
	DeleteProductFn func(context.Context, int64, int64) error
	ReviewsFn       func(context.Context) ([]model.Review, error)
	ReviewFn        func(context.Context, int64) (*model.Review, error)
	CreateReviewFn  func(context.Context, int64, usecase.ReviewFields) (*model.Review, error)
	UpdateReviewFn  func(context.Context, int64, usecase.ReviewPatch) (*model.Review, error)
	DeleteReviewFn  func(context.Context, int64) error
	CreateOrderFn   func(context.Context, int64, decimal.Decimal) (*model.Order, error)
	OrdersForUserFn func(context.Context, int64) ([]model.Order, error)
	OrderForUserFn  func(context.Context, int64, int64) (*model.Order, error)
	AllOrdersFn     func(context.Context) ([]model.Order, error)
	OrderByIDFn     func(context.Context, int64) (*model.Order, error)
	UpdateOrderFn   func(context.Context, int64, usecase.OrderPatch) (*model.Order, error)
	DeleteOrderFn   func(context.Context, int64) error
	ProcessOrderFn  func(context.Context, int64) (*model.Order, error)
	CreateItemFn    func(context.Context, int64, usecase.OrderItemFields) (*model.OrderItem, error)
	ItemsForUserFn  func(context.Context, int64) ([]model.OrderItem, error)
	ItemForUserFn   func(context.Context, int64, int64) (*model.OrderItem, error)
	AllItemsFn      func(context.Context) ([]model.OrderItem, error)
	ItemByIDFn      func(context.Context, int64) (*model.OrderItem, error)
	UpdateItemFn    func(context.Context, int64, usecase.OrderItemPatch) (*model.OrderItem, error)
	DeleteItemFn    func(context.Context, int64) error
}

func (s *ShopFacadeStub) Signup(ctx context.Context, email, password, name string) (*model.User, error) {
	if s.SignupFn != nil {
		return s.SignupFn(ctx, email, password, name)
	}
	return &model.User{ID: 1, Email: email, Name: name, Active: true}, nil
}

func (s *ShopFacadeStub) Login(ctx context.Context, email, password string) (*model.User, pkgAuth.TokenPair, error) {
	if s.LoginFn != nil {
		return s.LoginFn(ctx, email, password)
	}
	user := &model.User{ID: 1, Email: email, Active: true}
	return user, pkgAuth.TokenPair{Access: "access", Refresh: "refresh"}, nil
}

func (s *ShopFacadeStub) RefreshTokens(ctx context.Context, refreshToken string) (pkgAuth.TokenPair, error) {
	if s.RefreshFn != nil {
		return s.RefreshFn(ctx, refreshToken)
	}
	return pkgAuth.TokenPair{Access: "access", Refresh: "refresh"}, nil
}

func (s *ShopFacadeStub) ParseAccessToken(token string) (int64, error) {
	if s.ParseAccessFn != nil {
		return s.ParseAccessFn(token)
	}
	return 1, nil
}

func (s *ShopFacadeStub) UserByID(ctx context.Context, id int64) (*model.User, error) {
	if s.UserByIDFn != nil {
		return s.UserByIDFn(ctx, id)
	}
	return &model.User{ID: id, Email: "user@example.com", Active: true}, nil
}

func (s *ShopFacadeStub) UpdateUser(ctx context.Context, id int64, patch usecase.UserPatch) (*model.User, error) {
	if s.UpdateUserFn != nil {
		return s.UpdateUserFn(ctx, id, patch)
	}
	return &model.User{ID: id, Email: "user@example.com", Active: true}, nil
}

func (s *ShopFacadeStub) Products(ctx context.Context) ([]model.Product, error) {
	if s.ProductsFn != nil {
		return s.ProductsFn(ctx)
	}
	return []model.Product{{ID: 1, Title: "Mug"}}, nil
}

func (s *ShopFacadeStub) Product(ctx context.Context, id int64) (*model.Product, error) {
	if s.ProductFn != nil {
		return s.ProductFn(ctx, id)
	}
	return &model.Product{ID: id, Title: "Mug"}, nil
}

func (s *ShopFacadeStub) OwnedProducts(ctx context.Context, userID int64) ([]model.Product, error) {
	if s.OwnedProductsFn != nil {
		return s.OwnedProductsFn(ctx, userID)
	}
	return []model.Product{{ID: 1, UserID: &userID, Title: "Mug"}}, nil
}

func (s *ShopFacadeStub) OwnedProduct(ctx context.Context, userID, id int64) (*model.Product, error) {
	if s.OwnedProductFn != nil {
		return s.OwnedProductFn(ctx, userID, id)
	}
	return &model.Product{ID: id, UserID: &userID, Title: "Mug"}, nil
}

func (s *ShopFacadeStub) CreateProduct(ctx context.Context, userID int64, fields usecase.ProductFields) (*model.Product, error) {
	if s.CreateProductFn != nil {
		return s.CreateProductFn(ctx, userID, fields)
	}
	return &model.Product{ID: 1, UserID: &userID, Title: fields.Title, Price: fields.Price, Description: fields.Description}, nil
}

func (s *ShopFacadeStub) UpdateProduct(ctx context.Context, userID, id int64, patch usecase.ProductPatch) (*model.Product, error) {
	if s.UpdateProductFn != nil {
		return s.UpdateProductFn(ctx, userID, id, patch)
	}
	return &model.Product{ID: id, UserID: &userID, Title: "Mug"}, nil
}

func (s *ShopFacadeStub) DeleteProduct(ctx context.Context, userID, id int64) error {
	if s.DeleteProductFn != nil {
		return s.DeleteProductFn(ctx, userID, id)
	}
	return nil
}

func (s *ShopFacadeStub) Reviews(ctx context.Context) ([]model.Review, error) {
	if s.ReviewsFn != nil {
		return s.ReviewsFn(ctx)
	}
	return []model.Review{{ID: 1, UserID: 1, Name: "Nice", Rating: 5}}, nil
}

func (s *ShopFacadeStub) Review(ctx context.Context, id int64) (*model.Review, error) {
	if s.ReviewFn != nil {
		return s.ReviewFn(ctx, id)
	}
	return &model.Review{ID: id, UserID: 1, Name: "Nice", Rating: 5}, nil
}

func (s *ShopFacadeStub) CreateReview(ctx context.Context, userID int64, fields usecase.ReviewFields) (*model.Review, error) {
	if s.CreateReviewFn != nil {
		return s.CreateReviewFn(ctx, userID, fields)
	}
	return &model.Review{ID: 1, ProductID: fields.ProductID, UserID: userID, Name: fields.Name, Rating: fields.Rating, Comment: fields.Comment}, nil
}

func (s *ShopFacadeStub) UpdateReview(ctx context.Context, id int64, patch usecase.ReviewPatch) (*model.Review, error) {
	if s.UpdateReviewFn != nil {
		return s.UpdateReviewFn(ctx, id, patch)
	}
	return &model.Review{ID: id, UserID: 1, Name: "Nice", Rating: 5}, nil
}

func (s *ShopFacadeStub) DeleteReview(ctx context.Context, id int64) error {
	if s.DeleteReviewFn != nil {
		return s.DeleteReviewFn(ctx, id)
	}
	return nil
}

func (s *ShopFacadeStub) CreateOrder(ctx context.Context, userID int64, price decimal.Decimal) (*model.Order, error) {
	if s.CreateOrderFn != nil {
		return s.CreateOrderFn(ctx, userID, price)
	}
	return &model.Order{ID: 1, UserID: userID, Price: price, CreatedAt: time.Unix(0, 0)}, nil
}

func (s *ShopFacadeStub) OrdersForUser(ctx context.Context, userID int64) ([]model.Order, error) {
	if s.OrdersForUserFn != nil {
		return s.OrdersForUserFn(ctx, userID)
	}
	return []model.Order{{ID: 1, UserID: userID}}, nil
}

func (s *ShopFacadeStub) OrderForUser(ctx context.Context, userID, id int64) (*model.Order, error) {
	if s.OrderForUserFn != nil {
		return s.OrderForUserFn(ctx, userID, id)
	}
	return &model.Order{ID: id, UserID: userID}, nil
}

func (s *ShopFacadeStub) AllOrders(ctx context.Context) ([]model.Order, error) {
	if s.AllOrdersFn != nil {
		return s.AllOrdersFn(ctx)
	}
	return []model.Order{{ID: 1, UserID: 1}}, nil
}

func (s *ShopFacadeStub) OrderByID(ctx context.Context, id int64) (*model.Order, error) {
	if s.OrderByIDFn != nil {
		return s.OrderByIDFn(ctx, id)
	}
	return &model.Order{ID: id, UserID: 1}, nil
}

func (s *ShopFacadeStub) UpdateOrder(ctx context.Context, id int64, patch usecase.OrderPatch) (*model.Order, error) {
	if s.UpdateOrderFn != nil {
		return s.UpdateOrderFn(ctx, id, patch)
	}
	return &model.Order{ID: id, UserID: 1}, nil
}

func (s *ShopFacadeStub) DeleteOrder(ctx context.Context, id int64) error {
	if s.DeleteOrderFn != nil {
		return s.DeleteOrderFn(ctx, id)
	}
	return nil
}

func (s *ShopFacadeStub) ProcessOrder(ctx context.Context, id int64) (*model.Order, error) {
	if s.ProcessOrderFn != nil {
		return s.ProcessOrderFn(ctx, id)
	}
	now := time.Unix(0, 0)
	return &model.Order{ID: id, UserID: 1, Done: true, ProcessedAt: &now}, nil
}

func (s *ShopFacadeStub) CreateOrderItem(ctx context.Context, userID int64, fields usecase.OrderItemFields) (*model.OrderItem, error) {
	if s.CreateItemFn != nil {
		return s.CreateItemFn(ctx, userID, fields)
	}
	orderID := fields.OrderID
	return &model.OrderItem{ID: 1, OrderID: &orderID, ProductID: fields.ProductID, Name: fields.Name, Price: fields.Price}, nil
}

func (s *ShopFacadeStub) OrderItemsForUser(ctx context.Context, userID int64) ([]model.OrderItem, error) {
	if s.ItemsForUserFn != nil {
		return s.ItemsForUserFn(ctx, userID)
	}
	return []model.OrderItem{{ID: 1, Name: "Mug"}}, nil
}

func (s *ShopFacadeStub) OrderItemForUser(ctx context.Context, userID, id int64) (*model.OrderItem, error) {
	if s.ItemForUserFn != nil {
		return s.ItemForUserFn(ctx, userID, id)
	}
	return &model.OrderItem{ID: id, Name: "Mug"}, nil
}

func (s *ShopFacadeStub) AllOrderItems(ctx context.Context) ([]model.OrderItem, error) {
	if s.AllItemsFn != nil {
		return s.AllItemsFn(ctx)
	}
	return []model.OrderItem{{ID: 1, Name: "Mug"}}, nil
}

func (s *ShopFacadeStub) OrderItemByID(ctx context.Context, id int64) (*model.OrderItem, error) {
	if s.ItemByIDFn != nil {
		return s.ItemByIDFn(ctx, id)
	}
	return &model.OrderItem{ID: id, Name: "Mug"}, nil
}

func (s *ShopFacadeStub) UpdateOrderItem(ctx context.Context, id int64, patch usecase.OrderItemPatch) (*model.OrderItem, error) {
	if s.UpdateItemFn != nil {
		return s.UpdateItemFn(ctx, id, patch)
	}
	return &model.OrderItem{ID: id, Name: "Mug"}, nil
}

func (s *ShopFacadeStub) DeleteOrderItem(ctx context.Context, id int64) error {
	if s.DeleteItemFn != nil {
		return s.DeleteItemFn(ctx, id)
	}
	return nil
}
