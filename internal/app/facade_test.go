package app

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	domainErrors "github.com/shopmart/shopmart/internal/domain/errors"
	testhelpers "github.com/shopmart/shopmart/internal/test"
	"github.com/shopmart/shopmart/internal/usecase"
)

func newFacade() (*ShopFacade, *testhelpers.UserRepositoryStub, *testhelpers.ProductRepositoryStub, *testhelpers.OrderRepositoryStub) {
	userRepo := testhelpers.NewUserRepositoryStub()
	strategy := testhelpers.StrategyStub{ParseAccessFn: func(string) (int64, error) { return 99, nil }}
	authUC := usecase.NewAuthUseCase(userRepo, testhelpers.HasherStub{}, strategy)

	productRepo := testhelpers.NewProductRepositoryStub()
	reviewRepo := testhelpers.NewReviewRepositoryStub()
	catalogUC := usecase.NewCatalogUseCase(productRepo, reviewRepo)

	orderRepo := testhelpers.NewOrderRepositoryStub()
	itemRepo := testhelpers.NewOrderItemRepositoryStub(orderRepo)
	orderUC := usecase.NewOrderUseCase(orderRepo, itemRepo)

	facade := NewShopFacade(authUC, catalogUC, orderUC)
	return facade, userRepo, productRepo, orderRepo
}

func TestShopFacadeIdentity(t *testing.T) {
	facade, users, _, _ := newFacade()

	created, err := facade.Signup(context.Background(), "User@Example.COM", "secret", "User")
	if err != nil {
		t.Fatalf("signup returned error: %v", err)
	}
	if created.Email != "User@example.com" {
		t.Fatalf("expected normalized email, got %q", created.Email)
	}

	stored, err := users.GetByEmail(context.Background(), "User@example.com")
	if err != nil {
		t.Fatalf("user not stored: %v", err)
	}
	if stored.PasswordHash != "hash:secret" {
		t.Fatalf("unexpected stored hash %q", stored.PasswordHash)
	}

	user, pair, err := facade.Login(context.Background(), "User@Example.COM", "secret")
	if err != nil {
		t.Fatalf("login returned error: %v", err)
	}
	if user.ID != created.ID || pair.Access != "access" || pair.Refresh != "refresh" {
		t.Fatalf("unexpected login result user=%+v pair=%+v", user, pair)
	}

	id, err := facade.ParseAccessToken("anything")
	if err != nil {
		t.Fatalf("parse token returned error: %v", err)
	}
	if id != 99 {
		t.Fatalf("expected id 99, got %d", id)
	}

	fetched, err := facade.UserByID(context.Background(), created.ID)
	if err != nil || fetched.Email != created.Email {
		t.Fatalf("unexpected lookup result user=%+v err=%v", fetched, err)
	}

	name := "Renamed"
	updated, err := facade.UpdateUser(context.Background(), created.ID, usecase.UserPatch{Name: &name})
	if err != nil || updated.Name != "Renamed" {
		t.Fatalf("unexpected update result user=%+v err=%v", updated, err)
	}
}

func TestShopFacadeCatalog(t *testing.T) {
	facade, _, _, _ := newFacade()

	product, err := facade.CreateProduct(context.Background(), 7, usecase.ProductFields{
		Title: "Mug",
		Price: decimal.RequireFromString("19.99"),
	})
	if err != nil {
		t.Fatalf("create product returned error: %v", err)
	}
	if product.UserID == nil || *product.UserID != 7 {
		t.Fatalf("expected product owned by 7, got %+v", product.UserID)
	}

	listed, err := facade.Products(context.Background())
	if err != nil || len(listed) != 1 {
		t.Fatalf("unexpected public list %v err=%v", listed, err)
	}

	if _, err := facade.OwnedProduct(context.Background(), 8, product.ID); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected foreign product to read as absent, got %v", err)
	}

	review, err := facade.CreateReview(context.Background(), 7, usecase.ReviewFields{
		ProductID: &product.ID,
		Name:      "Great",
		Rating:    5,
	})
	if err != nil {
		t.Fatalf("create review returned error: %v", err)
	}
	if review.UserID != 7 {
		t.Fatalf("expected author 7, got %d", review.UserID)
	}

	reviews, err := facade.Reviews(context.Background())
	if err != nil || len(reviews) != 1 {
		t.Fatalf("unexpected review list %v err=%v", reviews, err)
	}
}

func TestShopFacadeOrders(t *testing.T) {
	facade, _, _, _ := newFacade()

	order, err := facade.CreateOrder(context.Background(), 7, decimal.RequireFromString("30.00"))
	if err != nil {
		t.Fatalf("create order returned error: %v", err)
	}
	if order.Done || order.ProcessedAt != nil {
		t.Fatalf("expected a pending order, got %+v", order)
	}

	item, err := facade.CreateOrderItem(context.Background(), 7, usecase.OrderItemFields{
		OrderID: order.ID,
		Name:    "Mug",
		Price:   decimal.RequireFromString("19.99"),
	})
	if err != nil {
		t.Fatalf("create item returned error: %v", err)
	}
	if item.OrderID == nil || *item.OrderID != order.ID {
		t.Fatalf("unexpected item order reference %+v", item.OrderID)
	}

	if _, err := facade.OrderForUser(context.Background(), 8, order.ID); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected foreign order to read as absent, got %v", err)
	}

	processed, err := facade.ProcessOrder(context.Background(), order.ID)
	if err != nil {
		t.Fatalf("process returned error: %v", err)
	}
	if !processed.Done || processed.ProcessedAt == nil {
		t.Fatalf("expected processed order, got %+v", processed)
	}

	items, err := facade.OrderItemsForUser(context.Background(), 7)
	if err != nil || len(items) != 1 {
		t.Fatalf("unexpected item list %v err=%v", items, err)
	}
}
