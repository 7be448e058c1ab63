package di

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"go.uber.org/fx"

	"github.com/shopmart/shopmart/internal/app"
	"github.com/shopmart/shopmart/internal/config"
	"github.com/shopmart/shopmart/internal/domain/repository"
	"github.com/shopmart/shopmart/internal/storage/postgres"
	"github.com/shopmart/shopmart/internal/test"
)

func TestModuleComposesGraphWithReplacements(t *testing.T) {
	cfg := &config.Config{
		RunAddress:      ":0",
		DatabaseURI:     "postgres://stub",
		JWTSecret:       "secret",
		AccessTokenTTL:  time.Minute,
		RefreshTokenTTL: time.Hour,
		ShutdownTimeout: time.Millisecond,
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	userRepo := test.NewUserRepositoryStub()
	productRepo := test.NewProductRepositoryStub()
	reviewRepo := test.NewReviewRepositoryStub()
	orderRepo := test.NewOrderRepositoryStub()
	itemRepo := test.NewOrderItemRepositoryStub(orderRepo)

	var facade *app.ShopFacade
	fxApp := fx.New(
		fx.NopLogger,
		fx.Supply(context.Background()),
		Module(
			fx.Replace(cfg),
			fx.Replace(logger),
			fx.Replace(&postgres.Storage{}),
			fx.Replace(repository.UserRepository(userRepo)),
			fx.Replace(repository.ProductRepository(productRepo)),
			fx.Replace(repository.ReviewRepository(reviewRepo)),
			fx.Replace(repository.OrderRepository(orderRepo)),
			fx.Replace(repository.OrderItemRepository(itemRepo)),
		),
		fx.Populate(&facade),
	)

	if err := fxApp.Err(); err != nil {
		t.Fatalf("fx app returned error: %v", err)
	}
	t.Cleanup(func() { _ = fxApp.Stop(context.Background()) })
	if facade == nil {
		t.Fatal("expected shop facade instance")
	}
}
