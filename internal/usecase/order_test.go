package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	domainErrors "github.com/shopmart/shopmart/internal/domain/errors"
	"github.com/shopmart/shopmart/internal/domain/model"
	"github.com/shopmart/shopmart/internal/test"
	"github.com/shopmart/shopmart/internal/usecase"
)

func newOrderUseCase() (*usecase.OrderUseCase, *test.OrderRepositoryStub, *test.OrderItemRepositoryStub) {
	orders := test.NewOrderRepositoryStub()
	items := test.NewOrderItemRepositoryStub(orders)
	return usecase.NewOrderUseCase(orders, items), orders, items
}

func TestCreateOrder(t *testing.T) {
	ctx := context.Background()
	uc, _, _ := newOrderUseCase()

	order, err := uc.Create(ctx, 4, decimal.RequireFromString("42.50"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.UserID != 4 || order.Done || order.ProcessedAt != nil {
		t.Fatalf("expected fresh pending order, got %+v", order)
	}
	if order.Status() != model.OrderStatusPending {
		t.Fatalf("unexpected status: %s", order.Status())
	}
}

func TestOrderScoping(t *testing.T) {
	ctx := context.Background()
	uc, _, _ := newOrderUseCase()

	mine, _ := uc.Create(ctx, 1, decimal.NewFromInt(10))
	theirs, _ := uc.Create(ctx, 2, decimal.NewFromInt(20))

	if _, err := uc.GetForUser(ctx, 1, mine.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := uc.GetForUser(ctx, 1, theirs.ID); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	list, err := uc.ListByUser(ctx, 1)
	if err != nil || len(list) != 1 || list[0].ID != mine.ID {
		t.Fatalf("unexpected list: %+v err=%v", list, err)
	}

	all, err := uc.List(ctx)
	if err != nil || len(all) != 2 {
		t.Fatalf("unexpected list: %+v err=%v", all, err)
	}

	// The unscoped read serves the admin family.
	if _, err := uc.Get(ctx, theirs.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestOrderUpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	uc, orders, _ := newOrderUseCase()

	order, _ := uc.Create(ctx, 1, decimal.NewFromInt(10))

	done := true
	stamp := time.Unix(1000, 0)
	updated, err := uc.Update(ctx, order.ID, usecase.OrderPatch{Done: &done, ProcessedAt: &stamp})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !updated.Done || updated.ProcessedAt == nil || !updated.ProcessedAt.Equal(stamp) {
		t.Fatalf("unexpected order: %+v", updated)
	}
	if !updated.Price.Equal(decimal.NewFromInt(10)) {
		t.Fatalf("price changed unexpectedly: %s", updated.Price)
	}

	if _, err := uc.Update(ctx, 99, usecase.OrderPatch{Done: &done}); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	if err := uc.Delete(ctx, order.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := orders.Orders[order.ID]; ok {
		t.Fatal("expected order removed")
	}
	if err := uc.Delete(ctx, order.ID); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestProcessOrder(t *testing.T) {
	ctx := context.Background()
	uc, orders, _ := newOrderUseCase()

	first := time.Unix(1000, 0)
	orders.Now = func() time.Time { return first }

	order, _ := uc.Create(ctx, 1, decimal.NewFromInt(10))

	processed, err := uc.Process(ctx, order.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !processed.Done || processed.ProcessedAt == nil || !processed.ProcessedAt.Equal(first) {
		t.Fatalf("unexpected order: %+v", processed)
	}
	if processed.Status() != model.OrderStatusProcessed {
		t.Fatalf("unexpected status: %s", processed.Status())
	}

	// Processing again moves the stamp forward.
	second := time.Unix(2000, 0)
	orders.Now = func() time.Time { return second }
	reprocessed, err := uc.Process(ctx, order.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reprocessed.ProcessedAt.Equal(second) {
		t.Fatalf("expected re-stamped timestamp, got %v", reprocessed.ProcessedAt)
	}

	if _, err := uc.Process(ctx, 99); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestCreateItem(t *testing.T) {
	ctx := context.Background()

	t.Run("snapshot stored verbatim", func(t *testing.T) {
		uc, _, _ := newOrderUseCase()
		order, _ := uc.Create(ctx, 1, decimal.NewFromInt(10))

		productID := int64(3)
		item, err := uc.CreateItem(ctx, 1, usecase.OrderItemFields{
			OrderID:   order.ID,
			ProductID: &productID,
			Name:      "Mug",
			Price:     decimal.RequireFromString("19.99"),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.OrderID == nil || *item.OrderID != order.ID {
			t.Fatalf("unexpected order ref: %+v", item.OrderID)
		}
		if item.Name != "Mug" || !item.Price.Equal(decimal.RequireFromString("19.99")) {
			t.Fatalf("unexpected snapshot: %+v", item)
		}
	})

	t.Run("blank name rejected", func(t *testing.T) {
		uc, _, _ := newOrderUseCase()
		order, _ := uc.Create(ctx, 1, decimal.NewFromInt(10))
		if _, err := uc.CreateItem(ctx, 1, usecase.OrderItemFields{OrderID: order.ID, Name: " "}); !errors.Is(err, domainErrors.ErrValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("foreign order reads as absent", func(t *testing.T) {
		uc, _, _ := newOrderUseCase()
		order, _ := uc.Create(ctx, 2, decimal.NewFromInt(10))
		if _, err := uc.CreateItem(ctx, 1, usecase.OrderItemFields{OrderID: order.ID, Name: "Mug"}); !errors.Is(err, domainErrors.ErrNotFound) {
			t.Fatalf("expected not found, got %v", err)
		}
	})

	t.Run("missing order", func(t *testing.T) {
		uc, _, _ := newOrderUseCase()
		if _, err := uc.CreateItem(ctx, 1, usecase.OrderItemFields{OrderID: 42, Name: "Mug"}); !errors.Is(err, domainErrors.ErrNotFound) {
			t.Fatalf("expected not found, got %v", err)
		}
	})
}

func TestItemScoping(t *testing.T) {
	ctx := context.Background()
	uc, _, _ := newOrderUseCase()

	mine, _ := uc.Create(ctx, 1, decimal.NewFromInt(10))
	theirs, _ := uc.Create(ctx, 2, decimal.NewFromInt(20))

	myItem, err := uc.CreateItem(ctx, 1, usecase.OrderItemFields{OrderID: mine.ID, Name: "Mine"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	theirItem, err := uc.CreateItem(ctx, 2, usecase.OrderItemFields{OrderID: theirs.ID, Name: "Theirs"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := uc.ItemForUser(ctx, 1, myItem.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := uc.ItemForUser(ctx, 1, theirItem.ID); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	list, err := uc.ItemsForUser(ctx, 1)
	if err != nil || len(list) != 1 || list[0].Name != "Mine" {
		t.Fatalf("unexpected list: %+v err=%v", list, err)
	}

	all, err := uc.Items(ctx)
	if err != nil || len(all) != 2 {
		t.Fatalf("unexpected list: %+v err=%v", all, err)
	}

	if _, err := uc.Item(ctx, theirItem.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestItemUpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	uc, _, items := newOrderUseCase()

	order, _ := uc.Create(ctx, 1, decimal.NewFromInt(10))
	item, _ := uc.CreateItem(ctx, 1, usecase.OrderItemFields{OrderID: order.ID, Name: "Mug", Price: decimal.NewFromInt(5)})

	name := "Cup"
	updated, err := uc.UpdateItem(ctx, item.ID, usecase.OrderItemPatch{Name: &name, Price: decPtr("7.50")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Name != "Cup" || !updated.Price.Equal(decimal.RequireFromString("7.50")) {
		t.Fatalf("unexpected item: %+v", updated)
	}
	// References survive the patch untouched.
	if updated.OrderID == nil || *updated.OrderID != order.ID {
		t.Fatalf("order ref changed: %+v", updated.OrderID)
	}

	if _, err := uc.UpdateItem(ctx, 99, usecase.OrderItemPatch{Name: &name}); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	if err := uc.DeleteItem(ctx, item.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := items.Items[item.ID]; ok {
		t.Fatal("expected item removed")
	}
	if err := uc.DeleteItem(ctx, item.ID); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
