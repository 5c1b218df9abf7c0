package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	domainErrors "github.com/polkiloo/storefront/internal/domain/errors"
	"github.com/polkiloo/storefront/internal/test"
)

func newCartUseCase() (*CartUseCase, *test.CartStoreStub) {
	store := test.NewCartStoreStub()
	return NewCartUseCase(store, sampleCatalog()), store
}

func TestCartAddAccumulatesQuantity(t *testing.T) {
	uc, store := newCartUseCase()
	ctx := context.Background()

	res, err := uc.Add(ctx, "s1", "accessory-mouse-001", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Message != "Wireless Mouse added to cart!" {
		t.Fatalf("unexpected message %q", res.Message)
	}

	res, err = uc.Add(ctx, "s1", "accessory-mouse-001", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Totals.Count != 3 || !res.Totals.Total.Equal(decimal.NewFromInt(255)) {
		t.Fatalf("unexpected totals %+v", res.Totals)
	}
	if item, _ := store.Carts["s1"].Get("accessory-mouse-001"); item.Quantity != 3 {
		t.Fatalf("expected stored quantity 3, got %d", item.Quantity)
	}
}

func TestCartAddRejectsUnknownAndInactiveProducts(t *testing.T) {
	uc, store := newCartUseCase()

	for _, id := range []string{"missing", "hidden-hp-002"} {
		if _, err := uc.Add(context.Background(), "s1", id, 1); !errors.Is(err, domainErrors.ErrProductNotFound) {
			t.Fatalf("%s: expected product not found, got %v", id, err)
		}
	}
	if store.Saves != 0 {
		t.Fatal("cart must not be saved on failure")
	}
}

func TestCartAddRejectsNonPositiveQuantity(t *testing.T) {
	uc, store := newCartUseCase()

	res, err := uc.Add(context.Background(), "s1", "accessory-mouse-001", 0)
	if !errors.Is(err, domainErrors.ErrInvalidQuantity) {
		t.Fatalf("expected invalid quantity, got %v", err)
	}
	if res.Totals.Count != 0 || store.Saves != 0 {
		t.Fatalf("cart must stay empty, got %+v", res.Totals)
	}
}

func TestCartRemove(t *testing.T) {
	uc, store := newCartUseCase()
	ctx := context.Background()

	res, err := uc.Remove(ctx, "s1", "accessory-mouse-001")
	if err != nil {
		t.Fatalf("removing from empty cart must succeed: %v", err)
	}
	if res.Totals.Count != 0 || !res.Totals.Total.IsZero() {
		t.Fatalf("unexpected totals %+v", res.Totals)
	}

	if _, err := uc.Add(ctx, "s1", "accessory-mouse-001", 2); err != nil {
		t.Fatalf("add: %v", err)
	}
	res, err = uc.Remove(ctx, "s1", "accessory-mouse-001")
	if err != nil || res.Totals.Count != 0 {
		t.Fatalf("unexpected remove result %+v %v", res.Totals, err)
	}
	if !store.Carts["s1"].IsEmpty() {
		t.Fatal("expected stored cart to be empty")
	}
}

func TestCartUpdateQuantity(t *testing.T) {
	uc, _ := newCartUseCase()
	ctx := context.Background()

	if _, err := uc.Add(ctx, "s1", "phone-samsung-001", 1); err != nil {
		t.Fatalf("add: %v", err)
	}

	res, err := uc.UpdateQuantity(ctx, "s1", "phone-samsung-001", 3)
	if err != nil || res.Totals.Count != 3 {
		t.Fatalf("unexpected update result %+v %v", res.Totals, err)
	}

	res, err = uc.UpdateQuantity(ctx, "s1", "phone-samsung-001", 0)
	if !errors.Is(err, domainErrors.ErrInvalidQuantity) {
		t.Fatalf("expected invalid quantity, got %v", err)
	}
	if res.Totals.Count != 3 {
		t.Fatalf("cart must be unchanged, got %+v", res.Totals)
	}

	res, err = uc.UpdateQuantity(ctx, "s1", "accessory-mouse-001", 2)
	if !errors.Is(err, domainErrors.ErrItemNotInCart) {
		t.Fatalf("expected item not in cart, got %v", err)
	}
	if res.Totals.Count != 3 {
		t.Fatalf("cart must be unchanged, got %+v", res.Totals)
	}
}

func TestCartSummaryAndSessionIsolation(t *testing.T) {
	uc, _ := newCartUseCase()
	ctx := context.Background()

	if _, err := uc.Add(ctx, "a", "laptop-hp-001", 1); err != nil {
		t.Fatalf("add: %v", err)
	}
	other, err := uc.Summary(ctx, "b")
	if err != nil || other.Totals.Count != 0 {
		t.Fatalf("sessions must not share carts: %+v %v", other.Totals, err)
	}
	mine, err := uc.Summary(ctx, "a")
	if err != nil || len(mine.Cart.Lines()) != 1 {
		t.Fatalf("unexpected summary %+v %v", mine, err)
	}

	if err := uc.Clear(ctx, "a"); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if mine, _ = uc.Summary(ctx, "a"); mine.Totals.Count != 0 {
		t.Fatal("expected cleared cart")
	}
}

func TestCartStoreErrorsPropagate(t *testing.T) {
	uc, store := newCartUseCase()
	boom := errors.New("redis down")

	store.LoadErr = boom
	if _, err := uc.Summary(context.Background(), "s1"); !errors.Is(err, boom) {
		t.Fatalf("expected load error, got %v", err)
	}

	store.LoadErr = nil
	store.SaveErr = boom
	if _, err := uc.Add(context.Background(), "s1", "laptop-hp-001", 1); !errors.Is(err, boom) {
		t.Fatalf("expected save error, got %v", err)
	}
}
