package cart

import (
	"testing"

	"github.com/shopspring/decimal"
)

func product(id int, price string) Product {
	return Product{ID: id, Title: "Product", Price: decimal.RequireFromString(price), Image: "img.png"}
}

func TestAddItemMergesDuplicates(t *testing.T) {
	s := Reduce(State{}, AddItem{Product: product(1, "19.99"), Quantity: 1})
	s = Reduce(s, AddItem{Product: product(1, "19.99"), Quantity: 2})

	if len(s.Items) != 1 {
		t.Fatalf("expected one line, got %d", len(s.Items))
	}
	if got := s.QuantityOf(1); got != 3 {
		t.Fatalf("expected quantity 3, got %d", got)
	}
}

func TestAddItemDefaultsQuantityToOne(t *testing.T) {
	s := Reduce(State{}, AddItem{Product: product(1, "5.00"), Quantity: 0})
	if got := s.QuantityOf(1); got != 1 {
		t.Fatalf("expected quantity 1, got %d", got)
	}
	s = Reduce(s, AddItem{Product: product(2, "5.00"), Quantity: -3})
	if got := s.QuantityOf(2); got != 1 {
		t.Fatalf("expected quantity 1 for negative add, got %d", got)
	}
}

func TestUpdateQuantityZeroRemovesLine(t *testing.T) {
	s := Reduce(State{}, AddItem{Product: product(1, "10.00"), Quantity: 2})
	s = Reduce(s, UpdateQuantity{ProductID: 1, Quantity: 0})

	if s.IsInCart(1) {
		t.Fatal("expected line removed when quantity set to zero")
	}
	if len(s.Items) != 0 {
		t.Fatalf("expected empty cart, got %d lines", len(s.Items))
	}
}

func TestUpdateQuantityUnknownProductIsNoop(t *testing.T) {
	s := Reduce(State{}, AddItem{Product: product(1, "10.00"), Quantity: 1})
	next := Reduce(s, UpdateQuantity{ProductID: 99, Quantity: 5})
	if len(next.Items) != 1 || next.QuantityOf(1) != 1 {
		t.Fatal("expected state unchanged for unknown product")
	}
}

func TestRemoveItem(t *testing.T) {
	s := Reduce(State{}, AddItem{Product: product(1, "10.00"), Quantity: 1})
	s = Reduce(s, AddItem{Product: product(2, "4.50"), Quantity: 2})
	s = Reduce(s, RemoveItem{ProductID: 1})

	if s.IsInCart(1) {
		t.Fatal("expected product 1 removed")
	}
	if !s.IsInCart(2) {
		t.Fatal("expected product 2 untouched")
	}
}

func TestTotalPriceAndItemCount(t *testing.T) {
	s := Reduce(State{}, AddItem{Product: product(1, "19.99"), Quantity: 2})
	s = Reduce(s, AddItem{Product: product(2, "5.01"), Quantity: 1})

	if got := s.TotalPrice(); !got.Equal(decimal.RequireFromString("44.99")) {
		t.Fatalf("expected total 44.99, got %s", got)
	}
	if got := s.ItemCount(); got != 3 {
		t.Fatalf("expected item count 3, got %d", got)
	}
}

func TestClear(t *testing.T) {
	s := Reduce(State{}, AddItem{Product: product(1, "10.00"), Quantity: 4})
	s = Reduce(s, Clear{})

	if len(s.Items) != 0 || s.ItemCount() != 0 {
		t.Fatal("expected cleared cart")
	}
	if !s.TotalPrice().IsZero() {
		t.Fatalf("expected zero total, got %s", s.TotalPrice())
	}
}

func TestQuantityAlwaysPositiveWhilePresent(t *testing.T) {
	s := State{}
	ops := []any{
		AddItem{Product: product(1, "1.00"), Quantity: 2},
		AddItem{Product: product(2, "2.00"), Quantity: 0},
		UpdateQuantity{ProductID: 1, Quantity: -1},
		AddItem{Product: product(2, "2.00"), Quantity: 3},
		UpdateQuantity{ProductID: 2, Quantity: 1},
	}
	for _, op := range ops {
		s = Reduce(s, op)
		for _, it := range s.Items {
			if it.Quantity < 1 {
				t.Fatalf("line %d has non-positive quantity %d", it.ID, it.Quantity)
			}
		}
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	s := Reduce(State{}, AddItem{Product: product(7, "12.34"), Quantity: 2})

	data, err := s.Snapshot()
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	got, err := FromSnapshot(data)
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	if got.QuantityOf(7) != 2 || !got.TotalPrice().Equal(decimal.RequireFromString("24.68")) {
		t.Fatalf("unexpected restored state: %+v", got)
	}
}

func TestFromSnapshotRejectsCorruptPayload(t *testing.T) {
	if _, err := FromSnapshot([]byte("{not json")); err == nil {
		t.Fatal("expected error for corrupt snapshot")
	}
}

func TestReduceDoesNotMutateInput(t *testing.T) {
	s := Reduce(State{}, AddItem{Product: product(1, "10.00"), Quantity: 1})
	_ = Reduce(s, UpdateQuantity{ProductID: 1, Quantity: 9})

	if s.QuantityOf(1) != 1 {
		t.Fatal("reducer mutated its input state")
	}
}
