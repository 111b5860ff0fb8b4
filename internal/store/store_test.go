package store

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/cartwheel-labs/storefront-core/internal/account"
	"github.com/cartwheel-labs/storefront-core/internal/cart"
	"github.com/cartwheel-labs/storefront-core/internal/filters"
	"github.com/cartwheel-labs/storefront-core/internal/identity"
	"github.com/cartwheel-labs/storefront-core/pkg/enums"
)

func addWidget(qty int) cart.AddItem {
	return cart.AddItem{
		Product:  cart.Product{ID: 1, Title: "Widget", Price: decimal.RequireFromString("19.99")},
		Quantity: qty,
	}
}

func TestDispatchRoutesToOwningSlice(t *testing.T) {
	s := New(Options{})
	ctx := context.Background()

	s.Dispatch(ctx, addWidget(2))
	s.Dispatch(ctx, filters.SetSearchQuery{Query: "widget"})

	state := s.GetState()
	if state.Cart.QuantityOf(1) != 2 {
		t.Fatalf("cart not updated: %+v", state.Cart)
	}
	if state.Filters.SearchQuery != "widget" {
		t.Fatalf("filters not updated: %+v", state.Filters)
	}
	if len(state.Orders.Orders) != 0 || state.Account.Authenticated() {
		t.Fatal("unrelated slices must stay untouched")
	}
}

func TestInitialStateHasFilterDefaults(t *testing.T) {
	s := New(Options{})
	if got := s.GetState().Filters.Category; got != filters.CategoryAll {
		t.Fatalf("expected default filters, got category %q", got)
	}
}

func TestSubscriberSeesBeforeAndAfter(t *testing.T) {
	s := New(Options{})
	ctx := context.Background()

	var calls int
	s.Subscribe(func(ctx context.Context, prev, next State, action Action) {
		calls++
		if prev.Cart.ItemCount() != 0 || next.Cart.ItemCount() != 2 {
			t.Fatalf("unexpected transition %d -> %d", prev.Cart.ItemCount(), next.Cart.ItemCount())
		}
		if action.ActionType() != "cart/addItem" {
			t.Fatalf("unexpected action %s", action.ActionType())
		}
	})

	s.Dispatch(ctx, addWidget(2))
	if calls != 1 {
		t.Fatalf("expected one notification, got %d", calls)
	}
}

func TestUnsubscribeStopsNotifications(t *testing.T) {
	s := New(Options{})
	ctx := context.Background()

	var calls int
	unsubscribe := s.Subscribe(func(context.Context, State, State, Action) { calls++ })

	s.Dispatch(ctx, addWidget(1))
	unsubscribe()
	s.Dispatch(ctx, addWidget(1))

	if calls != 1 {
		t.Fatalf("expected one notification, got %d", calls)
	}
}

func TestSubscribersRunInSubscriptionOrder(t *testing.T) {
	s := New(Options{})
	ctx := context.Background()

	var seen []string
	s.Subscribe(func(context.Context, State, State, Action) { seen = append(seen, "first") })
	s.Subscribe(func(context.Context, State, State, Action) { seen = append(seen, "second") })

	s.Dispatch(ctx, addWidget(1))
	if len(seen) != 2 || seen[0] != "first" || seen[1] != "second" {
		t.Fatalf("unexpected order %v", seen)
	}
}

func TestNilActionIgnored(t *testing.T) {
	s := New(Options{})
	s.Subscribe(func(context.Context, State, State, Action) {
		t.Fatal("nil action must not notify")
	})
	s.Dispatch(context.Background(), nil)
}

func TestLogoutEndToEnd(t *testing.T) {
	s := New(Options{})
	ctx := context.Background()

	s.Dispatch(ctx, account.SetCredentials{User: identity.User{ID: 1, Username: "johnd"}, Token: "tok"})
	s.Dispatch(ctx, addWidget(1))
	s.Dispatch(ctx, account.Logout{})

	state := s.GetState()
	if state.Account.Authenticated() {
		t.Fatal("expected anonymous session after logout")
	}
	if state.Account.Status != enums.AuthStatusIdle {
		t.Fatalf("expected idle status, got %s", state.Account.Status)
	}
	// The cart itself survives logout; only persisted records are purged.
	if state.Cart.ItemCount() != 1 {
		t.Fatal("logout must not clear the in-memory cart")
	}
}
