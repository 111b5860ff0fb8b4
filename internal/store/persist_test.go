package store

import (
	"context"
	"errors"
	"testing"

	"github.com/cartwheel-labs/storefront-core/internal/account"
	"github.com/cartwheel-labs/storefront-core/internal/cart"
	"github.com/cartwheel-labs/storefront-core/internal/filters"
	"github.com/cartwheel-labs/storefront-core/internal/identity"
	"github.com/cartwheel-labs/storefront-core/pkg/storage"
)

func newPersistedStore(gw storage.Gateway) *Store {
	s := New(Options{})
	s.Subscribe(NewPersistence(gw, nil))
	return s
}

func TestPersistenceMirrorsCart(t *testing.T) {
	gw := storage.NewMemory()
	s := newPersistedStore(gw)
	ctx := context.Background()

	s.Dispatch(ctx, addWidget(2))

	data, err := gw.Read(ctx, storage.KeyCart)
	if err != nil {
		t.Fatalf("expected cart record, got %v", err)
	}
	restored, err := cart.FromSnapshot(data)
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	if restored.QuantityOf(1) != 2 {
		t.Fatalf("unexpected persisted cart %+v", restored)
	}
}

func TestPersistenceSkipsUntouchedSlices(t *testing.T) {
	gw := storage.NewMemory()
	s := newPersistedStore(gw)
	ctx := context.Background()

	s.Dispatch(ctx, filters.SetSearchQuery{Query: "hat"})

	if _, err := gw.Read(ctx, storage.KeyCart); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("filter change must not write cart record, got %v", err)
	}
	if _, err := gw.Read(ctx, storage.KeyOrders); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("filter change must not write orders record, got %v", err)
	}
}

func TestPersistenceWritesSession(t *testing.T) {
	gw := storage.NewMemory()
	s := newPersistedStore(gw)
	ctx := context.Background()

	s.Dispatch(ctx, account.SetCredentials{User: identity.User{ID: 4, Username: "johnd"}, Token: "am9obmQ6cHc="})

	token, err := gw.Read(ctx, storage.KeyToken)
	if err != nil || string(token) != "am9obmQ6cHc=" {
		t.Fatalf("unexpected token record %q %v", token, err)
	}
	if _, err := gw.Read(ctx, storage.KeyUser); err != nil {
		t.Fatalf("expected user record, got %v", err)
	}
}

func TestLogoutPurgesEverySessionRecord(t *testing.T) {
	gw := storage.NewMemory()
	s := newPersistedStore(gw)
	ctx := context.Background()

	s.Dispatch(ctx, account.SetCredentials{User: identity.User{ID: 4, Username: "johnd"}, Token: "tok"})
	s.Dispatch(ctx, addWidget(1))
	s.Dispatch(ctx, account.Logout{})

	for _, key := range storage.SessionKeys {
		if _, err := gw.Read(ctx, key); !errors.Is(err, storage.ErrNotFound) {
			t.Fatalf("expected %s purged, got %v", key, err)
		}
	}
}

func TestHydrateRoundTrip(t *testing.T) {
	gw := storage.NewMemory()
	ctx := context.Background()

	first := newPersistedStore(gw)
	first.Dispatch(ctx, addWidget(3))
	first.Dispatch(ctx, account.SetCredentials{User: identity.User{ID: 4, Username: "johnd"}, Token: "tok"})

	restored := Hydrate(ctx, gw, nil)
	if restored.Cart.QuantityOf(1) != 3 {
		t.Fatalf("cart not hydrated: %+v", restored.Cart)
	}
	if !restored.Account.Authenticated() || restored.Account.User.Username != "johnd" {
		t.Fatalf("account not hydrated: %+v", restored.Account)
	}
	if restored.Filters.Category != filters.CategoryAll {
		t.Fatal("filters must start from defaults")
	}
}

func TestHydrateDegradesOnCorruptRecord(t *testing.T) {
	gw := storage.NewMemory()
	ctx := context.Background()

	gw.Write(ctx, storage.KeyCart, []byte("{corrupt"))
	gw.Write(ctx, storage.KeyUser, []byte("{corrupt"))
	gw.Write(ctx, storage.KeyToken, []byte("tok"))

	state := Hydrate(ctx, gw, nil)
	if state.Cart.ItemCount() != 0 {
		t.Fatal("corrupt cart must hydrate empty")
	}
	if state.Account.Authenticated() {
		t.Fatal("corrupt user record must hydrate anonymous")
	}
}

func TestHydrateWithoutGateway(t *testing.T) {
	state := Hydrate(context.Background(), nil, nil)
	if state.Cart.ItemCount() != 0 || state.Filters.Category != filters.CategoryAll {
		t.Fatalf("unexpected default state %+v", state)
	}
}

type failingGateway struct{ storage.Gateway }

func (failingGateway) Write(context.Context, string, []byte) error {
	return errors.New("disk full")
}

func TestPersistenceSwallowsStorageFailures(t *testing.T) {
	gw := failingGateway{Gateway: storage.NewMemory()}
	s := New(Options{})
	s.Subscribe(NewPersistence(gw, nil))

	// Must not panic or surface the write error.
	s.Dispatch(context.Background(), addWidget(1))

	if s.GetState().Cart.QuantityOf(1) != 1 {
		t.Fatal("state transition must survive storage failure")
	}
}
