package store

import (
	"context"
	"errors"

	"github.com/cartwheel-labs/storefront-core/internal/account"
	"github.com/cartwheel-labs/storefront-core/internal/cart"
	"github.com/cartwheel-labs/storefront-core/internal/orders"
	"github.com/cartwheel-labs/storefront-core/pkg/logger"
	"github.com/cartwheel-labs/storefront-core/pkg/storage"
)

// Hydrate rebuilds the root state from persisted session records.
// Missing or corrupt records degrade to that slice's default; hydration
// never fails the session.
func Hydrate(ctx context.Context, gw storage.Gateway, logg *logger.Logger) State {
	state := Initial()
	if gw == nil {
		return state
	}

	if data, err := gw.Read(ctx, storage.KeyCart); err == nil {
		if restored, err := cart.FromSnapshot(data); err == nil {
			state.Cart = restored
		} else {
			warn(ctx, logg, "discarding corrupt cart record", err)
		}
	} else if !errors.Is(err, storage.ErrNotFound) {
		warn(ctx, logg, "reading cart record", err)
	}

	if data, err := gw.Read(ctx, storage.KeyOrders); err == nil {
		if restored, err := orders.FromSnapshot(data); err == nil {
			state.Orders = restored
		} else {
			warn(ctx, logg, "discarding corrupt orders record", err)
		}
	} else if !errors.Is(err, storage.ErrNotFound) {
		warn(ctx, logg, "reading orders record", err)
	}

	userData, userErr := gw.Read(ctx, storage.KeyUser)
	tokenData, tokenErr := gw.Read(ctx, storage.KeyToken)
	if userErr == nil && tokenErr == nil {
		restored, err := account.FromSnapshot(userData, string(tokenData))
		if err != nil {
			warn(ctx, logg, "discarding corrupt user record", err)
		}
		state.Account = restored
	}

	return state
}

// NewPersistence returns a subscriber that mirrors the session slices
// into the gateway after every transition. Only slices the action
// actually changed are written. A logout purges every session record
// instead. Storage failures are logged and swallowed; persistence never
// breaks a dispatch.
func NewPersistence(gw storage.Gateway, logg *logger.Logger) Subscriber {
	return func(ctx context.Context, prev, next State, action Action) {
		if _, ok := action.(account.Logout); ok {
			if err := storage.ClearAll(ctx, gw, storage.SessionKeys...); err != nil {
				warn(ctx, logg, "purging session records on logout", err)
			}
			return
		}

		if cartChanged(prev.Cart, next.Cart) {
			writeSnapshot(ctx, gw, logg, storage.KeyCart, next.Cart.Snapshot)
		}
		if ordersChanged(prev.Orders, next.Orders) {
			writeSnapshot(ctx, gw, logg, storage.KeyOrders, next.Orders.Snapshot)
		}
		if prev.Account != next.Account {
			persistAccount(ctx, gw, logg, next.Account)
		}
	}
}

func writeSnapshot(ctx context.Context, gw storage.Gateway, logg *logger.Logger, key string, snapshot func() ([]byte, error)) {
	data, err := snapshot()
	if err != nil {
		warn(ctx, logg, "encoding "+key+" record", err)
		return
	}
	if err := gw.Write(ctx, key, data); err != nil {
		warn(ctx, logg, "writing "+key+" record", err)
	}
}

func persistAccount(ctx context.Context, gw storage.Gateway, logg *logger.Logger, st account.State) {
	if !st.Authenticated() {
		// Transitional states (pending, failed) leave no records behind.
		if err := storage.ClearAll(ctx, gw, storage.KeyUser, storage.KeyToken); err != nil {
			warn(ctx, logg, "clearing session records", err)
		}
		return
	}

	data, err := st.UserSnapshot()
	if err != nil {
		warn(ctx, logg, "encoding user record", err)
		return
	}
	if err := gw.Write(ctx, storage.KeyUser, data); err != nil {
		warn(ctx, logg, "writing user record", err)
	}
	if err := gw.Write(ctx, storage.KeyToken, []byte(st.Token)); err != nil {
		warn(ctx, logg, "writing token record", err)
	}
}

// Reducers return the same slice header when an action did not touch
// them, which makes change detection a header comparison instead of a
// deep equal.
func cartChanged(prev, next cart.State) bool {
	if len(prev.Items) != len(next.Items) {
		return true
	}
	if len(next.Items) == 0 {
		return (prev.Items == nil) != (next.Items == nil)
	}
	return &prev.Items[0] != &next.Items[0]
}

func ordersChanged(prev, next orders.State) bool {
	if len(prev.Orders) != len(next.Orders) {
		return true
	}
	if len(next.Orders) == 0 {
		return (prev.Orders == nil) != (next.Orders == nil)
	}
	return &prev.Orders[0] != &next.Orders[0]
}

func warn(ctx context.Context, logg *logger.Logger, msg string, err error) {
	if logg == nil {
		return
	}
	logg.Warn(logg.WithField(ctx, "error", err.Error()), msg)
}
