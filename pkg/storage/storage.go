package storage

import (
	"context"
	"errors"

	"go.uber.org/multierr"
)

// Logical record keys persisted by the storefront session.
const (
	KeyCart   = "cart"
	KeyOrders = "orders"
	KeyUser   = "user"
	KeyToken  = "token"
)

// SessionKeys lists every record a full session reset must remove.
var SessionKeys = []string{KeyCart, KeyOrders, KeyUser, KeyToken}

// ErrNotFound signals an absent record. Corrupt payloads are surfaced by the
// caller's decode step, never by the gateway itself.
var ErrNotFound = errors.New("storage: record not found")

// Gateway is the thin key-value surface session state is mirrored through.
type Gateway interface {
	Read(ctx context.Context, key string) ([]byte, error)
	Write(ctx context.Context, key string, value []byte) error
	Clear(ctx context.Context, key string) error
}

// ClearAll removes every provided key, continuing past individual failures
// and returning them aggregated.
func ClearAll(ctx context.Context, gw Gateway, keys ...string) error {
	var errs error
	for _, key := range keys {
		if err := gw.Clear(ctx, key); err != nil && !errors.Is(err, ErrNotFound) {
			errs = multierr.Append(errs, err)
		}
	}
	return errs
}
