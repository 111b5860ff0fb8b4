package store

import (
	"context"

	pkgerrors "github.com/cartwheel-labs/storefront-core/pkg/errors"
)

// Outcome labels for remote call metrics.
const (
	outcomeFulfilled = "fulfilled"
	outcomeRejected  = "rejected"
)

// Run executes a remote call as a dispatch lifecycle: the pending
// action first, then either the fulfilled action built from the result
// or the rejected action built from the error. The call runs on the
// calling goroutine; callers wanting fire-and-forget wrap Run in their
// own goroutine.
func Run[T any](
	ctx context.Context,
	s *Store,
	operation string,
	pending Action,
	call func(context.Context) (T, error),
	fulfilled func(T) Action,
	rejected func(error) Action,
) (T, error) {
	if pending != nil {
		s.Dispatch(ctx, pending)
	}

	result, err := call(ctx)
	if err != nil {
		if s.metrics != nil {
			s.metrics.IncRemoteCall(operation, outcomeRejected)
		}
		if s.logg != nil {
			s.logg.Error(s.logg.WithField(ctx, "operation", operation), "remote call failed", err)
		}
		if rejected != nil {
			s.Dispatch(ctx, rejected(err))
		}
		return result, err
	}

	if s.metrics != nil {
		s.metrics.IncRemoteCall(operation, outcomeFulfilled)
	}
	if fulfilled != nil {
		s.Dispatch(ctx, fulfilled(result))
	}
	return result, nil
}

// PublicMessage extracts a user-facing message from a remote call
// error, falling back to the code's canned message for anything not
// meant for display.
func PublicMessage(err error) string {
	e := pkgerrors.As(err)
	if e == nil {
		return pkgerrors.MetadataFor(pkgerrors.CodeInternal).PublicMessage
	}
	meta := pkgerrors.MetadataFor(e.Code())
	if meta.DetailsAllowed || e.Code() == pkgerrors.CodeUnauthorized {
		if msg := e.Message(); msg != "" {
			return msg
		}
	}
	return meta.PublicMessage
}
