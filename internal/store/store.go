// Package store is the state container: a single root state reduced by
// typed actions, with synchronous subscribers observing every
// transition.
package store

import (
	"context"
	"sync"

	"github.com/cartwheel-labs/storefront-core/internal/account"
	"github.com/cartwheel-labs/storefront-core/internal/cart"
	"github.com/cartwheel-labs/storefront-core/internal/filters"
	"github.com/cartwheel-labs/storefront-core/internal/orders"
	"github.com/cartwheel-labs/storefront-core/pkg/logger"
	"github.com/cartwheel-labs/storefront-core/pkg/metrics"
)

// Action is a typed state transition request. ActionType is a stable
// name used for logs and metrics, never for dispatch routing; reducers
// switch on the concrete type.
type Action interface {
	ActionType() string
}

// State is the root state tree.
type State struct {
	Cart    cart.State
	Orders  orders.State
	Account account.State
	Filters filters.State
}

// Initial returns the state a fresh session starts from.
func Initial() State {
	return State{Filters: filters.Default()}
}

// Subscriber observes a completed transition. Subscribers run
// synchronously on the dispatching goroutine, in subscription order,
// and must not dispatch back into the store.
type Subscriber func(ctx context.Context, prev, next State, action Action)

type subscription struct {
	id int
	fn Subscriber
}

// Options configures a Store. Every field is optional.
type Options struct {
	Initial *State
	Logger  *logger.Logger
	Metrics *metrics.StoreMetrics
}

// Store holds the state tree and serializes dispatches against it.
type Store struct {
	dispatchMu sync.Mutex
	stateMu    sync.RWMutex
	state      State

	subsMu sync.Mutex
	subs   []subscription
	nextID int

	logg    *logger.Logger
	metrics *metrics.StoreMetrics
}

// New builds a store, starting from Initial() unless an initial state
// is supplied.
func New(opts Options) *Store {
	state := Initial()
	if opts.Initial != nil {
		state = *opts.Initial
	}
	return &Store{
		state:   state,
		logg:    opts.Logger,
		metrics: opts.Metrics,
	}
}

// GetState returns a snapshot of the current state. Slices in the
// snapshot are shared with the store; treat them as read-only.
func (s *Store) GetState() State {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()
	return s.state
}

// Subscribe registers an observer and returns its unsubscribe func.
func (s *Store) Subscribe(fn Subscriber) func() {
	s.subsMu.Lock()
	defer s.subsMu.Unlock()

	s.nextID++
	id := s.nextID
	s.subs = append(s.subs, subscription{id: id, fn: fn})

	return func() {
		s.subsMu.Lock()
		defer s.subsMu.Unlock()
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

// Dispatch runs the action through every slice reducer and notifies
// subscribers with the before and after states. Dispatches are
// serialized; subscribers for one action finish before the next action
// starts.
func (s *Store) Dispatch(ctx context.Context, action Action) {
	if action == nil {
		return
	}

	s.dispatchMu.Lock()
	defer s.dispatchMu.Unlock()

	s.stateMu.Lock()
	prev := s.state
	next := reduce(prev, action)
	s.state = next
	s.stateMu.Unlock()

	if s.metrics != nil {
		s.metrics.IncDispatch(action.ActionType())
	}
	if s.logg != nil {
		s.logg.Debug(s.logg.WithAction(ctx, action.ActionType()), "action dispatched")
	}

	for _, sub := range s.snapshotSubs() {
		sub.fn(ctx, prev, next, action)
	}
}

func (s *Store) snapshotSubs() []subscription {
	s.subsMu.Lock()
	defer s.subsMu.Unlock()
	out := make([]subscription, len(s.subs))
	copy(out, s.subs)
	return out
}

func reduce(prev State, action Action) State {
	return State{
		Cart:    cart.Reduce(prev.Cart, action),
		Orders:  orders.Reduce(prev.Orders, action),
		Account: account.Reduce(prev.Account, action),
		Filters: filters.Reduce(prev.Filters, action),
	}
}
