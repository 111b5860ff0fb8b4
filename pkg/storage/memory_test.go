package storage

import (
	"context"
	"errors"
	"testing"
)

func TestMemoryRoundTrip(t *testing.T) {
	t.Parallel()

	gw := NewMemory()
	ctx := context.Background()

	if _, err := gw.Read(ctx, KeyCart); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for empty gateway, got %v", err)
	}

	if err := gw.Write(ctx, KeyCart, []byte(`{"items":[]}`)); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, err := gw.Read(ctx, KeyCart)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(got) != `{"items":[]}` {
		t.Fatalf("unexpected payload %s", got)
	}

	if err := gw.Clear(ctx, KeyCart); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, err := gw.Read(ctx, KeyCart); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after clear, got %v", err)
	}
}

func TestMemoryReadReturnsCopy(t *testing.T) {
	t.Parallel()

	gw := NewMemory()
	ctx := context.Background()

	if err := gw.Write(ctx, KeyUser, []byte("original")); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, _ := gw.Read(ctx, KeyUser)
	got[0] = 'X'

	again, _ := gw.Read(ctx, KeyUser)
	if string(again) != "original" {
		t.Fatalf("stored value mutated through returned slice: %s", again)
	}
}

func TestClearAllSweepsEveryKey(t *testing.T) {
	t.Parallel()

	gw := NewMemory()
	ctx := context.Background()

	for _, key := range SessionKeys {
		if err := gw.Write(ctx, key, []byte("x")); err != nil {
			t.Fatalf("write %s: %v", key, err)
		}
	}

	if err := ClearAll(ctx, gw, SessionKeys...); err != nil {
		t.Fatalf("clear all: %v", err)
	}

	for _, key := range SessionKeys {
		if _, err := gw.Read(ctx, key); !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected %s to be absent, got %v", key, err)
		}
	}
}

type failingGateway struct {
	Gateway
	failOn map[string]error
}

func (f *failingGateway) Clear(ctx context.Context, key string) error {
	if err, ok := f.failOn[key]; ok {
		return err
	}
	return f.Gateway.Clear(ctx, key)
}

func TestClearAllAggregatesFailures(t *testing.T) {
	t.Parallel()

	boom := errors.New("disk on fire")
	gw := &failingGateway{
		Gateway: NewMemory(),
		failOn:  map[string]error{KeyOrders: boom},
	}

	err := ClearAll(context.Background(), gw, SessionKeys...)
	if !errors.Is(err, boom) {
		t.Fatalf("expected aggregated failure, got %v", err)
	}
}
