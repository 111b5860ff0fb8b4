package storage

import (
	"context"

	"github.com/cartwheel-labs/storefront-core/pkg/redis"
)

// Redis mirrors session snapshots into a shared redis instance so a session
// can be resumed from another process.
type Redis struct {
	client    *redis.Client
	sessionID string
}

// NewRedis wraps an established redis client for the given session.
func NewRedis(client *redis.Client, sessionID string) *Redis {
	return &Redis{client: client, sessionID: sessionID}
}

func (r *Redis) Read(ctx context.Context, key string) ([]byte, error) {
	value, err := r.client.Get(ctx, r.client.SnapshotKey(r.sessionID, key))
	if err != nil {
		if redis.IsNil(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return []byte(value), nil
}

func (r *Redis) Write(ctx context.Context, key string, value []byte) error {
	return r.client.Set(ctx, r.client.SnapshotKey(r.sessionID, key), value, 0)
}

func (r *Redis) Clear(ctx context.Context, key string) error {
	return r.client.Del(ctx, r.client.SnapshotKey(r.sessionID, key))
}
