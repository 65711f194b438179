// Package localstore provides the client's local persistent storage: a small
// key-value slot backed by SQLite, used to mirror the active user record.
package localstore

import "context"

// Store is a synchronous key-value capability. Get returns (nil, nil) when
// the key is absent, so callers can distinguish absence from failure.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
