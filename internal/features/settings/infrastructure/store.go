package infrastructure

import "context"

// Store is a string key-value store for persisted settings.
// Get returns domain.ErrNotFound when the key holds no value.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}
