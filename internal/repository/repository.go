package repository

import "context"

// Repository is a string-keyed store of opaque JSON blobs. It is the local
// key-value persistence the rest of the application is written against, so
// swapping SQLite for Redis or memory never touches the services.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, keys ...string) error
	Keys(ctx context.Context, prefix string) ([]string, error)
}
