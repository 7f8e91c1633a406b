package metadata

import (
	"context"
)

// Repository is a flat key-value store. Get returns (nil, nil) for a missing
// key. Clear removes every key, not only the ones a given caller wrote.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}
