package publish

import (
	"context"
)

// ObjectInfo is the metadata the comparator needs from the remote store.
// ETag keeps the store's integrity tag verbatim (quotes stripped).
type ObjectInfo struct {
	ETag string
	Size int64
}

// Store is the object-storage surface the publisher depends on. Head must
// report services.ErrNotFound for missing keys; Put streams a local file to
// the given key with the supplied content type.
type Store interface {
	Head(ctx context.Context, key string) (ObjectInfo, error)
	Put(ctx context.Context, key, path, contentType string) error
}
