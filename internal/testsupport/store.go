package testsupport

import (
	"context"
	"errors"
	"sync"

	"giraffe/internal/publish"
	"giraffe/internal/services"
)

// FakeObject is one remote object held by the fake store.
type FakeObject struct {
	ETag string
	Size int64
}

// FakeStore is an in-memory publish.Store for tests. Head errors can be
// forced per key; puts are recorded.
type FakeStore struct {
	mu       sync.Mutex
	Objects  map[string]FakeObject
	HeadErrs map[string]error
	PutErr   error
	Puts     []string
	Heads    []string
}

// NewFakeStore returns an empty fake store.
func NewFakeStore() *FakeStore {
	return &FakeStore{
		Objects:  map[string]FakeObject{},
		HeadErrs: map[string]error{},
	}
}

func (f *FakeStore) Head(_ context.Context, key string) (publish.ObjectInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Heads = append(f.Heads, key)
	if err, ok := f.HeadErrs[key]; ok {
		return publish.ObjectInfo{}, err
	}
	obj, ok := f.Objects[key]
	if !ok {
		return publish.ObjectInfo{}, services.Wrap(services.ErrNotFound, "store", "head", key, nil)
	}
	return publish.ObjectInfo{ETag: obj.ETag, Size: obj.Size}, nil
}

func (f *FakeStore) Put(_ context.Context, key, path, contentType string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.PutErr != nil {
		return f.PutErr
	}
	f.Puts = append(f.Puts, key)
	return nil
}

var _ publish.Store = (*FakeStore)(nil)

// ErrForcedTransport is a canned transport failure for tests.
var ErrForcedTransport = errors.New("forced transport failure")
