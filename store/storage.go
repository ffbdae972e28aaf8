package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
)

// Storage keys. Each store owns exactly one key and rewrites the whole
// document on every mutation; no two stores share a key.
const (
	CartKey   = "foodieHubCart"
	OrdersKey = "foodieHubOrders"
	UserKey   = "foodieHubUser"
)

// ErrStorageUnavailable reports that the backing storage could not be
// read or written. Loaders return it instead of silently substituting
// empty state for a failed read.
var ErrStorageUnavailable = errors.New("storage unavailable")

// Storage persists one JSON document per key. Documents are read and
// written wholesale; there are no partial updates.
type Storage interface {
	// Load unmarshals the document stored under key into v. It returns
	// false with a nil error when no document exists.
	Load(ctx context.Context, key string, v interface{}) (bool, error)

	// Save marshals v and replaces the document stored under key.
	Save(ctx context.Context, key string, v interface{}) error

	// Delete removes the document stored under key, if present.
	Delete(ctx context.Context, key string) error
}

// MemoryStorage is an in-process Storage used by tests and local runs.
type MemoryStorage struct {
	mu   sync.Mutex
	docs map[string][]byte
}

// NewMemoryStorage creates an empty MemoryStorage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{docs: make(map[string][]byte)}
}

func (m *MemoryStorage) Load(ctx context.Context, key string, v interface{}) (bool, error) {
	m.mu.Lock()
	raw, ok := m.docs[key]
	m.mu.Unlock()
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return false, fmt.Errorf("%w: corrupt document %q: %v", ErrStorageUnavailable, key, err)
	}
	return true, nil
}

func (m *MemoryStorage) Save(ctx context.Context, key string, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %q: %w", key, err)
	}
	m.mu.Lock()
	m.docs[key] = raw
	m.mu.Unlock()
	return nil
}

func (m *MemoryStorage) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	delete(m.docs, key)
	m.mu.Unlock()
	return nil
}
