// Package tokenstore persists the bearer access token between runs. The API
// client receives a Store at construction and is its only writer.
package tokenstore

import (
	"context"
	"errors"
	"sync"
	"time"
)

// DefaultKey is the storage key used when none is configured.
const DefaultKey = "careerpilot_token"

// ErrEmptyToken is returned by Set for an empty token; use Clear instead.
var ErrEmptyToken = errors.New("empty token")

// Store keeps at most one token. Get returns "" and no error when nothing
// is stored.
type Store interface {
	Get(ctx context.Context) (string, error)
	Set(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}

// ExpiryReporter is implemented by stores that record the token's exp claim
// next to the token.
type ExpiryReporter interface {
	ExpiresAt(ctx context.Context) (time.Time, bool, error)
}

// MemoryStore keeps the token for the lifetime of the process.
type MemoryStore struct {
	mu    sync.RWMutex
	token string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Get(context.Context) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token, nil
}

func (m *MemoryStore) Set(_ context.Context, token string) error {
	if token == "" {
		return ErrEmptyToken
	}
	m.mu.Lock()
	m.token = token
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) Clear(context.Context) error {
	m.mu.Lock()
	m.token = ""
	m.mu.Unlock()
	return nil
}
