// Package metadata is the local key/value table of the client database.
// The token store keeps the bearer token here.
package metadata

import (
	"context"
	"time"
)

// Entry is one row of the metadata table.
type Entry struct {
	Key       string
	Value     []byte
	UpdatedAt time.Time
}

// Repository reads and writes metadata rows. Get returns (nil, nil) for a
// missing key.
type Repository interface {
	Get(ctx context.Context, key string) (*Entry, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) ([]Entry, error)
	Clear(ctx context.Context) error
}
