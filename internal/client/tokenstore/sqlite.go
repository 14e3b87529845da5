package tokenstore

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/chrisogonas/careerpilot-ai-frontend/internal/client/repositories/metadata"
	"github.com/chrisogonas/careerpilot-ai-frontend/internal/dbx"
)

var _ ExpiryReporter = (*SQLiteStore)(nil)

// SQLiteStore keeps the token in the metadata table of the local database
// under a configurable key. The token's expiry, when it carries one, is
// written next to it as "<key>.expires_at".
type SQLiteStore struct {
	db  *sql.DB
	key string
}

func NewSQLiteStore(db *sql.DB, key string) *SQLiteStore {
	if key == "" {
		key = DefaultKey
	}
	return &SQLiteStore{db: db, key: key}
}

func (s *SQLiteStore) expiryKey() string {
	return s.key + ".expires_at"
}

func (s *SQLiteStore) Get(ctx context.Context) (string, error) {
	e, err := metadata.NewSQLiteRepository(s.db).Get(ctx, s.key)
	if err != nil {
		return "", fmt.Errorf("read token: %w", err)
	}
	if e == nil {
		return "", nil
	}
	return string(e.Value), nil
}

// ExpiresAt returns the recorded expiry of the stored token.
func (s *SQLiteStore) ExpiresAt(ctx context.Context) (time.Time, bool, error) {
	e, err := metadata.NewSQLiteRepository(s.db).Get(ctx, s.expiryKey())
	if err != nil {
		return time.Time{}, false, fmt.Errorf("read token expiry: %w", err)
	}
	if e == nil {
		return time.Time{}, false, nil
	}
	t, err := time.Parse(time.RFC3339, string(e.Value))
	if err != nil {
		return time.Time{}, false, fmt.Errorf("read token expiry: %w", err)
	}
	return t, true, nil
}

// Set replaces the stored token and its expiry in one transaction.
func (s *SQLiteStore) Set(ctx context.Context, token string) error {
	if token == "" {
		return ErrEmptyToken
	}
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, s.key, []byte(token)); err != nil {
			return fmt.Errorf("write token: %w", err)
		}
		exp, ok := Expiry(token)
		if !ok {
			if err := repo.Delete(ctx, s.expiryKey()); err != nil {
				return fmt.Errorf("write token: %w", err)
			}
			return nil
		}
		if err := repo.Set(ctx, s.expiryKey(), []byte(exp.UTC().Format(time.RFC3339))); err != nil {
			return fmt.Errorf("write token: %w", err)
		}
		return nil
	})
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		for _, k := range []string{s.key, s.expiryKey()} {
			if err := repo.Delete(ctx, k); err != nil {
				return fmt.Errorf("clear token: %w", err)
			}
		}
		return nil
	})
}
