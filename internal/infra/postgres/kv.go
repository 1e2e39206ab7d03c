package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/odalys-dev/pennybook/internal/shared/apperrors"
	"github.com/odalys-dev/pennybook/pkg/logger"
)

// KV is a Postgres implementation of the storage port backed by a single
// two-column table.
type KV struct {
	db     *DB
	logger *logger.Logger
}

// NewKV creates a Postgres-backed KV store.
func NewKV(db *DB, log *logger.Logger) *KV {
	return &KV{
		db:     db,
		logger: log.WithComponent("postgres_kv"),
	}
}

// EnsureSchema creates the kv table if it does not exist.
func (s *KV) EnsureSchema(ctx context.Context) error {
	_, err := s.db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS kv (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`)
	if err != nil {
		return apperrors.StorageUnavailable("create kv table", err)
	}
	return nil
}

// Get retrieves a value by key.
func (s *KV) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow(ctx, `SELECT value FROM kv WHERE key = $1`, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		s.logger.Debug("key absent", "key", key)
		return "", false, nil
	}
	if err != nil {
		s.logger.Error("postgres get failed", "key", key, "error", err)
		return "", false, apperrors.StorageUnavailable(fmt.Sprintf("get %s", key), err)
	}
	return value, true, nil
}

// Set stores a value under a key.
func (s *KV) Set(ctx context.Context, key, value string) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO kv (key, value) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`, key, value)
	if err != nil {
		s.logger.Error("postgres set failed", "key", key, "error", err)
		return apperrors.StorageUnavailable(fmt.Sprintf("set %s", key), err)
	}
	return nil
}
