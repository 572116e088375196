package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"

	"mystore/internal/infrastructure/storage"
)

const kvTable = "kv_store"

const createKVTable = `
CREATE TABLE IF NOT EXISTS kv_store (
	store_key  TEXT PRIMARY KEY,
	value      BYTEA NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

var _ storage.Store = (*KVStore)(nil)

type kvRow struct {
	Value []byte `db:"value"`
}

// KVStore keeps snapshots as rows of the kv_store table.
type KVStore struct {
	pool    *pgxpool.Pool
	builder squirrel.StatementBuilderType
}

// NewKVStore creates a store on pool. Call EnsureSchema once before use.
func NewKVStore(pool *pgxpool.Pool) *KVStore {
	return &KVStore{
		pool:    pool,
		builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// EnsureSchema creates the kv_store table if it is missing.
func (s *KVStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, createKVTable); err != nil {
		return fmt.Errorf("create %s: %w", kvTable, err)
	}
	return nil
}

// Get selects the value of key; no row is storage.ErrNotFound.
func (s *KVStore) Get(ctx context.Context, key string) ([]byte, error) {
	query, args, err := s.builder.
		Select("value").
		From(kvTable).
		Where(squirrel.Eq{"store_key": key}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row kvRow
	if err := pgxscan.Get(ctx, s.pool, &row, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("get %s: %w", key, err)
	}
	return row.Value, nil
}

// Put upserts the value of key and bumps updated_at.
func (s *KVStore) Put(ctx context.Context, key string, value []byte) error {
	query, args, err := s.builder.
		Insert(kvTable).
		Columns("store_key", "value", "updated_at").
		Values(key, value, time.Now().UTC()).
		Suffix("ON CONFLICT (store_key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	if _, err := s.pool.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("put %s: %w", key, err)
	}
	return nil
}

// Ping checks a pooled connection.
func (s *KVStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Close closes the pool.
func (s *KVStore) Close() error {
	s.pool.Close()
	return nil
}
