//go:build integration

package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"

	"mystore/internal/infrastructure/storage"
)

// Run with: go test -tags integration ./internal/infrastructure/storage/...
func TestKVStore(t *testing.T) {
	ctx := context.Background()

	pgC, err := tcPostgres.Run(ctx, "postgres:16-alpine",
		tcPostgres.WithDatabase("mystore_test"),
		tcPostgres.WithUsername("mystore"),
		tcPostgres.WithPassword("mystore"),
		tcPostgres.BasicWaitStrategies(),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pgC.Terminate(ctx) })

	dsn, err := pgC.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	cfg := DefaultPoolConfig(dsn)
	cfg.HealthCheckPeriod = 10 * time.Second
	pool, err := NewPool(ctx, cfg)
	require.NoError(t, err)

	s := NewKVStore(pool)
	t.Cleanup(func() { _ = s.Close() })
	require.NoError(t, s.EnsureSchema(ctx))
	require.NoError(t, s.EnsureSchema(ctx), "schema creation is idempotent")
	require.NoError(t, s.Ping(ctx))

	_, err = s.Get(ctx, "mystore:products")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	require.NoError(t, s.Put(ctx, "mystore:products", []byte(`[]`)))
	require.NoError(t, s.Put(ctx, "mystore:products", []byte{0x01, 0xff, 0x00}))

	got, err := s.Get(ctx, "mystore:products")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0xff, 0x00}, got)

	LogPoolStats(ctx, pool)
}
