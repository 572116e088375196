// Package app wires configuration, storage and services together for the
// commands under cmd/.
package app

import (
	"context"
	"fmt"
	"sync"
	"time"

	"mystore/internal/config"
	"mystore/internal/domain/products"
	"mystore/internal/domain/registers/stock"
	"mystore/internal/domain/reports"
	"mystore/internal/domain/sales"
	"mystore/internal/infrastructure/storage"
	"mystore/internal/infrastructure/storage/memory"
	"mystore/internal/infrastructure/storage/postgres"
	"mystore/internal/infrastructure/storage/redis"
	"mystore/internal/infrastructure/storage/sqlite"
	"mystore/pkg/logger"
)

// App holds the wired services.
type App struct {
	Config   *config.Config
	Location *time.Location
	Gateway  *storage.Gateway
	Products *products.Service
	Sales    *sales.Service
	Reports  *reports.Service
	Stock    *stock.Service

	store storage.Store
	codec *storage.Codec
}

// Open connects the configured store and builds the services on it.
func Open(ctx context.Context, cfg *config.Config) (*App, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	store, err := OpenStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	codec, err := storage.NewCodec(storage.CodecConfig{
		Compress:  cfg.StoreCompress,
		Threshold: cfg.StoreCompressThreshold,
	})
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	a := New(store, codec, cfg.StoreNamespace, loc)
	a.Config = cfg

	logger.Info(ctx, "store opened",
		"driver", cfg.StoreDriver,
		"namespace", cfg.StoreNamespace,
		"compress", cfg.StoreCompress,
	)
	return a, nil
}

// New builds the services over an already opened store.
func New(store storage.Store, codec *storage.Codec, namespace string, loc *time.Location) *App {
	gateway := storage.NewGateway(store, codec, namespace)

	// Products and sales rewrite whole collections and read each other's,
	// so their mutations share one lock.
	mu := &sync.Mutex{}

	return &App{
		Location: loc,
		Gateway:  gateway,
		Products: products.NewService(gateway, products.WithLock(mu)),
		Sales:    sales.NewService(gateway, sales.WithLock(mu)),
		Reports:  reports.NewService(gateway, loc),
		Stock:    stock.NewService(gateway),
		store:    store,
		codec:    codec,
	}
}

// OpenStore opens the backend selected by STORE_DRIVER.
func OpenStore(ctx context.Context, cfg *config.Config) (storage.Store, error) {
	switch cfg.StoreDriver {
	case config.DriverMemory:
		return memory.New(), nil

	case config.DriverSQLite:
		return sqlite.Open(cfg.SQLitePath)

	case config.DriverRedis:
		return redis.Open(ctx, cfg.RedisURL)

	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, postgres.DefaultPoolConfig(cfg.DatabaseURL))
		if err != nil {
			return nil, err
		}
		kv := postgres.NewKVStore(pool)
		if err := kv.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, err
		}
		postgres.LogPoolStats(ctx, pool)
		return kv, nil
	}

	return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
}

// Close releases the store and the codec.
func (a *App) Close() error {
	a.codec.Close()
	return a.store.Close()
}
