// Package sqlite provides the default on-device storage.Store: a single
// sqlite file accessed through gorm.
package sqlite

import (
	"context"
	"errors"
	"fmt"
	"time"

	sqlitedriver "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"

	"mystore/internal/infrastructure/storage"
)

var _ storage.Store = (*Store)(nil)

// entry is one row of the key-value table.
type entry struct {
	Key       string `gorm:"column:store_key;primaryKey"`
	Value     []byte
	UpdatedAt time.Time
}

func (entry) TableName() string { return "kv_store" }

// Store keeps snapshots in the kv_store table.
type Store struct {
	db *gorm.DB
}

// Open opens (or creates) the sqlite database at path and migrates the table.
// Use "file::memory:?cache=shared" for a throwaway database.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlitedriver.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	if err := db.AutoMigrate(&entry{}); err != nil {
		return nil, fmt.Errorf("migrate kv_store: %w", err)
	}
	return &Store{db: db}, nil
}

// Get reads the row of key; a missing row is storage.ErrNotFound.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	var e entry
	err := s.db.WithContext(ctx).Where("store_key = ?", key).Take(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("sqlite get %s: %w", key, err)
	}
	return e.Value, nil
}

// Put inserts the row of key or overwrites its value.
func (s *Store) Put(ctx context.Context, key string, value []byte) error {
	e := entry{Key: key, Value: value, UpdatedAt: time.Now().UTC()}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "store_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&e).Error
	if err != nil {
		return fmt.Errorf("sqlite put %s: %w", key, err)
	}
	return nil
}

// Ping checks the underlying database connection.
func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close closes the database handle.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
