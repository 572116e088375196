// Package storage persists the ledger collections as whole snapshots in a
// key-value store.
package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Store.Get when the key was never written.
var ErrNotFound = errors.New("storage: key not found")

// Store is a minimal key-value store. Every call is atomic on its own;
// there are no transactions across keys.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Ping(ctx context.Context) error
	Close() error
}

// Collection names, used as key suffixes and in errors.
const (
	CollectionProducts = "products"
	CollectionSales    = "sales"
)

// Key builds the namespaced key of a collection ("mystore:products").
func Key(namespace, collection string) string {
	if namespace == "" {
		return collection
	}
	return namespace + ":" + collection
}
