package ledger

import "context"

// Gateway persists the two collections as complete snapshots.
// Every mutation reads a whole collection, changes it in memory and writes
// the whole collection back; the last writer wins. Each call is atomic on
// its own but there is no transaction across calls.
type Gateway interface {
	// LoadProducts returns the stored lots, or an empty slice if none were saved.
	// On a read or decode failure it returns an empty slice together with a
	// PERSISTENCE_ERROR, so view callers can fail open while mutating callers abort.
	LoadProducts(ctx context.Context) ([]Product, error)
	SaveProducts(ctx context.Context, products []Product) error

	// LoadSales behaves like LoadProducts.
	LoadSales(ctx context.Context) ([]Sale, error)
	SaveSales(ctx context.Context, sales []Sale) error
}
