// Package ledgertest provides an in-memory ledger.Gateway for tests.
package ledgertest

import (
	"context"
	"errors"
	"sync"

	"mystore/internal/core/apperror"
	"mystore/internal/domain/ledger"
)

// ErrInjected is the cause carried by injected failures.
var ErrInjected = errors.New("injected failure")

// Gateway is a ledger.Gateway backed by two slices.
// Set the Fail* flags to make the matching call fail like a broken store.
type Gateway struct {
	mu       sync.Mutex
	products []ledger.Product
	sales    []ledger.Sale

	FailLoadProducts bool
	FailLoadSales    bool
	FailSave         bool

	// Saves counts successful SaveProducts and SaveSales calls.
	Saves int
}

// New returns a gateway pre-loaded with copies of products and sales.
func New(products []ledger.Product, sales []ledger.Sale) *Gateway {
	return &Gateway{
		products: append([]ledger.Product(nil), products...),
		sales:    append([]ledger.Sale(nil), sales...),
	}
}

// LoadProducts fails when FailLoadProducts is set.
func (g *Gateway) LoadProducts(ctx context.Context) ([]ledger.Product, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.FailLoadProducts {
		return []ledger.Product{}, apperror.NewPersistence("load", "products", ErrInjected)
	}
	return append([]ledger.Product{}, g.products...), nil
}

// SaveProducts fails when FailSave is set.
func (g *Gateway) SaveProducts(ctx context.Context, products []ledger.Product) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.FailSave {
		return apperror.NewPersistence("save", "products", ErrInjected)
	}
	g.products = append([]ledger.Product{}, products...)
	g.Saves++
	return nil
}

// LoadSales fails when FailLoadSales is set.
func (g *Gateway) LoadSales(ctx context.Context) ([]ledger.Sale, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.FailLoadSales {
		return []ledger.Sale{}, apperror.NewPersistence("load", "sales", ErrInjected)
	}
	return append([]ledger.Sale{}, g.sales...), nil
}

// SaveSales fails when FailSave is set.
func (g *Gateway) SaveSales(ctx context.Context, sales []ledger.Sale) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.FailSave {
		return apperror.NewPersistence("save", "sales", ErrInjected)
	}
	g.sales = append([]ledger.Sale{}, sales...)
	g.Saves++
	return nil
}

// Products returns the stored lots regardless of injected failures.
func (g *Gateway) Products() []ledger.Product {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]ledger.Product{}, g.products...)
}

// Sales returns the stored sales regardless of injected failures.
func (g *Gateway) Sales() []ledger.Sale {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]ledger.Sale{}, g.sales...)
}

var _ ledger.Gateway = (*Gateway)(nil)
