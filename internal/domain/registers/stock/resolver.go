// Package stock derives available stock per lot from the ledger.
// Available stock is never stored: it is always recomputed from the
// entered quantity of a lot and the sales that reference it.
package stock

import (
	"mystore/internal/core/apperror"
	"mystore/internal/domain/ledger"
)

// LotStock pairs a lot with its derived available quantity.
type LotStock struct {
	Product   ledger.Product `json:"product"`
	Available int            `json:"available"`
}

// AvailableStock returns lot.Quantity minus every sale against the lot.
// A negative result means the ledger was already inconsistent.
func AvailableStock(lot ledger.Product, sales []ledger.Sale) int {
	return lot.Quantity - ledger.SoldQuantity(sales, lot.ID)
}

// MaxAvailableForEdit is the ceiling for a new quantity of editing:
// the sale's current quantity is treated as returned before re-checking.
func MaxAvailableForEdit(lot ledger.Product, sales []ledger.Sale, editing ledger.Sale) int {
	return AvailableStock(lot, sales) + editing.Quantity
}

// Balances returns every lot with its available stock, in input order.
func Balances(products []ledger.Product, sales []ledger.Sale) []LotStock {
	sold := make(map[string]int, len(products))
	for _, s := range sales {
		sold[s.ProductID] += s.Quantity
	}

	out := make([]LotStock, 0, len(products))
	for _, p := range products {
		out = append(out, LotStock{Product: p, Available: p.Quantity - sold[p.ID]})
	}
	return out
}

// AvailableLots returns the sellable lots, i.e. those with available stock > 0.
func AvailableLots(products []ledger.Product, sales []ledger.Sale) []LotStock {
	var out []LotStock
	for _, b := range Balances(products, sales) {
		if b.Available > 0 {
			out = append(out, b)
		}
	}
	return out
}

// Check fails with INSUFFICIENT_STOCK when requested exceeds ceiling.
func Check(productID string, requested, ceiling int) error {
	if requested > ceiling {
		return apperror.NewInsufficientStock(productID, requested, ceiling)
	}
	return nil
}
