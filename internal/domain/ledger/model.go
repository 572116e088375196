// Package ledger defines the two collections the shop keeps: product lots
// (entradas) and sales against them (saídas).
package ledger

import (
	"context"
	"strings"
	"time"

	"mystore/internal/core/apperror"
	"mystore/internal/core/types"
)

// Validatable is implemented by records that support self-validation.
// Validation checks internal invariants only; stock checks need the other collection.
type Validatable interface {
	Validate(ctx context.Context) error
}

// Product is one purchase lot.
// Several lots may share a Name; each keeps its own cost basis and entry date.
type Product struct {
	// ID is assigned at creation and never changes
	ID string `json:"id"`

	Name string `json:"name"`

	// PurchasePrice is the cost per unit of this lot
	PurchasePrice types.Money `json:"purchasePrice"`

	// Quantity is the total units entered for the lot (restocks add to it)
	Quantity int `json:"quantity"`

	// EntryDate is set at creation and not touched by restocks
	EntryDate time.Time `json:"entryDate"`
}

// Validate implements Validatable.
func (p *Product) Validate(ctx context.Context) error {
	if strings.TrimSpace(p.Name) == "" {
		return apperror.NewRequiredField("name")
	}
	if !p.PurchasePrice.IsPositive() {
		return apperror.NewNotPositive("purchasePrice")
	}
	if p.Quantity <= 0 {
		return apperror.NewNotPositive("quantity")
	}
	return nil
}

// Sale withdraws Quantity units from exactly one lot.
type Sale struct {
	ID string `json:"id"`

	// ProductID references Product.ID by value. The lot may have been
	// deleted since; such a sale is orphaned and inert for stock and profit.
	ProductID string `json:"productId"`

	// ProductName is a display cache copied from the lot when the sale was
	// registered. It is never authoritative: resolve the lot for the current name.
	ProductName string `json:"productName"`

	Quantity  int         `json:"quantity"`
	SalePrice types.Money `json:"salePrice"`

	// Date drives period filtering and chronological ordering.
	// Zero for records written before dates were tracked.
	Date time.Time `json:"date"`
}

// Validate implements Validatable.
func (s *Sale) Validate(ctx context.Context) error {
	if s.ProductID == "" {
		return apperror.NewRequiredField("productId")
	}
	if s.Quantity <= 0 {
		return apperror.NewNotPositive("quantity")
	}
	if !s.SalePrice.IsPositive() {
		return apperror.NewNotPositive("salePrice")
	}
	return nil
}

// Dated reports whether the sale carries a date.
func (s *Sale) Dated() bool {
	return !s.Date.IsZero()
}

// Cost is what the sold units cost when bought from lot p.
func (s *Sale) Cost(p *Product) types.Money {
	return types.Times(p.PurchasePrice, s.Quantity)
}

// Revenue is what the sale brought in.
func (s *Sale) Revenue() types.Money {
	return types.Times(s.SalePrice, s.Quantity)
}

// Profit is (salePrice - purchasePrice) * quantity against lot p.
func (s *Sale) Profit(p *Product) types.Money {
	return types.Times(s.SalePrice.Sub(p.PurchasePrice), s.Quantity)
}

var (
	_ Validatable = (*Product)(nil)
	_ Validatable = (*Sale)(nil)
)
