package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"mystore/internal/core/types"
	"mystore/internal/domain/ledger"
	"mystore/internal/domain/products"
)

// ProductRequest creates a lot or replaces its editable fields.
type ProductRequest struct {
	Name          string       `json:"name" validate:"required,max=200"`
	PurchasePrice types.Amount `json:"purchasePrice" validate:"gt=0"`
	Quantity      int          `json:"quantity" validate:"gt=0"`
}

// ToInput converts the request to service input.
func (r ProductRequest) ToInput() products.Input {
	return products.Input{
		Name:          r.Name,
		PurchasePrice: r.PurchasePrice.Money,
		Quantity:      r.Quantity,
	}
}

// RestockRequest adds units to an existing lot.
type RestockRequest struct {
	Quantity int `json:"quantity" validate:"gt=0"`
}

// ProductResponse represents a lot in API responses.
type ProductResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	PurchasePrice decimal.Decimal `json:"purchasePrice"`
	Quantity      int             `json:"quantity"`
	EntryDate     *time.Time      `json:"entryDate"`
}

// FromProduct converts entity to response DTO.
func FromProduct(p ledger.Product) ProductResponse {
	return ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		PurchasePrice: p.PurchasePrice,
		Quantity:      p.Quantity,
		EntryDate:     optionalTime(p.EntryDate),
	}
}

// FromProducts converts a slice, keeping its order.
func FromProducts(ps []ledger.Product) []ProductResponse {
	out := make([]ProductResponse, len(ps))
	for i, p := range ps {
		out[i] = FromProduct(p)
	}
	return out
}
