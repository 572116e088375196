package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"mystore/internal/core/types"
	"mystore/internal/domain/ledger"
	"mystore/internal/domain/sales"
)

// RegisterSaleRequest withdraws units from one lot.
type RegisterSaleRequest struct {
	ProductID string       `json:"productId" validate:"required"`
	Quantity  int          `json:"quantity" validate:"gt=0"`
	SalePrice types.Amount `json:"salePrice" validate:"gt=0"`
}

// ToInput converts the request to service input.
func (r RegisterSaleRequest) ToInput() sales.RegisterInput {
	return sales.RegisterInput{
		ProductID: r.ProductID,
		Quantity:  r.Quantity,
		SalePrice: r.SalePrice.Money,
	}
}

// UpdateSaleRequest changes quantity and price; the lot and date stay.
type UpdateSaleRequest struct {
	Quantity  int          `json:"quantity" validate:"gt=0"`
	SalePrice types.Amount `json:"salePrice" validate:"gt=0"`
}

// ToInput converts the request to service input.
func (r UpdateSaleRequest) ToInput() sales.UpdateInput {
	return sales.UpdateInput{
		Quantity:  r.Quantity,
		SalePrice: r.SalePrice.Money,
	}
}

// SaleResponse represents a sale in API responses.
type SaleResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	SalePrice   decimal.Decimal `json:"salePrice"`
	Total       decimal.Decimal `json:"total"`
	Date        *time.Time      `json:"date"`
}

// FromSale converts entity to response DTO.
func FromSale(s ledger.Sale) SaleResponse {
	return SaleResponse{
		ID:          s.ID,
		ProductID:   s.ProductID,
		ProductName: s.ProductName,
		Quantity:    s.Quantity,
		SalePrice:   s.SalePrice,
		Total:       s.Revenue(),
		Date:        optionalTime(s.Date),
	}
}

// FromSales converts a slice, keeping its order.
func FromSales(ss []ledger.Sale) []SaleResponse {
	out := make([]SaleResponse, len(ss))
	for i, s := range ss {
		out[i] = FromSale(s)
	}
	return out
}

// LotGroupResponse is one product name offered for sale.
type LotGroupResponse struct {
	Name           string `json:"name"`
	TotalAvailable int    `json:"totalAvailable"`
	Lots           int    `json:"lots"`
}

// SellableResponse lists sellable names and, when a name was given, its lots.
type SellableResponse struct {
	Groups []LotGroupResponse `json:"groups"`
	Lots   []LotStockResponse `json:"lots"`
}

// FromSellable converts the sale-entry view.
func FromSellable(s sales.Sellable) SellableResponse {
	groups := make([]LotGroupResponse, len(s.Groups))
	for i, g := range s.Groups {
		groups[i] = LotGroupResponse{Name: g.Name, TotalAvailable: g.TotalAvailable, Lots: g.Lots}
	}
	return SellableResponse{Groups: groups, Lots: FromLotStocks(s.Lots)}
}
