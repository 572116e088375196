package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"mystore/internal/domain/registers/stock"
)

// LotStockResponse is a lot with its derived available quantity.
type LotStockResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	PurchasePrice decimal.Decimal `json:"purchasePrice"`
	Quantity      int             `json:"quantity"`
	Available     int             `json:"available"`
	EntryDate     *time.Time      `json:"entryDate"`
}

// FromLotStock converts a lot balance to response DTO.
func FromLotStock(l stock.LotStock) LotStockResponse {
	return LotStockResponse{
		ID:            l.Product.ID,
		Name:          l.Product.Name,
		PurchasePrice: l.Product.PurchasePrice,
		Quantity:      l.Product.Quantity,
		Available:     l.Available,
		EntryDate:     optionalTime(l.Product.EntryDate),
	}
}

// FromLotStocks converts a slice, keeping its order.
func FromLotStocks(ls []stock.LotStock) []LotStockResponse {
	out := make([]LotStockResponse, len(ls))
	for i, l := range ls {
		out[i] = FromLotStock(l)
	}
	return out
}

// AnomalyResponse is one ledger inconsistency.
type AnomalyResponse struct {
	Kind      string `json:"kind"`
	ProductID string `json:"productId"`
	SaleID    string `json:"saleId,omitempty"`
	Name      string `json:"name"`
	Available int    `json:"available,omitempty"`
}

// FromAnomalies converts integrity findings to response DTOs.
func FromAnomalies(as []stock.Anomaly) []AnomalyResponse {
	out := make([]AnomalyResponse, len(as))
	for i, a := range as {
		out[i] = AnomalyResponse{
			Kind:      string(a.Kind),
			ProductID: a.ProductID,
			SaleID:    a.SaleID,
			Name:      a.Name,
			Available: a.Available,
		}
	}
	return out
}
