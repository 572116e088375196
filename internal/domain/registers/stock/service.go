package stock

import (
	"context"

	"mystore/internal/domain/ledger"
	"mystore/pkg/logger"
)

// AnomalyKind classifies a ledger inconsistency.
type AnomalyKind string

const (
	// AnomalyOrphanedSale: the sale references a lot that no longer exists.
	AnomalyOrphanedSale AnomalyKind = "orphaned_sale"
	// AnomalyNegativeStock: more units were sold from a lot than it holds.
	AnomalyNegativeStock AnomalyKind = "negative_stock"
)

// Anomaly is a single ledger inconsistency found by Inspect.
type Anomaly struct {
	Kind      AnomalyKind `json:"kind"`
	ProductID string      `json:"productId"`
	SaleID    string      `json:"saleId,omitempty"`
	Name      string      `json:"name"`
	Available int         `json:"available,omitempty"`
}

// Inspect lists orphaned sales and lots with negative available stock.
// Neither is fatal: orphaned sales are inert for stock and profit, and a
// negative lot only appears when data was written outside the services.
func Inspect(products []ledger.Product, sales []ledger.Sale) []Anomaly {
	var out []Anomaly
	for _, s := range ledger.Orphans(products, sales) {
		out = append(out, Anomaly{
			Kind:      AnomalyOrphanedSale,
			ProductID: s.ProductID,
			SaleID:    s.ID,
			Name:      s.ProductName,
		})
	}
	for _, b := range Balances(products, sales) {
		if b.Available < 0 {
			out = append(out, Anomaly{
				Kind:      AnomalyNegativeStock,
				ProductID: b.Product.ID,
				Name:      b.Product.Name,
				Available: b.Available,
			})
		}
	}
	return out
}

// LogAnomalies writes one warning per anomaly.
func LogAnomalies(ctx context.Context, anomalies []Anomaly) {
	for _, a := range anomalies {
		logger.Warn(ctx, "ledger anomaly",
			"kind", a.Kind,
			"product_id", a.ProductID,
			"sale_id", a.SaleID,
			"available", a.Available,
		)
	}
}

// Service provides read-side operations of the stock register.
type Service struct {
	gateway ledger.Gateway
}

// NewService creates a new stock register service.
func NewService(gateway ledger.Gateway) *Service {
	return &Service{gateway: gateway}
}

// GetBalances returns every lot with its available stock.
// Load failures fail open to an empty ledger.
func (s *Service) GetBalances(ctx context.Context) []LotStock {
	products, sales := s.snapshot(ctx)
	return Balances(products, sales)
}

// CheckIntegrity inspects the stored ledger and logs what it finds.
func (s *Service) CheckIntegrity(ctx context.Context) []Anomaly {
	products, sales := s.snapshot(ctx)

	anomalies := Inspect(products, sales)
	LogAnomalies(ctx, anomalies)

	logger.Info(ctx, "stock integrity checked",
		"products", len(products),
		"sales", len(sales),
		"anomalies", len(anomalies),
	)
	return anomalies
}

func (s *Service) snapshot(ctx context.Context) ([]ledger.Product, []ledger.Sale) {
	// The gateway already logged any failure; views render what they got.
	products, _ := s.gateway.LoadProducts(ctx)
	sales, _ := s.gateway.LoadSales(ctx)
	return products, sales
}
