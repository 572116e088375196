// Package sales implements stock withdrawals (saídas) against product lots.
package sales

import (
	"context"
	"fmt"
	"sync"
	"time"

	"mystore/internal/core/apperror"
	"mystore/internal/core/id"
	"mystore/internal/core/types"
	"mystore/internal/domain/ledger"
	"mystore/internal/domain/registers/stock"
	"mystore/pkg/logger"
)

// RegisterInput describes a new sale.
type RegisterInput struct {
	ProductID string
	Quantity  int
	SalePrice types.Money
}

// UpdateInput carries the editable fields of a sale.
type UpdateInput struct {
	Quantity  int
	SalePrice types.Money
}

// Sellable is the sale-entry view: one group per product name, and the
// lots behind the selected name.
type Sellable struct {
	Groups []stock.LotGroup `json:"groups"`
	Lots   []stock.LotStock `json:"lots"`
}

// Ceiling is the largest quantity a sale may be edited to.
type Ceiling struct {
	SaleID    string `json:"saleId"`
	ProductID string `json:"productId"`
	Current   int    `json:"current"`
	Max       int    `json:"max"`
}

// Service provides business operations for sales.
type Service struct {
	gateway ledger.Gateway
	mu      *sync.Mutex
	now     func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithLock shares a write lock with other services mutating the ledger.
func WithLock(mu *sync.Mutex) Option {
	return func(s *Service) { s.mu = mu }
}

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService creates a new sales service.
func NewService(gateway ledger.Gateway, opts ...Option) *Service {
	s := &Service{
		gateway: gateway,
		mu:      &sync.Mutex{},
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List returns every sale, newest first. A failed load yields an empty list.
func (s *Service) List(ctx context.Context) []ledger.Sale {
	sales, _ := s.gateway.LoadSales(ctx)
	return sales
}

// Get returns one sale.
func (s *Service) Get(ctx context.Context, saleID string) (*ledger.Sale, error) {
	sales, err := s.gateway.LoadSales(ctx)
	if err != nil {
		return nil, err
	}
	i := ledger.FindSale(sales, saleID)
	if i < 0 {
		return nil, apperror.NewNotFound("sale", saleID)
	}
	return &sales[i], nil
}

// SellableLots groups the lots with stock by name. When name is set, Lots
// holds the lots of that name only; otherwise every lot with stock.
func (s *Service) SellableLots(ctx context.Context, name string) Sellable {
	products, _ := s.gateway.LoadProducts(ctx)
	sales, _ := s.gateway.LoadSales(ctx)

	lots := stock.AvailableLots(products, sales)
	view := Sellable{Groups: stock.GroupByName(lots), Lots: lots}
	if name != "" {
		view.Lots = stock.LotsByName(lots, name)
	}
	return view
}

// Register records a sale against one lot, if the lot has the stock for it.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*ledger.Sale, error) {
	sale := ledger.Sale{
		ID:        id.New(),
		ProductID: in.ProductID,
		Quantity:  in.Quantity,
		SalePrice: in.SalePrice,
	}
	if err := sale.Validate(ctx); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	products, sales, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	i := ledger.FindProduct(products, in.ProductID)
	if i < 0 {
		return nil, apperror.NewNotFound("product", in.ProductID)
	}
	lot := products[i]

	if err := stock.Check(lot.ID, sale.Quantity, stock.AvailableStock(lot, sales)); err != nil {
		return nil, err
	}

	sale.ProductName = lot.Name
	sale.Date = s.now()

	sales = append([]ledger.Sale{sale}, sales...)
	if err := s.gateway.SaveSales(ctx, sales); err != nil {
		return nil, fmt.Errorf("save sales: %w", err)
	}

	logger.Info(ctx, "sale registered",
		"sale_id", sale.ID,
		"product_id", lot.ID,
		"quantity", sale.Quantity,
		"sale_price", sale.SalePrice.String(),
	)

	return &sale, nil
}

// EditCeiling returns how far the sale's quantity may be raised.
func (s *Service) EditCeiling(ctx context.Context, saleID string) (*Ceiling, error) {
	products, sales, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	sale, lot, err := resolve(products, sales, saleID)
	if err != nil {
		return nil, err
	}

	return &Ceiling{
		SaleID:    sale.ID,
		ProductID: lot.ID,
		Current:   sale.Quantity,
		Max:       stock.MaxAvailableForEdit(*lot, sales, *sale),
	}, nil
}

// Update changes quantity and price of a sale. The old quantity counts as
// returned to the lot before the new one is checked.
func (s *Service) Update(ctx context.Context, saleID string, in UpdateInput) (*ledger.Sale, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	products, sales, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	sale, lot, err := resolve(products, sales, saleID)
	if err != nil {
		return nil, err
	}

	candidate := *sale
	candidate.Quantity = in.Quantity
	candidate.SalePrice = in.SalePrice
	if err := candidate.Validate(ctx); err != nil {
		return nil, err
	}

	ceiling := stock.MaxAvailableForEdit(*lot, sales, *sale)
	if err := stock.Check(lot.ID, candidate.Quantity, ceiling); err != nil {
		return nil, err
	}

	*sale = candidate
	if err := s.gateway.SaveSales(ctx, sales); err != nil {
		return nil, fmt.Errorf("save sales: %w", err)
	}

	logger.Info(ctx, "sale updated",
		"sale_id", saleID,
		"product_id", lot.ID,
		"quantity", candidate.Quantity,
		"sale_price", candidate.SalePrice.String(),
	)

	return &candidate, nil
}

// Delete removes a sale; its units become available again.
func (s *Service) Delete(ctx context.Context, saleID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sales, err := s.gateway.LoadSales(ctx)
	if err != nil {
		return fmt.Errorf("load sales: %w", err)
	}
	i := ledger.FindSale(sales, saleID)
	if i < 0 {
		return apperror.NewNotFound("sale", saleID)
	}
	deleted := sales[i]

	if err := s.gateway.SaveSales(ctx, ledger.WithoutSale(sales, saleID)); err != nil {
		return fmt.Errorf("save sales: %w", err)
	}

	logger.Info(ctx, "sale deleted",
		"sale_id", saleID,
		"product_id", deleted.ProductID,
		"quantity", deleted.Quantity,
	)

	return nil
}

// load reads both collections and aborts on any failure, so a mutation
// never writes back a snapshot that came from a failed read.
func (s *Service) load(ctx context.Context) ([]ledger.Product, []ledger.Sale, error) {
	products, err := s.gateway.LoadProducts(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("load products: %w", err)
	}
	sales, err := s.gateway.LoadSales(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("load sales: %w", err)
	}
	return products, sales, nil
}

// resolve finds a sale and its lot. The returned sale points into sales.
func resolve(products []ledger.Product, sales []ledger.Sale, saleID string) (*ledger.Sale, *ledger.Product, error) {
	i := ledger.FindSale(sales, saleID)
	if i < 0 {
		return nil, nil, apperror.NewNotFound("sale", saleID)
	}
	sale := &sales[i]

	j := ledger.FindProduct(products, sale.ProductID)
	if j < 0 {
		return nil, nil, apperror.NewOrphanedSale(sale.ID, sale.ProductID)
	}
	return sale, &products[j], nil
}
