// Package products implements stock entries (entradas): creating lots,
// restocking, editing and deleting them.
package products

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"mystore/internal/core/apperror"
	"mystore/internal/core/id"
	"mystore/internal/core/types"
	"mystore/internal/domain/ledger"
	"mystore/pkg/logger"
)

// Input carries the editable fields of a lot.
type Input struct {
	Name          string
	PurchasePrice types.Money
	Quantity      int
}

// Service provides business operations for product lots.
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

// NewService creates a new product service.
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

// List returns every lot, newest first. A failed load yields an empty list.
func (s *Service) List(ctx context.Context) []ledger.Product {
	products, _ := s.gateway.LoadProducts(ctx)
	return products
}

// Get returns one lot.
func (s *Service) Get(ctx context.Context, productID string) (*ledger.Product, error) {
	products, err := s.gateway.LoadProducts(ctx)
	if err != nil {
		return nil, err
	}
	i := ledger.FindProduct(products, productID)
	if i < 0 {
		return nil, apperror.NewNotFound("product", productID)
	}
	return &products[i], nil
}

// Create registers a new lot dated now and puts it at the head of the list.
func (s *Service) Create(ctx context.Context, in Input) (*ledger.Product, error) {
	p := ledger.Product{
		ID:            id.New(),
		Name:          strings.TrimSpace(in.Name),
		PurchasePrice: in.PurchasePrice,
		Quantity:      in.Quantity,
		EntryDate:     s.now(),
	}
	if err := p.Validate(ctx); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	products, err := s.gateway.LoadProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("load products: %w", err)
	}

	products = append([]ledger.Product{p}, products...)
	if err := s.gateway.SaveProducts(ctx, products); err != nil {
		return nil, fmt.Errorf("save products: %w", err)
	}

	logger.Info(ctx, "product created",
		"product_id", p.ID,
		"name", p.Name,
		"quantity", p.Quantity,
		"purchase_price", p.PurchasePrice.String(),
	)

	return &p, nil
}

// Restock adds quantity units to an existing lot.
// Price and entry date stay as they were.
func (s *Service) Restock(ctx context.Context, productID string, quantity int) (*ledger.Product, error) {
	if quantity <= 0 {
		return nil, apperror.NewNotPositive("quantity")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	products, err := s.gateway.LoadProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("load products: %w", err)
	}
	i := ledger.FindProduct(products, productID)
	if i < 0 {
		return nil, apperror.NewNotFound("product", productID)
	}

	products[i].Quantity += quantity
	if err := s.gateway.SaveProducts(ctx, products); err != nil {
		return nil, fmt.Errorf("save products: %w", err)
	}

	logger.Info(ctx, "product restocked",
		"product_id", productID,
		"added", quantity,
		"quantity", products[i].Quantity,
	)

	p := products[i]
	return &p, nil
}

// Update replaces name, price and quantity of a lot.
// The quantity may not drop below what was already sold from the lot.
func (s *Service) Update(ctx context.Context, productID string, in Input) (*ledger.Product, error) {
	candidate := ledger.Product{
		ID:            productID,
		Name:          strings.TrimSpace(in.Name),
		PurchasePrice: in.PurchasePrice,
		Quantity:      in.Quantity,
	}
	if err := candidate.Validate(ctx); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	products, err := s.gateway.LoadProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("load products: %w", err)
	}
	i := ledger.FindProduct(products, productID)
	if i < 0 {
		return nil, apperror.NewNotFound("product", productID)
	}

	sales, err := s.gateway.LoadSales(ctx)
	if err != nil {
		return nil, fmt.Errorf("load sales: %w", err)
	}
	if sold := ledger.SoldQuantity(sales, productID); candidate.Quantity < sold {
		return nil, apperror.NewBelowSold(productID, candidate.Quantity, sold)
	}

	candidate.EntryDate = products[i].EntryDate
	products[i] = candidate
	if err := s.gateway.SaveProducts(ctx, products); err != nil {
		return nil, fmt.Errorf("save products: %w", err)
	}

	logger.Info(ctx, "product updated",
		"product_id", productID,
		"name", candidate.Name,
		"quantity", candidate.Quantity,
	)

	return &candidate, nil
}

// Delete removes a lot unconditionally. Its sales stay behind as orphans,
// inert for stock and profit.
func (s *Service) Delete(ctx context.Context, productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	products, err := s.gateway.LoadProducts(ctx)
	if err != nil {
		return fmt.Errorf("load products: %w", err)
	}
	if ledger.FindProduct(products, productID) < 0 {
		return apperror.NewNotFound("product", productID)
	}

	if err := s.gateway.SaveProducts(ctx, ledger.WithoutProduct(products, productID)); err != nil {
		return fmt.Errorf("save products: %w", err)
	}

	logger.Info(ctx, "product deleted", "product_id", productID)

	// Only used for the warning below, so a failed read is not fatal here.
	sales, _ := s.gateway.LoadSales(ctx)
	if orphaned := len(ledger.SalesOf(sales, productID)); orphaned > 0 {
		logger.Warn(ctx, "deleted product leaves orphaned sales",
			"product_id", productID,
			"sales", orphaned,
		)
	}

	return nil
}
