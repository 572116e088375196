package storage

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"mystore/internal/core/apperror"
	"mystore/internal/domain/ledger"
	"mystore/pkg/logger"
)

var tracer = otel.Tracer("mystore/storage")

// Compile-time check that Gateway implements ledger.Gateway.
var _ ledger.Gateway = (*Gateway)(nil)

// Gateway stores each ledger collection as one snapshot under its own key.
type Gateway struct {
	store     Store
	codec     *Codec
	namespace string
}

// NewGateway creates a gateway writing keys under namespace.
func NewGateway(store Store, codec *Codec, namespace string) *Gateway {
	return &Gateway{store: store, codec: codec, namespace: namespace}
}

// LoadProducts implements ledger.Gateway.
func (g *Gateway) LoadProducts(ctx context.Context) ([]ledger.Product, error) {
	return load[ledger.Product](ctx, g, CollectionProducts)
}

// SaveProducts implements ledger.Gateway.
func (g *Gateway) SaveProducts(ctx context.Context, products []ledger.Product) error {
	if products == nil {
		products = []ledger.Product{}
	}
	return save(ctx, g, CollectionProducts, products, len(products))
}

// LoadSales implements ledger.Gateway.
func (g *Gateway) LoadSales(ctx context.Context) ([]ledger.Sale, error) {
	return load[ledger.Sale](ctx, g, CollectionSales)
}

// SaveSales implements ledger.Gateway.
func (g *Gateway) SaveSales(ctx context.Context, sales []ledger.Sale) error {
	if sales == nil {
		sales = []ledger.Sale{}
	}
	return save(ctx, g, CollectionSales, sales, len(sales))
}

// Ping checks the underlying store.
func (g *Gateway) Ping(ctx context.Context) error {
	return g.store.Ping(ctx)
}

// load never returns nil: on failure it hands back an empty slice together
// with the error, and a missing key is an empty collection.
func load[T any](ctx context.Context, g *Gateway, collection string) ([]T, error) {
	key := Key(g.namespace, collection)
	ctx, span := tracer.Start(ctx, "storage.load",
		trace.WithAttributes(attribute.String("storage.key", key)))
	defer span.End()

	data, err := g.store.Get(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return []T{}, nil
	}
	if err != nil {
		return []T{}, g.fail(ctx, span, "load", collection, err)
	}

	var out []T
	if err := g.codec.Decode(data, &out); err != nil {
		return []T{}, g.fail(ctx, span, "load", collection, err)
	}
	if out == nil {
		out = []T{}
	}

	span.SetAttributes(
		attribute.Int("storage.bytes", len(data)),
		attribute.Int("storage.records", len(out)),
	)
	return out, nil
}

func save[T any](ctx context.Context, g *Gateway, collection string, records []T, count int) error {
	key := Key(g.namespace, collection)
	ctx, span := tracer.Start(ctx, "storage.save",
		trace.WithAttributes(
			attribute.String("storage.key", key),
			attribute.Int("storage.records", count),
		))
	defer span.End()

	data, err := g.codec.Encode(records)
	if err != nil {
		return g.fail(ctx, span, "save", collection, err)
	}
	span.SetAttributes(attribute.Int("storage.bytes", len(data)))

	if err := g.store.Put(ctx, key, data); err != nil {
		return g.fail(ctx, span, "save", collection, err)
	}

	logger.Debug(ctx, "collection saved",
		"collection", collection,
		"records", count,
		"bytes", len(data),
	)
	return nil
}

func (g *Gateway) fail(ctx context.Context, span trace.Span, op, collection string, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())

	logger.Error(ctx, "persistence failure",
		"operation", op,
		"collection", collection,
		"error", err,
	)
	return apperror.NewPersistence(op, collection, err)
}
