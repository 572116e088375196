// Package main fills the configured store with demo lots and sales spread
// over the last months, so the report has history to show.
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"sync"
	"time"

	"mystore/internal/app"
	"mystore/internal/config"
	appctx "mystore/internal/core/context"
	"mystore/internal/core/types"
	"mystore/internal/domain/ledger"
	"mystore/internal/domain/products"
	"mystore/internal/domain/sales"
	"mystore/pkg/logger"
)

type demoLot struct {
	name     string
	price    string
	quantity int
	markup   float64
}

var demoLots = []demoLot{
	{"Caneta Azul", "1.20", 200, 2.1},
	{"Caderno 96 folhas", "8.50", 80, 1.6},
	{"Lápis HB", "0.45", 300, 2.5},
	{"Borracha", "0.80", 150, 1.9},
	{"Mochila Escolar", "45.00", 20, 1.5},
	{"Caneta Azul", "1.05", 100, 2.3},
}

func main() {
	months := flag.Int("months", 6, "how many months of sales history to generate")
	reset := flag.Bool("reset", false, "clear both collections before seeding")
	seed := flag.Int64("seed", 42, "random seed for quantities and dates")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(logger.Config{Level: cfg.LogLevel, Development: true})
	if err != nil {
		fmt.Printf("failed to create logger: %v\n", err)
		os.Exit(1)
	}
	log = log.WithComponent("seed")
	logger.SetDefault(log)

	ctx := appctx.WithTrace(context.Background(), appctx.NewTraceContext())

	a, err := app.Open(ctx, cfg)
	if err != nil {
		log.Fatalw("failed to open store", "error", err)
	}
	defer func() { _ = a.Close() }()

	if *reset {
		if err := a.Gateway.SaveSales(ctx, nil); err != nil {
			log.Fatalw("failed to clear sales", "error", err)
		}
		if err := a.Gateway.SaveProducts(ctx, nil); err != nil {
			log.Fatalw("failed to clear products", "error", err)
		}
		log.Info("collections cleared")
	}

	count, err := seedDemoData(ctx, a, *months, rand.New(rand.NewSource(*seed)))
	if err != nil {
		log.Fatalw("failed to seed demo data", "error", err)
	}

	log.Infow("demo data seeded", "lots", len(demoLots), "sales", count)
}

// seedDemoData goes through the regular services with a movable clock so
// entry and sale dates fall in the past.
func seedDemoData(ctx context.Context, a *app.App, months int, rnd *rand.Rand) (int, error) {
	if months < 1 {
		months = 1
	}

	start := time.Now().In(a.Location).AddDate(0, -months, 0)
	current := start
	clock := func() time.Time { return current }

	mu := &sync.Mutex{}
	productSvc := products.NewService(a.Gateway, products.WithLock(mu), products.WithClock(clock))
	saleSvc := sales.NewService(a.Gateway, sales.WithLock(mu), sales.WithClock(clock))

	lots := make([]*ledger.Product, 0, len(demoLots))
	for _, d := range demoLots {
		p, err := productSvc.Create(ctx, products.Input{
			Name:          d.name,
			PurchasePrice: types.MustMoney(d.price),
			Quantity:      d.quantity,
		})
		if err != nil {
			return 0, err
		}
		lots = append(lots, p)
	}

	count := 0
	days := int(time.Since(start).Hours() / 24)
	for day := 1; day < days; day += 1 + rnd.Intn(3) {
		current = start.AddDate(0, 0, day).Add(time.Duration(9+rnd.Intn(9)) * time.Hour)

		i := rnd.Intn(len(lots))
		lot, d := lots[i], demoLots[i]
		price := lot.PurchasePrice.Mul(types.NewMoney(d.markup)).Round(2)

		_, err := saleSvc.Register(ctx, sales.RegisterInput{
			ProductID: lot.ID,
			Quantity:  1 + rnd.Intn(5),
			SalePrice: price,
		})
		if err != nil {
			// Sold out lots are expected towards the end of the history.
			logger.Debug(ctx, "demo sale skipped", "product", lot.Name, "error", err)
			continue
		}
		count++
	}
	return count, nil
}
