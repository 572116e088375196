// Package main renders the stock and profit report to a file.
//
// Usage:
//
//	export -year 2024 -month 3 -format pdf -out ./exports
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"mystore/internal/app"
	"mystore/internal/config"
	appctx "mystore/internal/core/context"
	"mystore/internal/domain/reports"
	"mystore/internal/infrastructure/export"
	"mystore/pkg/logger"
)

func main() {
	year := flag.Int("year", 0, "report year (0 = all years)")
	month := flag.Int("month", 0, "report month 1-12 (0 = all months, ignored without -year)")
	format := flag.String("format", "pdf", "output format: pdf or html")
	out := flag.String("out", "", "output directory (default EXPORT_DIR)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(logger.Config{Level: cfg.LogLevel, Development: cfg.IsDevelopment()})
	if err != nil {
		fmt.Printf("failed to create logger: %v\n", err)
		os.Exit(1)
	}
	log = log.WithComponent("export")
	logger.SetDefault(log)

	f, err := export.ParseFormat(*format)
	if err != nil {
		log.Fatalw("invalid format", "error", err)
	}

	dir := *out
	if dir == "" {
		dir = cfg.ExportDir
	}

	ctx := appctx.WithTrace(context.Background(), appctx.NewTraceContext())

	a, err := app.Open(ctx, cfg)
	if err != nil {
		log.Fatalw("failed to open store", "error", err)
	}
	defer func() { _ = a.Close() }()

	summary, err := a.Reports.Build(ctx, reports.Query{
		Period: reports.Period{Year: *year, Month: time.Month(*month)},
	})
	if err != nil {
		log.Fatalw("failed to build report", "error", err)
	}

	path, err := export.SaveFile(dir, f, summary)
	if err != nil {
		log.Fatalw("failed to write report", "error", err)
	}

	log.Infow("report exported",
		"path", path,
		"period", summary.Description,
		"rows", len(summary.Items),
	)
}
