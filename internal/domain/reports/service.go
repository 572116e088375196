package reports

import (
	"context"
	"fmt"
	"time"

	"mystore/internal/core/apperror"
	"mystore/internal/core/types"
	"mystore/internal/domain/ledger"
	"mystore/internal/domain/registers/stock"
	"mystore/pkg/logger"
)

// Query selects what the report shows.
type Query struct {
	Period Period
	// Search narrows the rows by product name. It never changes
	// the period profit or the series.
	Search string
}

// Summary is everything the report screen and the export need.
type Summary struct {
	Period       Period       `json:"period"`
	Description  string       `json:"description"`
	Items        []ItemReport `json:"items"`
	PeriodProfit types.Money  `json:"periodProfit"`
	Series       *Series      `json:"series"`
	Years        []int        `json:"years"`
	GeneratedAt  time.Time    `json:"generatedAt"`
}

// Service provides report generation operations.
type Service struct {
	gateway ledger.Gateway
	loc     *time.Location
	now     func() time.Time
}

// NewService creates a new reports service. Dates are bucketed into
// years and months in loc; nil means UTC.
func NewService(gateway ledger.Gateway, loc *time.Location) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{gateway: gateway, loc: loc, now: time.Now}
}

// Location returns the zone used for period bucketing.
func (s *Service) Location() *time.Location {
	return s.loc
}

// Build loads both collections and aggregates them for q.
// A failed load is logged by the gateway and the report renders what was read.
func (s *Service) Build(ctx context.Context, q Query) (*Summary, error) {
	period := q.Period.Normalize()
	if err := period.Validate(); err != nil {
		return nil, apperror.NewValidation(fmt.Sprintf("invalid period: %v", err))
	}

	products, _ := s.gateway.LoadProducts(ctx)
	sales, _ := s.gateway.LoadSales(ctx)

	stock.LogAnomalies(ctx, stock.Inspect(products, sales))

	report := BuildReport(products, sales, period, s.loc)
	series := BuildCumulativeSeries(FilterSales(sales, period, s.loc), products, s.loc)

	summary := &Summary{
		Period:       period,
		Description:  period.Description(),
		Items:        SearchItems(report.Items, q.Search),
		PeriodProfit: report.PeriodProfit,
		Series:       series,
		Years:        YearOptions(sales, s.loc),
		GeneratedAt:  s.now().In(s.loc),
	}

	logger.Debug(ctx, "report built",
		"year", period.Year,
		"month", int(period.Month),
		"rows", len(summary.Items),
		"period_profit", report.PeriodProfit.String(),
	)

	return summary, nil
}

// Periods returns the selectable years and months.
func (s *Service) Periods(ctx context.Context) ([]Option, []Option) {
	sales, _ := s.gateway.LoadSales(ctx)
	return YearSelectOptions(YearOptions(sales, s.loc)), MonthSelectOptions()
}
