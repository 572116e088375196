package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"mystore/internal/core/types"
	"mystore/internal/domain/reports"
)

// ReportRequest selects the report period. Zero means "all".
type ReportRequest struct {
	Year   int    `form:"year" validate:"min=0,max=9999"`
	Month  int    `form:"month" validate:"min=0,max=12"`
	Search string `form:"search" validate:"max=200"`
	Format string `form:"format"`
}

// ToQuery converts the request to a report query.
func (r ReportRequest) ToQuery() reports.Query {
	return reports.Query{
		Period: reports.Period{Year: r.Year, Month: time.Month(r.Month)},
		Search: r.Search,
	}
}

// ItemReportResponse is one product row of the report.
type ItemReportResponse struct {
	ProductID      string          `json:"productId"`
	Name           string          `json:"name"`
	PurchasePrice  decimal.Decimal `json:"purchasePrice"`
	TotalEntered   int             `json:"totalEntered"`
	SoldInPeriod   int             `json:"soldInPeriod"`
	AvailableNow   int             `json:"availableNow"`
	ProfitInPeriod decimal.Decimal `json:"profitInPeriod"`
	LastSaleDate   *time.Time      `json:"lastSaleDate"`
}

// SeriesResponse is the cumulative chart in plain numbers.
type SeriesResponse struct {
	Labels  []string  `json:"labels"`
	Cost    []float64 `json:"cost"`
	Revenue []float64 `json:"revenue"`
}

// PeriodResponse echoes the applied period after normalization.
type PeriodResponse struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

// SummaryResponse is the full report screen payload.
type SummaryResponse struct {
	Period        PeriodResponse       `json:"period"`
	Description   string               `json:"description"`
	PeriodProfit  decimal.Decimal      `json:"periodProfit"`
	ProfitDisplay string               `json:"profitDisplay"`
	Items         []ItemReportResponse `json:"items"`
	Series        *SeriesResponse      `json:"series"`
	Years         []reports.Option     `json:"years"`
	Months        []reports.Option     `json:"months"`
	GeneratedAt   time.Time            `json:"generatedAt"`
}

// PeriodsResponse lists the selectable filter values.
type PeriodsResponse struct {
	Years  []reports.Option `json:"years"`
	Months []reports.Option `json:"months"`
}

// FromSummary converts a built report to response DTO.
func FromSummary(s *reports.Summary) SummaryResponse {
	items := make([]ItemReportResponse, len(s.Items))
	for i, it := range s.Items {
		items[i] = ItemReportResponse{
			ProductID:      it.ProductID,
			Name:           it.Name,
			PurchasePrice:  it.PurchasePrice,
			TotalEntered:   it.TotalEntered,
			SoldInPeriod:   it.SoldInPeriod,
			AvailableNow:   it.AvailableNow,
			ProfitInPeriod: it.ProfitInPeriod,
			LastSaleDate:   it.LastSaleDate,
		}
	}

	return SummaryResponse{
		Period:        PeriodResponse{Year: s.Period.Year, Month: int(s.Period.Month)},
		Description:   s.Description,
		PeriodProfit:  s.PeriodProfit,
		ProfitDisplay: types.Format(s.PeriodProfit),
		Items:         items,
		Series:        FromSeries(s.Series),
		Years:         reports.YearSelectOptions(s.Years),
		Months:        reports.MonthSelectOptions(),
		GeneratedAt:   s.GeneratedAt,
	}
}

// FromSeries converts money points to floats for chart renderers.
// Nil stays nil: no qualifying sales means no chart.
func FromSeries(s *reports.Series) *SeriesResponse {
	if s == nil {
		return nil
	}
	out := &SeriesResponse{
		Labels:  s.Labels,
		Cost:    make([]float64, len(s.Cost)),
		Revenue: make([]float64, len(s.Revenue)),
	}
	for i := range s.Cost {
		out.Cost[i] = types.Float(s.Cost[i])
	}
	for i := range s.Revenue {
		out.Revenue[i] = types.Float(s.Revenue[i])
	}
	return out
}
