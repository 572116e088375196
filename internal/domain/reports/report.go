package reports

import (
	"strings"
	"time"

	"mystore/internal/core/types"
	"mystore/internal/domain/ledger"
)

// ItemReport is one lot's row of the report.
// TotalEntered and AvailableNow describe the current stock position and
// ignore the period. SoldInPeriod and ProfitInPeriod only count sales
// inside the period. LastSaleDate looks at every sale of the lot.
type ItemReport struct {
	ProductID      string      `json:"productId"`
	Name           string      `json:"name"`
	PurchasePrice  types.Money `json:"purchasePrice"`
	TotalEntered   int         `json:"totalEntered"`
	SoldInPeriod   int         `json:"soldInPeriod"`
	AvailableNow   int         `json:"availableNow"`
	ProfitInPeriod types.Money `json:"profitInPeriod"`
	LastSaleDate   *time.Time  `json:"lastSaleDate"`
}

// Report is the aggregated view for one period.
type Report struct {
	Items        []ItemReport `json:"items"`
	PeriodProfit types.Money  `json:"periodProfit"`
}

type lotTotals struct {
	soldAll    int
	soldPeriod int
	profit     types.Money
	lastSale   time.Time
}

// BuildReport computes one row per product, whether or not it sold, plus
// the total profit of the period. Sales whose lot no longer exists are
// ignored. Amounts accumulate at full precision.
func BuildReport(products []ledger.Product, sales []ledger.Sale, period Period, loc *time.Location) Report {
	index := ledger.Index(products)
	totals := make(map[string]*lotTotals, len(products))

	periodProfit := types.Zero()
	for _, s := range sales {
		p, ok := index[s.ProductID]
		if !ok {
			continue
		}
		t := totals[s.ProductID]
		if t == nil {
			t = &lotTotals{profit: types.Zero()}
			totals[s.ProductID] = t
		}

		t.soldAll += s.Quantity
		if s.Date.After(t.lastSale) {
			t.lastSale = s.Date
		}

		if period.Matches(s, loc) {
			profit := s.Profit(p)
			t.soldPeriod += s.Quantity
			t.profit = t.profit.Add(profit)
			periodProfit = periodProfit.Add(profit)
		}
	}

	items := make([]ItemReport, 0, len(products))
	for _, p := range products {
		item := ItemReport{
			ProductID:      p.ID,
			Name:           p.Name,
			PurchasePrice:  p.PurchasePrice,
			TotalEntered:   p.Quantity,
			AvailableNow:   p.Quantity,
			ProfitInPeriod: types.Zero(),
		}
		if t := totals[p.ID]; t != nil {
			item.SoldInPeriod = t.soldPeriod
			item.AvailableNow = p.Quantity - t.soldAll
			item.ProfitInPeriod = t.profit
			if !t.lastSale.IsZero() {
				last := t.lastSale
				item.LastSaleDate = &last
			}
		}
		items = append(items, item)
	}

	return Report{Items: items, PeriodProfit: periodProfit}
}

// SearchItems keeps the rows whose name contains term, ignoring case.
// A blank term keeps every row.
func SearchItems(items []ItemReport, term string) []ItemReport {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return items
	}
	out := make([]ItemReport, 0, len(items))
	for _, it := range items {
		if strings.Contains(strings.ToLower(it.Name), term) {
			out = append(out, it)
		}
	}
	return out
}
