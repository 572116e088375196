package reports

import (
	"sort"
	"time"

	"mystore/internal/core/types"
	"mystore/internal/domain/ledger"
)

// ShortDateLayout is the "dd/MM" label format of series points.
const ShortDateLayout = "02/01"

// blankLabel pads a single-point series so a line renderer gets a segment.
const blankLabel = " "

// Series is a cumulative cost-vs-revenue series in sale order.
// Labels, Cost and Revenue always have the same length.
type Series struct {
	Labels  []string      `json:"labels"`
	Cost    []types.Money `json:"cost"`
	Revenue []types.Money `json:"revenue"`
}

// Len returns the number of points.
func (s *Series) Len() int {
	return len(s.Labels)
}

// BuildCumulativeSeries walks the resolvable, dated sales in chronological
// order and emits the running cost and revenue after each one.
// It returns nil when no sale qualifies.
func BuildCumulativeSeries(sales []ledger.Sale, products []ledger.Product, loc *time.Location) *Series {
	index := ledger.Index(products)

	valid := make([]ledger.Sale, 0, len(sales))
	for _, s := range sales {
		if _, ok := index[s.ProductID]; ok && s.Dated() {
			valid = append(valid, s)
		}
	}
	if len(valid) == 0 {
		return nil
	}

	sort.SliceStable(valid, func(i, j int) bool {
		return valid[i].Date.Before(valid[j].Date)
	})

	series := &Series{
		Labels:  make([]string, 0, len(valid)+1),
		Cost:    make([]types.Money, 0, len(valid)+1),
		Revenue: make([]types.Money, 0, len(valid)+1),
	}

	cost, revenue := types.Zero(), types.Zero()
	for _, s := range valid {
		cost = cost.Add(s.Cost(index[s.ProductID]))
		revenue = revenue.Add(s.Revenue())

		series.Labels = append(series.Labels, s.Date.In(loc).Format(ShortDateLayout))
		series.Cost = append(series.Cost, cost)
		series.Revenue = append(series.Revenue, revenue)
	}

	if series.Len() == 1 {
		series.Labels = append(series.Labels, blankLabel)
		series.Cost = append(series.Cost, cost)
		series.Revenue = append(series.Revenue, revenue)
	}

	return series
}
