// Package reports aggregates the ledger into the period report and the
// cumulative cost/revenue series.
package reports

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"mystore/internal/domain/ledger"
)

// Labels shown for the "no filter" options.
const (
	AllYearsLabel  = "Todos os Anos"
	AllMonthsLabel = "Todos os Meses"
	allLabel       = "Todos"
)

var monthNames = [12]string{
	"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
	"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
}

// MonthName returns the Portuguese name of m, or "" when m is out of range.
func MonthName(m time.Month) string {
	if m < time.January || m > time.December {
		return ""
	}
	return monthNames[m-1]
}

// Period is the year/month window of the report.
// Zero Year means all years, zero Month means all months.
type Period struct {
	Year  int        `json:"year,omitempty"`
	Month time.Month `json:"month,omitempty"`
}

// Normalize clears the month when no year is selected.
func (p Period) Normalize() Period {
	if p.Year == 0 {
		p.Month = 0
	}
	return p
}

// Validate rejects months outside January..December and negative years.
func (p Period) Validate() error {
	if p.Year < 0 {
		return fmt.Errorf("invalid year %d", p.Year)
	}
	if p.Month != 0 && MonthName(p.Month) == "" {
		return fmt.Errorf("invalid month %d", p.Month)
	}
	return nil
}

// IsAll reports whether the period selects every sale.
func (p Period) IsAll() bool {
	return p.Year == 0 && p.Month == 0
}

// Matches reports whether sale s falls inside the period, with its date
// read in loc. Undated sales only match when no year or month is set.
func (p Period) Matches(s ledger.Sale, loc *time.Location) bool {
	if p.IsAll() {
		return true
	}
	if !s.Dated() {
		return false
	}
	t := s.Date.In(loc)
	if p.Year != 0 && t.Year() != p.Year {
		return false
	}
	if p.Month != 0 && t.Month() != p.Month {
		return false
	}
	return true
}

// Description renders the period as "Ano: 2024 | Mês: Janeiro".
func (p Period) Description() string {
	year, month := allLabel, allLabel
	if p.Year != 0 {
		year = strconv.Itoa(p.Year)
	}
	if name := MonthName(p.Month); name != "" {
		month = name
	}
	return fmt.Sprintf("Ano: %s | Mês: %s", year, month)
}

// FilterSales returns the sales inside the period, in input order.
func FilterSales(sales []ledger.Sale, p Period, loc *time.Location) []ledger.Sale {
	out := make([]ledger.Sale, 0, len(sales))
	for _, s := range sales {
		if p.Matches(s, loc) {
			out = append(out, s)
		}
	}
	return out
}

// YearOptions returns the distinct years of all dated sales, most recent first.
func YearOptions(sales []ledger.Sale, loc *time.Location) []int {
	seen := make(map[int]struct{})
	var years []int
	for _, s := range sales {
		if !s.Dated() {
			continue
		}
		y := s.Date.In(loc).Year()
		if _, ok := seen[y]; ok {
			continue
		}
		seen[y] = struct{}{}
		years = append(years, y)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years
}

// Option is one selectable filter value. Value 0 stands for "all".
type Option struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

// YearSelectOptions prefixes the year list with the "all years" choice.
func YearSelectOptions(years []int) []Option {
	out := make([]Option, 0, len(years)+1)
	out = append(out, Option{Label: AllYearsLabel})
	for _, y := range years {
		out = append(out, Option{Label: strconv.Itoa(y), Value: y})
	}
	return out
}

// MonthSelectOptions is the fixed twelve-month list plus "all months".
func MonthSelectOptions() []Option {
	out := make([]Option, 0, 13)
	out = append(out, Option{Label: AllMonthsLabel})
	for m := time.January; m <= time.December; m++ {
		out = append(out, Option{Label: MonthName(m), Value: int(m)})
	}
	return out
}
