package reports

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mystore/internal/core/apperror"
	"mystore/internal/core/types"
	"mystore/internal/domain/ledger"
	"mystore/internal/domain/ledger/ledgertest"
)

func TestService_Build(t *testing.T) {
	products := []ledger.Product{
		product("p1", "Caneta", "2", 100),
		product("p2", "Lápis", "1", 10),
	}
	sales := []ledger.Sale{
		saleOn("s1", "p1", 10, "5", date(2024, time.January, 10)),
		saleOn("s2", "p1", 5, "6", date(2024, time.February, 3)),
		saleOn("s3", "p2", 2, "3", date(2023, time.January, 3)),
	}
	svc := NewService(ledgertest.New(products, sales), time.UTC)

	got, err := svc.Build(context.Background(), Query{
		Period: Period{Year: 2024, Month: time.January},
		Search: "caneta",
	})
	require.NoError(t, err)

	assert.Equal(t, "Ano: 2024 | Mês: Janeiro", got.Description)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "p1", got.Items[0].ProductID)
	assert.True(t, got.PeriodProfit.Equal(types.MustMoney("30")))
	require.NotNil(t, got.Series)
	assert.Equal(t, 2, got.Series.Len())
	assert.Equal(t, []int{2024, 2023}, got.Years)
}

func TestService_Build_SearchDoesNotChangeTotals(t *testing.T) {
	products := []ledger.Product{product("p1", "A", "1", 10), product("p2", "B", "1", 10)}
	sales := []ledger.Sale{
		saleOn("s1", "p1", 1, "2", date(2024, time.May, 1)),
		saleOn("s2", "p2", 1, "3", date(2024, time.May, 2)),
	}
	svc := NewService(ledgertest.New(products, sales), time.UTC)

	all, err := svc.Build(context.Background(), Query{})
	require.NoError(t, err)
	narrowed, err := svc.Build(context.Background(), Query{Search: "zzz"})
	require.NoError(t, err)

	assert.Empty(t, narrowed.Items)
	assert.True(t, all.PeriodProfit.Equal(narrowed.PeriodProfit))
	assert.Equal(t, all.Series, narrowed.Series)
}

func TestService_Build_MonthWithoutYearIsCleared(t *testing.T) {
	svc := NewService(ledgertest.New(nil, nil), time.UTC)

	got, err := svc.Build(context.Background(), Query{Period: Period{Month: time.June}})
	require.NoError(t, err)
	assert.Equal(t, Period{}, got.Period)
	assert.Nil(t, got.Series)
}

func TestService_Build_InvalidMonth(t *testing.T) {
	svc := NewService(ledgertest.New(nil, nil), time.UTC)

	_, err := svc.Build(context.Background(), Query{Period: Period{Year: 2024, Month: 14}})
	require.Error(t, err)
	assert.True(t, apperror.HasCode(err, apperror.CodeValidation))
}

func TestService_Build_FailsOpen(t *testing.T) {
	gw := ledgertest.New([]ledger.Product{product("p1", "A", "1", 10)}, nil)
	gw.FailLoadProducts = true
	svc := NewService(gw, time.UTC)

	got, err := svc.Build(context.Background(), Query{})
	require.NoError(t, err)
	assert.Empty(t, got.Items)
	assert.True(t, got.PeriodProfit.IsZero())
}

func TestService_Periods(t *testing.T) {
	sales := []ledger.Sale{saleOn("s1", "p1", 1, "1", date(2021, time.May, 1))}
	svc := NewService(ledgertest.New(nil, sales), time.UTC)

	years, months := svc.Periods(context.Background())
	assert.Equal(t, []Option{{Label: AllYearsLabel}, {Label: "2021", Value: 2021}}, years)
	assert.Len(t, months, 13)
}
