package app

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mystore/internal/config"
	"mystore/internal/core/types"
	"mystore/internal/domain/products"
	"mystore/internal/domain/reports"
	"mystore/internal/domain/sales"
)

func TestOpen_SQLiteEndToEnd(t *testing.T) {
	ctx := context.Background()
	cfg := &config.Config{
		StoreDriver:            config.DriverSQLite,
		SQLitePath:             filepath.Join(t.TempDir(), "mystore.db"),
		StoreNamespace:         "mystore",
		StoreCompress:          true,
		StoreCompressThreshold: 128,
		Timezone:               "UTC",
		Port:                   8080,
	}

	a, err := Open(ctx, cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })

	p, err := a.Products.Create(ctx, products.Input{Name: "Caneta", PurchasePrice: types.MustMoney("2"), Quantity: 10})
	require.NoError(t, err)

	_, err = a.Sales.Register(ctx, sales.RegisterInput{ProductID: p.ID, Quantity: 4, SalePrice: types.MustMoney("5")})
	require.NoError(t, err)

	summary, err := a.Reports.Build(ctx, reports.Query{})
	require.NoError(t, err)
	require.Len(t, summary.Items, 1)
	assert.Equal(t, 6, summary.Items[0].AvailableNow)
	assert.True(t, summary.PeriodProfit.Equal(types.MustMoney("12")))
	assert.Equal(t, []int{time.Now().UTC().Year()}, summary.Years)

	assert.Empty(t, a.Stock.CheckIntegrity(ctx))
}

func TestOpenStore_UnknownDriver(t *testing.T) {
	_, err := OpenStore(context.Background(), &config.Config{StoreDriver: "tape"})
	assert.Error(t, err)
}
