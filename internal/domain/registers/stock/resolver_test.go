package stock

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mystore/internal/core/apperror"
	"mystore/internal/core/types"
	"mystore/internal/domain/ledger"
)

func lot(id, name string, qty int) ledger.Product {
	return ledger.Product{ID: id, Name: name, PurchasePrice: types.MustMoney("2"), Quantity: qty}
}

func sale(id, productID string, qty int) ledger.Sale {
	return ledger.Sale{ID: id, ProductID: productID, Quantity: qty, SalePrice: types.MustMoney("5")}
}

func TestAvailableStock(t *testing.T) {
	p := lot("p1", "Caneta", 10)
	sales := []ledger.Sale{
		sale("s1", "p1", 3),
		sale("s2", "other", 7),
		sale("s3", "p1", 2),
	}

	assert.Equal(t, 5, AvailableStock(p, sales))
	assert.Equal(t, 10, AvailableStock(p, nil))
}

func TestMaxAvailableForEdit(t *testing.T) {
	p := lot("p1", "Caneta", 10)
	editing := sale("s1", "p1", 3)
	sales := []ledger.Sale{editing, sale("s2", "p1", 4)}

	ceiling := MaxAvailableForEdit(p, sales, editing)
	assert.Equal(t, 6, ceiling)

	require.NoError(t, Check(p.ID, ceiling, ceiling))

	err := Check(p.ID, ceiling+1, ceiling)
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeInsufficientStock, appErr.Code)
	assert.Equal(t, ceiling, appErr.Details["available"])
	assert.Equal(t, ceiling+1, appErr.Details["requested"])
}

func TestAvailableLots_SkipsEmptyLots(t *testing.T) {
	products := []ledger.Product{lot("p1", "A", 5), lot("p2", "B", 2), lot("p3", "C", 1)}
	sales := []ledger.Sale{sale("s1", "p2", 2), sale("s2", "p3", 2)}

	lots := AvailableLots(products, sales)
	require.Len(t, lots, 1)
	assert.Equal(t, "p1", lots[0].Product.ID)
	assert.Equal(t, 5, lots[0].Available)
}

func TestGroupByName_SumsPerName(t *testing.T) {
	products := []ledger.Product{
		lot("p1", "Caneta", 10),
		lot("p2", "Lápis", 4),
		lot("p3", "Caneta", 6),
		lot("p4", "Borracha", 1),
	}
	sales := []ledger.Sale{sale("s1", "p1", 3), sale("s2", "p4", 1)}

	lots := AvailableLots(products, sales)
	groups := GroupByName(lots)

	require.Len(t, groups, 2)
	assert.Equal(t, LotGroup{Name: "Caneta", TotalAvailable: 13, Lots: 2}, groups[0])
	assert.Equal(t, LotGroup{Name: "Lápis", TotalAvailable: 4, Lots: 1}, groups[1])

	for _, g := range groups {
		sum := 0
		for _, l := range LotsByName(lots, g.Name) {
			sum += AvailableStock(l.Product, sales)
		}
		assert.Equal(t, g.TotalAvailable, sum, g.Name)
	}
}

func TestGroupByName_IgnoresNonPositive(t *testing.T) {
	lots := []LotStock{
		{Product: lot("p1", "A", 1), Available: 0},
		{Product: lot("p2", "A", 1), Available: -2},
	}
	assert.Empty(t, GroupByName(lots))
	assert.Empty(t, LotsByName(lots, "A"))
}

func TestInspect(t *testing.T) {
	products := []ledger.Product{lot("p1", "A", 2)}
	sales := []ledger.Sale{sale("s1", "p1", 3), sale("s2", "gone", 1)}

	anomalies := Inspect(products, sales)
	require.Len(t, anomalies, 2)
	assert.Equal(t, AnomalyOrphanedSale, anomalies[0].Kind)
	assert.Equal(t, "s2", anomalies[0].SaleID)
	assert.Equal(t, AnomalyNegativeStock, anomalies[1].Kind)
	assert.Equal(t, -1, anomalies[1].Available)
}
