package ledger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mystore/internal/core/apperror"
	"mystore/internal/core/types"
)

func TestProduct_Validate(t *testing.T) {
	tests := []struct {
		name  string
		p     Product
		field string
	}{
		{"valid", Product{Name: "Caneta", PurchasePrice: types.MustMoney("1.5"), Quantity: 1}, ""},
		{"blank name", Product{Name: "   ", PurchasePrice: types.MustMoney("1"), Quantity: 1}, "name"},
		{"zero price", Product{Name: "Caneta", PurchasePrice: types.Zero(), Quantity: 1}, "purchasePrice"},
		{"negative price", Product{Name: "Caneta", PurchasePrice: types.MustMoney("-1"), Quantity: 1}, "purchasePrice"},
		{"zero quantity", Product{Name: "Caneta", PurchasePrice: types.MustMoney("1")}, "quantity"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.p.Validate(context.Background())
			if tt.field == "" {
				require.NoError(t, err)
				return
			}
			appErr, ok := apperror.AsAppError(err)
			require.True(t, ok)
			assert.Equal(t, apperror.CodeValidation, appErr.Code)
			assert.Equal(t, tt.field, appErr.Details["field"])
		})
	}
}

func TestSale_Validate(t *testing.T) {
	ok := Sale{ProductID: "p1", Quantity: 1, SalePrice: types.MustMoney("2")}
	require.NoError(t, ok.Validate(context.Background()))

	missing := ok
	missing.ProductID = ""
	assert.True(t, apperror.HasCode(missing.Validate(context.Background()), apperror.CodeValidation))

	free := ok
	free.SalePrice = types.Zero()
	assert.Error(t, free.Validate(context.Background()))
}

func TestSale_Money(t *testing.T) {
	p := &Product{ID: "p1", PurchasePrice: types.MustMoney("2.10")}
	s := Sale{ProductID: "p1", Quantity: 3, SalePrice: types.MustMoney("3.05")}

	assert.True(t, s.Cost(p).Equal(types.MustMoney("6.30")))
	assert.True(t, s.Revenue().Equal(types.MustMoney("9.15")))
	assert.True(t, s.Profit(p).Equal(types.MustMoney("2.85")))
	assert.False(t, s.Dated())
}

func TestCollections(t *testing.T) {
	products := []Product{{ID: "p1", Quantity: 5}, {ID: "p2", Quantity: 2}}
	sales := []Sale{
		{ID: "s1", ProductID: "p1", Quantity: 2},
		{ID: "s2", ProductID: "gone", Quantity: 1},
		{ID: "s3", ProductID: "p1", Quantity: 1},
	}

	assert.Equal(t, 1, FindProduct(products, "p2"))
	assert.Equal(t, -1, FindProduct(products, "p9"))
	assert.Equal(t, 2, FindSale(sales, "s3"))
	assert.Equal(t, -1, FindSale(sales, "s9"))

	assert.Equal(t, 3, SoldQuantity(sales, "p1"))
	assert.Len(t, SalesOf(sales, "p1"), 2)

	orphans := Orphans(products, sales)
	require.Len(t, orphans, 1)
	assert.Equal(t, "s2", orphans[0].ID)

	assert.Len(t, WithoutProduct(products, "p1"), 1)
	assert.Len(t, products, 2, "input is not modified")
	assert.Equal(t, []string{"s1", "s3"}, []string{WithoutSale(sales, "s2")[0].ID, WithoutSale(sales, "s2")[1].ID})
}
