package storage_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mystore/internal/core/apperror"
	"mystore/internal/core/types"
	"mystore/internal/domain/ledger"
	"mystore/internal/infrastructure/storage"
	"mystore/internal/infrastructure/storage/memory"
)

func newCodec(t *testing.T, compress bool) *storage.Codec {
	t.Helper()
	c, err := storage.NewCodec(storage.CodecConfig{Compress: compress, Threshold: 64})
	require.NoError(t, err)
	t.Cleanup(c.Close)
	return c
}

func sampleProducts(n int) []ledger.Product {
	out := make([]ledger.Product, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, ledger.Product{
			ID:            fmt.Sprintf("p%03d", i),
			Name:          fmt.Sprintf("Produto %d", i%7),
			PurchasePrice: types.MustMoney("2.50"),
			Quantity:      10 + i,
			EntryDate:     time.Date(2024, time.January, 1+i%28, 9, 30, 0, 0, time.UTC),
		})
	}
	return out
}

func sampleSales(n int) []ledger.Sale {
	out := make([]ledger.Sale, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, ledger.Sale{
			ID:          fmt.Sprintf("s%03d", i),
			ProductID:   fmt.Sprintf("p%03d", i%5),
			ProductName: "Produto",
			Quantity:    1 + i%3,
			SalePrice:   types.MustMoney("4.99"),
			Date:        time.Date(2024, time.February, 1+i%28, 15, 0, 0, 0, time.UTC),
		})
	}
	return out
}

// requireSameProducts compares field by field; decimals compare by value.
func requireSameProducts(t *testing.T, want, got []ledger.Product) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, want[i].ID, got[i].ID)
		assert.Equal(t, want[i].Name, got[i].Name)
		assert.Equal(t, want[i].Quantity, got[i].Quantity)
		assert.True(t, want[i].PurchasePrice.Equal(got[i].PurchasePrice))
		assert.True(t, want[i].EntryDate.Equal(got[i].EntryDate))
	}
}

func requireSameSales(t *testing.T, want, got []ledger.Sale) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, want[i].ID, got[i].ID)
		assert.Equal(t, want[i].ProductID, got[i].ProductID)
		assert.Equal(t, want[i].ProductName, got[i].ProductName)
		assert.Equal(t, want[i].Quantity, got[i].Quantity)
		assert.True(t, want[i].SalePrice.Equal(got[i].SalePrice))
		assert.True(t, want[i].Date.Equal(got[i].Date))
	}
}

func TestGateway_RoundTrip(t *testing.T) {
	for _, compress := range []bool{false, true} {
		for _, n := range []int{0, 1, 50} {
			t.Run(fmt.Sprintf("compress=%v/n=%d", compress, n), func(t *testing.T) {
				ctx := context.Background()
				gw := storage.NewGateway(memory.New(), newCodec(t, compress), "test")

				products, sales := sampleProducts(n), sampleSales(n)
				require.NoError(t, gw.SaveProducts(ctx, products))
				require.NoError(t, gw.SaveSales(ctx, sales))

				gotProducts, err := gw.LoadProducts(ctx)
				require.NoError(t, err)
				requireSameProducts(t, products, gotProducts)

				gotSales, err := gw.LoadSales(ctx)
				require.NoError(t, err)
				requireSameSales(t, sales, gotSales)
			})
		}
	}
}

func TestGateway_MissingKeyIsEmpty(t *testing.T) {
	gw := storage.NewGateway(memory.New(), newCodec(t, false), "test")

	products, err := gw.LoadProducts(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, products)
	assert.Empty(t, products)
}

func TestGateway_NilIsSavedAsEmptyArray(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	gw := storage.NewGateway(store, newCodec(t, false), "test")

	require.NoError(t, gw.SaveSales(ctx, nil))

	raw, err := store.Get(ctx, storage.Key("test", storage.CollectionSales))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(raw))

	sales, err := gw.LoadSales(ctx)
	require.NoError(t, err)
	assert.NotNil(t, sales)
}

func TestGateway_CorruptSnapshotFailsOpen(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	require.NoError(t, store.Put(ctx, storage.Key("test", storage.CollectionProducts), []byte("{not json")))
	gw := storage.NewGateway(store, newCodec(t, false), "test")

	products, err := gw.LoadProducts(ctx)
	assert.True(t, apperror.IsPersistence(err))
	assert.NotNil(t, products)
	assert.Empty(t, products)
}

type brokenStore struct{ storage.Store }

var errBroken = errors.New("disk on fire")

func (brokenStore) Get(context.Context, string) ([]byte, error) { return nil, errBroken }
func (brokenStore) Put(context.Context, string, []byte) error   { return errBroken }

func TestGateway_StoreFailures(t *testing.T) {
	ctx := context.Background()
	gw := storage.NewGateway(brokenStore{}, newCodec(t, false), "test")

	sales, err := gw.LoadSales(ctx)
	assert.Empty(t, sales)
	require.Error(t, err)
	assert.True(t, apperror.IsPersistence(err))
	assert.ErrorIs(t, err, errBroken)

	err = gw.SaveProducts(ctx, sampleProducts(1))
	assert.True(t, apperror.IsPersistence(err))
}

func TestCodec_CompressedAndPlainDecodeAlike(t *testing.T) {
	products := sampleProducts(40)

	plain, err := newCodec(t, false).Encode(products)
	require.NoError(t, err)
	packed, err := newCodec(t, true).Encode(products)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(string(plain), "["))
	assert.NotEqual(t, plain, packed)
	assert.Less(t, len(packed), len(plain))

	// Either codec reads either form.
	reader := newCodec(t, false)
	var fromPlain, fromPacked []ledger.Product
	require.NoError(t, reader.Decode(plain, &fromPlain))
	require.NoError(t, reader.Decode(packed, &fromPacked))
	requireSameProducts(t, fromPlain, fromPacked)
	requireSameProducts(t, products, fromPacked)
}

func TestCodec_SmallSnapshotsStayPlain(t *testing.T) {
	data, err := newCodec(t, true).Encode([]ledger.Product{})
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestKey(t *testing.T) {
	assert.Equal(t, "mystore:products", storage.Key("mystore", storage.CollectionProducts))
	assert.Equal(t, "sales", storage.Key("", storage.CollectionSales))
}
