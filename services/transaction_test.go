package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wings/models"
	"wings/store"
)

func newTestStore(t *testing.T, products ...models.Product) *store.Store {
	t.Helper()
	st := store.New(t.TempDir())
	require.NoError(t, st.Init())
	if len(products) > 0 {
		require.NoError(t, st.UpdateProducts(func([]models.Product) ([]models.Product, error) {
			return products, nil
		}))
	}
	return st
}

func TestSellDecrementsStockAndLogs(t *testing.T) {
	st := newTestStore(t, models.Product{ID: "1", Name: "Tea", Price: 5.00, Quantity: 10})
	txn := NewTransactionService(st)

	sale, err := txn.Sell("Tea", 3)
	require.NoError(t, err)

	assert.Equal(t, "Tea", sale.ProductName)
	assert.Equal(t, 3, sale.Quantity)
	assert.Equal(t, 5.00, sale.Price)
	assert.Equal(t, 15.00, sale.Revenue)
	assert.False(t, sale.Date.IsZero())

	products, err := st.Products()
	require.NoError(t, err)
	assert.Equal(t, 7, products[0].Quantity)

	sales, err := st.Sales()
	require.NoError(t, err)
	require.Len(t, sales, 1)
	assert.Equal(t, 15.00, sales[0].Revenue)

	entries, err := st.InventoryEntries()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, models.EntryDeduction, entries[0].Type)
	assert.Equal(t, 3, entries[0].Quantity)
	assert.Equal(t, 10, entries[0].PreviousQuantity)
}

func TestSellInsufficientStockChangesNothing(t *testing.T) {
	st := newTestStore(t, models.Product{ID: "1", Name: "Tea", Price: 5, Quantity: 2})
	txn := NewTransactionService(st)

	_, err := txn.Sell("Tea", 3)
	assert.ErrorIs(t, err, ErrInsufficientStock)

	products, err := st.Products()
	require.NoError(t, err)
	assert.Equal(t, 2, products[0].Quantity)

	sales, err := st.Sales()
	require.NoError(t, err)
	assert.Empty(t, sales)

	entries, err := st.InventoryEntries()
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSellExactStockSucceeds(t *testing.T) {
	st := newTestStore(t, models.Product{ID: "1", Name: "Tea", Price: 5, Quantity: 3})
	txn := NewTransactionService(st)

	_, err := txn.Sell("Tea", 3)
	require.NoError(t, err)

	products, err := st.Products()
	require.NoError(t, err)
	assert.Equal(t, 0, products[0].Quantity)
}

func TestSellUnknownProduct(t *testing.T) {
	st := newTestStore(t, models.Product{ID: "1", Name: "Tea", Price: 5, Quantity: 10})
	txn := NewTransactionService(st)

	_, err := txn.Sell("Coffee", 1)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestSellNonPositiveQuantity(t *testing.T) {
	st := newTestStore(t, models.Product{ID: "1", Name: "Tea", Price: 5, Quantity: 10})
	txn := NewTransactionService(st)

	for _, q := range []int{0, -3} {
		_, err := txn.Sell("Tea", q)
		assert.ErrorIs(t, err, ErrInvalidQuantity)
	}

	products, err := st.Products()
	require.NoError(t, err)
	assert.Equal(t, 10, products[0].Quantity)
}

func TestSellUsesFirstMatchingName(t *testing.T) {
	st := newTestStore(t,
		models.Product{ID: "1", Name: "Tea", Price: 5, Quantity: 10},
		models.Product{ID: "2", Name: "Tea", Price: 9, Quantity: 4},
	)
	txn := NewTransactionService(st)

	sale, err := txn.Sell("Tea", 1)
	require.NoError(t, err)
	assert.Equal(t, 5.0, sale.Price)

	products, err := st.Products()
	require.NoError(t, err)
	assert.Equal(t, 9, products[0].Quantity)
	assert.Equal(t, 4, products[1].Quantity)
}

func TestRestockIncrementsAndLogsPreviousQuantity(t *testing.T) {
	st := newTestStore(t, models.Product{ID: "1", Name: "Tea", Price: 5, Quantity: 7})
	txn := NewTransactionService(st)

	require.NoError(t, txn.Restock("Tea", 5))

	products, err := st.Products()
	require.NoError(t, err)
	assert.Equal(t, 12, products[0].Quantity)

	entries, err := st.InventoryEntries()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, models.EntryAddition, entries[0].Type)
	assert.Equal(t, 5, entries[0].Quantity)
	assert.Equal(t, 7, entries[0].PreviousQuantity)
}

func TestRestockUnknownProduct(t *testing.T) {
	st := newTestStore(t, models.Product{ID: "1", Name: "Tea", Price: 5, Quantity: 10})
	txn := NewTransactionService(st)

	err := txn.Restock("Coffee", 5)
	assert.ErrorIs(t, err, ErrProductNotFound)

	entries, err := st.InventoryEntries()
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRestockNonPositiveQuantity(t *testing.T) {
	st := newTestStore(t, models.Product{ID: "1", Name: "Tea", Price: 5, Quantity: 10})
	txn := NewTransactionService(st)

	assert.ErrorIs(t, txn.Restock("Tea", 0), ErrInvalidQuantity)
	assert.ErrorIs(t, txn.Restock("Tea", -1), ErrInvalidQuantity)

	products, err := st.Products()
	require.NoError(t, err)
	assert.Equal(t, 10, products[0].Quantity)
}

func TestSellFailedSaleAppendKeepsStockChange(t *testing.T) {
	dir := t.TempDir()
	st := store.New(dir)
	require.NoError(t, st.Init())
	require.NoError(t, st.UpdateProducts(func([]models.Product) ([]models.Product, error) {
		return []models.Product{{ID: "1", Name: "Tea", Price: 5, Quantity: 10}}, nil
	}))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sales.json"), []byte("not json"), 0o644))

	txn := NewTransactionService(st)
	_, err := txn.Sell("Tea", 3)
	assert.Error(t, err)

	// the product write already happened; the failed sale append does not
	// roll it back, and the deduction entry is never written
	products, err := st.Products()
	require.NoError(t, err)
	assert.Equal(t, 7, products[0].Quantity)

	entries, err := st.InventoryEntries()
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSellFailedInventoryAppendKeepsSale(t *testing.T) {
	dir := t.TempDir()
	st := store.New(dir)
	require.NoError(t, st.Init())
	require.NoError(t, st.UpdateProducts(func([]models.Product) ([]models.Product, error) {
		return []models.Product{{ID: "1", Name: "Tea", Price: 5, Quantity: 10}}, nil
	}))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "inventory.json"), []byte("not json"), 0o644))

	txn := NewTransactionService(st)
	_, err := txn.Sell("Tea", 3)
	assert.Error(t, err)

	products, err := st.Products()
	require.NoError(t, err)
	assert.Equal(t, 7, products[0].Quantity)

	sales, err := st.Sales()
	require.NoError(t, err)
	require.Len(t, sales, 1)
	assert.Equal(t, 15.0, sales[0].Revenue)
}

func TestRestockFailedInventoryAppendKeepsStockChange(t *testing.T) {
	dir := t.TempDir()
	st := store.New(dir)
	require.NoError(t, st.Init())
	require.NoError(t, st.UpdateProducts(func([]models.Product) ([]models.Product, error) {
		return []models.Product{{ID: "1", Name: "Tea", Price: 5, Quantity: 10}}, nil
	}))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "inventory.json"), []byte("not json"), 0o644))

	txn := NewTransactionService(st)
	err := txn.Restock("Tea", 5)
	assert.Error(t, err)

	products, err := st.Products()
	require.NoError(t, err)
	assert.Equal(t, 15, products[0].Quantity)
}

func TestConcurrentSellsNeverOversell(t *testing.T) {
	st := newTestStore(t, models.Product{ID: "1", Name: "Tea", Price: 5, Quantity: 10})
	txn := NewTransactionService(st)

	done := make(chan error, 20)
	for i := 0; i < 20; i++ {
		go func() {
			_, err := txn.Sell("Tea", 1)
			done <- err
		}()
	}

	succeeded := 0
	for i := 0; i < 20; i++ {
		if err := <-done; err == nil {
			succeeded++
		}
	}
	assert.Equal(t, 10, succeeded)

	products, err := st.Products()
	require.NoError(t, err)
	assert.Equal(t, 0, products[0].Quantity)

	sales, err := st.Sales()
	require.NoError(t, err)
	assert.Len(t, sales, 10)
}
