package seller

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleOrders() []Order {
	return []Order{
		{
			ID:      "64f0a1",
			Amount:  decimal.NewFromInt(500),
			Status:  StatusOrderPlaced,
			Address: Address{FirstName: "Asha", LastName: "Verma", City: "Pune"},
		},
		{
			ID:      "64f0a2",
			Amount:  decimal.NewFromFloat(249.99),
			Status:  StatusShipped,
			Address: Address{FirstName: "Ravi", LastName: "Iyer", City: "Chennai"},
		},
		{
			ID:      "64f0a3",
			Amount:  decimal.NewFromInt(1200),
			Status:  StatusDelivered,
			Address: Address{FirstName: "Asha", LastName: "Verma", City: "Pune"},
		},
	}
}

func TestSearchOrders(t *testing.T) {
	orders := sampleOrders()

	t.Run("empty query returns a copy of everything", func(t *testing.T) {
		got := SearchOrders(orders, "  ")
		assert.Len(t, got, 3)
		got[0].ID = "mutated"
		assert.Equal(t, "64f0a1", orders[0].ID)
	})

	t.Run("matches customer name case-insensitively", func(t *testing.T) {
		got := SearchOrders(orders, "asha")
		assert.Len(t, got, 2)
	})

	t.Run("matches order id", func(t *testing.T) {
		got := SearchOrders(orders, "64f0a2")
		require.Len(t, got, 1)
		assert.Equal(t, "Ravi Iyer", got[0].Address.FullName())
	})

	t.Run("matches amount", func(t *testing.T) {
		got := SearchOrders(orders, "249.99")
		assert.Len(t, got, 1)
	})

	t.Run("no match", func(t *testing.T) {
		assert.Empty(t, SearchOrders(orders, "zzz"))
	})
}

func TestFilterOrdersByStatus(t *testing.T) {
	orders := sampleOrders()
	assert.Len(t, FilterOrdersByStatus(orders, StatusShipped), 1)
	assert.Len(t, FilterOrdersByStatus(orders, ""), 3)
	assert.Empty(t, FilterOrdersByStatus(orders, StatusPacking))
}

func TestSummarizeOrders(t *testing.T) {
	stats := SummarizeOrders(sampleOrders())
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 1, stats.Pending)
	assert.Equal(t, 1, stats.Delivered)
	assert.True(t, stats.Revenue.Equal(decimal.NewFromFloat(1949.99)))

	empty := SummarizeOrders(nil)
	assert.Equal(t, 0, empty.Total)
	assert.True(t, empty.Revenue.IsZero())
}

func TestActiveShipments(t *testing.T) {
	got := ActiveShipments(sampleOrders())
	require.Len(t, got, 1)
	assert.Equal(t, StatusShipped, got[0].Status)
}

func TestSearchProducts(t *testing.T) {
	products := []Product{
		{Name: "Denim Jacket", Category: "Fashion"},
		{Name: "Cookbook", Category: "Books"},
	}
	assert.Len(t, SearchProducts(products, "denim"), 1)
	assert.Len(t, SearchProducts(products, "books"), 1)
	assert.Len(t, SearchProducts(products, ""), 2)
	assert.Empty(t, SearchProducts(products, "electronics"))
}

func TestFilterProductsByCategory(t *testing.T) {
	products := []Product{
		{Name: "Denim Jacket", Category: "Fashion"},
		{Name: "Cookbook", Category: "Books"},
	}
	got := FilterProductsByCategory(products, "Fashion")
	require.Len(t, got, 1)
	assert.Equal(t, "Denim Jacket", got[0].Name)
	assert.Len(t, FilterProductsByCategory(products, ""), 2)
}

func TestLowStock(t *testing.T) {
	items := []InventoryItem{
		{ID: "i1", Name: "Jacket", Quantity: 7},
		{ID: "i2", Name: "Cookbook", Quantity: 2},
		{ID: "i3", Name: "Mug", Quantity: 5},
	}
	got := LowStock(items, 5)
	require.Len(t, got, 2)
	// Lowest stock first
	assert.Equal(t, "Cookbook", got[0].Name)
	assert.Equal(t, "Mug", got[1].Name)

	assert.Empty(t, LowStock(items, 0))
}

func TestDeriveCustomers(t *testing.T) {
	customers := DeriveCustomers(sampleOrders())
	require.Len(t, customers, 2)

	// Sorted by total spend descending
	assert.Equal(t, "Asha Verma", customers[0].Name)
	assert.Equal(t, 2, customers[0].OrderCount)
	assert.True(t, customers[0].TotalSpent.Equal(decimal.NewFromInt(1700)))
	assert.Equal(t, "Pune", customers[0].City)

	assert.Equal(t, "Ravi Iyer", customers[1].Name)
	assert.Equal(t, 1, customers[1].OrderCount)

	assert.Empty(t, DeriveCustomers(nil))
}
