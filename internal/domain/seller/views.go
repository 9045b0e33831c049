package seller

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// Derived read-only projections over cached slot data. All functions here
// are pure: they never mutate their inputs and return fresh slices, so
// callers can render filtered views without touching the store's caches.

// SearchOrders matches the query against customer name, order ID and
// amount, case-insensitively. An empty query matches everything.
func SearchOrders(orders []Order, query string) []Order {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return append([]Order(nil), orders...)
	}
	out := make([]Order, 0, len(orders))
	for _, o := range orders {
		if strings.Contains(strings.ToLower(o.Address.FullName()), q) ||
			strings.Contains(strings.ToLower(o.ID), q) ||
			strings.Contains(o.Amount.String(), q) {
			out = append(out, o)
		}
	}
	return out
}

// FilterOrdersByStatus keeps orders in the given stage. An empty status
// matches everything.
func FilterOrdersByStatus(orders []Order, status OrderStatus) []Order {
	if status == "" {
		return append([]Order(nil), orders...)
	}
	out := make([]Order, 0, len(orders))
	for _, o := range orders {
		if o.Status == status {
			out = append(out, o)
		}
	}
	return out
}

// OrderStats summarizes an order list for dashboard headline cards.
type OrderStats struct {
	Total     int
	Revenue   decimal.Decimal
	Pending   int
	Delivered int
}

// SummarizeOrders computes headline statistics over the cached order list.
func SummarizeOrders(orders []Order) OrderStats {
	stats := OrderStats{Revenue: decimal.Zero}
	for _, o := range orders {
		stats.Total++
		stats.Revenue = stats.Revenue.Add(o.Amount)
		switch o.Status {
		case StatusOrderPlaced:
			stats.Pending++
		case StatusDelivered:
			stats.Delivered++
		}
	}
	return stats
}

// ActiveShipments keeps orders currently moving through fulfillment
// (packed, shipped or out for delivery).
func ActiveShipments(orders []Order) []Order {
	out := make([]Order, 0, len(orders))
	for _, o := range orders {
		switch o.Status {
		case StatusPacking, StatusShipped, StatusOutForDelivery:
			out = append(out, o)
		}
	}
	return out
}

// SearchProducts matches the query against product name and category.
func SearchProducts(products []Product, query string) []Product {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return append([]Product(nil), products...)
	}
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Category), q) {
			out = append(out, p)
		}
	}
	return out
}

// FilterProductsByCategory keeps products in the named category. An empty
// category matches everything.
func FilterProductsByCategory(products []Product, category string) []Product {
	if category == "" {
		return append([]Product(nil), products...)
	}
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// LowStock returns inventory rows at or below the threshold, lowest first.
func LowStock(items []InventoryItem, threshold int64) []InventoryItem {
	out := make([]InventoryItem, 0)
	for _, it := range items {
		if it.Quantity <= threshold {
			out = append(out, it)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Quantity < out[j].Quantity })
	return out
}

// Customer is a buyer derived from order history. The backend has no
// customer endpoint; this projection groups orders by recipient.
type Customer struct {
	Name       string
	Email      string
	City       string
	OrderCount int
	TotalSpent decimal.Decimal
}

// DeriveCustomers groups the order list by recipient name and aggregates
// spend, sorted by total spend descending.
func DeriveCustomers(orders []Order) []Customer {
	byName := make(map[string]*Customer)
	names := make([]string, 0)
	for _, o := range orders {
		name := o.Address.FullName()
		c, ok := byName[name]
		if !ok {
			c = &Customer{
				Name:       name,
				Email:      o.Address.Email,
				City:       o.Address.City,
				TotalSpent: decimal.Zero,
			}
			byName[name] = c
			names = append(names, name)
		}
		c.OrderCount++
		c.TotalSpent = c.TotalSpent.Add(o.Amount)
	}
	out := make([]Customer, 0, len(names))
	for _, name := range names {
		out = append(out, *byName[name])
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].TotalSpent.Equal(out[j].TotalSpent) {
			return out[i].TotalSpent.GreaterThan(out[j].TotalSpent)
		}
		return out[i].Name < out[j].Name
	})
	return out
}
