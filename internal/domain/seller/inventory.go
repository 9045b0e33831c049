package seller

import "github.com/shopspring/decimal"

// InventoryItem is a stock row from the inventory endpoint. It overlaps
// with Product in meaning but comes from a distinct endpoint and cache
// slot; the two views are separate bounded contexts and are deliberately
// never reconciled client-side.
type InventoryItem struct {
	ID       string          `json:"_id"`
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Price    decimal.Decimal `json:"price"`
	Quantity int64           `json:"quantity"`
}
