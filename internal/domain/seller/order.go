package seller

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is the backend's order lifecycle stage. The literal values
// (including the lowercase "order Placed") are the backend's wire strings
// and must not be normalized.
type OrderStatus string

const (
	StatusOrderPlaced    OrderStatus = "order Placed"
	StatusPacking        OrderStatus = "Packing"
	StatusShipped        OrderStatus = "Shipped"
	StatusOutForDelivery OrderStatus = "Out for Delivery"
	StatusDelivered      OrderStatus = "Delivered"
)

// OrderStages lists the lifecycle stages in progression order.
var OrderStages = []OrderStatus{
	StatusOrderPlaced,
	StatusPacking,
	StatusShipped,
	StatusOutForDelivery,
	StatusDelivered,
}

// Valid reports whether s is a known lifecycle stage.
func (s OrderStatus) Valid() bool {
	for _, stage := range OrderStages {
		if s == stage {
			return true
		}
	}
	return false
}

// Progress returns the fulfillment percentage for display purposes.
func (s OrderStatus) Progress() int {
	switch s {
	case StatusOrderPlaced:
		return 25
	case StatusPacking:
		return 50
	case StatusShipped:
		return 75
	case StatusOutForDelivery:
		return 90
	case StatusDelivered:
		return 100
	default:
		return 0
	}
}

// Address is the shipping destination attached to an order.
type Address struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email,omitempty"`
	Street    string `json:"street,omitempty"`
	City      string `json:"city,omitempty"`
	State     string `json:"state,omitempty"`
	ZipCode   string `json:"zipcode,omitempty"`
	Country   string `json:"country,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

// FullName joins the recipient name parts, falling back to a placeholder
// when the backend sent an empty address.
func (a Address) FullName() string {
	name := strings.TrimSpace(a.FirstName + " " + a.LastName)
	if name == "" {
		return "Unknown Customer"
	}
	return name
}

// OrderItem is one purchased line of an order.
type OrderItem struct {
	ID       string          `json:"_id,omitempty"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int64           `json:"quantity"`
	Size     string          `json:"size,omitempty"`
	Image    []string        `json:"image,omitempty"`
}

// Order is a customer order as held by the store. The copy goes stale the
// moment a status change is submitted; callers refetch explicitly.
type Order struct {
	ID      string          `json:"_id"`
	Amount  decimal.Decimal `json:"amount"`
	Status  OrderStatus     `json:"status"`
	Address Address         `json:"address"`
	Items   []OrderItem     `json:"items"`
	Date    int64           `json:"date"`
	Payment bool            `json:"payment"`
}

// PlacedAt converts the backend millisecond timestamp.
func (o Order) PlacedAt() time.Time {
	return time.UnixMilli(o.Date)
}
