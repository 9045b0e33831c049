package api

import "github.com/sellerdash/client/internal/domain/seller"

// Envelope is the backend's JSON response wrapper. Every endpoint returns
// a success flag, a human-readable message and a payload field named after
// the resource.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// IsSuccess returns true if the response indicates success.
func (e *Envelope) IsSuccess() bool {
	return e.Success
}

// productListResponse is the payload of POST /api/Seller/list_Product.
type productListResponse struct {
	Envelope
	Products []seller.Product `json:"products"`
}

// orderListResponse is the payload of GET /api/Seller/Order_list.
type orderListResponse struct {
	Envelope
	Orders []seller.Order `json:"orders"`
}

// inventoryListResponse is the payload of GET /api/Seller/list_inventory_product.
type inventoryListResponse struct {
	Envelope
	ProductInventory []seller.InventoryItem `json:"productInventory"`
}

// profileResponse is the payload of GET /api/Seller/Seller_Profile.
type profileResponse struct {
	Envelope
	Profile *seller.Profile `json:"profile"`
}

// revenueResponse is the payload of GET /api/Seller/Analitics.
// The endpoint path spelling is the backend's.
type revenueResponse struct {
	Envelope
	Revenue *seller.RevenueSummary `json:"revenue"`
}

// orderStatusUpdateRequest is the body of PUT /api/orders/{id}/status.
type orderStatusUpdateRequest struct {
	Status seller.OrderStatus `json:"status"`
}
