package bigcommerce

import "github.com/stackline/bigcommerce-go/internal/types"

// Public type aliases so consumers can import only this package.
type (
	Product      = types.Product
	Order        = types.Order
	OrderProduct = types.OrderProduct
	Shipment     = types.Shipment
	ShipmentItem = types.ShipmentItem
	Customer     = types.Customer
	Coupon       = types.Coupon
	Category     = types.Category
	Brand        = types.Brand
	Webhook      = types.Webhook
	Store        = types.Store
)
