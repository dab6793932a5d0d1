package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/stackline/bigcommerce-go/internal/types"
)

var orderReadOnly = []string{"id", "date_created", "date_modified"}

var shipmentReadOnly = []string{"id", "order_id", "customer_id", "date_created"}

// ListOrders retrieves orders matching the optional filter.
func ListOrders(ctx context.Context, t Transport, base string, filter url.Values) ([]types.Order, error) {
	return getList[types.Order](ctx, t, base+"/orders", filter)
}

// GetOrder retrieves a single order by ID.
func GetOrder(ctx context.Context, t Transport, base string, id int) (*types.Order, error) {
	return getOne[types.Order](ctx, t, fmt.Sprintf("%s/orders/%d", base, id))
}

// UpdateOrder updates an order in place (typically its status).
func UpdateOrder(ctx context.Context, t Transport, base string, id int, fields any) (*types.Order, error) {
	return update[types.Order](ctx, t, fmt.Sprintf("%s/orders/%d", base, id), fields, orderReadOnly)
}

// DeleteOrder removes an order.
func DeleteOrder(ctx context.Context, t Transport, base string, id int) error {
	return remove(ctx, t, fmt.Sprintf("%s/orders/%d", base, id))
}

// OrderCount returns the number of orders.
func OrderCount(ctx context.Context, t Transport, base string) (int, error) {
	return count(ctx, t, base+"/orders/count")
}

// ListOrderProducts retrieves the line items of an order.
func ListOrderProducts(ctx context.Context, t Transport, base string, orderID int) ([]types.OrderProduct, error) {
	return getList[types.OrderProduct](ctx, t, fmt.Sprintf("%s/orders/%d/products", base, orderID), nil)
}

// ListOrderShipments retrieves the shipments of an order.
func ListOrderShipments(ctx context.Context, t Transport, base string, orderID int) ([]types.Shipment, error) {
	return getList[types.Shipment](ctx, t, fmt.Sprintf("%s/orders/%d/shipments", base, orderID), nil)
}

// CreateOrderShipment records a new shipment against an order.
func CreateOrderShipment(ctx context.Context, t Transport, base string, orderID int, fields any) (*types.Shipment, error) {
	return create[types.Shipment](ctx, t, fmt.Sprintf("%s/orders/%d/shipments", base, orderID), fields, shipmentReadOnly)
}
