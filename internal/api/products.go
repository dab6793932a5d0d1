package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/stackline/bigcommerce-go/internal/types"
)

// Fields the service computes itself; stripped from create/update payloads.
var productReadOnly = []string{
	"id", "date_created", "date_modified", "calculated_price",
	"rating_total", "rating_count", "custom_url",
}

// ListProducts retrieves products matching the optional filter.
func ListProducts(ctx context.Context, t Transport, base string, filter url.Values) ([]types.Product, error) {
	return getList[types.Product](ctx, t, base+"/products", filter)
}

// GetProduct retrieves a single product by ID.
func GetProduct(ctx context.Context, t Transport, base string, id int) (*types.Product, error) {
	return getOne[types.Product](ctx, t, fmt.Sprintf("%s/products/%d", base, id))
}

// CreateProduct creates a product from the given fields.
func CreateProduct(ctx context.Context, t Transport, base string, fields any) (*types.Product, error) {
	return create[types.Product](ctx, t, base+"/products", fields, productReadOnly)
}

// UpdateProduct updates a product in place.
func UpdateProduct(ctx context.Context, t Transport, base string, id int, fields any) (*types.Product, error) {
	return update[types.Product](ctx, t, fmt.Sprintf("%s/products/%d", base, id), fields, productReadOnly)
}

// DeleteProduct removes a product.
func DeleteProduct(ctx context.Context, t Transport, base string, id int) error {
	return remove(ctx, t, fmt.Sprintf("%s/products/%d", base, id))
}

// ProductCount returns the number of products in the catalog.
func ProductCount(ctx context.Context, t Transport, base string) (int, error) {
	return count(ctx, t, base+"/products/count")
}
