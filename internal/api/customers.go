package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/stackline/bigcommerce-go/internal/types"
)

var customerReadOnly = []string{"id", "date_created", "date_modified"}

// ListCustomers retrieves customers matching the optional filter.
func ListCustomers(ctx context.Context, t Transport, base string, filter url.Values) ([]types.Customer, error) {
	return getList[types.Customer](ctx, t, base+"/customers", filter)
}

// GetCustomer retrieves a single customer by ID.
func GetCustomer(ctx context.Context, t Transport, base string, id int) (*types.Customer, error) {
	return getOne[types.Customer](ctx, t, fmt.Sprintf("%s/customers/%d", base, id))
}

// CreateCustomer creates a customer account.
func CreateCustomer(ctx context.Context, t Transport, base string, fields any) (*types.Customer, error) {
	return create[types.Customer](ctx, t, base+"/customers", fields, customerReadOnly)
}

// UpdateCustomer updates a customer in place.
func UpdateCustomer(ctx context.Context, t Transport, base string, id int, fields any) (*types.Customer, error) {
	return update[types.Customer](ctx, t, fmt.Sprintf("%s/customers/%d", base, id), fields, customerReadOnly)
}

// DeleteCustomer removes a customer account.
func DeleteCustomer(ctx context.Context, t Transport, base string, id int) error {
	return remove(ctx, t, fmt.Sprintf("%s/customers/%d", base, id))
}

// CustomerCount returns the number of customers.
func CustomerCount(ctx context.Context, t Transport, base string) (int, error) {
	return count(ctx, t, base+"/customers/count")
}
