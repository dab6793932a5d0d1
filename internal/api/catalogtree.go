package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/stackline/bigcommerce-go/internal/types"
)

var categoryReadOnly = []string{"id", "parent_category_list"}

var brandReadOnly = []string{"id"}

// ListCategories retrieves category nodes matching the optional filter.
func ListCategories(ctx context.Context, t Transport, base string, filter url.Values) ([]types.Category, error) {
	return getList[types.Category](ctx, t, base+"/categories", filter)
}

// GetCategory retrieves a single category by ID.
func GetCategory(ctx context.Context, t Transport, base string, id int) (*types.Category, error) {
	return getOne[types.Category](ctx, t, fmt.Sprintf("%s/categories/%d", base, id))
}

// CreateCategory creates a category node.
func CreateCategory(ctx context.Context, t Transport, base string, fields any) (*types.Category, error) {
	return create[types.Category](ctx, t, base+"/categories", fields, categoryReadOnly)
}

// UpdateCategory updates a category in place.
func UpdateCategory(ctx context.Context, t Transport, base string, id int, fields any) (*types.Category, error) {
	return update[types.Category](ctx, t, fmt.Sprintf("%s/categories/%d", base, id), fields, categoryReadOnly)
}

// DeleteCategory removes a category node.
func DeleteCategory(ctx context.Context, t Transport, base string, id int) error {
	return remove(ctx, t, fmt.Sprintf("%s/categories/%d", base, id))
}

// ListBrands retrieves brands matching the optional filter.
func ListBrands(ctx context.Context, t Transport, base string, filter url.Values) ([]types.Brand, error) {
	return getList[types.Brand](ctx, t, base+"/brands", filter)
}

// GetBrand retrieves a single brand by ID.
func GetBrand(ctx context.Context, t Transport, base string, id int) (*types.Brand, error) {
	return getOne[types.Brand](ctx, t, fmt.Sprintf("%s/brands/%d", base, id))
}

// CreateBrand creates a brand.
func CreateBrand(ctx context.Context, t Transport, base string, fields any) (*types.Brand, error) {
	return create[types.Brand](ctx, t, base+"/brands", fields, brandReadOnly)
}

// UpdateBrand updates a brand in place.
func UpdateBrand(ctx context.Context, t Transport, base string, id int, fields any) (*types.Brand, error) {
	return update[types.Brand](ctx, t, fmt.Sprintf("%s/brands/%d", base, id), fields, brandReadOnly)
}

// DeleteBrand removes a brand.
func DeleteBrand(ctx context.Context, t Transport, base string, id int) error {
	return remove(ctx, t, fmt.Sprintf("%s/brands/%d", base, id))
}
