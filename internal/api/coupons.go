package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/stackline/bigcommerce-go/internal/types"
)

var couponReadOnly = []string{"id", "num_uses", "date_created"}

// ListCoupons retrieves coupons matching the optional filter.
func ListCoupons(ctx context.Context, t Transport, base string, filter url.Values) ([]types.Coupon, error) {
	return getList[types.Coupon](ctx, t, base+"/coupons", filter)
}

// GetCoupon retrieves a single coupon by ID.
func GetCoupon(ctx context.Context, t Transport, base string, id int) (*types.Coupon, error) {
	return getOne[types.Coupon](ctx, t, fmt.Sprintf("%s/coupons/%d", base, id))
}

// CreateCoupon creates a coupon.
func CreateCoupon(ctx context.Context, t Transport, base string, fields any) (*types.Coupon, error) {
	return create[types.Coupon](ctx, t, base+"/coupons", fields, couponReadOnly)
}

// UpdateCoupon updates a coupon in place.
func UpdateCoupon(ctx context.Context, t Transport, base string, id int, fields any) (*types.Coupon, error) {
	return update[types.Coupon](ctx, t, fmt.Sprintf("%s/coupons/%d", base, id), fields, couponReadOnly)
}

// DeleteCoupon removes a coupon.
func DeleteCoupon(ctx context.Context, t Transport, base string, id int) error {
	return remove(ctx, t, fmt.Sprintf("%s/coupons/%d", base, id))
}
