package api

import (
	"context"
	"encoding/json"
	"time"

	"github.com/stackline/bigcommerce-go/internal/types"
)

// GetTime fetches the store's clock; also the conventional connectivity and
// credential check.
func GetTime(ctx context.Context, t Transport, base string) (time.Time, error) {
	if _, err := t.Get(ctx, base+"/time", nil); err != nil {
		return time.Time{}, err
	}
	var out struct {
		Time int64 `json:"time"`
	}
	if err := json.Unmarshal(t.Body(), &out); err != nil {
		return time.Time{}, err
	}
	return time.Unix(out.Time, 0).UTC(), nil
}

// GetStore fetches the store profile.
func GetStore(ctx context.Context, t Transport, base string) (*types.Store, error) {
	return getOne[types.Store](ctx, t, base+"/store")
}
