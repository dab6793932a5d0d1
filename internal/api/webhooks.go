package api

import (
	"context"
	"fmt"

	"github.com/stackline/bigcommerce-go/internal/types"
)

var webhookReadOnly = []string{"id", "client_id", "store_hash", "created_at", "updated_at"}

// ListWebhooks retrieves all event subscriptions.
func ListWebhooks(ctx context.Context, t Transport, base string) ([]types.Webhook, error) {
	return getList[types.Webhook](ctx, t, base+"/hooks", nil)
}

// GetWebhook retrieves a single subscription by ID.
func GetWebhook(ctx context.Context, t Transport, base string, id int) (*types.Webhook, error) {
	return getOne[types.Webhook](ctx, t, fmt.Sprintf("%s/hooks/%d", base, id))
}

// CreateWebhook registers a new subscription.
func CreateWebhook(ctx context.Context, t Transport, base string, fields any) (*types.Webhook, error) {
	return create[types.Webhook](ctx, t, base+"/hooks", fields, webhookReadOnly)
}

// UpdateWebhook updates a subscription in place.
func UpdateWebhook(ctx context.Context, t Transport, base string, id int, fields any) (*types.Webhook, error) {
	return update[types.Webhook](ctx, t, fmt.Sprintf("%s/hooks/%d", base, id), fields, webhookReadOnly)
}

// DeleteWebhook removes a subscription.
func DeleteWebhook(ctx context.Context, t Transport, base string, id int) error {
	return remove(ctx, t, fmt.Sprintf("%s/hooks/%d", base, id))
}
