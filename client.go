// Package bigcommerce is a client for the BigCommerce Stores REST API (v2
// surface). The root Client exposes typed per-resource methods; the
// underlying connection layer handles authentication, retry with
// server-hinted backoff, and redirect following.
package bigcommerce

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/stackline/bigcommerce-go/internal/api"
	"github.com/stackline/bigcommerce-go/internal/conn"
)

// Client drives sequential, synchronous calls against one configured store.
// It is not safe for concurrent use; use one Client per goroutine.
type Client struct {
	conn    *conn.Connection
	baseURL string
	cfg     Config
}

// New constructs a Client from the given configuration. Additional options
// can be provided via functional arguments.
func New(cfg Config, opts ...Option) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	ccfg, err := conn.LoadConfig()
	if err != nil {
		return nil, err
	}
	if cfg.Timeout > 0 {
		ccfg.Timeout = time.Duration(cfg.Timeout)
	}

	logger := log.With().Str("component", "bigcommerce").Logger()
	cn := conn.New(ccfg, logger)
	if cfg.oauth() {
		cn.UseOAuth(cfg.ClientID, cfg.AuthToken)
	} else {
		cn.UseBasicAuth(cfg.Username, cfg.APIKey)
	}
	// Typed methods always surface errors; the sentinel/last-error mode is
	// available to callers driving the Connection directly.
	cn.SetFailOnError(true)

	c := &Client{conn: cn, baseURL: cfg.baseURL(), cfg: cfg}

	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Connection exposes the underlying connection for callers that need the
// non-throwing mode, raw XML responses, or header introspection.
func (c *Client) Connection() *conn.Connection { return c.conn }

// RequestsRemaining reports the quota left in the current rate-limit window,
// taken from the X-BC-ApiLimit-Remaining header of the last response. It
// issues a time request first if no response has been seen yet. Returns -1
// when the header is absent.
func (c *Client) RequestsRemaining(ctx context.Context) (int, error) {
	if c.conn.Header("X-BC-ApiLimit-Remaining") == "" {
		if _, err := api.GetTime(ctx, c.conn, c.baseURL); err != nil {
			return -1, err
		}
	}
	v := c.conn.Header("X-BC-ApiLimit-Remaining")
	if v == "" {
		return -1, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return -1, nil
	}
	return n, nil
}

// GetTime fetches the store clock; the conventional credential check.
func (c *Client) GetTime(ctx context.Context) (time.Time, error) {
	return api.GetTime(ctx, c.conn, c.baseURL)
}

// GetStore fetches the store profile.
func (c *Client) GetStore(ctx context.Context) (*Store, error) {
	return api.GetStore(ctx, c.conn, c.baseURL)
}

// --------------------------------------------------------------------
// Products
// --------------------------------------------------------------------

// GetProducts retrieves products matching the optional filter.
func (c *Client) GetProducts(ctx context.Context, filter url.Values) ([]Product, error) {
	return api.ListProducts(ctx, c.conn, c.baseURL, filter)
}

// GetProduct retrieves a product by ID.
func (c *Client) GetProduct(ctx context.Context, id int) (*Product, error) {
	return api.GetProduct(ctx, c.conn, c.baseURL, id)
}

// CreateProduct creates a product; read-only fields are stripped from the
// payload before sending.
func (c *Client) CreateProduct(ctx context.Context, fields any) (*Product, error) {
	return api.CreateProduct(ctx, c.conn, c.baseURL, fields)
}

// UpdateProduct updates a product in place.
func (c *Client) UpdateProduct(ctx context.Context, id int, fields any) (*Product, error) {
	return api.UpdateProduct(ctx, c.conn, c.baseURL, id, fields)
}

// DeleteProduct removes a product.
func (c *Client) DeleteProduct(ctx context.Context, id int) error {
	return api.DeleteProduct(ctx, c.conn, c.baseURL, id)
}

// GetProductsCount returns the catalog size.
func (c *Client) GetProductsCount(ctx context.Context) (int, error) {
	return api.ProductCount(ctx, c.conn, c.baseURL)
}

// --------------------------------------------------------------------
// Orders
// --------------------------------------------------------------------

// GetOrders retrieves orders matching the optional filter.
func (c *Client) GetOrders(ctx context.Context, filter url.Values) ([]Order, error) {
	return api.ListOrders(ctx, c.conn, c.baseURL, filter)
}

// GetOrder retrieves an order by ID.
func (c *Client) GetOrder(ctx context.Context, id int) (*Order, error) {
	return api.GetOrder(ctx, c.conn, c.baseURL, id)
}

// UpdateOrder updates an order in place.
func (c *Client) UpdateOrder(ctx context.Context, id int, fields any) (*Order, error) {
	return api.UpdateOrder(ctx, c.conn, c.baseURL, id, fields)
}

// DeleteOrder removes an order.
func (c *Client) DeleteOrder(ctx context.Context, id int) error {
	return api.DeleteOrder(ctx, c.conn, c.baseURL, id)
}

// GetOrdersCount returns the number of orders.
func (c *Client) GetOrdersCount(ctx context.Context) (int, error) {
	return api.OrderCount(ctx, c.conn, c.baseURL)
}

// GetOrderProducts retrieves the line items of an order.
func (c *Client) GetOrderProducts(ctx context.Context, orderID int) ([]OrderProduct, error) {
	return api.ListOrderProducts(ctx, c.conn, c.baseURL, orderID)
}

// GetOrderShipments retrieves the shipments of an order.
func (c *Client) GetOrderShipments(ctx context.Context, orderID int) ([]Shipment, error) {
	return api.ListOrderShipments(ctx, c.conn, c.baseURL, orderID)
}

// CreateOrderShipment records a shipment against an order.
func (c *Client) CreateOrderShipment(ctx context.Context, orderID int, fields any) (*Shipment, error) {
	return api.CreateOrderShipment(ctx, c.conn, c.baseURL, orderID, fields)
}

// --------------------------------------------------------------------
// Customers
// --------------------------------------------------------------------

// GetCustomers retrieves customers matching the optional filter.
func (c *Client) GetCustomers(ctx context.Context, filter url.Values) ([]Customer, error) {
	return api.ListCustomers(ctx, c.conn, c.baseURL, filter)
}

// GetCustomer retrieves a customer by ID.
func (c *Client) GetCustomer(ctx context.Context, id int) (*Customer, error) {
	return api.GetCustomer(ctx, c.conn, c.baseURL, id)
}

// CreateCustomer creates a customer account.
func (c *Client) CreateCustomer(ctx context.Context, fields any) (*Customer, error) {
	return api.CreateCustomer(ctx, c.conn, c.baseURL, fields)
}

// UpdateCustomer updates a customer in place.
func (c *Client) UpdateCustomer(ctx context.Context, id int, fields any) (*Customer, error) {
	return api.UpdateCustomer(ctx, c.conn, c.baseURL, id, fields)
}

// DeleteCustomer removes a customer account.
func (c *Client) DeleteCustomer(ctx context.Context, id int) error {
	return api.DeleteCustomer(ctx, c.conn, c.baseURL, id)
}

// GetCustomersCount returns the number of customers.
func (c *Client) GetCustomersCount(ctx context.Context) (int, error) {
	return api.CustomerCount(ctx, c.conn, c.baseURL)
}

// --------------------------------------------------------------------
// Coupons
// --------------------------------------------------------------------

// GetCoupons retrieves coupons matching the optional filter.
func (c *Client) GetCoupons(ctx context.Context, filter url.Values) ([]Coupon, error) {
	return api.ListCoupons(ctx, c.conn, c.baseURL, filter)
}

// GetCoupon retrieves a coupon by ID.
func (c *Client) GetCoupon(ctx context.Context, id int) (*Coupon, error) {
	return api.GetCoupon(ctx, c.conn, c.baseURL, id)
}

// CreateCoupon creates a coupon.
func (c *Client) CreateCoupon(ctx context.Context, fields any) (*Coupon, error) {
	return api.CreateCoupon(ctx, c.conn, c.baseURL, fields)
}

// UpdateCoupon updates a coupon in place.
func (c *Client) UpdateCoupon(ctx context.Context, id int, fields any) (*Coupon, error) {
	return api.UpdateCoupon(ctx, c.conn, c.baseURL, id, fields)
}

// DeleteCoupon removes a coupon.
func (c *Client) DeleteCoupon(ctx context.Context, id int) error {
	return api.DeleteCoupon(ctx, c.conn, c.baseURL, id)
}

// --------------------------------------------------------------------
// Categories and brands
// --------------------------------------------------------------------

// GetCategories retrieves category nodes matching the optional filter.
func (c *Client) GetCategories(ctx context.Context, filter url.Values) ([]Category, error) {
	return api.ListCategories(ctx, c.conn, c.baseURL, filter)
}

// GetCategory retrieves a category by ID.
func (c *Client) GetCategory(ctx context.Context, id int) (*Category, error) {
	return api.GetCategory(ctx, c.conn, c.baseURL, id)
}

// CreateCategory creates a category node.
func (c *Client) CreateCategory(ctx context.Context, fields any) (*Category, error) {
	return api.CreateCategory(ctx, c.conn, c.baseURL, fields)
}

// UpdateCategory updates a category in place.
func (c *Client) UpdateCategory(ctx context.Context, id int, fields any) (*Category, error) {
	return api.UpdateCategory(ctx, c.conn, c.baseURL, id, fields)
}

// DeleteCategory removes a category node.
func (c *Client) DeleteCategory(ctx context.Context, id int) error {
	return api.DeleteCategory(ctx, c.conn, c.baseURL, id)
}

// GetBrands retrieves brands matching the optional filter.
func (c *Client) GetBrands(ctx context.Context, filter url.Values) ([]Brand, error) {
	return api.ListBrands(ctx, c.conn, c.baseURL, filter)
}

// GetBrand retrieves a brand by ID.
func (c *Client) GetBrand(ctx context.Context, id int) (*Brand, error) {
	return api.GetBrand(ctx, c.conn, c.baseURL, id)
}

// CreateBrand creates a brand.
func (c *Client) CreateBrand(ctx context.Context, fields any) (*Brand, error) {
	return api.CreateBrand(ctx, c.conn, c.baseURL, fields)
}

// UpdateBrand updates a brand in place.
func (c *Client) UpdateBrand(ctx context.Context, id int, fields any) (*Brand, error) {
	return api.UpdateBrand(ctx, c.conn, c.baseURL, id, fields)
}

// DeleteBrand removes a brand.
func (c *Client) DeleteBrand(ctx context.Context, id int) error {
	return api.DeleteBrand(ctx, c.conn, c.baseURL, id)
}

// --------------------------------------------------------------------
// Webhooks
// --------------------------------------------------------------------

// GetWebhooks retrieves all event subscriptions.
func (c *Client) GetWebhooks(ctx context.Context) ([]Webhook, error) {
	return api.ListWebhooks(ctx, c.conn, c.baseURL)
}

// GetWebhook retrieves a subscription by ID.
func (c *Client) GetWebhook(ctx context.Context, id int) (*Webhook, error) {
	return api.GetWebhook(ctx, c.conn, c.baseURL, id)
}

// CreateWebhook registers a subscription.
func (c *Client) CreateWebhook(ctx context.Context, fields any) (*Webhook, error) {
	return api.CreateWebhook(ctx, c.conn, c.baseURL, fields)
}

// UpdateWebhook updates a subscription in place.
func (c *Client) UpdateWebhook(ctx context.Context, id int, fields any) (*Webhook, error) {
	return api.UpdateWebhook(ctx, c.conn, c.baseURL, id, fields)
}

// DeleteWebhook removes a subscription.
func (c *Client) DeleteWebhook(ctx context.Context, id int) error {
	return api.DeleteWebhook(ctx, c.conn, c.baseURL, id)
}
