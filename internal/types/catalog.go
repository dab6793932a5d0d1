// Package types holds the domain entities of the Stores API v2 surface.
package types

// Product is a catalog product.
type Product struct {
	ID              int    `json:"id,omitempty"`
	Name            string `json:"name,omitempty"`
	Type            string `json:"type,omitempty"`
	SKU             string `json:"sku,omitempty"`
	Description     string `json:"description,omitempty"`
	Price           string `json:"price,omitempty"`
	CostPrice       string `json:"cost_price,omitempty"`
	RetailPrice     string `json:"retail_price,omitempty"`
	SalePrice       string `json:"sale_price,omitempty"`
	CalculatedPrice string `json:"calculated_price,omitempty"`
	Weight          string `json:"weight,omitempty"`
	Categories      []int  `json:"categories,omitempty"`
	BrandID         int    `json:"brand_id,omitempty"`
	InventoryLevel  int    `json:"inventory_level,omitempty"`
	IsVisible       bool   `json:"is_visible,omitempty"`
	Availability    string `json:"availability,omitempty"`
	RatingTotal     int    `json:"rating_total,omitempty"`
	RatingCount     int    `json:"rating_count,omitempty"`
	DateCreated     string `json:"date_created,omitempty"`
	DateModified    string `json:"date_modified,omitempty"`
	CustomURL       string `json:"custom_url,omitempty"`
}

// Order is a placed order.
type Order struct {
	ID              int    `json:"id,omitempty"`
	CustomerID      int    `json:"customer_id,omitempty"`
	StatusID        int    `json:"status_id,omitempty"`
	Status          string `json:"status,omitempty"`
	DateCreated     string `json:"date_created,omitempty"`
	DateModified    string `json:"date_modified,omitempty"`
	SubtotalExTax   string `json:"subtotal_ex_tax,omitempty"`
	SubtotalIncTax  string `json:"subtotal_inc_tax,omitempty"`
	TotalExTax      string `json:"total_ex_tax,omitempty"`
	TotalIncTax     string `json:"total_inc_tax,omitempty"`
	ItemsTotal      int    `json:"items_total,omitempty"`
	PaymentMethod   string `json:"payment_method,omitempty"`
	PaymentStatus   string `json:"payment_status,omitempty"`
	StaffNotes      string `json:"staff_notes,omitempty"`
	CustomerMessage string `json:"customer_message,omitempty"`
	CurrencyCode    string `json:"currency_code,omitempty"`
}

// OrderProduct is a line item on an order.
type OrderProduct struct {
	ID              int    `json:"id,omitempty"`
	OrderID         int    `json:"order_id,omitempty"`
	ProductID       int    `json:"product_id,omitempty"`
	Name            string `json:"name,omitempty"`
	SKU             string `json:"sku,omitempty"`
	Quantity        int    `json:"quantity,omitempty"`
	PriceExTax      string `json:"price_ex_tax,omitempty"`
	PriceIncTax     string `json:"price_inc_tax,omitempty"`
	TotalExTax      string `json:"total_ex_tax,omitempty"`
	TotalIncTax     string `json:"total_inc_tax,omitempty"`
	QuantityShipped int    `json:"quantity_shipped,omitempty"`
}

// Shipment is a fulfillment of part of an order.
type Shipment struct {
	ID              int            `json:"id,omitempty"`
	OrderID         int            `json:"order_id,omitempty"`
	CustomerID      int            `json:"customer_id,omitempty"`
	TrackingNumber  string         `json:"tracking_number,omitempty"`
	TrackingCarrier string         `json:"tracking_carrier,omitempty"`
	ShippingMethod  string         `json:"shipping_method,omitempty"`
	Comments        string         `json:"comments,omitempty"`
	DateCreated     string         `json:"date_created,omitempty"`
	Items           []ShipmentItem `json:"items,omitempty"`
}

// ShipmentItem references an order product inside a shipment.
type ShipmentItem struct {
	OrderProductID int `json:"order_product_id"`
	Quantity       int `json:"quantity"`
}

// Customer is a store customer account.
type Customer struct {
	ID              int    `json:"id,omitempty"`
	Company         string `json:"company,omitempty"`
	FirstName       string `json:"first_name,omitempty"`
	LastName        string `json:"last_name,omitempty"`
	Email           string `json:"email,omitempty"`
	Phone           string `json:"phone,omitempty"`
	StoreCredit     string `json:"store_credit,omitempty"`
	CustomerGroupID int    `json:"customer_group_id,omitempty"`
	Notes           string `json:"notes,omitempty"`
	DateCreated     string `json:"date_created,omitempty"`
	DateModified    string `json:"date_modified,omitempty"`
}

// Coupon is a discount coupon.
type Coupon struct {
	ID          int    `json:"id,omitempty"`
	Name        string `json:"name,omitempty"`
	Type        string `json:"type,omitempty"`
	Amount      string `json:"amount,omitempty"`
	Code        string `json:"code,omitempty"`
	Enabled     bool   `json:"enabled,omitempty"`
	MaxUses     int    `json:"max_uses,omitempty"`
	NumUses     int    `json:"num_uses,omitempty"`
	Expires     string `json:"expires,omitempty"`
	DateCreated string `json:"date_created,omitempty"`
}

// Category is a catalog category node.
type Category struct {
	ID                 int    `json:"id,omitempty"`
	ParentID           int    `json:"parent_id,omitempty"`
	Name               string `json:"name,omitempty"`
	Description        string `json:"description,omitempty"`
	SortOrder          int    `json:"sort_order,omitempty"`
	IsVisible          bool   `json:"is_visible,omitempty"`
	ParentCategoryList []int  `json:"parent_category_list,omitempty"`
}

// Brand is a product brand.
type Brand struct {
	ID             int    `json:"id,omitempty"`
	Name           string `json:"name,omitempty"`
	PageTitle      string `json:"page_title,omitempty"`
	MetaKeyword    string `json:"meta_keyword,omitempty"`
	MetaDesc       string `json:"meta_description,omitempty"`
	SearchKeywords string `json:"search_keywords,omitempty"`
	ImageFile      string `json:"image_file,omitempty"`
}

// Webhook is an event subscription.
type Webhook struct {
	ID          int               `json:"id,omitempty"`
	ClientID    string            `json:"client_id,omitempty"`
	StoreHash   string            `json:"store_hash,omitempty"`
	Scope       string            `json:"scope,omitempty"`
	Destination string            `json:"destination,omitempty"`
	Headers     map[string]string `json:"headers,omitempty"`
	IsActive    bool              `json:"is_active,omitempty"`
	CreatedAt   int64             `json:"created_at,omitempty"`
	UpdatedAt   int64             `json:"updated_at,omitempty"`
}

// Store describes the configured store.
type Store struct {
	ID         string `json:"id,omitempty"`
	Domain     string `json:"domain,omitempty"`
	SecureURL  string `json:"secure_url,omitempty"`
	Name       string `json:"name,omitempty"`
	AdminEmail string `json:"admin_email,omitempty"`
	Currency   string `json:"currency,omitempty"`
	Timezone   any    `json:"timezone,omitempty"`
	PlanName   string `json:"plan_name,omitempty"`
}
