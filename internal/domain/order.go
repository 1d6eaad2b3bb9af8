package domain

// OrderLineItem is the slim line-item shape sent to the shipping-rates and
// order-creation endpoints.
type OrderLineItem struct {
	ProductID string `json:"product_id"`
	VariantID int    `json:"variant_id"`
	Quantity  int    `json:"quantity"`
}

// OrderCustomer pairs the contact email with the shipping destination.
type OrderCustomer struct {
	Email   string  `json:"email"`
	Address Address `json:"address"`
}

// OrderRequest is the order-creation payload. TotalPriceCents is the amount
// the payment provider actually charged, never recomputed locally.
type OrderRequest struct {
	LineItems       []OrderLineItem `json:"line_items"`
	Customer        OrderCustomer   `json:"customer"`
	TotalPriceCents int64           `json:"total_price"`
	Currency        string          `json:"currency"`
	ShippingMethod  int             `json:"shipping_method"`
	ShippingCents   int64           `json:"shipping_cost"`
}

// OrderRecord is the order-creation response.
type OrderRecord struct {
	ID             string          `json:"id"`
	Status         string          `json:"status"`
	TotalPrice     int64           `json:"total_price"`
	Currency       string          `json:"currency"`
	ShippingMethod string          `json:"shipping_method"`
	ShippingCost   int64           `json:"shipping_cost"`
	LineItems      []OrderLineItem `json:"line_items"`
	CreatedAt      string          `json:"created_at"`
	UpdatedAt      string          `json:"updated_at"`
}

// OrderStatus is the order-status payload: fulfillment state, totals and
// shipments for a placed order.
type OrderStatus struct {
	Success        bool              `json:"success"`
	OrderStatus    string            `json:"order_status"`
	TrackingNumber string            `json:"tracking_number,omitempty"`
	TrackingURL    string            `json:"tracking_url,omitempty"`
	TotalPrice     int64             `json:"total_price"`
	TotalShipping  int64             `json:"total_shipping"`
	Currency       string            `json:"currency"`
	CreatedAt      string            `json:"created_at"`
	Customer       StatusCustomer    `json:"customer"`
	Items          []OrderStatusItem `json:"items"`
	ShippingMethod int               `json:"shipping_method"`
	Shipments      []Shipment        `json:"shipments"`
}

type StatusCustomer struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Country   string `json:"country"`
	Region    string `json:"region"`
	City      string `json:"city"`
	Address1  string `json:"address1"`
	Address2  string `json:"address2,omitempty"`
	Zip       string `json:"zip"`
}

type OrderStatusItem struct {
	ProductID    string `json:"product_id"`
	VariantID    int    `json:"variant_id"`
	Quantity     int    `json:"quantity"`
	Status       string `json:"status"`
	Title        string `json:"title"`
	VariantLabel string `json:"variant_label"`
	SKU          string `json:"sku"`
	Country      string `json:"country"`
}

type Shipment struct {
	Carrier        string `json:"carrier"`
	TrackingNumber string `json:"tracking_number"`
	TrackingURL    string `json:"tracking_url"`
	DeliveredAt    string `json:"delivered_at,omitempty"`
}
