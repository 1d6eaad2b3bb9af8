// Package printify talks to the upstream print-provider API: product
// catalog, shipping-rate quotes, order submission and order status.
package printify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"developerhorizon/internal/domain"
)

// Client is a thin JSON client over the provider endpoints. Safe for
// concurrent use.
type Client struct {
	httpClient *http.Client
	baseURL    string
	storeID    string
}

// New creates a Client for the given base URL and store id.
func New(baseURL, storeID string) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("base URL is required")
	}
	if storeID == "" {
		return nil, fmt.Errorf("store id is required")
	}
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		storeID:    storeID,
	}, nil
}

type productsEnvelope struct {
	Data []domain.Product `json:"data"`
}

// Products fetches the full product list for the store. No filtering is
// applied here; the catalog store owns the enabled-variant post-processing.
func (c *Client) Products(ctx context.Context) ([]domain.Product, error) {
	url := fmt.Sprintf("%s/%s/products", c.baseURL, c.storeID)

	var env productsEnvelope
	if err := c.getJSON(ctx, url, &env); err != nil {
		return nil, fmt.Errorf("fetch products: %w", err)
	}
	return env.Data, nil
}

// TierOption is one named option inside a shipping tier, carrying the
// provider's own id (e.g. 475), not a canonical code.
type TierOption struct {
	ID        int      `json:"id"`
	Name      string   `json:"name"`
	Price     int64    `json:"price"`
	Countries []string `json:"countries"`
}

// Tier is one shipping tier of the rates response: either a list of named
// options or a single bare price in minor units.
type Tier struct {
	Options []TierOption
	Flat    *int64
}

func (t *Tier) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}
	if trimmed[0] == '[' {
		return json.Unmarshal(trimmed, &t.Options)
	}
	var flat int64
	if err := json.Unmarshal(trimmed, &flat); err != nil {
		return err
	}
	t.Flat = &flat
	return nil
}

// Empty reports whether the tier carried neither options nor a flat price.
func (t Tier) Empty() bool {
	return len(t.Options) == 0 && t.Flat == nil
}

// RatesResponse holds up to four shipping tiers.
type RatesResponse struct {
	Standard Tier `json:"standard"`
	Priority Tier `json:"priority"`
	Express  Tier `json:"express"`
	Economy  Tier `json:"economy"`
}

type ratesRequest struct {
	AddressTo domain.Address         `json:"address_to"`
	LineItems []domain.OrderLineItem `json:"line_items"`
}

// ShippingRates quotes shipping for the destination and line items.
func (c *Client) ShippingRates(ctx context.Context, addr domain.Address, items []domain.OrderLineItem) (*RatesResponse, error) {
	url := fmt.Sprintf("%s/%s/shipping-options", c.baseURL, c.storeID)

	var out RatesResponse
	if err := c.postJSON(ctx, url, ratesRequest{AddressTo: addr, LineItems: items}, &out); err != nil {
		return nil, fmt.Errorf("fetch shipping rates: %w", err)
	}
	return &out, nil
}

type submitOrderRequest struct {
	StoreID         string              `json:"storeId"`
	Order           domain.OrderRequest `json:"order"`
	StripePaymentID string              `json:"stripe_payment_id"`
	IdempotencyKey  string              `json:"idempotency_key"`
}

// SubmitOrder sends the finalized order, keyed by the payment confirmation
// id. The idempotency key lets the order processor deduplicate a manual
// retry after a reported failure.
func (c *Client) SubmitOrder(ctx context.Context, order domain.OrderRequest, paymentID, idempotencyKey string) (*domain.OrderRecord, error) {
	url := c.baseURL + "/submit-order"

	var out domain.OrderRecord
	req := submitOrderRequest{
		StoreID:         c.storeID,
		Order:           order,
		StripePaymentID: paymentID,
		IdempotencyKey:  idempotencyKey,
	}
	if err := c.postJSON(ctx, url, req, &out); err != nil {
		return nil, fmt.Errorf("submit order: %w", err)
	}
	return &out, nil
}

type statusRequest struct {
	OrderID string `json:"orderId"`
	Email   string `json:"email"`
}

// OrderStatus fetches the status of a placed order. A JSON null body yields
// (nil, nil): the order exists but carries no details yet, which callers
// surface differently from a transport failure.
func (c *Client) OrderStatus(ctx context.Context, orderID, email string) (*domain.OrderStatus, error) {
	url := c.baseURL + "/order-status"

	var out *domain.OrderStatus
	if err := c.postJSON(ctx, url, statusRequest{OrderID: orderID, Email: email}, &out); err != nil {
		return nil, fmt.Errorf("fetch order status: %w", err)
	}
	return out, nil
}

// OrderStatusByPath is the GET variant used by the order-success page.
func (c *Client) OrderStatusByPath(ctx context.Context, orderID, email string) (*domain.OrderStatus, error) {
	url := fmt.Sprintf("%s/order-status/%s/%s", c.baseURL, orderID, email)

	var out *domain.OrderStatus
	if err := c.getJSON(ctx, url, &out); err != nil {
		return nil, fmt.Errorf("fetch order status: %w", err)
	}
	return out, nil
}

func (c *Client) getJSON(ctx context.Context, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) postJSON(ctx context.Context, url string, body, out interface{}) error {
	raw, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(raw))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%s %s: status %d: %s", req.Method, req.URL.Path, resp.StatusCode, truncate(raw, 256))
	}
	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
