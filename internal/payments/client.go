// Package payments creates payment sessions against the payments API. The
// returned client token binds the pending charge amount to the payment
// provider's collection widget.
package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

type Client struct {
	httpClient *http.Client
	baseURL    string
	storeID    string
}

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

type sessionRequest struct {
	StoreID  string `json:"storeId"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

type sessionResponse struct {
	ClientSecret string `json:"clientSecret"`
}

// CreateSession requests a payment session for the amount in minor units and
// returns the provider's client token.
func (c *Client) CreateSession(ctx context.Context, amountCents int64, currency string) (string, error) {
	raw, err := json.Marshal(sessionRequest{StoreID: c.storeID, Amount: amountCents, Currency: currency})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/create-payment-intent", bytes.NewReader(raw))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("create payment session: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("create payment session: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("create payment session: status %d", resp.StatusCode)
	}

	var out sessionResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return "", fmt.Errorf("create payment session: decode: %w", err)
	}
	if out.ClientSecret == "" {
		return "", fmt.Errorf("create payment session: empty client secret")
	}
	return out.ClientSecret, nil
}
