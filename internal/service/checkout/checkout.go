// Package checkout orchestrates the checkout draft for one session: contact
// and address collection, shipping-rate quotes, and payment-session
// creation, gated so a payment session is never requested while the draft is
// incomplete.
package checkout

import (
	"context"
	"log"
	"sync"

	"developerhorizon/internal/domain"
	"developerhorizon/internal/printify"
	cartsvc "developerhorizon/internal/service/cart"
	"github.com/google/uuid"
)

// Currency is the fixed checkout currency.
const Currency = "usd"

// IncompleteFormMessage is shown in place of the payment widget until the
// draft is ready and a payment session is resolved.
const IncompleteFormMessage = "Please complete all required fields and agree to the terms and conditions to continue."

// RatesFetcher quotes shipping for a destination and cart contents.
type RatesFetcher interface {
	ShippingRates(ctx context.Context, addr domain.Address, items []domain.OrderLineItem) (*printify.RatesResponse, error)
}

// SessionCreator obtains a payment-session token for an amount.
type SessionCreator interface {
	CreateSession(ctx context.Context, amountCents int64, currency string) (string, error)
}

// Draft is the transient checkout form state. It is never persisted.
type Draft struct {
	Email        string         `json:"email"`
	ConfirmEmail string         `json:"confirmEmail"`
	Address      domain.Address `json:"address"`
	AgreedTerms  bool           `json:"agreedToTerms"`
}

// Checkout is the orchestrator for one session's checkout attempt.
type Checkout struct {
	mu       sync.Mutex
	cart     *cartsvc.Store
	rates    RatesFetcher
	payments SessionCreator
	logger   *log.Logger

	draft        Draft
	options      []domain.ShippingOption
	selected     *domain.ShippingOption
	clientSecret string

	// Generation counters turn the last-resolver-wins race between
	// superseded in-flight requests into explicit last-issuer-wins: a
	// response is applied only if its generation is still the latest.
	quoteGen   uint64
	paymentGen uint64

	// paymentStale marks that the next ready state must issue a fresh
	// payment session (validity regained or shipping selection changed).
	paymentStale bool

	// attemptKey identifies this checkout attempt for order-submission
	// idempotency. Stable across manual retries of the same attempt; the
	// order processor deduplicates by it.
	attemptKey string
}

func New(cart *cartsvc.Store, rates RatesFetcher, payments SessionCreator, logger *log.Logger) *Checkout {
	return &Checkout{
		cart:       cart,
		rates:      rates,
		payments:   payments,
		logger:     logger,
		attemptKey: uuid.NewString(),
	}
}

// AttemptKey returns the idempotency key for this checkout attempt.
func (c *Checkout) AttemptKey() string {
	return c.attemptKey
}

// Ready reports whether the draft is payment-ready: emails match and are
// non-empty, the required address fields are filled, the cart is non-empty
// and the terms are agreed.
func (c *Checkout) Ready() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.readyLocked()
}

func (c *Checkout) readyLocked() bool {
	d := c.draft
	return d.Email != "" &&
		d.ConfirmEmail != "" &&
		d.Email == d.ConfirmEmail &&
		d.Address.Complete() &&
		!c.cart.Empty() &&
		d.AgreedTerms
}

// UpdateDraft applies the submitted form fields and drives the two derived
// subprocesses: a shipping quote whenever the address is complete, and a
// payment session when the draft just became ready. Returns
// domain.ErrEmptyCart when the cart is empty, which callers translate into a
// redirect back to the cart.
func (c *Checkout) UpdateDraft(ctx context.Context, d Draft) (View, error) {
	if c.cart.Empty() {
		return View{}, domain.ErrEmptyCart
	}

	c.mu.Lock()
	wasReady := c.readyLocked()
	c.draft = d
	addressComplete := d.Address.Complete()
	c.mu.Unlock()

	if addressComplete {
		c.fetchQuote(ctx)
	}

	c.mu.Lock()
	if !wasReady && c.readyLocked() {
		c.paymentStale = true
	}
	c.mu.Unlock()

	c.maybeCreatePaymentSession(ctx)
	return c.View(), nil
}

// SelectShipping switches the selected shipping option by canonical code.
// Changing the selection while payment-ready always issues a new payment
// session rather than mutating the old one.
func (c *Checkout) SelectShipping(ctx context.Context, optionID int) (View, error) {
	if c.cart.Empty() {
		return View{}, domain.ErrEmptyCart
	}

	c.mu.Lock()
	c.selected = nil
	for i := range c.options {
		if c.options[i].ID == optionID {
			opt := c.options[i]
			c.selected = &opt
			break
		}
	}
	c.paymentStale = true
	c.mu.Unlock()

	c.maybeCreatePaymentSession(ctx)
	return c.View(), nil
}

// fetchQuote posts the address and cart lines to the rates endpoint and
// replaces the option set. Failures are logged and leave the prior options
// in place; no user-facing error is surfaced.
func (c *Checkout) fetchQuote(ctx context.Context) {
	c.mu.Lock()
	c.quoteGen++
	gen := c.quoteGen
	addr := c.draft.Address
	c.mu.Unlock()

	items := cartLineItems(c.cart.Items())

	resp, err := c.rates.ShippingRates(ctx, addr, items)
	if err != nil {
		c.logger.Printf("failed to fetch shipping options: %v", err)
		return
	}

	options := MapRates(resp)

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.quoteGen {
		return
	}
	c.options = options
	c.selected = defaultOption(options)
	if c.selected != nil && c.readyLocked() {
		c.paymentStale = true
	}
}

// maybeCreatePaymentSession requests a payment session when the draft is
// ready, an option is selected and the current session is stale. The amount
// is the cart subtotal plus the selected option's price.
func (c *Checkout) maybeCreatePaymentSession(ctx context.Context) {
	c.mu.Lock()
	if !c.paymentStale || !c.readyLocked() || c.selected == nil {
		c.mu.Unlock()
		return
	}
	c.paymentStale = false
	c.paymentGen++
	gen := c.paymentGen
	amount := domain.CartSubtotalCents(c.cart.Items()) + c.selected.PriceCents
	c.mu.Unlock()

	secret, err := c.payments.CreateSession(ctx, amount, Currency)
	if err != nil {
		c.logger.Printf("error creating payment session: %v", err)
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.paymentGen {
		return
	}
	c.clientSecret = secret
}

// View is the render state exposed to the checkout page.
type View struct {
	Ready           bool                    `json:"ready"`
	ShippingOptions []domain.ShippingOption `json:"shippingOptions"`
	Selected        *domain.ShippingOption  `json:"selectedShipping,omitempty"`
	SubtotalCents   int64                   `json:"subtotal"`
	TotalCents      int64                   `json:"total"`
	ClientSecret    string                  `json:"clientSecret,omitempty"`
	Message         string                  `json:"message,omitempty"`
}

// View returns the current checkout render state. The payment token is
// exposed only when the draft is ready and a session is resolved; otherwise
// a fixed complete-the-form message is shown.
func (c *Checkout) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()

	subtotal := domain.CartSubtotalCents(c.cart.Items())
	v := View{
		Ready:           c.readyLocked(),
		ShippingOptions: append([]domain.ShippingOption(nil), c.options...),
		SubtotalCents:   subtotal,
		TotalCents:      subtotal,
	}
	if c.selected != nil {
		opt := *c.selected
		v.Selected = &opt
		v.TotalCents += opt.PriceCents
	}
	if v.Ready && c.clientSecret != "" {
		v.ClientSecret = c.clientSecret
	} else {
		v.Message = IncompleteFormMessage
	}
	return v
}

// Snapshot returns the data order submission needs: the contact email, the
// shipping destination and the selected option (nil when none).
func (c *Checkout) Snapshot() (email string, addr domain.Address, selected *domain.ShippingOption) {
	c.mu.Lock()
	defer c.mu.Unlock()
	email = c.draft.Email
	addr = c.draft.Address
	if c.selected != nil {
		opt := *c.selected
		selected = &opt
	}
	return email, addr, selected
}

func cartLineItems(items []domain.CartItem) []domain.OrderLineItem {
	out := make([]domain.OrderLineItem, 0, len(items))
	for _, it := range items {
		out = append(out, domain.OrderLineItem{
			ProductID: it.ProductID,
			VariantID: it.VariantID,
			Quantity:  it.Quantity,
		})
	}
	return out
}
