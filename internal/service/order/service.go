// Package order handles the two ends of an order's life: submitting it
// after the payment provider confirms a charge, and looking up its status
// later with catalog-enriched line items.
package order

import (
	"context"
	"errors"
	"fmt"
	"log"

	"developerhorizon/internal/domain"
	"developerhorizon/internal/repository/handoff"
	cartsvc "developerhorizon/internal/service/cart"
	checkoutsvc "developerhorizon/internal/service/checkout"
)

// Currency is the fixed order currency.
const Currency = "USD"

var (
	// ErrRecordingFailed is the severe case: the charge went through but
	// the order was not recorded. Never retried automatically; surfaced
	// distinctly so support can resolve it.
	ErrRecordingFailed = errors.New("payment succeeded, but order submission failed")

	// ErrMissingLookup indicates the status page was reached without an
	// order id or email; no network call is made.
	ErrMissingLookup = errors.New("invalid order details")

	// ErrNoDetails indicates the status endpoint answered with no body:
	// the order exists but carries no details, distinct from a failure.
	ErrNoDetails = errors.New("no order details available")

	// ErrStatusUnavailable covers transport or upstream failures on the
	// status lookup.
	ErrStatusUnavailable = errors.New("unable to retrieve order details")
)

// Submitter sends the finalized order to the order-creation endpoint.
type Submitter interface {
	SubmitOrder(ctx context.Context, order domain.OrderRequest, paymentID, idempotencyKey string) (*domain.OrderRecord, error)
}

// StatusFetcher reads order status from upstream.
type StatusFetcher interface {
	OrderStatus(ctx context.Context, orderID, email string) (*domain.OrderStatus, error)
	OrderStatusByPath(ctx context.Context, orderID, email string) (*domain.OrderStatus, error)
}

// Catalog resolves products for line-item enrichment.
type Catalog interface {
	ProductByID(id string) *domain.Product
}

// Service wires order submission and status lookup to the session stores.
type Service struct {
	submitter Submitter
	status    StatusFetcher
	catalog   Catalog
	carts     *cartsvc.Manager
	checkouts *checkoutsvc.Manager
	handoffs  handoff.Repository
	logger    *log.Logger
}

func New(submitter Submitter, status StatusFetcher, catalog Catalog, carts *cartsvc.Manager, checkouts *checkoutsvc.Manager, handoffs handoff.Repository, logger *log.Logger) *Service {
	return &Service{
		submitter: submitter,
		status:    status,
		catalog:   catalog,
		carts:     carts,
		checkouts: checkouts,
		handoffs:  handoffs,
		logger:    logger,
	}
}

// Confirmation is what the payment collaborator reports on success: the
// payment confirmation id and the amount actually charged.
type Confirmation struct {
	PaymentID   string `json:"paymentId"`
	AmountCents int64  `json:"amount"`
}

// Result is the successful submission outcome.
type Result struct {
	OrderID    string `json:"orderId"`
	Email      string `json:"email"`
	RedirectTo string `json:"redirectTo"`
}

// Submit builds the order from the live cart and checkout draft and sends it
// exactly once, keyed by the payment confirmation id. The total is the
// confirmed charged amount, never recomputed locally, so the recorded order
// cannot drift from what was charged. On success the cart is cleared, the
// order id and email are written to the handoff store, and the checkout
// attempt is reset.
func (s *Service) Submit(ctx context.Context, sessionID string, conf Confirmation) (*Result, error) {
	if conf.PaymentID == "" {
		return nil, fmt.Errorf("payment confirmation id required")
	}

	cart := s.carts.Store(ctx, sessionID)
	items := cart.Items()
	if len(items) == 0 {
		return nil, domain.ErrEmptyCart
	}

	chk := s.checkouts.Checkout(ctx, sessionID)
	email, addr, selected := chk.Snapshot()

	shippingMethod := domain.ShippingStandard
	var shippingCents int64
	if selected != nil {
		shippingMethod = selected.ID
		shippingCents = selected.PriceCents
	}

	lineItems := make([]domain.OrderLineItem, 0, len(items))
	for _, it := range items {
		lineItems = append(lineItems, domain.OrderLineItem{
			ProductID: it.ProductID,
			VariantID: it.VariantID,
			Quantity:  it.Quantity,
		})
	}

	order := domain.OrderRequest{
		LineItems:       lineItems,
		Customer:        domain.OrderCustomer{Email: email, Address: addr},
		TotalPriceCents: conf.AmountCents,
		Currency:        Currency,
		ShippingMethod:  shippingMethod,
		ShippingCents:   shippingCents,
	}

	rec, err := s.submitter.SubmitOrder(ctx, order, conf.PaymentID, chk.AttemptKey())
	if err != nil {
		s.logger.Printf("order submission failed for payment %s: %v", conf.PaymentID, err)
		return nil, fmt.Errorf("%w: %v", ErrRecordingFailed, err)
	}

	if err := cart.Clear(ctx); err != nil {
		s.logger.Printf("clear cart after order %s: %v", rec.ID, err)
	}
	if err := s.handoffs.Put(ctx, handoff.Handoff{SessionID: sessionID, OrderID: rec.ID, Email: email}); err != nil {
		s.logger.Printf("store order handoff for %s: %v", rec.ID, err)
	}
	s.checkouts.Reset(sessionID)

	return &Result{
		OrderID:    rec.ID,
		Email:      email,
		RedirectTo: "/order-success?orderId=" + rec.ID,
	}, nil
}

// EnrichedItem is a status line item with display data recovered from the
// catalog where possible, falling back to what the status payload embedded.
type EnrichedItem struct {
	Title        string `json:"title"`
	Image        string `json:"image,omitempty"`
	VariantLabel string `json:"variantLabel"`
	SKU          string `json:"sku"`
	Country      string `json:"country"`
	Quantity     int    `json:"quantity"`
}

// StatusView is the status payload plus enriched items.
type StatusView struct {
	Order *domain.OrderStatus `json:"order"`
	Items []EnrichedItem      `json:"items"`
}

// Lookup fetches order status for an order id and email. Either value
// missing from the query falls back to the session's stored handoff, the
// query taking precedence; if still missing, it fails fast without a
// network call.
func (s *Service) Lookup(ctx context.Context, sessionID, orderID, email string) (*StatusView, error) {
	orderID, email = s.resolveLookup(ctx, sessionID, orderID, email)
	if orderID == "" || email == "" {
		return nil, ErrMissingLookup
	}

	status, err := s.status.OrderStatus(ctx, orderID, email)
	return s.buildView(status, err)
}

// LookupSuccess is the order-success variant of Lookup, using the GET
// status endpoint.
func (s *Service) LookupSuccess(ctx context.Context, sessionID, orderID string) (*StatusView, error) {
	orderID, email := s.resolveLookup(ctx, sessionID, orderID, "")
	if orderID == "" || email == "" {
		return nil, ErrMissingLookup
	}

	status, err := s.status.OrderStatusByPath(ctx, orderID, email)
	return s.buildView(status, err)
}

func (s *Service) resolveLookup(ctx context.Context, sessionID, orderID, email string) (string, string) {
	if orderID != "" && email != "" {
		return orderID, email
	}
	h, err := s.handoffs.Get(ctx, sessionID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.Printf("load order handoff: %v", err)
		}
		return orderID, email
	}
	if orderID == "" {
		orderID = h.OrderID
	}
	if email == "" {
		email = h.Email
	}
	return orderID, email
}

func (s *Service) buildView(status *domain.OrderStatus, err error) (*StatusView, error) {
	if err != nil {
		s.logger.Printf("error fetching order details: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrStatusUnavailable, err)
	}
	if status == nil {
		return nil, ErrNoDetails
	}
	return &StatusView{Order: status, Items: s.enrich(status.Items)}, nil
}

// enrich cross-references each status item against the catalog by product
// id then variant id, preferring catalog title, variant label and image and
// falling back to what the status response embedded, finally to no image.
func (s *Service) enrich(items []domain.OrderStatusItem) []EnrichedItem {
	out := make([]EnrichedItem, 0, len(items))
	for _, it := range items {
		enriched := EnrichedItem{
			Title:        it.Title,
			VariantLabel: it.VariantLabel,
			SKU:          it.SKU,
			Country:      it.Country,
			Quantity:     it.Quantity,
		}
		if p := s.catalog.ProductByID(it.ProductID); p != nil {
			if p.Title != "" {
				enriched.Title = p.Title
			}
			if v := p.VariantByID(it.VariantID); v != nil && v.Title != "" {
				enriched.VariantLabel = v.Title
			}
			enriched.Image = p.ImageForVariant(it.VariantID)
		}
		out = append(out, enriched)
	}
	return out
}
