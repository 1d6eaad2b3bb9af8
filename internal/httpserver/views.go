package httpserver

import (
	"fmt"

	"developerhorizon/internal/domain"
	"developerhorizon/internal/service/checkout"
)

// formatCents renders a minor-unit amount as a display price, "$4.99".
func formatCents(cents int64) string {
	if cents < 0 {
		return fmt.Sprintf("-$%d.%02d", -cents/100, -cents%100)
	}
	return fmt.Sprintf("$%d.%02d", cents/100, cents%100)
}

type cartView struct {
	Items           []domain.CartItem `json:"items"`
	SubtotalCents   int64             `json:"subtotal"`
	SubtotalDisplay string            `json:"subtotalDisplay"`
}

func newCartView(items []domain.CartItem) cartView {
	subtotal := domain.CartSubtotalCents(items)
	return cartView{
		Items:           items,
		SubtotalCents:   subtotal,
		SubtotalDisplay: formatCents(subtotal),
	}
}

type shippingOptionView struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	PriceCents   int64  `json:"price"`
	PriceDisplay string `json:"priceDisplay"`
}

type checkoutView struct {
	Ready           bool                 `json:"ready"`
	ShippingOptions []shippingOptionView `json:"shippingOptions"`
	SelectedID      int                  `json:"selectedShippingId,omitempty"`
	SubtotalCents   int64                `json:"subtotal"`
	SubtotalDisplay string               `json:"subtotalDisplay"`
	TotalCents      int64                `json:"total"`
	TotalDisplay    string               `json:"totalDisplay"`
	ClientSecret    string               `json:"clientSecret,omitempty"`
	Message         string               `json:"message,omitempty"`
}

func newCheckoutView(v checkout.View) checkoutView {
	out := checkoutView{
		Ready:           v.Ready,
		SubtotalCents:   v.SubtotalCents,
		SubtotalDisplay: formatCents(v.SubtotalCents),
		TotalCents:      v.TotalCents,
		TotalDisplay:    formatCents(v.TotalCents),
		ClientSecret:    v.ClientSecret,
		Message:         v.Message,
	}
	for _, opt := range v.ShippingOptions {
		out.ShippingOptions = append(out.ShippingOptions, shippingOptionView{
			ID:           opt.ID,
			Name:         opt.Name,
			PriceCents:   opt.PriceCents,
			PriceDisplay: formatCents(opt.PriceCents),
		})
	}
	if v.Selected != nil {
		out.SelectedID = v.Selected.ID
	}
	return out
}
