package checkout

import (
	"developerhorizon/internal/domain"
	"developerhorizon/internal/printify"
)

// providerMethodMap translates the provider's shipping-tier identifiers into
// the canonical codes the order-creation endpoint expects. Unknown provider
// ids fall back to standard.
var providerMethodMap = map[int]int{
	475: domain.ShippingStandard,
	476: domain.ShippingPriority,
	477: domain.ShippingExpress,
	478: domain.ShippingEconomy,
}

// MapRates flattens the four-tier rates response into canonical shipping
// options. A tier holding a bare price is coerced into one synthetic named
// option carrying the standard code, whichever tier it came from; the name
// still identifies the tier.
func MapRates(resp *printify.RatesResponse) []domain.ShippingOption {
	if resp == nil {
		return nil
	}
	var out []domain.ShippingOption
	out = append(out, mapTier(resp.Standard, "Standard Shipping")...)
	out = append(out, mapTier(resp.Priority, "Priority Shipping")...)
	out = append(out, mapTier(resp.Express, "Express Shipping")...)
	out = append(out, mapTier(resp.Economy, "Economy Shipping")...)
	return out
}

func mapTier(t printify.Tier, name string) []domain.ShippingOption {
	if t.Flat != nil {
		return []domain.ShippingOption{{
			ID:         domain.ShippingStandard,
			Name:       name,
			PriceCents: *t.Flat,
			Countries:  []string{"US"},
		}}
	}
	out := make([]domain.ShippingOption, 0, len(t.Options))
	for _, opt := range t.Options {
		id, ok := providerMethodMap[opt.ID]
		if !ok {
			id = domain.ShippingStandard
		}
		out = append(out, domain.ShippingOption{
			ID:         id,
			Name:       opt.Name,
			PriceCents: opt.Price,
			Countries:  opt.Countries,
		})
	}
	return out
}

// defaultOption picks the standard option when quoted, else the first
// available option, else none.
func defaultOption(options []domain.ShippingOption) *domain.ShippingOption {
	for i := range options {
		if options[i].ID == domain.ShippingStandard {
			opt := options[i]
			return &opt
		}
	}
	if len(options) > 0 {
		opt := options[0]
		return &opt
	}
	return nil
}
