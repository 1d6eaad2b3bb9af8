package domain

// Product is a catalog entity as served by the upstream print-provider API,
// already filtered down to enabled variants. Immutable once fetched; the
// catalog replaces the whole list on re-fetch.
type Product struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Tags        []string        `json:"tags"`
	Options     []ProductOption `json:"options"`
	Variants    []Variant       `json:"variants"`
	Images      []ProductImage  `json:"images"`
	Visible     bool            `json:"visible"`
}

// ProductOption is an option group (e.g. color, size) with its enumerated
// values. Color-type options may carry swatch data per value.
type ProductOption struct {
	Name   string        `json:"name"`
	Type   string        `json:"type"`
	Values []OptionValue `json:"values"`
}

type OptionValue struct {
	ID     int      `json:"id"`
	Title  string   `json:"title"`
	Colors []string `json:"colors,omitempty"`
}

// Variant is a specific purchasable configuration of a product. Options
// holds the option-value ids the variant represents.
type Variant struct {
	ID         int    `json:"id"`
	SKU        string `json:"sku"`
	PriceCents int64  `json:"price"`
	Title      string `json:"title"`
	IsEnabled  bool   `json:"is_enabled"`
	IsDefault  bool   `json:"is_default"`
	Options    []int  `json:"options"`
}

// ProductImage is tagged with the variant ids it illustrates.
type ProductImage struct {
	Src        string `json:"src"`
	VariantIDs []int  `json:"variant_ids"`
	Position   string `json:"position"`
	IsDefault  bool   `json:"is_default"`
}

// VariantByID returns the variant with the given id, or nil.
func (p *Product) VariantByID(variantID int) *Variant {
	for i := range p.Variants {
		if p.Variants[i].ID == variantID {
			return &p.Variants[i]
		}
	}
	return nil
}

// ImageForVariant picks a display image for a variant: an image tagged with
// the variant id, else the default image, else the first image, else "".
func (p *Product) ImageForVariant(variantID int) string {
	for _, img := range p.Images {
		for _, id := range img.VariantIDs {
			if id == variantID {
				return img.Src
			}
		}
	}
	for _, img := range p.Images {
		if img.IsDefault {
			return img.Src
		}
	}
	if len(p.Images) > 0 {
		return p.Images[0].Src
	}
	return ""
}
