package domain

// Canonical shipping method codes expected by the order-creation endpoint,
// distinct from the provider's own shipping-tier identifiers.
const (
	ShippingStandard = 1
	ShippingPriority = 2
	ShippingExpress  = 3
	ShippingEconomy  = 4
)

// ShippingOption is one quoted shipping method, already mapped to a
// canonical code. Recomputed on every address change; never persisted.
type ShippingOption struct {
	ID         int      `json:"id"`
	Name       string   `json:"name"`
	PriceCents int64    `json:"price"`
	Countries  []string `json:"countries"`
}

// Address is a shipping destination. Region covers both states and
// provinces.
type Address struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone,omitempty"`
	Country   string `json:"country"`
	Region    string `json:"region"`
	City      string `json:"city"`
	Address1  string `json:"address1"`
	Address2  string `json:"address2,omitempty"`
	Zip       string `json:"zip"`
}

// Complete reports whether every field required for a shipping quote is
// present. Country carries a default and phone/address2 are optional, so
// neither gates the quote.
func (a Address) Complete() bool {
	return a.FirstName != "" &&
		a.LastName != "" &&
		a.Address1 != "" &&
		a.City != "" &&
		a.Region != "" &&
		a.Zip != ""
}
