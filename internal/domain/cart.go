package domain

// CartItem is one line of a shopping cart: a purchasable variant of a
// product plus the quantity requested, with enough display data snapshotted
// at add time to render the cart without a catalog round trip.
type CartItem struct {
	ProductID  string `json:"productId"`
	VariantID  int    `json:"variantId"`
	Title      string `json:"title"`
	Image      string `json:"image"`
	Color      string `json:"color"`
	Size       string `json:"size"`
	PriceCents int64  `json:"price"`
	Quantity   int    `json:"quantity"`
}

// CartSubtotalCents sums unit price times quantity over all items.
func CartSubtotalCents(items []CartItem) int64 {
	var sum int64
	for _, it := range items {
		sum += it.PriceCents * int64(it.Quantity)
	}
	return sum
}
