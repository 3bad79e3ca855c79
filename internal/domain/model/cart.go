package model

// CartItem is a dish added to the cart.
type CartItem struct {
	ID       int64
	Name     string
	Quantity int
	Price    float64
}

// CartSnapshot is a read-only, point-in-time view of a user's cart with
// derived totals. Passed by value into the chat resolver.
type CartSnapshot struct {
	Items         []CartItem
	Subtotal      float64
	DeliveryFee   float64
	Total         float64
	PromoCode     string
	PromoDiscount float64
}

// ItemCount returns the total number of units across all cart lines.
func (c CartSnapshot) ItemCount() int {
	count := 0
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}
