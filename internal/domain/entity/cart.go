package entity

// CartItem is a single line in the cart. CartItemID is the backend identity
// required for removal; the gateway normalizes it from the backend's
// polymorphic field naming before a CartItem ever reaches the usecase layer.
type CartItem struct {
	CartItemID   int64   `json:"cartItemId"`
	ProductID    int64   `json:"productId"`
	ProductName  string  `json:"productName"`
	Quantity     int     `json:"quantity"`
	UnitPrice    float64 `json:"unitPrice"`
	LineSubtotal float64 `json:"lineSubtotal"`
}

// Cart is the authoritative server-backed cart snapshot.
type Cart struct {
	Items      []CartItem `json:"items"`
	TotalPrice float64    `json:"totalPrice"`
}

// ItemCount returns the badge count, derived independently of TotalPrice as
// the sum of line quantities.
func (c *Cart) ItemCount() int {
	if c == nil {
		return 0
	}

	count := 0
	for _, item := range c.Items {
		count += item.Quantity
	}

	return count
}

// SubtotalSum re-derives the total from the lines. The displayed total must
// always equal this sum once items have visibly changed.
func (c *Cart) SubtotalSum() float64 {
	if c == nil {
		return 0
	}

	sum := 0.0
	for _, item := range c.Items {
		sum += item.LineSubtotal
	}

	return sum
}
