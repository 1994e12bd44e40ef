package entity

// Product represents a catalog product as persisted by the backend.
type Product struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Description   string  `json:"description,omitempty"`
	Price         float64 `json:"price"`
	StockQuantity int     `json:"stockQuantity"`
	CategoryID    int64   `json:"categoryId"`
	CategoryName  string  `json:"categoryName,omitempty"`
	ImageURL      string  `json:"imageUrl,omitempty"`
	OutOfStock    bool    `json:"outOfStock"`
}

// SortProductsByAvailability returns the products with in-stock items first
// and out-of-stock items last, preserving the relative order within each
// group. The input slice is not modified.
func SortProductsByAvailability(products []Product) []Product {
	sorted := make([]Product, 0, len(products))
	for _, p := range products {
		if !p.OutOfStock {
			sorted = append(sorted, p)
		}
	}
	for _, p := range products {
		if p.OutOfStock {
			sorted = append(sorted, p)
		}
	}

	return sorted
}
