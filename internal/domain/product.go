package domain

// Product represents a single catalog entry. Products are immutable once
// fetched from the gateway; the catalog owns the canonical sequence.
type Product struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Category    string   `json:"category"`
	Price       *float64 `json:"price"` // nil means not for sale
	Image       string   `json:"image"`
	Description string   `json:"description"`
}

// PriceValue returns the purchase price, counting a priceless product as 0.
func (p Product) PriceValue() float64 {
	if p.Price == nil {
		return 0
	}
	return *p.Price
}

// Purchasable reports whether the product carries a price at all.
func (p Product) Purchasable() bool {
	return p.Price != nil
}
