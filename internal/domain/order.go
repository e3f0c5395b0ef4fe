package domain

// Order is the outbound submission payload. It is constructed once, at
// submission time, and never mutated afterwards.
type Order struct {
	Payment PaymentMethod `json:"payment"`
	Email   string        `json:"email"`
	Phone   string        `json:"phone"`
	Address string        `json:"address"`
	Items   []string      `json:"items"`
	Total   float64       `json:"total"`
}

// OrderResponse is the gateway's confirmation of an accepted order.
type OrderResponse struct {
	ID    string  `json:"id"`
	Total float64 `json:"total"`
}

// NewOrder builds the submission payload from the buyer record and the basket
// contents. Item order is preserved; priceless items contribute 0 to the total.
func NewOrder(buyer Buyer, items []Product) Order {
	ids := make([]string, 0, len(items))
	var total float64
	for _, item := range items {
		ids = append(ids, item.ID)
		total += item.PriceValue()
	}

	return Order{
		Payment: buyer.Payment,
		Email:   buyer.Email,
		Phone:   buyer.Phone,
		Address: buyer.Address,
		Items:   ids,
		Total:   total,
	}
}
