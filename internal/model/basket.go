package model

import (
	"storefront/internal/domain"
	"storefront/internal/events"
)

// Basket is the in-progress purchase selection. Insertion order is display
// order. A priceless product may be stored here; it contributes 0 to the
// total and the detail view is the layer that refuses to add it.
type Basket struct {
	bus   *events.Bus
	items []domain.Product
}

// NewBasket creates an empty basket bound to the bus.
func NewBasket(bus *events.Bus) *Basket {
	return &Basket{bus: bus}
}

// AddItem appends the product and emits basket:changed. Membership is not
// checked here; callers avoid duplicates by consulting HasItem first.
func (b *Basket) AddItem(p domain.Product) {
	b.items = append(b.items, p)
	b.bus.Emit(events.BasketChanged{Items: b.Items()})
}

// RemoveItem drops every item with the given id and emits basket:changed even
// when nothing matched. A stale id is a silent no-op, not an error.
func (b *Basket) RemoveItem(id string) {
	kept := b.items[:0]
	for _, item := range b.items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	b.items = kept
	b.bus.Emit(events.BasketChanged{Items: b.Items()})
}

// Clear empties the basket and emits basket:changed, even when already empty.
func (b *Basket) Clear() {
	b.items = nil
	b.bus.Emit(events.BasketChanged{Items: nil})
}

// Items returns a copy of the basket contents in insertion order.
func (b *Basket) Items() []domain.Product {
	out := make([]domain.Product, len(b.items))
	copy(out, b.items)
	return out
}

// TotalPrice sums the item prices, counting priceless items as 0.
func (b *Basket) TotalPrice() float64 {
	var total float64
	for _, item := range b.items {
		total += item.PriceValue()
	}
	return total
}

// HasItem reports whether a product with the id is in the basket.
func (b *Basket) HasItem(id string) bool {
	for _, item := range b.items {
		if item.ID == id {
			return true
		}
	}
	return false
}

// ItemsCount returns the number of basket entries.
func (b *Basket) ItemsCount() int {
	return len(b.items)
}
