// Package model holds the storefront's canonical state: the product catalog,
// the basket and the buyer draft. Every mutation emits a change event on the
// shared bus after the state has been updated, so a mutating call and its
// change notification are atomic from the caller's point of view. Mutators
// are expected to be serialized by the orchestrator; queries are safe at any
// point between mutations.
package model

import (
	"storefront/internal/domain"
	"storefront/internal/events"
)

// Catalog is the current product listing plus the product under detail view.
// The listing is replaced wholesale on every successful fetch.
type Catalog struct {
	bus      *events.Bus
	products []domain.Product
	byID     map[string]int
	selected *domain.Product
}

// NewCatalog creates an empty catalog bound to the bus.
func NewCatalog(bus *events.Bus) *Catalog {
	return &Catalog{
		bus:  bus,
		byID: make(map[string]int),
	}
}

// SetProducts replaces the product sequence, preserving server order, and
// emits catalog:changed. There is no diffing: the sequence is always replaced
// and the event always fires.
func (c *Catalog) SetProducts(products []domain.Product) {
	c.products = make([]domain.Product, len(products))
	copy(c.products, products)

	c.byID = make(map[string]int, len(products))
	for i, p := range c.products {
		c.byID[p.ID] = i
	}

	c.bus.Emit(events.CatalogChanged{Products: c.Products()})
}

// Products returns a copy of the current listing in server order.
func (c *Catalog) Products() []domain.Product {
	out := make([]domain.Product, len(c.products))
	copy(out, c.products)
	return out
}

// ProductByID looks a product up in the last-loaded set.
func (c *Catalog) ProductByID(id string) (domain.Product, bool) {
	i, ok := c.byID[id]
	if !ok {
		return domain.Product{}, false
	}
	return c.products[i], true
}

// SetSelected marks the product under detail view and emits catalog:selected.
func (c *Catalog) SetSelected(p domain.Product) {
	selected := p
	c.selected = &selected
	c.bus.Emit(events.CatalogSelected{Product: &selected})
}

// Selected returns the product under detail view, if any.
func (c *Catalog) Selected() (domain.Product, bool) {
	if c.selected == nil {
		return domain.Product{}, false
	}
	return *c.selected, true
}
