package view

import (
	"fmt"

	"storefront/internal/domain"
	"storefront/internal/events"
)

// CatalogCardHandles are the resolved slots of one gallery card.
type CatalogCardHandles struct {
	Title    Handle
	Category Handle
	Price    Handle
	Image    Handle
}

// CatalogCard is one product tile in the gallery. Clicking it asks for the
// product's detail view.
type CatalogCard struct {
	bus       *events.Bus
	h         CatalogCardHandles
	productID string
}

// BindCatalogCard attaches a catalog card to its resolved handles.
func BindCatalogCard(h CatalogCardHandles, bus *events.Bus) *CatalogCard {
	return &CatalogCard{bus: bus, h: h}
}

// Render pushes the product's display properties into the handles.
func (c *CatalogCard) Render(p domain.Product, imageBase string) {
	c.productID = p.ID
	SetText(c.h.Title, p.Title)
	SetText(c.h.Category, p.Category)
	SetText(c.h.Price, FormatPrice(p.Price))
	SetImage(c.h.Image, imageBase+p.Image)
}

// ProductID returns the id of the product last rendered into the card.
func (c *CatalogCard) ProductID() string {
	return c.productID
}

// Select is the card click gesture.
func (c *CatalogCard) Select() {
	c.bus.Emit(events.CardSelect{ProductID: c.productID})
}

// PreviewCardHandles are the resolved slots of the detail view card.
type PreviewCardHandles struct {
	Title       Handle
	Category    Handle
	Price       Handle
	Image       Handle
	Description Handle
	Action      Handle
}

// PreviewCard is the product detail view inside the modal. Its action button
// either adds the product to the basket or removes it, depending on the
// membership flag rendered into it.
type PreviewCard struct {
	bus       *events.Bus
	h         PreviewCardHandles
	productID string
	inBasket  bool
}

// BindPreviewCard attaches a preview card to its resolved handles.
func BindPreviewCard(h PreviewCardHandles, bus *events.Bus) *PreviewCard {
	return &PreviewCard{bus: bus, h: h}
}

// Render pushes the product and its basket membership into the handles. A
// priceless product gets a disabled action button unless it is already in the
// basket and can still be removed.
func (c *PreviewCard) Render(p domain.Product, imageBase string, inBasket bool) {
	c.productID = p.ID
	c.inBasket = inBasket

	SetText(c.h.Title, p.Title)
	SetText(c.h.Category, p.Category)
	SetText(c.h.Price, FormatPrice(p.Price))
	SetImage(c.h.Image, imageBase+p.Image)
	SetText(c.h.Description, p.Description)

	if inBasket {
		SetText(c.h.Action, "Remove from basket")
		SetDisabled(c.h.Action, false)
	} else {
		SetText(c.h.Action, "Buy")
		SetDisabled(c.h.Action, !p.Purchasable())
	}
}

// Action is the buy/remove button gesture.
func (c *PreviewCard) Action() {
	if c.inBasket {
		c.bus.Emit(events.CardRemove{ProductID: c.productID})
		return
	}
	c.bus.Emit(events.CardAdd{ProductID: c.productID})
}

// BasketRowHandles are the resolved slots of one basket line item.
type BasketRowHandles struct {
	Index Handle
	Title Handle
	Price Handle
}

// BasketRow is one line item inside the basket panel.
type BasketRow struct {
	bus       *events.Bus
	h         BasketRowHandles
	productID string
}

// BindBasketRow attaches a basket row to its resolved handles.
func BindBasketRow(h BasketRowHandles, bus *events.Bus) *BasketRow {
	return &BasketRow{bus: bus, h: h}
}

// Render pushes the product and its one-based display position.
func (r *BasketRow) Render(p domain.Product, index int) {
	r.productID = p.ID
	SetText(r.h.Index, fmt.Sprintf("%d", index))
	SetText(r.h.Title, p.Title)
	SetText(r.h.Price, FormatPrice(p.Price))
}

// ProductID returns the id of the product last rendered into the row.
func (r *BasketRow) ProductID() string {
	return r.productID
}

// Remove is the per-row delete gesture.
func (r *BasketRow) Remove() {
	r.bus.Emit(events.BasketRemove{ProductID: r.productID})
}
