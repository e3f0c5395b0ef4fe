package view

import (
	"fmt"

	"storefront/internal/domain"
	"storefront/internal/events"
)

// SuccessPanelHandles are the resolved slots of the confirmation panel.
type SuccessPanelHandles struct {
	Description Handle
}

// SuccessPanel confirms a completed order.
type SuccessPanel struct {
	bus *events.Bus
	h   SuccessPanelHandles
}

// BindSuccessPanel attaches the panel to its resolved handles.
func BindSuccessPanel(h SuccessPanelHandles, bus *events.Bus) *SuccessPanel {
	return &SuccessPanel{bus: bus, h: h}
}

// Render shows the confirmed order id and total.
func (p *SuccessPanel) Render(resp domain.OrderResponse) {
	SetText(p.h.Description, fmt.Sprintf("Order #%s completed, total %s", resp.ID, FormatTotal(resp.Total)))
}

// Close is the dismiss gesture.
func (p *SuccessPanel) Close() {
	p.bus.Emit(events.SuccessClose{})
}

// ErrorPanelHandles are the resolved slots of the failure panel.
type ErrorPanelHandles struct {
	Message Handle
}

// ErrorPanel shows a dismissable submission failure. Dismissing it hands
// control back to the orchestrator's retry point rather than emitting a
// protocol event.
type ErrorPanel struct {
	h         ErrorPanelHandles
	onDismiss func()
}

// BindErrorPanel attaches the panel to its resolved handles and the dismiss
// callback.
func BindErrorPanel(h ErrorPanelHandles, onDismiss func()) *ErrorPanel {
	return &ErrorPanel{h: h, onDismiss: onDismiss}
}

// Render shows the failure message.
func (p *ErrorPanel) Render(message string) {
	SetText(p.h.Message, message)
}

// Dismiss is the close gesture.
func (p *ErrorPanel) Dismiss() {
	if p.onDismiss != nil {
		p.onDismiss()
	}
}

// HeaderHandles are the resolved slots of the page header.
type HeaderHandles struct {
	Counter Handle
}

// Header carries the basket counter and the open-basket control.
type Header struct {
	bus *events.Bus
	h   HeaderHandles
}

// BindHeader attaches the header to its resolved handles.
func BindHeader(h HeaderHandles, bus *events.Bus) *Header {
	return &Header{bus: bus, h: h}
}

// SetCounter shows the number of items in the basket.
func (hd *Header) SetCounter(count int) {
	SetText(hd.h.Counter, fmt.Sprintf("%d", count))
}

// OpenBasket is the basket button gesture.
func (hd *Header) OpenBasket() {
	hd.bus.Emit(events.BasketOpen{})
}

// GalleryHandles are the resolved slots of the product gallery.
type GalleryHandles struct {
	Container Handle
}

// Gallery holds the rendered catalog cards.
type Gallery struct {
	h     GalleryHandles
	cards []*CatalogCard
}

// BindGallery attaches the gallery to its resolved handles.
func BindGallery(h GalleryHandles) *Gallery {
	return &Gallery{h: h}
}

// SetCards replaces the rendered card list.
func (g *Gallery) SetCards(cards []*CatalogCard) {
	g.cards = cards
	SetText(g.h.Container, fmt.Sprintf("%d products", len(cards)))
}

// Cards returns the currently rendered cards.
func (g *Gallery) Cards() []*CatalogCard {
	return g.cards
}
