package view

import "storefront/internal/events"

// BasketPanelHandles are the resolved slots of the basket panel.
type BasketPanelHandles struct {
	List     Handle
	Total    Handle
	Checkout Handle
}

// BasketPanel shows the current selection inside the modal. It holds the
// rendered rows, the running total, and the checkout button state.
type BasketPanel struct {
	bus  *events.Bus
	h    BasketPanelHandles
	rows []*BasketRow
}

// BindBasketPanel attaches the panel to its resolved handles.
func BindBasketPanel(h BasketPanelHandles, bus *events.Bus) *BasketPanel {
	return &BasketPanel{bus: bus, h: h}
}

// SetRows replaces the rendered line items.
func (p *BasketPanel) SetRows(rows []*BasketRow) {
	p.rows = rows
	if len(rows) == 0 {
		SetText(p.h.List, "Basket is empty")
		return
	}
	SetText(p.h.List, "")
}

// Rows returns the line items currently rendered into the panel.
func (p *BasketPanel) Rows() []*BasketRow {
	return p.rows
}

// SetTotal shows the basket total.
func (p *BasketPanel) SetTotal(total float64) {
	SetText(p.h.Total, FormatTotal(total))
}

// SetCheckoutEnabled gates the checkout button.
func (p *BasketPanel) SetCheckoutEnabled(enabled bool) {
	SetDisabled(p.h.Checkout, !enabled)
}

// Checkout is the checkout button gesture.
func (p *BasketPanel) Checkout() {
	p.bus.Emit(events.BasketSubmit{})
}
