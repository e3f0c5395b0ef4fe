// Package view holds the render-target adapters of the storefront. A view
// owns no domain state: it exposes settable properties backed by resolved
// handles and forwards user gestures as events on the bus. Handles are
// resolved by the environment and passed in at bind time; views never look
// anything up themselves.
package view

import "fmt"

// Handle is one already-resolved render target, the storefront's stand-in
// for a concrete UI element.
type Handle interface {
	SetText(value string)
	SetDisabled(disabled bool)
	SetImage(ref string)
	SetVisible(visible bool)
}

// SetText writes text into a handle, tolerating an unbound slot.
func SetText(h Handle, value string) {
	if h != nil {
		h.SetText(value)
	}
}

// SetDisabled toggles a handle's disabled state, tolerating an unbound slot.
func SetDisabled(h Handle, disabled bool) {
	if h != nil {
		h.SetDisabled(disabled)
	}
}

// SetImage points a handle at an image reference, tolerating an unbound slot.
func SetImage(h Handle, ref string) {
	if h != nil {
		h.SetImage(ref)
	}
}

// SetVisible toggles a handle's visibility, tolerating an unbound slot.
func SetVisible(h Handle, visible bool) {
	if h != nil {
		h.SetVisible(visible)
	}
}

// FormatPrice renders a nullable price the way every card and panel shows it.
func FormatPrice(price *float64) string {
	if price == nil {
		return "Priceless"
	}
	return FormatTotal(*price)
}

// FormatTotal renders a computed sum.
func FormatTotal(total float64) string {
	return fmt.Sprintf("%g synapses", total)
}
