package model

import (
	"storefront/internal/domain"
	"storefront/internal/events"
)

// Buyer holds the draft checkout record for one session.
type Buyer struct {
	bus  *events.Bus
	data domain.Buyer
}

// NewBuyer creates an all-unset buyer bound to the bus.
func NewBuyer(bus *events.Bus) *Buyer {
	return &Buyer{bus: bus}
}

// SetData merges the provided patch fields into the record and emits
// buyer:changed with the full result, every time, even for a no-op patch.
func (b *Buyer) SetData(patch domain.BuyerPatch) {
	b.data = b.data.Merge(patch)
	b.bus.Emit(events.BuyerChanged{Buyer: b.data})
}

// Data returns the current record.
func (b *Buyer) Data() domain.Buyer {
	return b.data
}

// Validate maps every unset field to a human-readable message. It emits
// nothing; validation is a pure query.
func (b *Buyer) Validate() map[string]string {
	return b.data.Validate()
}

// Clear resets every field to unset and emits buyer:changed.
func (b *Buyer) Clear() {
	b.data = domain.Buyer{}
	b.bus.Emit(events.BuyerChanged{Buyer: b.data})
}
