// Package events carries the storefront's internal event protocol: a closed
// set of event kinds, each with a fixed payload shape, dispatched through a
// single synchronous bus. Event names are a stable contract between the
// models, the view adapters and the orchestrator.
package events

import "storefront/internal/domain"

// Name identifies an event kind on the bus.
type Name string

const (
	NameCatalogChanged  Name = "catalog:changed"
	NameCatalogSelected Name = "catalog:selected"
	NameBasketChanged   Name = "basket:changed"
	NameBuyerChanged    Name = "buyer:changed"
	NameCardSelect      Name = "card:select"
	NameCardAdd         Name = "card:add"
	NameCardRemove      Name = "card:remove"
	NameBasketOpen      Name = "basket:open"
	NameBasketRemove    Name = "basket:remove"
	NameBasketSubmit    Name = "basket:submit"
	NameOrderInput      Name = "order:input"
	NameOrderSubmit     Name = "order:submit"
	NameContactsInput   Name = "contacts:input"
	NameContactsSubmit  Name = "contacts:submit"
	NameSuccessClose    Name = "success:close"
)

// Event is implemented by every payload in the protocol.
type Event interface {
	EventName() Name
}

// CatalogChanged is emitted after the catalog replaces its product sequence.
type CatalogChanged struct {
	Products []domain.Product
}

func (CatalogChanged) EventName() Name { return NameCatalogChanged }

// CatalogSelected is emitted when a product is put under detail view.
type CatalogSelected struct {
	Product *domain.Product
}

func (CatalogSelected) EventName() Name { return NameCatalogSelected }

// BasketChanged is emitted after every basket mutation, including no-op ones.
type BasketChanged struct {
	Items []domain.Product
}

func (BasketChanged) EventName() Name { return NameBasketChanged }

// BuyerChanged carries the full buyer record after every patch.
type BuyerChanged struct {
	Buyer domain.Buyer
}

func (BuyerChanged) EventName() Name { return NameBuyerChanged }

// CardSelect is the catalog card click gesture.
type CardSelect struct {
	ProductID string
}

func (CardSelect) EventName() Name { return NameCardSelect }

// CardAdd asks for a product to be put into the basket.
type CardAdd struct {
	ProductID string
}

func (CardAdd) EventName() Name { return NameCardAdd }

// CardRemove asks for a product to be taken out of the basket from the
// detail view.
type CardRemove struct {
	ProductID string
}

func (CardRemove) EventName() Name { return NameCardRemove }

// BasketOpen asks for the basket panel to be shown.
type BasketOpen struct{}

func (BasketOpen) EventName() Name { return NameBasketOpen }

// BasketRemove is the per-row remove gesture inside the basket panel.
type BasketRemove struct {
	ProductID string
}

func (BasketRemove) EventName() Name { return NameBasketRemove }

// BasketSubmit is the checkout gesture on the basket panel.
type BasketSubmit struct{}

func (BasketSubmit) EventName() Name { return NameBasketSubmit }

// OrderInput carries one field edit on the order form.
type OrderInput struct {
	Field string
	Value string
}

func (OrderInput) EventName() Name { return NameOrderInput }

// OrderSubmit is the submit gesture on the order form.
type OrderSubmit struct{}

func (OrderSubmit) EventName() Name { return NameOrderSubmit }

// ContactsInput carries one field edit on the contacts form.
type ContactsInput struct {
	Field string
	Value string
}

func (ContactsInput) EventName() Name { return NameContactsInput }

// ContactsSubmit is the submit gesture on the contacts form.
type ContactsSubmit struct{}

func (ContactsSubmit) EventName() Name { return NameContactsSubmit }

// SuccessClose dismisses the confirmation panel.
type SuccessClose struct{}

func (SuccessClose) EventName() Name { return NameSuccessClose }
