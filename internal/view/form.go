package view

import (
	"storefront/internal/domain"
	"storefront/internal/events"
)

// Buyer field names as they travel in input events.
const (
	FieldPayment = "payment"
	FieldEmail   = "email"
	FieldPhone   = "phone"
	FieldAddress = "address"
)

// formShell is the part every checkout form shares: a submit button gated by
// the valid flag and an inline error line. Forms do not validate anything
// themselves; the orchestrator pushes the buyer model's validation state in.
type formShell struct {
	errors Handle
	submit Handle
}

// SetValid gates the submit control.
func (f *formShell) SetValid(valid bool) {
	SetDisabled(f.submit, !valid)
}

// SetErrors shows or hides the inline error text.
func (f *formShell) SetErrors(text string) {
	SetText(f.errors, text)
	SetVisible(f.errors, text != "")
}

// OrderFormHandles are the resolved slots of the payment/address form.
type OrderFormHandles struct {
	Payment Handle
	Address Handle
	Errors  Handle
	Submit  Handle
}

// OrderForm is the first checkout step: payment method and delivery address.
type OrderForm struct {
	formShell
	bus *events.Bus
	h   OrderFormHandles
}

// BindOrderForm attaches the form to its resolved handles.
func BindOrderForm(h OrderFormHandles, bus *events.Bus) *OrderForm {
	return &OrderForm{
		formShell: formShell{errors: h.Errors, submit: h.Submit},
		bus:       bus,
		h:         h,
	}
}

// SetPayment reflects the chosen payment method.
func (f *OrderForm) SetPayment(m domain.PaymentMethod) {
	SetText(f.h.Payment, string(m))
}

// SetAddress reflects the address field value.
func (f *OrderForm) SetAddress(value string) {
	SetText(f.h.Address, value)
}

// Input is a field edit gesture.
func (f *OrderForm) Input(field, value string) {
	f.bus.Emit(events.OrderInput{Field: field, Value: value})
}

// Submit is the form submit gesture.
func (f *OrderForm) Submit() {
	f.bus.Emit(events.OrderSubmit{})
}

// ContactsFormHandles are the resolved slots of the email/phone form.
type ContactsFormHandles struct {
	Email  Handle
	Phone  Handle
	Errors Handle
	Submit Handle
}

// ContactsForm is the second checkout step: email and phone.
type ContactsForm struct {
	formShell
	bus *events.Bus
	h   ContactsFormHandles
}

// BindContactsForm attaches the form to its resolved handles.
func BindContactsForm(h ContactsFormHandles, bus *events.Bus) *ContactsForm {
	return &ContactsForm{
		formShell: formShell{errors: h.Errors, submit: h.Submit},
		bus:       bus,
		h:         h,
	}
}

// SetEmail reflects the email field value.
func (f *ContactsForm) SetEmail(value string) {
	SetText(f.h.Email, value)
}

// SetPhone reflects the phone field value.
func (f *ContactsForm) SetPhone(value string) {
	SetText(f.h.Phone, value)
}

// Input is a field edit gesture.
func (f *ContactsForm) Input(field, value string) {
	f.bus.Emit(events.ContactsInput{Field: field, Value: value})
}

// Submit is the form submit gesture.
func (f *ContactsForm) Submit() {
	f.bus.Emit(events.ContactsSubmit{})
}
