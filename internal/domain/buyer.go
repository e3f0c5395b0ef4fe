package domain

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// PaymentMethod is the buyer's chosen way to pay. The empty value means the
// choice has not been made yet.
type PaymentMethod string

const (
	PaymentUnset PaymentMethod = ""
	PaymentCash  PaymentMethod = "cash"
	PaymentCard  PaymentMethod = "card"
)

// Valid reports whether the method is one of the selectable options.
func (m PaymentMethod) Valid() bool {
	return m == PaymentCash || m == PaymentCard
}

// Buyer is the draft checkout record. Empty string / unset payment mean the
// field has not been filled in yet.
type Buyer struct {
	Payment PaymentMethod `json:"payment" validate:"required,oneof=cash card"`
	Email   string        `json:"email" validate:"required"`
	Phone   string        `json:"phone" validate:"required"`
	Address string        `json:"address" validate:"required"`
}

// BuyerPatch is a partial update of a Buyer. Nil fields leave the current
// value untouched.
type BuyerPatch struct {
	Payment *PaymentMethod
	Email   *string
	Phone   *string
	Address *string
}

// Merge returns a copy of the buyer with the provided patch fields applied.
func (b Buyer) Merge(patch BuyerPatch) Buyer {
	if patch.Payment != nil {
		b.Payment = *patch.Payment
	}
	if patch.Email != nil {
		b.Email = *patch.Email
	}
	if patch.Phone != nil {
		b.Phone = *patch.Phone
	}
	if patch.Address != nil {
		b.Address = *patch.Address
	}
	return b
}

var buyerValidate *validator.Validate

func init() {
	buyerValidate = validator.New()
	buyerValidate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// Validate returns a field-name to message mapping for every buyer field that
// is still unset. An empty map means the record is ready for submission.
func (b Buyer) Validate() map[string]string {
	errs := make(map[string]string)

	err := buyerValidate.Struct(b)
	if err == nil {
		return errs
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		errs["buyer"] = "invalid buyer record"
		return errs
	}

	for _, e := range validationErrors {
		errs[e.Field()] = fieldMessage(e.Field())
	}

	return errs
}

func fieldMessage(field string) string {
	switch field {
	case "payment":
		return "Payment method is not selected"
	case "email":
		return "Email is required"
	case "phone":
		return "Phone is required"
	case "address":
		return "Address is required"
	default:
		return "Invalid value"
	}
}
