package middleware

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// Mirrors the order endpoint's payload shape.
type orderPayload struct {
	Payment string   `json:"payment" validate:"required,oneof=cash card"`
	Email   string   `json:"email" validate:"required"`
	Phone   string   `json:"phone" validate:"required"`
	Address string   `json:"address" validate:"required"`
	Items   []string `json:"items" validate:"required,min=1"`
}

func TestProperty_RequiredFieldValidationWorks(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("missing required fields are rejected", prop.ForAll(
		func(includeEmail bool, includePhone bool, includeAddress bool) bool {
			reqMap := map[string]interface{}{
				"payment": "card",
				"items":   []string{"p1"},
			}

			if includeEmail {
				reqMap["email"] = "buyer@example.com"
			}
			if includePhone {
				reqMap["phone"] = "+15550100"
			}
			if includeAddress {
				reqMap["address"] = "1 Main St"
			}

			allFieldsPresent := includeEmail && includePhone && includeAddress

			reqBody, _ := json.Marshal(reqMap)
			req := httptest.NewRequest("POST", "/order/", bytes.NewReader(reqBody))
			req.Header.Set("Content-Type", "application/json")

			var payload orderPayload
			err := DecodeAndValidate(req, &payload)

			if allFieldsPresent {
				return err == nil
			}
			return err != nil
		},
		gen.Bool(),
		gen.Bool(),
		gen.Bool(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestPaymentMethodIsConstrained(t *testing.T) {
	body := []byte(`{"payment":"crypto","email":"a@b.c","phone":"1","address":"x","items":["p1"]}`)
	req := httptest.NewRequest("POST", "/order/", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	var payload orderPayload
	err := DecodeAndValidate(req, &payload)
	if err == nil {
		t.Fatal("Expected validation to reject an unknown payment method")
	}

	formatted := FormatValidationErrors(err)
	if len(formatted) != 1 {
		t.Fatalf("Expected exactly one validation error, got %d", len(formatted))
	}
	if formatted[0].Field != "payment" {
		t.Errorf("Expected the payment field to be reported, got %q", formatted[0].Field)
	}
}

func TestEmptyItemsAreRejected(t *testing.T) {
	body := []byte(`{"payment":"cash","email":"a@b.c","phone":"1","address":"x","items":[]}`)
	req := httptest.NewRequest("POST", "/order/", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	var payload orderPayload
	if err := DecodeAndValidate(req, &payload); err == nil {
		t.Fatal("Expected validation to reject an empty item list")
	}
}

func TestMalformedJSONIsRejected(t *testing.T) {
	req := httptest.NewRequest("POST", "/order/", bytes.NewReader([]byte(`{"payment":`)))
	req.Header.Set("Content-Type", "application/json")

	var payload orderPayload
	if err := DecodeAndValidate(req, &payload); err == nil {
		t.Fatal("Expected a decode error for malformed JSON")
	}
}
