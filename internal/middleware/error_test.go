package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"go.uber.org/zap"
)

func TestProperty_ErrorResponsesAreFlat(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("every error response is a JSON object with one error string", prop.ForAll(
		func(message string, useCode int) bool {
			standardCodes := []int{
				http.StatusBadRequest,
				http.StatusNotFound,
				http.StatusInternalServerError,
				http.StatusServiceUnavailable,
			}
			if useCode < 0 {
				useCode = -useCode
			}
			statusCode := standardCodes[useCode%len(standardCodes)]

			w := httptest.NewRecorder()
			RespondWithError(w, statusCode, message)

			if w.Code != statusCode {
				return false
			}
			if w.Header().Get("Content-Type") != "application/json" {
				return false
			}

			var response ErrorResponse
			if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
				return false
			}

			return response.Error == message
		},
		gen.AlphaString().SuchThat(func(s string) bool { return len(s) > 0 }),
		gen.Int(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestValidationErrorsFoldIntoOneMessage(t *testing.T) {
	errors := []ValidationError{
		{Field: "email", Message: "This field is required"},
		{Field: "payment", Message: "Value must be one of: cash card"},
	}

	w := httptest.NewRecorder()
	RespondWithValidationErrors(w, errors)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", w.Code)
	}

	var response ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Response is not valid JSON: %v", err)
	}

	want := "email: This field is required; payment: Value must be one of: cash card"
	if response.Error != want {
		t.Errorf("Expected %q, got %q", want, response.Error)
	}
}

func TestErrorHandlingMiddlewareRecoversPanics(t *testing.T) {
	handler := ErrorHandlingMiddleware(zap.NewNop())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/product/", nil))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("Expected 500 after panic, got %d", w.Code)
	}

	var response ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Response is not valid JSON: %v", err)
	}
	if response.Error != "internal server error" {
		t.Errorf("Unexpected error message: %q", response.Error)
	}
}

func TestRespondWithJSONSetsContentType(t *testing.T) {
	w := httptest.NewRecorder()
	RespondWithJSON(w, http.StatusCreated, map[string]string{"id": "42"})

	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d", w.Code)
	}
	if w.Header().Get("Content-Type") != "application/json" {
		t.Errorf("Expected application/json content type, got %q", w.Header().Get("Content-Type"))
	}

	var result map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("Response is not valid JSON: %v", err)
	}
	if result["id"] != "42" {
		t.Errorf("Expected id 42, got %q", result["id"])
	}
}
