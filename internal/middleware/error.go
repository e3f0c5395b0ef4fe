package middleware

import (
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// ErrorResponse is the API's error payload. The storefront client surfaces
// the message verbatim, so it stays a flat string.
type ErrorResponse struct {
	Error string `json:"error"`
}

// RespondWithError sends the flat error payload with the given status.
func RespondWithError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}

// RespondWithValidationErrors folds field validation errors into one message.
func RespondWithValidationErrors(w http.ResponseWriter, errors []ValidationError) {
	messages := make([]string, 0, len(errors))
	for _, e := range errors {
		messages = append(messages, e.Field+": "+e.Message)
	}
	RespondWithError(w, http.StatusBadRequest, strings.Join(messages, "; "))
}

// ErrorHandlingMiddleware catches panics and converts them to 500 errors
func ErrorHandlingMiddleware(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.Error("Panic recovered",
						zap.Any("error", err),
						zap.String("path", r.URL.Path),
						zap.String("method", r.Method),
					)

					RespondWithError(w, http.StatusInternalServerError, "internal server error")
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}

// RespondWithJSON sends a JSON response
func RespondWithJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}
