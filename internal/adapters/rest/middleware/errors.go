package middleware

import (
	"encoding/json"
	"net/http"
)

// Error codes emitted by the auth middleware, lower_snake_case to match the
// REST layer's error bodies.
const (
	ErrorCodeUnauthorized        = "unauthorized"
	ErrorCodeForbidden           = "forbidden"
	ErrorCodeNotFound            = "not_found"
	ErrorCodeValidationError     = "validation_error"
	ErrorCodeInvalidToken        = "invalid_token"
	ErrorCodeTokenExpired        = "token_expired"
	ErrorCodeInternalServerError = "internal_server_error"
)

// WriteJSONError writes an error body in the same {error, message} shape the
// REST handlers produce, so clients see one format whether a request is
// rejected before or after routing.
func WriteJSONError(w http.ResponseWriter, code string, message string, status int) {
	WriteJSONErrorWithDetails(w, code, message, status, nil)
}

// WriteJSONErrorWithDetails writes an error body with extra top-level fields.
func WriteJSONErrorWithDetails(w http.ResponseWriter, code string, message string, status int, details map[string]any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	errorResp := map[string]any{
		"error":   code,
		"message": message,
	}
	for k, v := range details {
		errorResp[k] = v
	}

	// Already in error handling, nowhere to report an encode failure
	_ = json.NewEncoder(w).Encode(errorResp)
}
