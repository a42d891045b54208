package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestWriteJSONError(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		message string
		status  int
	}{
		{
			name:    "unauthorized",
			code:    ErrorCodeUnauthorized,
			message: "Missing authentication token",
			status:  http.StatusUnauthorized,
		},
		{
			name:    "token expired",
			code:    ErrorCodeTokenExpired,
			message: "Token has expired",
			status:  http.StatusUnauthorized,
		},
		{
			name:    "invalid token",
			code:    ErrorCodeInvalidToken,
			message: "Token has been revoked",
			status:  http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			WriteJSONError(w, tt.code, tt.message, tt.status)

			if w.Code != tt.status {
				t.Errorf("expected status %d, got %d", tt.status, w.Code)
			}
			if ct := w.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("expected Content-Type application/json, got %s", ct)
			}

			var response map[string]any
			if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if response["error"] != tt.code {
				t.Errorf("expected error %q, got %v", tt.code, response["error"])
			}
			if response["message"] != tt.message {
				t.Errorf("expected message %q, got %v", tt.message, response["message"])
			}
		})
	}
}

func TestWriteJSONErrorWithDetails(t *testing.T) {
	w := httptest.NewRecorder()

	WriteJSONErrorWithDetails(w, ErrorCodeValidationError, "Validation failed", http.StatusUnprocessableEntity, map[string]any{
		"field": "email",
	})

	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected status %d, got %d", http.StatusUnprocessableEntity, w.Code)
	}

	var response map[string]any
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if response["error"] != "validation_error" {
		t.Errorf("expected error validation_error, got %v", response["error"])
	}
	if response["field"] != "email" {
		t.Errorf("expected details to carry field, got %v", response["field"])
	}
}
