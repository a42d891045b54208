package rest_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ugnsma/laranuxt/backend/internal/adapters/rest"
	"github.com/ugnsma/laranuxt/backend/internal/platform/apperror"
)

// mockLogger implements the logger.Logger interface for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Info(ctx context.Context, msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warn(ctx context.Context, msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Error(ctx context.Context, msg string, keysAndValues ...interface{}) {}

func TestWriteJSONError(t *testing.T) {
	tests := []struct {
		name               string
		code               string
		message            string
		statusCode         int
		expectedBody       map[string]interface{}
		expectedStatusCode int
	}{
		{
			name:       "writes not found error",
			code:       "not_found",
			message:    "Resource not found",
			statusCode: http.StatusNotFound,
			expectedBody: map[string]interface{}{
				"error":   "not_found",
				"message": "Resource not found",
			},
			expectedStatusCode: http.StatusNotFound,
		},
		{
			name:       "writes validation error",
			code:       "validation_failed",
			message:    "Invalid input",
			statusCode: http.StatusUnprocessableEntity,
			expectedBody: map[string]interface{}{
				"error":   "validation_failed",
				"message": "Invalid input",
			},
			expectedStatusCode: http.StatusUnprocessableEntity,
		},
		{
			name:       "writes internal server error",
			code:       "internal_error",
			message:    "Something went wrong",
			statusCode: http.StatusInternalServerError,
			expectedBody: map[string]interface{}{
				"error":   "internal_error",
				"message": "Something went wrong",
			},
			expectedStatusCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := rest.NewBaseHandler(&mockLogger{})

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			rec := httptest.NewRecorder()

			handler.WriteJSONError(rec, req, tt.code, tt.message, tt.statusCode)

			if rec.Code != tt.expectedStatusCode {
				t.Errorf("expected status code %d, got %d", tt.expectedStatusCode, rec.Code)
			}

			contentType := rec.Header().Get("Content-Type")
			if contentType != "application/json" {
				t.Errorf("expected Content-Type application/json, got %s", contentType)
			}

			var response map[string]interface{}
			if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
				t.Fatalf("failed to parse response body: %v", err)
			}

			if response["error"] != tt.expectedBody["error"] {
				t.Errorf("expected error %v, got %v", tt.expectedBody["error"], response["error"])
			}
			if response["message"] != tt.expectedBody["message"] {
				t.Errorf("expected message %v, got %v", tt.expectedBody["message"], response["message"])
			}
		})
	}
}

func TestWriteJSONResponse(t *testing.T) {
	tests := []struct {
		name               string
		data               interface{}
		statusCode         int
		expectedStatusCode int
	}{
		{
			name: "writes success response with struct",
			data: struct {
				ID   string `json:"id"`
				Name string `json:"name"`
			}{
				ID:   "123",
				Name: "Test User",
			},
			statusCode:         http.StatusOK,
			expectedStatusCode: http.StatusOK,
		},
		{
			name:               "writes created response with map",
			data:               map[string]string{"status": "created"},
			statusCode:         http.StatusCreated,
			expectedStatusCode: http.StatusCreated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := rest.NewBaseHandler(&mockLogger{})

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			rec := httptest.NewRecorder()

			handler.WriteJSONResponse(rec, req, tt.data, tt.statusCode)

			if rec.Code != tt.expectedStatusCode {
				t.Errorf("expected status code %d, got %d", tt.expectedStatusCode, rec.Code)
			}

			contentType := rec.Header().Get("Content-Type")
			if contentType != "application/json" {
				t.Errorf("expected Content-Type application/json, got %s", contentType)
			}

			if rec.Body.Len() > 0 {
				var response interface{}
				if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
					t.Fatalf("failed to parse response body: %v", err)
				}
			}
		})
	}
}

func TestHandleError(t *testing.T) {
	tests := []struct {
		name               string
		err                error
		expectedStatusCode int
		expectedError      string
		expectedDetails    interface{}
	}{
		{
			name: "handles not found AppError",
			err: apperror.New(
				apperror.CodeNotFound,
				apperror.BusinessCodeTopicNotFound,
				"topic not found",
				http.StatusNotFound,
			),
			expectedStatusCode: http.StatusNotFound,
			expectedError:      "not_found",
		},
		{
			name: "handles conflict AppError",
			err: apperror.New(
				apperror.CodeConflict,
				apperror.BusinessCodeAlreadyLiked,
				"already liked",
				http.StatusConflict,
			),
			expectedStatusCode: http.StatusConflict,
			expectedError:      "conflict",
		},
		{
			name: "handles AppError with details",
			err: apperror.New(
				apperror.CodeValidationFailed,
				apperror.BusinessCodeInvalidEmail,
				"invalid email format",
				http.StatusUnprocessableEntity,
			).WithDetails(map[string]string{"field": "email"}),
			expectedStatusCode: http.StatusUnprocessableEntity,
			expectedError:      "validation_failed",
			expectedDetails:    map[string]interface{}{"field": "email"},
		},
		{
			name: "handles wrapped AppError",
			err: apperror.Wrap(
				errors.New("database error"),
				apperror.CodeForbidden,
				apperror.BusinessCodeNotOwner,
				"not the owner",
				http.StatusForbidden,
			),
			expectedStatusCode: http.StatusForbidden,
			expectedError:      "forbidden",
		},
		{
			name:               "handles unknown error as internal server error",
			err:                errors.New("unexpected error"),
			expectedStatusCode: http.StatusInternalServerError,
			expectedError:      "internal_error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := rest.NewBaseHandler(&mockLogger{})

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			rec := httptest.NewRecorder()

			handler.HandleError(rec, req, tt.err)

			if rec.Code != tt.expectedStatusCode {
				t.Errorf("expected status code %d, got %d", tt.expectedStatusCode, rec.Code)
			}

			var response map[string]interface{}
			if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
				t.Fatalf("failed to parse response body: %v", err)
			}

			if response["error"] != tt.expectedError {
				t.Errorf("expected error code %v, got %v", tt.expectedError, response["error"])
			}

			if tt.expectedDetails != nil {
				details, ok := response["details"]
				if !ok {
					t.Errorf("expected details in response but not found")
				} else {
					expectedJSON, _ := json.Marshal(tt.expectedDetails)
					actualJSON, _ := json.Marshal(details)
					if string(expectedJSON) != string(actualJSON) {
						t.Errorf("expected details %s, got %s", expectedJSON, actualJSON)
					}
				}
			}
		})
	}
}

func TestDecodeJSONBody(t *testing.T) {
	type payload struct {
		Title string `json:"title"`
	}

	t.Run("decodes valid body", func(t *testing.T) {
		handler := rest.NewBaseHandler(&mockLogger{})

		req := httptest.NewRequest(http.MethodPost, "/test", strings.NewReader(`{"title":"hello"}`))
		rec := httptest.NewRecorder()

		var dst payload
		if !handler.DecodeJSONBody(rec, req, &dst) {
			t.Fatalf("expected decode to succeed, response: %s", rec.Body.String())
		}
		if dst.Title != "hello" {
			t.Errorf("expected title %q, got %q", "hello", dst.Title)
		}
	})

	t.Run("rejects malformed body with 422", func(t *testing.T) {
		handler := rest.NewBaseHandler(&mockLogger{})

		req := httptest.NewRequest(http.MethodPost, "/test", strings.NewReader(`{"title":`))
		rec := httptest.NewRecorder()

		var dst payload
		if handler.DecodeJSONBody(rec, req, &dst) {
			t.Fatal("expected decode to fail")
		}
		if rec.Code != http.StatusUnprocessableEntity {
			t.Errorf("expected status code 422, got %d", rec.Code)
		}
	})
}
