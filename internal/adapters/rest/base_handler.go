package rest

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ugnsma/laranuxt/backend/internal/platform/apperror"
	"github.com/ugnsma/laranuxt/backend/internal/platform/logger"
)

// ErrorResponse is the JSON shape of every error the API returns
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// BaseHandler contains common dependencies and helper methods for all handlers
type BaseHandler struct {
	logger logger.Logger
}

// NewBaseHandler creates a new base handler with common dependencies
func NewBaseHandler(logger logger.Logger) *BaseHandler {
	return &BaseHandler{
		logger: logger,
	}
}

// WriteJSONError writes a JSON error response
func (h *BaseHandler) WriteJSONError(w http.ResponseWriter, r *http.Request, code string, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	resp := ErrorResponse{
		Error:   code,
		Message: message,
	}

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error(r.Context(), "failed to encode error response",
			"error", err,
			"error_code", code,
			"status_code", statusCode,
		)
	}
}

// WriteJSONResponse writes a successful JSON response
func (h *BaseHandler) WriteJSONResponse(w http.ResponseWriter, r *http.Request, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error(r.Context(), "failed to encode response",
			"error", err,
			"status_code", statusCode,
		)
	}
}

// HandleError translates a service error into an HTTP response. Services
// return *apperror.AppError with the status and business code already
// decided; anything else is a 500.
func (h *BaseHandler) HandleError(w http.ResponseWriter, r *http.Request, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(appErr.HTTPStatus)

		resp := ErrorResponse{
			Error:   strings.ToLower(string(appErr.Code)),
			Message: appErr.Message,
			Details: appErr.Details,
		}
		if encErr := json.NewEncoder(w).Encode(resp); encErr != nil {
			h.logger.Error(r.Context(), "failed to encode error response",
				"error", encErr,
				"business_code", appErr.BusinessCode,
			)
		}
		return
	}

	h.logger.Error(r.Context(), "unhandled error reached transport layer", "error", err)
	h.WriteJSONError(w, r, "internal_error", "Internal server error", http.StatusInternalServerError)
}

// DecodeJSONBody decodes the request body into dst, answering 422 itself on
// malformed input. Returns false if the response has already been written.
func (h *BaseHandler) DecodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.WriteJSONError(w, r, "validation_failed", "Invalid request body", http.StatusUnprocessableEntity)
		return false
	}
	return true
}

// pathUUID parses a UUID path parameter, answering 404 on malformed values
// so unparseable ids read the same as missing rows.
func (h *BaseHandler) pathUUID(w http.ResponseWriter, r *http.Request, param string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, param))
	if err != nil {
		h.WriteJSONError(w, r, "not_found", "Resource not found", http.StatusNotFound)
		return uuid.Nil, false
	}
	return id, true
}
