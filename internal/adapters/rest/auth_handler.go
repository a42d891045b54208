package rest

import (
	"net/http"

	"github.com/ugnsma/laranuxt/backend/internal/adapters/rest/middleware"
	"github.com/ugnsma/laranuxt/backend/internal/users/application"
)

// AuthHandler serves registration, login, logout and the current-user lookup
type AuthHandler struct {
	*BaseHandler
	service *application.UserService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(base *BaseHandler, service *application.UserService) *AuthHandler {
	return &AuthHandler{
		BaseHandler: base,
		service:     service,
	}
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates a new account and returns it with a fresh token
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !h.DecodeJSONBody(w, r, &req) {
		return
	}

	user, token, err := h.service.Register(r.Context(), application.RegisterParams{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.HandleError(w, r, err)
		return
	}

	h.WriteJSONResponse(w, r, AuthResponse{
		Data: presentUser(user),
		Meta: AuthMeta{Token: token.Value, ExpiresAt: token.ExpiresAt},
	}, http.StatusOK)
}

// Login verifies credentials and returns the user with a fresh token
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !h.DecodeJSONBody(w, r, &req) {
		return
	}

	user, token, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.HandleError(w, r, err)
		return
	}

	h.WriteJSONResponse(w, r, AuthResponse{
		Data: presentUser(user),
		Meta: AuthMeta{Token: token.Value, ExpiresAt: token.ExpiresAt},
	}, http.StatusOK)
}

// Logout revokes the token the request was authenticated with
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok {
		h.WriteJSONError(w, r, "unauthorized", "Authentication required", http.StatusUnauthorized)
		return
	}

	if err := h.service.Logout(r.Context(), claims); err != nil {
		h.HandleError(w, r, err)
		return
	}

	h.WriteJSONResponse(w, r, DataResponse{Data: map[string]string{"message": "logged out"}}, http.StatusOK)
}

// CurrentUser returns the authenticated user's profile
func (h *AuthHandler) CurrentUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.WriteJSONError(w, r, "unauthorized", "Authentication required", http.StatusUnauthorized)
		return
	}

	user, err := h.service.GetUser(r.Context(), userID)
	if err != nil {
		h.HandleError(w, r, err)
		return
	}

	h.WriteJSONResponse(w, r, DataResponse{Data: presentUser(user)}, http.StatusOK)
}
