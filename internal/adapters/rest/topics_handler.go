package rest

import (
	"net/http"

	"github.com/ugnsma/laranuxt/backend/internal/adapters/rest/middleware"
	"github.com/ugnsma/laranuxt/backend/internal/threads/application"
	threadsdomain "github.com/ugnsma/laranuxt/backend/internal/threads/domain"
	usersapp "github.com/ugnsma/laranuxt/backend/internal/users/application"
)

// TopicsHandler serves topic CRUD
type TopicsHandler struct {
	*BaseHandler
	service *application.ThreadsService
	users   *usersapp.UserService
}

// NewTopicsHandler creates a new topics handler
func NewTopicsHandler(base *BaseHandler, service *application.ThreadsService, users *usersapp.UserService) *TopicsHandler {
	return &TopicsHandler{
		BaseHandler: base,
		service:     service,
		users:       users,
	}
}

// respondTopic renders a topic with its owner embedded
func (h *TopicsHandler) respondTopic(w http.ResponseWriter, r *http.Request, topic *threadsdomain.Topic, status int) {
	owner, err := h.users.GetUser(r.Context(), topic.OwnerID)
	if err != nil {
		h.HandleError(w, r, err)
		return
	}
	h.WriteJSONResponse(w, r, DataResponse{Data: presentTopic(topic, owner)}, status)
}

type topicRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// CreateTopic opens a new discussion topic owned by the caller
func (h *TopicsHandler) CreateTopic(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.WriteJSONError(w, r, "unauthorized", "Authentication required", http.StatusUnauthorized)
		return
	}

	var req topicRequest
	if !h.DecodeJSONBody(w, r, &req) {
		return
	}

	topic, err := h.service.CreateTopic(r.Context(), actorID, application.CreateTopicParams{
		Title: req.Title,
		Body:  req.Body,
	})
	if err != nil {
		h.HandleError(w, r, err)
		return
	}

	h.respondTopic(w, r, topic, http.StatusCreated)
}

// GetTopic returns a single topic
func (h *TopicsHandler) GetTopic(w http.ResponseWriter, r *http.Request) {
	topicID, ok := h.pathUUID(w, r, "topicID")
	if !ok {
		return
	}

	topic, err := h.service.GetTopic(r.Context(), topicID)
	if err != nil {
		h.HandleError(w, r, err)
		return
	}

	h.respondTopic(w, r, topic, http.StatusOK)
}

// UpdateTopic edits a topic's title and body. Only the owner may edit.
func (h *TopicsHandler) UpdateTopic(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.WriteJSONError(w, r, "unauthorized", "Authentication required", http.StatusUnauthorized)
		return
	}

	topicID, ok := h.pathUUID(w, r, "topicID")
	if !ok {
		return
	}

	var req topicRequest
	if !h.DecodeJSONBody(w, r, &req) {
		return
	}

	topic, err := h.service.UpdateTopic(r.Context(), actorID, topicID, application.UpdateTopicParams{
		Title: req.Title,
		Body:  req.Body,
	})
	if err != nil {
		h.HandleError(w, r, err)
		return
	}

	h.respondTopic(w, r, topic, http.StatusOK)
}

// DeleteTopic removes a topic and everything under it. Only the owner may
// delete.
func (h *TopicsHandler) DeleteTopic(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.WriteJSONError(w, r, "unauthorized", "Authentication required", http.StatusUnauthorized)
		return
	}

	topicID, ok := h.pathUUID(w, r, "topicID")
	if !ok {
		return
	}

	if err := h.service.DeleteTopic(r.Context(), actorID, topicID); err != nil {
		h.HandleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
