package rest

import (
	"net/http"

	"github.com/ugnsma/laranuxt/backend/internal/adapters/rest/middleware"
	"github.com/ugnsma/laranuxt/backend/internal/threads/application"
	threadsdomain "github.com/ugnsma/laranuxt/backend/internal/threads/domain"
	usersapp "github.com/ugnsma/laranuxt/backend/internal/users/application"
)

// PostsHandler serves post CRUD, always scoped to a topic
type PostsHandler struct {
	*BaseHandler
	service *application.ThreadsService
	users   *usersapp.UserService
}

// NewPostsHandler creates a new posts handler
func NewPostsHandler(base *BaseHandler, service *application.ThreadsService, users *usersapp.UserService) *PostsHandler {
	return &PostsHandler{
		BaseHandler: base,
		service:     service,
		users:       users,
	}
}

// respondPost renders a post with its author embedded
func (h *PostsHandler) respondPost(w http.ResponseWriter, r *http.Request, post *threadsdomain.Post, status int) {
	author, err := h.users.GetUser(r.Context(), post.AuthorID)
	if err != nil {
		h.HandleError(w, r, err)
		return
	}
	h.WriteJSONResponse(w, r, DataResponse{Data: presentPost(post, author)}, status)
}

type postRequest struct {
	Body string `json:"body"`
}

// CreatePost adds a reply to a topic, authored by the caller
func (h *PostsHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.WriteJSONError(w, r, "unauthorized", "Authentication required", http.StatusUnauthorized)
		return
	}

	topicID, ok := h.pathUUID(w, r, "topicID")
	if !ok {
		return
	}

	var req postRequest
	if !h.DecodeJSONBody(w, r, &req) {
		return
	}

	post, err := h.service.CreatePost(r.Context(), actorID, topicID, application.CreatePostParams{
		Body: req.Body,
	})
	if err != nil {
		h.HandleError(w, r, err)
		return
	}

	h.respondPost(w, r, post, http.StatusCreated)
}

// GetPost returns a single post within its topic
func (h *PostsHandler) GetPost(w http.ResponseWriter, r *http.Request) {
	topicID, ok := h.pathUUID(w, r, "topicID")
	if !ok {
		return
	}
	postID, ok := h.pathUUID(w, r, "postID")
	if !ok {
		return
	}

	post, err := h.service.GetPostInTopic(r.Context(), topicID, postID)
	if err != nil {
		h.HandleError(w, r, err)
		return
	}

	h.respondPost(w, r, post, http.StatusOK)
}

// UpdatePost edits a post's body. Only the author may edit.
func (h *PostsHandler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.WriteJSONError(w, r, "unauthorized", "Authentication required", http.StatusUnauthorized)
		return
	}

	topicID, ok := h.pathUUID(w, r, "topicID")
	if !ok {
		return
	}
	postID, ok := h.pathUUID(w, r, "postID")
	if !ok {
		return
	}

	var req postRequest
	if !h.DecodeJSONBody(w, r, &req) {
		return
	}

	post, err := h.service.UpdatePost(r.Context(), actorID, topicID, postID, application.UpdatePostParams{
		Body: req.Body,
	})
	if err != nil {
		h.HandleError(w, r, err)
		return
	}

	h.respondPost(w, r, post, http.StatusOK)
}

// DeletePost removes a post and its likes. Only the author may delete.
func (h *PostsHandler) DeletePost(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.WriteJSONError(w, r, "unauthorized", "Authentication required", http.StatusUnauthorized)
		return
	}

	topicID, ok := h.pathUUID(w, r, "topicID")
	if !ok {
		return
	}
	postID, ok := h.pathUUID(w, r, "postID")
	if !ok {
		return
	}

	if err := h.service.DeletePost(r.Context(), actorID, topicID, postID); err != nil {
		h.HandleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
