package rest

import (
	"net/http"

	"github.com/ugnsma/laranuxt/backend/internal/adapters/rest/middleware"
	likesapp "github.com/ugnsma/laranuxt/backend/internal/likes/application"
	"github.com/ugnsma/laranuxt/backend/internal/platform/likeable"
	threadsapp "github.com/ugnsma/laranuxt/backend/internal/threads/application"
	usersapp "github.com/ugnsma/laranuxt/backend/internal/users/application"
)

// LikesHandler serves likes on posts. Every route first resolves the post
// through its topic so a mismatched path reads as not found.
type LikesHandler struct {
	*BaseHandler
	likes   *likesapp.LikesService
	threads *threadsapp.ThreadsService
	users   *usersapp.UserService
}

// NewLikesHandler creates a new likes handler
func NewLikesHandler(
	base *BaseHandler,
	likes *likesapp.LikesService,
	threads *threadsapp.ThreadsService,
	users *usersapp.UserService,
) *LikesHandler {
	return &LikesHandler{
		BaseHandler: base,
		likes:       likes,
		threads:     threads,
		users:       users,
	}
}

// LikePost records the caller's like on a post
func (h *LikesHandler) LikePost(w http.ResponseWriter, r *http.Request) {
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

	if _, err := h.threads.GetPostInTopic(r.Context(), topicID, postID); err != nil {
		h.HandleError(w, r, err)
		return
	}

	if _, err := h.likes.Like(r.Context(), actorID, likeable.KindPost, postID); err != nil {
		h.HandleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetLike returns a single like on a post
func (h *LikesHandler) GetLike(w http.ResponseWriter, r *http.Request) {
	topicID, ok := h.pathUUID(w, r, "topicID")
	if !ok {
		return
	}
	postID, ok := h.pathUUID(w, r, "postID")
	if !ok {
		return
	}
	likeID, ok := h.pathUUID(w, r, "likeID")
	if !ok {
		return
	}

	if _, err := h.threads.GetPostInTopic(r.Context(), topicID, postID); err != nil {
		h.HandleError(w, r, err)
		return
	}

	like, err := h.likes.GetLike(r.Context(), likeable.KindPost, postID, likeID)
	if err != nil {
		h.HandleError(w, r, err)
		return
	}

	user, err := h.users.GetUser(r.Context(), like.UserID)
	if err != nil {
		h.HandleError(w, r, err)
		return
	}

	h.WriteJSONResponse(w, r, DataResponse{Data: presentLike(like, user)}, http.StatusOK)
}

// ListLikes returns all likes on a post
func (h *LikesHandler) ListLikes(w http.ResponseWriter, r *http.Request) {
	topicID, ok := h.pathUUID(w, r, "topicID")
	if !ok {
		return
	}
	postID, ok := h.pathUUID(w, r, "postID")
	if !ok {
		return
	}

	if _, err := h.threads.GetPostInTopic(r.Context(), topicID, postID); err != nil {
		h.HandleError(w, r, err)
		return
	}

	likes, err := h.likes.ListLikes(r.Context(), likeable.KindPost, postID)
	if err != nil {
		h.HandleError(w, r, err)
		return
	}

	resources := make([]LikeResource, 0, len(likes))
	for _, like := range likes {
		user, err := h.users.GetUser(r.Context(), like.UserID)
		if err != nil {
			h.HandleError(w, r, err)
			return
		}
		resources = append(resources, presentLike(like, user))
	}

	h.WriteJSONResponse(w, r, DataResponse{Data: resources}, http.StatusOK)
}
