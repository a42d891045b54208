package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/ugnsma/laranuxt/backend/internal/adapters/rest"
	"github.com/ugnsma/laranuxt/backend/internal/adapters/rest/middleware"
	"github.com/ugnsma/laranuxt/backend/internal/platform/logger"
)

// NewHTTPServer creates and configures the HTTP server with all routes
func NewHTTPServer(
	config Config,
	authHandler *rest.AuthHandler,
	topicsHandler *rest.TopicsHandler,
	postsHandler *rest.PostsHandler,
	likesHandler *rest.LikesHandler,
	healthHandler *rest.HealthHandler,
	authMiddleware *middleware.AuthMiddleware,
	log logger.Logger,
) *http.Server {
	r := chi.NewRouter()

	r.Get("/health/live", healthHandler.GetLiveness)
	r.Get("/health/ready", healthHandler.GetReadiness)

	r.Route("/api", func(r chi.Router) {
		// Public endpoints
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)

		// Everything else requires a valid bearer token
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Middleware)

			r.Post("/logout", authHandler.Logout)
			r.Get("/user", authHandler.CurrentUser)

			r.Route("/topics", func(r chi.Router) {
				r.Post("/", topicsHandler.CreateTopic)

				r.Route("/{topicID}", func(r chi.Router) {
					r.Get("/", topicsHandler.GetTopic)
					r.Patch("/", topicsHandler.UpdateTopic)
					r.Delete("/", topicsHandler.DeleteTopic)

					r.Route("/posts", func(r chi.Router) {
						r.Post("/", postsHandler.CreatePost)

						r.Route("/{postID}", func(r chi.Router) {
							r.Get("/", postsHandler.GetPost)
							r.Patch("/", postsHandler.UpdatePost)
							r.Delete("/", postsHandler.DeletePost)

							r.Route("/likes", func(r chi.Router) {
								r.Post("/", likesHandler.LikePost)
								r.Get("/", likesHandler.ListLikes)
								r.Get("/{likeID}", likesHandler.GetLike)
							})
						})
					})
				})
			})
		})
	})

	// Wrap with observability middleware
	handler := withObservability(r, log)

	// Create and return HTTP server
	return &http.Server{
		Addr:         config.ServerAddress,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

// withObservability adds request logging and metrics
func withObservability(handler http.Handler, log logger.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Use chi's response writer wrapper to capture status code and bytes written
		wrr := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

		handler.ServeHTTP(wrr, r)

		duration := time.Since(start)

		// Extract user ID if available for better tracing
		var userID string
		if uid, ok := middleware.GetUserID(r.Context()); ok {
			userID = uid.String()
		}

		log.Info(r.Context(), "HTTP request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"status", wrr.Status(),
			"duration_ms", duration.Milliseconds(),
			"remote_addr", r.RemoteAddr,
			"user_agent", r.UserAgent(),
			"user_id", userID,
		)
	})
}
