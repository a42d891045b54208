package rest

import (
	"github.com/google/wire"
)

// ProviderSet is the wire provider set for REST handlers
var ProviderSet = wire.NewSet(
	NewBaseHandler,
	NewAuthHandler,
	NewTopicsHandler,
	NewPostsHandler,
	NewLikesHandler,
	NewHealthHandler,
)
