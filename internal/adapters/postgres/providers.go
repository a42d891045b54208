package postgres

import (
	"github.com/google/wire"

	likesports "github.com/ugnsma/laranuxt/backend/internal/likes/ports"
	threadsports "github.com/ugnsma/laranuxt/backend/internal/threads/ports"
	usersports "github.com/ugnsma/laranuxt/backend/internal/users/ports"
)

// ProviderSet is the wire provider set for postgres repositories
var ProviderSet = wire.NewSet(
	NewUserRepository,
	wire.Bind(new(usersports.UserRepository), new(*UserRepository)),

	NewTopicRepository,
	wire.Bind(new(threadsports.TopicRepository), new(*TopicRepository)),

	NewPostRepository,
	wire.Bind(new(threadsports.PostRepository), new(*PostRepository)),

	NewLikeRepository,
	wire.Bind(new(likesports.LikeRepository), new(*LikeRepository)),

	NewLikesPurger,
	wire.Bind(new(threadsports.LikesPurger), new(*LikesPurger)),

	NewRevokedTokenRepository,
	wire.Bind(new(usersports.TokenRevocations), new(*RevokedTokenRepository)),
)
