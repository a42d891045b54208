package application

import "github.com/google/wire"

// ProviderSet is the wire provider set for the likes application layer
var ProviderSet = wire.NewSet(
	NewLikesService,
)
