package auth

import (
	"github.com/google/wire"

	"github.com/ugnsma/laranuxt/backend/internal/users/ports"
)

// ProviderSet is the wire provider set for the token service
var ProviderSet = wire.NewSet(
	NewTokenService,
	wire.Bind(new(ports.TokenService), new(*TokenService)),
)
