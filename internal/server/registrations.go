package server

import (
	"github.com/ugnsma/laranuxt/backend/internal/platform/eventbus"
	"github.com/ugnsma/laranuxt/backend/internal/platform/events"
	"github.com/ugnsma/laranuxt/backend/internal/platform/likeable"
	"github.com/ugnsma/laranuxt/backend/internal/platform/logger"
	threadsapp "github.com/ugnsma/laranuxt/backend/internal/threads/application"
	threadsports "github.com/ugnsma/laranuxt/backend/internal/threads/ports"
)

// Registrations is a marker type produced after all cross-context hooks
// are in place: likeable sources and event subscribers. NewApp depends on
// it so dependency injection cannot build an app without them.
type Registrations struct{}

// RegisterHooks wires the posts likeable source into the registry and
// attaches the activity logger to the event bus.
func RegisterHooks(
	registry likeable.Registry,
	posts threadsports.PostRepository,
	bus *eventbus.Bus,
	log logger.Logger,
) Registrations {
	threadsapp.RegisterPostsLikeable(registry, posts, log)
	events.NewActivityLogger(log).Subscribe(bus)
	return Registrations{}
}
