package session_fx

import (
	"go.uber.org/fx"

	mem "travelwise/pkg/memcache"
)

var Module = fx.Provide(
	provideUserSessions)

func provideUserSessions() mem.UserSessionStore {
	return mem.NewUserSessions()
}
