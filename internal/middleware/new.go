package middleware

import (
	"commerce-assistant/internal/auth"
	"commerce-assistant/pkg/log"
)

// IdentityKey is the gin context key the auth middleware stores the
// caller's identity under.
const IdentityKey = "identity"

type Middleware struct {
	l             log.Logger
	authenticator auth.Authenticator
	rateLimiter   *rateLimiter
}

func New(l log.Logger, authenticator auth.Authenticator, rateLimitPerMin int) Middleware {
	return Middleware{
		l:             l,
		authenticator: authenticator,
		rateLimiter:   newRateLimiter(rateLimitPerMin),
	}
}
