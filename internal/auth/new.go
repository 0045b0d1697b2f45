package auth

import (
	"context"

	"commerce-assistant/internal/model"
	pkgLog "commerce-assistant/pkg/log"
	"commerce-assistant/pkg/scope"
)

// Authenticator is the gateway auth gate. Authenticate establishes who
// is calling (API key for service-to-service, bearer token for end
// users); Authorize checks the caller against a required role.
type Authenticator interface {
	Authenticate(ctx context.Context, apiKey, bearer string) (model.Identity, error)
	Authorize(ctx context.Context, identity model.Identity, requiredRole string) error
}

type implAuthenticator struct {
	l       pkgLog.Logger
	scope   scope.Manager
	apiKeys map[string]string   // client name -> key
	roleMap map[string][]string // client name -> allowed roles
}

var _ Authenticator = (*implAuthenticator)(nil)

// New creates a new Authenticator instance.
func New(l pkgLog.Logger, scopeManager scope.Manager, apiKeys map[string]string, roleMap map[string][]string) *implAuthenticator {
	return &implAuthenticator{
		l:       l,
		scope:   scopeManager,
		apiKeys: apiKeys,
		roleMap: roleMap,
	}
}
