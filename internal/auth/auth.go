package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"commerce-assistant/internal/model"
	"commerce-assistant/pkg/scope"
)

// Authenticate resolves the caller's identity. The API key path wins
// when both credentials are present.
func (a *implAuthenticator) Authenticate(ctx context.Context, apiKey, bearer string) (model.Identity, error) {
	if apiKey != "" {
		client, ok := a.lookupClient(apiKey)
		if !ok {
			a.l.Warnf(ctx, "Authenticate: invalid API key")
			return model.Identity{}, fmt.Errorf("%w: invalid API key", ErrUnauthorized)
		}
		return model.Identity{
			AuthType: model.AuthTypeAPIKey,
			Client:   client,
		}, nil
	}

	if bearer != "" {
		token := strings.TrimPrefix(bearer, "Bearer ")
		claims, err := a.scope.Verify(token)
		if err != nil {
			if errors.Is(err, scope.ErrTokenExpired) {
				a.l.Warnf(ctx, "Authenticate: token expired")
				return model.Identity{}, fmt.Errorf("%w: token expired", ErrUnauthorized)
			}
			a.l.Warnf(ctx, "Authenticate: invalid token: %v", err)
			return model.Identity{}, fmt.Errorf("%w: invalid token", ErrUnauthorized)
		}
		return model.Identity{
			AuthType: model.AuthTypeToken,
			UserID:   claims.UserID,
			Role:     claims.Role,
		}, nil
	}

	return model.Identity{}, fmt.Errorf("%w: missing credentials", ErrUnauthorized)
}

// Authorize checks the identity against the required role. API-key
// callers get their roles from the per-client role map; token callers
// carry the role in their claims.
func (a *implAuthenticator) Authorize(ctx context.Context, identity model.Identity, requiredRole string) error {
	if requiredRole == "" {
		return nil
	}

	var roles []string
	switch identity.AuthType {
	case model.AuthTypeAPIKey:
		roles = a.roleMap[identity.Client]
	case model.AuthTypeToken:
		roles = []string{identity.Role}
	}

	for _, role := range roles {
		if role == requiredRole {
			return nil
		}
	}

	a.l.Warnf(ctx, "Authorize: role %s denied for %+v", requiredRole, identity)
	return fmt.Errorf("%w: role %s required", ErrForbidden, requiredRole)
}

func (a *implAuthenticator) lookupClient(apiKey string) (string, bool) {
	for client, key := range a.apiKeys {
		if key == apiKey {
			return client, true
		}
	}
	return "", false
}
