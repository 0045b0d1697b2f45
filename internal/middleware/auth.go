package middleware

import (
	"github.com/gin-gonic/gin"

	"commerce-assistant/internal/model"
	"commerce-assistant/pkg/response"
)

// Auth authenticates every request via X-API-Key or Authorization
// header and stores the resulting identity in the gin context.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		identity, err := m.authenticator.Authenticate(ctx,
			c.GetHeader("X-API-Key"),
			c.GetHeader("Authorization"),
		)
		if err != nil {
			m.l.Warnf(ctx, "Auth: %v", err)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set(IdentityKey, identity)
		c.Next()
	}
}

// RequireRole gates a route on an RBAC role. Must run after Auth.
func (m Middleware) RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := GetIdentity(c)
		if !ok {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		if err := m.authenticator.Authorize(c.Request.Context(), identity, role); err != nil {
			response.Forbidden(c)
			c.Abort()
			return
		}

		c.Next()
	}
}

// GetIdentity reads the authenticated identity set by Auth.
func GetIdentity(c *gin.Context) (model.Identity, bool) {
	v, ok := c.Get(IdentityKey)
	if !ok {
		return model.Identity{}, false
	}
	identity, ok := v.(model.Identity)
	return identity, ok
}
