package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"commerce-assistant/internal/assistant"
	"commerce-assistant/pkg/log"
	"commerce-assistant/pkg/scope"
)

// Handler is the public interface for the assistant HTTP delivery layer.
type Handler interface {
	Query(c *gin.Context)
	CatalogSearch(c *gin.Context)
	OrderStatus(c *gin.Context)
	ReturnRequest(c *gin.Context)
	CancelOrder(c *gin.Context)
	PricingQuote(c *gin.Context)
	Ask(c *gin.Context)
	IssueToken(c *gin.Context)
}

type handler struct {
	l      log.Logger
	uc     assistant.UseCase
	scope  scope.Manager
	jwtTTL time.Duration
}

var _ Handler = (*handler)(nil)

// New creates a new HTTP handler for the assistant domain.
func New(l log.Logger, uc assistant.UseCase, scopeManager scope.Manager, jwtTTL time.Duration) *handler {
	return &handler{
		l:      l,
		uc:     uc,
		scope:  scopeManager,
		jwtTTL: jwtTTL,
	}
}
