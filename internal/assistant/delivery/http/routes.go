package http

import (
	"github.com/gin-gonic/gin"

	"commerce-assistant/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Every assistant route sits behind Auth and the per-caller rate limit.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	protected := rg.Group("", mw.Auth(), mw.RateLimit())
	{
		protected.POST("/query", h.Query)
		protected.POST("/catalog/search", h.CatalogSearch)
		protected.GET("/order/status/:order_id", h.OrderStatus)
		protected.POST("/order/return", h.ReturnRequest)
		protected.POST("/order/cancel", h.CancelOrder)
		protected.GET("/pricing/quote", h.PricingQuote)
		protected.GET("/ask", h.Ask)
	}
}

// RegisterDevRoutes exposes the token mint endpoint. Debug mode only;
// production callers obtain tokens from the identity provider.
func RegisterDevRoutes(rg *gin.RouterGroup, h Handler) {
	rg.POST("/auth/token", h.IssueToken)
}
