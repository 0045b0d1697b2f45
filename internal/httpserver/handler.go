package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	assistantHTTP "commerce-assistant/internal/assistant/delivery/http"
	"commerce-assistant/internal/model"
)

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(srv.middleware.RequestID())

	ctx := context.Background()
	srv.l.Infof(ctx, "Middlewares registered for environment: %s", srv.environment)
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes.
func (srv HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()

	api := srv.gin.Group("/api/v1")

	assistantHTTP.RegisterRoutes(api.Group("/assistant"), srv.assistantHandler, srv.middleware)
	srv.l.Infof(ctx, "Assistant routes registered under /api/v1/assistant")

	// Token minting is a dev convenience only.
	if srv.environment != string(model.EnvironmentProduction) {
		assistantHTTP.RegisterDevRoutes(api, srv.assistantHandler)
		srv.l.Infof(ctx, "Dev token route registered at POST /api/v1/auth/token")
	}

	return nil
}
