package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"commerce-assistant/config"
	assistantHTTP "commerce-assistant/internal/assistant/delivery/http"
	"commerce-assistant/internal/assistant/repository"
	commerceRepo "commerce-assistant/internal/assistant/repository/commerce"
	policyRepo "commerce-assistant/internal/assistant/repository/policy"
	qdrantRepo "commerce-assistant/internal/assistant/repository/qdrant"
	stubRepo "commerce-assistant/internal/assistant/repository/stub"
	"commerce-assistant/internal/assistant/usecase"
	"commerce-assistant/internal/auth"
	"commerce-assistant/internal/httpserver"
	"commerce-assistant/internal/middleware"
	"commerce-assistant/internal/model"
	"commerce-assistant/internal/router"
	pkgCommerce "commerce-assistant/pkg/commerce"
	"commerce-assistant/pkg/gemini"
	"commerce-assistant/pkg/log"
	"commerce-assistant/pkg/qdrant"
	"commerce-assistant/pkg/scope"
	"commerce-assistant/pkg/voyage"
)

// @title       Commerce Assistant API
// @description AI customer-service assistant for eCommerce: intent routing, order workflows, catalog search, pricing and policy Q&A.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Commerce Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Backend mode: %s", cfg.Backend.Mode)

	// 3. LLM client
	geminiClient := gemini.NewClient(cfg.Gemini.APIKey).WithModel(cfg.Gemini.Model)

	// 4. Intent classifier
	var intentRouter usecase.Router
	if cfg.Classifier.Mode == "llm" && cfg.Gemini.APIKey != "" {
		intentRouter = router.NewSemantic(geminiClient, logger)
		logger.Info(ctx, "Intent classifier: LLM")
	} else {
		intentRouter = router.NewKeyword()
		logger.Info(ctx, "Intent classifier: keyword")
	}

	// 5. Commerce repository
	var commerce repository.CommerceRepository
	if cfg.Backend.Mode == "http" {
		commerce = commerceRepo.New(pkgCommerce.NewClient(cfg.Backend.BaseURL), logger)
		logger.Infof(ctx, "Commerce backend: %s", cfg.Backend.BaseURL)
	} else {
		commerce = stubRepo.New()
		logger.Info(ctx, "Commerce backend: built-in stub dataset")
	}

	// 6. Document retrieval (optional; policies fall back to config defaults)
	var docs repository.DocumentRepository
	if cfg.Voyage.APIKey != "" {
		embedder, vErr := voyage.New(cfg.Voyage.APIKey)
		if vErr != nil {
			logger.Warnf(ctx, "Voyage client not available: %v", vErr)
		} else {
			docs = qdrantRepo.New(qdrant.NewClient(cfg.Qdrant.URL), embedder, cfg.Qdrant.CollectionName, logger)
			logger.Infof(ctx, "Document retrieval enabled (collection=%s)", cfg.Qdrant.CollectionName)
		}
	} else {
		logger.Warn(ctx, "VOYAGE_API_KEY missing, policy retrieval disabled")
	}

	// 7. Policy repository
	policies := policyRepo.New(docs,
		model.CancellationPolicy{
			CancellableStatuses:  cfg.Policy.CancellableStatuses,
			RefundProcessingDays: cfg.Policy.RefundProcessingDays,
		},
		model.ReturnPolicy{
			ReturnWindowDays:     cfg.Policy.ReturnWindowDays,
			RestockingFeePercent: cfg.Policy.RestockingFeePercent,
			ReturnType:           cfg.Policy.ReturnType,
		},
		logger,
	)

	// 8. Assistant UseCase
	assistantUC := usecase.New(logger, geminiClient, intentRouter, commerce, policies, docs, cfg.Policy.EnforceReturnWindow)

	// 9. Auth gate
	scopeManager := scope.New(cfg.Gateway.JWTSecret)
	authenticator := auth.New(logger, scopeManager, cfg.Gateway.APIKeys, cfg.Gateway.RoleMap)
	mw := middleware.New(logger, authenticator, cfg.Gateway.RateLimitPerMin)

	// 10. Delivery
	assistantHandler := assistantHTTP.New(logger, assistantUC, scopeManager, cfg.Gateway.JWTTTL)

	// 11. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:           logger,
		Port:             cfg.HTTPServer.Port,
		Mode:             cfg.HTTPServer.Mode,
		Environment:      cfg.Environment.Name,
		AssistantHandler: assistantHandler,
		Middleware:       mw,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 12. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
