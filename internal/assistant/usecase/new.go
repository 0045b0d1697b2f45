package usecase

import (
	"context"

	"commerce-assistant/internal/assistant"
	"commerce-assistant/internal/assistant/repository"
	"commerce-assistant/internal/model"
	pkgLog "commerce-assistant/pkg/log"
)

var _ assistant.UseCase = (*implUseCase)(nil)

// Generator is the single text-generation collaborator every handler
// calls exactly once. *gemini.Client satisfies it.
type Generator interface {
	Generate(ctx context.Context, prompt string, temperature float64) (string, error)
}

// Router classifies a raw query into an intent.
type Router interface {
	Classify(ctx context.Context, query string) model.Intent
}

type implUseCase struct {
	l                   pkgLog.Logger
	llm                 Generator
	router              Router
	repo                repository.CommerceRepository
	policyRepo          repository.PolicyRepository
	docs                repository.DocumentRepository
	enforceReturnWindow bool
}

// New creates a new assistant UseCase instance.
func New(
	l pkgLog.Logger,
	llm Generator,
	router Router,
	repo repository.CommerceRepository,
	policyRepo repository.PolicyRepository,
	docs repository.DocumentRepository,
	enforceReturnWindow bool,
) *implUseCase {
	return &implUseCase{
		l:                   l,
		llm:                 llm,
		router:              router,
		repo:                repo,
		policyRepo:          policyRepo,
		docs:                docs,
		enforceReturnWindow: enforceReturnWindow,
	}
}
