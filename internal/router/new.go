package router

import (
	"context"

	"commerce-assistant/internal/model"
	"commerce-assistant/pkg/gemini"
	pkgLog "commerce-assistant/pkg/log"
)

// Router classifies raw user text into an intent. Classify is total: it
// always produces a label, defaulting to UNKNOWN.
type Router interface {
	Classify(ctx context.Context, query string) model.Intent
}

// KeywordRouter is the deterministic keyword-matching strategy.
type KeywordRouter struct{}

// SemanticRouter delegates classification to the LLM with a fixed prompt.
type SemanticRouter struct {
	llm *gemini.Client
	l   pkgLog.Logger
}

var (
	_ Router = (*KeywordRouter)(nil)
	_ Router = (*SemanticRouter)(nil)
)

// NewKeyword creates the keyword-matching classifier.
func NewKeyword() *KeywordRouter {
	return &KeywordRouter{}
}

// NewSemantic creates the LLM-backed classifier.
func NewSemantic(llm *gemini.Client, l pkgLog.Logger) *SemanticRouter {
	return &SemanticRouter{
		llm: llm,
		l:   l,
	}
}
