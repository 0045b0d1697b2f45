package router

import (
	"context"
	"fmt"
	"strings"

	"commerce-assistant/internal/model"
)

// Classify matches the lowercased query against the keyword tables.
func (r *KeywordRouter) Classify(ctx context.Context, query string) model.Intent {
	text := strings.ToLower(query)

	switch {
	case containsAny(text, cancelKeywords):
		return model.IntentOrderCancellation
	case containsAny(text, returnKeywords):
		return model.IntentReturnRequest
	case containsAny(text, pricingKeywords):
		return model.IntentPricingQuery
	case containsAny(text, orderKeywords):
		return model.IntentOrderStatus
	case containsAny(text, catalogKeywords):
		return model.IntentCatalogSearch
	}

	return model.IntentUnknown
}

// Classify asks the LLM for a label. Any failure, empty response, or
// unparseable label falls back to UNKNOWN; classification is never retried.
func (r *SemanticRouter) Classify(ctx context.Context, query string) model.Intent {
	prompt := fmt.Sprintf(PromptClassifySystem, query)

	label, err := r.llm.Generate(ctx, prompt, ClassifyTemperature)
	if err != nil {
		r.l.Warnf(ctx, "%s: LLM call failed, falling back to UNKNOWN: %v", LogPrefixClassify, err)
		return model.IntentUnknown
	}

	intent := model.ParseIntent(strings.ToUpper(strings.TrimSpace(label)))
	r.l.Infof(ctx, "%s: classified as %s", LogPrefixClassify, intent)
	return intent
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
