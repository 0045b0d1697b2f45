package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"

	"commerce-assistant/internal/assistant"
	"commerce-assistant/internal/model"
	pkgCommerce "commerce-assistant/pkg/commerce"
)

// generate calls the LLM once and wraps any failure as ErrGeneration so
// callers can map it to the right error class.
func (uc *implUseCase) generate(ctx context.Context, prompt string, temperature float64) (string, error) {
	text, err := uc.llm.Generate(ctx, prompt, temperature)
	if err != nil {
		return "", fmt.Errorf("%w: %v", assistant.ErrGeneration, err)
	}
	return text, nil
}

// failureResult shapes a handler error into a Result so the dispatch
// pipeline stays total. Commerce call failures carry the failing URL.
func (uc *implUseCase) failureResult(ctx context.Context, intent model.Intent, err error) model.Result {
	uc.l.Errorf(ctx, "%s: %s handler failed: %v", LogPrefixDispatch, intent, err)

	res := model.Result{
		Message: MessageHandlerFailure,
		Err:     err.Error(),
	}
	var callErr *pkgCommerce.CallError
	if errors.As(err, &callErr) {
		res.ErrURL = callErr.URL
	}
	return res
}

// round2 rounds to two decimal places, the precision refunds are quoted in.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
