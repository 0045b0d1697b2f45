package usecase

import (
	"context"
	"fmt"
	"strings"

	"commerce-assistant/internal/assistant"
	"commerce-assistant/internal/assistant/repository"
)

const (
	// MaxDocsInContext caps the retrieved documents stuffed into the prompt.
	MaxDocsInContext = 5
	// MaxCharsPerDoc truncates each document chunk before prompting.
	MaxCharsPerDoc = 800
)

// Ask answers a free-form question over the retrieved policy documents.
func (uc *implUseCase) Ask(ctx context.Context, input assistant.AskInput) (assistant.AskOutput, error) {
	if input.Query == "" {
		return assistant.AskOutput{}, assistant.ErrEmptyQuery
	}
	if uc.docs == nil {
		return assistant.AskOutput{}, fmt.Errorf("document retrieval is not configured")
	}

	uc.l.Infof(ctx, "%s: query=%q", LogPrefixAsk, input.Query)

	results, err := uc.docs.SearchDocuments(ctx, repository.SearchDocumentsOptions{
		Query: input.Query,
		Limit: MaxDocsInContext,
	})
	if err != nil {
		return assistant.AskOutput{}, fmt.Errorf("failed to search documents: %w", err)
	}

	if len(results) == 0 {
		return assistant.AskOutput{
			Answer:      "I could not find any policy document related to your question.",
			SourceCount: 0,
		}, nil
	}

	var contextBuilder strings.Builder
	for i, doc := range results {
		fmt.Fprintf(&contextBuilder, "-- Document %d (relevance: %.0f%%) --\n%s\n\n",
			i+1, doc.Score*100, truncateText(doc.Content, MaxCharsPerDoc))
	}

	prompt := fmt.Sprintf(PromptAsk, contextBuilder.String(), input.Query)
	answer, err := uc.generate(ctx, prompt, AskTemperature)
	if err != nil {
		return assistant.AskOutput{}, err
	}

	return assistant.AskOutput{
		Answer:      answer,
		SourceCount: len(results),
	}, nil
}

// truncateText safely truncates text to maxLen runes.
func truncateText(text string, maxLen int) string {
	runes := []rune(text)
	if len(runes) <= maxLen {
		return text
	}
	return string(runes[:maxLen]) + "..."
}
