// Package qdrant implements semantic document retrieval over a Qdrant
// collection, embedding queries with Voyage AI.
package qdrant

import (
	"context"
	"fmt"

	"commerce-assistant/internal/assistant/repository"
	pkgLog "commerce-assistant/pkg/log"
	"commerce-assistant/pkg/qdrant"
	"commerce-assistant/pkg/voyage"
)

const defaultLimit = 5

type implRepository struct {
	client     *qdrant.Client
	embedder   *voyage.Client
	collection string
	l          pkgLog.Logger
}

var _ repository.DocumentRepository = (*implRepository)(nil)

// New creates a DocumentRepository over the given Qdrant collection.
func New(client *qdrant.Client, embedder *voyage.Client, collection string, l pkgLog.Logger) *implRepository {
	return &implRepository{
		client:     client,
		embedder:   embedder,
		collection: collection,
		l:          l,
	}
}

// SearchDocuments embeds the query and returns the top-K document chunks,
// ordered by relevance. The result may be empty.
func (r *implRepository) SearchDocuments(ctx context.Context, opt repository.SearchDocumentsOptions) ([]repository.DocumentResult, error) {
	if opt.Query == "" {
		return nil, fmt.Errorf("search query is empty")
	}
	limit := opt.Limit
	if limit <= 0 {
		limit = defaultLimit
	}

	vectors, err := r.embedder.Embed(ctx, []string{opt.Query})
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}

	resp, err := r.client.SearchPoints(ctx, r.collection, qdrant.SearchRequest{
		Vector:      vectors[0],
		Limit:       limit,
		WithPayload: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to search documents: %w", err)
	}

	results := make([]repository.DocumentResult, 0, len(resp.Result))
	for _, point := range resp.Result {
		content, _ := point.Payload["content"].(string)
		results = append(results, repository.DocumentResult{
			DocID:   point.ID,
			Score:   point.Score,
			Content: content,
			Payload: point.Payload,
		})
	}

	r.l.Debugf(ctx, "SearchDocuments: query=%q hits=%d", opt.Query, len(results))
	return results, nil
}
