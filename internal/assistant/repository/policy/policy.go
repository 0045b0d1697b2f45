// Package policy retrieves cancellation and return policies. Policies
// live as documents in the vector store; when retrieval fails or no
// document matches, the statically configured defaults apply, so policy
// lookup is total.
package policy

import (
	"context"

	"commerce-assistant/internal/assistant/repository"
	"commerce-assistant/internal/model"
	pkgLog "commerce-assistant/pkg/log"
)

type implRepository struct {
	docs               repository.DocumentRepository // optional
	cancellationPolicy model.CancellationPolicy
	returnPolicy       model.ReturnPolicy
	l                  pkgLog.Logger
}

var _ repository.PolicyRepository = (*implRepository)(nil)

// New creates a PolicyRepository. docs may be nil, in which case the
// configured defaults are always returned.
func New(docs repository.DocumentRepository, cancellation model.CancellationPolicy, ret model.ReturnPolicy, l pkgLog.Logger) *implRepository {
	return &implRepository{
		docs:               docs,
		cancellationPolicy: cancellation,
		returnPolicy:       ret,
		l:                  l,
	}
}

// CancellationPolicy returns the current cancellation policy.
func (r *implRepository) CancellationPolicy(ctx context.Context) (model.CancellationPolicy, error) {
	policy := r.cancellationPolicy

	doc, ok := r.retrieve(ctx, "order cancellation policy")
	if !ok {
		return policy, nil
	}

	if statuses, ok := doc["cancellable_statuses"].([]interface{}); ok && len(statuses) > 0 {
		policy.CancellableStatuses = nil
		for _, s := range statuses {
			if status, ok := s.(string); ok {
				policy.CancellableStatuses = append(policy.CancellableStatuses, status)
			}
		}
	}
	if days, ok := doc["refund_processing_days"].(float64); ok {
		policy.RefundProcessingDays = int(days)
	}

	return policy, nil
}

// ReturnPolicy returns the return policy applicable to the given SKU.
func (r *implRepository) ReturnPolicy(ctx context.Context, sku string) (model.ReturnPolicy, error) {
	policy := r.returnPolicy

	doc, ok := r.retrieve(ctx, "product return policy "+sku)
	if !ok {
		return policy, nil
	}

	if days, ok := doc["return_window_days"].(float64); ok {
		policy.ReturnWindowDays = int(days)
	}
	if fee, ok := doc["restocking_fee_percent"].(float64); ok {
		policy.RestockingFeePercent = fee
	}
	if returnType, ok := doc["return_type"].(string); ok {
		policy.ReturnType = returnType
	}

	return policy, nil
}

// retrieve fetches the best-matching policy document payload. Retrieval
// failure is logged and reported as a miss, never as an error.
func (r *implRepository) retrieve(ctx context.Context, query string) (map[string]interface{}, bool) {
	if r.docs == nil {
		return nil, false
	}

	results, err := r.docs.SearchDocuments(ctx, repository.SearchDocumentsOptions{
		Query: query,
		Limit: 1,
	})
	if err != nil {
		r.l.Warnf(ctx, "policy retrieval failed, using defaults: %v", err)
		return nil, false
	}
	if len(results) == 0 || results[0].Payload == nil {
		return nil, false
	}

	return results[0].Payload, true
}
