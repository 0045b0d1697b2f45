package repository

import (
	"context"

	"commerce-assistant/internal/model"
)

// CommerceRepository is the data-access interface over the commerce
// backend services (OMS, Catalog, Inventory, Pricing, Shipping).
// Implementations return errors wrapping commerce.ErrServiceUnavailable
// on timeout/connection failure.
type CommerceRepository interface {
	GetOrder(ctx context.Context, orderID string) (model.Order, error)
	CancelOrder(ctx context.Context, orderID string) (string, error)
	GetShippingETA(ctx context.Context, trackingNo string) (model.ShippingETA, error)
	SearchCatalog(ctx context.Context, query string) ([]model.Product, error)
	GetProduct(ctx context.Context, sku string) (model.Product, error)
	GetInventory(ctx context.Context, sku string) (string, error)
	GetContractPrice(ctx context.Context, customerID, sku string) (model.ContractPrice, error)
	GetBulkPrice(ctx context.Context, sku string, quantity int) (float64, error)
}

// PolicyRepository retrieves cancellation and return policies.
type PolicyRepository interface {
	CancellationPolicy(ctx context.Context) (model.CancellationPolicy, error)
	ReturnPolicy(ctx context.Context, sku string) (model.ReturnPolicy, error)
}

// DocumentRepository performs semantic retrieval over enterprise documents.
type DocumentRepository interface {
	SearchDocuments(ctx context.Context, opt SearchDocumentsOptions) ([]DocumentResult, error)
}

// SearchDocumentsOptions defines retrieval parameters.
type SearchDocumentsOptions struct {
	Query string // Natural language query
	Limit int    // Top-K results
}

// DocumentResult is one retrieved document chunk.
type DocumentResult struct {
	DocID   string
	Score   float64
	Content string
	Payload map[string]interface{}
}
