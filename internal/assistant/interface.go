package assistant

import (
	"context"

	"commerce-assistant/internal/model"
)

// UseCase is the business logic interface for the assistant domain.
//
// ProcessQuery is the full dispatch pipeline (classify → extract →
// handle). The remaining methods expose the individual handlers for the
// direct gateway endpoints; each combines data lookups with exactly one
// text-generation call.
type UseCase interface {
	// ProcessQuery classifies the raw query and routes it to the
	// matching handler. The returned state always has Result populated.
	ProcessQuery(ctx context.Context, input QueryInput) model.ConversationState

	// CatalogSearch searches the catalog and enriches every hit.
	CatalogSearch(ctx context.Context, input CatalogInput) (model.Result, error)

	// OrderStatus reports an order's status and delivery estimate.
	OrderStatus(ctx context.Context, orderID string) (model.Result, error)

	// ReturnRequest creates a return request and computes the refund.
	ReturnRequest(ctx context.Context, input ReturnInput) (model.Result, error)

	// CancelOrder validates cancellation eligibility and requests the cancel.
	CancelOrder(ctx context.Context, orderID string) (model.Result, error)

	// PricingQuote computes a tier-discounted quote.
	PricingQuote(ctx context.Context, input PricingInput) (model.Result, error)

	// Ask answers a free-form question over the retrieved policy documents.
	Ask(ctx context.Context, input AskInput) (AskOutput, error)
}
