package usecase

import (
	"context"

	"commerce-assistant/internal/assistant"
	"commerce-assistant/internal/model"
)

// ProcessQuery runs the full dispatch pipeline: classify the query,
// extract parameters, and route to exactly one handler. The returned
// state always carries a populated Result; errors never escape.
func (uc *implUseCase) ProcessQuery(ctx context.Context, input assistant.QueryInput) model.ConversationState {
	customerType := input.CustomerType
	if customerType == "" {
		customerType = "B2C"
	}

	state := model.ConversationState{
		Query: input.Query,
		Customer: model.Customer{
			ID:   input.CustomerID,
			Type: customerType,
			Tier: input.CustomerTier,
		},
	}

	state.Intent = uc.router.Classify(ctx, input.Query)
	uc.l.Infof(ctx, "%s: intent=%s query=%q", LogPrefixDispatch, state.Intent, input.Query)

	var (
		res model.Result
		err error
	)
	switch state.Intent {
	case model.IntentCatalogSearch:
		res, err = uc.CatalogSearch(ctx, assistant.CatalogInput{
			Query:        input.Query,
			CustomerID:   input.CustomerID,
			CustomerType: customerType,
		})
	case model.IntentOrderStatus:
		res, err = uc.OrderStatus(ctx, extractOrderID(input.Query))
	case model.IntentReturnRequest:
		res, err = uc.ReturnRequest(ctx, assistant.ReturnInput{
			OrderID: extractOrderID(input.Query),
			SKU:     extractSKU(input.Query),
		})
	case model.IntentOrderCancellation:
		res, err = uc.CancelOrder(ctx, extractOrderID(input.Query))
	case model.IntentPricingQuery:
		res, err = uc.PricingQuote(ctx, assistant.PricingInput{
			SKU:      extractSKU(input.Query),
			Quantity: extractQuantity(input.Query),
			Tier:     input.CustomerTier,
		})
	default:
		res = model.Result{Message: MessageUnknownIntent}
	}

	if err != nil {
		res = uc.failureResult(ctx, state.Intent, err)
	}
	state.Result = &res
	return state
}
