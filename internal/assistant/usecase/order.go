package usecase

import (
	"context"
	"fmt"

	"commerce-assistant/internal/assistant"
	"commerce-assistant/internal/model"
)

// OrderStatus reports an order's current status and delivery estimate.
// A missing delivery estimate degrades the reply, it does not fail it.
func (uc *implUseCase) OrderStatus(ctx context.Context, orderID string) (model.Result, error) {
	if orderID == "" {
		return model.Result{}, fmt.Errorf("%w: order ID is required", assistant.ErrValidation)
	}

	uc.l.Infof(ctx, "%s: order=%s", LogPrefixOrder, orderID)

	order, err := uc.repo.GetOrder(ctx, orderID)
	if err != nil {
		return model.Result{}, fmt.Errorf("failed to fetch order %s: %w", orderID, err)
	}

	var carrier, eta string
	if order.TrackingNumber != "" {
		shipping, err := uc.repo.GetShippingETA(ctx, order.TrackingNumber)
		if err != nil {
			uc.l.Warnf(ctx, "%s: ETA lookup failed for %s: %v", LogPrefixOrder, order.TrackingNumber, err)
		} else {
			carrier = shipping.Carrier
			eta = shipping.ETA
		}
	}

	prompt := fmt.Sprintf(PromptOrderStatus,
		order.OrderID, order.Status, order.OrderDate, order.DeliveryDate, carrier, eta)
	message, err := uc.generate(ctx, prompt, OrderTemperature)
	if err != nil {
		return model.Result{}, err
	}

	return model.Result{
		Message: message,
		Order: &model.OrderResult{
			OrderID: order.OrderID,
			Status:  order.Status,
			ETA:     eta,
		},
	}, nil
}
