package usecase

import (
	"context"
	"fmt"
	"time"

	"commerce-assistant/internal/assistant"
	"commerce-assistant/internal/model"
)

const dateLayout = "2006-01-02"

// ReturnRequest computes the post-fee refund for a line item and creates
// the return request. The return window is only enforced when the
// policy.enforce_return_window flag is on; otherwise every returnable
// item is accepted regardless of delivery date.
func (uc *implUseCase) ReturnRequest(ctx context.Context, input assistant.ReturnInput) (model.Result, error) {
	if input.OrderID == "" || input.SKU == "" {
		return model.Result{}, fmt.Errorf("%w: order ID and SKU are required", assistant.ErrValidation)
	}

	uc.l.Infof(ctx, "%s: order=%s sku=%s", LogPrefixReturn, input.OrderID, input.SKU)

	order, err := uc.repo.GetOrder(ctx, input.OrderID)
	if err != nil {
		return model.Result{}, fmt.Errorf("failed to fetch order %s: %w", input.OrderID, err)
	}

	item, ok := order.Item(input.SKU)
	if !ok {
		return model.Result{}, fmt.Errorf("%w: sku %s not in order %s", assistant.ErrItemNotFound, input.SKU, input.OrderID)
	}

	policy, err := uc.policyRepo.ReturnPolicy(ctx, input.SKU)
	if err != nil {
		return model.Result{}, fmt.Errorf("failed to fetch return policy: %w", err)
	}

	eligible := true
	if uc.enforceReturnWindow {
		eligible = withinReturnWindow(order.DeliveryDate, policy.ReturnWindowDays, time.Now())
	}

	var refundAmount float64
	returnID := NotApplicable
	if eligible {
		refundAmount = round2(item.Price - item.Price*policy.RestockingFeePercent/100)
		returnID = fmt.Sprintf("RETURN-%s-%s", input.OrderID, input.SKU)
	}

	prompt := fmt.Sprintf(PromptReturn,
		order.OrderID, input.SKU, order.OrderDate, order.DeliveryDate,
		item.Price, policy.ReturnWindowDays, refundAmount)
	message, err := uc.generate(ctx, prompt, ReturnTemperature)
	if err != nil {
		return model.Result{}, err
	}

	return model.Result{
		Message: message,
		Return: &model.ReturnResult{
			OrderID:      order.OrderID,
			SKU:          input.SKU,
			Eligible:     eligible,
			RefundAmount: refundAmount,
			ReturnID:     returnID,
		},
	}, nil
}

// withinReturnWindow reports whether the delivery date plus the window
// covers now. An unparseable or missing delivery date counts as within
// the window; the check must never reject on bad upstream data.
func withinReturnWindow(deliveryDate string, windowDays int, now time.Time) bool {
	if deliveryDate == "" || windowDays <= 0 {
		return true
	}
	delivered, err := time.Parse(dateLayout, deliveryDate)
	if err != nil {
		return true
	}
	return !now.After(delivered.AddDate(0, 0, windowDays))
}
