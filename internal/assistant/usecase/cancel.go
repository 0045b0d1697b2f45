package usecase

import (
	"context"
	"fmt"

	"commerce-assistant/internal/assistant"
	"commerce-assistant/internal/model"
)

// CancelOrder validates cancellation eligibility against the configured
// status allow-list. Only eligible orders reach the OMS cancel call; an
// ineligible order gets refund 0 and the NOT_APPLICABLE confirmation ID.
func (uc *implUseCase) CancelOrder(ctx context.Context, orderID string) (model.Result, error) {
	if orderID == "" {
		return model.Result{}, fmt.Errorf("%w: order ID is required", assistant.ErrValidation)
	}

	uc.l.Infof(ctx, "%s: order=%s", LogPrefixCancel, orderID)

	order, err := uc.repo.GetOrder(ctx, orderID)
	if err != nil {
		return model.Result{}, fmt.Errorf("failed to fetch order %s: %w", orderID, err)
	}

	policy, err := uc.policyRepo.CancellationPolicy(ctx)
	if err != nil {
		return model.Result{}, fmt.Errorf("failed to fetch cancellation policy: %w", err)
	}

	eligible := policy.Cancellable(order.Status)

	var refundAmount float64
	cancelID := NotApplicable
	if eligible {
		if len(order.Items) > 0 && order.PaymentStatus == "PAID" {
			refundAmount = order.Items[0].Price
		}

		cancelID, err = uc.repo.CancelOrder(ctx, orderID)
		if err != nil {
			return model.Result{}, fmt.Errorf("failed to cancel order %s: %w", orderID, err)
		}
	}

	refundable := "NO"
	if eligible {
		refundable = "YES"
	}
	policyText := fmt.Sprintf("- Cancellable statuses: %v\n- Refund processing: %d days",
		policy.CancellableStatuses, policy.RefundProcessingDays)

	prompt := fmt.Sprintf(PromptCancel,
		order.OrderID, order.Status, refundable, refundAmount, policyText, cancelID)
	message, err := uc.generate(ctx, prompt, CancelTemperature)
	if err != nil {
		return model.Result{}, err
	}

	return model.Result{
		Message: message,
		Cancel: &model.CancelResult{
			OrderID:         order.OrderID,
			Eligible:        eligible,
			RefundAmount:    refundAmount,
			CancelRequestID: cancelID,
		},
	}, nil
}
