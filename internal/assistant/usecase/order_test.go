package usecase_test

import (
	"context"
	"errors"
	"testing"

	"commerce-assistant/internal/assistant"
	"commerce-assistant/internal/assistant/usecase"
	"commerce-assistant/internal/model"
)

func TestOrderStatus(t *testing.T) {
	newUC := func(repo *mockCommerceRepo) assistant.UseCase {
		return usecase.New(&mockLogger{}, &mockGenerator{}, &mockRouter{}, repo, &mockPolicyRepo{}, &mockDocsRepo{}, false)
	}

	t.Run("Empty Order ID", func(t *testing.T) {
		uc := newUC(&mockCommerceRepo{})
		_, err := uc.OrderStatus(context.Background(), "")
		if !errors.Is(err, assistant.ErrValidation) {
			t.Errorf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("Status With Delivery Estimate", func(t *testing.T) {
		uc := newUC(&mockCommerceRepo{})
		res, err := uc.OrderStatus(context.Background(), "ORD1001")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Order == nil {
			t.Fatal("expected order payload")
		}
		if res.Order.Status != "PROCESSING" {
			t.Errorf("status = %q, want PROCESSING", res.Order.Status)
		}
		if res.Order.ETA != "2024-10-15" {
			t.Errorf("eta = %q, want 2024-10-15", res.Order.ETA)
		}
	})

	t.Run("ETA Lookup Failure Degrades Gracefully", func(t *testing.T) {
		repo := &mockCommerceRepo{
			getShippingETAFunc: func(trackingNo string) (model.ShippingETA, error) {
				return model.ShippingETA{}, errors.New("shipping service down")
			},
		}
		uc := newUC(repo)
		res, err := uc.OrderStatus(context.Background(), "ORD1001")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Order.ETA != "" {
			t.Errorf("eta = %q, want empty on lookup failure", res.Order.ETA)
		}
	})

	t.Run("Order Lookup Failure Propagates", func(t *testing.T) {
		repo := &mockCommerceRepo{
			getOrderFunc: func(orderID string) (model.Order, error) {
				return model.Order{}, errors.New("oms down")
			},
		}
		uc := newUC(repo)
		if _, err := uc.OrderStatus(context.Background(), "ORD1001"); err == nil {
			t.Error("expected error when order lookup fails")
		}
	})
}
