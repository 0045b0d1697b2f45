// Package stub is the in-memory commerce backend used in demo mode and
// tests. The dataset mirrors the canonical mock responses of the Java
// services.
package stub

import (
	"context"
	"fmt"

	"commerce-assistant/internal/assistant/repository"
	"commerce-assistant/internal/model"
)

type implRepository struct{}

var _ repository.CommerceRepository = (*implRepository)(nil)

// New creates the stub commerce repository.
func New() *implRepository {
	return &implRepository{}
}

// GetOrder returns the canonical mock order for any order ID.
func (r *implRepository) GetOrder(ctx context.Context, orderID string) (model.Order, error) {
	return model.Order{
		OrderID:        orderID,
		Status:         "PROCESSING",
		OrderDate:      "2024-10-01",
		DeliveryDate:   "2024-10-05",
		PaymentStatus:  "PAID",
		TrackingNumber: "BD123",
		Items: []model.OrderItem{
			{SKU: "SKU1001", Price: 2999, Quantity: 1, Returnable: true},
			{SKU: "SKU123", Price: 2500, Quantity: 1, Returnable: true},
		},
	}, nil
}

// CancelOrder returns a deterministic cancel confirmation ID.
func (r *implRepository) CancelOrder(ctx context.Context, orderID string) (string, error) {
	return fmt.Sprintf("CANCEL_REQ_%s", orderID), nil
}

// GetShippingETA returns the mock delivery estimate.
func (r *implRepository) GetShippingETA(ctx context.Context, trackingNo string) (model.ShippingETA, error) {
	return model.ShippingETA{
		Carrier: "BlueDart",
		ETA:     "2024-10-15",
	}, nil
}

// SearchCatalog returns the two canonical catalog hits.
func (r *implRepository) SearchCatalog(ctx context.Context, query string) ([]model.Product, error) {
	return []model.Product{
		{
			SKU:      "SKU123",
			Name:     "Noise Cancelling Headphones",
			Price:    2999,
			Category: "Electronics",
			Features: []string{"ANC", "Bluetooth", "40h Battery"},
		},
		{
			SKU:      "SKU456",
			Name:     "Wireless Earbuds Pro",
			Price:    1999,
			Category: "Electronics",
			Features: []string{"Noise Reduction", "Fast Charging"},
		},
	}, nil
}

// GetProduct returns the mock detail record.
func (r *implRepository) GetProduct(ctx context.Context, sku string) (model.Product, error) {
	return model.Product{
		SKU:                 sku,
		Price:               100,
		Description:         "High-quality audio device with premium features.",
		Availability:        "IN_STOCK",
		Rating:              4.5,
		B2BPricingAvailable: true,
	}, nil
}

// GetInventory returns the mock stock status.
func (r *implRepository) GetInventory(ctx context.Context, sku string) (string, error) {
	return "Available for immediate dispatch", nil
}

// GetContractPrice returns the mock B2B contract price.
func (r *implRepository) GetContractPrice(ctx context.Context, customerID, sku string) (model.ContractPrice, error) {
	return model.ContractPrice{
		ContractPrice:   2499,
		MinOrderQty:     10,
		DiscountPercent: 15,
	}, nil
}

// GetBulkPrice returns the mock bulk unit price.
func (r *implRepository) GetBulkPrice(ctx context.Context, sku string, quantity int) (float64, error) {
	return 95, nil
}
