package usecase_test

import (
	"context"

	"commerce-assistant/internal/assistant/repository"
	"commerce-assistant/internal/model"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// Mock generator; echoes a fixed reply unless generateFunc is set.
type mockGenerator struct {
	generateFunc func(prompt string, temperature float64) (string, error)
}

func (m *mockGenerator) Generate(ctx context.Context, prompt string, temperature float64) (string, error) {
	if m.generateFunc != nil {
		return m.generateFunc(prompt, temperature)
	}
	return "generated reply", nil
}

// Mock router returning a fixed intent.
type mockRouter struct {
	intent model.Intent
}

func (m *mockRouter) Classify(ctx context.Context, query string) model.Intent {
	return m.intent
}

// Mock commerce repository with per-method overrides.
type mockCommerceRepo struct {
	getOrderFunc         func(orderID string) (model.Order, error)
	cancelOrderFunc      func(orderID string) (string, error)
	getShippingETAFunc   func(trackingNo string) (model.ShippingETA, error)
	searchCatalogFunc    func(query string) ([]model.Product, error)
	getProductFunc       func(sku string) (model.Product, error)
	getInventoryFunc     func(sku string) (string, error)
	getContractPriceFunc func(customerID, sku string) (model.ContractPrice, error)
	getBulkPriceFunc     func(sku string, quantity int) (float64, error)
}

func (m *mockCommerceRepo) GetOrder(ctx context.Context, orderID string) (model.Order, error) {
	if m.getOrderFunc != nil {
		return m.getOrderFunc(orderID)
	}
	return model.Order{
		OrderID:        orderID,
		Status:         "PROCESSING",
		OrderDate:      "2024-10-01",
		DeliveryDate:   "2024-10-05",
		PaymentStatus:  "PAID",
		TrackingNumber: "BD123",
		Items: []model.OrderItem{
			{SKU: "SKU1001", Price: 2999, Quantity: 1, Returnable: true},
		},
	}, nil
}

func (m *mockCommerceRepo) CancelOrder(ctx context.Context, orderID string) (string, error) {
	if m.cancelOrderFunc != nil {
		return m.cancelOrderFunc(orderID)
	}
	return "CANCEL_REQ_" + orderID, nil
}

func (m *mockCommerceRepo) GetShippingETA(ctx context.Context, trackingNo string) (model.ShippingETA, error) {
	if m.getShippingETAFunc != nil {
		return m.getShippingETAFunc(trackingNo)
	}
	return model.ShippingETA{Carrier: "BlueDart", ETA: "2024-10-15"}, nil
}

func (m *mockCommerceRepo) SearchCatalog(ctx context.Context, query string) ([]model.Product, error) {
	if m.searchCatalogFunc != nil {
		return m.searchCatalogFunc(query)
	}
	return []model.Product{
		{SKU: "SKU123", Name: "Noise Cancelling Headphones", Price: 2999, Category: "Electronics"},
	}, nil
}

func (m *mockCommerceRepo) GetProduct(ctx context.Context, sku string) (model.Product, error) {
	if m.getProductFunc != nil {
		return m.getProductFunc(sku)
	}
	return model.Product{
		SKU:          sku,
		Price:        100,
		Description:  "High-quality audio device with premium features.",
		Availability: "IN_STOCK",
		Rating:       4.5,
	}, nil
}

func (m *mockCommerceRepo) GetInventory(ctx context.Context, sku string) (string, error) {
	if m.getInventoryFunc != nil {
		return m.getInventoryFunc(sku)
	}
	return "Available for immediate dispatch", nil
}

func (m *mockCommerceRepo) GetContractPrice(ctx context.Context, customerID, sku string) (model.ContractPrice, error) {
	if m.getContractPriceFunc != nil {
		return m.getContractPriceFunc(customerID, sku)
	}
	return model.ContractPrice{ContractPrice: 2499, MinOrderQty: 10, DiscountPercent: 15}, nil
}

func (m *mockCommerceRepo) GetBulkPrice(ctx context.Context, sku string, quantity int) (float64, error) {
	if m.getBulkPriceFunc != nil {
		return m.getBulkPriceFunc(sku, quantity)
	}
	return 95, nil
}

// Mock policy repository.
type mockPolicyRepo struct {
	cancellationFunc func() (model.CancellationPolicy, error)
	returnFunc       func(sku string) (model.ReturnPolicy, error)
}

func (m *mockPolicyRepo) CancellationPolicy(ctx context.Context) (model.CancellationPolicy, error) {
	if m.cancellationFunc != nil {
		return m.cancellationFunc()
	}
	return model.CancellationPolicy{
		CancellableStatuses:  []string{"ORDER_PLACED", "PROCESSING"},
		RefundProcessingDays: 5,
	}, nil
}

func (m *mockPolicyRepo) ReturnPolicy(ctx context.Context, sku string) (model.ReturnPolicy, error) {
	if m.returnFunc != nil {
		return m.returnFunc(sku)
	}
	return model.ReturnPolicy{
		ReturnWindowDays:     10,
		RestockingFeePercent: 5,
		ReturnType:           "REFUND",
	}, nil
}

// Mock document repository.
type mockDocsRepo struct {
	searchFunc func(opt repository.SearchDocumentsOptions) ([]repository.DocumentResult, error)
}

func (m *mockDocsRepo) SearchDocuments(ctx context.Context, opt repository.SearchDocumentsOptions) ([]repository.DocumentResult, error) {
	if m.searchFunc != nil {
		return m.searchFunc(opt)
	}
	return []repository.DocumentResult{
		{DocID: "doc-1", Score: 0.91, Content: "Orders may be cancelled while processing."},
	}, nil
}
