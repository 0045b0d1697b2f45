package commerce

import (
	"context"

	"commerce-assistant/internal/model"
)

// GetOrder fetches an order; when the order endpoint omits line items the
// dedicated items endpoint is consulted.
func (r *implRepository) GetOrder(ctx context.Context, orderID string) (model.Order, error) {
	raw, err := r.client.FetchOrder(ctx, orderID)
	if err != nil {
		return model.Order{}, err
	}

	order := model.Order{
		OrderID:        raw.OrderID,
		Status:         raw.Status,
		OrderDate:      raw.OrderDate,
		DeliveryDate:   raw.DeliveryDate,
		PaymentStatus:  raw.PaymentStatus,
		TrackingNumber: raw.TrackingNumber,
	}
	items := raw.Items
	if len(items) == 0 {
		items, err = r.client.FetchOrderItems(ctx, orderID)
		if err != nil {
			r.l.Warnf(ctx, "GetOrder: items lookup failed for %s: %v", orderID, err)
			items = nil
		}
	}
	for _, item := range items {
		order.Items = append(order.Items, model.OrderItem{
			SKU:        item.SKU,
			Price:      item.Price,
			Quantity:   item.Quantity,
			Returnable: item.Returnable,
		})
	}

	return order, nil
}

// CancelOrder submits the cancel request and returns the confirmation ID.
func (r *implRepository) CancelOrder(ctx context.Context, orderID string) (string, error) {
	resp, err := r.client.CancelOrder(ctx, orderID)
	if err != nil {
		return "", err
	}
	return resp.CancelRequestID, nil
}

// GetShippingETA fetches the delivery estimate for a tracking number.
func (r *implRepository) GetShippingETA(ctx context.Context, trackingNo string) (model.ShippingETA, error) {
	raw, err := r.client.FetchShippingETA(ctx, trackingNo)
	if err != nil {
		return model.ShippingETA{}, err
	}
	return model.ShippingETA{Carrier: raw.Carrier, ETA: raw.ETA}, nil
}

// SearchCatalog runs a catalog search and maps the hits.
func (r *implRepository) SearchCatalog(ctx context.Context, query string) ([]model.Product, error) {
	hits, err := r.client.SearchCatalog(ctx, query)
	if err != nil {
		return nil, err
	}

	products := make([]model.Product, len(hits))
	for i, hit := range hits {
		products[i] = model.Product{
			SKU:      hit.SKU,
			Name:     hit.Name,
			Price:    hit.Price,
			Category: hit.Category,
			Features: hit.Features,
		}
	}
	return products, nil
}

// GetProduct fetches the detail record for a SKU.
func (r *implRepository) GetProduct(ctx context.Context, sku string) (model.Product, error) {
	raw, err := r.client.FetchProduct(ctx, sku)
	if err != nil {
		return model.Product{}, err
	}
	return model.Product{
		SKU:                 raw.SKU,
		Price:               raw.Price,
		Description:         raw.Description,
		Availability:        raw.Availability,
		Rating:              raw.Rating,
		B2BPricingAvailable: raw.B2BPricingAvailable,
	}, nil
}

// GetInventory fetches the stock status for a SKU.
func (r *implRepository) GetInventory(ctx context.Context, sku string) (string, error) {
	inv, err := r.client.FetchInventory(ctx, sku)
	if err != nil {
		return "", err
	}
	return inv.Status, nil
}

// GetContractPrice fetches B2B contract pricing.
func (r *implRepository) GetContractPrice(ctx context.Context, customerID, sku string) (model.ContractPrice, error) {
	raw, err := r.client.FetchContractPrice(ctx, customerID, sku)
	if err != nil {
		return model.ContractPrice{}, err
	}
	return model.ContractPrice{
		ContractPrice:   raw.ContractPrice,
		MinOrderQty:     raw.MinOrderQty,
		DiscountPercent: raw.DiscountPercent,
	}, nil
}

// GetBulkPrice fetches the bulk unit price for a SKU and quantity.
func (r *implRepository) GetBulkPrice(ctx context.Context, sku string, quantity int) (float64, error) {
	raw, err := r.client.FetchBulkPrice(ctx, sku, quantity)
	if err != nil {
		return 0, err
	}
	return raw.UnitPrice, nil
}
