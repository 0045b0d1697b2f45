package commerce

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Client is the HTTP wrapper for the Java commerce microservices
// (Catalog, OMS, Pricing, Inventory, Shipping).
//
// GET calls are retried with backoff on 500/502/503/504 and transport
// failures; mutating calls are attempted once.
type Client struct {
	baseURL    string
	httpClient *http.Client
	sleep      func(time.Duration) // test seam
}

// NewClient creates a new commerce backend client.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{},
		sleep:      time.Sleep,
	}
}

// doGet performs an idempotent GET with bounded retries and decodes the
// JSON response into out.
func (c *Client) doGet(ctx context.Context, callURL string, out any) error {
	var lastErr error

	for attempt := 0; attempt < MaxRetries; attempt++ {
		if attempt > 0 {
			c.sleep(RetryBackoff << (attempt - 1))
		}

		reqCtx, cancel := context.WithTimeout(ctx, GetTimeout)
		err := c.once(reqCtx, http.MethodGet, callURL, nil, out)
		cancel()
		if err == nil {
			return nil
		}

		lastErr = err
		if !retryable(err) {
			return &CallError{URL: callURL, Err: err}
		}
	}

	return &CallError{URL: callURL, Err: fmt.Errorf("%w: %v", ErrServiceUnavailable, lastErr)}
}

// doPost performs a single non-retried POST and decodes the JSON response.
func (c *Client) doPost(ctx context.Context, callURL string, payload, out any) error {
	reqCtx, cancel := context.WithTimeout(ctx, PostTimeout)
	defer cancel()

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to marshal payload: %w", err)
		}
		body = bytes.NewBuffer(raw)
	}

	if err := c.once(reqCtx, http.MethodPost, callURL, body, out); err != nil {
		if retryable(err) {
			return &CallError{URL: callURL, Err: fmt.Errorf("%w: %v", ErrServiceUnavailable, err)}
		}
		return &CallError{URL: callURL, Err: err}
	}
	return nil
}

// once executes a single HTTP round trip.
func (c *Client) once(ctx context.Context, method, callURL string, body io.Reader, out any) error {
	httpReq, err := http.NewRequestWithContext(ctx, method, callURL, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return &transportError{err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		statusErr := fmt.Errorf("commerce API error %d: %s", resp.StatusCode, string(raw))
		if retryableStatus(resp.StatusCode) {
			return &transportError{err: statusErr}
		}
		return statusErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// transportError marks failures worth retrying.
type transportError struct {
	err error
}

func (e *transportError) Error() string { return e.err.Error() }
func (e *transportError) Unwrap() error { return e.err }

func retryable(err error) bool {
	_, ok := err.(*transportError)
	return ok
}

// --- Order Management Service (OMS) ---

// FetchOrder fetches an order by ID.
func (c *Client) FetchOrder(ctx context.Context, orderID string) (Order, error) {
	var order Order
	err := c.doGet(ctx, fmt.Sprintf("%s/oms/order/%s", c.baseURL, orderID), &order)
	return order, err
}

// FetchOrderItems fetches the line items of an order.
func (c *Client) FetchOrderItems(ctx context.Context, orderID string) ([]OrderItem, error) {
	var items []OrderItem
	err := c.doGet(ctx, fmt.Sprintf("%s/oms/order/%s/items", c.baseURL, orderID), &items)
	return items, err
}

// CancelOrder submits a cancel request to the OMS.
func (c *Client) CancelOrder(ctx context.Context, orderID string) (CancelResponse, error) {
	var resp CancelResponse
	err := c.doPost(ctx, fmt.Sprintf("%s/oms/order/%s/cancel", c.baseURL, orderID), nil, &resp)
	return resp, err
}

// --- Catalog Service ---

// SearchCatalog runs a catalog text search.
func (c *Client) SearchCatalog(ctx context.Context, query string) ([]SearchHit, error) {
	var resp SearchResponse
	callURL := fmt.Sprintf("%s/catalog/search?q=%s", c.baseURL, url.QueryEscape(query))
	if err := c.doGet(ctx, callURL, &resp); err != nil {
		return nil, err
	}
	return resp.Results, nil
}

// FetchProduct fetches detailed product data for a SKU.
func (c *Client) FetchProduct(ctx context.Context, sku string) (Product, error) {
	var product Product
	err := c.doGet(ctx, fmt.Sprintf("%s/catalog/product/%s", c.baseURL, sku), &product)
	return product, err
}

// --- Inventory Service ---

// FetchInventory fetches the stock status for a SKU.
func (c *Client) FetchInventory(ctx context.Context, sku string) (Inventory, error) {
	var inv Inventory
	err := c.doGet(ctx, fmt.Sprintf("%s/inventory/%s", c.baseURL, sku), &inv)
	return inv, err
}

// --- Pricing Service ---

// FetchContractPrice fetches B2B contract pricing for a customer and SKU.
func (c *Client) FetchContractPrice(ctx context.Context, customerID, sku string) (ContractPrice, error) {
	var price ContractPrice
	err := c.doGet(ctx, fmt.Sprintf("%s/pricing/contract/%s/%s", c.baseURL, customerID, sku), &price)
	return price, err
}

// FetchBulkPrice fetches tiered/bulk pricing for a SKU and quantity.
func (c *Client) FetchBulkPrice(ctx context.Context, sku string, quantity int) (BulkPrice, error) {
	var price BulkPrice
	err := c.doGet(ctx, fmt.Sprintf("%s/pricing/bulk?sku=%s&qty=%d", c.baseURL, url.QueryEscape(sku), quantity), &price)
	return price, err
}

// --- Shipping Service ---

// FetchShippingETA fetches the delivery estimate for a tracking number.
func (c *Client) FetchShippingETA(ctx context.Context, trackingNo string) (ShippingETA, error) {
	var eta ShippingETA
	err := c.doGet(ctx, fmt.Sprintf("%s/shipping/eta/%s", c.baseURL, trackingNo), &eta)
	return eta, err
}
