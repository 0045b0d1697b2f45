package commerce

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func newTestClient(srv *httptest.Server) (*Client, *[]time.Duration) {
	sleeps := &[]time.Duration{}
	return &Client{
		baseURL:    srv.URL,
		httpClient: srv.Client(),
		sleep:      func(d time.Duration) { *sleeps = append(*sleeps, d) },
	}, sleeps
}

func TestFetchOrder(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/oms/order/ORD1001" {
				t.Errorf("unexpected path %s", r.URL.Path)
			}
			w.Write([]byte(`{"order_id":"ORD1001","status":"PROCESSING","payment_status":"PAID"}`))
		}))
		defer srv.Close()

		c, _ := newTestClient(srv)
		order, err := c.FetchOrder(context.Background(), "ORD1001")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if order.Status != "PROCESSING" || order.PaymentStatus != "PAID" {
			t.Errorf("unexpected order: %+v", order)
		}
	})

	t.Run("Retries On 503 Then Succeeds", func(t *testing.T) {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if calls.Add(1) < 3 {
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}
			w.Write([]byte(`{"order_id":"ORD1001","status":"SHIPPED"}`))
		}))
		defer srv.Close()

		c, sleeps := newTestClient(srv)
		order, err := c.FetchOrder(context.Background(), "ORD1001")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if order.Status != "SHIPPED" {
			t.Errorf("status = %q, want SHIPPED", order.Status)
		}
		if calls.Load() != 3 {
			t.Errorf("calls = %d, want 3", calls.Load())
		}
		// Backoff doubles: 500ms then 1s.
		want := []time.Duration{RetryBackoff, 2 * RetryBackoff}
		if len(*sleeps) != len(want) {
			t.Fatalf("sleeps = %v, want %v", *sleeps, want)
		}
		for i, d := range want {
			if (*sleeps)[i] != d {
				t.Errorf("sleep %d = %v, want %v", i, (*sleeps)[i], d)
			}
		}
	})

	t.Run("Exhausted Retries Reports Service Unavailable", func(t *testing.T) {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		c, _ := newTestClient(srv)
		_, err := c.FetchOrder(context.Background(), "ORD1001")
		if !errors.Is(err, ErrServiceUnavailable) {
			t.Fatalf("expected ErrServiceUnavailable, got %v", err)
		}
		if calls.Load() != MaxRetries {
			t.Errorf("calls = %d, want %d", calls.Load(), MaxRetries)
		}
		var callErr *CallError
		if !errors.As(err, &callErr) {
			t.Fatal("expected CallError")
		}
		if callErr.URL != srv.URL+"/oms/order/ORD1001" {
			t.Errorf("URL = %q", callErr.URL)
		}
	})

	t.Run("Client Error Is Not Retried", func(t *testing.T) {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		c, _ := newTestClient(srv)
		_, err := c.FetchOrder(context.Background(), "ORD404")
		if err == nil {
			t.Fatal("expected error")
		}
		if errors.Is(err, ErrServiceUnavailable) {
			t.Error("404 must not be reported as service unavailable")
		}
		if calls.Load() != 1 {
			t.Errorf("calls = %d, want 1", calls.Load())
		}
	})
}

func TestCancelOrder(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost {
				t.Errorf("method = %s, want POST", r.Method)
			}
			if r.URL.Path != "/oms/order/ORD1001/cancel" {
				t.Errorf("unexpected path %s", r.URL.Path)
			}
			w.Write([]byte(`{"cancel_request_id":"CANCEL_REQ_ORD1001"}`))
		}))
		defer srv.Close()

		c, _ := newTestClient(srv)
		resp, err := c.CancelOrder(context.Background(), "ORD1001")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.CancelRequestID != "CANCEL_REQ_ORD1001" {
			t.Errorf("cancel ID = %q", resp.CancelRequestID)
		}
	})

	t.Run("Mutating Call Is Never Retried", func(t *testing.T) {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer srv.Close()

		c, _ := newTestClient(srv)
		_, err := c.CancelOrder(context.Background(), "ORD1001")
		if !errors.Is(err, ErrServiceUnavailable) {
			t.Fatalf("expected ErrServiceUnavailable, got %v", err)
		}
		if calls.Load() != 1 {
			t.Errorf("calls = %d, want 1", calls.Load())
		}
	})
}

func TestSearchCatalog(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("q"); got != "noise cancelling & more" {
			t.Errorf("q = %q", got)
		}
		w.Write([]byte(`{"results":[{"sku":"SKU123","name":"Noise Cancelling Headphones","price":2999}]}`))
	}))
	defer srv.Close()

	c, _ := newTestClient(srv)
	hits, err := c.SearchCatalog(context.Background(), "noise cancelling & more")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(hits) != 1 || hits[0].SKU != "SKU123" {
		t.Errorf("unexpected hits: %+v", hits)
	}
}
