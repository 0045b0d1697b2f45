package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"commerce-assistant/internal/auth"
	"commerce-assistant/internal/middleware"
	"commerce-assistant/internal/model"
)

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

type mockAuthenticator struct {
	authenticateFunc func(apiKey, bearer string) (model.Identity, error)
	authorizeFunc    func(identity model.Identity, requiredRole string) error
}

func (m *mockAuthenticator) Authenticate(ctx context.Context, apiKey, bearer string) (model.Identity, error) {
	return m.authenticateFunc(apiKey, bearer)
}

func (m *mockAuthenticator) Authorize(ctx context.Context, identity model.Identity, requiredRole string) error {
	if m.authorizeFunc != nil {
		return m.authorizeFunc(identity, requiredRole)
	}
	return nil
}

func newRouter(mw middleware.Middleware, handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	chain := append(handlers, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	r.GET("/protected", chain...)
	return r
}

func TestAuth(t *testing.T) {
	t.Run("Valid API Key Passes", func(t *testing.T) {
		authenticator := &mockAuthenticator{
			authenticateFunc: func(apiKey, bearer string) (model.Identity, error) {
				if apiKey != "AI_INTERNAL_KEY_12345" {
					t.Errorf("apiKey = %q", apiKey)
				}
				return model.Identity{Client: "internal-ai-service", AuthType: "api_key"}, nil
			},
		}
		mw := middleware.New(&mockLogger{}, authenticator, 60)
		r := newRouter(mw, mw.Auth())

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("X-API-Key", "AI_INTERNAL_KEY_12345")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("status = %d, want 200", w.Code)
		}
	})

	t.Run("Rejected Credentials Return 401", func(t *testing.T) {
		authenticator := &mockAuthenticator{
			authenticateFunc: func(apiKey, bearer string) (model.Identity, error) {
				return model.Identity{}, auth.ErrUnauthorized
			},
		}
		mw := middleware.New(&mockLogger{}, authenticator, 60)
		r := newRouter(mw, mw.Auth())

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))

		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", w.Code)
		}
	})
}

func TestRequireRole(t *testing.T) {
	t.Run("Forbidden Role Returns 403", func(t *testing.T) {
		authenticator := &mockAuthenticator{
			authenticateFunc: func(apiKey, bearer string) (model.Identity, error) {
				return model.Identity{Client: "mobile-app", AuthType: "api_key"}, nil
			},
			authorizeFunc: func(identity model.Identity, requiredRole string) error {
				return auth.ErrForbidden
			},
		}
		mw := middleware.New(&mockLogger{}, authenticator, 60)
		r := newRouter(mw, mw.Auth(), mw.RequireRole("ADMIN"))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("X-API-Key", "MOBILE_KEY_24680")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Errorf("status = %d, want 403", w.Code)
		}
	})

	t.Run("Without Auth Returns 401", func(t *testing.T) {
		mw := middleware.New(&mockLogger{}, &mockAuthenticator{}, 60)
		r := newRouter(mw, mw.RequireRole("ADMIN"))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))

		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", w.Code)
		}
	})
}

func TestRateLimit(t *testing.T) {
	authenticator := &mockAuthenticator{
		authenticateFunc: func(apiKey, bearer string) (model.Identity, error) {
			return model.Identity{Client: "csr-portal", AuthType: "api_key"}, nil
		},
	}
	// 10 req/min gives a burst of 1, so the second immediate request trips.
	mw := middleware.New(&mockLogger{}, authenticator, 10)
	r := newRouter(mw, mw.Auth(), mw.RateLimit())

	send := func() int {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("X-API-Key", "CSR_KEY_67890")
		r.ServeHTTP(w, req)
		return w.Code
	}

	if code := send(); code != http.StatusOK {
		t.Fatalf("first request status = %d, want 200", code)
	}
	if code := send(); code != http.StatusTooManyRequests {
		t.Errorf("second request status = %d, want 429", code)
	}
}
