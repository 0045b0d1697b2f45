package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"commerce-assistant/internal/auth"
	"commerce-assistant/internal/model"
	"commerce-assistant/pkg/scope"
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

var (
	testAPIKeys = map[string]string{
		"internal-ai-service": "AI_INTERNAL_KEY_12345",
		"csr-portal":          "CSR_KEY_67890",
		"mobile-app":          "MOBILE_KEY_24680",
	}
	testRoleMap = map[string][]string{
		"internal-ai-service": {"AI_AGENT"},
		"csr-portal":          {"CSR", "ADMIN"},
		"mobile-app":          {"CUSTOMER"},
	}
)

func newAuthenticator() auth.Authenticator {
	return auth.New(&mockLogger{}, scope.New("test-secret"), testAPIKeys, testRoleMap)
}

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()

	t.Run("Missing Credentials", func(t *testing.T) {
		a := newAuthenticator()
		_, err := a.Authenticate(ctx, "", "")
		if !errors.Is(err, auth.ErrUnauthorized) {
			t.Errorf("expected ErrUnauthorized, got %v", err)
		}
	})

	t.Run("Valid API Key", func(t *testing.T) {
		a := newAuthenticator()
		identity, err := a.Authenticate(ctx, "CSR_KEY_67890", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if identity.AuthType != model.AuthTypeAPIKey {
			t.Errorf("auth type = %s, want api_key", identity.AuthType)
		}
		if identity.Client != "csr-portal" {
			t.Errorf("client = %q, want csr-portal", identity.Client)
		}
	})

	t.Run("Invalid API Key", func(t *testing.T) {
		a := newAuthenticator()
		_, err := a.Authenticate(ctx, "WRONG_KEY", "")
		if !errors.Is(err, auth.ErrUnauthorized) {
			t.Errorf("expected ErrUnauthorized, got %v", err)
		}
	})

	t.Run("Valid Bearer Token", func(t *testing.T) {
		manager := scope.New("test-secret")
		token, err := manager.Generate("U1001", "CUSTOMER", time.Hour)
		if err != nil {
			t.Fatalf("generate token: %v", err)
		}

		a := auth.New(&mockLogger{}, manager, testAPIKeys, testRoleMap)
		identity, err := a.Authenticate(ctx, "", "Bearer "+token)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if identity.AuthType != model.AuthTypeToken {
			t.Errorf("auth type = %s, want token", identity.AuthType)
		}
		if identity.UserID != "U1001" || identity.Role != "CUSTOMER" {
			t.Errorf("unexpected identity: %+v", identity)
		}
	})

	t.Run("Expired Token", func(t *testing.T) {
		manager := scope.New("test-secret")
		token, err := manager.Generate("U1001", "CUSTOMER", -time.Minute)
		if err != nil {
			t.Fatalf("generate token: %v", err)
		}

		a := auth.New(&mockLogger{}, manager, testAPIKeys, testRoleMap)
		_, err = a.Authenticate(ctx, "", "Bearer "+token)
		if !errors.Is(err, auth.ErrUnauthorized) {
			t.Errorf("expected ErrUnauthorized for expired token, got %v", err)
		}
	})

	t.Run("Tampered Token", func(t *testing.T) {
		other := scope.New("other-secret")
		token, err := other.Generate("U1001", "ADMIN", time.Hour)
		if err != nil {
			t.Fatalf("generate token: %v", err)
		}

		a := newAuthenticator()
		_, err = a.Authenticate(ctx, "", "Bearer "+token)
		if !errors.Is(err, auth.ErrUnauthorized) {
			t.Errorf("expected ErrUnauthorized for foreign signature, got %v", err)
		}
	})

	t.Run("API Key Wins Over Token", func(t *testing.T) {
		a := newAuthenticator()
		identity, err := a.Authenticate(ctx, "MOBILE_KEY_24680", "Bearer junk")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if identity.Client != "mobile-app" {
			t.Errorf("client = %q, want mobile-app", identity.Client)
		}
	})
}

func TestAuthorize(t *testing.T) {
	ctx := context.Background()

	t.Run("API Key Client With Allowed Role", func(t *testing.T) {
		a := newAuthenticator()
		identity := model.Identity{AuthType: model.AuthTypeAPIKey, Client: "csr-portal"}
		if err := a.Authorize(ctx, identity, "CSR"); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("API Key Client Without Role", func(t *testing.T) {
		a := newAuthenticator()
		identity := model.Identity{AuthType: model.AuthTypeAPIKey, Client: "mobile-app"}
		err := a.Authorize(ctx, identity, "ADMIN")
		if !errors.Is(err, auth.ErrForbidden) {
			t.Errorf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("Token Role Match", func(t *testing.T) {
		a := newAuthenticator()
		identity := model.Identity{AuthType: model.AuthTypeToken, Role: "CUSTOMER"}
		if err := a.Authorize(ctx, identity, "CUSTOMER"); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("No Required Role Passes", func(t *testing.T) {
		a := newAuthenticator()
		if err := a.Authorize(ctx, model.Identity{}, ""); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})
}
