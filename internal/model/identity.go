package model

// AuthType distinguishes how a caller authenticated.
type AuthType string

const (
	AuthTypeAPIKey AuthType = "api_key"
	AuthTypeToken  AuthType = "token"
)

// Identity is the authenticated caller produced by the auth gate.
// Client is set on the API-key path; UserID/Role on the token path.
type Identity struct {
	AuthType AuthType `json:"auth_type"`
	Client   string   `json:"client,omitempty"`
	UserID   string   `json:"user_id,omitempty"`
	Role     string   `json:"role,omitempty"`
}
