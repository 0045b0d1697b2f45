package scope

import "github.com/golang-jwt/jwt/v5"

// Claims is the signed payload carried by gateway tokens.
type Claims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}
