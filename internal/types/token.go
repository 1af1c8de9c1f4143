package types

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims represents the claims in an operator session token. The core
// never consumes identity fields beyond "a valid operator exists"; Email is
// carried for display only.
type TokenClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}
