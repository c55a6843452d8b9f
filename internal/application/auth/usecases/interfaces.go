package usecases

import (
	"openfare/internal/shared/authorization"
)

// TokenClaims is the identity carried by a session token.
type TokenClaims struct {
	UserID uint
	Email  string
	Role   authorization.UserRole
}

// TokenService issues and validates session tokens.
type TokenService interface {
	Generate(userID uint, email string, role authorization.UserRole) (token string, expiresIn int64, err error)
	Validate(token string) (*TokenClaims, error)
}
