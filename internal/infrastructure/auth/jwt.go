package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"openfare/internal/application/auth/usecases"
	"openfare/internal/shared/authorization"
)

type Claims struct {
	UserID uint                   `json:"user_id"`
	Email  string                 `json:"email"`
	Role   authorization.UserRole `json:"role"`
	jwt.RegisteredClaims
}

// JWTService issues the single session token carried in the auth cookie.
type JWTService struct {
	secret  []byte
	expDays int
}

func NewJWTService(secret string, expDays int) *JWTService {
	return &JWTService{
		secret:  []byte(secret),
		expDays: expDays,
	}
}

func (s *JWTService) Generate(userID uint, email string, role authorization.UserRole) (string, int64, error) {
	now := time.Now().UTC()
	exp := now.Add(time.Duration(s.expDays) * 24 * time.Hour)

	claims := &Claims{
		UserID: userID,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", 0, fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, int64(exp.Sub(now).Seconds()), nil
}

func (s *JWTService) Validate(tokenString string) (*usecases.TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return &usecases.TokenClaims{
		UserID: claims.UserID,
		Email:  claims.Email,
		Role:   claims.Role,
	}, nil
}
