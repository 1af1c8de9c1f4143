package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/purplefit/purplefit-v2/backend/internal/types"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService authenticates the single operator account and issues JWTs.
type AuthService struct {
	operatorEmail string
	operatorHash  string
	jwtSecret     string
}

func NewAuthService(operatorEmail, operatorHash, jwtSecret string) *AuthService {
	return &AuthService{
		operatorEmail: operatorEmail,
		operatorHash:  operatorHash,
		jwtSecret:     jwtSecret,
	}
}

// Login checks the operator credentials and returns a signed token.
func (s *AuthService) Login(email, password string) (string, error) {
	if !strings.EqualFold(email, s.operatorEmail) {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.operatorHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	claims := &types.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   s.operatorEmail,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
		},
		Email: s.operatorEmail,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ValidateToken parses and verifies a token string.
func (s *AuthService) ValidateToken(tokenString string) (*types.TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &types.TokenClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*types.TokenClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}
