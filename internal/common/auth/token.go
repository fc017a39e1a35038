// Package auth issues and verifies the bearer tokens used by the HTTP API.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/safafin/go-loan-api/internal/config"
	"github.com/safafin/go-loan-api/internal/models"
)

var ErrInvalidToken = errors.New("invalid or expired token")

type Claims struct {
	CustomerID int64 `json:"customerId"`
	IsAdmin    bool  `json:"isAdmin"`
	jwt.RegisteredClaims
}

type TokenManager interface {
	Generate(customer models.Customer) (string, error)
	Parse(token string) (models.Principal, error)
}

type tokenManager struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenManager(cfg config.Auth) TokenManager {
	return &tokenManager{
		secret: []byte(cfg.JWTSecret),
		ttl:    cfg.TokenTTL,
	}
}

func (m *tokenManager) Generate(customer models.Customer) (string, error) {
	now := time.Now()

	claims := Claims{
		CustomerID: customer.ID,
		IsAdmin:    customer.IsAdmin(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprintf("%d", customer.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

func (m *tokenManager) Parse(tokenString string) (models.Principal, error) {
	var claims Claims

	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return models.Principal{}, ErrInvalidToken
	}

	return models.Principal{
		ID:      claims.CustomerID,
		IsAdmin: claims.IsAdmin,
	}, nil
}
