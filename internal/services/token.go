package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	tokenIssuer = "portfolio-backend"
	// TokenLifetime is how long an issued login token stays valid.
	// No refresh mechanism: an expired token requires a fresh login.
	TokenLifetime = 24 * time.Hour
)

var jwtSecret []byte

// InitAuth sets the process-wide token signing secret. Called once from
// main with the configured JWT_SECRET.
func InitAuth(secret string) {
	jwtSecret = []byte(secret)
}

type tokenClaims struct {
	jwt.RegisteredClaims
}

// GenerateToken mints a signed HS256 token whose subject is the admin's
// ObjectID hex.
func GenerateToken(adminID string) (string, error) {
	return GenerateTokenWithDuration(adminID, TokenLifetime)
}

// GenerateTokenWithDuration mints a token with a custom lifetime.
// Used by tests to produce already-expired tokens.
func GenerateTokenWithDuration(adminID string, d time.Duration) (string, error) {
	now := time.Now()
	claims := tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   adminID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(d)),
			Issuer:    tokenIssuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(jwtSecret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return signed, nil
}

// VerifyToken checks signature, expiry and issuer, and returns the
// admin ID carried in the subject claim. Any failure means the request
// must be treated as unauthenticated.
func VerifyToken(tokenStr string) (string, error) {
	token, err := jwt.ParseWithClaims(
		tokenStr,
		&tokenClaims{},
		func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return jwtSecret, nil
		},
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", errors.New("token expired")
		}
		return "", fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*tokenClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		return "", errors.New("invalid token claims")
	}
	return claims.Subject, nil
}
