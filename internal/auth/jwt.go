// Package auth implements token based authentication for the API.
//
// Tokens are signed JWTs carrying the user ID as subject. The signing
// secret comes from the JWT_SECRET environment variable; a development
// fallback is used when it is unset.
package auth

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// TokenExpiry is how long an issued token is valid.
const TokenExpiry = 24 * time.Hour

var (
	ErrNoToken      = errors.New("this endpoint requires authentication, set the Authorization header to 'Bearer <token>'")
	ErrTokenInvalid = errors.New("the authentication token is invalid or expired")
)

// secret returns the JWT signing secret.
func secret() []byte {
	s, ok := os.LookupEnv("JWT_SECRET")
	if !ok {
		log.Warn().Msg("JWT_SECRET is not set, using an insecure development secret")
		return []byte("tex-dashboard-insecure-dev-secret")
	}

	return []byte(s)
}

// NewToken issues a signed token for the user.
func NewToken(userID uuid.UUID, now time.Time) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(TokenExpiry)),
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret())
}

// ParseToken validates a token and returns the user ID it was issued for.
func ParseToken(token string) (uuid.UUID, error) {
	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}

		return secret(), nil
	})
	if err != nil || !parsed.Valid {
		return uuid.Nil, ErrTokenInvalid
	}

	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok {
		return uuid.Nil, ErrTokenInvalid
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, ErrTokenInvalid
	}

	return userID, nil
}
