// Package auth issues and verifies the signed tokens that gate blog
// mutations.
//
// Tokens are HS256 JWTs carrying the user's id and username. The signing
// secret is process-wide configuration injected by the caller; this package
// holds no state of its own.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned when a token parses but fails verification.
var ErrInvalidToken = errors.New("invalid token")

// Claims is the token payload. UserID is the canonical identity claim:
// issuance and verification both use `userId`, so a verified token always
// yields the id the token was minted for.
type Claims struct {
	jwt.RegisteredClaims
	UserID   string `json:"userId"`
	Username string `json:"username"`
}

// GenerateToken mints a signed token for the given user.
//
// No expiry claim is set; issued tokens stay valid until the signing secret
// rotates.
func GenerateToken(userID, username string, secretKey []byte) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
		UserID:   userID,
		Username: username,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ParseToken verifies the signature and decodes the claims.
//
// A malformed token, a wrong signing method, and a bad signature all come
// back as errors; callers collapse every failure into the same unauthorized
// response.
func ParseToken(tokenString string, secretKey []byte) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return secretKey, nil
	})
	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
