package service

import (
	"github.com/deppfellow/scribe/internal/auth"
	"github.com/deppfellow/scribe/internal/server"
)

// AuthService issues and verifies the tokens bound to user identities.
// It owns the signing secret, injected from config at construction; nothing
// else in the service layer sees the key material.
type AuthService struct {
	secretKey []byte
}

// NewAuthService constructs an AuthService from the app container.
func NewAuthService(s *server.Server) *AuthService {
	return &AuthService{
		secretKey: []byte(s.Config.Auth.SecretKey),
	}
}

// IssueToken mints a signed token embedding the user's id and username.
func (s *AuthService) IssueToken(userID, username string) (string, error) {
	return auth.GenerateToken(userID, username, s.secretKey)
}

// VerifyToken validates a token's signature and returns its claims.
func (s *AuthService) VerifyToken(tokenString string) (*auth.Claims, error) {
	return auth.ParseToken(tokenString, s.secretKey)
}
