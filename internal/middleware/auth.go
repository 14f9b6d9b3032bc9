package middleware

import (
	"strings"

	"github.com/deppfellow/scribe/internal/auth"
	"github.com/deppfellow/scribe/internal/errs"
	"github.com/deppfellow/scribe/internal/server"
	"github.com/labstack/echo/v4"
)

// AuthMiddleware verifies bearer tokens on routes that mutate blogs.
type AuthMiddleware struct {
	server *server.Server
}

// NewAuthMiddleware constructs an AuthMiddleware.
func NewAuthMiddleware(s *server.Server) *AuthMiddleware {
	return &AuthMiddleware{
		server: s,
	}
}

// RequireAuth enforces token authentication.
//
// Behavior:
//  1. Read the Authorization header (net/http header lookup is already
//     case-insensitive). An optional "Bearer " prefix is stripped.
//  2. Verify the HS256 signature and decode the claims.
//  3. On success, store user_id and username in echo context for handlers.
//  4. On any failure — missing header, malformed token, bad signature —
//     short-circuit with the same generic 401. The downstream handler is
//     never invoked.
func (m *AuthMiddleware) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString := extractBearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
		if tokenString == "" {
			return errs.NewUnauthorizedError("Unauthorized", false)
		}

		claims, err := auth.ParseToken(tokenString, []byte(m.server.Config.Auth.SecretKey))
		if err != nil {
			m.server.Logger.Warn().
				Err(err).
				Str("request_id", GetRequestID(c)).
				Msg("token verification failed")

			return errs.NewUnauthorizedError("Unauthorized", false)
		}

		c.Set(UserIDKey, claims.UserID)
		c.Set(UsernameKey, claims.Username)

		return next(c)
	}
}

// extractBearerToken strips an optional "Bearer " scheme prefix
// (case-insensitive) and surrounding whitespace from the header value.
func extractBearerToken(header string) string {
	header = strings.TrimSpace(header)
	if header == "" {
		return ""
	}

	const prefix = "bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return strings.TrimSpace(header[len(prefix):])
	}

	// Some clients send the raw token without a scheme; accept that form
	// too.
	return header
}
