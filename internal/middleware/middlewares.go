package middleware

import (
	"github.com/deppfellow/scribe/internal/server"
)

// Middlewares groups all middleware components used by the HTTP server so
// router setup receives one wired object instead of constructing pieces
// all over the place.
type Middlewares struct {
	// Global holds middleware applied to every route: CORS, request
	// logging, recovery, secure headers, and the global error handler.
	Global *GlobalMiddlewares

	// Auth verifies bearer tokens and attaches the caller identity.
	Auth *AuthMiddleware

	// ContextEnhancer installs the request-scoped logger.
	ContextEnhancer *ContextEnhancer
}

// NewMiddlewares constructs all middleware components from the application
// container.
func NewMiddlewares(s *server.Server) *Middlewares {
	return &Middlewares{
		Global:          NewGlobalMiddlewares(s),
		Auth:            NewAuthMiddleware(s),
		ContextEnhancer: NewContextEnhancer(s),
	}
}
