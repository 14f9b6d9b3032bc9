// Package router initializes the HTTP router (echo).
//
// It installs the global middleware stack and the error handler, and maps
// paths to their handlers.
package router

import (
	"github.com/deppfellow/scribe/internal/handler"
	"github.com/deppfellow/scribe/internal/middleware"
	"github.com/labstack/echo/v4"
)

// New builds the echo instance with the full middleware stack and all
// routes registered.
//
// Middleware order matters: RequestID runs first so the context enhancer
// can pick up the correlation ID; the request logger runs after both so
// every log line carries it.
func New(h *handler.Handlers, m *middleware.Middlewares) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.HTTPErrorHandler = m.Global.GlobalErrorHandler

	e.Use(m.Global.Recover())
	e.Use(middleware.RequestID())
	e.Use(m.ContextEnhancer.EnhanceContext())
	e.Use(m.Global.RequestLogger())
	e.Use(m.Global.CORS())
	e.Use(m.Global.Secure())

	registerSystemRoutes(e, h)
	registerAPIRoutes(e, h, m)

	return e
}
