package router

import (
	"github.com/deppfellow/scribe/internal/handler"
	"github.com/labstack/echo/v4"
)

// registerSystemRoutes mounts endpoints that are not part of the business
// API, kept outside the /api/v1 prefix.
func registerSystemRoutes(e *echo.Echo, h *handler.Handlers) {
	// Health status endpoint (used by Kubernetes/monitors).
	e.GET("/status", h.Health.CheckHealth)
}
