package handler

import (
	"github.com/deppfellow/scribe/internal/server"
	"github.com/deppfellow/scribe/internal/service"
)

// Handlers groups all HTTP handlers so router setup passes one wired
// object around instead of many.
type Handlers struct {
	Health *HealthHandler
	User   *UserHandler
	Blog   *BlogHandler
}

// NewHandlers constructs the handler container.
func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health: NewHealthHandler(s),
		User:   NewUserHandler(s, services.Users),
		Blog:   NewBlogHandler(s, services.Blogs),
	}
}
