package router

import (
	"net/http"

	"github.com/deppfellow/scribe/internal/handler"
	"github.com/deppfellow/scribe/internal/middleware"
	"github.com/labstack/echo/v4"
)

// registerAPIRoutes mounts the versioned JSON API.
//
// Auth gates the blog mutation routes only; reads (get by id, page feed)
// are public, as are signup and signin.
func registerAPIRoutes(e *echo.Echo, h *handler.Handlers, m *middleware.Middlewares) {
	api := e.Group("/api/v1")

	user := api.Group("/user")
	user.POST("/signup", handler.Handle(h.User.Handler, h.User.Signup, http.StatusCreated))
	user.POST("/signin", handler.Handle(h.User.Handler, h.User.Signin, http.StatusOK))

	blog := api.Group("/blog")
	blog.POST("", handler.Handle(h.Blog.Handler, h.Blog.Create, http.StatusOK), m.Auth.RequireAuth)
	blog.PUT("", handler.Handle(h.Blog.Handler, h.Blog.Update, http.StatusOK), m.Auth.RequireAuth)
	blog.DELETE("/:id", handler.Handle(h.Blog.Handler, h.Blog.Delete, http.StatusOK), m.Auth.RequireAuth)
	blog.GET("/page/:num", handler.Handle(h.Blog.Handler, h.Blog.List, http.StatusOK))
	blog.GET("/:id", handler.Handle(h.Blog.Handler, h.Blog.Get, http.StatusOK))
}
