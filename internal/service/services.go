package service

import (
	"github.com/deppfellow/scribe/internal/repository"
	"github.com/deppfellow/scribe/internal/server"
)

// Services is the container for all business-logic services.
type Services struct {
	Auth  *AuthService
	Users *UserService
	Blogs *BlogService
}

// NewServices constructs the service container on top of the repositories.
func NewServices(s *server.Server, repos *repository.Repositories) (*Services, error) {
	authService := NewAuthService(s)

	return &Services{
		Auth:  authService,
		Users: NewUserService(repos.Users, authService),
		Blogs: NewBlogService(repos.Blogs),
	}, nil
}
