package repository

import (
	"github.com/deppfellow/scribe/internal/server"
)

// Repositories is the container for all repository instances. Services
// receive it at construction so the dependency graph stays explicit.
type Repositories struct {
	Users *UsersRepository
	Blogs *BlogsRepository
}

// NewRepositories constructs the repository container on top of the shared
// connection pool.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Users: NewUsersRepository(s.DB.Pool),
		Blogs: NewBlogsRepository(s.DB.Pool),
	}
}
