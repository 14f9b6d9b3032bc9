package service

import (
	"context"
	"errors"

	"github.com/deppfellow/scribe/internal/models"
	"github.com/deppfellow/scribe/internal/repository"
)

const (
	// DefaultPage is used when the page number is missing or invalid.
	DefaultPage = 1

	// DefaultPageLimit is used when the requested limit is missing or invalid.
	DefaultPageLimit = 10
)

// BlogStore is the persistence surface BlogService needs.
type BlogStore interface {
	Create(ctx context.Context, blog *models.Blog) error
	GetByID(ctx context.Context, id string) (*models.Blog, error)
	Update(ctx context.Context, id string, title, content *string, published *bool) (*models.Blog, error)
	Delete(ctx context.Context, id string) (*models.Blog, error)
	ListPage(ctx context.Context, offset, limit int) ([]models.BlogSummary, error)
}

// BlogService handles blog CRUD and pagination.
type BlogService struct {
	blogs BlogStore
}

// NewBlogService constructs a BlogService.
func NewBlogService(blogs BlogStore) *BlogService {
	return &BlogService{blogs: blogs}
}

// Create persists a blog for the authenticated caller. authorID always
// comes from the verified token claims, never from the request body.
func (s *BlogService) Create(ctx context.Context, authorID, title, content string, published bool) (*models.Blog, error) {
	blog := &models.Blog{
		Title:     title,
		Content:   content,
		Published: published,
		AuthorID:  authorID,
	}

	if err := s.blogs.Create(ctx, blog); err != nil {
		return nil, err
	}

	return blog, nil
}

// Get fetches a blog by id. Absent rows map to ErrNotFound.
func (s *BlogService) Get(ctx context.Context, id string) (*models.Blog, error) {
	blog, err := s.blogs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return blog, nil
}

// Update changes the supplied fields of a blog. Any caller holding a valid
// token may update any blog; there is no ownership check.
func (s *BlogService) Update(ctx context.Context, id string, title, content *string, published *bool) (*models.Blog, error) {
	blog, err := s.blogs.Update(ctx, id, title, content, published)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return blog, nil
}

// Delete removes a blog by id and returns the deleted row's id and title.
func (s *BlogService) Delete(ctx context.Context, id string) (*models.Blog, error) {
	blog, err := s.blogs.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return blog, nil
}

// ListPage returns one page of blogs in insertion order.
//
// Invalid page numbers fall back to the first page and invalid limits to
// DefaultPageLimit, mirroring the lenient inputs the API accepts. The
// offset is (page-1)*limit.
func (s *BlogService) ListPage(ctx context.Context, page, limit int) ([]models.BlogSummary, error) {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultPageLimit
	}

	return s.blogs.ListPage(ctx, (page-1)*limit, limit)
}
