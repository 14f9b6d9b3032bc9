package handler

import (
	"strconv"

	"github.com/deppfellow/scribe/internal/errs"
	"github.com/deppfellow/scribe/internal/middleware"
	"github.com/deppfellow/scribe/internal/models"
	"github.com/deppfellow/scribe/internal/server"
	"github.com/deppfellow/scribe/internal/service"
	"github.com/deppfellow/scribe/internal/validation"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// BlogHandler serves blog CRUD and the paginated feed.
type BlogHandler struct {
	Handler
	blogs *service.BlogService
}

// NewBlogHandler constructs a BlogHandler.
func NewBlogHandler(s *server.Server, blogs *service.BlogService) *BlogHandler {
	return &BlogHandler{
		Handler: NewHandler(s),
		blogs:   blogs,
	}
}

// CreateBlogRequest is the create payload. There is no authorId field on
// purpose: the author is always the authenticated caller.
type CreateBlogRequest struct {
	Title     string `json:"title" validate:"required"`
	Content   string `json:"content" validate:"required"`
	Published bool   `json:"published"`
}

func (r *CreateBlogRequest) Validate() error {
	return validation.Struct(r)
}

// UpdateBlogRequest carries the target id plus the mutable fields. Pointer
// fields distinguish "not supplied" from zero values; only supplied fields
// change.
type UpdateBlogRequest struct {
	ID        string  `json:"id" validate:"required,uuid"`
	Title     *string `json:"title"`
	Content   *string `json:"content"`
	Published *bool   `json:"published"`
}

func (r *UpdateBlogRequest) Validate() error {
	return validation.Struct(r)
}

// BlogIDRequest binds the blog id path parameter (get and delete).
type BlogIDRequest struct {
	ID string `param:"id" validate:"required,uuid"`
}

func (r *BlogIDRequest) Validate() error {
	return validation.Struct(r)
}

// ListBlogsRequest binds the page number from the path and the page size
// from the request body. Both are lenient: anything unparseable falls back
// to the defaults.
type ListBlogsRequest struct {
	Num   string `param:"num"`
	Limit int    `json:"limit"`
}

func (r *ListBlogsRequest) Validate() error {
	return nil
}

// page parses the path parameter, defaulting to the first page on invalid
// input.
func (r *ListBlogsRequest) page() int {
	page, err := strconv.Atoi(r.Num)
	if err != nil || page < 1 {
		return service.DefaultPage
	}
	return page
}

// BlogTitleResponse is the {id, title} shape returned by create, update,
// and delete.
type BlogTitleResponse struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// Create persists a blog authored by the caller identified in the verified
// token claims.
func (h *BlogHandler) Create(c echo.Context, req *CreateBlogRequest) (*BlogTitleResponse, error) {
	authorID := middleware.GetUserID(c)
	if authorID == "" {
		return nil, errs.NewUnauthorizedError("Unauthorized", false)
	}

	blog, err := h.blogs.Create(c.Request().Context(), authorID, req.Title, req.Content, req.Published)
	if err != nil {
		return nil, err
	}

	return &BlogTitleResponse{ID: blog.ID, Title: blog.Title}, nil
}

// Update changes the supplied fields of an existing blog.
func (h *BlogHandler) Update(c echo.Context, req *UpdateBlogRequest) (*BlogTitleResponse, error) {
	blog, err := h.blogs.Update(c.Request().Context(), req.ID, req.Title, req.Content, req.Published)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return nil, errs.NewNotFoundError("Blog not found", false, nil)
		}
		return nil, err
	}

	return &BlogTitleResponse{ID: blog.ID, Title: blog.Title}, nil
}

// Delete removes a blog and echoes back its id and title.
func (h *BlogHandler) Delete(c echo.Context, req *BlogIDRequest) (*BlogTitleResponse, error) {
	blog, err := h.blogs.Delete(c.Request().Context(), req.ID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return nil, errs.NewNotFoundError("Blog not found", false, nil)
		}
		return nil, err
	}

	return &BlogTitleResponse{ID: blog.ID, Title: blog.Title}, nil
}

// Get fetches a blog by id.
//
// An absent row returns 200 with a null body rather than 404. Existing
// clients depend on that shape, so it is kept as-is.
func (h *BlogHandler) Get(c echo.Context, req *BlogIDRequest) (*models.Blog, error) {
	blog, err := h.blogs.Get(c.Request().Context(), req.ID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return blog, nil
}

// List returns one page of blogs. An empty page is a 404, not an empty
// array; that is the documented contract.
func (h *BlogHandler) List(c echo.Context, req *ListBlogsRequest) ([]models.BlogSummary, error) {
	blogs, err := h.blogs.ListPage(c.Request().Context(), req.page(), req.Limit)
	if err != nil {
		return nil, err
	}

	if len(blogs) == 0 {
		return nil, errs.NewNotFoundError("No blogs found on this page", false, nil)
	}

	return blogs, nil
}
