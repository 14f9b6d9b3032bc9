package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/deppfellow/scribe/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BlogsRepository persists blog posts.
type BlogsRepository struct {
	pool *pgxpool.Pool
}

// NewBlogsRepository constructs a BlogsRepository.
func NewBlogsRepository(pool *pgxpool.Pool) *BlogsRepository {
	return &BlogsRepository{pool: pool}
}

// Create inserts a blog and fills in the generated id and creation time.
// A missing author surfaces as a foreign-key violation for sqlerr to map.
func (r *BlogsRepository) Create(ctx context.Context, blog *models.Blog) error {
	query := `
		INSERT INTO blogs (title, content, published, author_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`

	err := r.pool.QueryRow(ctx, query,
		blog.Title, blog.Content, blog.Published, blog.AuthorID,
	).Scan(&blog.ID, &blog.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserting blog: %w", err)
	}

	return nil
}

// GetByID fetches a single blog by primary key.
func (r *BlogsRepository) GetByID(ctx context.Context, id string) (*models.Blog, error) {
	query := `
		SELECT id, title, content, published, author_id, created_at
		FROM blogs
		WHERE id = $1`

	blog := &models.Blog{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&blog.ID, &blog.Title, &blog.Content, &blog.Published, &blog.AuthorID, &blog.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("querying blog by id: %w", err)
	}

	return blog, nil
}

// Update changes the mutable fields of a blog. Nil fields are left
// untouched (COALESCE keeps the stored value). author_id is deliberately
// not in the SET list: it is assigned once at creation.
func (r *BlogsRepository) Update(ctx context.Context, id string, title, content *string, published *bool) (*models.Blog, error) {
	query := `
		UPDATE blogs
		SET title     = COALESCE($2, title),
		    content   = COALESCE($3, content),
		    published = COALESCE($4, published)
		WHERE id = $1
		RETURNING id, title, content, published, author_id, created_at`

	blog := &models.Blog{}
	err := r.pool.QueryRow(ctx, query, id, title, content, published).Scan(
		&blog.ID, &blog.Title, &blog.Content, &blog.Published, &blog.AuthorID, &blog.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("updating blog: %w", err)
	}

	return blog, nil
}

// Delete removes a blog by id, returning the id and title of the deleted
// row so the handler can echo them back.
func (r *BlogsRepository) Delete(ctx context.Context, id string) (*models.Blog, error) {
	query := `
		DELETE FROM blogs
		WHERE id = $1
		RETURNING id, title`

	blog := &models.Blog{}
	err := r.pool.QueryRow(ctx, query, id).Scan(&blog.ID, &blog.Title)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("deleting blog: %w", err)
	}

	return blog, nil
}

// ListPage returns up to limit blogs starting at offset, in insertion
// order, projected down to the feed fields.
func (r *BlogsRepository) ListPage(ctx context.Context, offset, limit int) ([]models.BlogSummary, error) {
	query := `
		SELECT id, title, content, published
		FROM blogs
		ORDER BY created_at, id
		OFFSET $1
		LIMIT $2`

	rows, err := r.pool.Query(ctx, query, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("querying blogs page: %w", err)
	}
	defer rows.Close()

	blogs := []models.BlogSummary{}
	for rows.Next() {
		var blog models.BlogSummary
		if err := rows.Scan(&blog.ID, &blog.Title, &blog.Content, &blog.Published); err != nil {
			return nil, fmt.Errorf("scanning blogs page: %w", err)
		}
		blogs = append(blogs, blog)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading blogs page: %w", err)
	}

	return blogs, nil
}
