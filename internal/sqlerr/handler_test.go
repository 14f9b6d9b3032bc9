package sqlerr

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/deppfellow/scribe/internal/errs"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleError_UniqueViolation(t *testing.T) {
	t.Parallel()

	pgErr := &pgconn.PgError{
		Severity:       "ERROR",
		Code:           "23505",
		Message:        "duplicate key value violates unique constraint",
		TableName:      "users",
		ConstraintName: "users_username_key",
	}

	err := HandleError(pgErr)

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "USER_ALREADY_EXISTS", httpErr.Code)
	assert.Equal(t, "A User with this Username already exists", httpErr.Message)
}

func TestHandleError_ForeignKeyViolation(t *testing.T) {
	t.Parallel()

	pgErr := &pgconn.PgError{
		Severity:   "ERROR",
		Code:       "23503",
		Message:    "insert or update violates foreign key constraint",
		TableName:  "blogs",
		ColumnName: "author_id",
	}

	err := HandleError(pgErr)

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "BLOG_NOT_FOUND", httpErr.Code)
	assert.Equal(t, "The referenced Author does not exist", httpErr.Message)
}

func TestHandleError_NoRows(t *testing.T) {
	t.Parallel()

	err := HandleError(fmt.Errorf("querying blog by id: %w", pgx.ErrNoRows))

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
}

func TestHandleError_HTTPErrorPassesThrough(t *testing.T) {
	t.Parallel()

	original := errs.NewNotFoundError("Blog not found", false, nil)
	assert.Same(t, original, HandleError(original))
}

func TestHandleError_UnknownErrorIsInternal(t *testing.T) {
	t.Parallel()

	err := HandleError(fmt.Errorf("connection reset"))

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
}

func TestMapCode(t *testing.T) {
	t.Parallel()

	assert.Equal(t, UniqueViolation, MapCode("23505"))
	assert.Equal(t, ForeignKeyViolation, MapCode("23503"))
	assert.Equal(t, NotNullViolation, MapCode("23502"))
	assert.Equal(t, CheckViolation, MapCode("23514"))
	assert.Equal(t, ConnectionFailure, MapCode("08006"))
	assert.Equal(t, Other, MapCode("42601"))
}

func TestErrCode(t *testing.T) {
	t.Parallel()

	converted := ConvertPgError(&pgconn.PgError{Code: "23505", Severity: "ERROR"})
	assert.Equal(t, UniqueViolation, ErrCode(fmt.Errorf("wrapped: %w", converted)))
	assert.Equal(t, Other, ErrCode(fmt.Errorf("plain")))
}
