package validation

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deppfellow/scribe/internal/errs"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testPayload struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
}

func (p *testPayload) Validate() error {
	return Struct(p)
}

type customPayload struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

func (p *customPayload) Validate() error {
	if p.Username == "" && p.Email == "" {
		return CustomValidationErrors{
			{Field: "username", Message: "username or email is required"},
		}
	}
	return nil
}

func bindJSON(t *testing.T, body string, payload Validatable) error {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	return BindAndValidate(c, payload)
}

func TestBindAndValidate_Success(t *testing.T) {
	t.Parallel()

	payload := &testPayload{}
	err := bindJSON(t, `{"username":"alice","password":"longenough"}`, payload)

	require.NoError(t, err)
	assert.Equal(t, "alice", payload.Username)
}

func TestBindAndValidate_ReportsEveryViolation(t *testing.T) {
	t.Parallel()

	err := bindJSON(t, `{"password":"short"}`, &testPayload{})
	require.Error(t, err)

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)

	// Both the missing username and the short password must be reported,
	// not just the first failure.
	require.Len(t, httpErr.Errors, 2)

	byField := map[string]string{}
	for _, fe := range httpErr.Errors {
		byField[fe.Field] = fe.Error
	}
	assert.Equal(t, "is required", byField["username"])
	assert.Equal(t, "must be at least 8 characters", byField["password"])
}

func TestBindAndValidate_MalformedJSON(t *testing.T) {
	t.Parallel()

	err := bindJSON(t, `{"username":`, &testPayload{})
	require.Error(t, err)

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
}

func TestBindAndValidate_CustomValidation(t *testing.T) {
	t.Parallel()

	err := bindJSON(t, `{}`, &customPayload{})
	require.Error(t, err)

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	require.Len(t, httpErr.Errors, 1)
	assert.Equal(t, "username", httpErr.Errors[0].Field)
	assert.Equal(t, "username or email is required", httpErr.Errors[0].Error)
}

func TestIsValidUUID(t *testing.T) {
	t.Parallel()

	assert.True(t, IsValidUUID("f47ac10b-58cc-4372-a567-0e02b2c3d479"))
	assert.False(t, IsValidUUID("not-a-uuid"))
	assert.False(t, IsValidUUID(""))
}
