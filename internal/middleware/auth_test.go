package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/deppfellow/scribe/internal/auth"
	"github.com/deppfellow/scribe/internal/config"
	"github.com/deppfellow/scribe/internal/errs"
	"github.com/deppfellow/scribe/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-signing-secret"

func newTestServer() *server.Server {
	log := zerolog.Nop()
	return &server.Server{
		Config: &config.Config{
			Primary: config.Primary{Env: "test"},
			Auth:    config.AuthConfig{SecretKey: testSecret},
		},
		Logger: &log,
	}
}

func invokeRequireAuth(t *testing.T, authorization string) (error, bool) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/blog", nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	invoked := false
	next := func(c echo.Context) error {
		invoked = true
		return nil
	}

	m := NewAuthMiddleware(newTestServer())
	err := m.RequireAuth(next)(c)
	return err, invoked
}

func TestRequireAuth_MissingHeader(t *testing.T) {
	t.Parallel()

	err, invoked := invokeRequireAuth(t, "")

	assert.False(t, invoked, "downstream handler must not run")

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Status)
	assert.Equal(t, "Unauthorized", httpErr.Message)
}

func TestRequireAuth_MalformedToken(t *testing.T) {
	t.Parallel()

	err, invoked := invokeRequireAuth(t, "Bearer garbage")

	assert.False(t, invoked)

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Status)
}

func TestRequireAuth_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := auth.GenerateToken("u1", "alice", []byte("some-other-secret"))
	require.NoError(t, err)

	authErr, invoked := invokeRequireAuth(t, "Bearer "+tok)

	assert.False(t, invoked)
	assert.Error(t, authErr)
}

func TestRequireAuth_ValidToken(t *testing.T) {
	t.Parallel()

	tok, err := auth.GenerateToken("user-42", "alice", []byte(testSecret))
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/blog", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+tok)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	m := NewAuthMiddleware(newTestServer())
	handlerErr := m.RequireAuth(func(c echo.Context) error {
		assert.Equal(t, "user-42", GetUserID(c))
		assert.Equal(t, "alice", GetUsername(c))
		return nil
	})(c)

	require.NoError(t, handlerErr)
}

func TestRequireAuth_RawTokenWithoutScheme(t *testing.T) {
	t.Parallel()

	tok, err := auth.GenerateToken("user-7", "bob", []byte(testSecret))
	require.NoError(t, err)

	handlerErr, invoked := invokeRequireAuth(t, tok)

	require.NoError(t, handlerErr)
	assert.True(t, invoked)
}

func TestExtractBearerToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		header string
		want   string
	}{
		{name: "empty", header: "", want: ""},
		{name: "bearer prefix", header: "Bearer abc", want: "abc"},
		{name: "lowercase prefix", header: "bearer abc", want: "abc"},
		{name: "raw token", header: "abc.def.ghi", want: "abc.def.ghi"},
		{name: "surrounding whitespace", header: "  Bearer abc  ", want: "abc"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, extractBearerToken(tt.header))
		})
	}
}
