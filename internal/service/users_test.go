package service

import (
	"context"
	"testing"

	"github.com/deppfellow/scribe/internal/config"
	"github.com/deppfellow/scribe/internal/models"
	"github.com/deppfellow/scribe/internal/repository"
	"github.com/deppfellow/scribe/internal/server"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// fakeUserStore is an in-memory UserStore.
type fakeUserStore struct {
	users   []*models.User
	created int
}

func (f *fakeUserStore) Create(ctx context.Context, user *models.User) error {
	f.created++
	user.ID = "user-" + user.Username
	f.users = append(f.users, user)
	return nil
}

func (f *fakeUserStore) FindByUsernameOrEmail(ctx context.Context, login string) (*models.User, error) {
	for _, u := range f.users {
		if u.Username == login || u.Email == login {
			return u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func newTestAuthService() *AuthService {
	log := zerolog.Nop()
	return NewAuthService(&server.Server{
		Config: &config.Config{Auth: config.AuthConfig{SecretKey: "test-secret"}},
		Logger: &log,
	})
}

func TestSignup_HashesPassword(t *testing.T) {
	t.Parallel()

	store := &fakeUserStore{}
	authService := newTestAuthService()
	svc := NewUserService(store, authService)

	user, token, err := svc.Signup(context.Background(), SignupParams{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	// The plaintext must never be stored; the hash must verify.
	assert.NotEqual(t, "correct horse", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("correct horse")))
}

func TestSignup_TokenBoundToNewUser(t *testing.T) {
	t.Parallel()

	store := &fakeUserStore{}
	authService := newTestAuthService()
	svc := NewUserService(store, authService)

	user, token, err := svc.Signup(context.Background(), SignupParams{
		Username: "bob",
		Email:    "bob@example.com",
		Password: "longenough",
	})
	require.NoError(t, err)

	claims, err := authService.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "bob", claims.Username)
}

func TestSignin_Success(t *testing.T) {
	t.Parallel()

	store := &fakeUserStore{}
	authService := newTestAuthService()
	svc := NewUserService(store, authService)

	_, _, err := svc.Signup(context.Background(), SignupParams{
		Username: "carol",
		Email:    "carol@example.com",
		Password: "hunter2hunter2",
	})
	require.NoError(t, err)

	for _, login := range []string{"carol", "carol@example.com"} {
		user, token, err := svc.Signin(context.Background(), login, "hunter2hunter2")
		require.NoError(t, err, "login %q", login)
		assert.Equal(t, "carol", user.Username)

		claims, err := authService.VerifyToken(token)
		require.NoError(t, err)
		assert.Equal(t, user.ID, claims.UserID)
	}
}

func TestSignin_GenericFailure(t *testing.T) {
	t.Parallel()

	store := &fakeUserStore{}
	svc := NewUserService(store, newTestAuthService())

	_, _, err := svc.Signup(context.Background(), SignupParams{
		Username: "dave",
		Email:    "dave@example.com",
		Password: "davespassword",
	})
	require.NoError(t, err)

	// Wrong password and unknown user must be indistinguishable.
	_, _, wrongPassword := svc.Signin(context.Background(), "dave", "not-the-password")
	_, _, unknownUser := svc.Signin(context.Background(), "nobody", "whatever")

	assert.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	assert.ErrorIs(t, unknownUser, ErrInvalidCredentials)
	assert.Equal(t, wrongPassword.Error(), unknownUser.Error())
}
