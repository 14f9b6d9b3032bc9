package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/deppfellow/scribe/internal/models"
	"github.com/deppfellow/scribe/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

// UserStore is the persistence surface UserService needs.
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	FindByUsernameOrEmail(ctx context.Context, login string) (*models.User, error)
}

// UserService handles signup and signin.
type UserService struct {
	users UserStore
	auth  *AuthService
}

// NewUserService constructs a UserService.
func NewUserService(users UserStore, auth *AuthService) *UserService {
	return &UserService{
		users: users,
		auth:  auth,
	}
}

// SignupParams carries the validated signup fields.
type SignupParams struct {
	Username string
	Name     *string
	Email    string
	Password string
}

// Signup creates a user and issues a token bound to the new identity.
//
// The password is stored as a bcrypt hash; the plaintext is discarded as
// soon as the hash exists. A duplicate username propagates as the
// repository's unique-violation error for the global funnel to map.
func (s *UserService) Signup(ctx context.Context, params SignupParams) (*models.User, string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(params.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("hashing password: %w", err)
	}

	user := &models.User{
		Username:     params.Username,
		Name:         params.Name,
		Email:        params.Email,
		PasswordHash: string(hash),
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := s.auth.IssueToken(user.ID, user.Username)
	if err != nil {
		return nil, "", fmt.Errorf("issuing token: %w", err)
	}

	return user, token, nil
}

// Signin verifies credentials and issues a token.
//
// An unknown login and a wrong password both return ErrInvalidCredentials;
// the response must not reveal which of the two was wrong.
func (s *UserService) Signin(ctx context.Context, login, password string) (*models.User, string, error) {
	user, err := s.users.FindByUsernameOrEmail(ctx, login)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.auth.IssueToken(user.ID, user.Username)
	if err != nil {
		return nil, "", fmt.Errorf("issuing token: %w", err)
	}

	return user, token, nil
}
