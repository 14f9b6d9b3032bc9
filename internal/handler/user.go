package handler

import (
	"github.com/deppfellow/scribe/internal/errs"
	"github.com/deppfellow/scribe/internal/models"
	"github.com/deppfellow/scribe/internal/server"
	"github.com/deppfellow/scribe/internal/service"
	"github.com/deppfellow/scribe/internal/validation"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler serves signup and signin.
type UserHandler struct {
	Handler
	users *service.UserService
}

// NewUserHandler constructs a UserHandler.
func NewUserHandler(s *server.Server, users *service.UserService) *UserHandler {
	return &UserHandler{
		Handler: NewHandler(s),
		users:   users,
	}
}

// SignupRequest is the signup payload. Email format is deliberately not
// validated beyond presence; clients rely on the loose contract.
type SignupRequest struct {
	Username string  `json:"username" validate:"required"`
	Name     *string `json:"name"`
	Email    string  `json:"email" validate:"required"`
	Password string  `json:"password" validate:"required,min=8"`
}

func (r *SignupRequest) Validate() error {
	return validation.Struct(r)
}

// SigninRequest accepts a username or an email plus the password. At least
// one of the two login fields must be present, which tags can't express, so
// Validate adds a custom check.
type SigninRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password" validate:"required"`
}

func (r *SigninRequest) Validate() error {
	if err := validation.Struct(r); err != nil {
		return err
	}

	if r.Username == "" && r.Email == "" {
		return validation.CustomValidationErrors{
			{Field: "username", Message: "username or email is required"},
		}
	}

	return nil
}

// login returns whichever login field the client supplied, username first.
func (r *SigninRequest) login() string {
	if r.Username != "" {
		return r.Username
	}
	return r.Email
}

// PublicUser is the response projection of a user: everything except the
// credential hash.
type PublicUser struct {
	ID       string  `json:"id"`
	Username string  `json:"username"`
	Email    string  `json:"email"`
	Name     *string `json:"name"`
}

// AuthResponse is returned by both signup and signin.
type AuthResponse struct {
	Token string     `json:"token"`
	User  PublicUser `json:"user"`
}

func newAuthResponse(user *models.User, token string) *AuthResponse {
	return &AuthResponse{
		Token: token,
		User: PublicUser{
			ID:       user.ID,
			Username: user.Username,
			Email:    user.Email,
			Name:     user.Name,
		},
	}
}

// Signup creates a user and returns a token bound to the new identity.
func (h *UserHandler) Signup(c echo.Context, req *SignupRequest) (*AuthResponse, error) {
	user, token, err := h.users.Signup(c.Request().Context(), service.SignupParams{
		Username: req.Username,
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return nil, err
	}

	return newAuthResponse(user, token), nil
}

// Signin verifies credentials and returns a token. Unknown login and wrong
// password collapse into the same generic 401.
func (h *UserHandler) Signin(c echo.Context, req *SigninRequest) (*AuthResponse, error) {
	user, token, err := h.users.Signin(c.Request().Context(), req.login(), req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return nil, errs.NewUnauthorizedError("Invalid username or password", false)
		}
		return nil, err
	}

	return newAuthResponse(user, token), nil
}
