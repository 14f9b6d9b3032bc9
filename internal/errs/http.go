// Package errs defines the error types returned to API clients.
//
// Every failed request is serialized as an HTTPError so clients always
// receive the same envelope: a machine-readable code, a human-readable
// message, the HTTP status, and optional field-level validation errors.
package errs

import "strings"

// FieldError represents a single field-level validation error.
//
// Example:
//
//	{ "field": "password", "error": "must be at least 8 characters" }
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// ActionType is a string enum describing what the client should do next.
type ActionType string

const (
	// ActionTypeRedirect tells the client to redirect; Value holds the target.
	ActionTypeRedirect ActionType = "redirect"
)

// Action is an optional client instruction attached to an error response,
// e.g. "redirect to signin" after an auth failure.
type Action struct {
	Type    ActionType `json:"type"`
	Message string     `json:"message"`
	Value   string     `json:"value"`
}

// HTTPError is the response envelope for every failed request.
//
// It satisfies the error interface and is serialized to JSON as-is by the
// global error handler.
//
//   - Code: stable machine-readable code (e.g. "BAD_REQUEST", "USER_ALREADY_EXISTS")
//   - Message: human-readable message
//   - Status: HTTP status code
//   - Override: whether the client UI may show Message verbatim
//   - Errors: field-level validation errors, when applicable
type HTTPError struct {
	Code     string       `json:"code"`
	Message  string       `json:"message"`
	Status   int          `json:"status"`
	Override bool         `json:"override"`
	Errors   []FieldError `json:"errors"`
	Action   *Action      `json:"action"`
}

func (e *HTTPError) Error() string {
	return e.Message
}

// Is reports whether target is also an *HTTPError. It matches on type only,
// not on Code or Status, so errors.Is(err, &HTTPError{}) works as a
// "was this already mapped" check.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)
	return ok
}

// WithMessage returns a copy of the error with Message replaced.
func (e *HTTPError) WithMessage(message string) *HTTPError {
	return &HTTPError{
		Code:     e.Code,
		Message:  message,
		Status:   e.Status,
		Override: e.Override,
		Errors:   e.Errors,
		Action:   e.Action,
	}
}

// MakeUpperCaseWithUnderscores turns HTTP status text into a stable code,
// e.g. "Bad Request" -> "BAD_REQUEST".
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
