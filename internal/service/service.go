// Package service contains the business logic.
//
// It sits between the handler and repository layers: it receives validated
// data from handlers, performs the business operation (hashing, token
// issuance, pagination arithmetic), and calls repository methods to touch
// the data. Services accept store interfaces so tests can substitute
// in-memory fakes for the Postgres repositories.
package service

import "errors"

var (
	// ErrNotFound is returned when an operation targets a record that does
	// not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidCredentials is returned for both an unknown login and a
	// wrong password, so a caller cannot distinguish the two.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
