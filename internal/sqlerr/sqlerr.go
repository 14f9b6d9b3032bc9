// Package sqlerr translates database driver errors into application errors.
//
// It parses SQLSTATE codes from the Postgres driver and converts them
// into user-friendly HTTPErrors (e.g. a unique violation on users.username
// becomes a 400 "A User with this Username already exists").
package sqlerr
