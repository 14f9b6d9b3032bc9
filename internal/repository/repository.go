// Package repository handles all interactions with the database.
//
// It contains the raw SQL for users and blogs, abstracting persistence
// away from the service layer. Every method borrows a connection from the
// shared pgx pool for the duration of the query; the pool guarantees
// release on success and failure alike.
package repository

import "errors"

// ErrNotFound is returned when a query matches no row. Services translate
// it into their own sentinels so handlers never see driver errors.
var ErrNotFound = errors.New("record not found")
