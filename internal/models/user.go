// Package models holds the persisted record types shared by the
// repository, service, and handler layers.
package models

import "time"

// User is a registered account. PasswordHash is a bcrypt hash; the plain
// password never touches storage and the hash never appears in a response.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Name         *string   `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}
