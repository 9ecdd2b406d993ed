package domain

import "time"

// User is a registered account. PasswordHash is the argon2id verifier and
// never leaves the service on the wire.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
