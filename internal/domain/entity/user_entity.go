package entity

import "time"

// User is the aggregate root for the account domain.
// Passwords are stored as bcrypt hashes; the per-user token signing secret is
// supplied by the caller at registration and never serialized.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	SecretKey    string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
