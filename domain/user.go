package domain

import "time"

// User represents a registered account. The password hash never leaves the
// server: it is excluded from JSON and must not appear in logs.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
