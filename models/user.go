package models

import "time"

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the unique identifier of the user (server-assigned UUID).
	UserID string `json:"id"`

	// Email is the unique address used as the login key.
	// Validated as email-shaped at registration time.
	Email string `json:"email"`

	// Password carries the plaintext password on inbound requests only.
	// It is never persisted and never serialized back to clients.
	Password string `json:"-"`

	// PasswordHash is the bcrypt hash of the password.
	// It lives only at the persistence layer.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
