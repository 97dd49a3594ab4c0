package models

import "time"

// User represents a dashboard account used for authentication and resource
// ownership. Credential-related fields must never be exposed outside trusted
// boundaries.
type User struct {
	// ID is the internal unique identifier of the user.
	ID int64 `json:"id"`

	// Username is the unique public handle chosen at registration.
	// 3-50 characters, alphanumeric plus underscore and hyphen.
	Username string `json:"username"`

	// Email is the unique address the user logs in with.
	// Matching is case-sensitive exact match.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// This value MUST be a bcrypt digest, never plaintext, and is excluded
	// from JSON serialization.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
