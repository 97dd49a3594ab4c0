// Package validators implements input validation for the domain models:
// user registration fields, social account attributes, and post content.
// Every check returns a sentinel error from errors.go so that the HTTP layer
// can map failures to status codes without string matching.
package validators

import (
	"net/mail"
	"regexp"
	"strings"
)

// usernamePattern matches 3-50 characters of letters, digits, underscores,
// and hyphens.
var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_-]{3,50}$`)

// ValidateUsername checks that username is 3-50 characters long and contains
// only letters, digits, underscores, and hyphens.
func ValidateUsername(username string) error {
	if !usernamePattern.MatchString(username) {
		return ErrInvalidUsername
	}
	return nil
}

// ValidateEmail checks that email parses as a bare RFC 5322 address with a
// dotted domain part. No case folding is applied; lookups elsewhere are
// case-sensitive exact match.
func ValidateEmail(email string) error {
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return ErrInvalidEmail
	}

	// Reject display-name forms like "Bob <bob@example.com>".
	if addr.Address != email {
		return ErrInvalidEmail
	}

	at := strings.LastIndex(email, "@")
	if at < 0 || !strings.Contains(email[at+1:], ".") {
		return ErrInvalidEmail
	}

	return nil
}

// ValidatePassword checks the minimum password length of 8 characters.
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return ErrInvalidPassword
	}
	return nil
}
