package service

import "errors"

var (
	// ErrInvalidCredentials is returned on login when the email is unknown
	// or the password does not match. The two cases are deliberately not
	// distinguishable by the caller.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrTokenExpired is returned when a session token's expiry has passed.
	ErrTokenExpired = errors.New("token has expired")

	// ErrTokenInvalid is returned for malformed tokens, bad signatures, and
	// issuer mismatches.
	ErrTokenInvalid = errors.New("invalid token")

	// ErrTokenMissingSubject is returned when a structurally valid token
	// carries no subject claim to identify the user.
	ErrTokenMissingSubject = errors.New("token carries no user id")

	// ErrExportFormat is returned for export formats other than json or csv.
	ErrExportFormat = errors.New("unsupported export format")
)
