package validators

import "errors"

// Sentinel validation errors. The HTTP layer maps every one of them to
// 400 Bad Request; callers match with [errors.Is].
var (
	// ErrInvalidUsername is returned when a username is not 3-50 characters
	// of letters, digits, underscores, and hyphens.
	ErrInvalidUsername = errors.New("invalid username: must be 3-50 chars, alphanumeric, underscore or hyphen")

	// ErrInvalidEmail is returned when an email address is not RFC-shaped.
	ErrInvalidEmail = errors.New("invalid email format")

	// ErrInvalidPassword is returned when a password is shorter than
	// 8 characters.
	ErrInvalidPassword = errors.New("password must be at least 8 characters")

	// ErrInvalidPlatform is returned when a platform is not one of the
	// supported social networks.
	ErrInvalidPlatform = errors.New("unsupported platform")

	// ErrInvalidAccountName is returned when an account display name is
	// shorter than 2 or longer than 100 characters.
	ErrInvalidAccountName = errors.New("invalid account name length")

	// ErrEmptyContent is returned when a post is submitted with no text
	// content.
	ErrEmptyContent = errors.New("post content must not be empty")
)
