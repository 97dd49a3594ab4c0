package validators

import (
	"strings"

	"github.com/socialpulse/socialpulse/models"
)

// Account name length bounds, in bytes.
const (
	minAccountNameLen = 2
	maxAccountNameLen = 100
)

// ValidatePlatform checks that platform is one of the supported social
// networks.
func ValidatePlatform(platform models.Platform) error {
	if !platform.Valid() {
		return ErrInvalidPlatform
	}
	return nil
}

// ValidateAccountName checks that name, after trimming surrounding
// whitespace, is between 2 and 100 characters long.
func ValidateAccountName(name string) error {
	trimmed := strings.TrimSpace(name)
	if len(trimmed) < minAccountNameLen || len(trimmed) > maxAccountNameLen {
		return ErrInvalidAccountName
	}
	return nil
}

// ValidateContent checks that post content is non-empty after trimming
// surrounding whitespace.
func ValidateContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return ErrEmptyContent
	}
	return nil
}
