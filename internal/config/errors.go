package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrMissingTokenSignKey indicates that no JWT signing key was provided
	// by any configuration source.
	ErrMissingTokenSignKey = errors.New("token sign key is required")
	// ErrInvalidServerConfigs indicates invalid server settings
	// (for example, missing HTTP address or zero request timeout).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
