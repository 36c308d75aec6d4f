package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty database DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates invalid inbound server settings
	// (for example, a missing HTTP listen address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAppConfigs indicates invalid account-lifecycle settings
	// (missing link base URLs or non-positive token TTLs).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidMailConfigs indicates invalid SMTP settings
	// (for example, a missing host or sender address).
	ErrInvalidMailConfigs = errors.New("invalid mail configuration")
)
