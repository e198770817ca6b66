package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates invalid application settings
	// (for example, an unknown log level).
	ErrInvalidAppConfigs = errors.New("invalid application configuration")
	// ErrInvalidServerConfigs indicates invalid listener settings
	// (for example, an empty address or a negative timeout).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidStorageConfigs indicates invalid uploads storage settings
	// (for example, an empty uploads directory).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidUploadConfigs indicates invalid ingestion settings
	// (for example, a fail threshold outside [0, 1)).
	ErrInvalidUploadConfigs = errors.New("invalid upload configuration")
)
