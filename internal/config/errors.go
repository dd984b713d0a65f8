package config

import "errors"

// Validation errors returned by the config validation step when required
// configuration values are missing or inconsistent.
var (
	// ErrNoTokenSignKey indicates the token signing key is absent. The
	// service cannot issue or verify tokens without it.
	ErrNoTokenSignKey = errors.New("token sign key is not configured")
	// ErrNoDatabaseDSN indicates the database connection string is absent.
	ErrNoDatabaseDSN = errors.New("database DSN is not configured")
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing server URL or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates invalid client storage settings
	// (for example, an empty local cache path).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
)
