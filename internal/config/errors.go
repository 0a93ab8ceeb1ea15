package config

import "errors"

// Validation errors returned when the merged configuration is unusable.
var (
	// ErrInvalidStorageConfigs indicates a missing database path.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidLogConfigs indicates an unknown log level.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
	// ErrInvalidWorkerConfigs indicates a non-positive worker interval or TTL.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
