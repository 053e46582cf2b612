package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid adapter settings
	// (for example, an unparsable base URL or a non-positive timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidAppConfigs indicates invalid REPL settings
	// (for example, an empty currency).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
)
