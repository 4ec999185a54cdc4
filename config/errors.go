package config

import "errors"

// Configuration errors.
var (
	// ErrUnknownKey indicates a queried or written key is not in the
	// property registry.
	ErrUnknownKey = errors.New("unknown config key")

	// ErrInvalidValue indicates a written value was rejected by the
	// property's validator.
	ErrInvalidValue = errors.New("invalid config value")
)
