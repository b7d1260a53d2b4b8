package constants

import "errors"

// Configuration errors.
var (
	ErrUnknownConfigKey   = errors.New("unknown configuration key")
	ErrInvalidConfigValue = errors.New("invalid configuration value")
	ErrUnknownOutput      = errors.New("unknown output format")
)

// Argument errors.
var (
	ErrInvalidID        = errors.New("invalid id")
	ErrInvalidMillis    = errors.New("invalid millisecond timestamp")
	ErrDimensionsNeeded = errors.New("--width and --height must be given together")
)
