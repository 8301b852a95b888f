package constants

import "errors"

// Configuration errors.
var (
	ErrNoTokenConfigured = errors.New("no token configured, use 'ferinth login' or set MODRINTH_TOKEN")
)

// Validation errors.
var (
	ErrInvalidOutputFormat = errors.New("output format must be one of: table, json, yaml")
)
