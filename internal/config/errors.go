package config

import "errors"

// Validation errors returned by [StructuredConfig.validate].
var (
	// ErrInvalidVaultConfigs indicates a missing vault file path.
	ErrInvalidVaultConfigs = errors.New("invalid vault configuration")
	// ErrInvalidGeneratorConfigs indicates a default password length outside
	// the supported range.
	ErrInvalidGeneratorConfigs = errors.New("invalid generator configuration")
	// ErrInvalidLogConfigs indicates an unknown log level.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
	// ErrInvalidUIConfigs indicates invalid terminal UI settings.
	ErrInvalidUIConfigs = errors.New("invalid ui configuration")
)
