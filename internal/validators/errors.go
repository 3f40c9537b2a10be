package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyService      = errors.New("service is required")
	ErrFieldTooLong      = errors.New("value is too long")
	ErrControlCharacters = errors.New("value contains control characters")
)
