package validators

import (
	"context"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/MKhiriev/go-pass-vault/models"
)

// Field name constants accepted by [SecretEntryValidator.Validate] to restrict
// validation to a subset of fields.
const (
	FieldService  = "service"
	FieldUsername = "username"
	FieldSecret   = "password"
)

// MaxFieldLength is the maximum number of characters in any entry field.
const MaxFieldLength = 1024

// SecretEntryValidator validates [models.SecretEntry] values.
type SecretEntryValidator struct{}

func NewSecretEntryValidator() Validator {
	return &SecretEntryValidator{}
}

func (v *SecretEntryValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SecretEntry:
		return v.validateSecretEntry(ctx, value, fields...)
	case *models.SecretEntry:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateSecretEntry(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *SecretEntryValidator) validateSecretEntry(_ context.Context, entry models.SecretEntry, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldService, FieldUsername, FieldSecret}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldService:
			if strings.TrimSpace(entry.Service) == "" {
				err = ErrEmptyService
				break
			}
			err = checkText(entry.Service, true)
		case FieldUsername:
			err = checkText(entry.Username, true)
		case FieldSecret:
			err = checkText(entry.Secret, false)
		default:
			return ErrUnknownField
		}

		if err != nil {
			return fmt.Errorf("%s: %w", f, err)
		}
	}

	return nil
}

func checkText(s string, rejectControl bool) error {
	if utf8.RuneCountInString(s) > MaxFieldLength {
		return ErrFieldTooLong
	}

	if rejectControl && strings.IndexFunc(s, unicode.IsControl) >= 0 {
		return ErrControlCharacters
	}

	return nil
}
