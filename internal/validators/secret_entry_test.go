// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/go-pass-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validEntry() models.SecretEntry {
	return models.SecretEntry{Service: "GitHub", Username: "octocat", Secret: "s3cr3t!"}
}

func TestNewSecretEntryValidator(t *testing.T) {
	v := NewSecretEntryValidator()
	require.NotNil(t, v)
	assert.IsType(t, &SecretEntryValidator{}, v)
}

func TestSecretEntryValidator_Validate(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(e *models.SecretEntry)
		fields  []string
		wantErr error
	}{
		{name: "valid", mutate: func(*models.SecretEntry) {}},
		{name: "empty username and password", mutate: func(e *models.SecretEntry) { e.Username, e.Secret = "", "" }},
		{name: "unicode service", mutate: func(e *models.SecretEntry) { e.Service = "Почта ✉" }},
		{name: "password may hold a tab", mutate: func(e *models.SecretEntry) { e.Secret = "a\tb" }},
		{
			name:    "empty service",
			mutate:  func(e *models.SecretEntry) { e.Service = "" },
			wantErr: ErrEmptyService,
		},
		{
			name:    "blank service",
			mutate:  func(e *models.SecretEntry) { e.Service = " \t " },
			wantErr: ErrEmptyService,
		},
		{
			name:    "service with newline",
			mutate:  func(e *models.SecretEntry) { e.Service = "mail\nbox" },
			wantErr: ErrControlCharacters,
		},
		{
			name:    "username with escape",
			mutate:  func(e *models.SecretEntry) { e.Username = "bob\x1b[2J" },
			wantErr: ErrControlCharacters,
		},
		{
			name:    "service too long",
			mutate:  func(e *models.SecretEntry) { e.Service = strings.Repeat("s", MaxFieldLength+1) },
			wantErr: ErrFieldTooLong,
		},
		{
			name:    "password too long",
			mutate:  func(e *models.SecretEntry) { e.Secret = strings.Repeat("p", MaxFieldLength+1) },
			wantErr: ErrFieldTooLong,
		},
		{
			name:   "limit counts characters not bytes",
			mutate: func(e *models.SecretEntry) { e.Username = strings.Repeat("ж", MaxFieldLength) },
		},
		{
			name:   "field scoping skips other fields",
			mutate: func(e *models.SecretEntry) { e.Service = "" },
			fields: []string{FieldUsername, FieldSecret},
		},
		{
			name:    "unknown field",
			mutate:  func(*models.SecretEntry) {},
			fields:  []string{"notes"},
			wantErr: ErrUnknownField,
		},
	}

	v := NewSecretEntryValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := validEntry()
			tt.mutate(&entry)

			err := v.Validate(ctx, entry, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSecretEntryValidator_ErrorNamesField(t *testing.T) {
	entry := validEntry()
	entry.Username = "a\x00b"

	err := NewSecretEntryValidator().Validate(context.Background(), entry)
	require.Error(t, err)
	assert.Contains(t, err.Error(), FieldUsername)
}

func TestSecretEntryValidator_Pointer(t *testing.T) {
	v := NewSecretEntryValidator()
	entry := validEntry()

	assert.NoError(t, v.Validate(context.Background(), &entry))

	var nilEntry *models.SecretEntry
	assert.ErrorIs(t, v.Validate(context.Background(), nilEntry), ErrUnsupportedType)
}

func TestSecretEntryValidator_UnsupportedType(t *testing.T) {
	v := NewSecretEntryValidator()
	assert.ErrorIs(t, v.Validate(context.Background(), "not an entry"), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(context.Background(), models.SecretCollection{}), ErrUnsupportedType)
}
