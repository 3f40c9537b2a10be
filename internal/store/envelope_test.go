package store

import (
	"bytes"
	"testing"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrameSplitVault(t *testing.T) {
	salt := bytes.Repeat([]byte{0x01}, crypto.SaltSize)
	sealed := append(bytes.Repeat([]byte{0x02}, crypto.NonceSize), []byte("ciphertext-and-tag")...)

	raw := frameVault(salt, sealed)
	require.Len(t, raw, len(salt)+len(sealed))

	gotSalt, gotSealed, err := splitVault(raw)
	require.NoError(t, err)
	assert.Equal(t, salt, gotSalt)
	assert.Equal(t, sealed, gotSealed)
}

func TestSplitVault_MinimumSize(t *testing.T) {
	assert.Equal(t, 28, minVaultSize)

	_, _, err := splitVault(make([]byte, minVaultSize-1))
	assert.ErrorIs(t, err, ErrCorruptFile)

	salt, sealed, err := splitVault(make([]byte, minVaultSize))
	require.NoError(t, err)
	assert.Len(t, salt, crypto.SaltSize)
	assert.Len(t, sealed, crypto.NonceSize)
}

func TestFrameVault_DoesNotAliasInputs(t *testing.T) {
	salt := bytes.Repeat([]byte{0x01}, crypto.SaltSize)
	sealed := bytes.Repeat([]byte{0x02}, crypto.NonceSize)

	raw := frameVault(salt, sealed)
	raw[0] = 0xFF

	assert.Equal(t, byte(0x01), salt[0])
}

func TestEncodeCollection(t *testing.T) {
	tests := []struct {
		name       string
		collection models.SecretCollection
		want       string
	}{
		{
			name:       "nil entries",
			collection: models.SecretCollection{},
			want:       `{"entries":[]}`,
		},
		{
			name: "entries keep order",
			collection: models.SecretCollection{Entries: []models.SecretEntry{
				{Service: "b", Username: "u1", Secret: "p1"},
				{Service: "a", Username: "u2", Secret: "p2"},
			}},
			want: `{"entries":[{"service":"b","username":"u1","password":"p1"},{"service":"a","username":"u2","password":"p2"}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := encodeCollection(tt.collection)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(data))
		})
	}
}

func TestDecodeCollection(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    models.SecretCollection
		wantErr bool
	}{
		{
			name:  "entries",
			input: `{"entries":[{"service":"s","username":"u","password":"p"}]}`,
			want:  models.SecretCollection{Entries: []models.SecretEntry{{Service: "s", Username: "u", Secret: "p"}}},
		},
		{name: "empty entries", input: `{"entries":[]}`, want: models.NewSecretCollection()},
		{name: "missing entries", input: `{}`, want: models.NewSecretCollection()},
		{name: "not json", input: `entries`, wantErr: true},
		{name: "wrong shape", input: `[1,2,3]`, wantErr: true},
		{name: "wrong field type", input: `{"entries":[{"service":1}]}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeCollection([]byte(tt.input))
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrDecodeCollection)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
