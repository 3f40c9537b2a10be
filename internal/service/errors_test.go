package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-pass-vault/internal/app"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", &VaultError{Kind: KindCorruptFile, Message: app.MsgCorruptFile})

	assert.Equal(t, KindNone, KindOf(nil))
	assert.Equal(t, KindInternal, KindOf(errors.New("plain")))
	assert.Equal(t, KindCorruptFile, KindOf(wrapped))
}

func TestMessageOf(t *testing.T) {
	assert.Empty(t, MessageOf(nil))
	assert.Equal(t, "plain", MessageOf(errors.New("plain")))
	assert.Equal(t, app.MsgLocked, MessageOf(&VaultError{Kind: KindLocked, Message: app.MsgLocked, Err: ErrVaultLocked}))
}

func TestVaultError_Error(t *testing.T) {
	assert.Equal(t, "vault is locked", (&VaultError{Message: "vault is locked"}).Error())
	assert.Equal(t, "vault is locked: vault is not unlocked",
		(&VaultError{Message: "vault is locked", Err: ErrVaultLocked}).Error())
}

func TestErrorKind_String(t *testing.T) {
	assert.Equal(t, "authentication", KindAuthentication.String())
	assert.Equal(t, "corrupt_file", KindCorruptFile.String())
	assert.Equal(t, "kind(99)", ErrorKind(99).String())
}

func TestMapVaultError(t *testing.T) {
	assert.NoError(t, mapVaultError(nil))

	already := &VaultError{Kind: KindIO, Message: app.MsgIO}
	assert.Same(t, already, mapVaultError(already))

	tests := []struct {
		err  error
		want ErrorKind
	}{
		{ErrVaultLocked, KindLocked},
		{store.ErrIO, KindIO},
		{store.ErrCorruptFile, KindCorruptFile},
		{crypto.ErrMalformedInput, KindCorruptFile},
		{crypto.ErrAuthentication, KindAuthentication},
		{crypto.ErrEncoding, KindEncoding},
		{store.ErrDecodeCollection, KindEncoding},
		{store.ErrSerialization, KindSerialization},
		{crypto.ErrEncryption, KindEncryption},
		{crypto.ErrDerivation, KindDerivation},
		{crypto.ErrInvalidLength, KindInvalidInput},
		{crypto.ErrInvalidKey, KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			mapped := mapVaultError(fmt.Errorf("ctx: %w", tt.err))

			var vErr *VaultError
			require.ErrorAs(t, mapped, &vErr)
			assert.Equal(t, tt.want, vErr.Kind)
			assert.NotEmpty(t, vErr.Message)
			assert.ErrorIs(t, mapped, tt.err)
		})
	}
}
