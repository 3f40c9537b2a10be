// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/go-pass-vault/internal/app"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/store"
)

// mapVaultError translates storage and crypto sentinel errors into a
// *VaultError carrying the matching kind and user message.
func mapVaultError(err error) error {
	if err == nil {
		return nil
	}

	var vErr *VaultError
	if errors.As(err, &vErr) {
		return err
	}

	kind, msg := classify(err)
	return &VaultError{Kind: kind, Message: msg, Err: err}
}

func classify(err error) (ErrorKind, string) {
	switch {
	case errors.Is(err, ErrVaultLocked):
		return KindLocked, app.MsgLocked
	case errors.Is(err, store.ErrIO):
		return KindIO, app.MsgIO
	case errors.Is(err, store.ErrCorruptFile),
		errors.Is(err, crypto.ErrMalformedInput):
		return KindCorruptFile, app.MsgCorruptFile
	case errors.Is(err, crypto.ErrAuthentication):
		return KindAuthentication, app.MsgAuthentication
	case errors.Is(err, crypto.ErrEncoding),
		errors.Is(err, store.ErrDecodeCollection):
		return KindEncoding, app.MsgEncoding
	case errors.Is(err, store.ErrSerialization):
		return KindSerialization, app.MsgSerialization
	case errors.Is(err, crypto.ErrEncryption):
		return KindEncryption, app.MsgEncryption
	case errors.Is(err, crypto.ErrDerivation):
		return KindDerivation, app.MsgDerivation
	case errors.Is(err, crypto.ErrInvalidLength):
		return KindInvalidInput, app.MsgInvalidInput
	default:
		return KindInternal, app.MsgInternal
	}
}
