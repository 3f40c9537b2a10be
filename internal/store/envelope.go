// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
)

// minVaultSize is the smallest valid vault file: salt followed by a nonce.
const minVaultSize = crypto.SaltSize + crypto.NonceSize

// frameVault lays out the on-disk representation:
//
//	offset 0   salt        (16 bytes)
//	offset 16  nonce       (12 bytes)
//	offset 28  ciphertext || tag
//
// sealed is the nonce || ciphertext blob produced by [crypto.Cipher.Encrypt].
func frameVault(salt, sealed []byte) []byte {
	out := make([]byte, 0, len(salt)+len(sealed))
	out = append(out, salt...)
	return append(out, sealed...)
}

// splitVault is the inverse of frameVault. The returned slices alias raw.
func splitVault(raw []byte) (salt, sealed []byte, err error) {
	if len(raw) < minVaultSize {
		return nil, nil, fmt.Errorf("%w: %d bytes, need at least %d", ErrCorruptFile, len(raw), minVaultSize)
	}
	return raw[:crypto.SaltSize], raw[crypto.SaltSize:], nil
}
