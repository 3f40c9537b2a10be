// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"
	"unicode/utf8"
)

// NonceSize is the AES-GCM nonce length in bytes.
const NonceSize = 12

// aesGCMCipher is the private implementation of [Cipher]. The derived key
// lives only inside the AEAD it was expanded into.
type aesGCMCipher struct {
	aead   cipher.AEAD
	random io.Reader
}

// NewAuthenticatedCipher builds an AES-256-GCM [Cipher] from a KeySize-byte
// key. The key slice is not retained after the call returns.
func NewAuthenticatedCipher(key []byte) (Cipher, error) {
	return newAESGCMCipher(key, rand.Reader)
}

func newAESGCMCipher(key []byte, random io.Reader) (*aesGCMCipher, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: want %d bytes, got %d", ErrInvalidKey, KeySize, len(key))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: create cipher: %w", ErrInvalidKey, err)
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("%w: create gcm: %w", ErrInvalidKey, err)
	}

	return &aesGCMCipher{aead: aead, random: random}, nil
}

// Encrypt implements [Cipher]. A fresh nonce is read from the CSPRNG on
// every call and prepended to the sealed output: blob = nonce ‖ ciphertext.
// Associated data is empty.
func (c *aesGCMCipher) Encrypt(plaintext []byte) ([]byte, error) {
	nonce := make([]byte, NonceSize, NonceSize+len(plaintext)+c.aead.Overhead())
	if _, err := io.ReadFull(c.random, nonce); err != nil {
		return nil, fmt.Errorf("%w: generate nonce: %w", ErrEncryption, err)
	}

	return c.aead.Seal(nonce, nonce, plaintext, nil), nil
}

// Decrypt implements [Cipher]. The blob must be at least NonceSize bytes.
// Any tag mismatch is reported as [ErrAuthentication] without the
// underlying detail.
func (c *aesGCMCipher) Decrypt(blob []byte) ([]byte, error) {
	if len(blob) < NonceSize {
		return nil, fmt.Errorf("%w: got %d bytes, need at least %d", ErrMalformedInput, len(blob), NonceSize)
	}

	nonce, sealed := blob[:NonceSize], blob[NonceSize:]

	plaintext, err := c.aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return nil, ErrAuthentication
	}

	if !utf8.Valid(plaintext) {
		return nil, ErrEncoding
	}

	return plaintext, nil
}
