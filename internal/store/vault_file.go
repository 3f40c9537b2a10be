// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

const (
	vaultFileMode = 0o600
	vaultDirMode  = 0o700
)

// CipherFactory builds the session cipher from a derived key.
type CipherFactory func(key []byte) (crypto.Cipher, error)

// vaultFileStorage is the default implementation of [VaultOpener]. It
// persists the whole secret collection as one encrypted file:
//
//	salt(16) || nonce(12) || ciphertext+tag
//
// The file is read whole and overwritten whole; there is no locking and no
// support for concurrent writers.
type vaultFileStorage struct {
	path      string
	deriver   crypto.KeyDeriver
	newCipher CipherFactory
	logger    *logger.Logger
}

// NewVaultFileStorage constructs a [VaultOpener] for the vault at path using
// AES-256-GCM as the session cipher.
func NewVaultFileStorage(path string, deriver crypto.KeyDeriver, log *logger.Logger) VaultOpener {
	return NewVaultFileStorageWithCipher(path, deriver, crypto.NewAuthenticatedCipher, log)
}

// NewVaultFileStorageWithCipher is like [NewVaultFileStorage] but lets the
// caller choose how the session cipher is built from the derived key.
func NewVaultFileStorageWithCipher(path string, deriver crypto.KeyDeriver, newCipher CipherFactory, log *logger.Logger) VaultOpener {
	return &vaultFileStorage{
		path:      path,
		deriver:   deriver,
		newCipher: newCipher,
		logger:    log,
	}
}

// Exists implements [VaultOpener].
func (v *vaultFileStorage) Exists() (bool, error) {
	_, err := os.Stat(v.path)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, fmt.Errorf("%w: %w", ErrIO, err)
	}
}

// Open implements [VaultOpener].
//
// A missing file means vault creation: a fresh salt is generated and an empty
// collection is returned. Otherwise the file is read whole, split into salt
// and sealed payload, and decrypted with the key derived from masterPassword.
// A wrong password and a tampered file both fail with
// [crypto.ErrAuthentication].
func (v *vaultFileStorage) Open(masterPassword string) (UnlockedVault, models.SecretCollection, error) {
	raw, err := os.ReadFile(v.path)
	if errors.Is(err, fs.ErrNotExist) {
		return v.create(masterPassword)
	}
	if err != nil {
		return nil, models.SecretCollection{}, fmt.Errorf("%w: read vault: %w", ErrIO, err)
	}

	salt, sealed, err := splitVault(raw)
	if err != nil {
		v.logger.Warn().Str("path", v.path).Int("size", len(raw)).Msg("vault file too short")
		return nil, models.SecretCollection{}, err
	}

	session, err := v.unlock(masterPassword, bytes.Clone(salt))
	if err != nil {
		return nil, models.SecretCollection{}, err
	}

	plaintext, err := session.cipher.Decrypt(sealed)
	if err != nil {
		v.logger.Debug().Str("path", v.path).Err(err).Msg("vault decryption failed")
		return nil, models.SecretCollection{}, fmt.Errorf("decrypt vault: %w", err)
	}

	collection, err := decodeCollection(plaintext)
	if err != nil {
		return nil, models.SecretCollection{}, err
	}

	v.logger.Info().Str("path", v.path).Int("entries", collection.Len()).Msg("vault unlocked")
	return session, collection, nil
}

func (v *vaultFileStorage) create(masterPassword string) (UnlockedVault, models.SecretCollection, error) {
	salt, err := v.deriver.GenerateSalt()
	if err != nil {
		return nil, models.SecretCollection{}, fmt.Errorf("create vault: %w", err)
	}

	session, err := v.unlock(masterPassword, salt)
	if err != nil {
		return nil, models.SecretCollection{}, err
	}

	v.logger.Info().Str("path", v.path).Msg("new vault initialised in memory")
	return session, models.NewSecretCollection(), nil
}

func (v *vaultFileStorage) unlock(masterPassword string, salt []byte) (*unlockedVaultFile, error) {
	key, err := v.deriver.Derive(masterPassword, salt)
	if err != nil {
		return nil, fmt.Errorf("derive vault key: %w", err)
	}

	cipher, err := v.newCipher(key)
	if err != nil {
		return nil, fmt.Errorf("build vault cipher: %w", err)
	}

	return &unlockedVaultFile{
		path:   v.path,
		salt:   salt,
		cipher: cipher,
		logger: v.logger,
	}, nil
}

// unlockedVaultFile is the default implementation of [UnlockedVault].
type unlockedVaultFile struct {
	path   string
	salt   []byte
	cipher crypto.Cipher
	logger *logger.Logger
}

// Save implements [UnlockedVault]. The salt fixed at open time is written
// back unchanged; only the nonce and ciphertext change between saves.
//
// The file is overwritten in place. A crash in the middle of the write can
// leave a truncated vault behind.
func (u *unlockedVaultFile) Save(collection models.SecretCollection) error {
	plaintext, err := encodeCollection(collection)
	if err != nil {
		return err
	}

	sealed, err := u.cipher.Encrypt(plaintext)
	if err != nil {
		return fmt.Errorf("encrypt vault: %w", err)
	}

	if dir := filepath.Dir(u.path); dir != "" {
		if err := os.MkdirAll(dir, vaultDirMode); err != nil {
			return fmt.Errorf("%w: create vault directory: %w", ErrIO, err)
		}
	}

	data := frameVault(u.salt, sealed)
	if err := os.WriteFile(u.path, data, vaultFileMode); err != nil {
		return fmt.Errorf("%w: write vault: %w", ErrIO, err)
	}

	u.logger.Info().Str("path", u.path).Int("entries", collection.Len()).Int("size", len(data)).Msg("vault saved")
	return nil
}

// Salt implements [UnlockedVault].
func (u *unlockedVaultFile) Salt() []byte {
	return bytes.Clone(u.salt)
}

// Path implements [UnlockedVault].
func (u *unlockedVaultFile) Path() string {
	return u.path
}
