// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

const (
	// SaltSize is the length of the per-vault salt in bytes.
	SaltSize = 16

	// KeySize is the length of the derived AES-256 key in bytes.
	KeySize = 32
)

// Argon2Params holds the Argon2id cost parameters.
//
// The parameters are not stored in the vault file, so a vault can only be
// opened with the parameters it was created with.
type Argon2Params struct {
	// Time is the number of passes over memory.
	Time uint32

	// MemoryKiB is the memory cost in KiB.
	MemoryKiB uint32

	// Threads is the degree of parallelism.
	Threads uint8

	// KeyLen is the output length in bytes. Must equal KeySize.
	KeyLen uint32
}

// DefaultArgon2Params returns the reference Argon2id defaults:
//   - time cost:   2 iterations
//   - memory cost: 19 MiB
//   - parallelism: 1 thread
//   - key length:  32 bytes (256 bits)
//
// Vaults written by earlier releases were derived with exactly these values.
func DefaultArgon2Params() Argon2Params {
	return Argon2Params{
		Time:      2,
		MemoryKiB: 19 * 1024, // 19 MiB
		Threads:   1,
		KeyLen:    KeySize,
	}
}

func (p Argon2Params) validate() error {
	switch {
	case p.Time == 0:
		return fmt.Errorf("%w: time cost must be positive", ErrDerivation)
	case p.MemoryKiB == 0:
		return fmt.Errorf("%w: memory cost must be positive", ErrDerivation)
	case p.Threads == 0:
		return fmt.Errorf("%w: parallelism must be positive", ErrDerivation)
	case p.KeyLen != KeySize:
		return fmt.Errorf("%w: key length must be %d bytes, got %d", ErrDerivation, KeySize, p.KeyLen)
	}
	return nil
}

// argon2KeyDeriver is the private implementation of [KeyDeriver].
type argon2KeyDeriver struct {
	params Argon2Params
	random io.Reader
}

// NewKeyDeriver constructs an Argon2id [KeyDeriver] with [DefaultArgon2Params].
func NewKeyDeriver() KeyDeriver {
	return NewKeyDeriverWithParams(DefaultArgon2Params())
}

// NewKeyDeriverWithParams constructs an Argon2id [KeyDeriver] with explicit
// cost parameters. Invalid parameters surface as [ErrDerivation] from Derive.
func NewKeyDeriverWithParams(params Argon2Params) KeyDeriver {
	return &argon2KeyDeriver{
		params: params,
		random: rand.Reader,
	}
}

// GenerateSalt implements [KeyDeriver]. It reads SaltSize bytes from the OS
// CSPRNG.
func (k *argon2KeyDeriver) GenerateSalt() ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := io.ReadFull(k.random, salt); err != nil {
		return nil, fmt.Errorf("%w: generate salt: %w", ErrDerivation, err)
	}
	return salt, nil
}

// Derive implements [KeyDeriver]. The password may be any byte sequence,
// including the empty string. The salt must be exactly SaltSize bytes.
func (k *argon2KeyDeriver) Derive(masterPassword string, salt []byte) ([]byte, error) {
	if len(salt) != SaltSize {
		return nil, fmt.Errorf("%w: salt must be %d bytes, got %d", ErrDerivation, SaltSize, len(salt))
	}
	if err := k.params.validate(); err != nil {
		return nil, err
	}

	key := argon2.IDKey(
		[]byte(masterPassword),
		salt,
		k.params.Time,
		k.params.MemoryKiB,
		k.params.Threads,
		k.params.KeyLen,
	)
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: derived key has unexpected length %d", ErrDerivation, len(key))
	}

	return key, nil
}
