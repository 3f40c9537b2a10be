// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
)

// PasswordAlphabet is the fixed 90-character set generated passwords are
// drawn from.
const PasswordAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"abcdefghijklmnopqrstuvwxyz" +
	"0123456789" +
	"!@#$%^&*~()-_=+[]{}|;:,.<>?/"

type secretGenerator struct {
	random io.Reader
}

// NewSecretGenerator returns a [SecretGenerator] backed by the OS CSPRNG.
func NewSecretGenerator() SecretGenerator {
	return &secretGenerator{random: rand.Reader}
}

// Generate implements [SecretGenerator]. Each character is chosen
// independently with [rand.Int], which is unbiased over the alphabet size.
func (g *secretGenerator) Generate(length int) (string, error) {
	if length < 0 {
		return "", fmt.Errorf("%w: %d", ErrInvalidLength, length)
	}

	size := big.NewInt(int64(len(PasswordAlphabet)))
	out := make([]byte, length)
	for i := range out {
		n, err := rand.Int(g.random, size)
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrGeneration, err)
		}
		out[i] = PasswordAlphabet[n.Int64()]
	}

	return string(out), nil
}
