// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"strings"
)

// ErrIndexOutOfRange is returned by positional [SecretCollection] operations
// when the index does not address an existing entry.
var ErrIndexOutOfRange = errors.New("secret index out of range")

// SecretEntry is a single stored credential.
//
// The vault core never inspects these fields; it only serializes them.
// Duplicate Service values are allowed and entries are addressed by their
// position in the owning [SecretCollection].
type SecretEntry struct {
	// Service is the human-readable name of the site or application.
	Service string `json:"service"`

	// Username is the login identifier for Service.
	Username string `json:"username"`

	// Secret is the password. The JSON key stays "password" so vault files
	// written by earlier releases keep decoding.
	Secret string `json:"password"`
}

// SecretCollection is the ordered set of entries stored in one vault.
// Insertion order is both the display order and the storage order.
type SecretCollection struct {
	Entries []SecretEntry `json:"entries"`
}

// NewSecretCollection returns an empty collection whose Entries slice is
// non-nil, so it encodes as {"entries":[]}.
func NewSecretCollection() SecretCollection {
	return SecretCollection{Entries: []SecretEntry{}}
}

// Len returns the number of entries.
func (c SecretCollection) Len() int {
	return len(c.Entries)
}

// Clone returns a deep copy of c.
func (c SecretCollection) Clone() SecretCollection {
	entries := make([]SecretEntry, len(c.Entries))
	copy(entries, c.Entries)
	return SecretCollection{Entries: entries}
}

// Add appends entry to the end of the collection.
func (c *SecretCollection) Add(entry SecretEntry) {
	c.Entries = append(c.Entries, entry)
}

// Replace overwrites the entry at index.
func (c *SecretCollection) Replace(index int, entry SecretEntry) error {
	if index < 0 || index >= len(c.Entries) {
		return ErrIndexOutOfRange
	}
	c.Entries[index] = entry
	return nil
}

// Remove deletes the entry at index and shifts the following entries down by
// one. Any index captured before the call that is greater than index now
// points at a different entry.
func (c *SecretCollection) Remove(index int) error {
	if index < 0 || index >= len(c.Entries) {
		return ErrIndexOutOfRange
	}
	c.Entries = append(c.Entries[:index], c.Entries[index+1:]...)
	return nil
}

// Search returns, in collection order, the indices of entries whose Service
// contains query, compared case-insensitively. An empty query matches every
// entry.
func (c SecretCollection) Search(query string) []int {
	needle := strings.ToLower(strings.TrimSpace(query))

	indices := make([]int, 0, len(c.Entries))
	for i, e := range c.Entries {
		if needle == "" || strings.Contains(strings.ToLower(e.Service), needle) {
			indices = append(indices, i)
		}
	}
	return indices
}

// PasswordStrength is an advisory estimate of how hard a password is to guess.
type PasswordStrength struct {
	// Score ranges from 0 (trivially guessable) to 4 (very strong).
	Score int

	// Entropy is the estimated entropy in bits.
	Entropy float64

	// CrackTime is a human-readable estimate of the offline cracking time.
	CrackTime string
}
