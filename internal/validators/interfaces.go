// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks user input before it reaches the vault.
//
// Validation is a concern of the presentation layer: the vault core stores
// whatever collection it is handed. Validators keep obviously broken entries
// (no service name, embedded control characters, runaway lengths) out of the
// file.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
