// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// validate checks that the merged [StructuredConfig] can be used at startup.
func (cfg *StructuredConfig) validate() error {
	if strings.TrimSpace(cfg.Vault.FilePath) == "" {
		return fmt.Errorf("%w: empty vault file path", ErrInvalidVaultConfigs)
	}

	length := cfg.Generator.DefaultLength
	if length < MinGeneratorLength || length > MaxGeneratorLength {
		return fmt.Errorf("%w: default length %d outside %d..%d",
			ErrInvalidGeneratorConfigs, length, MinGeneratorLength, MaxGeneratorLength)
	}

	if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLogConfigs, err)
	}

	if d := cfg.UI.ClipboardClearAfter; d != nil && *d < 0 {
		return fmt.Errorf("%w: negative clipboard clear delay", ErrInvalidUIConfigs)
	}

	return nil
}
