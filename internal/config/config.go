// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Default values applied when no source sets a field.
const (
	DefaultVaultFilePath       = "credentials.encrypted"
	DefaultGeneratorLength     = 16
	DefaultLogLevel            = "debug"
	DefaultClipboardClearAfter = 30 * time.Second
)

// Generator length bounds, matching the length selector in the UI.
const (
	MinGeneratorLength = 8
	MaxGeneratorLength = 64
)

// StructuredConfig is the top-level configuration container for
// go-pass-vault. It is populated by merging command-line flags, environment
// variables, an optional JSON file and built-in defaults.
//
// Struct tags:
//   - envPrefix is the prefix applied to all nested env tag lookups (caarlos0/env).
//   - env is the direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Vault locates the encrypted credential file.
	Vault Vault `envPrefix:"VAULT_"`

	// Generator holds password generator settings.
	Generator Generator `envPrefix:"GENERATOR_"`

	// Log controls where and how verbosely the application logs.
	Log Log `envPrefix:"LOG_"`

	// UI holds terminal UI behaviour settings.
	UI UI `envPrefix:"UI_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Vault holds the location of the vault file.
type Vault struct {
	// FilePath is the path of the encrypted vault file. The file does not
	// have to exist; it is created on the first save.
	// Env: VAULT_FILE_PATH
	FilePath string `env:"FILE_PATH"`
}

// Generator holds password generator settings.
type Generator struct {
	// DefaultLength is the initial length offered by the password generator.
	// Env: GENERATOR_DEFAULT_LENGTH
	DefaultLength int `env:"DEFAULT_LENGTH"`
}

// Log holds logging settings.
type Log struct {
	// FilePath is where log lines are written. Empty means a vault.log file
	// next to the executable.
	// Env: LOG_FILE_PATH
	FilePath string `env:"FILE_PATH"`

	// Level is a zerolog level name (trace, debug, info, warn, error, ...).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// UI holds terminal UI settings.
type UI struct {
	// ClipboardClearAfter is how long a copied secret stays in the clipboard.
	// Zero disables clearing; nil means no source set it.
	// Env: UI_CLIPBOARD_CLEAR_AFTER
	ClipboardClearAfter *time.Duration `env:"CLIPBOARD_CLEAR_AFTER"`
}

// ClipboardDelay returns the configured clear delay, or
// [DefaultClipboardClearAfter] when none was set.
func (u UI) ClipboardDelay() time.Duration {
	if u.ClipboardClearAfter == nil {
		return DefaultClipboardClearAfter
	}
	return *u.ClipboardClearAfter
}

func durationPtr(d time.Duration) *time.Duration {
	return &d
}

// defaultConfig returns the lowest-priority configuration layer.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Vault:     Vault{FilePath: DefaultVaultFilePath},
		Generator: Generator{DefaultLength: DefaultGeneratorLength},
		Log:       Log{Level: DefaultLogLevel},
		UI:        UI{ClipboardClearAfter: durationPtr(DefaultClipboardClearAfter)},
	}
}

// GetStructuredConfig loads, merges, and validates the application
// configuration. For every field the first source that sets it wins:
//  1. Command-line flags
//  2. Environment variables
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags().
		withEnv().
		withJSON().
		withDefaults().
		build()
}
