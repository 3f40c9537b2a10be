// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"CONFIG":                   "/path/to/config.json",
		"VAULT_FILE_PATH":          "/home/user/vault.bin",
		"GENERATOR_DEFAULT_LENGTH": "24",
		"LOG_FILE_PATH":            "/tmp/vault.log",
		"LOG_LEVEL":                "info",
		"UI_CLIPBOARD_CLEAR_AFTER": "45s",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, "/home/user/vault.bin", cfg.Vault.FilePath)
	assert.Equal(t, 24, cfg.Generator.DefaultLength)
	assert.Equal(t, "/tmp/vault.log", cfg.Log.FilePath)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 45*time.Second, cfg.UI.ClipboardDelay())
}

func TestParseEnv_PartialFields(t *testing.T) {
	setEnvVars(t, map[string]string{
		"VAULT_FILE_PATH": "vault.bin",
	})

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "vault.bin", cfg.Vault.FilePath)
	assert.Zero(t, cfg.Generator.DefaultLength)
	assert.Empty(t, cfg.Log.Level)
	assert.Nil(t, cfg.UI.ClipboardClearAfter)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	setEnvVars(t, nil)

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseEnv_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"duration", "UI_CLIPBOARD_CLEAR_AFTER", "soon"},
		{"length", "GENERATOR_DEFAULT_LENGTH", "long"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setEnvVars(t, map[string]string{tt.key: tt.val})

			err := parseEnv(&StructuredConfig{})
			require.Error(t, err)
			assert.Contains(t, err.Error(), "env")
		})
	}
}

// Helpers

var configEnvKeys = []string{
	"CONFIG",
	"VAULT_FILE_PATH",
	"GENERATOR_DEFAULT_LENGTH",
	"LOG_FILE_PATH",
	"LOG_LEVEL",
	"UI_CLIPBOARD_CLEAR_AFTER",
}

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

// clearEnvVars unsets every variable the config reads and restores the
// previous values when the test ends.
func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, k := range configEnvKeys {
		if old, ok := os.LookupEnv(k); ok {
			t.Cleanup(func() { _ = os.Setenv(k, old) })
		}
		_ = os.Unsetenv(k)
	}
}
