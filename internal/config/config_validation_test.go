package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "defaults", mutate: func(*StructuredConfig) {}},
		{name: "minimum length", mutate: func(c *StructuredConfig) { c.Generator.DefaultLength = MinGeneratorLength }},
		{name: "maximum length", mutate: func(c *StructuredConfig) { c.Generator.DefaultLength = MaxGeneratorLength }},
		{name: "zero clipboard delay", mutate: func(c *StructuredConfig) { c.UI.ClipboardClearAfter = durationPtr(0) }},
		{
			name:    "empty vault path",
			mutate:  func(c *StructuredConfig) { c.Vault.FilePath = "" },
			wantErr: ErrInvalidVaultConfigs,
		},
		{
			name:    "blank vault path",
			mutate:  func(c *StructuredConfig) { c.Vault.FilePath = "   " },
			wantErr: ErrInvalidVaultConfigs,
		},
		{
			name:    "length too short",
			mutate:  func(c *StructuredConfig) { c.Generator.DefaultLength = MinGeneratorLength - 1 },
			wantErr: ErrInvalidGeneratorConfigs,
		},
		{
			name:    "length too long",
			mutate:  func(c *StructuredConfig) { c.Generator.DefaultLength = MaxGeneratorLength + 1 },
			wantErr: ErrInvalidGeneratorConfigs,
		},
		{
			name:    "unknown log level",
			mutate:  func(c *StructuredConfig) { c.Log.Level = "loud" },
			wantErr: ErrInvalidLogConfigs,
		},
		{
			name:    "negative clipboard delay",
			mutate:  func(c *StructuredConfig) { c.UI.ClipboardClearAfter = durationPtr(-time.Second) },
			wantErr: ErrInvalidUIConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
