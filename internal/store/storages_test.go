package store

import (
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStorages(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vault")

	s, err := NewStorages(config.Vault{FilePath: path}, newTestDeriver(), logger.Nop())
	require.NoError(t, err)
	require.NotNil(t, s.Vault)

	exists, err := s.Vault.Exists()
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestNewStorages_NoPath(t *testing.T) {
	s, err := NewStorages(config.Vault{}, newTestDeriver(), logger.Nop())
	assert.Nil(t, s)
	assert.ErrorIs(t, err, ErrNoVaultPath)
}
