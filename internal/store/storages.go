package store

import (
	"errors"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

// ErrNoVaultPath is returned by [NewStorages] when the configuration carries
// no vault file location.
var ErrNoVaultPath = errors.New("vault file path is not configured")

// Storages groups the storage backends into a single value that can be passed
// around the service layer. Currently it holds only the vault file.
type Storages struct {
	// Vault is the encrypted single-file credential store.
	Vault VaultOpener
}

// NewStorages initialises the storage layer from cfg. The vault file itself
// is not touched until the first Open.
func NewStorages(cfg config.Vault, deriver crypto.KeyDeriver, log *logger.Logger) (*Storages, error) {
	if cfg.FilePath == "" {
		return nil, ErrNoVaultPath
	}

	log.Info().Str("path", cfg.FilePath).Msg("creating vault storage...")

	return &Storages{
		Vault: NewVaultFileStorage(cfg.FilePath, deriver, log),
	}, nil
}
