package service

import (
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
)

// Services groups the application services handed to the presentation layer.
type Services struct {
	Vault VaultService
}

// NewServices wires the crypto primitives, the vault file storage and the
// vault service from cfg.
func NewServices(cfg *config.StructuredConfig, log *logger.Logger) (*Services, error) {
	storages, err := store.NewStorages(cfg.Vault, crypto.NewKeyDeriver(), log)
	if err != nil {
		return nil, fmt.Errorf("error creating storages: %w", err)
	}

	return &Services{
		Vault: NewVaultService(storages.Vault, crypto.NewSecretGenerator(), log),
	}, nil
}
