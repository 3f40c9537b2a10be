package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/models"
)

// VaultService is the narrow contract between the vault core and the
// presentation layer. Every error it returns is a *VaultError.
type VaultService interface {
	// VaultExists reports whether the vault file is already on disk, so the
	// caller can tell vault creation from vault unlock.
	VaultExists() (bool, error)

	// Unlock opens the vault with masterPassword. When no vault file exists a
	// new vault is initialised in memory and an empty collection is returned;
	// nothing is written until the first Persist.
	//
	// A wrong password and a damaged file both fail with KindAuthentication.
	Unlock(masterPassword string) (store.UnlockedVault, models.SecretCollection, error)

	// Persist encrypts collection and overwrites the vault file. On failure
	// the caller keeps its collection and may retry.
	Persist(vault store.UnlockedVault, collection models.SecretCollection) error

	// GeneratePassword returns a random password of length characters.
	GeneratePassword(length int) (string, error)

	// EstimateStrength rates how hard password would be to guess.
	EstimateStrength(password string) models.PasswordStrength
}
