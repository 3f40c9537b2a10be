package store

import (
	"github.com/MKhiriev/go-pass-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// VaultOpener is the locked side of the vault: it knows where the vault file
// lives but holds no key material.
type VaultOpener interface {
	// Exists reports whether the vault file is present on disk.
	Exists() (bool, error)

	// Open derives the key from masterPassword and returns an unlocked handle
	// together with the decrypted collection. When no vault file exists yet a
	// new salt is generated and an empty collection is returned; nothing is
	// written until the first Save.
	Open(masterPassword string) (UnlockedVault, models.SecretCollection, error)
}

// UnlockedVault is a live session on an opened vault. It owns the cipher for
// the session; dropping the value is the only way to lock the vault again.
type UnlockedVault interface {
	// Save serializes collection, encrypts it under a fresh nonce and
	// overwrites the vault file with salt || nonce || ciphertext.
	Save(collection models.SecretCollection) error

	// Salt returns a copy of the salt fixed for this vault.
	Salt() []byte

	// Path returns the vault file location.
	Path() string
}
