package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// KeyDeriver turns a master password into symmetric key material.
//
// Scheme:
//
//	Salt = GenerateSalt()                  (once, at vault creation)
//	Key  = Derive(masterPassword, Salt)    (on every unlock)
//
// Derive is deterministic: the same password and salt always yield the same
// key. A wrong password is therefore not detected here but later, when the
// [Cipher] built from the wrong key fails to authenticate the vault.
type KeyDeriver interface {
	// GenerateSalt returns SaltSize random bytes. The salt is public and is
	// stored unencrypted at the start of the vault file.
	GenerateSalt() ([]byte, error)

	// Derive returns a KeySize-byte key for masterPassword and salt.
	Derive(masterPassword string, salt []byte) ([]byte, error)
}

// Cipher provides authenticated encryption of opaque payloads with the key it
// was built from. Every Encrypt call draws a fresh random nonce.
type Cipher interface {
	// Encrypt seals plaintext and returns nonce || ciphertext || tag.
	Encrypt(plaintext []byte) ([]byte, error)

	// Decrypt opens a blob produced by Encrypt and returns the plaintext,
	// which is guaranteed to be valid UTF-8.
	Decrypt(blob []byte) ([]byte, error)
}

// SecretGenerator produces random passwords.
type SecretGenerator interface {
	// Generate returns exactly length characters drawn uniformly from
	// [PasswordAlphabet].
	Generate(length int) (string, error)
}
