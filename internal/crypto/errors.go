package crypto

import "errors"

// Sentinel errors returned by the cryptographic primitives. Callers match
// them with [errors.Is]; the service layer maps them to user-facing kinds.
var (
	// ErrDerivation is returned when key derivation or salt generation fails.
	ErrDerivation = errors.New("key derivation failed")

	// ErrInvalidKey is returned when a cipher is built from a key that is not
	// KeySize bytes long.
	ErrInvalidKey = errors.New("invalid key length")

	// ErrEncryption is returned when sealing a payload fails, in practice
	// only when the system random source cannot produce a nonce.
	ErrEncryption = errors.New("encryption failed")

	// ErrMalformedInput is returned when a blob is too short to contain a
	// nonce.
	ErrMalformedInput = errors.New("ciphertext too short")

	// ErrAuthentication is returned when the authentication tag does not
	// verify. A wrong master password and a tampered ciphertext are
	// deliberately indistinguishable.
	ErrAuthentication = errors.New("authentication failed")

	// ErrEncoding is returned when a payload decrypts correctly but is not
	// valid UTF-8 text.
	ErrEncoding = errors.New("decrypted payload is not valid text")

	// ErrInvalidLength is returned by the generator for negative lengths.
	ErrInvalidLength = errors.New("invalid password length")

	// ErrGeneration is returned when the random source fails while
	// generating a password.
	ErrGeneration = errors.New("password generation failed")
)
