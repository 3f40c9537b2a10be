package store

import "errors"

// Sentinel errors returned by the vault file storage. Callers should use
// [errors.Is] to match against these values. Cryptographic failures are
// reported with the sentinels of the crypto package.
var (
	// ErrIO is returned when the vault file cannot be read or written. The
	// underlying OS error stays in the chain unchanged.
	ErrIO = errors.New("vault file i/o error")

	// ErrCorruptFile is returned when the vault file exists but is shorter
	// than salt + nonce.
	ErrCorruptFile = errors.New("vault file is corrupt")

	// ErrDecodeCollection is returned when the decrypted payload is text but
	// not a valid serialized secret collection.
	ErrDecodeCollection = errors.New("cannot decode secret collection")

	// ErrSerialization is returned when a collection cannot be encoded before
	// encryption.
	ErrSerialization = errors.New("cannot serialize secret collection")
)
