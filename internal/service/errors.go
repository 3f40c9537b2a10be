package service

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a *VaultError. The presentation layer branches on the
// kind; the message is for humans.
type ErrorKind int

const (
	KindNone ErrorKind = iota
	KindIO
	KindCorruptFile
	KindDerivation
	KindAuthentication
	KindEncoding
	KindSerialization
	KindEncryption
	KindInvalidInput
	KindLocked
	KindInternal
)

var kindNames = map[ErrorKind]string{
	KindNone:           "none",
	KindIO:             "io",
	KindCorruptFile:    "corrupt_file",
	KindDerivation:     "derivation",
	KindAuthentication: "authentication",
	KindEncoding:       "encoding",
	KindSerialization:  "serialization",
	KindEncryption:     "encryption",
	KindInvalidInput:   "invalid_input",
	KindLocked:         "locked",
	KindInternal:       "internal",
}

func (k ErrorKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// ErrVaultLocked is wrapped when Persist is called without an unlocked vault.
var ErrVaultLocked = errors.New("vault is not unlocked")

// VaultError is the single error type returned by [VaultService].
type VaultError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *VaultError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *VaultError) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of the first *VaultError in err's chain. A nil
// error is KindNone and any other error is KindInternal.
func KindOf(err error) ErrorKind {
	if err == nil {
		return KindNone
	}

	var vErr *VaultError
	if errors.As(err, &vErr) {
		return vErr.Kind
	}
	return KindInternal
}

// MessageOf returns the human-readable message for err.
func MessageOf(err error) string {
	if err == nil {
		return ""
	}

	var vErr *VaultError
	if errors.As(err, &vErr) {
		return vErr.Message
	}
	return err.Error()
}
