// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// vault service and the terminal UI.
//
// All Msg* constants are human-readable message strings shown to the user or
// written into log entries to describe the outcome of an operation. Keeping
// them in one place ensures consistent wording throughout the application.
package app

const (
	// MsgIO is shown when the vault file cannot be read or written.
	MsgIO = "vault file could not be read or written"

	// MsgCorruptFile is shown when the vault file is too short to hold a
	// salt and a nonce.
	MsgCorruptFile = "vault file is corrupt"

	// MsgDerivation is shown when the key derivation primitive fails.
	MsgDerivation = "could not derive the vault key"

	// MsgAuthentication is shown for a wrong master password and for a
	// tampered vault file alike.
	MsgAuthentication = "wrong master password or damaged vault file"

	// MsgEncoding is shown when the decrypted vault is not a valid secret
	// collection.
	MsgEncoding = "vault contents are corrupt"

	// MsgSerialization is shown when the collection cannot be serialized
	// for saving.
	MsgSerialization = "secrets could not be serialized"

	// MsgEncryption is shown when the collection cannot be encrypted for
	// saving.
	MsgEncryption = "secrets could not be encrypted"

	// MsgInvalidInput is shown when a request carries invalid arguments.
	MsgInvalidInput = "invalid data provided"

	// MsgLocked is shown when an operation needs an unlocked vault.
	MsgLocked = "vault is locked"

	// MsgInternal is shown for failures the user cannot resolve.
	MsgInternal = "internal error"
)

// UI wording shared by several screens.
const (
	MsgSaved           = "saved"
	MsgSaveFailedRetry = "save failed, press w to retry"
	MsgCopied          = "copied to clipboard"
	MsgClipboardFailed = "clipboard is not available"
	MsgClipboardClear  = "clipboard cleared"
	MsgNothingToSave   = "nothing to save"
	MsgSaveInProgress  = "a save is already in progress"
	MsgQuitWhileSaving = "a save is in progress, quit again when it finishes"
)
