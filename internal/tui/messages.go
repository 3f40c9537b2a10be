package tui

import (
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/models"
)

type vaultCheckedMsg struct {
	exists bool
	err    error
}

type unlockDoneMsg struct {
	vault      store.UnlockedVault
	collection models.SecretCollection
	err        error
}

type persistDoneMsg struct {
	err error
}

type generatedMsg struct {
	password string
	err      error
}

type copiedMsg struct {
	value string
	err   error
}

// clipboardExpiredMsg fires when a copied value has outlived its clear delay.
type clipboardExpiredMsg struct {
	value string
}

type clipboardClearedMsg struct {
	cleared bool
}

type clearStatusMsg struct{}
