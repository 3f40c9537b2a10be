package tui

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/models"
	tea "github.com/charmbracelet/bubbletea"
)

const statusTTL = 2 * time.Second

func cmdCheckVault(svc service.VaultService) tea.Cmd {
	return func() tea.Msg {
		exists, err := svc.VaultExists()
		return vaultCheckedMsg{exists: exists, err: err}
	}
}

func cmdUnlock(svc service.VaultService, masterPassword string) tea.Cmd {
	return func() tea.Msg {
		vault, collection, err := svc.Unlock(masterPassword)
		return unlockDoneMsg{vault: vault, collection: collection, err: err}
	}
}

// cmdPersist saves a snapshot of the collection. The caller must not mutate
// collection after handing it over.
func cmdPersist(svc service.VaultService, vault store.UnlockedVault, collection models.SecretCollection) tea.Cmd {
	return func() tea.Msg {
		return persistDoneMsg{err: svc.Persist(vault, collection)}
	}
}

func cmdGenerate(svc service.VaultService, length int) tea.Cmd {
	return func() tea.Msg {
		password, err := svc.GeneratePassword(length)
		return generatedMsg{password: password, err: err}
	}
}

func cmdCopyToClipboard(clip clipboardAccess, text string) tea.Cmd {
	return func() tea.Msg {
		if err := clip.WriteAll(text); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{value: text}
	}
}

func cmdExpireClipboard(after time.Duration, value string) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg {
		return clipboardExpiredMsg{value: value}
	})
}

// cmdClearClipboard empties the clipboard only if it still holds value, so
// something the user copied from elsewhere in the meantime survives.
func cmdClearClipboard(clip clipboardAccess, value string) tea.Cmd {
	return func() tea.Msg {
		current, err := clip.ReadAll()
		if err != nil || current != value {
			return clipboardClearedMsg{}
		}
		if err := clip.WriteAll(""); err != nil {
			return clipboardClearedMsg{}
		}
		return clipboardClearedMsg{cleared: true}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
