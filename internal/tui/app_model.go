package tui

import (
	"context"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/app"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/validators"
	"github.com/MKhiriev/go-pass-vault/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type screen int

const (
	screenUnlock screen = iota
	screenList
	screenDetail
	screenForm
	screenAbout
)

const msgUnsavedChanges = "unsaved changes (w: retry save)"

// settings are the user-tunable knobs the UI reads from configuration.
type settings struct {
	vaultPath     string
	clearAfter    time.Duration
	defaultLength int
}

// appModel owns the unlocked vault for the lifetime of the program. The
// collection is only ever replaced, never mutated in place, so a snapshot
// handed to a pending save stays consistent.
type appModel struct {
	ctx       context.Context
	vault     service.VaultService
	clip      clipboardAccess
	validator validators.Validator
	logger    *logger.Logger
	info      models.AppBuildInfo
	settings  settings

	currentScreen screen
	unlock        unlockModel
	list          listModel
	detail        detailModel
	form          formModel

	handle     store.UnlockedVault
	collection models.SecretCollection
	saving     bool
	dirty      bool
	status     string

	showError    bool
	errorOverlay errorOverlayModel
	showConfirm  bool
	confirm      confirmModel
}

func newAppModel(ctx context.Context, vault service.VaultService, clip clipboardAccess, s settings, info models.AppBuildInfo, log *logger.Logger) appModel {
	return appModel{
		ctx:           ctx,
		vault:         vault,
		clip:          clip,
		validator:     validators.NewSecretEntryValidator(),
		logger:        log,
		info:          info,
		settings:      s,
		currentScreen: screenUnlock,
		unlock:        newUnlockModel(),
		list:          newListModel(),
		collection:    models.NewSecretCollection(),
	}
}

func (m appModel) Init() tea.Cmd {
	return cmdCheckVault(m.vault)
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.forceQuit) {
			return m, tea.Quit
		}
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showConfirm {
			return m.updateConfirm(msg)
		}
	case vaultCheckedMsg:
		if msg.err != nil {
			m.showErrorf(service.MessageOf(msg.err))
			return m, nil
		}
		m.unlock.creating = !msg.exists
		return m, nil
	case unlockDoneMsg:
		return m.handleUnlockDone(msg)
	case persistDoneMsg:
		return m.handlePersistDone(msg)
	case generatedMsg:
		if m.currentScreen != screenForm {
			return m, nil
		}
		if msg.err != nil {
			m.form.errMsg = service.MessageOf(msg.err)
			return m, nil
		}
		m.form.errMsg = ""
		m.form = m.form.setSecret(msg.password, m.vault.EstimateStrength(msg.password))
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			m.logger.Warn().Err(msg.err).Msg("clipboard write failed")
			m.status = app.MsgClipboardFailed
			return m, cmdClearStatus()
		}
		m.status = app.MsgCopied
		if m.settings.clearAfter > 0 {
			return m, tea.Batch(cmdClearStatus(), cmdExpireClipboard(m.settings.clearAfter, msg.value))
		}
		return m, cmdClearStatus()
	case clipboardExpiredMsg:
		return m, cmdClearClipboard(m.clip, msg.value)
	case clipboardClearedMsg:
		if !msg.cleared {
			return m, nil
		}
		m.status = app.MsgClipboardClear
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenUnlock:
		return m.updateUnlock(msg)
	case screenList:
		return m.updateList(msg)
	case screenDetail:
		return m.updateDetail(msg)
	case screenForm:
		return m.updateForm(msg)
	case screenAbout:
		return m.updateAbout(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	var body string
	switch m.currentScreen {
	case screenUnlock:
		body = m.unlock.View()
	case screenList:
		body = m.list.View(m.collection)
	case screenDetail:
		entry, _ := m.entryAt(m.detail.index)
		body = m.detail.View(entry)
	case screenForm:
		body = m.form.View()
	case screenAbout:
		body = renderBuildInfoWindow(m.info, m.settings.vaultPath)
	}

	if m.currentScreen != screenUnlock {
		if m.status != "" {
			body += "\n\n  " + helpStyle.Render(m.status)
		}
		if m.dirty {
			body += "\n  " + errorStyle.Render(msgUnsavedChanges)
		}
	}

	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

func (m appModel) entryAt(index int) (models.SecretEntry, bool) {
	if index < 0 || index >= m.collection.Len() {
		return models.SecretEntry{}, false
	}
	return m.collection.Entries[index], true
}

func (m appModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		m.showConfirm = false
		switch m.confirm.action {
		case confirmQuit:
			m.logger.Warn().Msg("quitting with unsaved changes")
			return m, tea.Quit
		case confirmDelete:
			index := m.confirm.index
			return m.applyMutation(
				func(c *models.SecretCollection) error { return c.Remove(index) },
				func(m *appModel) { m.currentScreen = screenList },
			)
		}
	case key.Matches(msg, keys.no), key.Matches(msg, keys.esc):
		m.showConfirm = false
	}
	return m, nil
}

func (m appModel) handleUnlockDone(msg unlockDoneMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		if service.KindOf(msg.err) == service.KindAuthentication {
			m.unlock = m.unlock.fail(service.MessageOf(msg.err))
			return m, nil
		}
		m.unlock = m.unlock.fail("")
		m.showErrorf(service.MessageOf(msg.err))
		return m, nil
	}

	m.unlock = newUnlockModel()
	m.handle = msg.vault
	m.collection = msg.collection
	m.list = m.list.refresh(m.collection)
	m.currentScreen = screenList
	m.logger.Info().Int("entries", m.collection.Len()).Msg("vault opened")
	return m, nil
}

func (m appModel) handlePersistDone(msg persistDoneMsg) (tea.Model, tea.Cmd) {
	m.saving = false
	if msg.err != nil {
		m.dirty = true
		m.status = app.MsgSaveFailedRetry
		m.showErrorf(service.MessageOf(msg.err))
		return m, nil
	}

	m.dirty = false
	m.status = app.MsgSaved
	return m, cmdClearStatus()
}

// applyMutation runs mutate on a copy of the collection, swaps the copy in,
// moves to the next screen and saves. At most one save is in flight.
func (m appModel) applyMutation(mutate func(*models.SecretCollection) error, next func(*appModel)) (tea.Model, tea.Cmd) {
	if m.saving {
		m.status = app.MsgSaveInProgress
		return m, nil
	}

	updated := m.collection.Clone()
	if err := mutate(&updated); err != nil {
		m.logger.Error().Err(err).Msg("collection update failed")
		m.showErrorf(app.MsgInternal)
		return m, nil
	}

	m.collection = updated
	m.dirty = true
	m.list = m.list.refresh(m.collection)
	next(&m)

	cmd := m.persist()
	return m, cmd
}

func (m *appModel) persist() tea.Cmd {
	m.saving = true
	m.status = ""
	return cmdPersist(m.vault, m.handle, m.collection.Clone())
}

func (m appModel) retrySave() (tea.Model, tea.Cmd) {
	switch {
	case m.saving:
		m.status = app.MsgSaveInProgress
		return m, nil
	case !m.dirty:
		m.status = app.MsgNothingToSave
		return m, cmdClearStatus()
	}
	cmd := m.persist()
	return m, cmd
}

// requestQuit never ends the program while a save is writing the vault file.
func (m appModel) requestQuit() (tea.Model, tea.Cmd) {
	if m.saving {
		m.status = app.MsgQuitWhileSaving
		return m, nil
	}
	if !m.dirty {
		return m, tea.Quit
	}
	m.showConfirm = true
	m.confirm = confirmModel{
		prompt: "Changes are not saved yet. Quit anyway?",
		action: confirmQuit,
	}
	return m, nil
}

func (m appModel) updateUnlock(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			return m, tea.Quit
		case key.Matches(keyMsg, keys.revealInput):
			m.unlock = m.unlock.toggleReveal()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.unlock.submitting {
				return m, nil
			}
			password := m.unlock.input.Value()
			if password == "" {
				m.unlock.errMsg = "master password is required"
				return m, nil
			}
			m.unlock.submitting = true
			m.unlock.errMsg = ""
			return m, cmdUnlock(m.vault, password)
		}
	}

	if m.unlock.submitting {
		return m, nil
	}

	var cmd tea.Cmd
	m.unlock.input, cmd = m.unlock.input.Update(msg)
	return m, cmd
}

func (m appModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)

	if m.list.searching {
		if ok {
			switch {
			case key.Matches(keyMsg, keys.enter):
				m.list = m.list.stopSearch()
				return m, nil
			case key.Matches(keyMsg, keys.esc):
				m.list = m.list.clearSearch(m.collection)
				return m, nil
			}
		}
		var cmd tea.Cmd
		m.list.query, cmd = m.list.query.Update(msg)
		m.list = m.list.refresh(m.collection)
		return m, cmd
	}

	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		m.list = m.list.move(-1)
	case key.Matches(keyMsg, keys.down):
		m.list = m.list.move(1)
	case key.Matches(keyMsg, keys.enter):
		index, found := m.list.selected()
		if !found {
			return m, nil
		}
		m.detail = detailModel{index: index}
		m.currentScreen = screenDetail
	case key.Matches(keyMsg, keys.search):
		m.list = m.list.startSearch()
	case key.Matches(keyMsg, keys.esc):
		m.list = m.list.clearSearch(m.collection)
	case key.Matches(keyMsg, keys.newItem):
		m.openForm(models.SecretEntry{}, -1)
	case key.Matches(keyMsg, keys.retrySave):
		return m.retrySave()
	case key.Matches(keyMsg, keys.about):
		m.currentScreen = screenAbout
	case key.Matches(keyMsg, keys.quit):
		return m.requestQuit()
	}
	return m, nil
}

func (m appModel) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	entry, found := m.entryAt(m.detail.index)
	if !found {
		m.currentScreen = screenList
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.detail = detailModel{}
		m.currentScreen = screenList
	case key.Matches(keyMsg, keys.reveal):
		m.detail.revealed = !m.detail.revealed
	case key.Matches(keyMsg, keys.copy):
		return m, cmdCopyToClipboard(m.clip, entry.Secret)
	case key.Matches(keyMsg, keys.copyUser):
		return m, cmdCopyToClipboard(m.clip, entry.Username)
	case key.Matches(keyMsg, keys.edit):
		m.openForm(entry, m.detail.index)
	case key.Matches(keyMsg, keys.delete):
		m.showConfirm = true
		m.confirm = confirmModel{
			prompt: "Delete " + entry.Service + "?",
			action: confirmDelete,
			index:  m.detail.index,
		}
	case key.Matches(keyMsg, keys.retrySave):
		return m.retrySave()
	case key.Matches(keyMsg, keys.quit):
		return m.requestQuit()
	}
	return m, nil
}

func (m *appModel) openForm(entry models.SecretEntry, editIndex int) {
	m.form = newFormModel(entry, editIndex, m.settings.defaultLength)
	m.form.strength = m.vault.EstimateStrength(entry.Secret)
	m.currentScreen = screenForm
}

func (m appModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			if m.form.isNew() {
				m.currentScreen = screenList
			} else {
				m.detail = detailModel{index: m.form.editIndex}
				m.currentScreen = screenDetail
			}
			return m, nil
		case key.Matches(keyMsg, keys.tab), key.Matches(keyMsg, keys.fieldDown):
			m.form = m.form.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab), key.Matches(keyMsg, keys.fieldUp):
			m.form = m.form.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.generate):
			return m, cmdGenerate(m.vault, m.form.length)
		case key.Matches(keyMsg, keys.lengthUp):
			m.form = m.form.adjustLength(1)
			return m, nil
		case key.Matches(keyMsg, keys.lengthDown):
			m.form = m.form.adjustLength(-1)
			return m, nil
		case key.Matches(keyMsg, keys.revealInput):
			m.form = m.form.toggleReveal()
			return m, nil
		case key.Matches(keyMsg, keys.save):
			return m.submitForm()
		case key.Matches(keyMsg, keys.enter):
			if m.form.onLastField() {
				return m.submitForm()
			}
			m.form = m.form.focusNext()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(msg)
	if m.form.focus == formPassword {
		m.form.strength = m.vault.EstimateStrength(m.form.secret())
	}
	return m, cmd
}

func (m appModel) submitForm() (tea.Model, tea.Cmd) {
	entry := m.form.entry()
	if err := m.validator.Validate(m.ctx, entry); err != nil {
		m.form.errMsg = err.Error()
		return m, nil
	}
	m.form.errMsg = ""

	if m.form.isNew() {
		return m.applyMutation(
			func(c *models.SecretCollection) error {
				c.Add(entry)
				return nil
			},
			func(m *appModel) {
				m.detail = detailModel{index: m.collection.Len() - 1}
				m.currentScreen = screenDetail
			},
		)
	}

	index := m.form.editIndex
	return m.applyMutation(
		func(c *models.SecretCollection) error { return c.Replace(index, entry) },
		func(m *appModel) {
			m.detail = detailModel{index: index}
			m.currentScreen = screenDetail
		},
	)
}

func (m appModel) updateAbout(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if key.Matches(keyMsg, keys.esc) || key.Matches(keyMsg, keys.about) {
		m.currentScreen = screenList
	}
	return m, nil
}
