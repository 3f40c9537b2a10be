package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/models"
	"github.com/charmbracelet/bubbles/textinput"
)

const (
	formService = iota
	formUsername
	formPassword
	formFieldCount
)

var formLabels = [formFieldCount]string{"Service:  ", "Username: ", "Password: "}

// formModel edits one entry. editIndex is -1 for a new entry.
type formModel struct {
	inputs    [formFieldCount]textinput.Model
	focus     int
	editIndex int
	length    int
	strength  models.PasswordStrength
	revealed  bool
	errMsg    string
}

func newFormModel(entry models.SecretEntry, editIndex, length int) formModel {
	var inputs [formFieldCount]textinput.Model
	for i := range inputs {
		in := textinput.New()
		in.Width = 40
		in.CharLimit = 1024
		in.Prompt = ""
		inputs[i] = in
	}

	inputs[formService].Placeholder = "example.com"
	inputs[formService].SetValue(entry.Service)
	inputs[formUsername].Placeholder = "optional"
	inputs[formUsername].SetValue(entry.Username)
	inputs[formPassword].SetValue(entry.Secret)
	inputs[formPassword].EchoMode = textinput.EchoPassword
	inputs[formPassword].EchoCharacter = '*'
	inputs[formService].Focus()

	return formModel{
		inputs:    inputs,
		editIndex: editIndex,
		length:    clampLength(length),
	}
}

func (m formModel) isNew() bool {
	return m.editIndex < 0
}

func (m formModel) onLastField() bool {
	return m.focus == formFieldCount-1
}

func (m formModel) focusNext() formModel {
	return m.setFocus((m.focus + 1) % formFieldCount)
}

func (m formModel) focusPrev() formModel {
	return m.setFocus((m.focus + formFieldCount - 1) % formFieldCount)
}

func (m formModel) setFocus(i int) formModel {
	m.inputs[m.focus].Blur()
	m.focus = i
	m.inputs[m.focus].Focus()
	return m
}

func (m formModel) adjustLength(delta int) formModel {
	m.length = clampLength(m.length + delta)
	return m
}

func (m formModel) toggleReveal() formModel {
	m.revealed = !m.revealed
	if m.revealed {
		m.inputs[formPassword].EchoMode = textinput.EchoNormal
	} else {
		m.inputs[formPassword].EchoMode = textinput.EchoPassword
	}
	return m
}

func (m formModel) setSecret(secret string, strength models.PasswordStrength) formModel {
	m.inputs[formPassword].SetValue(secret)
	m.strength = strength
	return m
}

func (m formModel) secret() string {
	return m.inputs[formPassword].Value()
}

// entry returns the form contents. Only the service name is trimmed;
// leading or trailing spaces in a password are kept.
func (m formModel) entry() models.SecretEntry {
	return models.SecretEntry{
		Service:  strings.TrimSpace(m.inputs[formService].Value()),
		Username: m.inputs[formUsername].Value(),
		Secret:   m.inputs[formPassword].Value(),
	}
}

func (m formModel) View() string {
	var b strings.Builder
	for i := range m.inputs {
		marker := "  "
		if i == m.focus {
			marker = "> "
		}
		b.WriteString(marker)
		b.WriteString(formLabels[i])
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString("Strength: ")
	b.WriteString(renderStrength(m.strength))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Generator length: %d", m.length))

	if m.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render(m.errMsg))
	}

	title := "NEW ENTRY"
	if !m.isNew() {
		title = "EDIT ENTRY"
	}
	return renderPage(title, b.String(),
		"tab: next field  ctrl+g: generate  pgup/pgdown: length  ctrl+r: show/hide  ctrl+s: save  esc: cancel")
}

func clampLength(n int) int {
	return min(max(n, config.MinGeneratorLength), config.MaxGeneratorLength)
}
