package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
)

type unlockModel struct {
	input      textinput.Model
	creating   bool
	submitting bool
	revealed   bool
	errMsg     string
}

func newUnlockModel() unlockModel {
	input := textinput.New()
	input.Placeholder = "master password"
	input.Width = 40
	input.EchoMode = textinput.EchoPassword
	input.EchoCharacter = '*'
	input.Focus()

	return unlockModel{input: input}
}

func (m unlockModel) toggleReveal() unlockModel {
	m.revealed = !m.revealed
	if m.revealed {
		m.input.EchoMode = textinput.EchoNormal
	} else {
		m.input.EchoMode = textinput.EchoPassword
	}
	return m
}

// fail keeps the screen for another attempt and drops the rejected password.
func (m unlockModel) fail(message string) unlockModel {
	m.submitting = false
	m.errMsg = message
	m.input.Reset()
	return m
}

func (m unlockModel) View() string {
	title := "UNLOCK VAULT"
	action := "unlock"
	if m.creating {
		title = "CREATE VAULT"
		action = "create"
	}

	var b strings.Builder
	if m.creating {
		b.WriteString("No vault file found. The password entered now will protect\n")
		b.WriteString("the new vault; it cannot be recovered if forgotten.\n\n")
	}
	b.WriteString("Master password: ")
	b.WriteString(m.input.View())

	switch {
	case m.submitting:
		b.WriteString("\n\nderiving key...")
	case m.errMsg != "":
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render(m.errMsg))
	}

	return renderPage(title, b.String(), "enter: "+action+"  ctrl+r: show/hide  esc: quit")
}
