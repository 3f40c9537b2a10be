package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-pass-vault/models"
	"github.com/charmbracelet/bubbles/textinput"
)

const serviceColumnWidth = 28

// listModel shows the entries whose service matches the search query.
// matches holds collection indices and is rebuilt after every change to the
// collection, since removing an entry shifts the indices behind it.
type listModel struct {
	query     textinput.Model
	searching bool
	matches   []int
	cursor    int
}

func newListModel() listModel {
	query := textinput.New()
	query.Placeholder = "service"
	query.Width = 30
	query.Prompt = "/ "

	return listModel{query: query}
}

func (m listModel) refresh(collection models.SecretCollection) listModel {
	m.matches = collection.Search(m.query.Value())
	if m.cursor >= len(m.matches) {
		m.cursor = len(m.matches) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	return m
}

func (m listModel) move(delta int) listModel {
	next := m.cursor + delta
	if next >= 0 && next < len(m.matches) {
		m.cursor = next
	}
	return m
}

func (m listModel) selected() (int, bool) {
	if m.cursor < 0 || m.cursor >= len(m.matches) {
		return 0, false
	}
	return m.matches[m.cursor], true
}

func (m listModel) startSearch() listModel {
	m.searching = true
	m.query.Focus()
	return m
}

func (m listModel) stopSearch() listModel {
	m.searching = false
	m.query.Blur()
	return m
}

func (m listModel) clearSearch(collection models.SecretCollection) listModel {
	m = m.stopSearch()
	m.query.Reset()
	return m.refresh(collection)
}

func (m listModel) View(collection models.SecretCollection) string {
	var b strings.Builder

	if m.searching || m.query.Value() != "" {
		b.WriteString(m.query.View())
		b.WriteString("\n\n")
	}

	switch {
	case collection.Len() == 0:
		b.WriteString("No entries yet. Press n to add one.")
	case len(m.matches) == 0:
		b.WriteString("No matching entries.")
	default:
		for i, idx := range m.matches {
			entry := collection.Entries[idx]
			line := fmt.Sprintf("%-*s %s", serviceColumnWidth, fitText(entry.Service, serviceColumnWidth), valueOrDash(entry.Username))
			if i == m.cursor {
				b.WriteString(selectedStyle.Render("> " + line))
			} else {
				b.WriteString("  " + line)
			}
			if i < len(m.matches)-1 {
				b.WriteString("\n")
			}
		}
	}

	title := fmt.Sprintf("VAULT (%d)", collection.Len())
	hotKeys := "enter: open  /: search  n: new  w: retry save  v: about  q: quit"
	if m.searching {
		hotKeys = "enter: done  esc: clear search"
	}
	return renderPage(title, b.String(), hotKeys)
}
