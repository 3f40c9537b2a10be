package tui

type confirmAction int

const (
	confirmDelete confirmAction = iota
	confirmQuit
)

type confirmModel struct {
	prompt string
	action confirmAction
	index  int
}

func (m confirmModel) View() string {
	content := m.prompt + "\n\n"
	content += "y: yes    n: no"
	return overlayBoxStyle.Render(content)
}
