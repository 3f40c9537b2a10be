package tui

import (
	"fmt"

	"github.com/MKhiriev/go-pass-vault/models"
)

type detailModel struct {
	index    int
	revealed bool
}

func (m detailModel) View(entry models.SecretEntry) string {
	password := maskSecret(entry.Secret)
	if m.revealed {
		password = valueOrDash(entry.Secret)
	}

	data := fmt.Sprintf("Service:  %s\n", entry.Service)
	data += fmt.Sprintf("Username: %s\n", valueOrDash(entry.Username))
	data += fmt.Sprintf("Password: %s", password)

	return renderPage(entry.Service, data,
		"r: reveal  c: copy password  u: copy username  e: edit  d: delete  esc: back")
}
