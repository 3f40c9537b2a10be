package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-pass-vault/models"
)

const uiDivider = "──────────────────────────────────────────────────────"

const maskedSecret = "••••••••"

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		lines := strings.Split(data, "\n")
		for _, line := range lines {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  -\n")
	}

	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("  ")
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}
	b.WriteString("  " + helpStyle.Render("ctrl+c: quit"))

	return b.String()
}

func valueOrDash(v string) string {
	if v == "" {
		return "-"
	}
	return v
}

func maskSecret(v string) string {
	if v == "" {
		return "-"
	}
	return maskedSecret
}

// fitText shortens v to at most max characters.
func fitText(v string, max int) string {
	if max <= 0 || utf8.RuneCountInString(v) <= max {
		return v
	}
	runes := []rune(v)
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}

var strengthLabels = [...]string{"very weak", "weak", "fair", "strong", "very strong"}

func renderStrength(s models.PasswordStrength) string {
	score := min(max(s.Score, 0), len(strengthLabels)-1)
	bar := strings.Repeat("█", score+1) + strings.Repeat("░", len(strengthLabels)-1-score)

	meter := strengthStyles[score].Render(bar + " " + strengthLabels[score])
	if s.CrackTime == "" {
		return meter
	}
	return fmt.Sprintf("%s  (%.0f bits, cracked in %s)", meter, s.Entropy, s.CrackTime)
}
