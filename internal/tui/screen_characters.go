package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-resin-keeper/models"
)

type charactersModel struct {
	items    []models.AccountCharacter
	idx      int
	selected string
	loading  bool
}

func (m charactersModel) current() (models.AccountCharacter, bool) {
	if len(m.items) == 0 || m.idx < 0 || m.idx >= len(m.items) {
		return models.AccountCharacter{}, false
	}
	return m.items[m.idx], true
}

func (m charactersModel) find(uid string) (models.AccountCharacter, bool) {
	for _, c := range m.items {
		if c.UID == uid {
			return c, true
		}
	}
	return models.AccountCharacter{}, false
}

// clamp keeps the cursor inside the list after a reload.
func (m charactersModel) clamp() charactersModel {
	if m.idx >= len(m.items) {
		m.idx = len(m.items) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
	return m
}

func (m charactersModel) View(now time.Time, latest func(uid string) (models.RealTimeNote, bool)) string {
	var b strings.Builder

	switch {
	case m.loading:
		b.WriteString("Loading...")
	case len(m.items) == 0:
		b.WriteString("No characters yet. Press a to add an account.")
	default:
		for i, c := range m.items {
			mark := " "
			if c.UID == m.selected {
				mark = "*"
			}

			line := fmt.Sprintf("%s%s %-12s %-10s %-14s Lv.%-3d %s",
				cursor(i == m.idx), mark,
				fitText(c.Nickname, 12), c.UID, fitText(c.ServerName, 14), c.Level,
				statusBadge(c.Status))
			if c.AccountStatus != models.StatusReady {
				line += " account " + statusBadge(c.AccountStatus)
			}
			if note, ok := latest(c.UID); ok {
				line += fmt.Sprintf("  resin %d/%d", note.ResinAt(now), note.MaxResin)
			}

			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	return renderPage("CHARACTERS",
		strings.TrimRight(b.String(), "\n"),
		"enter: select  r: refresh notes  a: accounts  v: about  q: quit")
}
