package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-resin-keeper/models"
)

type accountsModel struct {
	items []models.Account
	idx   int
}

func (m accountsModel) current() (models.Account, bool) {
	if len(m.items) == 0 || m.idx < 0 || m.idx >= len(m.items) {
		return models.Account{}, false
	}
	return m.items[m.idx], true
}

func (m accountsModel) clamp() accountsModel {
	if m.idx >= len(m.items) {
		m.idx = len(m.items) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
	return m
}

func (m accountsModel) View() string {
	var b strings.Builder

	if len(m.items) == 0 {
		b.WriteString("No accounts. Press n and paste a game record cookie.")
	}
	for i, a := range m.items {
		b.WriteString(fmt.Sprintf("%s%-9s %-12s %s", cursor(i == m.idx), a.Region, a.MihoyoUID, statusBadge(a.Status)))
		if a.LastError != "" {
			b.WriteString("  ")
			b.WriteString(errorStyle.Render(fitText(a.LastError, 48)))
		}
		b.WriteString("\n")
	}

	return renderPage("ACCOUNTS",
		strings.TrimRight(b.String(), "\n"),
		"n: add  r: refresh  R: refresh all  d: disable/enable  x: delete  esc: back")
}
