package tui

import (
	"github.com/MKhiriev/go-resin-keeper/models"
	"github.com/charmbracelet/lipgloss"
)

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
	cursorStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	labelStyle      = lipgloss.NewStyle().Width(26)
)

var statusColors = map[models.AccountStatus]lipgloss.Color{
	models.StatusAdding:   lipgloss.Color("11"),
	models.StatusUpdating: lipgloss.Color("11"),
	models.StatusReady:    lipgloss.Color("10"),
	models.StatusExpired:  lipgloss.Color("13"),
	models.StatusFail:     lipgloss.Color("9"),
	models.StatusDisabled: lipgloss.Color("8"),
}

func statusBadge(s models.AccountStatus) string {
	return lipgloss.NewStyle().Foreground(statusColors[s]).Render("[" + s.String() + "]")
}
