package tui

import (
	"strings"

	"github.com/MKhiriev/go-resin-keeper/models"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
)

var regions = []models.Region{models.RegionGlobal, models.RegionMainland}

type addAccountModel struct {
	regionIdx  int
	cookie     textinput.Model
	spinner    spinner.Model
	submitting bool
}

func newAddAccountModel() addAccountModel {
	cookie := textinput.New()
	cookie.Placeholder = "ltuid_v2=...; ltoken_v2=..."
	cookie.EchoMode = textinput.EchoPassword
	cookie.EchoCharacter = '•'
	cookie.Width = 50
	cookie.Focus()

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return addAccountModel{cookie: cookie, spinner: s}
}

func (m addAccountModel) region() models.Region {
	return regions[m.regionIdx]
}

func (m addAccountModel) toggleRegion() addAccountModel {
	m.regionIdx = (m.regionIdx + 1) % len(regions)
	return m
}

func (m addAccountModel) value() string {
	return strings.TrimSpace(m.cookie.Value())
}

func (m addAccountModel) View() string {
	var b strings.Builder

	var opts []string
	for i, r := range regions {
		if i == m.regionIdx {
			opts = append(opts, cursorStyle.Render("("+string(r)+")"))
		} else {
			opts = append(opts, " "+string(r)+" ")
		}
	}
	b.WriteString(field("Region:", strings.Join(opts, " ")))
	b.WriteString(field("Cookie:", "["+m.cookie.View()+"]"))

	if m.submitting {
		b.WriteString("\n")
		b.WriteString(m.spinner.View())
		b.WriteString(" fetching characters...")
	}

	return renderPage("ADD ACCOUNT",
		strings.TrimRight(b.String(), "\n"),
		"tab/←/→: region  ctrl+v: paste  enter: save  esc: cancel")
}
