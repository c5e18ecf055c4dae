package tui

import (
	"github.com/MKhiriev/go-resin-keeper/models"
)

// snapshotMsg carries everything the screens render, read in one go after
// startup and after every published event.
type snapshotMsg struct {
	accounts   []models.Account
	characters []models.AccountCharacter
	selected   string
	err        error
}

type eventMsg models.Event

type clockTickMsg struct{}

type accountSavedMsg struct {
	account models.Account
	err     error
}

// opDoneMsg reports the outcome of a fire-and-forget service call.
type opDoneMsg struct {
	status string
	err    error
}

type pastedMsg struct {
	text string
	err  error
}

type clearStatusMsg struct{}
