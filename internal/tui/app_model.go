package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-resin-keeper/internal/service"
	"github.com/MKhiriev/go-resin-keeper/internal/utils"
	"github.com/MKhiriev/go-resin-keeper/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

type screen int

const (
	screenCharacters screen = iota
	screenNotes
	screenAccounts
	screenAddAccount
	screenBuildInfo
)

// clockInterval drives the live resin estimate between two fetches.
const clockInterval = time.Second

type appModel struct {
	ctx           context.Context
	services      *service.ClientServices
	events        <-chan models.Event
	now           func() time.Time
	currentScreen screen

	characters charactersModel
	accounts   accountsModel
	addAccount addAccountModel

	status        string
	showError     bool
	errorOverlay  errorOverlayModel
	showConfirm   bool
	confirm       confirmModel
	pendingDelete string
}

func newAppModel(ctx context.Context, services *service.ClientServices, events <-chan models.Event) appModel {
	return appModel{
		ctx:           ctx,
		services:      services,
		events:        events,
		now:           time.Now,
		currentScreen: screenCharacters,
		characters:    charactersModel{loading: true},
		addAccount:    newAddAccountModel(),
	}
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(m.cmdLoadSnapshot(), m.waitForEvent(), cmdClock())
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showConfirm {
			if key.Matches(msg, keys.yes) {
				m.showConfirm = false
				id := m.pendingDelete
				m.pendingDelete = ""
				return m, m.cmdDeleteAccount(id)
			}
			if key.Matches(msg, keys.no) || key.Matches(msg, keys.esc) {
				m.showConfirm = false
				m.pendingDelete = ""
			}
			return m, nil
		}
	case snapshotMsg:
		m.characters.loading = false
		if msg.err != nil {
			m.showErrorf(msg.err)
			return m, nil
		}
		m.accounts.items = msg.accounts
		m.accounts = m.accounts.clamp()
		m.characters.items = msg.characters
		m.characters.selected = msg.selected
		m.characters = m.characters.clamp()
		if m.currentScreen == screenNotes {
			if _, ok := m.characters.find(m.characters.selected); !ok {
				m.currentScreen = screenCharacters
			}
		}
		return m, nil
	case eventMsg:
		return m, tea.Batch(m.cmdLoadSnapshot(), m.waitForEvent())
	case clockTickMsg:
		return m, cmdClock()
	case accountSavedMsg:
		m.addAccount.submitting = false
		if msg.err != nil {
			m.showErrorf(msg.err)
			return m, nil
		}
		m.addAccount = newAddAccountModel()
		m.currentScreen = screenAccounts
		m.status = fmt.Sprintf("account %s added", msg.account.MihoyoUID)
		return m, tea.Batch(m.cmdLoadSnapshot(), cmdClearStatus())
	case opDoneMsg:
		if msg.err != nil {
			m.showErrorf(msg.err)
			return m, nil
		}
		m.status = msg.status
		return m, cmdClearStatus()
	case pastedMsg:
		if msg.err != nil {
			m.showErrorf(fmt.Errorf("paste from clipboard: %w", msg.err))
			return m, nil
		}
		m.addAccount.cookie.SetValue(msg.text)
		return m, nil
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenCharacters:
		return m.updateCharacters(msg)
	case screenNotes:
		return m.updateNotes(msg)
	case screenAccounts:
		return m.updateAccounts(msg)
	case screenAddAccount:
		return m.updateAddAccount(msg)
	case screenBuildInfo:
		return m.updateBuildInfo(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	now := m.now()

	var body string
	switch m.currentScreen {
	case screenCharacters:
		body = m.characters.View(now, m.services.NotesService.Latest)
	case screenNotes:
		c, _ := m.characters.find(m.characters.selected)
		note, ok := m.services.NotesService.Latest(c.UID)
		body = renderNotes(c, note, ok, now)
	case screenAccounts:
		body = m.accounts.View()
	case screenAddAccount:
		body = m.addAccount.View()
	case screenBuildInfo:
		body = renderBuildInfoWindow(m.services.AppInfoService.BuildInfo(), m.services.AppInfoService.GetAppVersion(m.ctx))
	}

	if m.status != "" {
		body += "\n\n" + m.status
	}
	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m *appModel) showErrorf(err error) {
	m.showError = true
	m.errorOverlay.message = service.UserMessage(err)
}

func (m appModel) updateCharacters(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.characters.idx > 0 {
			m.characters.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.characters.idx < len(m.characters.items)-1 {
			m.characters.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		c, ok := m.characters.current()
		if !ok {
			return m, nil
		}
		if c.AccountStatus == models.StatusDisabled {
			m.showErrorf(service.ErrCharacterNotSelectable)
			return m, nil
		}
		m.characters.selected = c.UID
		m.currentScreen = screenNotes
		return m, m.cmdSelect(c.UID)
	case key.Matches(keyMsg, keys.refresh):
		c, ok := m.characters.current()
		if !ok {
			return m, nil
		}
		return m, m.cmdRefreshNotes(c.UID)
	case key.Matches(keyMsg, keys.accounts):
		m.currentScreen = screenAccounts
	case key.Matches(keyMsg, keys.info):
		m.currentScreen = screenBuildInfo
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) updateNotes(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenCharacters
	case key.Matches(keyMsg, keys.refresh):
		return m, m.cmdRefreshNotes(m.characters.selected)
	case key.Matches(keyMsg, keys.copy):
		return m, cmdCopyToClipboard(m.characters.selected)
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) updateAccounts(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenCharacters
	case key.Matches(keyMsg, keys.up):
		if m.accounts.idx > 0 {
			m.accounts.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.accounts.idx < len(m.accounts.items)-1 {
			m.accounts.idx++
		}
	case key.Matches(keyMsg, keys.newItem):
		m.addAccount = newAddAccountModel()
		m.currentScreen = screenAddAccount
	case key.Matches(keyMsg, keys.refreshAll):
		return m, m.cmdRefreshAll()
	case key.Matches(keyMsg, keys.refresh):
		if a, ok := m.accounts.current(); ok {
			return m, m.cmdRefreshAccount(a.ID)
		}
	case key.Matches(keyMsg, keys.disable):
		if a, ok := m.accounts.current(); ok {
			return m, m.cmdSetDisabled(a.ID, a.Status != models.StatusDisabled)
		}
	case key.Matches(keyMsg, keys.delete):
		if a, ok := m.accounts.current(); ok {
			m.showConfirm = true
			m.confirm.message = a.MihoyoUID
			m.pendingDelete = a.ID
		}
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) updateAddAccount(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.addAccount.submitting {
		if tick, ok := msg.(spinner.TickMsg); ok {
			var cmd tea.Cmd
			m.addAccount.spinner, cmd = m.addAccount.spinner.Update(tick)
			return m, cmd
		}
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenAccounts
			return m, nil
		case key.Matches(keyMsg, keys.tab), key.Matches(keyMsg, keys.left), key.Matches(keyMsg, keys.right):
			m.addAccount = m.addAccount.toggleRegion()
			return m, nil
		case key.Matches(keyMsg, keys.paste):
			return m, cmdPasteFromClipboard()
		case key.Matches(keyMsg, keys.enter):
			cookie := m.addAccount.value()
			if cookie == "" {
				m.showErrorf(utils.ErrMalformedCookie)
				return m, nil
			}
			m.addAccount.submitting = true
			return m, tea.Batch(m.addAccount.spinner.Tick, m.cmdAddAccount(m.addAccount.region(), cookie))
		}
	}

	var cmd tea.Cmd
	m.addAccount.cookie, cmd = m.addAccount.cookie.Update(msg)
	return m, cmd
}

func (m appModel) updateBuildInfo(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && (key.Matches(keyMsg, keys.esc) || key.Matches(keyMsg, keys.info)) {
		m.currentScreen = screenCharacters
	}
	return m, nil
}

func (m appModel) waitForEvent() tea.Cmd {
	events := m.events
	if events == nil {
		return nil
	}
	return func() tea.Msg {
		event, ok := <-events
		if !ok {
			return nil
		}
		return eventMsg(event)
	}
}

func (m appModel) cmdLoadSnapshot() tea.Cmd {
	ctx := m.ctx
	services := m.services
	return func() tea.Msg {
		accounts, err := services.AccountService.List(ctx)
		if err != nil {
			return snapshotMsg{err: err}
		}
		characters, err := services.AccountService.Characters(ctx)
		if err != nil {
			return snapshotMsg{err: err}
		}

		var selected string
		c, err := services.SelectionService.Selected(ctx)
		switch {
		case err == nil:
			selected = c.UID
		case !errors.Is(err, service.ErrNoSelection):
			return snapshotMsg{err: err}
		}

		return snapshotMsg{accounts: accounts, characters: characters, selected: selected}
	}
}

func (m appModel) cmdSelect(uid string) tea.Cmd {
	ctx := m.ctx
	services := m.services
	return func() tea.Msg {
		if _, err := services.SelectionService.Select(ctx, uid); err != nil {
			return opDoneMsg{err: err}
		}
		services.PollJob.Trigger()
		return opDoneMsg{}
	}
}

func (m appModel) cmdRefreshNotes(uid string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.NotesService
	return func() tea.Msg {
		_, err := svc.Refresh(ctx, uid)
		return opDoneMsg{status: "notes refreshed", err: err}
	}
}

func (m appModel) cmdAddAccount(region models.Region, cookie string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.AccountService
	return func() tea.Msg {
		account, err := svc.Add(ctx, region, cookie)
		return accountSavedMsg{account: account, err: err}
	}
}

func (m appModel) cmdRefreshAccount(id string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.AccountService
	return func() tea.Msg {
		_, err := svc.Refresh(ctx, id)
		return opDoneMsg{status: "account refreshed", err: err}
	}
}

func (m appModel) cmdRefreshAll() tea.Cmd {
	ctx := m.ctx
	svc := m.services.AccountService
	return func() tea.Msg {
		err := svc.RefreshAll(ctx)
		return opDoneMsg{status: "all accounts refreshed", err: err}
	}
}

func (m appModel) cmdSetDisabled(id string, disabled bool) tea.Cmd {
	ctx := m.ctx
	svc := m.services.AccountService
	return func() tea.Msg {
		_, err := svc.SetDisabled(ctx, id, disabled)
		status := "account enabled"
		if disabled {
			status = "account disabled"
		}
		return opDoneMsg{status: status, err: err}
	}
}

func (m appModel) cmdDeleteAccount(id string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.AccountService
	return func() tea.Msg {
		err := svc.Delete(ctx, id)
		return opDoneMsg{status: "account deleted", err: err}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return opDoneMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return opDoneMsg{status: "copied"}
	}
}

func cmdPasteFromClipboard() tea.Cmd {
	return func() tea.Msg {
		text, err := clipboard.ReadAll()
		return pastedMsg{text: text, err: err}
	}
}

func cmdClock() tea.Cmd {
	return tea.Tick(clockInterval, func(time.Time) tea.Msg {
		return clockTickMsg{}
	})
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
