package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/GURROLAG/appAgenda/internal/auth"
	"github.com/GURROLAG/appAgenda/internal/export"
	"github.com/GURROLAG/appAgenda/internal/store"
)

// App is the root Bubble Tea model.
type App struct {
	store  *store.Store
	auth   *auth.Service
	theme  *Theme
	width  int
	height int

	root       rootState
	activeView viewState

	showHelp      bool
	exportPicking bool
	exportCursor  int

	login    loginModel
	calendar calendarModel
	overview overviewModel
	profile  profileModel

	help   help.Model
	status statusMsg

	// Store and auth notify on their own goroutines; the channels bridge
	// them into the message loop.
	snapshots  chan []store.Event
	authStates chan *store.Account
	unsubStore func()
	unsubAuth  func()
}

func NewApp(s *store.Store, a *auth.Service, theme *Theme, weekStart time.Weekday) App {
	h := help.New()
	h.ShowAll = false

	app := App{
		store:      s,
		auth:       a,
		theme:      theme,
		root:       rootLoading,
		activeView: viewCalendar,
		login:      newLoginModel(a, theme),
		calendar:   newCalendarModel(s, theme, weekStart),
		overview:   newOverviewModel(theme),
		profile:    newProfileModel(a, theme),
		help:       h,
		snapshots:  make(chan []store.Event, 8),
		authStates: make(chan *store.Account, 8),
	}

	snapshots := app.snapshots
	app.unsubStore = s.Subscribe(func(events []store.Event) {
		snapshots <- events
	})
	states := app.authStates
	app.unsubAuth = a.OnStateChanged(func(acct *store.Account) {
		states <- acct
	})
	return app
}

func (a App) Init() tea.Cmd {
	svc := a.auth
	return tea.Batch(
		a.waitSnapshot(),
		a.waitAuthState(),
		a.login.Init(),
		func() tea.Msg {
			// Resolves through the auth state stream.
			svc.Restore()
			return nil
		},
	)
}

func (a App) waitSnapshot() tea.Cmd {
	ch := a.snapshots
	return func() tea.Msg {
		return snapshotMsg{events: <-ch}
	}
}

func (a App) waitAuthState() tea.Cmd {
	ch := a.authStates
	return func() tea.Msg {
		return authStateMsg{account: <-ch}
	}
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		contentHeight := a.height - 4 // header + footer
		a.login.setSize(a.width, a.height)
		a.calendar.setSize(a.width, contentHeight)
		a.overview.setSize(a.width, contentHeight)
		a.profile.setSize(a.width, contentHeight)
		return a, nil

	case snapshotMsg:
		a.calendar.setEvents(msg.events)
		a.overview.setEvents(msg.events)
		return a, a.waitSnapshot()

	case authStateMsg:
		if msg.account == nil {
			if a.root == rootTabs {
				// Fresh form for the next sign-in.
				a.login = newLoginModel(a.auth, a.theme)
				a.login.setSize(a.width, a.height)
			}
			a.root = rootLogin
			a.calendar.setOwner("")
			a.profile.setAccount(nil)
			return a, tea.Batch(a.login.Init(), a.waitAuthState())
		}
		a.root = rootTabs
		a.activeView = viewCalendar
		a.calendar.setOwner(msg.account.ID)
		a.profile.setAccount(msg.account)
		return a, a.waitAuthState()

	case authFailedMsg:
		var cmd tea.Cmd
		a.login, cmd = a.login.update(msg)
		return a, cmd

	case statusMsg:
		a.status = msg
		return a, nil

	case animTickMsg:
		var cmd tea.Cmd
		a.calendar, cmd = a.calendar.update(msg)
		return a, cmd

	case exportDoneMsg:
		a.status = statusMsg{text: "Exported to " + msg.path}
		return a, nil

	case tea.KeyMsg:
		return a.updateKey(msg)
	}

	return a.updateActiveView(msg)
}

func (a App) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return a, a.quit()
	}

	switch a.root {
	case rootLoading:
		return a, nil
	case rootLogin:
		var cmd tea.Cmd
		a.login, cmd = a.login.update(msg)
		return a, cmd
	}

	if a.exportPicking {
		return a.updateExportPicker(msg)
	}

	// A capturing child (event form, confirm dialog) sees every key.
	if a.isFormActive() {
		return a.updateActiveView(msg)
	}

	switch {
	case key.Matches(msg, keys.Quit):
		return a, a.quit()
	case key.Matches(msg, keys.Help):
		a.showHelp = !a.showHelp
		a.help.ShowAll = a.showHelp
		return a, nil
	case key.Matches(msg, keys.Theme):
		return a, a.toggleTheme()
	case key.Matches(msg, keys.Export):
		a.exportPicking = true
		a.exportCursor = 0
		return a, nil
	case key.Matches(msg, keys.Tab1):
		a.activeView = viewCalendar
		return a, nil
	case key.Matches(msg, keys.Tab2):
		a.activeView = viewOverview
		return a, nil
	case key.Matches(msg, keys.Tab3):
		a.activeView = viewProfile
		return a, nil
	case key.Matches(msg, keys.Tab):
		a.activeView = (a.activeView + 1) % 3
		return a, nil
	}

	return a.updateActiveView(msg)
}

func (a App) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.root {
	case rootLogin:
		a.login, cmd = a.login.update(msg)
		return a, cmd
	case rootLoading:
		return a, nil
	}

	switch a.activeView {
	case viewCalendar:
		a.calendar, cmd = a.calendar.update(msg)
	case viewOverview:
		a.overview, cmd = a.overview.update(msg)
	case viewProfile:
		a.profile, cmd = a.profile.update(msg)
	}
	return a, cmd
}

func (a App) isFormActive() bool {
	switch a.activeView {
	case viewCalendar:
		return a.calendar.formActive()
	case viewProfile:
		return a.profile.confirmActive()
	}
	return false
}

// toggleTheme swaps the shared theme in place and persists the choice.
func (a App) toggleTheme() tea.Cmd {
	if a.theme.Dark {
		*a.theme = LightTheme()
	} else {
		*a.theme = DarkTheme()
	}

	s, dark := a.store, a.theme.Dark
	return func() tea.Msg {
		v := "false"
		if dark {
			v = "true"
		}
		if err := s.SetSetting("dark_mode", v); err != nil {
			return statusMsg{text: fmt.Sprintf("Theme error: %v", err), isError: true}
		}
		return nil
	}
}

func (a App) quit() tea.Cmd {
	a.unsubStore()
	a.unsubAuth()
	return tea.Quit
}

func (a App) View() string {
	if a.width == 0 {
		return "Loading..."
	}

	switch a.root {
	case rootLoading:
		return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center,
			a.theme.Muted.Render("Loading…"))
	case rootLogin:
		return a.login.view()
	}

	header := a.renderHeader()
	footer := a.renderFooter()

	var content string
	switch a.activeView {
	case viewCalendar:
		content = a.calendar.view()
	case viewOverview:
		content = a.overview.view()
	case viewProfile:
		content = a.profile.view()
	}

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := a.height - headerHeight - footerHeight
	if contentHeight < 1 {
		contentHeight = 1
	}

	if a.exportPicking {
		content = a.renderExportPicker()
	}

	content = lipgloss.NewStyle().
		Width(a.width).
		Height(contentHeight).
		Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
}

func (a App) renderHeader() string {
	var tabs []string
	for i, name := range viewNames {
		if viewState(i) == a.activeView {
			tabs = append(tabs, a.theme.ActiveTab.Render(name))
		} else {
			tabs = append(tabs, a.theme.InactiveTab.Render(name))
		}
	}

	tabRow := lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...)

	title := a.theme.Highlight.Render("appagenda")
	gap := a.width - lipgloss.Width(title) - lipgloss.Width(tabRow) - 4
	if gap < 1 {
		gap = 1
	}
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	return a.theme.Header.Render(
		lipgloss.JoinHorizontal(lipgloss.Bottom, title, spacer, tabRow),
	)
}

func (a App) renderFooter() string {
	helpView := a.help.View(keys)

	status := ""
	if a.status.text != "" {
		if a.status.isError {
			status = a.theme.Error.Render(" " + a.status.text)
		} else {
			status = a.theme.Muted.Render(" " + a.status.text)
		}
	}

	left := a.theme.Footer.Render(helpView)

	gap := a.width - lipgloss.Width(left) - lipgloss.Width(status) - 2
	if gap < 1 {
		gap = 1
	}
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	return lipgloss.JoinHorizontal(lipgloss.Bottom, left, spacer, status)
}

func (a App) renderExportPicker() string {
	title := a.theme.Title.Render("Export Format")
	formats := []string{"iCalendar (.ics)", "CSV"}
	var rows []string
	rows = append(rows, title)
	rows = append(rows, "")
	for i, f := range formats {
		cursor := "  "
		style := a.theme.NormalItem
		if i == a.exportCursor {
			cursor = "> "
			style = a.theme.SelectedItem
		}
		rows = append(rows, style.Render(cursor+f))
	}
	rows = append(rows, "")
	rows = append(rows, a.theme.Muted.Render("  enter: export  esc: cancel"))

	w := a.width - 4
	return a.theme.ActivePanel.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (a App) updateExportPicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Up):
		if a.exportCursor > 0 {
			a.exportCursor--
		}
	case key.Matches(msg, keys.Down):
		if a.exportCursor < 1 {
			a.exportCursor++
		}
	case key.Matches(msg, keys.Enter):
		a.exportPicking = false
		return a, a.doExport(a.exportCursor)
	case key.Matches(msg, keys.Back):
		a.exportPicking = false
	}
	return a, nil
}

func (a App) doExport(format int) tea.Cmd {
	s := a.store
	return func() tea.Msg {
		events, err := s.ListEvents()
		if err != nil {
			return statusMsg{text: fmt.Sprintf("Export error: %v", err), isError: true}
		}

		home, _ := os.UserHomeDir()
		dateStr := time.Now().Format("2006-01-02")

		var path string
		if format == 0 {
			path = filepath.Join(home, fmt.Sprintf("appagenda-export-%s.ics", dateStr))
			if err := export.ToICS(events, path); err != nil {
				return statusMsg{text: fmt.Sprintf("ICS error: %v", err), isError: true}
			}
		} else {
			path = filepath.Join(home, fmt.Sprintf("appagenda-export-%s.csv", dateStr))
			if err := export.ToCSV(events, path); err != nil {
				return statusMsg{text: fmt.Sprintf("CSV error: %v", err), isError: true}
			}
		}

		return exportDoneMsg{path: path}
	}
}
