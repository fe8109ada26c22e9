package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/GURROLAG/appAgenda/internal/auth"
	"github.com/GURROLAG/appAgenda/internal/store"
)

// profileModel shows the signed-in account and owns the sign-out
// confirmation.
type profileModel struct {
	auth   *auth.Service
	theme  *Theme
	width  int
	height int

	account *store.Account

	confirming bool
	cursor     int // 0 = cancel, 1 = sign out
}

func newProfileModel(a *auth.Service, theme *Theme) profileModel {
	return profileModel{auth: a, theme: theme}
}

func (p *profileModel) setSize(w, h int) {
	p.width = w
	p.height = h
}

func (p *profileModel) setAccount(acct *store.Account) {
	p.account = acct
}

func (p profileModel) confirmActive() bool { return p.confirming }

func (p profileModel) update(msg tea.Msg) (profileModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}

	if p.confirming {
		switch {
		case key.Matches(keyMsg, keys.Left), key.Matches(keyMsg, keys.Up):
			p.cursor = 0
		case key.Matches(keyMsg, keys.Right), key.Matches(keyMsg, keys.Down):
			p.cursor = 1
		case key.Matches(keyMsg, keys.Back):
			p.confirming = false
		case key.Matches(keyMsg, keys.Enter):
			p.confirming = false
			if p.cursor == 1 {
				svc := p.auth
				// The auth state stream flips the root back to login.
				return p, func() tea.Msg {
					svc.SignOut()
					return nil
				}
			}
		}
		return p, nil
	}

	if key.Matches(keyMsg, keys.Enter) {
		p.confirming = true
		p.cursor = 0
	}
	return p, nil
}

func (p profileModel) view() string {
	th := p.theme
	w := p.width - 4

	email := "—"
	if p.account != nil {
		email = p.account.Email
	}

	if p.confirming {
		cancel := "[ Cancel ]"
		out := "[ Sign out ]"
		if p.cursor == 0 {
			cancel = th.Highlight.Render("> " + cancel)
			out = "  " + out
		} else {
			cancel = "  " + cancel
			out = th.Error.Render("> " + out)
		}
		return th.ActivePanel.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left,
			th.Title.Render("Sign out"),
			"",
			"Sign out of "+email+"?",
			"",
			cancel+"   "+out,
		))
	}

	theme := "Light"
	if th.Dark {
		theme = "Dark"
	}

	return th.Panel.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left,
		th.Title.Render("Profile"),
		"",
		"  Signed in as  "+th.Highlight.Render(email),
		"  Theme         "+theme+th.Muted.Render("  (t toggles)"),
		"",
		th.Muted.Render("  enter: sign out"),
	))
}
