package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/GURROLAG/appAgenda/internal/auth"
)

// loginModel is the unauthenticated root: one huh form for both sign-in
// and account creation. Auth errors come back as messages and are shown
// above the form; success is observed through the auth state stream, not
// here.
type loginModel struct {
	auth   *auth.Service
	theme  *Theme
	width  int
	height int

	form *huh.Form

	// Pointers survive value copies of the model.
	mode     *string
	email    *string
	password *string

	errText    string
	submitting bool
}

func newLoginModel(a *auth.Service, theme *Theme) loginModel {
	mode, email, password := "signin", "", ""
	m := loginModel{
		auth:     a,
		theme:    theme,
		mode:     &mode,
		email:    &email,
		password: &password,
	}
	m.form = m.buildForm()
	return m
}

func (m loginModel) buildForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("AppAgenda").
				Options(
					huh.NewOption("Sign in", "signin"),
					huh.NewOption("Create account", "signup"),
				).
				Value(m.mode),
			huh.NewInput().Title("Email").Value(m.email),
			huh.NewInput().Title("Password").EchoMode(huh.EchoModePassword).Value(m.password),
		),
	).WithShowHelp(true).WithShowErrors(true)
}

func (m *loginModel) setSize(w, h int) {
	m.width = w
	m.height = h
}

func (m loginModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m loginModel) update(msg tea.Msg) (loginModel, tea.Cmd) {
	if failed, ok := msg.(authFailedMsg); ok {
		m.errText = auth.Message(failed.err)
		m.submitting = false
		m.form = m.buildForm()
		return m, m.form.Init()
	}

	if m.submitting {
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		return m.submit()
	}
	return m, cmd
}

func (m loginModel) submit() (loginModel, tea.Cmd) {
	email, password, mode := *m.email, *m.password, *m.mode

	if email == "" || password == "" {
		m.errText = "Email and password are required"
		m.form = m.buildForm()
		return m, m.form.Init()
	}
	if len(password) < 6 {
		m.errText = auth.Message(auth.ErrWeakPassword)
		m.form = m.buildForm()
		return m, m.form.Init()
	}

	m.errText = ""
	m.submitting = true
	svc := m.auth
	return m, func() tea.Msg {
		var err error
		if mode == "signup" {
			_, err = svc.SignUp(email, password)
		} else {
			_, err = svc.SignIn(email, password)
		}
		if err != nil {
			return authFailedMsg{err: err}
		}
		// Success arrives through the auth state stream.
		return nil
	}
}

func (m loginModel) view() string {
	th := m.theme

	rows := []string{
		th.Highlight.Render("◉ AppAgenda"),
		th.Muted.Render("Sign in to continue"),
		"",
	}
	if m.errText != "" {
		rows = append(rows, th.Error.Render(m.errText), "")
	}
	rows = append(rows, m.form.View())

	panel := th.ActivePanel.Width(min(m.width-4, 60)).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, panel)
}
