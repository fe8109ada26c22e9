package tui

import "github.com/charmbracelet/lipgloss"

// Theme is the active color scheme. The app holds one instance behind a
// shared pointer and swaps its contents when the user toggles modes, so
// every view picks up the change on the next render.
type Theme struct {
	Dark bool

	Primary lipgloss.Color
	Danger  lipgloss.Color
	Subtle  lipgloss.Color

	Title     lipgloss.Style
	Muted     lipgloss.Style
	Success   lipgloss.Style
	Error     lipgloss.Style
	Highlight lipgloss.Style

	ActiveTab   lipgloss.Style
	InactiveTab lipgloss.Style
	Header      lipgloss.Style
	Footer      lipgloss.Style

	Panel        lipgloss.Style
	ActivePanel  lipgloss.Style
	SelectedItem lipgloss.Style
	NormalItem   lipgloss.Style

	DayCell     lipgloss.Style
	DayToday    lipgloss.Style
	DaySelected lipgloss.Style
	DayOutside  lipgloss.Style
}

// Dark mirrors the original app's dark palette around the same #1e90ff
// primary.
func DarkTheme() Theme {
	primary := lipgloss.Color("#1e90ff")
	danger := lipgloss.Color("#ff4d4f")
	fg := lipgloss.Color("#ffffff")
	muted := lipgloss.Color("#888888")
	subtle := lipgloss.Color("#555555")

	return Theme{
		Dark:    true,
		Primary: primary,
		Danger:  danger,
		Subtle:  subtle,

		Title:     lipgloss.NewStyle().Bold(true).Foreground(fg),
		Muted:     lipgloss.NewStyle().Foreground(muted),
		Success:   lipgloss.NewStyle().Foreground(lipgloss.Color("#32cd32")),
		Error:     lipgloss.NewStyle().Foreground(danger),
		Highlight: lipgloss.NewStyle().Foreground(primary).Bold(true),

		ActiveTab: lipgloss.NewStyle().
			Bold(true).
			Foreground(primary).
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(primary).
			Padding(0, 2),
		InactiveTab: lipgloss.NewStyle().Foreground(muted).Padding(0, 2),
		Header:      lipgloss.NewStyle().Padding(0, 1),
		Footer:      lipgloss.NewStyle().Foreground(muted).Padding(0, 1),

		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(subtle).
			Padding(1, 2),
		ActivePanel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primary).
			Padding(1, 2),
		SelectedItem: lipgloss.NewStyle().Foreground(primary).Bold(true),
		NormalItem:   lipgloss.NewStyle().Foreground(fg),

		DayCell:     lipgloss.NewStyle().Foreground(fg).Width(4).Align(lipgloss.Right),
		DayToday:    lipgloss.NewStyle().Foreground(primary).Bold(true).Width(4).Align(lipgloss.Right),
		DaySelected: lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Background(primary).Bold(true).Width(4).Align(lipgloss.Right),
		DayOutside:  lipgloss.NewStyle().Foreground(subtle).Width(4).Align(lipgloss.Right),
	}
}

func LightTheme() Theme {
	primary := lipgloss.Color("#1e90ff")
	danger := lipgloss.Color("#ff4d4f")
	fg := lipgloss.Color("#000000")
	muted := lipgloss.Color("#666666")
	subtle := lipgloss.Color("#cccccc")

	return Theme{
		Dark:    false,
		Primary: primary,
		Danger:  danger,
		Subtle:  subtle,

		Title:     lipgloss.NewStyle().Bold(true).Foreground(fg),
		Muted:     lipgloss.NewStyle().Foreground(muted),
		Success:   lipgloss.NewStyle().Foreground(lipgloss.Color("#228b22")),
		Error:     lipgloss.NewStyle().Foreground(danger),
		Highlight: lipgloss.NewStyle().Foreground(primary).Bold(true),

		ActiveTab: lipgloss.NewStyle().
			Bold(true).
			Foreground(primary).
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(primary).
			Padding(0, 2),
		InactiveTab: lipgloss.NewStyle().Foreground(muted).Padding(0, 2),
		Header:      lipgloss.NewStyle().Padding(0, 1),
		Footer:      lipgloss.NewStyle().Foreground(muted).Padding(0, 1),

		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(subtle).
			Padding(1, 2),
		ActivePanel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primary).
			Padding(1, 2),
		SelectedItem: lipgloss.NewStyle().Foreground(primary).Bold(true),
		NormalItem:   lipgloss.NewStyle().Foreground(fg),

		DayCell:     lipgloss.NewStyle().Foreground(fg).Width(4).Align(lipgloss.Right),
		DayToday:    lipgloss.NewStyle().Foreground(primary).Bold(true).Width(4).Align(lipgloss.Right),
		DaySelected: lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Background(primary).Bold(true).Width(4).Align(lipgloss.Right),
		DayOutside:  lipgloss.NewStyle().Foreground(subtle).Width(4).Align(lipgloss.Right),
	}
}
