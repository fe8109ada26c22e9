package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/GURROLAG/appAgenda/internal/agenda"
)

// Form field focus order.
const (
	fieldTitle = iota
	fieldDescription
	fieldColor
	fieldDate
	fieldTime
	fieldSave
	fieldCount
)

// formModel renders and drives the event form backed by an
// agenda.Session. The session owns the field buffers and the submit
// protocol; this model owns terminal input handling and the two picker
// sub-widgets.
type formModel struct {
	theme   *Theme
	session *agenda.Session
	mutator agenda.Mutator
	owner   string

	title textinput.Model
	desc  textinput.Model
	focus int

	colorIdx  int
	pickerDay time.Time // working value while the day picker is open
	clockPart int       // 0 = hour, 1 = minute
}

func newFormModel(theme *Theme, session *agenda.Session) formModel {
	title := textinput.New()
	title.Placeholder = "Title *"
	title.CharLimit = 120

	desc := textinput.New()
	desc.Placeholder = "Description (optional)"
	desc.CharLimit = 500

	return formModel{
		theme:   theme,
		session: session,
		title:   title,
		desc:    desc,
	}
}

// open syncs the inputs from the session buffers after Session.Open has
// populated them.
func (f *formModel) open(m agenda.Mutator, owner string) {
	f.mutator = m
	f.owner = owner
	f.title.SetValue(f.session.Title)
	f.desc.SetValue(f.session.Description)

	f.colorIdx = 0
	for i, c := range agenda.Palette {
		if f.session.Color == c {
			f.colorIdx = i
		}
	}
	if f.session.Color == "" {
		f.colorIdx = -1 // nothing picked yet
	}

	f.focus = fieldTitle
	f.title.Focus()
	f.desc.Blur()
}

func (f formModel) update(msg tea.Msg) (formModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return f.updateInputs(msg)
	}

	if f.session.DayPickerOpen {
		return f.updateDayPicker(keyMsg)
	}
	if f.session.ClockPickerOpen {
		return f.updateClockPicker(keyMsg)
	}

	switch {
	case key.Matches(keyMsg, keys.Back):
		f.session.Cancel()
		return f, animTickCmd()

	case keyMsg.String() == "tab", key.Matches(keyMsg, keys.Down):
		return f.setFocus((f.focus + 1) % fieldCount), nil

	case keyMsg.String() == "shift+tab", key.Matches(keyMsg, keys.Up):
		return f.setFocus((f.focus + fieldCount - 1) % fieldCount), nil

	case key.Matches(keyMsg, keys.Left) && f.focus == fieldColor:
		f.cycleColor(-1)
		return f, nil

	case key.Matches(keyMsg, keys.Right) && f.focus == fieldColor:
		f.cycleColor(1)
		return f, nil

	case key.Matches(keyMsg, keys.Enter):
		switch f.focus {
		case fieldDate:
			f.openDayPicker()
			return f, nil
		case fieldTime:
			f.openClockPicker()
			return f, nil
		case fieldSave:
			return f.submit()
		default:
			return f.setFocus((f.focus + 1) % fieldCount), nil
		}
	}

	return f.updateInputs(msg)
}

func (f formModel) updateInputs(msg tea.Msg) (formModel, tea.Cmd) {
	var cmd tea.Cmd
	switch f.focus {
	case fieldTitle:
		f.title, cmd = f.title.Update(msg)
		f.session.Title = f.title.Value()
	case fieldDescription:
		f.desc, cmd = f.desc.Update(msg)
		f.session.Description = f.desc.Value()
	}
	return f, cmd
}

func (f formModel) setFocus(focus int) formModel {
	f.focus = focus
	f.title.Blur()
	f.desc.Blur()
	switch focus {
	case fieldTitle:
		f.title.Focus()
	case fieldDescription:
		f.desc.Focus()
	}
	return f
}

func (f *formModel) cycleColor(dir int) {
	n := len(agenda.Palette)
	if f.colorIdx < 0 {
		f.colorIdx = 0
	} else {
		f.colorIdx = (f.colorIdx + dir + n) % n
	}
	f.session.Color = agenda.Palette[f.colorIdx]
}

func (f *formModel) openDayPicker() {
	if day, err := agenda.ParseDayKey(f.session.Day); err == nil {
		f.pickerDay = day
	} else {
		now := time.Now()
		f.pickerDay = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	}
	f.session.DayPickerOpen = true
}

func (f formModel) updateDayPicker(msg tea.KeyMsg) (formModel, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Left):
		f.pickerDay = f.pickerDay.AddDate(0, 0, -1)
	case key.Matches(msg, keys.Right):
		f.pickerDay = f.pickerDay.AddDate(0, 0, 1)
	case key.Matches(msg, keys.Up):
		f.pickerDay = f.pickerDay.AddDate(0, 0, -7)
	case key.Matches(msg, keys.Down):
		f.pickerDay = f.pickerDay.AddDate(0, 0, 7)
	case key.Matches(msg, keys.Enter):
		f.session.Day = agenda.DayKey(f.pickerDay)
		f.session.DayPickerOpen = false
	case key.Matches(msg, keys.Back):
		f.session.DayPickerOpen = false
	}
	return f, nil
}

func (f *formModel) openClockPicker() {
	if f.session.Clock == nil {
		now := time.Now()
		f.session.Clock = &agenda.Clock{Hour: now.Hour(), Minute: now.Minute()}
	}
	f.clockPart = 0
	f.session.ClockPickerOpen = true
}

func (f formModel) updateClockPicker(msg tea.KeyMsg) (formModel, tea.Cmd) {
	c := f.session.Clock
	switch {
	case key.Matches(msg, keys.Left):
		f.clockPart = 0
	case key.Matches(msg, keys.Right):
		f.clockPart = 1
	case key.Matches(msg, keys.Up):
		if f.clockPart == 0 {
			c.Hour = (c.Hour + 1) % 24
		} else {
			c.Minute = (c.Minute + 5) % 60
		}
	case key.Matches(msg, keys.Down):
		if f.clockPart == 0 {
			c.Hour = (c.Hour + 23) % 24
		} else {
			c.Minute = (c.Minute + 55) % 60
		}
	case key.Matches(msg, keys.Enter), key.Matches(msg, keys.Back):
		f.session.ClockPickerOpen = false
	}
	return f, nil
}

func (f formModel) submit() (formModel, tea.Cmd) {
	f.session.Title = f.title.Value()
	f.session.Description = f.desc.Value()

	if err := f.session.Submit(f.mutator, f.owner); err != nil {
		var fieldName string
		if v, ok := err.(*agenda.ValidationError); ok {
			fieldName = v.Field
		}
		return f, func() tea.Msg {
			if fieldName != "" {
				return statusMsg{text: "Missing required field: " + fieldName, isError: true}
			}
			return statusMsg{text: fmt.Sprintf("Could not save event: %v", err), isError: true}
		}
	}
	return f, animTickCmd()
}

func (f formModel) view(width int) string {
	th := f.theme

	heading := "New Event"
	if f.session.Editing() {
		heading = "Edit Event"
	}

	rows := []string{th.Title.Render(heading), ""}

	rows = append(rows, f.renderInput("Title", f.title, fieldTitle))
	rows = append(rows, f.renderInput("Description", f.desc, fieldDescription))
	rows = append(rows, f.renderColorRow())
	rows = append(rows, f.renderDateRow())
	rows = append(rows, f.renderTimeRow())
	rows = append(rows, "")
	rows = append(rows, f.renderSaveRow())
	rows = append(rows, "")
	rows = append(rows, th.Muted.Render("  tab/↑/↓: fields  enter: pick/save  esc: cancel"))

	return th.ActivePanel.Width(width).Render(strings.Join(rows, "\n"))
}

func (f formModel) renderInput(label string, in textinput.Model, field int) string {
	return f.fieldLabel(label, field) + " " + in.View()
}

func (f formModel) renderColorRow() string {
	var dots []string
	for i, c := range agenda.Palette {
		dot := lipgloss.NewStyle().Foreground(lipgloss.Color(c)).Render("●")
		if i == f.colorIdx {
			dot = lipgloss.NewStyle().Foreground(lipgloss.Color(c)).Render("(●)")
		} else {
			dot = " " + dot + " "
		}
		dots = append(dots, dot)
	}
	return f.fieldLabel("Color", fieldColor) + " " + strings.Join(dots, "")
}

func (f formModel) renderDateRow() string {
	value := f.session.Day
	if value == "" {
		value = f.theme.Muted.Render("pick a date")
	}
	row := f.fieldLabel("Date", fieldDate) + " " + value
	if f.session.DayPickerOpen {
		row += "  " + f.theme.Highlight.Render("◂ "+f.pickerDay.Format("Mon, Jan 2 2006")+" ▸")
	}
	return row
}

func (f formModel) renderTimeRow() string {
	value := f.theme.Muted.Render("pick a time")
	if f.session.Clock != nil {
		value = f.session.Clock.Label()
	}
	row := f.fieldLabel("Time", fieldTime) + " " + value
	if f.session.ClockPickerOpen {
		c := f.session.Clock
		hour := fmt.Sprintf("%02d", c.Hour)
		minute := fmt.Sprintf("%02d", c.Minute)
		if f.clockPart == 0 {
			hour = f.theme.Highlight.Render("[" + hour + "]")
		} else {
			minute = f.theme.Highlight.Render("[" + minute + "]")
		}
		row += "  " + hour + ":" + minute + " " + f.theme.Muted.Render("(24h, ↑/↓ adjust)")
	}
	return row
}

func (f formModel) renderSaveRow() string {
	save := "[ Save ]"
	if f.focus == fieldSave {
		return "  " + f.theme.Highlight.Render("> "+save)
	}
	return "    " + f.theme.NormalItem.Render(save)
}

func (f formModel) fieldLabel(label string, field int) string {
	text := fmt.Sprintf("%-12s", label)
	if f.focus == field {
		return f.theme.SelectedItem.Render("> " + text)
	}
	return f.theme.NormalItem.Render("  " + text)
}
