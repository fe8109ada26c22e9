package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/GURROLAG/appAgenda/internal/agenda"
	"github.com/GURROLAG/appAgenda/internal/store"
)

// calendarModel is the main screen: month grid, the selected day's event
// list, and the sliding create/edit form.
type calendarModel struct {
	store  *store.Store
	theme  *Theme
	width  int
	height int

	weekStart time.Weekday
	viewState agenda.ViewState
	events    []store.Event // latest snapshot, newest first
	owner     string        // signed-in account id

	// Shared with the form so copies of this model made by the runtime
	// all see one session.
	session *agenda.Session
	form    formModel

	listCursor int

	confirmingDelete bool
	deleteID         string
	deleteTitle      string
	deleteCursor     int // 0 = cancel, 1 = delete
}

func newCalendarModel(s *store.Store, theme *Theme, weekStart time.Weekday) calendarModel {
	session := &agenda.Session{}
	return calendarModel{
		store:     s,
		theme:     theme,
		weekStart: weekStart,
		viewState: agenda.NewViewState(time.Now()),
		session:   session,
		form:      newFormModel(theme, session),
	}
}

func (c *calendarModel) setSize(w, h int) {
	c.width = w
	c.height = h
}

func (c *calendarModel) setEvents(events []store.Event) {
	c.events = events
	if n := len(c.viewState.EventsForSelectedDay(events)); c.listCursor >= n {
		c.listCursor = max(0, n-1)
	}
}

func (c *calendarModel) setOwner(id string) {
	c.owner = id
}

func animTickCmd() tea.Cmd {
	return tea.Tick(animInterval, func(t time.Time) tea.Msg {
		return animTickMsg(t)
	})
}

func (c calendarModel) formActive() bool {
	return c.session.Visible() || c.confirmingDelete
}

func (c calendarModel) update(msg tea.Msg) (calendarModel, tea.Cmd) {
	if _, ok := msg.(animTickMsg); ok {
		c.session.Advance(animInterval)
		if c.session.Animating() {
			return c, animTickCmd()
		}
		return c, nil
	}

	if c.session.Visible() {
		// The session keeps its buffers during the slide-out but must
		// not take input anymore.
		if c.session.State() == agenda.SessionClosing {
			return c, nil
		}
		var cmd tea.Cmd
		c.form, cmd = c.form.update(msg)
		return c, cmd
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	if c.confirmingDelete {
		return c.updateDeleteConfirm(keyMsg)
	}
	return c.updateGrid(keyMsg)
}

func (c calendarModel) updateGrid(msg tea.KeyMsg) (calendarModel, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Left):
		return c.moveSelection(-1), nil
	case key.Matches(msg, keys.Right):
		return c.moveSelection(1), nil
	case key.Matches(msg, keys.Up):
		return c.moveSelection(-7), nil
	case key.Matches(msg, keys.Down):
		return c.moveSelection(7), nil

	case key.Matches(msg, keys.PrevMonth):
		c.viewState.ChangeMonth(-1)
		return c, nil
	case key.Matches(msg, keys.NextMonth):
		c.viewState.ChangeMonth(1)
		return c, nil

	case key.Matches(msg, keys.ListPrev):
		if c.listCursor > 0 {
			c.listCursor--
		}
		return c, nil
	case key.Matches(msg, keys.ListNext):
		if c.listCursor < len(c.viewState.EventsForSelectedDay(c.events))-1 {
			c.listCursor++
		}
		return c, nil

	case key.Matches(msg, keys.New):
		c.session.Open(nil)
		c.session.Day = c.viewState.SelectedDay
		c.form.open(c.store, c.owner)
		return c, animTickCmd()

	case key.Matches(msg, keys.Enter), key.Matches(msg, keys.Edit):
		dayEvents := c.viewState.EventsForSelectedDay(c.events)
		if c.listCursor < len(dayEvents) {
			ev := dayEvents[c.listCursor]
			c.session.Open(&ev)
			c.form.open(c.store, c.owner)
			return c, animTickCmd()
		}
		return c, nil

	case key.Matches(msg, keys.Delete):
		dayEvents := c.viewState.EventsForSelectedDay(c.events)
		if c.listCursor < len(dayEvents) {
			c.confirmingDelete = true
			c.deleteID = dayEvents[c.listCursor].ID
			c.deleteTitle = dayEvents[c.listCursor].Title
			c.deleteCursor = 0
		}
		return c, nil
	}
	return c, nil
}

// moveSelection shifts the selected day by days, selecting a starting
// day first if nothing is selected. The visible month follows the
// selection across boundaries.
func (c calendarModel) moveSelection(days int) calendarModel {
	var day time.Time
	if cur, err := agenda.ParseDayKey(c.viewState.SelectedDay); err == nil {
		day = cur.AddDate(0, 0, days)
	} else {
		now := time.Now()
		if now.Year() == c.viewState.VisibleMonth.Year() && now.Month() == c.viewState.VisibleMonth.Month() {
			day = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		} else {
			day = c.viewState.VisibleMonth
		}
	}

	c.viewState.SelectDay(agenda.DayKey(day))
	if day.Year() != c.viewState.VisibleMonth.Year() || day.Month() != c.viewState.VisibleMonth.Month() {
		c.viewState.VisibleMonth = time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, day.Location())
	}
	c.listCursor = 0
	return c
}

func (c calendarModel) updateDeleteConfirm(msg tea.KeyMsg) (calendarModel, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Left), key.Matches(msg, keys.Up):
		c.deleteCursor = 0
	case key.Matches(msg, keys.Right), key.Matches(msg, keys.Down):
		c.deleteCursor = 1
	case key.Matches(msg, keys.Back):
		c.confirmingDelete = false
	case key.Matches(msg, keys.Enter):
		c.confirmingDelete = false
		if c.deleteCursor == 1 {
			id := c.deleteID
			s := c.store
			return c, func() tea.Msg {
				if err := s.DeleteEvent(id); err != nil {
					return statusMsg{text: fmt.Sprintf("Could not delete event: %v", err), isError: true}
				}
				return statusMsg{text: "Event deleted"}
			}
		}
	}
	return c, nil
}

func (c calendarModel) view() string {
	w := c.width - 4

	if c.session.Visible() {
		formView := c.form.view(w)
		offset := int((1 - c.session.Phase()) * float64(lipgloss.Height(formView)))
		return lipgloss.NewStyle().MarginTop(offset).Render(formView)
	}

	if c.confirmingDelete {
		return c.renderDeleteConfirm(w)
	}

	header := c.renderMonthHeader(w)
	grid := c.renderMonthGrid()
	list := c.renderDayList()
	hint := c.theme.Muted.Render("  n: new  enter/e: edit  d: delete  [/]: month  j/k: list")

	return c.theme.Panel.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Left, header, "", grid, "", list, "", hint),
	)
}

func (c calendarModel) renderMonthHeader(w int) string {
	title := c.theme.Title.Render(monthTitle(c.viewState.VisibleMonth))
	left := c.theme.Muted.Render("← [")
	right := c.theme.Muted.Render("] →")

	gap := (w - lipgloss.Width(title) - lipgloss.Width(left) - lipgloss.Width(right) - 8) / 2
	if gap < 1 {
		gap = 1
	}
	spacer := strings.Repeat(" ", gap)
	return left + spacer + title + spacer + right
}

func (c calendarModel) renderMonthGrid() string {
	th := c.theme
	first := c.viewState.VisibleMonth
	today := agenda.DayKey(time.Now())

	// Dot color per day that has at least one decodable event.
	eventDays := make(map[string]string)
	for _, sp := range agenda.Project(c.events) {
		key := agenda.DayKey(sp.Start)
		if _, ok := eventDays[key]; !ok {
			eventDays[key] = sp.Color
		}
	}

	// Back up to the week-start column.
	gridStart := first
	for gridStart.Weekday() != c.weekStart {
		gridStart = gridStart.AddDate(0, 0, -1)
	}

	var rows []string
	var headers []string
	for i := 0; i < 7; i++ {
		d := gridStart.AddDate(0, 0, i)
		headers = append(headers, th.Muted.Width(5).Align(lipgloss.Right).Render(d.Format("Mon")[:2]))
	}
	rows = append(rows, strings.Join(headers, ""))

	lastOfMonth := first.AddDate(0, 1, -1)
	for week := 0; ; week++ {
		weekStart := gridStart.AddDate(0, 0, week*7)
		if weekStart.After(lastOfMonth) {
			break
		}
		var cells []string
		for dow := 0; dow < 7; dow++ {
			day := weekStart.AddDate(0, 0, dow)
			dayKey := agenda.DayKey(day)
			inMonth := day.Month() == first.Month()

			style := th.DayCell
			switch {
			case !inMonth:
				style = th.DayOutside
			case dayKey == c.viewState.SelectedDay:
				style = th.DaySelected
			case dayKey == today:
				style = th.DayToday
			}

			cell := style.Render(fmt.Sprintf("%d", day.Day()))
			if color, ok := eventDays[dayKey]; ok && inMonth {
				cell += lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render("•")
			} else {
				cell += " "
			}
			cells = append(cells, cell)
		}
		rows = append(rows, strings.Join(cells, ""))
	}

	return strings.Join(rows, "\n")
}

func (c calendarModel) renderDayList() string {
	th := c.theme

	if c.viewState.SelectedDay == "" {
		return th.Muted.Render("  Select a day to see its events.")
	}

	dayEvents := c.viewState.EventsForSelectedDay(c.events)
	day, err := agenda.ParseDayKey(c.viewState.SelectedDay)
	label := c.viewState.SelectedDay
	if err == nil {
		label = dayTitle(day)
	}

	if len(dayEvents) == 0 {
		return th.Muted.Render("  No events for " + label)
	}

	var rows []string
	rows = append(rows, th.Title.Render("Events for "+label))
	for i, ev := range dayEvents {
		dot := lipgloss.NewStyle().Foreground(lipgloss.Color(agenda.NormalizeColor(ev.Color))).Render("●")
		cursor := "  "
		style := th.NormalItem
		if i == c.listCursor {
			cursor = "> "
			style = th.SelectedItem
		}
		line := fmt.Sprintf("%s%s %s  %s", cursor, dot, style.Render(ev.Title), th.Muted.Render(ev.Time))
		rows = append(rows, line)
		if ev.Description != "" {
			rows = append(rows, th.Muted.Render("     "+ev.Description))
		}
	}
	return strings.Join(rows, "\n")
}

func (c calendarModel) renderDeleteConfirm(w int) string {
	th := c.theme

	cancel := "[ Cancel ]"
	del := "[ Delete ]"
	if c.deleteCursor == 0 {
		cancel = th.Highlight.Render("> " + cancel)
		del = "  " + del
	} else {
		cancel = "  " + cancel
		del = th.Error.Render("> " + del)
	}

	return th.ActivePanel.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left,
		th.Title.Render("Delete event"),
		"",
		fmt.Sprintf("Delete %q? This cannot be undone.", c.deleteTitle),
		"",
		cancel+"   "+del,
		"",
		th.Muted.Render("←/→: choose  enter: confirm  esc: back"),
	))
}
