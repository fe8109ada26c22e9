package tui

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/GURROLAG/appAgenda/internal/agenda"
	"github.com/GURROLAG/appAgenda/internal/store"
)

// overviewModel charts how busy each day of a month is and lists the
// next few upcoming events.
type overviewModel struct {
	theme  *Theme
	width  int
	height int

	month  time.Time // local first-of-month
	events []store.Event

	chart barchart.Model
}

func newOverviewModel(theme *Theme) overviewModel {
	now := time.Now()
	return overviewModel{
		theme: theme,
		month: time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()),
		chart: barchart.New(60, 10),
	}
}

func (o *overviewModel) setSize(w, h int) {
	o.width = w
	o.height = h
	o.buildChart()
}

func (o *overviewModel) setEvents(events []store.Event) {
	o.events = events
	o.buildChart()
}

func (o overviewModel) update(msg tea.Msg) (overviewModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return o, nil
	}
	switch {
	case key.Matches(keyMsg, keys.Left), key.Matches(keyMsg, keys.PrevMonth):
		o.month = o.month.AddDate(0, -1, 0)
		o.buildChart()
	case key.Matches(keyMsg, keys.Right), key.Matches(keyMsg, keys.NextMonth):
		o.month = o.month.AddDate(0, 1, 0)
		o.buildChart()
	}
	return o, nil
}

func (o *overviewModel) buildChart() {
	chartWidth := o.width - 8
	if chartWidth < 20 {
		chartWidth = 20
	}
	o.chart = barchart.New(chartWidth, 10)

	counts := make(map[string]int)
	colors := make(map[string]string)
	for _, sp := range agenda.Project(o.events) {
		key := agenda.DayKey(sp.Start)
		counts[key]++
		if _, ok := colors[key]; !ok {
			colors[key] = sp.Color
		}
	}

	next := o.month.AddDate(0, 1, 0)
	var bars []barchart.BarData
	for d := o.month; d.Before(next); d = d.AddDate(0, 0, 1) {
		dayKey := agenda.DayKey(d)
		style := lipgloss.NewStyle().Foreground(o.theme.Subtle)
		if c, ok := colors[dayKey]; ok {
			style = lipgloss.NewStyle().Foreground(lipgloss.Color(c))
		}
		bars = append(bars, barchart.BarData{
			Label: fmt.Sprintf("%d", d.Day()),
			Values: []barchart.BarValue{
				{Name: dayKey, Value: float64(counts[dayKey]), Style: style},
			},
		})
	}

	o.chart.PushAll(bars)
	o.chart.Draw()
}

func (o overviewModel) view() string {
	th := o.theme
	w := o.width - 4

	header := lipgloss.JoinHorizontal(lipgloss.Bottom,
		th.Title.Render("Overview"), "  ",
		th.Muted.Render(monthTitle(o.month)),
	)

	total := 0
	monthPrefix := o.month.Format("2006-01")
	for _, ev := range o.events {
		if strings.HasPrefix(ev.Date, monthPrefix) {
			total++
		}
	}
	summary := th.Muted.Render(fmt.Sprintf("%d events this month", total))

	nav := th.Muted.Render("  ←/→: change month")

	return th.Panel.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			header, summary, "", o.chart.View(), "", o.renderUpcoming(), "", nav,
		),
	)
}

// renderUpcoming lists the next five spans. The snapshot is newest-first
// by creation; chronological order needs an explicit sort.
func (o overviewModel) renderUpcoming() string {
	th := o.theme

	spans := agenda.Project(o.events)
	now := time.Now()
	upcoming := spans[:0]
	for _, sp := range spans {
		if sp.End.After(now) {
			upcoming = append(upcoming, sp)
		}
	}
	sort.Slice(upcoming, func(i, j int) bool { return upcoming[i].Start.Before(upcoming[j].Start) })
	if len(upcoming) > 5 {
		upcoming = upcoming[:5]
	}

	if len(upcoming) == 0 {
		return th.Muted.Render("  Nothing coming up.")
	}

	rows := []string{th.Title.Render("Upcoming")}
	for _, sp := range upcoming {
		dot := lipgloss.NewStyle().Foreground(lipgloss.Color(sp.Color)).Render("●")
		rows = append(rows, fmt.Sprintf("  %s %s  %s", dot, sp.Title,
			th.Muted.Render(sp.Start.Format("Jan 2, 03:04 PM"))))
	}
	return strings.Join(rows, "\n")
}
