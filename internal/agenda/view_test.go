package agenda

import (
	"testing"
	"time"

	"github.com/GURROLAG/appAgenda/internal/store"
)

func TestNewViewState(t *testing.T) {
	now := time.Date(2024, time.June, 17, 13, 45, 0, 0, time.Local)
	v := NewViewState(now)
	if v.VisibleMonth.Day() != 1 || v.VisibleMonth.Month() != time.June {
		t.Fatalf("expected first of June, got %v", v.VisibleMonth)
	}
	if v.SelectedDay != "" {
		t.Fatal("expected no day selected")
	}
}

func TestChangeMonthReversible(t *testing.T) {
	v := NewViewState(time.Date(2024, time.June, 17, 0, 0, 0, 0, time.Local))
	start := v.VisibleMonth

	for _, delta := range []int{1, -1, 12, -12, 7} {
		v.ChangeMonth(delta)
		v.ChangeMonth(-delta)
		if !v.VisibleMonth.Equal(start) {
			t.Fatalf("delta %d not reversible: %v", delta, v.VisibleMonth)
		}
	}
}

func TestChangeMonthWrapsYear(t *testing.T) {
	v := NewViewState(time.Date(2024, time.December, 5, 0, 0, 0, 0, time.Local))
	v.ChangeMonth(1)
	if v.VisibleMonth.Year() != 2025 || v.VisibleMonth.Month() != time.January {
		t.Fatalf("expected January 2025, got %v", v.VisibleMonth)
	}
	v.ChangeMonth(-1)
	if v.VisibleMonth.Year() != 2024 || v.VisibleMonth.Month() != time.December {
		t.Fatalf("expected December 2024, got %v", v.VisibleMonth)
	}
}

func TestEventsForSelectedDay(t *testing.T) {
	snapshot := []store.Event{
		{ID: "a", Date: "2024-06-05"},
		{ID: "b", Date: "2024-06-06"},
		{ID: "c", Date: "2024-06-05"},
	}

	var v ViewState
	if got := v.EventsForSelectedDay(snapshot); got != nil {
		t.Fatalf("no selection should yield nil, got %v", got)
	}

	v.SelectDay("2024-06-05")
	got := v.EventsForSelectedDay(snapshot)
	if len(got) != 2 || got[0].ID != "a" || got[1].ID != "c" {
		t.Fatalf("expected [a c] in snapshot order, got %v", got)
	}

	v.SelectDay("2024-06-07")
	if got := v.EventsForSelectedDay(snapshot); len(got) != 0 {
		t.Fatalf("expected no matches, got %v", got)
	}
}
