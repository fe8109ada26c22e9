package agenda

import (
	"fmt"
	"testing"
	"time"
)

// ============================================================
// Day keys
// ============================================================

func TestDayKey(t *testing.T) {
	d := time.Date(2024, time.June, 5, 23, 59, 0, 0, time.Local)
	if got := DayKey(d); got != "2024-06-05" {
		t.Fatalf("expected 2024-06-05, got %s", got)
	}
}

func TestDayKeyRoundTrip(t *testing.T) {
	for _, key := range []string{"2024-01-01", "2024-02-29", "2024-12-31"} {
		d, err := ParseDayKey(key)
		if err != nil {
			t.Fatalf("parse %s: %v", key, err)
		}
		if d.Hour() != 0 || d.Minute() != 0 {
			t.Fatalf("%s: expected local midnight, got %v", key, d)
		}
		if got := DayKey(d); got != key {
			t.Fatalf("round trip %s -> %s", key, got)
		}
	}
}

func TestParseDayKeyRejectsMalformed(t *testing.T) {
	for _, key := range []string{"", "yesterday", "2024-13-40", "06/05/2024"} {
		if _, err := ParseDayKey(key); err == nil {
			t.Fatalf("expected error for %q", key)
		}
	}
}

// ============================================================
// Clock conversion
// ============================================================

func TestTo24Hour(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"12:30 AM", "00:30:00"},
		{"12:30 PM", "12:30:00"},
		{"7:05 PM", "19:05:00"},
		{"07:05 PM", "19:05:00"},
		{"11:59 PM", "23:59:00"},
		{"1:00 AM", "01:00:00"},
		{" 9:00 am ", "09:00:00"},
	}
	for _, c := range cases {
		got, err := To24Hour(c.in)
		if err != nil {
			t.Fatalf("%q: %v", c.in, err)
		}
		if got != c.want {
			t.Fatalf("%q: expected %s, got %s", c.in, c.want, got)
		}
	}
}

func TestTo24HourRejectsMalformed(t *testing.T) {
	for _, in := range []string{"", "25:00 PM", "noonish", "12:30", "12:30 XM"} {
		if _, err := To24Hour(in); err == nil {
			t.Fatalf("expected error for %q", in)
		}
	}
}

// Every valid 12-hour label maps to a distinct 24-hour string.
func TestClockInjective(t *testing.T) {
	seen := make(map[string]string)
	for _, half := range []string{"AM", "PM"} {
		for h := 1; h <= 12; h++ {
			for _, m := range []int{0, 15, 30, 59} {
				label := fmt.Sprintf("%d:%02d %s", h, m, half)
				out, err := To24Hour(label)
				if err != nil {
					t.Fatalf("%q: %v", label, err)
				}
				if prev, ok := seen[out]; ok {
					t.Fatalf("%q and %q both map to %s", prev, label, out)
				}
				seen[out] = label
			}
		}
	}
}

func TestTo12Hour(t *testing.T) {
	cases := []struct {
		h, m int
		want string
	}{
		{0, 30, "12:30 AM"},
		{12, 30, "12:30 PM"},
		{14, 0, "02:00 PM"},
		{9, 5, "09:05 AM"},
		{23, 59, "11:59 PM"},
	}
	for _, c := range cases {
		if got := To12Hour(c.h, c.m); got != c.want {
			t.Fatalf("(%d,%d): expected %s, got %s", c.h, c.m, c.want, got)
		}
	}
}

func TestClockLabelRoundTrip(t *testing.T) {
	for h := 0; h < 24; h++ {
		c := Clock{Hour: h, Minute: 45}
		gh, gm, err := ParseClock(c.Label())
		if err != nil {
			t.Fatalf("hour %d: %v", h, err)
		}
		if gh != h || gm != 45 {
			t.Fatalf("hour %d: round trip gave %d:%d", h, gh, gm)
		}
	}
}
