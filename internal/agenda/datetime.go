package agenda

import (
	"fmt"
	"strings"
	"time"
)

// Day keys identify a calendar day by its local components, so a day the
// user picked never shifts when the runtime's UTC offset changes.
const dayKeyLayout = "2006-01-02"

// Clock layouts for the stored 12-hour form ("09:00 AM") and the 24-hour
// form used for arithmetic.
const (
	clockLayout12 = "03:04 PM"
	clockLayout24 = "15:04:05"
)

// DayKey formats t as a calendar-day key (YYYY-MM-DD) from its local
// year/month/day components. Never goes through UTC.
func DayKey(t time.Time) string {
	return t.Format(dayKeyLayout)
}

// ParseDayKey parses a calendar-day key into a local-midnight time.
// Callers must check the error before using the result.
func ParseDayKey(key string) (time.Time, error) {
	t, err := time.ParseInLocation(dayKeyLayout, key, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse day key %q: %w", key, err)
	}
	return t, nil
}

// To24Hour converts a 12-hour time string ("h:mm AM|PM") to "HH:MM:SS".
// 12 AM maps to 00, 12 PM stays 12, PM hours 1-11 gain 12.
func To24Hour(s string) (string, error) {
	t, err := parseClock(s)
	if err != nil {
		return "", err
	}
	return t.Format(clockLayout24), nil
}

// ParseClock extracts the hour and minute from a 12-hour time string.
func ParseClock(s string) (hour, minute int, err error) {
	t, err := parseClock(s)
	if err != nil {
		return 0, 0, err
	}
	return t.Hour(), t.Minute(), nil
}

func parseClock(s string) (time.Time, error) {
	t, err := time.Parse("3:04 PM", strings.ToUpper(strings.TrimSpace(s)))
	if err != nil {
		return time.Time{}, fmt.Errorf("parse 12-hour time %q: %w", s, err)
	}
	return t, nil
}

// To12Hour formats an hour/minute pair as the two-digit 12-hour label the
// store persists, e.g. (14, 0) -> "02:00 PM".
func To12Hour(hour, minute int) string {
	return time.Date(2000, time.January, 1, hour, minute, 0, 0, time.UTC).Format(clockLayout12)
}

// Clock is an hour-of-day/minute pair held by the form session's time field.
type Clock struct {
	Hour   int // 0-23
	Minute int // 0-59
}

// Label returns the 12-hour display form of c.
func (c Clock) Label() string {
	return To12Hour(c.Hour, c.Minute)
}
