package tui

import (
	"strings"
	"time"

	"github.com/GURROLAG/appAgenda/internal/store"
)

// rootState is the navigation root: which top-level surface is shown.
// It is a pure function of the last auth notification.
type rootState int

const (
	rootLoading rootState = iota
	rootLogin
	rootTabs
)

// viewState is the active tab inside the authenticated area.
type viewState int

const (
	viewCalendar viewState = iota
	viewOverview
	viewProfile
)

var viewNames = []string{"Calendar", "Overview", "Profile"}

// animInterval is the fixed step the slide animation advances per tick.
const animInterval = 33 * time.Millisecond

// --- Messages ---

// snapshotMsg carries the complete event collection as delivered by the
// store subscription.
type snapshotMsg struct {
	events []store.Event
}

// authStateMsg carries the account from the auth state stream; nil means
// signed out.
type authStateMsg struct {
	account *store.Account
}

// authFailedMsg reports a failed sign-in or sign-up attempt.
type authFailedMsg struct {
	err error
}

type statusMsg struct {
	text    string
	isError bool
}

type animTickMsg time.Time

type exportDoneMsg struct {
	path string
}

// --- Helpers ---

// monthTitle renders the header the original shows above the calendar,
// e.g. "JUNE 2024".
func monthTitle(t time.Time) string {
	return strings.ToUpper(t.Format("January 2006"))
}

// dayTitle is the long form used above the day event list.
func dayTitle(t time.Time) string {
	return t.Format("January 2, 2006")
}
