package export

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/GURROLAG/appAgenda/internal/store"
)

func sampleEvents() []store.Event {
	return []store.Event{
		{
			ID:          "e1",
			Title:       "Dentist",
			Description: "bring card",
			Date:        "2024-06-05",
			Time:        "02:30 PM",
			Color:       "#ff6347",
			CreatedBy:   "u1",
			CreatedAt:   time.Date(2024, time.June, 1, 10, 0, 0, 0, time.UTC),
		},
		{
			ID:    "e2",
			Title: "Standup",
			Date:  "2024-06-06",
			Time:  "09:00 AM",
			Color: "#1e90ff",
		},
		// No date: the calendar never shows this, neither should the ICS.
		{ID: "e3", Title: "orphan"},
	}
}

func TestToICS(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.ics")
	if err := ToICS(sampleEvents(), path); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)

	if !strings.Contains(out, "BEGIN:VCALENDAR") || !strings.Contains(out, "END:VCALENDAR") {
		t.Fatal("missing calendar envelope")
	}
	if !strings.Contains(out, "SUMMARY:Dentist") || !strings.Contains(out, "SUMMARY:Standup") {
		t.Fatal("missing event summaries")
	}
	if !strings.Contains(out, "DESCRIPTION:bring card") {
		t.Fatal("missing description")
	}
	if strings.Contains(out, "orphan") {
		t.Fatal("undecodable event should be skipped")
	}
	if strings.Count(out, "BEGIN:VEVENT") != 2 {
		t.Fatalf("expected 2 VEVENTs, got %d", strings.Count(out, "BEGIN:VEVENT"))
	}
}

func TestToCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	if err := ToCSV(sampleEvents(), path); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	// Header + all three records; the CSV is a raw dump, not a projection.
	if len(rows) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(rows))
	}
	if rows[0][0] != "ID" || rows[0][1] != "Title" {
		t.Fatalf("unexpected header: %v", rows[0])
	}
	if rows[1][1] != "Dentist" || rows[1][3] != "2024-06-05" || rows[1][4] != "02:30 PM" {
		t.Fatalf("unexpected first row: %v", rows[1])
	}
	if rows[3][1] != "orphan" {
		t.Fatalf("expected orphan kept in csv: %v", rows[3])
	}
}

func TestToCSVEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	if err := ToCSV(nil, path); err != nil {
		t.Fatal(err)
	}
	f, _ := os.Open(path)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected header only, got %d rows", len(rows))
	}
}
