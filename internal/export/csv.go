package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"time"

	"github.com/GURROLAG/appAgenda/internal/store"
)

// ToCSV writes the raw stored fields of every event, one row each.
func ToCSV(events []store.Event, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"ID", "Title", "Description", "Date", "Time", "Color", "Created By", "Created At"}); err != nil {
		return err
	}

	for _, e := range events {
		row := []string{
			e.ID,
			e.Title,
			e.Description,
			e.Date,
			e.Time,
			e.Color,
			e.CreatedBy,
			e.CreatedAt.Local().Format(time.RFC3339),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}
