// Package export writes raw fetched holiday rows as CSV or JSON, mainly for
// inspecting what a calendar returns before folding it into the datasets.
package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"sort"

	"github.com/klabast/wb-services/holiday-updater/internal/source"
)

// Row is one fetched event with its provenance.
type Row struct {
	Date        string `json:"date"`
	Name        string `json:"name"`
	CalendarID  string `json:"calendarId"`
	EventID     string `json:"gcal_event_id"`
	CalendarKey string `json:"calendarKey,omitempty"`
}

// Rows converts fetched events to export rows, dropping events without a
// usable date. key labels which calendar the rows came from.
func Rows(events []source.Event, calendarID, key string) []Row {
	rows := make([]Row, 0, len(events))
	for _, ev := range events {
		date := ev.Date()
		if date == "" {
			continue
		}
		rows = append(rows, Row{
			Date:        date,
			Name:        ev.Summary,
			CalendarID:  calendarID,
			EventID:     ev.ID,
			CalendarKey: key,
		})
	}
	return rows
}

// Sort orders rows by date, then calendar key, keeping the fetch order for
// ties.
func Sort(rows []Row) {
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Date != rows[j].Date {
			return rows[i].Date < rows[j].Date
		}
		return rows[i].CalendarKey < rows[j].CalendarKey
	})
}

var csvHeader = []string{"date", "name", "calendarId", "gcal_event_id"}

// WriteCSV writes rows with a header line. The calendar key is a grouping
// aid and not part of the CSV format.
func WriteCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range rows {
		if err := cw.Write([]string{r.Date, r.Name, r.CalendarID, r.EventID}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteJSON writes rows as an indented JSON list.
func WriteJSON(w io.Writer, rows []Row) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(rows)
}
