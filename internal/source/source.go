// Package source retrieves raw holiday events from a paginated calendar
// source. The Client interface models one page request; FetchAll assembles
// the complete result set for a time window.
package source

import (
	"context"
	"fmt"

	"cloudeng.io/logging/ctxlog"

	"github.com/klabast/wb-services/holiday-updater/internal/holiday"
)

// Event is a raw event as reported by the source. Exactly one of StartDate
// (all-day marker) and StartDateTime is normally set.
type Event struct {
	ID            string
	Summary       string
	StartDate     string
	StartDateTime string
}

// Date returns the event's start date, truncating a timestamp to its date
// component. Empty if the event carries neither marker.
func (ev Event) Date() string {
	return holiday.NormalizeDate(ev.StartDate, ev.StartDateTime)
}

// Page is one page of events plus the continuation token for the next page.
// An empty token means the source has no further pages.
type Page struct {
	Events        []Event
	NextPageToken string
}

// Client issues a single time-bounded page request against a calendar.
// The time bounds form a half-open interval: timeMin inclusive, timeMax
// exclusive, both RFC3339.
type Client interface {
	Events(ctx context.Context, calendarID, timeMin, timeMax, pageToken string) (Page, error)
}

// FetchError reports a failed page request. It carries the offending
// calendar and, for a non-success response, the HTTP status and body the
// source returned.
type FetchError struct {
	CalendarID string
	StatusCode int
	Body       string
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("HTTP %d fetching calendar %v: %v", e.StatusCode, e.CalendarID, e.Body)
	}
	return fmt.Sprintf("fetching calendar %v: %v", e.CalendarID, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// FetchAll repeatedly requests pages until the source reports no further
// continuation token and returns the assembled result set. A failure on any
// page aborts the whole fetch: no partial data is returned.
func FetchAll(ctx context.Context, c Client, calendarID, timeMin, timeMax string) ([]Event, error) {
	logger := ctxlog.Logger(ctx)
	var events []Event
	pageToken := ""
	for page := 1; ; page++ {
		p, err := c.Events(ctx, calendarID, timeMin, timeMax, pageToken)
		if err != nil {
			return nil, err
		}
		events = append(events, p.Events...)
		logger.Debug("fetched page", "calendar", calendarID, "page", page, "events", len(p.Events))
		if p.NextPageToken == "" {
			return events, nil
		}
		pageToken = p.NextPageToken
	}
}
