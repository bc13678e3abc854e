package source

import (
	"context"
	"errors"
	"net/http"
	"time"

	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/net/ratecontrol"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

const (
	// pageSize matches the API's maximum so most calendars fit in one page.
	pageSize = 2500

	// pagesPerMinute paces page requests to one per 100ms, a politeness
	// delay for runs covering many calendars.
	pagesPerMinute = 600

	requestTimeout = 30 * time.Second
	backoffStart   = time.Second
	backoffSteps   = 4
)

// Calendar fetches events from Google Calendar public holiday calendars.
// These calendars are public, so a plain API key is sufficient; no OAuth.
type Calendar struct {
	svc   *calendar.Service
	pacer *ratecontrol.Controller
}

// NewCalendar returns a Client backed by the Google Calendar API. Extra
// client options are appended after the API key and can override the
// endpoint, which the tests use.
func NewCalendar(ctx context.Context, apiKey string, opts ...option.ClientOption) (*Calendar, error) {
	svc, err := calendar.NewService(ctx, append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)...)
	if err != nil {
		return nil, err
	}
	return &Calendar{
		svc:   svc,
		pacer: ratecontrol.New(ratecontrol.WithRequestsPerTick(time.Minute, pagesPerMinute)),
	}, nil
}

// Events implements Client. Retryable responses (rate limiting, server
// errors) are retried with exponential backoff; anything else becomes a
// FetchError immediately.
func (c *Calendar) Events(ctx context.Context, calendarID, timeMin, timeMax, pageToken string) (Page, error) {
	backoff := ratecontrol.NewExpontentialBackoff(backoffStart, backoffSteps)
	for {
		if err := c.pacer.Wait(ctx); err != nil {
			return Page{}, err
		}
		resp, err := c.list(ctx, calendarID, timeMin, timeMax, pageToken)
		if err == nil {
			return toPage(resp), nil
		}
		if !retryable(err) {
			return Page{}, fetchError(calendarID, err)
		}
		ctxlog.Logger(ctx).Warn("retrying page request", "calendar", calendarID, "retries", backoff.Retries(), "err", err)
		done, werr := backoff.Wait(ctx, nil)
		if werr != nil {
			return Page{}, werr
		}
		if done {
			return Page{}, fetchError(calendarID, err)
		}
	}
}

func (c *Calendar) list(ctx context.Context, calendarID, timeMin, timeMax, pageToken string) (*calendar.Events, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()
	call := c.svc.Events.List(calendarID).
		TimeMin(timeMin).
		TimeMax(timeMax).
		SingleEvents(true).
		OrderBy("startTime").
		MaxResults(pageSize).
		Context(ctx)
	if pageToken != "" {
		call = call.PageToken(pageToken)
	}
	return call.Do()
}

func toPage(resp *calendar.Events) Page {
	page := Page{NextPageToken: resp.NextPageToken}
	page.Events = make([]Event, 0, len(resp.Items))
	for _, item := range resp.Items {
		ev := Event{ID: item.Id, Summary: item.Summary}
		if item.Start != nil {
			ev.StartDate = item.Start.Date
			ev.StartDateTime = item.Start.DateTime
		}
		page.Events = append(page.Events, ev)
	}
	return page
}

func retryable(err error) bool {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		return gerr.Code == http.StatusTooManyRequests || gerr.Code >= http.StatusInternalServerError
	}
	return false
}

func fetchError(calendarID string, err error) *FetchError {
	ferr := &FetchError{CalendarID: calendarID, Err: err}
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		ferr.StatusCode = gerr.Code
		ferr.Body = gerr.Body
	}
	return ferr
}
