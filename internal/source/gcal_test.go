package source

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"google.golang.org/api/option"
)

func newTestCalendar(t *testing.T, handler http.Handler) *Calendar {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client, err := NewCalendar(context.Background(), "test-key", option.WithEndpoint(srv.URL))
	if err != nil {
		t.Fatalf("NewCalendar: %v", err)
	}
	return client
}

func TestCalendarEventsPagination(t *testing.T) {
	var requests []string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests = append(requests, r.URL.RawQuery)
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Query().Get("pageToken") == "" {
			fmt.Fprint(w, `{"items":[{"id":"ev1","summary":"元日","start":{"date":"2025-01-01"}}],"nextPageToken":"next"}`)
			return
		}
		fmt.Fprint(w, `{"items":[{"id":"ev2","summary":"成人の日","start":{"dateTime":"2025-01-13T00:00:00+09:00"}}]}`)
	})
	client := newTestCalendar(t, handler)

	events, err := FetchAll(context.Background(), client, "ja.japanese.official%23holiday%40group.v.calendar.google.com",
		"2025-01-01T00:00:00Z", "2026-01-01T00:00:00Z")
	if err != nil {
		t.Fatalf("FetchAll: %v", err)
	}

	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[0].Date() != "2025-01-01" || events[1].Date() != "2025-01-13" {
		t.Errorf("unexpected dates: %v, %v", events[0].Date(), events[1].Date())
	}
	if events[0].Summary != "元日" {
		t.Errorf("summary = %q", events[0].Summary)
	}

	if len(requests) != 2 {
		t.Fatalf("expected 2 page requests, got %d", len(requests))
	}
	first := requests[0]
	for _, param := range []string{"timeMin=2025-01-01", "timeMax=2026-01-01", "singleEvents=true", "orderBy=startTime", "maxResults=2500"} {
		if !strings.Contains(first, param) {
			t.Errorf("first request missing %q: %q", param, first)
		}
	}
	if !strings.Contains(requests[1], "pageToken=next") {
		t.Errorf("second request missing continuation token: %q", requests[1])
	}
}

func TestCalendarEventsNonSuccessStatus(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		fmt.Fprint(w, `{"error":{"code":403,"message":"quota exceeded"}}`)
	})
	client := newTestCalendar(t, handler)

	_, err := client.Events(context.Background(), "cal-id", "2025-01-01T00:00:00Z", "2026-01-01T00:00:00Z", "")
	if err == nil {
		t.Fatal("expected error for 403 response")
	}
	var ferr *FetchError
	if !errors.As(err, &ferr) {
		t.Fatalf("expected FetchError, got %T: %v", err, err)
	}
	if ferr.StatusCode != http.StatusForbidden {
		t.Errorf("status = %d", ferr.StatusCode)
	}
	if !strings.Contains(ferr.Body, "quota exceeded") {
		t.Errorf("body not surfaced: %q", ferr.Body)
	}
	if ferr.CalendarID != "cal-id" {
		t.Errorf("calendar id = %q", ferr.CalendarID)
	}
}

func TestCalendarEventsRetriesServerError(t *testing.T) {
	var calls int
	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		if calls == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			fmt.Fprint(w, `{"error":{"code":503,"message":"backend"}}`)
			return
		}
		fmt.Fprint(w, `{"items":[{"id":"ev1","summary":"New Year's Day","start":{"date":"2025-01-01"}}]}`)
	})
	client := newTestCalendar(t, handler)

	page, err := client.Events(context.Background(), "cal-id", "2025-01-01T00:00:00Z", "2026-01-01T00:00:00Z", "")
	if err != nil {
		t.Fatalf("expected retry to succeed, got %v", err)
	}
	if calls != 2 {
		t.Errorf("expected 2 attempts, got %d", calls)
	}
	if len(page.Events) != 1 || page.Events[0].ID != "ev1" {
		t.Errorf("unexpected page: %+v", page)
	}
}
