package holiday

import "testing"

func TestWindowBounds(t *testing.T) {
	w := Window{StartYear: 2025, EndYear: 2027}

	if got := w.TimeMin(); got != "2025-01-01T00:00:00Z" {
		t.Errorf("TimeMin() = %q", got)
	}
	if got := w.TimeMax(); got != "2028-01-01T00:00:00Z" {
		t.Errorf("TimeMax() = %q", got)
	}

	tests := []struct {
		year int
		want bool
	}{
		{2024, false},
		{2025, true},
		{2026, true},
		{2027, true},
		{2028, false},
	}
	for _, tt := range tests {
		if got := w.Contains(tt.year); got != tt.want {
			t.Errorf("Contains(%d) = %v, want %v", tt.year, got, tt.want)
		}
	}
}

func TestWindowValidate(t *testing.T) {
	if err := (Window{StartYear: 2025, EndYear: 2027}).Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := (Window{StartYear: 2027, EndYear: 2025}).Validate(); err == nil {
		t.Error("expected error for inverted window")
	}
	if err := (Window{}).Validate(); err == nil {
		t.Error("expected error for zero window")
	}
}

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		name          string
		startDate     string
		startDateTime string
		want          string
	}{
		{name: "all-day event", startDate: "2025-01-01", want: "2025-01-01"},
		{name: "timed event", startDateTime: "2025-01-01T09:00:00+09:00", want: "2025-01-01"},
		{name: "all-day wins over timestamp", startDate: "2025-01-01", startDateTime: "2025-01-02T00:00:00Z", want: "2025-01-01"},
		{name: "neither", want: ""},
		{name: "short timestamp", startDateTime: "2025-01", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeDate(tt.startDate, tt.startDateTime); got != tt.want {
				t.Errorf("NormalizeDate(%q, %q) = %q, want %q", tt.startDate, tt.startDateTime, got, tt.want)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	w := Window{StartYear: 2025, EndYear: 2026}

	e, ok := Normalize("2025-01-01", "New Year", w, ISOMidnight)
	if !ok {
		t.Fatal("expected entry to be kept")
	}
	if e.Date != "2025-01-01T00:00:00.000Z" {
		t.Errorf("ISO date = %q", e.Date)
	}
	if e.Name != "New Year" {
		t.Errorf("name = %q", e.Name)
	}

	e, ok = Normalize("2026-12-31", "Ōmisoka", w, DateOnly)
	if !ok || e.Date != "2026-12-31" {
		t.Errorf("date-only form: ok=%v date=%q", ok, e.Date)
	}

	// Boundary leakage from the half-open upstream window is discarded.
	if _, ok := Normalize("2027-01-01", "New Year", w, ISOMidnight); ok {
		t.Error("entry one year past the window should be discarded")
	}
	if _, ok := Normalize("2024-12-31", "New Year's Eve", w, ISOMidnight); ok {
		t.Error("entry before the window should be discarded")
	}
	if _, ok := Normalize("", "nameless", w, ISOMidnight); ok {
		t.Error("entry without a date should be discarded")
	}
}

func TestFormatOf(t *testing.T) {
	if got := FormatOf(nil); got != ISOMidnight {
		t.Errorf("empty dataset should default to ISOMidnight, got %v", got)
	}
	iso := []Entry{{Date: "2025-01-01T00:00:00.000Z", Name: "New Year"}}
	if got := FormatOf(iso); got != ISOMidnight {
		t.Errorf("FormatOf(iso) = %v", got)
	}
	plain := []Entry{{Date: "2025-01-01", Name: "New Year"}}
	if got := FormatOf(plain); got != DateOnly {
		t.Errorf("FormatOf(plain) = %v", got)
	}
}

func TestEntryYear(t *testing.T) {
	e := Entry{Date: "2025-01-01T00:00:00.000Z"}
	if year, ok := e.Year(); !ok || year != 2025 {
		t.Errorf("Year() = %d, %v", year, ok)
	}
	if _, ok := (Entry{Date: "n/a"}).Year(); ok {
		t.Error("expected failure for malformed date")
	}
}
