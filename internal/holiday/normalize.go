package holiday

import "strconv"

// DateFormat selects how normalized entries render their date.
type DateFormat int

const (
	// ISOMidnight is the persisted form, YYYY-MM-DDTHH:MM:SS.000Z at
	// midnight UTC. New datasets always use this form.
	ISOMidnight DateFormat = iota
	// DateOnly is the plain YYYY-MM-DD form used for transient fetch
	// results and by older datasets.
	DateOnly
)

// NormalizeDate resolves a raw event's start marker to its date component.
// All-day events carry a plain date; timed events carry a date-time which is
// truncated to its first ten characters. Returns an empty string when the
// event has neither.
func NormalizeDate(startDate, startDateTime string) string {
	if startDate != "" {
		return startDate
	}
	if len(startDateTime) >= 10 {
		return startDateTime[:10]
	}
	return ""
}

// Normalize converts a resolved date and name into a dataset entry rendered
// in the requested format. Events whose year falls outside the window are
// discarded even if the source included them; the upstream query window is
// half-open and can leak boundary events.
func Normalize(date, name string, w Window, format DateFormat) (Entry, bool) {
	if len(date) < 10 {
		return Entry{}, false
	}
	year, err := strconv.Atoi(date[:4])
	if err != nil || !w.Contains(year) {
		return Entry{}, false
	}
	if format == ISOMidnight {
		date = date[:10] + ISOMidnightSuffix
	} else {
		date = date[:10]
	}
	return Entry{Date: date, Name: name}, true
}

// FormatOf reports the date format already established by a dataset so that
// merged entries stay internally consistent. Empty datasets default to the
// persisted ISO midnight form.
func FormatOf(entries []Entry) DateFormat {
	if len(entries) > 0 && len(entries[0].Date) == 10 {
		return DateOnly
	}
	return ISOMidnight
}
