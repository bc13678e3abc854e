// Package holiday defines the holiday entry data model and the merge
// semantics used when combining freshly fetched holidays with an existing
// on-disk dataset.
package holiday

import (
	"sort"
	"strconv"
)

// ISOMidnightSuffix extends a plain YYYY-MM-DD date to the fixed-width
// ISO-8601 form used by persisted datasets.
const ISOMidnightSuffix = "T00:00:00.000Z"

// Entry is a single holiday in a country dataset. Date is either a plain
// YYYY-MM-DD string (transient fetch results) or the ISO-8601 midnight-UTC
// form used on disk. Name is the holiday's display label in the source's
// locale and may be empty.
type Entry struct {
	Date string `json:"date"`
	Name string `json:"name"`
}

// Key returns the (date, name) identity of the entry, as used for duplicate
// detection during merges and for regression reports.
func (e Entry) Key() string {
	return e.Date + ":" + e.Name
}

// Year returns the four-digit year prefix of the entry's date. It returns
// false if the date is too short or does not start with a number.
func (e Entry) Year() (int, bool) {
	if len(e.Date) < 4 {
		return 0, false
	}
	year, err := strconv.Atoi(e.Date[:4])
	if err != nil {
		return 0, false
	}
	return year, true
}

// SortByDate sorts entries by date in ascending order. The sort is stable so
// same-date entries keep their insertion order.
func SortByDate(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date < entries[j].Date
	})
}
