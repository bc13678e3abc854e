package holiday

import (
	"reflect"
	"testing"
)

func TestMerge(t *testing.T) {
	existing := []Entry{
		{Date: "2025-01-01", Name: "New Year"},
	}
	incoming := []Entry{
		{Date: "2025-01-01", Name: "New Year"},
		{Date: "2025-02-11", Name: "Foundation Day"},
	}

	merged := Merge(existing, incoming)

	want := []Entry{
		{Date: "2025-01-01", Name: "New Year"},
		{Date: "2025-02-11", Name: "Foundation Day"},
	}
	if !reflect.DeepEqual(merged, want) {
		t.Errorf("Merge() = %v, want %v", merged, want)
	}
}

func TestMergeIsNonDestructive(t *testing.T) {
	existing := []Entry{
		{Date: "2025-12-25", Name: "Christmas Day"},
		{Date: "2025-01-01", Name: "New Year's Day"},
		{Date: "2025-01-01", Name: ""}, // empty names are real entries
	}
	incoming := []Entry{
		{Date: "2025-07-04", Name: "Independence Day"},
	}

	merged := Merge(existing, incoming)

	for _, e := range existing {
		found := false
		for _, m := range merged {
			if m == e {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("existing entry %v missing from merge result", e)
		}
	}
	if len(merged) != len(existing)+1 {
		t.Errorf("expected %d entries, got %d", len(existing)+1, len(merged))
	}
}

func TestMergeIsIdempotent(t *testing.T) {
	existing := []Entry{
		{Date: "2025-01-01", Name: "New Year"},
	}
	incoming := []Entry{
		{Date: "2025-01-01", Name: "New Year"},
		{Date: "2025-05-05", Name: "Children's Day"},
		{Date: "2025-05-05", Name: "Children's Day"}, // duplicate within batch
	}

	once := Merge(existing, incoming)
	twice := Merge(once, incoming)

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("second merge changed output: %v vs %v", once, twice)
	}
}

func TestMergeSortsByDate(t *testing.T) {
	existing := []Entry{
		{Date: "2025-12-25", Name: "Christmas"},
	}
	incoming := []Entry{
		{Date: "2025-01-01", Name: "New Year"},
		{Date: "2025-06-01", Name: "Midyear"},
	}

	merged := Merge(existing, incoming)

	for i := 1; i < len(merged); i++ {
		if merged[i-1].Date > merged[i].Date {
			t.Errorf("output not sorted: %v before %v", merged[i-1], merged[i])
		}
	}
}

func TestMergeKeepsSameDateDifferentNames(t *testing.T) {
	existing := []Entry{
		{Date: "2025-01-01", Name: "元日"},
	}
	incoming := []Entry{
		{Date: "2025-01-01", Name: "New Year's Day"},
	}

	merged := Merge(existing, incoming)

	if len(merged) != 2 {
		t.Fatalf("expected both same-date entries to survive, got %v", merged)
	}
	// Stable sort: the existing entry keeps its position ahead of the
	// appended one.
	if merged[0].Name != "元日" || merged[1].Name != "New Year's Day" {
		t.Errorf("tie order not preserved: %v", merged)
	}
}

func TestDedupeLastOccurrenceWins(t *testing.T) {
	entries := []Entry{
		{Date: "2025-01-01", Name: "元日"},
		{Date: "2025-02-11", Name: "建国記念の日"},
		{Date: "2025-01-01", Name: "New Year's Day"},
	}

	deduped := Dedupe(entries)

	want := []Entry{
		{Date: "2025-01-01", Name: "New Year's Day"},
		{Date: "2025-02-11", Name: "建国記念の日"},
	}
	if !reflect.DeepEqual(deduped, want) {
		t.Errorf("Dedupe() = %v, want %v", deduped, want)
	}
}

func TestDedupeNoDuplicates(t *testing.T) {
	entries := []Entry{
		{Date: "2025-01-01", Name: "New Year"},
		{Date: "2025-02-11", Name: "Foundation Day"},
	}

	deduped := Dedupe(entries)

	if !reflect.DeepEqual(deduped, entries) {
		t.Errorf("Dedupe() altered duplicate-free input: %v", deduped)
	}
}

func TestSortByDateStable(t *testing.T) {
	entries := []Entry{
		{Date: "2025-05-05", Name: "first"},
		{Date: "2025-01-01", Name: "a"},
		{Date: "2025-05-05", Name: "second"},
	}

	SortByDate(entries)

	want := []Entry{
		{Date: "2025-01-01", Name: "a"},
		{Date: "2025-05-05", Name: "first"},
		{Date: "2025-05-05", Name: "second"},
	}
	if !reflect.DeepEqual(entries, want) {
		t.Errorf("SortByDate() = %v, want %v", entries, want)
	}
}
