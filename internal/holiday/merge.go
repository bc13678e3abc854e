package holiday

// Merge combines newly fetched entries with an existing dataset without ever
// altering or dropping an existing entry. Incoming entries are appended in
// order unless their (date, name) key is already present, either in the
// existing dataset or earlier in the incoming batch. The result is sorted by
// date, with same-date entries keeping their insertion order, so re-applying
// the same incoming batch is a no-op.
func Merge(existing, incoming []Entry) []Entry {
	seen := make(map[Entry]struct{}, len(existing))
	for _, e := range existing {
		seen[e] = struct{}{}
	}

	merged := make([]Entry, len(existing), len(existing)+len(incoming))
	copy(merged, existing)
	for _, e := range incoming {
		if _, ok := seen[e]; ok {
			continue
		}
		merged = append(merged, e)
		seen[e] = struct{}{}
	}

	SortByDate(merged)
	return merged
}

// Dedupe collapses entries sharing the same date into a single entry,
// keeping the value of the last occurrence at the position of the first.
// A single calendar can report more than one event on the same date (an
// observed-vs-actual pair, or the same holiday in two locales); the source
// orders events by start time within a page, so the last one wins.
//
// Note that this is keyed by date alone, unlike Merge which keys on
// (date, name). If the upstream ever changes its intra-day event ordering
// the surviving entry changes with it; no further tie-break is applied.
func Dedupe(entries []Entry) []Entry {
	index := make(map[string]int, len(entries))
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if i, ok := index[e.Date]; ok {
			out[i] = e
			continue
		}
		index[e.Date] = len(out)
		out = append(out, e)
	}
	return out
}
