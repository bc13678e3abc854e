// Package verify implements the regression check around an update run: it
// snapshots the datasets, runs the pipeline, and fails if any pre-existing
// entry was modified or deleted.
package verify

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"cloudeng.io/logging/ctxlog"
	"github.com/klabast/wb-services/holiday-updater/internal/holiday"
	"github.com/klabast/wb-services/holiday-updater/internal/store"
)

// ErrPipelineFailed indicates the update under verification failed before
// any comparison could be made.
var ErrPipelineFailed = errors.New("pipeline failed")

// Kind classifies a regression.
type Kind int

const (
	DatasetMissing Kind = iota
	EntryDeleted
	EntryModified
)

func (k Kind) String() string {
	switch k {
	case DatasetMissing:
		return "DATASET_MISSING"
	case EntryDeleted:
		return "ENTRY_DELETED"
	case EntryModified:
		return "ENTRY_MODIFIED"
	}
	return "UNKNOWN"
}

// Discrepancy records one regression found by Compare. Before and After are
// only meaningful for EntryDeleted and EntryModified.
type Discrepancy struct {
	Kind    Kind
	Country string
	Before  holiday.Entry
	After   holiday.Entry
}

func (d Discrepancy) String() string {
	switch d.Kind {
	case DatasetMissing:
		return fmt.Sprintf("ERROR: Country %v missing after update", d.Country)
	case EntryDeleted:
		return fmt.Sprintf("ERROR: %v - Entry deleted: %v", d.Country, d.Before.Key())
	case EntryModified:
		return fmt.Sprintf("ERROR: %v - Entry modified:\n  Before: %v\n  After:  %v", d.Country, d.Before, d.After)
	}
	return fmt.Sprintf("ERROR: %v - unknown discrepancy", d.Country)
}

// Stats counts entries across the comparison.
type Stats struct {
	CountriesChecked int
	EntriesBefore    int
	EntriesAfter     int
	Unchanged        int
	New              int
	Modified         int
	Deleted          int
}

// Result is the outcome of a verification run.
type Result struct {
	Passed        bool
	Discrepancies []Discrepancy
	Stats         Stats
}

// Report writes a human readable summary in the style of the update output.
func (r Result) Report(w io.Writer) {
	fmt.Fprintf(w, "Countries checked: %d\n", r.Stats.CountriesChecked)
	fmt.Fprintf(w, "Entries before:    %d\n", r.Stats.EntriesBefore)
	fmt.Fprintf(w, "Entries after:     %d\n", r.Stats.EntriesAfter)
	fmt.Fprintf(w, "  - Unchanged:     %d\n", r.Stats.Unchanged)
	fmt.Fprintf(w, "  - New:           %d\n", r.Stats.New)
	fmt.Fprintf(w, "  - Modified:      %d\n", r.Stats.Modified)
	fmt.Fprintf(w, "  - Deleted:       %d\n", r.Stats.Deleted)
	if r.Passed {
		fmt.Fprintf(w, "\nPASSED: all existing entries remain unchanged\n")
		return
	}
	fmt.Fprintf(w, "\nFAILED: existing entries were modified or deleted\n")
	fmt.Fprintf(w, "\nErrors (%d):\n", len(r.Discrepancies))
	for _, d := range r.Discrepancies {
		fmt.Fprintln(w, d)
	}
}

// Pipeline is the update run being verified.
type Pipeline func(ctx context.Context) error

// Snapshot maps country codes to their dataset contents at a point in time.
type Snapshot map[string][]holiday.Entry

// Validator runs a pipeline bracketed by before/after snapshots of a store.
type Validator struct {
	Store *store.Store
	// BackupDir receives copies of the dataset files taken before the run.
	// Empty means a fresh temporary directory.
	BackupDir string
}

// Run snapshots the store, runs the pipeline, and compares. A pipeline error
// is returned wrapped in ErrPipelineFailed without any comparison; the
// before snapshot and backup files are still in place for manual recovery.
func (v *Validator) Run(ctx context.Context, pipeline Pipeline) (Result, error) {
	before, err := v.snapshotBefore(ctx)
	if err != nil {
		return Result{}, err
	}
	if err := pipeline(ctx); err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrPipelineFailed, err)
	}
	after, err := v.snapshotAfter(ctx, before)
	if err != nil {
		return Result{}, err
	}
	return Compare(before, after), nil
}

// snapshotBefore records every dataset in the store and backs the raw files
// up to BackupDir. The snapshot is complete before the pipeline may touch
// anything.
func (v *Validator) snapshotBefore(ctx context.Context) (Snapshot, error) {
	if v.BackupDir == "" {
		dir, err := os.MkdirTemp("", "holiday-backup-")
		if err != nil {
			return nil, err
		}
		v.BackupDir = dir
	} else if err := os.MkdirAll(v.BackupDir, 0755); err != nil {
		return nil, err
	}
	ctxlog.Logger(ctx).Info("backing up datasets", "dir", v.BackupDir)

	keys, err := v.Store.Keys()
	if err != nil {
		return nil, err
	}
	snapshot := Snapshot{}
	for _, cc := range keys {
		raw, err := v.Store.Raw(cc)
		if err != nil {
			return nil, err
		}
		backup := filepath.Join(v.BackupDir, cc+store.FileSuffix)
		if err := os.WriteFile(backup, raw, store.FilePermissions); err != nil {
			return nil, err
		}
		entries, err := v.Store.Load(ctx, cc)
		if err != nil {
			return nil, err
		}
		snapshot[cc] = entries
	}
	return snapshot, nil
}

// snapshotAfter reloads only the countries present before the run. A country
// whose file vanished is left out of the snapshot so Compare reports it.
func (v *Validator) snapshotAfter(ctx context.Context, before Snapshot) (Snapshot, error) {
	after := Snapshot{}
	for cc := range before {
		if !v.Store.Exists(cc) {
			continue
		}
		entries, err := v.Store.Load(ctx, cc)
		if err != nil {
			return nil, err
		}
		after[cc] = entries
	}
	return after, nil
}

func snapshotKeys(s Snapshot) []string {
	keys := make([]string, 0, len(s))
	for cc := range s {
		keys = append(keys, cc)
	}
	sort.Strings(keys)
	return keys
}

// Compare checks that every entry present before is still present and
// unchanged after. New entries are expected and only counted.
func Compare(before, after Snapshot) Result {
	var result Result
	for _, cc := range snapshotKeys(before) {
		beforeEntries := before[cc]
		result.Stats.CountriesChecked++
		result.Stats.EntriesBefore += len(beforeEntries)

		afterEntries, ok := after[cc]
		if !ok {
			result.Discrepancies = append(result.Discrepancies, Discrepancy{Kind: DatasetMissing, Country: cc})
			continue
		}
		result.Stats.EntriesAfter += len(afterEntries)

		afterByKey := make(map[string]holiday.Entry, len(afterEntries))
		for _, e := range afterEntries {
			afterByKey[e.Key()] = e
		}

		for _, b := range beforeEntries {
			a, ok := afterByKey[b.Key()]
			if !ok {
				result.Stats.Deleted++
				result.Discrepancies = append(result.Discrepancies, Discrepancy{Kind: EntryDeleted, Country: cc, Before: b})
				continue
			}
			if a == b {
				result.Stats.Unchanged++
			} else {
				result.Stats.Modified++
				result.Discrepancies = append(result.Discrepancies, Discrepancy{Kind: EntryModified, Country: cc, Before: b, After: a})
			}
		}

		beforeKeys := make(map[string]bool, len(beforeEntries))
		for _, e := range beforeEntries {
			beforeKeys[e.Key()] = true
		}
		for _, e := range afterEntries {
			if !beforeKeys[e.Key()] {
				result.Stats.New++
			}
		}
	}
	result.Passed = len(result.Discrepancies) == 0
	return result
}
