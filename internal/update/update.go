// Package update implements the append/recreate update run over a directory
// of country holiday files.
package update

import (
	"context"
	"errors"
	"fmt"
	"io"

	cloudengerrors "cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
	"github.com/klabast/wb-services/holiday-updater/internal/config"
	"github.com/klabast/wb-services/holiday-updater/internal/holiday"
	"github.com/klabast/wb-services/holiday-updater/internal/source"
	"github.com/klabast/wb-services/holiday-updater/internal/store"
)

// ErrRecreateConflict is returned for a country whose dataset already exists
// when recreating without force.
var ErrRecreateConflict = errors.New("dataset file already exists, cannot recreate without force")

// Options control an update run.
type Options struct {
	Window   holiday.Window
	Recreate bool // replace datasets instead of merging into them
	Force    bool // with Recreate, remove existing files first
	DryRun   bool // fetch and merge but never write
}

// Result summarizes a run. A run with Failed > 0 still updated the
// countries counted in Succeeded.
type Result struct {
	Succeeded int
	Failed    int
}

// Updater fetches holidays per country and folds them into the store.
type Updater struct {
	Store     *store.Store
	Client    source.Client
	Calendars map[string]config.Calendar
	Out       io.Writer
}

// Run updates each country in turn. An error in one country is reported and
// counted but does not stop the others. The returned error aggregates all
// per-country failures.
func (u *Updater) Run(ctx context.Context, countries []string, opts Options) (Result, error) {
	out := u.Out
	if out == nil {
		out = io.Discard
	}
	var result Result
	errs := &cloudengerrors.M{}
	for _, cc := range countries {
		if err := u.updateCountry(ctx, cc, opts, out); err != nil {
			fmt.Fprintf(out, "ERROR processing %v: %v\n", cc, err)
			ctxlog.Logger(ctx).Error("update failed", "country", cc, "err", err)
			errs.Append(fmt.Errorf("%v: %w", cc, err))
			result.Failed++
			continue
		}
		result.Succeeded++
	}
	return result, errs.Err()
}

func (u *Updater) updateCountry(ctx context.Context, cc string, opts Options, out io.Writer) error {
	cal, ok := u.Calendars[cc]
	if !ok {
		return fmt.Errorf("country code %q is not supported", cc)
	}

	if opts.Recreate && u.Store.Exists(cc) {
		if !opts.Force {
			return fmt.Errorf("%v: %w", u.Store.Path(cc), ErrRecreateConflict)
		}
		if !opts.DryRun {
			if err := u.Store.Remove(cc); err != nil {
				return err
			}
		}
	}

	fmt.Fprintf(out, "Processing %v: %v\n", cc, cal.ID)

	events, err := source.FetchAll(ctx, u.Client, cal.ID, opts.Window.TimeMin(), opts.Window.TimeMax())
	if err != nil {
		return err
	}

	var existing []holiday.Entry
	if !opts.Recreate {
		existing, err = u.Store.Load(ctx, cc)
		if err != nil {
			return err
		}
	}

	format := holiday.FormatOf(existing)
	incoming := make([]holiday.Entry, 0, len(events))
	for _, ev := range events {
		entry, ok := holiday.Normalize(ev.Date(), ev.Summary, opts.Window, format)
		if !ok {
			continue
		}
		incoming = append(incoming, entry)
	}
	incoming = holiday.Dedupe(incoming)

	if len(incoming) == 0 {
		fmt.Fprintf(out, "  No holidays found for %v (%s)\n", cc, opts.Window)
		return nil
	}

	var final []holiday.Entry
	if opts.Recreate {
		final = incoming
		holiday.SortByDate(final)
		fmt.Fprintf(out, "  Creating new file with %d holidays\n", len(final))
	} else {
		final = holiday.Merge(existing, incoming)
		fmt.Fprintf(out, "  Added %d new holidays (total: %d)\n", len(final)-len(existing), len(final))
	}

	if opts.DryRun {
		ctxlog.Logger(ctx).Info("dry run, not writing", "country", cc, "entries", len(final))
		return nil
	}
	return u.Store.Save(cc, final)
}

// Countries returns the codes to update: the explicit list if given,
// otherwise every dataset already present in the store.
func (u *Updater) Countries(explicit []string) ([]string, error) {
	if len(explicit) > 0 {
		return explicit, nil
	}
	codes, err := u.Store.Keys()
	if err != nil {
		return nil, err
	}
	if len(codes) == 0 {
		return nil, fmt.Errorf("no country files found in %v", u.Store.Dir)
	}
	return codes, nil
}
