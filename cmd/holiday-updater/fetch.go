package main

import (
	"context"
	"fmt"
	"os"

	"github.com/klabast/wb-services/holiday-updater/internal/export"
	"github.com/klabast/wb-services/holiday-updater/internal/holiday"
	"github.com/klabast/wb-services/holiday-updater/internal/source"
)

type fetchFlags struct {
	CommonFlags
	CalendarID string `subcmd:"calendar-id,,fetch a single calendar by id instead of per-country"`
	StartYear  int    `subcmd:"start-year,0,first year to fetch (YYYY)"`
	EndYear    int    `subcmd:"end-year,0,last year to fetch (YYYY)"`
	Format     string `subcmd:"format,csv,output format: csv or json"`
	Out        string `subcmd:"out,,'output file, defaults to stdout'"`
}

func fetchRunner(ctx context.Context, values interface{}, args []string) error {
	fv := values.(*fetchFlags)
	ctx, cleanup, err := fv.initContext(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	window := holiday.Window{StartYear: fv.StartYear, EndYear: fv.EndYear}
	if err := window.Validate(); err != nil {
		return err
	}
	if fv.Format != "csv" && fv.Format != "json" {
		return fmt.Errorf("unknown format %q, expected csv or json", fv.Format)
	}

	// (label, calendar id) pairs to fetch.
	type target struct {
		key string
		id  string
	}
	var targets []target
	switch {
	case fv.CalendarID != "":
		targets = append(targets, target{key: "custom", id: fv.CalendarID})
	case len(args) > 0:
		calendars, err := fv.calendars()
		if err != nil {
			return err
		}
		for _, cc := range args {
			cal, ok := calendars[cc]
			if !ok {
				fmt.Fprintf(os.Stderr, "WARNING: %q is not a supported country code, skipping\n", cc)
				continue
			}
			targets = append(targets, target{key: cc, id: cal.ID})
		}
	default:
		return fmt.Errorf("provide country codes or --calendar-id")
	}

	key, err := fv.apiKey()
	if err != nil {
		return err
	}
	client, err := source.NewCalendar(ctx, key)
	if err != nil {
		return err
	}

	var rows []export.Row
	for _, tgt := range targets {
		fmt.Fprintf(os.Stderr, "Fetching: %v [%v] ...\n", tgt.key, tgt.id)
		events, err := source.FetchAll(ctx, client, tgt.id, window.TimeMin(), window.TimeMax())
		if err != nil {
			return err
		}
		for _, row := range export.Rows(events, tgt.id, tgt.key) {
			if year, ok := yearOf(row.Date); !ok || !window.Contains(year) {
				continue
			}
			rows = append(rows, row)
		}
	}
	export.Sort(rows)

	out := os.Stdout
	if fv.Out != "" {
		f, err := os.Create(fv.Out)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	if fv.Format == "csv" {
		err = export.WriteCSV(out, rows)
	} else {
		err = export.WriteJSON(out, rows)
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "OK: wrote %d rows\n", len(rows))
	return nil
}

func yearOf(date string) (int, bool) {
	return holiday.Entry{Date: date}.Year()
}
