package main

import (
	"context"
	"fmt"
	"os"

	"github.com/klabast/wb-services/holiday-updater/internal/holiday"
	"github.com/klabast/wb-services/holiday-updater/internal/source"
	"github.com/klabast/wb-services/holiday-updater/internal/store"
	"github.com/klabast/wb-services/holiday-updater/internal/update"
)

type updateFlags struct {
	CommonFlags
	StartYear int  `subcmd:"start-year,0,first year to fetch (YYYY)"`
	EndYear   int  `subcmd:"end-year,0,last year to fetch (YYYY)"`
	Recreate  bool `subcmd:"recreate,false,'recreate JSON files, error if files exist unless --force is used'"`
	Force     bool `subcmd:"force,false,force overwrite when using --recreate"`
	DryRun    bool `subcmd:"dry-run,false,fetch and merge but do not write any files"`
}

func updateRunner(ctx context.Context, values interface{}, args []string) error {
	fv := values.(*updateFlags)
	ctx, cleanup, err := fv.initContext(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	updater, opts, err := newUpdater(ctx, &fv.CommonFlags, fv.StartYear, fv.EndYear)
	if err != nil {
		return err
	}
	opts.Recreate = fv.Recreate
	opts.Force = fv.Force
	opts.DryRun = fv.DryRun

	countries, err := updater.Countries(args)
	if err != nil {
		return err
	}

	fmt.Printf("Found %d countries: %v\n", len(countries), countries)
	fmt.Printf("Year range: %s\n", opts.Window)
	mode := "APPEND"
	if opts.Recreate {
		mode = "RECREATE"
	}
	fmt.Printf("Mode: %v\n", mode)
	if opts.Recreate && opts.Force {
		fmt.Println("WARNING: --force is set, existing files will be overwritten")
	}
	fmt.Println()

	result, err := updater.Run(ctx, countries, opts)
	fmt.Printf("\nCompleted: %d successful, %d errors\n", result.Succeeded, result.Failed)
	return err
}

// newUpdater assembles the store, calendar client and mapping shared by the
// update and verify commands.
func newUpdater(ctx context.Context, cf *CommonFlags, startYear, endYear int) (*update.Updater, update.Options, error) {
	window := holiday.Window{StartYear: startYear, EndYear: endYear}
	if err := window.Validate(); err != nil {
		return nil, update.Options{}, err
	}
	if info, err := os.Stat(cf.JSONDir); err != nil || !info.IsDir() {
		return nil, update.Options{}, fmt.Errorf("JSON directory %q does not exist", cf.JSONDir)
	}
	calendars, err := cf.calendars()
	if err != nil {
		return nil, update.Options{}, err
	}
	key, err := cf.apiKey()
	if err != nil {
		return nil, update.Options{}, err
	}
	client, err := source.NewCalendar(ctx, key)
	if err != nil {
		return nil, update.Options{}, err
	}
	updater := &update.Updater{
		Store:     store.New(cf.JSONDir),
		Client:    client,
		Calendars: calendars,
		Out:       os.Stdout,
	}
	return updater, update.Options{Window: window}, nil
}
