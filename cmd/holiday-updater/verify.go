package main

import (
	"context"
	"fmt"
	"os"

	"github.com/klabast/wb-services/holiday-updater/internal/verify"
)

type verifyFlags struct {
	CommonFlags
	StartYear int    `subcmd:"start-year,0,first year to fetch (YYYY)"`
	EndYear   int    `subcmd:"end-year,0,last year to fetch (YYYY)"`
	BackupDir string `subcmd:"backup-dir,,'directory for dataset backups, defaults to a temporary directory'"`
}

func verifyRunner(ctx context.Context, values interface{}, args []string) error {
	fv := values.(*verifyFlags)
	ctx, cleanup, err := fv.initContext(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	updater, opts, err := newUpdater(ctx, &fv.CommonFlags, fv.StartYear, fv.EndYear)
	if err != nil {
		return err
	}
	countries, err := updater.Countries(args)
	if err != nil {
		return err
	}

	validator := &verify.Validator{Store: updater.Store, BackupDir: fv.BackupDir}
	result, err := validator.Run(ctx, func(ctx context.Context) error {
		_, err := updater.Run(ctx, countries, opts)
		return err
	})
	if err != nil {
		return err
	}
	fmt.Printf("Backups written to %v\n\n", validator.BackupDir)
	result.Report(os.Stdout)
	if !result.Passed {
		return fmt.Errorf("verification failed with %d discrepancies", len(result.Discrepancies))
	}
	return nil
}
