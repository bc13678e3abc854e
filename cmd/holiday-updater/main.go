// holiday-updater maintains the per-country holiday JSON datasets from the
// public Google Calendar holiday calendars.
package main

import (
	"context"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/subcmd"
	"github.com/joho/godotenv"
)

var cmdSet *subcmd.CommandSet

func init() {
	updateFlagSet := subcmd.NewFlagSet()
	updateFlagSet.MustRegisterFlagStruct(&updateFlags{}, nil, nil)
	verifyFlagSet := subcmd.NewFlagSet()
	verifyFlagSet.MustRegisterFlagStruct(&verifyFlags{}, nil, nil)
	fetchFlagSet := subcmd.NewFlagSet()
	fetchFlagSet.MustRegisterFlagStruct(&fetchFlags{}, nil, nil)
	countriesFlagSet := subcmd.NewFlagSet()
	countriesFlagSet.MustRegisterFlagStruct(&countriesFlags{}, nil, nil)

	updateCmd := subcmd.NewCommand("update", updateFlagSet, updateRunner)
	updateCmd.Document("fetch holidays and merge them into the country JSON files", "[country-code]*")

	verifyCmd := subcmd.NewCommand("verify", verifyFlagSet, verifyRunner)
	verifyCmd.Document("run an update bracketed by before/after snapshots and report regressions", "[country-code]*")

	fetchCmd := subcmd.NewCommand("fetch", fetchFlagSet, fetchRunner)
	fetchCmd.Document("fetch raw holiday rows from one or more calendars as csv or json", "[country-code]*")

	countriesCmd := subcmd.NewCommand("countries", countriesFlagSet, countriesRunner, subcmd.WithoutArguments())
	countriesCmd.Document("list the supported country codes and their calendars")

	cmdSet = subcmd.NewCommandSet(updateCmd, verifyCmd, fetchCmd, countriesCmd)
}

func main() {
	// A .env file is a convenient place for GCAL_API_KEY during development.
	_ = godotenv.Load()
	ctx := context.Background()
	if err := cmdSet.Dispatch(ctx); err != nil {
		cmdutil.Exit("%v", err)
	}
}
