package main

import (
	"context"
	"fmt"
	"os"

	"github.com/klabast/wb-services/holiday-updater/internal/config"
)

type countriesFlags struct {
	CommonFlags
	WriteConfig bool `subcmd:"write-config,false,write the mapping as YAML suitable for --calendar-config"`
}

func countriesRunner(ctx context.Context, values interface{}, args []string) error {
	fv := values.(*countriesFlags)
	calendars, err := fv.calendars()
	if err != nil {
		return err
	}
	if fv.WriteConfig {
		return config.WriteConfig(os.Stdout, calendars)
	}
	for _, cc := range config.Codes(calendars) {
		cal := calendars[cc]
		fmt.Printf("%v  %v (%v)\n", cc, cal.ID, cal.Lang)
	}
	return nil
}
