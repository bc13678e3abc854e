package main

import (
	"context"
	"fmt"
	"os"

	"cloudeng.io/cmdutil"
	"cloudeng.io/logging/ctxlog"
	"github.com/klabast/wb-services/holiday-updater/internal/config"
	"golang.org/x/term"
)

// CommonFlags are shared by every command.
type CommonFlags struct {
	cmdutil.LoggingFlags
	JSONDir        string `subcmd:"json-dir,json,directory containing the per-country JSON files"`
	APIKey         string `subcmd:"api-key,,'Google API key, defaults to the GCAL_API_KEY environment variable'"`
	CalendarConfig string `subcmd:"calendar-config,,optional YAML file overriding the built-in calendar mapping"`
}

// initContext attaches the configured logger to the context. The returned
// cleanup closes the log file if one was opened.
func (cf *CommonFlags) initContext(ctx context.Context) (context.Context, func(), error) {
	logger, err := cf.LoggingConfig().NewLogger()
	if err != nil {
		return nil, nil, err
	}
	return ctxlog.WithLogger(ctx, logger.Logger), func() { logger.Close() }, nil
}

// apiKey resolves the API key: flag, then environment, then an interactive
// prompt when attached to a terminal.
func (cf *CommonFlags) apiKey() (string, error) {
	if cf.APIKey != "" {
		return cf.APIKey, nil
	}
	if key := os.Getenv("GCAL_API_KEY"); key != "" {
		return key, nil
	}
	if term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprint(os.Stderr, "Google API key: ")
		key, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", err
		}
		if len(key) > 0 {
			return string(key), nil
		}
	}
	return "", fmt.Errorf("API key required: set GCAL_API_KEY or use --api-key")
}

// calendars returns the country to calendar mapping, with any override file
// applied.
func (cf *CommonFlags) calendars() (map[string]config.Calendar, error) {
	if cf.CalendarConfig == "" {
		return config.Calendars, nil
	}
	return config.Load(cf.CalendarConfig)
}
