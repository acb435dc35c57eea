// Copyright 2026 The Civica Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/civica-platform/civica-admin/lib/api"
)

// statsCommand fetches the dashboard counters without opening the
// console. Output switches to JSON when stdout is piped, so cron jobs
// and monitoring scripts get a stable format without passing --json.
func statsCommand() *Command {
	var options runtimeOptions
	var outputJSON bool

	return &Command{
		Name:    "stats",
		Summary: "Print the platform's aggregate counts",
		Usage:   "civica-admin stats [flags]",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("stats", pflag.ContinueOnError)
			options.bind(flagSet)
			flagSet.BoolVar(&outputJSON, "json", false, "output as JSON (implied when stdout is piped)")
			return flagSet
		},
		Examples: []Example{
			{
				Description: "Extract a single counter in a script",
				Command:     "civica-admin stats | jq .users_count",
			},
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("unexpected argument: %s", args[0])
			}

			rt, err := newRuntime(options)
			if err != nil {
				return err
			}
			defer rt.closeLog()

			if err := rt.store.Restore(); err != nil {
				return err
			}
			if _, err := rt.store.Require(); err != nil {
				fmt.Fprintln(os.Stderr, err)
				return &ExitError{Code: 1}
			}

			ctx, cancel := context.WithTimeout(context.Background(), rt.config.RequestTimeout)
			defer cancel()

			stats, err := rt.client.GetDashboardStats(ctx)
			if err != nil {
				if api.IsAuth(err) {
					fmt.Fprintf(os.Stderr, "session rejected by the backend, run \"civica-admin login\" again: %s\n", api.UserMessage(err))
					return &ExitError{Code: 1}
				}
				return err
			}

			if outputJSON || !term.IsTerminal(int(os.Stdout.Fd())) {
				return WriteJSON(stats)
			}

			tw := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
			fmt.Fprintf(tw, "Users\t%d\n", stats.UsersCount)
			fmt.Fprintf(tw, "Themes\t%d\n", stats.ThemesCount)
			fmt.Fprintf(tw, "Levels\t%d\n", stats.LevelsCount)
			fmt.Fprintf(tw, "Questions\t%d\n", stats.QuestionsCount)
			if stats.LastUpdated != "" {
				fmt.Fprintf(tw, "Updated\t%s\n", stats.LastUpdated)
			}
			return tw.Flush()
		},
	}
}

// versionCommand prints the build version.
func versionCommand(version string) *Command {
	return &Command{
		Name:    "version",
		Summary: "Print the civica-admin version",
		Usage:   "civica-admin version",
		Run: func(args []string) error {
			fmt.Println(version)
			return nil
		},
	}
}
