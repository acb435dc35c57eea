// Copyright 2026 The Civica Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/civica-platform/civica-admin/lib/adminui"
)

// consoleCommand is the root command's action: the full-screen admin
// console. It is also the template the Root function decorates with
// the top-level name, description, and subcommands.
func consoleCommand() *Command {
	var options runtimeOptions

	return &Command{
		Name:    "console",
		Summary: "Open the interactive admin console",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("console", pflag.ContinueOnError)
			options.bind(flagSet)
			return flagSet
		},
		Examples: []Example{
			{
				Description: "Open the console against a staging backend",
				Command:     "CIVICA_API_URL=https://staging.civica.example civica-admin",
			},
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("unexpected argument: %s", args[0])
			}
			if !term.IsTerminal(int(os.Stdout.Fd())) {
				return fmt.Errorf("the console needs a terminal (use the login, whoami, and stats subcommands from scripts)")
			}

			options.QuietLogs = true
			rt, err := newRuntime(options)
			if err != nil {
				return err
			}
			defer rt.closeLog()

			model := adminui.NewModel(rt.client, rt.store, rt.logger, rt.config.RequestTimeout)
			program := tea.NewProgram(model, tea.WithAltScreen())
			if _, err := program.Run(); err != nil {
				return fmt.Errorf("console: %w", err)
			}
			return nil
		},
	}
}
