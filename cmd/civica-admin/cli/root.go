// Copyright 2026 The Civica Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"log/slog"
	"net/http"

	"github.com/spf13/pflag"

	"github.com/civica-platform/civica-admin/lib/api"
	"github.com/civica-platform/civica-admin/lib/config"
	"github.com/civica-platform/civica-admin/lib/session"
)

// runtime bundles the pieces every command needs: resolved
// configuration, a scoped logger, the session store, and an API client
// that reads its bearer token from the store.
type runtime struct {
	config   config.Config
	logger   *slog.Logger
	closeLog func() error
	store    *session.Store
	client   *api.Client
}

// runtimeOptions carries the flag values shared across commands.
// Empty strings mean "use the resolved configuration".
type runtimeOptions struct {
	ConfigPath string
	APIBaseURL string
	LogOutput  string

	// QuietLogs suppresses stderr logging; the console sets it
	// because it owns the terminal.
	QuietLogs bool
}

// bind registers the shared flags on flagSet.
func (o *runtimeOptions) bind(flagSet *pflag.FlagSet) {
	flagSet.StringVar(&o.ConfigPath, "config", "", "path to a YAML config file")
	flagSet.StringVar(&o.APIBaseURL, "api-url", "", "backend base URL (overrides config)")
	flagSet.StringVar(&o.LogOutput, "log-output", "", "file receiving JSON log records (overrides config)")
}

// newRuntime resolves configuration, applies flag overrides, and wires
// the store and client.
func newRuntime(options runtimeOptions) (*runtime, error) {
	resolved, err := config.Load(options.ConfigPath)
	if err != nil {
		return nil, err
	}
	if options.APIBaseURL != "" {
		resolved.APIBaseURL = options.APIBaseURL
	}
	if options.LogOutput != "" {
		resolved.LogOutput = options.LogOutput
	}

	logger, closeLog, err := NewLogger(resolved.LogOutput, options.QuietLogs)
	if err != nil {
		return nil, err
	}

	store := session.NewStore(resolved.SessionFile, logger)

	client, err := api.NewClient(api.Config{
		BaseURL:     resolved.APIBaseURL,
		TokenSource: store,
		HTTPClient:  &http.Client{Timeout: resolved.RequestTimeout},
		Logger:      logger,
	})
	if err != nil {
		closeLog()
		return nil, err
	}

	return &runtime{
		config:   resolved,
		logger:   logger,
		closeLog: closeLog,
		store:    store,
		client:   client,
	}, nil
}

// Root builds the civica-admin command tree. Running the root command
// with no subcommand starts the interactive console.
func Root(version string) *Command {
	root := consoleCommand()
	root.Name = "civica-admin"
	root.Summary = "Administration console for the Civica quiz platform"
	root.Description = `civica-admin manages the Civica quiz platform: user accounts, themes,
levels, and questions.

Run without a subcommand to open the interactive console. The session
lifecycle commands (login, logout, whoami) and the stats query work
without entering the console, for use from scripts.`
	root.Usage = "civica-admin [command] [flags]"
	root.Subcommands = []*Command{
		loginCommand(),
		logoutCommand(),
		whoamiCommand(),
		statsCommand(),
		versionCommand(version),
	}
	return root
}
