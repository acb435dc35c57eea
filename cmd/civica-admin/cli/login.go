// Copyright 2026 The Civica Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/civica-platform/civica-admin/lib/api"
)

// loginCommand authenticates against the backend, verifies the
// credentials, and saves the session to the well-known path. The
// console and the other subcommands then pick the session up
// transparently.
func loginCommand() *Command {
	var options runtimeOptions
	var passwordFile string

	return &Command{
		Name:    "login",
		Summary: "Authenticate and save a session",
		Description: `Log in to the Civica backend and save the session locally.

The session file is stored at ~/.config/civica/session.json (or
$CIVICA_SESSION_FILE if set, or $XDG_CONFIG_HOME/civica/session.json).
It is written with mode 0600 since it contains an access token.

The password is prompted interactively unless --password-file names a
file containing it.`,
		Usage: "civica-admin login <email> [flags]",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("login", pflag.ContinueOnError)
			options.bind(flagSet)
			flagSet.StringVar(&passwordFile, "password-file", "", "path to a file containing the password (default: prompt)")
			return flagSet
		},
		Examples: []Example{
			{
				Description: "Log in interactively (prompts for password)",
				Command:     "civica-admin login admin@civica.example",
			},
			{
				Description: "Log in with the password from a file",
				Command:     "civica-admin login admin@civica.example --password-file /run/secrets/civica",
			},
		},
		Run: func(args []string) error {
			if len(args) < 1 {
				return fmt.Errorf("email is required\n\nUsage: civica-admin login <email> [flags]")
			}
			email := args[0]
			if len(args) > 1 {
				return fmt.Errorf("unexpected argument: %s", args[1])
			}

			password, err := readLoginPassword(passwordFile)
			if err != nil {
				return err
			}

			rt, err := newRuntime(options)
			if err != nil {
				return err
			}
			defer rt.closeLog()

			ctx, cancel := context.WithTimeout(context.Background(), rt.config.RequestTimeout)
			defer cancel()

			user, err := rt.store.Login(ctx, rt.client, email, password)
			if err != nil {
				if api.IsAuth(err) {
					return fmt.Errorf("login failed: %s", api.UserMessage(err))
				}
				return fmt.Errorf("login failed: %w", err)
			}
			if user.Role != api.RoleAdmin {
				// The backend accepts any account; the admin surface
				// does not. Drop the session again rather than leave a
				// token around that every other command will reject.
				_ = rt.store.Logout()
				return fmt.Errorf("account %s is not an administrator", user.Email)
			}

			fmt.Fprintf(os.Stderr, "Logged in as %s\n", user.Email)
			fmt.Fprintf(os.Stderr, "Session saved to %s\n", rt.store.Path())
			return nil
		},
	}
}

// readLoginPassword reads the password for the login command. With no
// --password-file it prompts on the terminal with echo disabled.
func readLoginPassword(passwordFile string) (string, error) {
	if passwordFile != "" && passwordFile != "-" {
		data, err := os.ReadFile(passwordFile)
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", passwordFile, err)
		}
		password := strings.TrimRight(string(data), "\r\n")
		if password == "" {
			return "", fmt.Errorf("file %s is empty", passwordFile)
		}
		return password, nil
	}

	stdinFd := int(os.Stdin.Fd())
	if !term.IsTerminal(stdinFd) {
		return "", fmt.Errorf("no terminal available for the password prompt (use --password-file)")
	}

	fmt.Fprint(os.Stderr, "Password: ")
	passwordBytes, err := term.ReadPassword(stdinFd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("reading password: %w", err)
	}
	if len(passwordBytes) == 0 {
		return "", fmt.Errorf("password is empty")
	}
	return string(passwordBytes), nil
}
