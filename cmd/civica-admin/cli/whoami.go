// Copyright 2026 The Civica Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/pflag"
)

// logoutCommand drops the local session. Purely local; the backend's
// tokens cannot be revoked, they simply stop being sent.
func logoutCommand() *Command {
	var options runtimeOptions

	return &Command{
		Name:    "logout",
		Summary: "Discard the saved session",
		Usage:   "civica-admin logout [flags]",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("logout", pflag.ContinueOnError)
			options.bind(flagSet)
			return flagSet
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
				rt.logger.Warn("session file unreadable, removing it anyway", "error", err)
			}
			if !rt.store.Authenticated() {
				// Remove a corrupt file even when nothing restored.
				if err := rt.store.Logout(); err != nil {
					return err
				}
				fmt.Fprintln(os.Stderr, "Not logged in.")
				return nil
			}

			if err := rt.store.Logout(); err != nil {
				return err
			}
			fmt.Fprintln(os.Stderr, "Logged out.")
			return nil
		},
	}
}

// whoamiCommand prints the cached session identity. It never calls the
// backend; it reports what the next command would authenticate as.
func whoamiCommand() *Command {
	var options runtimeOptions
	var outputJSON bool

	return &Command{
		Name:    "whoami",
		Summary: "Show the saved session identity",
		Usage:   "civica-admin whoami [flags]",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("whoami", pflag.ContinueOnError)
			options.bind(flagSet)
			flagSet.BoolVar(&outputJSON, "json", false, "output as JSON")
			return flagSet
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
			user, err := rt.store.Require()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				return &ExitError{Code: 1}
			}

			expiry, hasExpiry := rt.store.TokenExpiry()

			if outputJSON {
				identity := struct {
					Email       string `json:"email"`
					Role        string `json:"role"`
					Verified    string `json:"verified"`
					SessionFile string `json:"session_file"`
					TokenExpiry string `json:"token_expiry,omitempty"`
				}{
					Email:       user.Email,
					Role:        string(user.Role),
					Verified:    user.IsVerified,
					SessionFile: rt.store.Path(),
				}
				if hasExpiry {
					identity.TokenExpiry = expiry.Format(time.RFC3339)
				}
				return WriteJSON(identity)
			}

			fmt.Printf("Logged in as %s (%s)\n", user.Email, user.Role)
			fmt.Printf("Session file: %s\n", rt.store.Path())
			switch {
			case !hasExpiry:
				fmt.Println("Token expiry: none recorded in token")
			case time.Now().After(expiry):
				fmt.Printf("Token expiry: %s (expired)\n", expiry.Format(time.RFC3339))
			default:
				fmt.Printf("Token expiry: %s\n", expiry.Format(time.RFC3339))
			}
			return nil
		},
	}
}
