// Copyright 2026 The Civica Authors
// SPDX-License-Identifier: Apache-2.0

// Command civica-admin is the terminal administration console for the
// Civica quiz platform. Run it without arguments to open the console;
// see "civica-admin --help" for the script-friendly subcommands.
package main

import (
	"fmt"
	"os"

	"github.com/civica-platform/civica-admin/cmd/civica-admin/cli"
)

// version is overridden at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := cli.Root(version).Execute(os.Args[1:]); err != nil {
		// Commands that print their own output return an ExitError
		// with the desired code. Don't print a redundant error line
		// for those.
		if coder, ok := err.(interface{ ExitCode() int }); ok {
			os.Exit(coder.ExitCode())
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
