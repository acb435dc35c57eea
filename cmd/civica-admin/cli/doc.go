// Copyright 2026 The Civica Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli implements the civica-admin command tree.
//
// The root command starts the full-screen admin console. Subcommands
// cover the session lifecycle (login, logout, whoami) and quick
// read-only queries (stats) that are useful from scripts without
// entering the console.
//
// Every command resolves its configuration the same way: built-in
// defaults, then an optional YAML file, then environment variables.
// See the config package for the exact resolution order.
package cli
