// Copyright 2026 The Civica Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides YAML configuration loading for the admin
// client.
//
// Configuration is resolved in a strict order: built-in defaults,
// then the YAML file named by --config or the CIVICA_CONFIG
// environment variable, then CIVICA_* environment variables
// (optionally seeded from a .env file in the working directory).
// There is no directory discovery beyond this chain, which keeps
// configuration deterministic and auditable.
//
// Key exports:
//
//   - [Config] -- API base URL, session file, request timeout, log sink
//   - [Default] -- built-in local development values
//   - [Load] -- the single entry point
//
// This package depends on no other Civica packages.
package config
