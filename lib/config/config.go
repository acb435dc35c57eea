// Copyright 2026 The Civica Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds everything the admin client needs to run.
type Config struct {
	// APIBaseURL is the backend root, without the /api prefix.
	APIBaseURL string `yaml:"api_base_url"`

	// SessionFile overrides the default session file location.
	// Empty means the well-known per-user path.
	SessionFile string `yaml:"session_file"`

	// RequestTimeout bounds every API call. The client surfaces a
	// network error when it elapses; there is no retry.
	RequestTimeout time.Duration `yaml:"request_timeout"`

	// LogOutput is a file path that receives JSON log records in
	// addition to stderr. Empty disables the extra sink.
	LogOutput string `yaml:"log_output"`
}

// Default returns the built-in configuration: a local development
// backend and a 15 second request timeout.
func Default() Config {
	return Config{
		APIBaseURL:     "http://localhost:5002",
		RequestTimeout: 15 * time.Second,
	}
}

// Load resolves configuration. path is the --config value; when empty,
// the CIVICA_CONFIG environment variable is consulted. A named file
// that does not exist is an error; no file at all is fine.
func Load(path string) (Config, error) {
	// A .env in the working directory seeds the environment for local
	// development. Missing is the normal case.
	_ = godotenv.Load()

	config := Default()

	if path == "" {
		path = os.Getenv("CIVICA_CONFIG")
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("reading config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &config); err != nil {
			return Config{}, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}

	// Environment overrides beat the file.
	if baseURL := os.Getenv("CIVICA_API_URL"); baseURL != "" {
		config.APIBaseURL = baseURL
	}
	if sessionFile := os.Getenv("CIVICA_SESSION_FILE"); sessionFile != "" {
		config.SessionFile = sessionFile
	}

	if err := config.validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

func (config Config) validate() error {
	if !strings.HasPrefix(config.APIBaseURL, "http://") && !strings.HasPrefix(config.APIBaseURL, "https://") {
		return fmt.Errorf("config: api_base_url must be http or https (got %q)", config.APIBaseURL)
	}
	if config.RequestTimeout <= 0 {
		return fmt.Errorf("config: request_timeout must be positive (got %s)", config.RequestTimeout)
	}
	return nil
}
