// Copyright 2026 The Civica Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.APIBaseURL != "http://localhost:5002" {
		t.Errorf("expected api_base_url=http://localhost:5002, got %s", cfg.APIBaseURL)
	}
	if cfg.RequestTimeout != 15*time.Second {
		t.Errorf("expected request_timeout=15s, got %s", cfg.RequestTimeout)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
api_base_url: https://api.civica.example
session_file: /var/lib/civica/session.json
request_timeout: 30s
log_output: /tmp/civica-admin.log
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing config file: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.APIBaseURL != "https://api.civica.example" {
		t.Errorf("expected api_base_url=https://api.civica.example, got %s", cfg.APIBaseURL)
	}
	if cfg.SessionFile != "/var/lib/civica/session.json" {
		t.Errorf("expected session_file=/var/lib/civica/session.json, got %s", cfg.SessionFile)
	}
	if cfg.RequestTimeout != 30*time.Second {
		t.Errorf("expected request_timeout=30s, got %s", cfg.RequestTimeout)
	}
	if cfg.LogOutput != "/tmp/civica-admin.log" {
		t.Errorf("expected log_output=/tmp/civica-admin.log, got %s", cfg.LogOutput)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("api_base_url: http://10.0.0.5:5002\n"), 0o600); err != nil {
		t.Fatalf("writing config file: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.APIBaseURL != "http://10.0.0.5:5002" {
		t.Errorf("expected api_base_url=http://10.0.0.5:5002, got %s", cfg.APIBaseURL)
	}
	if cfg.RequestTimeout != 15*time.Second {
		t.Errorf("expected default request_timeout=15s, got %s", cfg.RequestTimeout)
	}
}

func TestLoadMissingNamedFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Fatal("expected error for missing named config file")
	}
}

func TestLoadNoFileUsesDefaults(t *testing.T) {
	t.Setenv("CIVICA_CONFIG", "")
	t.Setenv("CIVICA_API_URL", "")
	t.Setenv("CIVICA_SESSION_FILE", "")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIBaseURL != "http://localhost:5002" {
		t.Errorf("expected default api_base_url, got %s", cfg.APIBaseURL)
	}
}

func TestEnvironmentOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("api_base_url: http://from-file:5002\n"), 0o600); err != nil {
		t.Fatalf("writing config file: %v", err)
	}

	t.Setenv("CIVICA_API_URL", "http://from-env:5002")
	t.Setenv("CIVICA_SESSION_FILE", "/tmp/override-session.json")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.APIBaseURL != "http://from-env:5002" {
		t.Errorf("expected env override http://from-env:5002, got %s", cfg.APIBaseURL)
	}
	if cfg.SessionFile != "/tmp/override-session.json" {
		t.Errorf("expected env override session file, got %s", cfg.SessionFile)
	}
}

func TestValidateRejectsBadScheme(t *testing.T) {
	t.Setenv("CIVICA_API_URL", "ftp://backend:5002")

	_, err := Load("")
	if err == nil {
		t.Fatal("expected error for non-http scheme")
	}
	if !strings.Contains(err.Error(), "api_base_url") {
		t.Errorf("expected api_base_url in error, got: %v", err)
	}
}

func TestValidateRejectsZeroTimeout(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("request_timeout: -1s\n"), 0o600); err != nil {
		t.Fatalf("writing config file: %v", err)
	}

	t.Setenv("CIVICA_API_URL", "")
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for negative request_timeout")
	}
}
