// Copyright 2026 The Civica Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestNewLoggerWritesJSONToFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "admin.log")

	logger, closeLog, err := NewLogger(logPath, true)
	if err != nil {
		t.Fatalf("NewLogger() error: %v", err)
	}

	logger.Info("theme saved", "theme", "t-42")
	if err := closeLog(); err != nil {
		t.Fatalf("closing log file: %v", err)
	}

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}

	var record map[string]any
	if err := json.Unmarshal(data, &record); err != nil {
		t.Fatalf("log line is not JSON: %v\n%s", err, data)
	}
	if record["msg"] != "theme saved" {
		t.Errorf("msg = %v, want %q", record["msg"], "theme saved")
	}
	if record["theme"] != "t-42" {
		t.Errorf("theme = %v, want t-42", record["theme"])
	}
}

func TestNewLoggerQuietWithoutFileDiscards(t *testing.T) {
	logger, closeLog, err := NewLogger("", true)
	if err != nil {
		t.Fatalf("NewLogger() error: %v", err)
	}
	defer closeLog()

	// Must not panic or write anywhere.
	logger.Info("ignored")
}
