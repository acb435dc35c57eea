// Copyright 2026 The Civica Authors
// SPDX-License-Identifier: Apache-2.0

// Package session holds the operator's authentication state: the
// bearer token and the cached profile of the logged-in admin.
//
// The session persists to a JSON file so a new process restores the
// same session. Restoring does not revalidate the token against the
// backend; a stale or revoked token surfaces as an auth error on the
// next API call, at which point callers drop the session.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/civica-platform/civica-admin/lib/api"
)

// fileState is the persisted shape of a session. The invariant that
// a token and a profile exist together holds on disk as in memory.
type fileState struct {
	Token string   `json:"token"`
	User  api.User `json:"user"`
}

// Store owns the session state. It implements api.TokenSource so the
// API client picks up the current token on every request. Safe for
// concurrent use: the TUI mutates it from the event loop while request
// goroutines read the token.
type Store struct {
	path   string
	logger *slog.Logger

	mu    sync.Mutex
	token string
	user  *api.User
}

// NewStore creates a Store persisting to path. An empty path selects
// DefaultPath(). No state is loaded until Restore is called.
func NewStore(path string, logger *slog.Logger) *Store {
	if path == "" {
		path = DefaultPath()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{path: path, logger: logger}
}

// DefaultPath returns the session file location. Checks the
// CIVICA_SESSION_FILE environment variable first, then falls back to
// ~/.config/civica/session.json (honoring XDG_CONFIG_HOME).
func DefaultPath() string {
	if envPath := os.Getenv("CIVICA_SESSION_FILE"); envPath != "" {
		return envPath
	}

	configDirectory := os.Getenv("XDG_CONFIG_HOME")
	if configDirectory == "" {
		homeDirectory, err := os.UserHomeDir()
		if err != nil {
			return filepath.Join("/tmp", "civica-session.json")
		}
		configDirectory = filepath.Join(homeDirectory, ".config")
	}
	return filepath.Join(configDirectory, "civica", "session.json")
}

// Path returns the file this store persists to.
func (store *Store) Path() string { return store.path }

// Restore loads a previously saved session from disk. A missing file
// is not an error; the store simply stays unauthenticated. A file
// that exists but cannot be parsed or is missing fields is an error;
// the caller decides whether to treat it as unauthenticated.
func (store *Store) Restore() error {
	data, err := os.ReadFile(store.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading session file %s: %w", store.path, err)
	}

	var state fileState
	if err := json.Unmarshal(data, &state); err != nil {
		return fmt.Errorf("parsing session file %s: %w", store.path, err)
	}
	if state.Token == "" {
		return fmt.Errorf("session file %s has no token", store.path)
	}
	if state.User.ID == "" {
		return fmt.Errorf("session file %s has no user profile", store.path)
	}

	store.mu.Lock()
	store.token = state.Token
	user := state.User
	store.user = &user
	store.mu.Unlock()

	store.logger.Debug("session restored", "user", state.User.Email, "path", store.path)
	return nil
}

// Login authenticates against the backend and, on success, stores and
// persists the token and profile. On failure the prior state is left
// untouched and the returned error carries a user-facing message.
func (store *Store) Login(ctx context.Context, client *api.Client, email, password string) (api.User, error) {
	result, err := client.Login(ctx, email, password)
	if err != nil {
		return api.User{}, err
	}

	store.mu.Lock()
	store.token = result.Token
	user := result.User
	store.user = &user
	store.mu.Unlock()

	if err := store.persist(); err != nil {
		return api.User{}, err
	}

	store.logger.Info("logged in", "user", result.User.Email)
	return result.User, nil
}

// Logout clears the session synchronously and removes the session
// file. Purely local; the backend is never called.
func (store *Store) Logout() error {
	store.mu.Lock()
	store.token = ""
	store.user = nil
	store.mu.Unlock()

	if err := os.Remove(store.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing session file %s: %w", store.path, err)
	}
	return nil
}

// Token returns the current bearer token, or "" when unauthenticated.
// Implements api.TokenSource.
func (store *Store) Token() string {
	store.mu.Lock()
	defer store.mu.Unlock()
	return store.token
}

// User returns the cached profile of the authenticated admin.
func (store *Store) User() (api.User, bool) {
	store.mu.Lock()
	defer store.mu.Unlock()
	if store.user == nil {
		return api.User{}, false
	}
	return *store.user, true
}

// Authenticated reports whether a session is active. The token and
// the cached profile exist together or not at all.
func (store *Store) Authenticated() bool {
	store.mu.Lock()
	defer store.mu.Unlock()
	return store.token != ""
}

// Require returns the cached profile or a clear error directing the
// user to log in. Used by one-shot CLI commands.
func (store *Store) Require() (api.User, error) {
	user, ok := store.User()
	if !ok {
		return api.User{}, fmt.Errorf("no session found at %s; run \"civica-admin login\" first", store.path)
	}
	return user, nil
}

// TokenExpiry decodes the token's exp claim without verifying the
// signature (the client has no key material; verification is the
// backend's job). Returns false when there is no token or the token
// carries no expiry; the backend's HS256 tokens historically omit it.
func (store *Store) TokenExpiry() (time.Time, bool) {
	token := store.Token()
	if token == "" {
		return time.Time{}, false
	}

	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	expiry, err := claims.GetExpirationTime()
	if err != nil || expiry == nil {
		return time.Time{}, false
	}
	return expiry.Time, true
}

// persist writes the current state to the session file with mode 0600
// (the file contains a bearer token), creating the parent directory
// with 0700 if needed.
func (store *Store) persist() error {
	store.mu.Lock()
	state := fileState{Token: store.token}
	if store.user != nil {
		state.User = *store.user
	}
	store.mu.Unlock()

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling session: %w", err)
	}
	data = append(data, '\n')

	directory := filepath.Dir(store.path)
	if err := os.MkdirAll(directory, 0700); err != nil {
		return fmt.Errorf("creating session directory %s: %w", directory, err)
	}
	if err := os.WriteFile(store.path, data, 0600); err != nil {
		return fmt.Errorf("writing session file %s: %w", store.path, err)
	}
	return nil
}
