// Copyright 2026 The Civica Authors
// SPDX-License-Identifier: Apache-2.0

package session

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/civica-platform/civica-admin/lib/api"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "session.json"), nil)
}

// loginServer responds to /api/user/login with a fixed token and
// profile, or a 401 when the password is wrong.
func loginServer(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		var credentials struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(request.Body).Decode(&credentials); err != nil || credentials.Password != "correct" {
			writer.WriteHeader(http.StatusUnauthorized)
			writer.Write([]byte(`{"success":false,"message":"Email ou mot de passe incorrect"}`))
			return
		}
		writer.Write([]byte(`{"success":true,"data":{"token":"tok-abc","user":{"id":"u1","email":"admin@civica.dev","role":"ADMIN","is_verified":"YES","status":"ACTIVE","connexion_type":"EMAIL","point":0,"niveaux":1,"vies":5,"is_deleted":false,"created_at":"2026-01-01T00:00:00Z","updated_at":"2026-01-01T00:00:00Z"}}}`))
	}))
}

func TestLogin_Success(t *testing.T) {
	server := loginServer(t)
	defer server.Close()

	store := testStore(t)
	client, err := api.NewClient(api.Config{BaseURL: server.URL, TokenSource: store})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	user, err := store.Login(context.Background(), client, "admin@civica.dev", "correct")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	if !store.Authenticated() {
		t.Error("Authenticated = false after successful login")
	}
	if store.Token() != "tok-abc" {
		t.Errorf("Token = %q, want tok-abc", store.Token())
	}
	if user.Email != "admin@civica.dev" {
		t.Errorf("user.Email = %q, want admin@civica.dev", user.Email)
	}

	// The session must already be on disk.
	if _, err := os.Stat(store.Path()); err != nil {
		t.Errorf("session file not written: %v", err)
	}
}

func TestLogin_FailureLeavesStateUntouched(t *testing.T) {
	server := loginServer(t)
	defer server.Close()

	store := testStore(t)
	client, err := api.NewClient(api.Config{BaseURL: server.URL, TokenSource: store})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	_, loginErr := store.Login(context.Background(), client, "admin@civica.dev", "wrong")
	if loginErr == nil {
		t.Fatal("expected login failure")
	}
	if !api.IsAuth(loginErr) {
		t.Errorf("login error = %v, want auth kind", loginErr)
	}
	if got := api.UserMessage(loginErr); got != "Email ou mot de passe incorrect" {
		t.Errorf("UserMessage = %q, want server-supplied message", got)
	}

	if store.Authenticated() {
		t.Error("Authenticated = true after failed login")
	}
	if store.Token() != "" {
		t.Errorf("Token = %q, want empty", store.Token())
	}
	if _, err := os.Stat(store.Path()); !os.IsNotExist(err) {
		t.Error("failed login wrote a session file")
	}
}

func TestRestore_RoundTrip(t *testing.T) {
	server := loginServer(t)
	defer server.Close()

	path := filepath.Join(t.TempDir(), "session.json")
	first := NewStore(path, nil)
	client, err := api.NewClient(api.Config{BaseURL: server.URL, TokenSource: first})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	if _, err := first.Login(context.Background(), client, "admin@civica.dev", "correct"); err != nil {
		t.Fatalf("Login: %v", err)
	}

	// A fresh store at the same path restores the same session.
	second := NewStore(path, nil)
	if err := second.Restore(); err != nil {
		t.Fatalf("Restore: %v", err)
	}
	if !second.Authenticated() {
		t.Error("Authenticated = false after restore")
	}
	if second.Token() != "tok-abc" {
		t.Errorf("Token = %q, want tok-abc", second.Token())
	}
	user, ok := second.User()
	if !ok || user.Email != "admin@civica.dev" {
		t.Errorf("User = %+v (ok=%v), want restored admin profile", user, ok)
	}
}

func TestRestore_MissingFileIsUnauthenticated(t *testing.T) {
	store := testStore(t)
	if err := store.Restore(); err != nil {
		t.Fatalf("Restore on missing file: %v", err)
	}
	if store.Authenticated() {
		t.Error("Authenticated = true with no session file")
	}
}

func TestRestore_CorruptFile(t *testing.T) {
	store := testStore(t)
	if err := os.WriteFile(store.Path(), []byte("{"), 0600); err != nil {
		t.Fatal(err)
	}
	if err := store.Restore(); err == nil {
		t.Fatal("expected error for corrupt session file")
	}
}

func TestRestore_RejectsTokenWithoutProfile(t *testing.T) {
	store := testStore(t)
	if err := os.WriteFile(store.Path(), []byte(`{"token":"tok","user":{}}`), 0600); err != nil {
		t.Fatal(err)
	}
	if err := store.Restore(); err == nil {
		t.Fatal("expected error: token without user profile violates the session invariant")
	}
}

func TestLogout(t *testing.T) {
	server := loginServer(t)
	defer server.Close()

	store := testStore(t)
	client, err := api.NewClient(api.Config{BaseURL: server.URL, TokenSource: store})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	if _, err := store.Login(context.Background(), client, "admin@civica.dev", "correct"); err != nil {
		t.Fatalf("Login: %v", err)
	}

	if err := store.Logout(); err != nil {
		t.Fatalf("Logout: %v", err)
	}

	if store.Authenticated() {
		t.Error("Authenticated = true after logout")
	}
	if store.Token() != "" {
		t.Errorf("Token = %q, want empty", store.Token())
	}
	if _, ok := store.User(); ok {
		t.Error("User still cached after logout")
	}
	if _, err := os.Stat(store.Path()); !os.IsNotExist(err) {
		t.Error("session file still exists after logout")
	}

	// Logout is idempotent.
	if err := store.Logout(); err != nil {
		t.Errorf("second Logout: %v", err)
	}
}

func TestTokenExpiry_NoExpClaim(t *testing.T) {
	store := testStore(t)
	// HS256 token with {"user":{}} payload and no exp claim, matching
	// what the backend issues.
	writeSession(t, store.Path(), "eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9.eyJ1c2VyIjp7fX0.signature")
	if err := store.Restore(); err != nil {
		t.Fatalf("Restore: %v", err)
	}
	if _, ok := store.TokenExpiry(); ok {
		t.Error("TokenExpiry reported an expiry for a token without exp")
	}
}

func TestTokenExpiry_WithExpClaim(t *testing.T) {
	store := testStore(t)
	// Payload {"exp": 4102444800}, which is 2100-01-01T00:00:00Z.
	writeSession(t, store.Path(), "eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9.eyJleHAiOjQxMDI0NDQ4MDB9.signature")
	if err := store.Restore(); err != nil {
		t.Fatalf("Restore: %v", err)
	}
	expiry, ok := store.TokenExpiry()
	if !ok {
		t.Fatal("TokenExpiry found no expiry")
	}
	if expiry.Year() != 2100 {
		t.Errorf("expiry year = %d, want 2100", expiry.Year())
	}
}

func writeSession(t *testing.T, path, token string) {
	t.Helper()
	data := []byte(`{"token":"` + token + `","user":{"id":"u1","email":"a@b.c","role":"ADMIN"}}`)
	if err := os.WriteFile(path, data, 0600); err != nil {
		t.Fatal(err)
	}
}
