// Copyright 2026 The Civica Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

// newTestClient creates a Client backed by the given httptest.Server,
// authenticated with a static test token.
func newTestClient(t *testing.T, server *httptest.Server) *Client {
	t.Helper()
	client, err := NewClient(Config{
		BaseURL:     server.URL,
		TokenSource: StaticToken("test-token"),
		HTTPClient:  server.Client(),
	})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return client
}

// respond writes a success envelope wrapping the given JSON data.
func respond(writer http.ResponseWriter, data string) {
	writer.Header().Set("Content-Type", "application/json")
	writer.Write([]byte(`{"success":true,"data":` + data + `}`))
}

func TestNewClient_SchemeEnforcement(t *testing.T) {
	_, err := NewClient(Config{BaseURL: "ftp://backend"})
	if err == nil {
		t.Fatal("expected error for non-HTTP URL")
	}
}

func TestClient_AuthHeaderInjection(t *testing.T) {
	var receivedAuth string
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		receivedAuth = request.Header.Get("Authorization")
		respond(writer, `[]`)
	}))
	defer server.Close()

	client := newTestClient(t, server)
	if _, err := client.ListThemes(context.Background()); err != nil {
		t.Fatalf("ListThemes: %v", err)
	}

	if receivedAuth != "Bearer test-token" {
		t.Errorf("Authorization = %q, want %q", receivedAuth, "Bearer test-token")
	}
}

func TestClient_NoTokenNoHeader(t *testing.T) {
	var sawAuthHeader bool
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		_, sawAuthHeader = request.Header["Authorization"]
		respond(writer, `[]`)
	}))
	defer server.Close()

	client, err := NewClient(Config{BaseURL: server.URL, HTTPClient: server.Client()})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	if _, err := client.ListThemes(context.Background()); err != nil {
		t.Fatalf("ListThemes: %v", err)
	}

	if sawAuthHeader {
		t.Error("request carried an Authorization header without a token source")
	}
}

func TestClient_EnvelopeUnwrap(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		respond(writer, `[{"id":"t1","title":"Histoire","description":"X","color":"#112233","isActive":true}]`)
	}))
	defer server.Close()

	client := newTestClient(t, server)
	themes, err := client.ListThemes(context.Background())
	if err != nil {
		t.Fatalf("ListThemes: %v", err)
	}

	if len(themes) != 1 {
		t.Fatalf("len(themes) = %d, want 1", len(themes))
	}
	if themes[0].Title != "Histoire" {
		t.Errorf("Title = %q, want %q", themes[0].Title, "Histoire")
	}
	if !themes[0].IsActive {
		t.Error("IsActive = false, want true")
	}
}

func TestClient_ServerMessagePreferred(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusNotFound)
		writer.Write([]byte(`{"success":false,"message":"Theme not found","data":null}`))
	}))
	defer server.Close()

	client := newTestClient(t, server)
	_, err := client.ListThemes(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	if !IsValidation(err) {
		t.Errorf("error kind = %v, want validation", err)
	}
	if got := UserMessage(err); got != "Theme not found" {
		t.Errorf("UserMessage = %q, want %q", got, "Theme not found")
	}
}

func TestClient_SynthesizedMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusBadGateway)
		writer.Write([]byte(`upstream exploded`))
	}))
	defer server.Close()

	client := newTestClient(t, server)
	_, err := client.ListThemes(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	if !IsServer(err) {
		t.Errorf("error kind = %v, want server", err)
	}
	if got := UserMessage(err); got != "HTTP 502 Bad Gateway" {
		t.Errorf("UserMessage = %q, want %q", got, "HTTP 502 Bad Gateway")
	}
}

func TestClient_AuthKind(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusUnauthorized)
		writer.Write([]byte(`{"success":false,"message":"Token invalide"}`))
	}))
	defer server.Close()

	client := newTestClient(t, server)
	_, err := client.ListThemes(context.Background())
	if !IsAuth(err) {
		t.Errorf("error = %v, want auth kind", err)
	}
}

func TestClient_SuccessFalseIsRejection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.Write([]byte(`{"success":false,"message":"Titre requis","data":null}`))
	}))
	defer server.Close()

	client := newTestClient(t, server)
	_, err := client.CreateTheme(context.Background(), CreateThemeRequest{Title: ""})
	if err == nil {
		t.Fatal("expected error for success=false envelope")
	}
	if !IsValidation(err) {
		t.Errorf("error kind = %v, want validation", err)
	}
	if got := UserMessage(err); got != "Titre requis" {
		t.Errorf("UserMessage = %q, want %q", got, "Titre requis")
	}
}

func TestClient_NetworkKind(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {}))
	server.Close() // Closed before use: every call fails at the transport.

	client, err := NewClient(Config{BaseURL: server.URL})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	_, err = client.ListThemes(context.Background())
	if !IsNetwork(err) {
		t.Errorf("error = %v, want network kind", err)
	}
}

func TestClient_MalformedEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.Write([]byte(`not json at all`))
	}))
	defer server.Close()

	client := newTestClient(t, server)
	_, err := client.ListThemes(context.Background())
	if !IsServer(err) {
		t.Errorf("error = %v, want server kind for malformed envelope", err)
	}
}
