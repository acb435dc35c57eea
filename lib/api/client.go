// Copyright 2026 The Civica Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
)

// defaultBaseURL is the development backend. Deployments override it
// via config or the CIVICA_API_URL environment variable.
const defaultBaseURL = "http://localhost:5002"

// maxResponseBytes bounds how much of a response body the client will
// read. The largest legitimate payload (a full question list) is well
// under this.
const maxResponseBytes = 8 << 20

// TokenSource supplies the current bearer token for outgoing requests.
// An empty string means the request goes out unauthenticated (the login
// call itself, for example). The session store implements this.
type TokenSource interface {
	Token() string
}

// StaticToken is a fixed-token TokenSource, mainly for tests and
// one-shot scripts.
type StaticToken string

func (token StaticToken) Token() string { return string(token) }

// Config holds configuration for creating a Client.
type Config struct {
	// BaseURL is the backend root, without the /api prefix
	// (e.g. "http://localhost:5002"). Defaults to defaultBaseURL.
	BaseURL string

	// TokenSource supplies the bearer token. Optional; when nil, all
	// requests go out unauthenticated.
	TokenSource TokenSource

	// HTTPClient is used for all requests. Defaults to
	// http.DefaultClient. Callers wanting a timeout set it here.
	HTTPClient *http.Client

	// Logger is used for structured logging. Defaults to slog.Default().
	Logger *slog.Logger
}

// Client is a typed client for the Civica REST API. Safe for use from
// multiple goroutines as long as the TokenSource is.
type Client struct {
	baseURL     string
	httpClient  *http.Client
	tokenSource TokenSource
	logger      *slog.Logger
}

// NewClient creates a Client from the given configuration.
func NewClient(config Config) (*Client, error) {
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	baseURL = strings.TrimRight(baseURL, "/")
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		return nil, fmt.Errorf("api: base URL must be http or https (got %q)", baseURL)
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL:     baseURL,
		httpClient:  httpClient,
		tokenSource: config.TokenSource,
		logger:      logger,
	}, nil
}

// envelope is the uniform response wrapper the backend puts around
// every payload.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

// do executes one API request. The path is relative to the base URL
// and must include the /api prefix (e.g. "/api/theme/"). The request
// body, if non-nil, is JSON-encoded. On success the envelope's data
// field is decoded into result (which may be nil for calls that return
// no payload). Every failure is reported as a *Error.
func (client *Client) do(ctx context.Context, method, path string, requestBody any, result any) error {
	url := client.baseURL + path

	var bodyReader io.Reader
	if requestBody != nil {
		encoded, err := json.Marshal(requestBody)
		if err != nil {
			return fmt.Errorf("api: encoding request body: %w", err)
		}
		bodyReader = bytes.NewReader(encoded)
	}

	request, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return fmt.Errorf("api: creating request: %w", err)
	}
	request.Header.Set("Accept", "application/json")
	if requestBody != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	if client.tokenSource != nil {
		if token := client.tokenSource.Token(); token != "" {
			request.Header.Set("Authorization", "Bearer "+token)
		}
	}

	response, err := client.httpClient.Do(request)
	if err != nil {
		client.logger.Debug("request failed", "method", method, "path", path, "error", err)
		return &Error{Kind: KindNetwork, Message: fmt.Sprintf("%s %s: %v", method, path, err)}
	}
	defer response.Body.Close()

	body, err := io.ReadAll(io.LimitReader(response.Body, maxResponseBytes))
	if err != nil {
		return &Error{Kind: KindNetwork, Message: fmt.Sprintf("reading response: %v", err)}
	}

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return parseErrorBody(response.StatusCode, body)
	}

	var wrapped envelope
	if err := json.Unmarshal(body, &wrapped); err != nil {
		return &Error{
			StatusCode: response.StatusCode,
			Kind:       KindServer,
			Message:    fmt.Sprintf("malformed response envelope: %v", err),
		}
	}

	// The backend occasionally reports failures with HTTP 200 and
	// success=false. Treat those as rejections, never as data.
	if !wrapped.Success {
		message := wrapped.Message
		if message == "" {
			message = "request rejected"
		}
		return &Error{StatusCode: response.StatusCode, Kind: KindValidation, Message: message}
	}

	if result != nil && len(wrapped.Data) > 0 && string(wrapped.Data) != "null" {
		if err := json.Unmarshal(wrapped.Data, result); err != nil {
			return &Error{
				StatusCode: response.StatusCode,
				Kind:       KindServer,
				Message:    fmt.Sprintf("decoding response data: %v", err),
			}
		}
	}

	return nil
}

// parseErrorBody builds a *Error from a non-2xx response. Prefers the
// server-supplied envelope message; falls back to a message synthesized
// from the status code.
func parseErrorBody(statusCode int, body []byte) *Error {
	apiError := &Error{StatusCode: statusCode, Kind: kindForStatus(statusCode)}

	var wrapped envelope
	if json.Unmarshal(body, &wrapped) == nil && wrapped.Message != "" {
		apiError.Message = wrapped.Message
	} else {
		apiError.Message = fmt.Sprintf("HTTP %d %s", statusCode, http.StatusText(statusCode))
	}
	return apiError
}

// get is a convenience wrapper for GET requests.
func (client *Client) get(ctx context.Context, path string, result any) error {
	return client.do(ctx, http.MethodGet, path, nil, result)
}

// post is a convenience wrapper for POST requests.
func (client *Client) post(ctx context.Context, path string, requestBody, result any) error {
	return client.do(ctx, http.MethodPost, path, requestBody, result)
}

// put is a convenience wrapper for PUT requests.
func (client *Client) put(ctx context.Context, path string, requestBody, result any) error {
	return client.do(ctx, http.MethodPut, path, requestBody, result)
}

// delete is a convenience wrapper for DELETE requests.
func (client *Client) delete(ctx context.Context, path string) error {
	return client.do(ctx, http.MethodDelete, path, nil, nil)
}
