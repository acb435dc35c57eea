// Copyright 2026 The Civica Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"errors"
	"fmt"
)

// Kind classifies an API failure by how the caller should surface it.
type Kind int

const (
	// KindNetwork means the backend was unreachable or the transport
	// failed before a status code arrived. Surfaced on the same
	// notification channel as server errors.
	KindNetwork Kind = iota

	// KindAuth means the token is missing, invalid, or expired
	// (HTTP 401/403). Callers should drop the session and redirect
	// to login.
	KindAuth

	// KindValidation means the request was understood but rejected
	// (other 4xx, or a success=false envelope). Surfaced inline on
	// the offending form.
	KindValidation

	// KindServer means the backend failed (5xx). Surfaced as a
	// dismissible notification with a retry affordance.
	KindServer
)

func (kind Kind) String() string {
	switch kind {
	case KindNetwork:
		return "network"
	case KindAuth:
		return "auth"
	case KindValidation:
		return "validation"
	case KindServer:
		return "server"
	}
	return fmt.Sprintf("kind(%d)", int(kind))
}

// Error represents a failed API call. StatusCode is 0 for transport
// failures. Message is the server-supplied message when the body
// carried one, otherwise synthesized from the status code.
type Error struct {
	StatusCode int
	Kind       Kind
	Message    string
}

func (err *Error) Error() string {
	if err.StatusCode == 0 {
		return fmt.Sprintf("api: %s", err.Message)
	}
	return fmt.Sprintf("api: HTTP %d: %s", err.StatusCode, err.Message)
}

// kindForStatus maps an HTTP status code to an error kind.
func kindForStatus(statusCode int) Kind {
	switch {
	case statusCode == 401 || statusCode == 403:
		return KindAuth
	case statusCode >= 400 && statusCode < 500:
		return KindValidation
	default:
		return KindServer
	}
}

// IsAuth reports whether err is an authentication failure that should
// force a logout.
func IsAuth(err error) bool {
	var apiError *Error
	return errors.As(err, &apiError) && apiError.Kind == KindAuth
}

// IsValidation reports whether err is a request rejection to surface
// inline.
func IsValidation(err error) bool {
	var apiError *Error
	return errors.As(err, &apiError) && apiError.Kind == KindValidation
}

// IsServer reports whether err is a backend failure.
func IsServer(err error) bool {
	var apiError *Error
	return errors.As(err, &apiError) && apiError.Kind == KindServer
}

// IsNetwork reports whether err is a transport failure (backend
// unreachable, connection reset, timeout).
func IsNetwork(err error) bool {
	var apiError *Error
	return errors.As(err, &apiError) && apiError.Kind == KindNetwork
}

// UserMessage extracts the display message from an API error. For
// non-API errors it falls back to err.Error().
func UserMessage(err error) string {
	var apiError *Error
	if errors.As(err, &apiError) {
		return apiError.Message
	}
	return err.Error()
}
