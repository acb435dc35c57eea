// Copyright 2026 The Civica Authors
// SPDX-License-Identifier: Apache-2.0

// Package api is a typed client for the Civica quiz platform REST API.
//
// The backend wraps every response in a uniform envelope
// {success, data, message?}; this package unwraps the envelope and
// returns only the data, or a typed *Error carrying the server's
// message and a Kind classifying how callers should surface it
// (re-authenticate, show inline, or show a dismissible notice).
//
// The client never retries. Retry policy, where one makes sense,
// belongs to the caller.
package api
