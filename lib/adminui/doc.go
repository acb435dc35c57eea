// Copyright 2026 The Civica Authors
// SPDX-License-Identifier: Apache-2.0

// Package adminui implements the interactive terminal UI for the
// Civica administration client: a bubbletea application over the
// entity controllers in lib/controller.
//
// The UI is a small state machine of screens: a neutral loading view
// while the saved session is restored, a login form when no valid
// session exists, and the authenticated screens (dashboard plus one
// table screen per entity). Every network call runs in a tea.Cmd
// goroutine and reports back through a typed message; an
// authentication error from any call clears the session and routes
// back to the login screen.
//
// Key exports:
//
//   - [Model] and [NewModel] -- the top-level bubbletea model
//   - [Theme] and [DefaultTheme] -- the color palette
//   - [KeyMap] and [DefaultKeyMap] -- key bindings
package adminui
