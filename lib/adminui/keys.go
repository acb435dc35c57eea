// Copyright 2026 The Civica Authors
// SPDX-License-Identifier: Apache-2.0

package adminui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the admin TUI.
type KeyMap struct {
	// Navigation within the active table.
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding

	// Screen switching.
	TabDashboard key.Binding
	TabThemes    key.Binding
	TabLevels    key.Binding
	TabQuestions key.Binding
	TabUsers     key.Binding

	// Drill down: themes -> levels -> questions. On questions and
	// users the same key opens the detail view instead.
	Enter key.Binding
	// Back out of a drill-down scope (or close a detail/filter).
	Back key.Binding

	// Scope toggle: on levels and questions, switch between the
	// drilled-down parent scope and the unscoped full list.
	ScopeToggle key.Binding

	// Filter.
	FilterActivate key.Binding

	// Mutations.
	Add    key.Binding
	Edit   key.Binding
	Delete key.Binding
	Reload key.Binding

	// Reorder (levels and questions).
	MoveUp   key.Binding
	MoveDown key.Binding

	// Form.
	FormNext   key.Binding
	FormPrev   key.Binding
	FormSubmit key.Binding
	FormCycle  key.Binding // Cycle the options of an enum field.

	Quit key.Binding
}

// DefaultKeyMap is the built-in key binding set. Vim-style navigation
// (j/k) alongside standard arrow keys and page up/down.
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("ctrl+u", "pgup"),
		key.WithHelp("C-u", "page up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("ctrl+d", "pgdown"),
		key.WithHelp("C-d", "page down"),
	),
	Home: key.NewBinding(
		key.WithKeys("g", "home"),
		key.WithHelp("g", "top"),
	),
	End: key.NewBinding(
		key.WithKeys("G", "end"),
		key.WithHelp("G", "bottom"),
	),
	TabDashboard: key.NewBinding(
		key.WithKeys("1"),
		key.WithHelp("1", "dashboard"),
	),
	TabThemes: key.NewBinding(
		key.WithKeys("2"),
		key.WithHelp("2", "themes"),
	),
	TabLevels: key.NewBinding(
		key.WithKeys("3"),
		key.WithHelp("3", "levels"),
	),
	TabQuestions: key.NewBinding(
		key.WithKeys("4"),
		key.WithHelp("4", "questions"),
	),
	TabUsers: key.NewBinding(
		key.WithKeys("5"),
		key.WithHelp("5", "users"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("Enter", "open"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("Esc", "back"),
	),
	ScopeToggle: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "scope"),
	),
	FilterActivate: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "filter"),
	),
	Add: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "add"),
	),
	Edit: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "edit"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "delete"),
	),
	Reload: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reload"),
	),
	MoveUp: key.NewBinding(
		key.WithKeys("K"),
		key.WithHelp("K", "move up"),
	),
	MoveDown: key.NewBinding(
		key.WithKeys("J"),
		key.WithHelp("J", "move down"),
	),
	FormNext: key.NewBinding(
		key.WithKeys("tab", "enter"),
		key.WithHelp("Tab", "next field"),
	),
	FormPrev: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("S-Tab", "previous field"),
	),
	FormSubmit: key.NewBinding(
		key.WithKeys("ctrl+s"),
		key.WithHelp("C-s", "save"),
	),
	FormCycle: key.NewBinding(
		key.WithKeys("left", "right"),
		key.WithHelp("←/→", "cycle value"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
