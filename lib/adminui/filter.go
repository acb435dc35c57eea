// Copyright 2026 The Civica Authors
// SPDX-License-Identifier: Apache-2.0

package adminui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// FilterModel implements substring matching over table rows. The
// filter composes with the screen's scope: the scope chooses the base
// set (all levels, or one theme's levels), and the filter narrows it
// client-side without round-tripping to the backend. The users screen
// additionally pushes the confirmed query to the server-side email
// search.
type FilterModel struct {
	// Input is the current filter query text.
	Input string

	// Active is true when the filter input has keyboard focus
	// (the user pressed / to start typing).
	Active bool
}

// Matches returns true if the row matches the current filter. An empty
// filter matches everything. Matching is case-insensitive substring
// against the row's concatenated searchable text.
func (filter *FilterModel) Matches(row tableRow) bool {
	if filter.Input == "" {
		return true
	}
	return strings.Contains(strings.ToLower(row.search), strings.ToLower(filter.Input))
}

// Apply filters rows, returning only those that match.
func (filter *FilterModel) Apply(rows []tableRow) []tableRow {
	if filter.Input == "" {
		return rows
	}
	var result []tableRow
	for _, row := range rows {
		if filter.Matches(row) {
			result = append(result, row)
		}
	}
	return result
}

// HandleRune appends a typed character to the filter input.
func (filter *FilterModel) HandleRune(character rune) {
	filter.Input += string(character)
}

// HandleBackspace removes the last character from the filter input.
// Returns true if the input changed.
func (filter *FilterModel) HandleBackspace() bool {
	if len(filter.Input) == 0 {
		return false
	}
	runes := []rune(filter.Input)
	filter.Input = string(runes[:len(runes)-1])
	return true
}

// Clear resets the filter input and deactivates it.
func (filter *FilterModel) Clear() {
	filter.Input = ""
	filter.Active = false
}

// View renders the filter bar. When active, shows the input with a
// cursor. When inactive with text, shows the filter text dimmed. When
// inactive with no text, returns empty string (hidden).
func (filter *FilterModel) View(theme Theme, width int) string {
	if !filter.Active && filter.Input == "" {
		return ""
	}

	if filter.Active {
		cursor := lipgloss.NewStyle().
			Foreground(theme.HeaderForeground).
			Bold(true).
			Render("▎")
		return lipgloss.NewStyle().
			Foreground(theme.NormalText).
			Width(width).
			Render(" / " + filter.Input + cursor)
	}

	return lipgloss.NewStyle().
		Foreground(theme.FaintText).
		Width(width).
		Render(" filter: " + filter.Input)
}
