// Copyright 2026 The Civica Authors
// SPDX-License-Identifier: Apache-2.0

package adminui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/civica-platform/civica-admin/lib/api"
)

// Theme defines the color palette for the admin TUI. All colors use
// lipgloss ANSI 256-color codes for broad terminal compatibility.
//
// The fields cover universal chrome (text, selection, borders) and the
// semantic categories that recur across screens: difficulty grades,
// active/inactive records, and account roles.
type Theme struct {
	// Text colors.
	NormalText lipgloss.Color
	FaintText  lipgloss.Color

	// Selected row.
	SelectedBackground lipgloss.Color
	SelectedForeground lipgloss.Color

	// Difficulty colors.
	DifficultyEasy   lipgloss.Color
	DifficultyMedium lipgloss.Color
	DifficultyHard   lipgloss.Color

	// Record state.
	Active   lipgloss.Color
	Inactive lipgloss.Color

	// Account roles.
	RoleAdmin lipgloss.Color
	RoleUser  lipgloss.Color

	// UI chrome.
	HeaderForeground lipgloss.Color
	BorderColor      lipgloss.Color
	HelpText         lipgloss.Color

	// Status bar notices.
	NoticeForeground lipgloss.Color
	ErrorForeground  lipgloss.Color

	// Form fields.
	FieldLabel        lipgloss.Color
	FieldError        lipgloss.Color
	InputBackground   lipgloss.Color
	FocusedBackground lipgloss.Color
}

// DifficultyColor returns the color for a level difficulty. Unknown
// values return NormalText.
func (theme Theme) DifficultyColor(difficulty api.Difficulty) lipgloss.Color {
	switch difficulty {
	case api.DifficultyEasy:
		return theme.DifficultyEasy
	case api.DifficultyMedium:
		return theme.DifficultyMedium
	case api.DifficultyHard:
		return theme.DifficultyHard
	default:
		return theme.NormalText
	}
}

// ActiveColor returns the color for a record's active flag.
func (theme Theme) ActiveColor(active bool) lipgloss.Color {
	if active {
		return theme.Active
	}
	return theme.Inactive
}

// RoleColor returns the color for an account role. Unknown values
// return FaintText.
func (theme Theme) RoleColor(role api.Role) lipgloss.Color {
	switch role {
	case api.RoleAdmin:
		return theme.RoleAdmin
	case api.RoleUser:
		return theme.RoleUser
	default:
		return theme.FaintText
	}
}

// DefaultTheme is the built-in dark-terminal color scheme. Designed for
// 256-color terminals with a dark background.
var DefaultTheme = Theme{
	NormalText: lipgloss.Color("252"),
	FaintText:  lipgloss.Color("245"),

	SelectedBackground: lipgloss.Color("236"),
	SelectedForeground: lipgloss.Color("255"),

	DifficultyEasy:   lipgloss.Color("114"), // green
	DifficultyMedium: lipgloss.Color("220"), // yellow/amber
	DifficultyHard:   lipgloss.Color("196"), // red

	Active:   lipgloss.Color("114"), // green
	Inactive: lipgloss.Color("245"), // gray

	RoleAdmin: lipgloss.Color("141"), // light purple
	RoleUser:  lipgloss.Color("75"),  // blue

	HeaderForeground: lipgloss.Color("255"),
	BorderColor:      lipgloss.Color("240"),
	HelpText:         lipgloss.Color("241"),

	NoticeForeground: lipgloss.Color("114"), // green
	ErrorForeground:  lipgloss.Color("196"), // red

	FieldLabel:        lipgloss.Color("245"),
	FieldError:        lipgloss.Color("203"), // soft red for inline messages
	InputBackground:   lipgloss.Color("235"),
	FocusedBackground: lipgloss.Color("237"),
}
