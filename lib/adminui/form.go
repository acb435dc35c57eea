// Copyright 2026 The Civica Authors
// SPDX-License-Identifier: Apache-2.0

package adminui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// FormField is one input line in the edit/create form. Text fields
// accept typed characters; enum fields cycle through Options with the
// left/right arrows.
type FormField struct {
	// Key is the wire-level field name. Validation errors from the
	// controller are matched against it.
	Key string

	// Label is the human-readable caption shown next to the input.
	Label string

	// Value is the current text (or the selected option for enum
	// fields).
	Value string

	// Options, when non-empty, makes this an enum field.
	Options []string

	// Numeric restricts typed input to digits.
	Numeric bool
}

// FormModel is the modal create/edit form. It owns keyboard focus
// while open; the table underneath stays rendered but inert.
type FormModel struct {
	// Title is the form caption ("New theme", "Edit level").
	Title string

	Fields []FormField

	// focusIndex is the field currently receiving input.
	focusIndex int

	// fieldErrors maps field keys to inline validation messages.
	// Populated when a save fails local validation; cleared on the
	// next edit of the offending field.
	fieldErrors map[string]string

	// SubmitError is a form-wide message (server rejection, busy).
	SubmitError string
}

// NewForm creates a form with focus on the first field.
func NewForm(title string, fields []FormField) *FormModel {
	return &FormModel{
		Title:       title,
		Fields:      fields,
		fieldErrors: make(map[string]string),
	}
}

// Values returns the current field values keyed by field key.
func (form *FormModel) Values() map[string]string {
	values := make(map[string]string, len(form.Fields))
	for _, field := range form.Fields {
		values[field.Key] = field.Value
	}
	return values
}

// SetFieldError attaches an inline message to the named field. An
// unknown key falls back to the form-wide submit error.
func (form *FormModel) SetFieldError(key, message string) {
	for _, field := range form.Fields {
		if field.Key == key {
			form.fieldErrors[key] = message
			return
		}
	}
	form.SubmitError = fmt.Sprintf("%s: %s", key, message)
}

// FocusNext advances focus to the next field, wrapping at the end.
// Returns true when focus wrapped past the last field (the caller
// treats Enter on the last field as submit).
func (form *FormModel) FocusNext() bool {
	form.focusIndex++
	if form.focusIndex >= len(form.Fields) {
		form.focusIndex = 0
		return true
	}
	return false
}

// FocusPrev moves focus to the previous field, wrapping at the top.
func (form *FormModel) FocusPrev() {
	form.focusIndex--
	if form.focusIndex < 0 {
		form.focusIndex = len(form.Fields) - 1
	}
}

// HandleRune processes a typed character for the focused field. Enum
// fields ignore typed text; numeric fields accept digits and a
// leading minus only.
func (form *FormModel) HandleRune(character rune) {
	field := &form.Fields[form.focusIndex]
	if len(field.Options) > 0 {
		return
	}
	if field.Numeric {
		if character < '0' || character > '9' {
			if !(character == '-' && field.Value == "") {
				return
			}
		}
	}
	field.Value += string(character)
	delete(form.fieldErrors, field.Key)
	form.SubmitError = ""
}

// HandleBackspace removes the last character from the focused field.
func (form *FormModel) HandleBackspace() {
	field := &form.Fields[form.focusIndex]
	if len(field.Options) > 0 || field.Value == "" {
		return
	}
	runes := []rune(field.Value)
	field.Value = string(runes[:len(runes)-1])
	delete(form.fieldErrors, field.Key)
	form.SubmitError = ""
}

// CycleOption advances an enum field to its next (or previous) option.
// No-op for text fields.
func (form *FormModel) CycleOption(forward bool) {
	field := &form.Fields[form.focusIndex]
	if len(field.Options) == 0 {
		return
	}
	current := 0
	for index, option := range field.Options {
		if option == field.Value {
			current = index
			break
		}
	}
	if forward {
		current = (current + 1) % len(field.Options)
	} else {
		current = (current - 1 + len(field.Options)) % len(field.Options)
	}
	field.Value = field.Options[current]
	delete(form.fieldErrors, field.Key)
	form.SubmitError = ""
}

// View renders the form as a bordered box.
func (form *FormModel) View(theme Theme, width int) string {
	labelWidth := 0
	for _, field := range form.Fields {
		if len(field.Label) > labelWidth {
			labelWidth = len(field.Label)
		}
	}

	inputWidth := width - labelWidth - 8
	if inputWidth < 10 {
		inputWidth = 10
	}

	var lines []string
	lines = append(lines, lipgloss.NewStyle().
		Foreground(theme.HeaderForeground).
		Bold(true).
		Render(form.Title))
	lines = append(lines, "")

	labelStyle := lipgloss.NewStyle().Foreground(theme.FieldLabel).Width(labelWidth)
	for index, field := range form.Fields {
		value := field.Value
		if len(field.Options) > 0 {
			value = "◂ " + value + " ▸"
		}

		inputStyle := lipgloss.NewStyle().
			Foreground(theme.NormalText).
			Background(theme.InputBackground).
			Width(inputWidth)
		if index == form.focusIndex {
			inputStyle = inputStyle.Background(theme.FocusedBackground)
			if len(field.Options) == 0 {
				value += "▎"
			}
		}

		line := "  " + labelStyle.Render(field.Label) + "  " + inputStyle.Render(value)
		lines = append(lines, line)

		if message, exists := form.fieldErrors[field.Key]; exists {
			lines = append(lines, "  "+strings.Repeat(" ", labelWidth)+"  "+
				lipgloss.NewStyle().Foreground(theme.FieldError).Render(message))
		}
	}

	if form.SubmitError != "" {
		lines = append(lines, "")
		lines = append(lines, "  "+lipgloss.NewStyle().
			Foreground(theme.ErrorForeground).
			Render(form.SubmitError))
	}

	lines = append(lines, "")
	lines = append(lines, "  "+lipgloss.NewStyle().
		Foreground(theme.HelpText).
		Render("Tab/Enter next · S-Tab previous · C-s save · Esc cancel"))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.BorderColor).
		Padding(0, 1)
	return box.Render(strings.Join(lines, "\n"))
}
