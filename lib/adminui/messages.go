// Copyright 2026 The Civica Authors
// SPDX-License-Identifier: Apache-2.0

package adminui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/civica-platform/civica-admin/lib/api"
)

// sessionRestoredMsg reports the outcome of loading the saved session
// file during startup.
type sessionRestoredMsg struct {
	authenticated bool
	err           error
}

// loginResultMsg reports the outcome of a login attempt.
type loginResultMsg struct {
	err error
}

// statsLoadedMsg delivers the dashboard aggregates.
type statsLoadedMsg struct {
	stats api.DashboardStats
	err   error
}

// listLoadedMsg reports that a controller finished (re)loading. The
// controller itself already holds the items or the error; the message
// only triggers a redraw and the auth guard.
type listLoadedMsg struct {
	screen Screen
	err    error
}

// saveResultMsg reports the outcome of a form submission.
type saveResultMsg struct {
	screen Screen
	err    error
}

// removeResultMsg reports the outcome of a delete.
type removeResultMsg struct {
	screen Screen
	err    error
}

// reorderResultMsg reports the outcome of a neighbor swap. direction
// lets the cursor follow the moved row.
type reorderResultMsg struct {
	screen    Screen
	direction int // -1 moved up, +1 moved down.
	err       error
}

// userStatsMsg delivers the per-user statistics for the detail view.
type userStatsMsg struct {
	id    string
	stats api.UserStats
	err   error
}

// answerCheckMsg delivers the backend's verdict on the stored answer
// key of the question open in the detail view.
type answerCheckMsg struct {
	id     string
	result api.CheckResult
	err    error
}

// noticeFadeMsg is sent after a delay to clear the status bar notice.
// generation identifies the notice the tick was scheduled for, so a
// tick from a superseded notice cannot clear its replacement early.
type noticeFadeMsg struct {
	generation int
}

// noticeFadeDelay is how long a status bar notice stays visible.
const noticeFadeDelay = 4 * time.Second

// fadeNotice schedules the status bar notice to clear.
func fadeNotice(generation int) tea.Cmd {
	return tea.Tick(noticeFadeDelay, func(time.Time) tea.Msg {
		return noticeFadeMsg{generation: generation}
	})
}
