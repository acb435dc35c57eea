// Copyright 2026 The Civica Authors
// SPDX-License-Identifier: Apache-2.0

package adminui

import (
	"context"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/civica-platform/civica-admin/lib/api"
	"github.com/civica-platform/civica-admin/lib/controller"
	"github.com/civica-platform/civica-admin/lib/session"
)

// Screen identifies which view is active.
type Screen int

const (
	// ScreenLoading is shown while the saved session is restored.
	ScreenLoading Screen = iota
	// ScreenLogin is the email/password form.
	ScreenLogin
	// ScreenDashboard shows the aggregate counts.
	ScreenDashboard
	// ScreenThemes through ScreenUsers are the entity tables.
	ScreenThemes
	ScreenLevels
	ScreenQuestions
	ScreenUsers
)

// FocusRegion identifies where keyboard input routes.
type FocusRegion int

const (
	// FocusTable means navigation keys move the table cursor.
	FocusTable FocusRegion = iota
	// FocusForm means the create/edit form owns all input.
	FocusForm
	// FocusConfirm means the delete confirmation owns all input.
	FocusConfirm
	// FocusFilter means keystrokes go to the filter input.
	FocusFilter
	// FocusDetail means a read-only detail view is open; Esc closes.
	FocusDetail
	// FocusLogin means the login form owns all input.
	FocusLogin
)

// loginField indexes the two login inputs.
const (
	loginFieldEmail = iota
	loginFieldPassword
)

// loginForm holds the login screen state. The password is kept as a
// rune slice and never rendered.
type loginForm struct {
	email    string
	password []rune
	focus    int
	errText  string
	waiting  bool
}

// confirmState is the pending delete confirmation.
type confirmState struct {
	id    string
	label string
}

// scopeState records the drill-down path: which theme the levels
// screen is scoped to and which level the questions screen is scoped
// to. Empty IDs mean unscoped (full list).
type scopeState struct {
	themeID    string
	themeTitle string
	levelID    string
	levelTitle string
}

// detailState is the read-only detail overlay: either a question with
// its rendered explanation, or a user with fetched statistics.
type detailState struct {
	question *api.Question
	userID   string
	stats    *api.UserStats

	// Spot-check of the stored answer key against the backend's
	// answer checker, triggered with "c" on a question detail.
	checking bool
	check    *api.CheckResult
}

// Model is the top-level bubbletea model for the admin TUI.
type Model struct {
	client  *api.Client
	store   *session.Store
	logger  *slog.Logger
	theme   Theme
	keys    KeyMap
	timeout time.Duration

	// Terminal dimensions (set by WindowSizeMsg).
	width  int
	height int
	ready  bool

	screen Screen
	focus  FocusRegion

	login loginForm

	// One controller per entity, alive for the whole run so its
	// generation counter can discard stale loads.
	themes    *themeBinding
	levels    *levelBinding
	questions *questionBinding
	users     *userBinding

	// Table state for the active screen. Reset on screen switch.
	cursor       int
	scrollOffset int

	scope  scopeState
	filter FilterModel
	// emailQuery is the confirmed server-side search on the users
	// screen (the filter input pushed with Enter).
	emailQuery string

	form    *FormModel
	confirm *confirmState
	detail  *detailState

	stats       api.DashboardStats
	statsLoaded bool

	notice      string
	noticeError bool
	noticeGen   int
}

// NewModel creates the admin TUI model. The store should not have been
// restored yet; restoration runs inside Init so the UI can show a
// loading view in the meantime.
func NewModel(client *api.Client, store *session.Store, logger *slog.Logger, timeout time.Duration) Model {
	return Model{
		client:    client,
		store:     store,
		logger:    logger,
		theme:     DefaultTheme,
		keys:      DefaultKeyMap,
		timeout:   timeout,
		screen:    ScreenLoading,
		focus:     FocusLogin,
		themes:    &themeBinding{list: controller.NewList[api.Theme](controller.ThemeResource{Client: client})},
		levels:    &levelBinding{list: controller.NewList[api.Level](controller.LevelResource{Client: client})},
		questions: &questionBinding{list: controller.NewList[api.Question](controller.QuestionResource{Client: client})},
		users:     &userBinding{list: controller.NewList[api.User](controller.UserResource{Client: client})},
	}
}

// Init implements tea.Model. Kicks off session restoration.
func (model Model) Init() tea.Cmd {
	store := model.store
	return func() tea.Msg {
		if err := store.Restore(); err != nil {
			return sessionRestoredMsg{err: err}
		}
		return sessionRestoredMsg{authenticated: store.Authenticated()}
	}
}

// binding returns the screen adapter for an entity screen, or nil for
// non-table screens.
func (model *Model) binding(screen Screen) screenBinding {
	switch screen {
	case ScreenThemes:
		return model.themes
	case ScreenLevels:
		return model.levels
	case ScreenQuestions:
		return model.questions
	case ScreenUsers:
		return model.users
	default:
		return nil
	}
}

// filterFor builds the controller filter for a screen from the
// drill-down scope and the confirmed email query.
func (model *Model) filterFor(screen Screen) controller.Filter {
	switch screen {
	case ScreenLevels:
		return controller.Filter{ThemeID: model.scope.themeID}
	case ScreenQuestions:
		return controller.Filter{LevelID: model.scope.levelID}
	case ScreenUsers:
		return controller.Filter{EmailQuery: model.emailQuery}
	default:
		return controller.Filter{}
	}
}

// requestContext returns a context bounded by the configured timeout.
func (model *Model) requestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), model.timeout)
}

// loadCmd reloads the given screen's controller in the background.
func (model *Model) loadCmd(screen Screen) tea.Cmd {
	binding := model.binding(screen)
	if binding == nil {
		return nil
	}
	filter := model.filterFor(screen)
	timeout := model.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		err := binding.load(ctx, filter)
		return listLoadedMsg{screen: screen, err: err}
	}
}

// loadStatsCmd fetches the dashboard aggregates.
func (model *Model) loadStatsCmd() tea.Cmd {
	client := model.client
	timeout := model.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		stats, err := client.GetDashboardStats(ctx)
		return statsLoadedMsg{stats: stats, err: err}
	}
}

// checkAnswerCmd submits the question's stored answer key to the
// backend's answer checker. Any verdict other than correct means the
// stored key and the checker disagree about this question.
func (model *Model) checkAnswerCmd(question api.Question) tea.Cmd {
	client := model.client
	timeout := model.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		result, err := client.CheckAnswer(ctx, question.ID, question.CorrectAnswer)
		return answerCheckMsg{id: question.ID, result: result, err: err}
	}
}

// loginCmd authenticates and persists the session.
func (model *Model) loginCmd(email, password string) tea.Cmd {
	store := model.store
	client := model.client
	timeout := model.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		_, err := store.Login(ctx, client, email, password)
		return loginResultMsg{err: err}
	}
}

// switchScreen activates a screen, resetting table state and starting
// a reload for entity screens.
func (model *Model) switchScreen(screen Screen) tea.Cmd {
	model.screen = screen
	model.cursor = 0
	model.scrollOffset = 0
	model.filter.Clear()
	model.form = nil
	model.confirm = nil
	model.detail = nil
	model.focus = FocusTable

	if screen == ScreenDashboard {
		return model.loadStatsCmd()
	}
	return model.loadCmd(screen)
}

// handleAuthFailure implements the route guard: an authentication
// error from any operation clears the session and returns to login.
// Returns true when the error was an auth error.
func (model *Model) handleAuthFailure(err error) bool {
	if err == nil || !api.IsAuth(err) {
		return false
	}
	if removeErr := model.store.Logout(); removeErr != nil {
		model.logger.Warn("clearing session after auth failure", "error", removeErr)
	}
	model.screen = ScreenLogin
	model.focus = FocusLogin
	model.login = loginForm{errText: "Session expired. Log in again."}
	model.form = nil
	model.confirm = nil
	model.detail = nil
	return true
}

// setNotice shows a status bar message and schedules its fade.
func (model *Model) setNotice(text string, isError bool) tea.Cmd {
	model.notice = text
	model.noticeError = isError
	model.noticeGen++
	return fadeNotice(model.noticeGen)
}

// visibleRows returns the active screen's rows after the client-side
// filter.
func (model *Model) visibleRows() []tableRow {
	binding := model.binding(model.screen)
	if binding == nil {
		return nil
	}
	return model.filter.Apply(binding.rows())
}

// selectedRow returns the row under the cursor, if any.
func (model *Model) selectedRow() (tableRow, bool) {
	rows := model.visibleRows()
	if model.cursor < 0 || model.cursor >= len(rows) {
		return tableRow{}, false
	}
	return rows[model.cursor], true
}

// clampCursor keeps the cursor inside the filtered row set.
func (model *Model) clampCursor() {
	count := len(model.visibleRows())
	if model.cursor >= count {
		model.cursor = count - 1
	}
	if model.cursor < 0 {
		model.cursor = 0
	}
	model.clampScroll()
}

// clampScroll keeps the cursor inside the visible window.
func (model *Model) clampScroll() {
	visible := model.tableHeight()
	if visible < 1 {
		visible = 1
	}
	if model.cursor < model.scrollOffset {
		model.scrollOffset = model.cursor
	}
	if model.cursor >= model.scrollOffset+visible {
		model.scrollOffset = model.cursor - visible + 1
	}
	if model.scrollOffset < 0 {
		model.scrollOffset = 0
	}
}

// Update implements tea.Model.
func (model Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.WindowSizeMsg:
		model.width = message.Width
		model.height = message.Height
		model.ready = true
		model.clampScroll()
		return model, nil

	case sessionRestoredMsg:
		if message.err != nil {
			model.logger.Warn("session restore failed", "error", message.err)
			model.screen = ScreenLogin
			model.focus = FocusLogin
			model.login.errText = "Saved session was unreadable. Log in again."
			return model, nil
		}
		if message.authenticated {
			model.screen = ScreenDashboard
			model.focus = FocusTable
			return model, model.loadStatsCmd()
		}
		model.screen = ScreenLogin
		model.focus = FocusLogin
		return model, nil

	case loginResultMsg:
		model.login.waiting = false
		if message.err != nil {
			model.login.errText = api.UserMessage(message.err)
			model.login.password = nil
			return model, nil
		}
		model.login = loginForm{}
		cmd := model.switchScreen(ScreenDashboard)
		return model, cmd

	case statsLoadedMsg:
		if model.handleAuthFailure(message.err) {
			return model, nil
		}
		if message.err != nil {
			return model, model.setNotice(api.UserMessage(message.err), true)
		}
		model.stats = message.stats
		model.statsLoaded = true
		return model, nil

	case listLoadedMsg:
		if model.handleAuthFailure(message.err) {
			return model, nil
		}
		model.clampCursor()
		return model, nil

	case saveResultMsg:
		return model.handleSaveResult(message)

	case removeResultMsg:
		if model.handleAuthFailure(message.err) {
			return model, nil
		}
		if message.err != nil {
			return model, model.setNotice(api.UserMessage(message.err), true)
		}
		model.clampCursor()
		binding := model.binding(message.screen)
		return model, model.setNotice(binding.entityName()+" deleted", false)

	case reorderResultMsg:
		if model.handleAuthFailure(message.err) {
			return model, nil
		}
		if message.err != nil {
			return model, model.setNotice(api.UserMessage(message.err), true)
		}
		if message.screen == model.screen {
			model.cursor += message.direction
			model.clampCursor()
		}
		return model, nil

	case userStatsMsg:
		if model.handleAuthFailure(message.err) {
			return model, nil
		}
		if message.err != nil {
			return model, model.setNotice(api.UserMessage(message.err), true)
		}
		if model.detail != nil && model.detail.userID == message.id {
			stats := message.stats
			model.detail.stats = &stats
		}
		return model, nil

	case answerCheckMsg:
		if model.handleAuthFailure(message.err) {
			return model, nil
		}
		if model.detail == nil || model.detail.question == nil || model.detail.question.ID != message.id {
			return model, nil
		}
		model.detail.checking = false
		if message.err != nil {
			return model, model.setNotice(api.UserMessage(message.err), true)
		}
		result := message.result
		model.detail.check = &result
		return model, nil

	case noticeFadeMsg:
		if message.generation == model.noticeGen {
			model.notice = ""
		}
		return model, nil

	case tea.KeyMsg:
		return model.handleKey(message)
	}
	return model, nil
}

// handleSaveResult routes a save outcome: validation errors go back
// into the form, auth errors to the guard, success closes the form.
func (model Model) handleSaveResult(message saveResultMsg) (tea.Model, tea.Cmd) {
	if model.handleAuthFailure(message.err) {
		return model, nil
	}
	if message.err != nil {
		if model.form != nil {
			if validation, ok := controller.IsValidationError(message.err); ok {
				model.form.SetFieldError(validation.Field, validation.Message)
			} else {
				model.form.SubmitError = api.UserMessage(message.err)
			}
		}
		return model, nil
	}
	binding := model.binding(message.screen)
	model.form = nil
	model.focus = FocusTable
	model.clampCursor()
	return model, model.setNotice(binding.entityName()+" saved", false)
}

// handleKey routes keyboard input by focus region.
func (model Model) handleKey(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch model.focus {
	case FocusLogin:
		return model.handleLoginKeys(message)
	case FocusForm:
		return model.handleFormKeys(message)
	case FocusConfirm:
		return model.handleConfirmKeys(message)
	case FocusFilter:
		return model.handleFilterKeys(message)
	case FocusDetail:
		return model.handleDetailKeys(message)
	}
	return model.handleTableKeys(message)
}

// handleLoginKeys drives the email/password form.
func (model Model) handleLoginKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	if model.screen == ScreenLoading {
		return model, nil
	}
	switch message.Type {
	case tea.KeyCtrlC:
		return model, tea.Quit

	case tea.KeyTab, tea.KeyDown:
		model.login.focus = (model.login.focus + 1) % 2
		return model, nil

	case tea.KeyShiftTab, tea.KeyUp:
		model.login.focus = (model.login.focus + 1) % 2
		return model, nil

	case tea.KeyEnter:
		if model.login.focus == loginFieldEmail {
			model.login.focus = loginFieldPassword
			return model, nil
		}
		if model.login.waiting {
			return model, nil
		}
		if model.login.email == "" || len(model.login.password) == 0 {
			model.login.errText = "Email and password are required."
			return model, nil
		}
		model.login.waiting = true
		model.login.errText = ""
		return model, model.loginCmd(model.login.email, string(model.login.password))

	case tea.KeyBackspace:
		if model.login.focus == loginFieldEmail {
			if model.login.email != "" {
				runes := []rune(model.login.email)
				model.login.email = string(runes[:len(runes)-1])
			}
		} else if len(model.login.password) > 0 {
			model.login.password = model.login.password[:len(model.login.password)-1]
		}
		return model, nil

	case tea.KeyRunes, tea.KeySpace:
		for _, character := range message.Runes {
			if model.login.focus == loginFieldEmail {
				model.login.email += string(character)
			} else {
				model.login.password = append(model.login.password, character)
			}
		}
		model.login.errText = ""
		return model, nil
	}
	return model, nil
}

// handleFormKeys drives the create/edit form.
func (model Model) handleFormKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	binding := model.binding(model.screen)
	switch {
	case message.Type == tea.KeyCtrlC:
		return model, tea.Quit

	case message.Type == tea.KeyEsc:
		binding.cancelEdit()
		model.form = nil
		model.focus = FocusTable
		return model, nil

	case key.Matches(message, model.keys.FormSubmit):
		return model.submitForm()

	case key.Matches(message, model.keys.FormPrev):
		model.form.FocusPrev()
		return model, nil

	case key.Matches(message, model.keys.FormNext):
		if model.form.FocusNext() && message.Type == tea.KeyEnter {
			// Enter on the last field submits.
			return model.submitForm()
		}
		return model, nil

	case key.Matches(message, model.keys.FormCycle):
		model.form.CycleOption(message.Type == tea.KeyRight)
		return model, nil

	case message.Type == tea.KeyBackspace:
		model.form.HandleBackspace()
		return model, nil

	case message.Type == tea.KeyRunes || message.Type == tea.KeySpace:
		for _, character := range message.Runes {
			model.form.HandleRune(character)
		}
		return model, nil
	}
	return model, nil
}

// submitForm pushes the form values onto the draft and saves.
func (model Model) submitForm() (tea.Model, tea.Cmd) {
	binding := model.binding(model.screen)
	if err := binding.applyValues(model.form.Values()); err != nil {
		if validation, ok := controller.IsValidationError(err); ok {
			model.form.SetFieldError(validation.Field, validation.Message)
		} else {
			model.form.SubmitError = err.Error()
		}
		return model, nil
	}

	screen := model.screen
	timeout := model.timeout
	return model, func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		return saveResultMsg{screen: screen, err: binding.save(ctx)}
	}
}

// handleConfirmKeys drives the delete confirmation.
func (model Model) handleConfirmKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch message.String() {
	case "y", "enter":
		confirm := model.confirm
		model.confirm = nil
		model.focus = FocusTable
		binding := model.binding(model.screen)
		screen := model.screen
		timeout := model.timeout
		return model, func() tea.Msg {
			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			defer cancel()
			return removeResultMsg{screen: screen, err: binding.remove(ctx, confirm.id)}
		}
	case "n", "esc", "q":
		model.confirm = nil
		model.focus = FocusTable
		return model, nil
	case "ctrl+c":
		return model, tea.Quit
	}
	return model, nil
}

// handleFilterKeys drives the filter input.
func (model Model) handleFilterKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch message.Type {
	case tea.KeyCtrlC:
		return model, tea.Quit

	case tea.KeyEsc:
		hadQuery := model.emailQuery != ""
		model.filter.Clear()
		model.focus = FocusTable
		model.clampCursor()
		if model.screen == ScreenUsers && hadQuery {
			model.emailQuery = ""
			return model, model.loadCmd(ScreenUsers)
		}
		return model, nil

	case tea.KeyEnter:
		model.filter.Active = false
		model.focus = FocusTable
		model.clampCursor()
		if model.screen == ScreenUsers {
			// Push the query to the server-side email search.
			model.emailQuery = model.filter.Input
			return model, model.loadCmd(ScreenUsers)
		}
		return model, nil

	case tea.KeyBackspace:
		if !model.filter.HandleBackspace() {
			model.filter.Clear()
			model.focus = FocusTable
		}
		model.clampCursor()
		return model, nil

	case tea.KeyRunes, tea.KeySpace:
		for _, character := range message.Runes {
			model.filter.HandleRune(character)
		}
		model.cursor = 0
		model.scrollOffset = 0
		return model, nil
	}
	return model, nil
}

// handleDetailKeys closes the read-only detail view and runs the
// answer spot-check on question details.
func (model Model) handleDetailKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch message.String() {
	case "esc", "q", "enter":
		model.detail = nil
		model.focus = FocusTable
		return model, nil
	case "c":
		if model.detail != nil && model.detail.question != nil && !model.detail.checking {
			model.detail.checking = true
			model.detail.check = nil
			return model, model.checkAnswerCmd(*model.detail.question)
		}
		return model, nil
	case "ctrl+c":
		return model, tea.Quit
	}
	return model, nil
}

// handleTableKeys drives the dashboard and the entity tables.
func (model Model) handleTableKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	binding := model.binding(model.screen)
	rows := model.visibleRows()

	switch {
	case key.Matches(message, model.keys.Quit):
		return model, tea.Quit

	case key.Matches(message, model.keys.TabDashboard):
		return model, model.switchScreen(ScreenDashboard)
	case key.Matches(message, model.keys.TabThemes):
		return model, model.switchScreen(ScreenThemes)
	case key.Matches(message, model.keys.TabLevels):
		return model, model.switchScreen(ScreenLevels)
	case key.Matches(message, model.keys.TabQuestions):
		return model, model.switchScreen(ScreenQuestions)
	case key.Matches(message, model.keys.TabUsers):
		return model, model.switchScreen(ScreenUsers)
	}

	if binding == nil {
		return model, nil
	}

	switch {
	case key.Matches(message, model.keys.Up):
		if model.cursor > 0 {
			model.cursor--
			model.clampScroll()
		}

	case key.Matches(message, model.keys.Down):
		if model.cursor < len(rows)-1 {
			model.cursor++
			model.clampScroll()
		}

	case key.Matches(message, model.keys.PageUp):
		model.cursor -= model.tableHeight()
		model.clampCursor()

	case key.Matches(message, model.keys.PageDown):
		model.cursor += model.tableHeight()
		model.clampCursor()

	case key.Matches(message, model.keys.Home):
		model.cursor = 0
		model.clampScroll()

	case key.Matches(message, model.keys.End):
		model.cursor = len(rows) - 1
		model.clampCursor()

	case key.Matches(message, model.keys.FilterActivate):
		model.filter.Active = true
		model.focus = FocusFilter
		model.cursor = 0
		model.scrollOffset = 0

	case key.Matches(message, model.keys.Reload):
		return model, model.loadCmd(model.screen)

	case key.Matches(message, model.keys.Add):
		if err := binding.startCreate(); err != nil {
			return model, model.setNotice(err.Error(), true)
		}
		model.form = NewForm("New "+binding.entityName(), binding.formFields())
		model.focus = FocusForm

	case key.Matches(message, model.keys.Edit):
		row, ok := model.selectedRow()
		if !ok {
			return model, nil
		}
		if !binding.startEdit(row.id) {
			return model, model.setNotice("row is gone, reload with r", true)
		}
		model.form = NewForm("Edit "+binding.entityName(), binding.formFields())
		model.focus = FocusForm

	case key.Matches(message, model.keys.Delete):
		row, ok := model.selectedRow()
		if !ok {
			return model, nil
		}
		label := row.id
		if len(row.cells) > 0 {
			label = row.cells[0]
		}
		model.confirm = &confirmState{id: row.id, label: label}
		model.focus = FocusConfirm

	case key.Matches(message, model.keys.MoveUp):
		return model.reorderSelected(controller.Up, -1)

	case key.Matches(message, model.keys.MoveDown):
		return model.reorderSelected(controller.Down, +1)

	case key.Matches(message, model.keys.ScopeToggle):
		return model.toggleScope()

	case key.Matches(message, model.keys.Enter):
		return model.openSelected()

	case key.Matches(message, model.keys.Back):
		return model.navigateBack()
	}
	return model, nil
}

// reorderSelected swaps the selected row with its neighbor.
func (model Model) reorderSelected(direction controller.Direction, cursorDelta int) (tea.Model, tea.Cmd) {
	binding := model.binding(model.screen)
	if !binding.orderable() {
		return model, nil
	}
	if model.filter.Input != "" {
		// Reordering a filtered view would swap against a hidden
		// neighbor; require the full list.
		return model, model.setNotice("clear the filter before reordering", true)
	}
	row, ok := model.selectedRow()
	if !ok {
		return model, nil
	}
	screen := model.screen
	timeout := model.timeout
	return model, func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		return reorderResultMsg{
			screen:    screen,
			direction: cursorDelta,
			err:       binding.reorder(ctx, row.id, direction),
		}
	}
}

// toggleScope clears the drill-down scope on the current screen and
// reloads the unscoped list.
func (model Model) toggleScope() (tea.Model, tea.Cmd) {
	switch model.screen {
	case ScreenLevels:
		if model.scope.themeID == "" {
			return model, nil
		}
		model.scope.themeID = ""
		model.scope.themeTitle = ""
		return model, model.loadCmd(ScreenLevels)
	case ScreenQuestions:
		if model.scope.levelID == "" {
			return model, nil
		}
		model.scope.levelID = ""
		model.scope.levelTitle = ""
		return model, model.loadCmd(ScreenQuestions)
	}
	return model, nil
}

// openSelected drills into the selected row: themes open their
// levels, levels open their questions, questions and users open a
// detail view.
func (model Model) openSelected() (tea.Model, tea.Cmd) {
	row, ok := model.selectedRow()
	if !ok {
		return model, nil
	}

	switch model.screen {
	case ScreenThemes:
		model.scope.themeID = row.id
		model.scope.themeTitle = row.cells[0]
		model.scope.levelID = ""
		model.scope.levelTitle = ""
		return model, model.switchScreen(ScreenLevels)

	case ScreenLevels:
		model.scope.levelID = row.id
		model.scope.levelTitle = row.cells[0]
		return model, model.switchScreen(ScreenQuestions)

	case ScreenQuestions:
		question, exists := model.questions.question(row.id)
		if !exists {
			return model, nil
		}
		model.detail = &detailState{question: &question}
		model.focus = FocusDetail
		return model, nil

	case ScreenUsers:
		model.detail = &detailState{userID: row.id}
		model.focus = FocusDetail
		client := model.client
		timeout := model.timeout
		id := row.id
		return model, func() tea.Msg {
			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			defer cancel()
			stats, err := client.GetUserStats(ctx, id)
			return userStatsMsg{id: id, stats: stats, err: err}
		}
	}
	return model, nil
}

// navigateBack walks up the drill-down path: questions back to
// levels, levels back to themes.
func (model Model) navigateBack() (tea.Model, tea.Cmd) {
	switch model.screen {
	case ScreenQuestions:
		if model.scope.levelID != "" {
			model.scope.levelID = ""
			model.scope.levelTitle = ""
			return model, model.switchScreen(ScreenLevels)
		}
	case ScreenLevels:
		if model.scope.themeID != "" {
			model.scope.themeID = ""
			model.scope.themeTitle = ""
			return model, model.switchScreen(ScreenThemes)
		}
	}
	return model, nil
}
