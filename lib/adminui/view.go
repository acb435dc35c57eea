// Copyright 2026 The Civica Authors
// SPDX-License-Identifier: Apache-2.0

package adminui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Chrome rows around the table: tab bar, scope line, column header,
// separator, status bar, help bar.
const chromeRows = 6

// tableHeight is the number of entity rows that fit on screen.
func (model Model) tableHeight() int {
	height := model.height - chromeRows
	if height < 1 {
		return 1
	}
	return height
}

// View implements tea.Model.
func (model Model) View() string {
	if !model.ready {
		return "Loading..."
	}

	switch model.screen {
	case ScreenLoading:
		return model.renderCentered("Restoring session...")
	case ScreenLogin:
		return model.renderLogin()
	case ScreenDashboard:
		return model.renderDashboard()
	}
	return model.renderEntityScreen()
}

// renderCentered places a single line in the middle of the terminal.
func (model Model) renderCentered(text string) string {
	return lipgloss.Place(model.width, model.height,
		lipgloss.Center, lipgloss.Center,
		lipgloss.NewStyle().Foreground(model.theme.FaintText).Render(text))
}

// renderLogin draws the email/password form.
func (model Model) renderLogin() string {
	theme := model.theme

	field := func(label, value string, focused, secret bool) string {
		if secret {
			value = strings.Repeat("•", len([]rune(value)))
		}
		style := lipgloss.NewStyle().
			Foreground(theme.NormalText).
			Background(theme.InputBackground).
			Width(34)
		if focused {
			style = style.Background(theme.FocusedBackground)
			value += "▎"
		}
		labelStyle := lipgloss.NewStyle().Foreground(theme.FieldLabel).Width(10)
		return labelStyle.Render(label) + style.Render(value)
	}

	var lines []string
	lines = append(lines, lipgloss.NewStyle().
		Foreground(theme.HeaderForeground).
		Bold(true).
		Render("Civica Administration"))
	lines = append(lines, "")
	lines = append(lines, field("Email", model.login.email,
		model.login.focus == loginFieldEmail, false))
	lines = append(lines, field("Password", string(model.login.password),
		model.login.focus == loginFieldPassword, true))
	lines = append(lines, "")

	if model.login.waiting {
		lines = append(lines, lipgloss.NewStyle().
			Foreground(theme.FaintText).
			Render("Signing in..."))
	} else if model.login.errText != "" {
		lines = append(lines, lipgloss.NewStyle().
			Foreground(theme.ErrorForeground).
			Render(model.login.errText))
	} else {
		lines = append(lines, lipgloss.NewStyle().
			Foreground(theme.HelpText).
			Render("Enter to sign in · C-c to quit"))
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.BorderColor).
		Padding(1, 3).
		Render(strings.Join(lines, "\n"))

	return lipgloss.Place(model.width, model.height,
		lipgloss.Center, lipgloss.Center, box)
}

// renderDashboard draws the aggregate counts.
func (model Model) renderDashboard() string {
	theme := model.theme

	var sections []string
	sections = append(sections, model.renderTabBar())
	sections = append(sections, "")

	if !model.statsLoaded {
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.FaintText).
			Render("  Loading statistics..."))
	} else {
		box := func(label string, count int) string {
			return lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(theme.BorderColor).
				Padding(0, 2).
				Render(fmt.Sprintf("%s\n%s",
					lipgloss.NewStyle().Foreground(theme.FaintText).Render(label),
					lipgloss.NewStyle().Foreground(theme.HeaderForeground).Bold(true).Render(fmt.Sprintf("%d", count))))
		}
		boxes := lipgloss.JoinHorizontal(lipgloss.Top,
			box("Users", model.stats.UsersCount),
			" ",
			box("Themes", model.stats.ThemesCount),
			" ",
			box("Levels", model.stats.LevelsCount),
			" ",
			box("Questions", model.stats.QuestionsCount),
		)
		sections = append(sections, boxes)
		if model.stats.LastUpdated != "" {
			sections = append(sections, lipgloss.NewStyle().
				Foreground(theme.FaintText).
				Render("  updated "+model.stats.LastUpdated))
		}
	}

	body := strings.Join(sections, "\n")
	return model.withStatusBars(body)
}

// renderEntityScreen draws a table screen, with any open form,
// confirmation, or detail view layered in place of the table.
func (model Model) renderEntityScreen() string {
	if model.detail != nil {
		return model.withStatusBars(model.renderTabBar() + "\n" + model.renderDetail())
	}
	if model.form != nil {
		return model.withStatusBars(model.renderTabBar() + "\n" + model.form.View(model.theme, model.width-4))
	}

	var sections []string
	sections = append(sections, model.renderTabBar())
	sections = append(sections, model.renderScopeLine())
	sections = append(sections, model.renderTable())

	if model.confirm != nil {
		prompt := lipgloss.NewStyle().
			Foreground(model.theme.ErrorForeground).
			Render(fmt.Sprintf(" Delete %q? y/n", model.confirm.label))
		sections = append(sections, prompt)
	}

	return model.withStatusBars(strings.Join(sections, "\n"))
}

// renderTabBar draws the screen switcher line.
func (model Model) renderTabBar() string {
	theme := model.theme
	tabs := []struct {
		screen Screen
		label  string
	}{
		{ScreenDashboard, "1 Dashboard"},
		{ScreenThemes, "2 Themes"},
		{ScreenLevels, "3 Levels"},
		{ScreenQuestions, "4 Questions"},
		{ScreenUsers, "5 Users"},
	}

	var parts []string
	for _, tab := range tabs {
		style := lipgloss.NewStyle().Foreground(theme.FaintText).Padding(0, 1)
		if tab.screen == model.screen {
			style = lipgloss.NewStyle().
				Foreground(theme.HeaderForeground).
				Bold(true).
				Padding(0, 1)
		}
		parts = append(parts, style.Render(tab.label))
	}

	bar := strings.Join(parts, " ")
	if user, ok := model.store.User(); ok {
		who := lipgloss.NewStyle().Foreground(theme.FaintText).Render(user.Email + " ")
		gap := model.width - lipgloss.Width(bar) - lipgloss.Width(who)
		if gap > 0 {
			bar += strings.Repeat(" ", gap) + who
		}
	}
	return bar
}

// renderScopeLine shows the drill-down path (or the filter input when
// it is active).
func (model Model) renderScopeLine() string {
	if filterView := model.filter.View(model.theme, model.width); filterView != "" {
		return filterView
	}

	var parts []string
	switch model.screen {
	case ScreenLevels:
		if model.scope.themeID != "" {
			parts = append(parts, "theme: "+model.scope.themeTitle)
		} else {
			parts = append(parts, "all themes")
		}
	case ScreenQuestions:
		if model.scope.levelID != "" {
			parts = append(parts, "level: "+model.scope.levelTitle)
		} else {
			parts = append(parts, "all levels")
		}
	case ScreenUsers:
		if model.emailQuery != "" {
			parts = append(parts, "email search: "+model.emailQuery)
		}
	}

	binding := model.binding(model.screen)
	if binding != nil && binding.loading() {
		parts = append(parts, "loading...")
	}

	return lipgloss.NewStyle().
		Foreground(model.theme.FaintText).
		Width(model.width).
		Render(" " + strings.Join(parts, " · "))
}

// columnWidths resolves the flexible column against the terminal
// width.
func (model Model) columnWidths(columns []tableColumn) []int {
	widths := make([]int, len(columns))
	fixed := 0
	flexIndex := -1
	for index, column := range columns {
		widths[index] = column.width
		if column.width == 0 {
			flexIndex = index
		} else {
			fixed += column.width
		}
	}
	if flexIndex >= 0 {
		flex := model.width - fixed - 2
		if flex < 12 {
			flex = 12
		}
		widths[flexIndex] = flex
	}
	return widths
}

// renderTable draws the column header and the visible row window.
func (model Model) renderTable() string {
	theme := model.theme
	binding := model.binding(model.screen)
	columns := binding.columns()
	widths := model.columnWidths(columns)
	rows := model.visibleRows()

	cell := func(text string, width int) string {
		text = ansi.Truncate(text, width-1, "…")
		return text + strings.Repeat(" ", max(0, width-lipgloss.Width(text)))
	}

	var lines []string

	var headerCells []string
	for index, column := range columns {
		headerCells = append(headerCells, cell(column.title, widths[index]))
	}
	lines = append(lines, lipgloss.NewStyle().
		Foreground(theme.HeaderForeground).
		Bold(true).
		Render(" "+strings.Join(headerCells, "")))

	lines = append(lines, lipgloss.NewStyle().
		Foreground(theme.BorderColor).
		Render(strings.Repeat("─", max(0, model.width))))

	if len(rows) == 0 {
		empty := "no " + binding.entityName() + "s"
		if errText := binding.errText(); errText != "" {
			empty = errText
		} else if binding.loading() {
			empty = "loading..."
		} else if model.filter.Input != "" {
			empty = "no matches"
		}
		lines = append(lines, lipgloss.NewStyle().
			Foreground(theme.FaintText).
			Render("  "+empty))
	}

	visible := model.tableHeight()
	for index := model.scrollOffset; index < model.scrollOffset+visible && index < len(rows); index++ {
		row := rows[index]
		var cells []string
		for cellIndex, text := range row.cells {
			if cellIndex < len(widths) {
				cells = append(cells, cell(text, widths[cellIndex]))
			}
		}
		line := " " + strings.Join(cells, "")
		if index == model.cursor {
			line = lipgloss.NewStyle().
				Background(theme.SelectedBackground).
				Foreground(theme.SelectedForeground).
				Width(model.width).
				Render(line)
		} else {
			line = lipgloss.NewStyle().
				Foreground(theme.NormalText).
				Render(line)
		}
		lines = append(lines, line)
	}

	return strings.Join(lines, "\n")
}

// renderDetail draws the read-only detail view for a question or a
// user.
func (model Model) renderDetail() string {
	theme := model.theme

	var lines []string
	if question := model.detail.question; question != nil {
		lines = append(lines, lipgloss.NewStyle().
			Foreground(theme.HeaderForeground).
			Bold(true).
			Render(question.QuestionText))
		lines = append(lines, "")
		for _, option := range []struct {
			answerKey string
			text      string
		}{
			{"A", question.OptionA},
			{"B", question.OptionB},
			{"C", question.OptionC},
			{"D", question.OptionD},
		} {
			style := lipgloss.NewStyle().Foreground(theme.NormalText)
			marker := "  "
			if option.answerKey == string(question.CorrectAnswer) {
				style = lipgloss.NewStyle().Foreground(theme.Active).Bold(true)
				marker = "✓ "
			}
			lines = append(lines, style.Render(fmt.Sprintf("%s%s. %s", marker, option.answerKey, option.text)))
		}
		lines = append(lines, "")
		lines = append(lines, lipgloss.NewStyle().
			Foreground(theme.FaintText).
			Render(fmt.Sprintf("%d points · order %d · %s",
				question.Points, question.OrderIndex, activeMarker(question.IsActive))))
		switch {
		case model.detail.checking:
			lines = append(lines, lipgloss.NewStyle().
				Foreground(theme.FaintText).
				Render("  checking answer key..."))
		case model.detail.check != nil && model.detail.check.Correct:
			lines = append(lines, lipgloss.NewStyle().
				Foreground(theme.Active).
				Render("  answer key confirmed by the backend"))
		case model.detail.check != nil:
			lines = append(lines, lipgloss.NewStyle().
				Foreground(theme.ErrorForeground).
				Render("  backend disagrees with the stored answer key"))
		}
		if question.Explanation != "" {
			lines = append(lines, "")
			lines = append(lines, renderMarkdown(question.Explanation, theme, max(20, model.width-8)))
		}
	} else {
		lines = append(lines, lipgloss.NewStyle().
			Foreground(theme.HeaderForeground).
			Bold(true).
			Render("User statistics"))
		lines = append(lines, "")
		if stats := model.detail.stats; stats != nil {
			lines = append(lines, fmt.Sprintf("  Total points    %d", stats.TotalPoints))
			lines = append(lines, fmt.Sprintf("  Current level   %d", stats.CurrentLevel))
			lines = append(lines, fmt.Sprintf("  Lives remaining %d", stats.LivesRemaining))
			if stats.LastLifeRefresh != "" {
				lines = append(lines, "  Last life refresh "+stats.LastLifeRefresh)
			}
		} else {
			lines = append(lines, lipgloss.NewStyle().
				Foreground(theme.FaintText).
				Render("  loading..."))
		}
	}

	lines = append(lines, "")
	lines = append(lines, lipgloss.NewStyle().
		Foreground(theme.HelpText).
		Render("Esc to close"))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.BorderColor).
		Padding(0, 2).
		Render(strings.Join(lines, "\n"))
}

// withStatusBars appends the status and help bars, padding the body
// so they sit at the bottom of the terminal.
func (model Model) withStatusBars(body string) string {
	theme := model.theme

	status := ""
	if model.notice != "" {
		color := theme.NoticeForeground
		if model.noticeError {
			color = theme.ErrorForeground
		}
		status = lipgloss.NewStyle().Foreground(color).Render(" " + model.notice)
	}

	help := lipgloss.NewStyle().
		Foreground(theme.HelpText).
		Render(model.helpLine())

	bodyHeight := lipgloss.Height(body)
	padding := model.height - bodyHeight - 2
	if padding < 0 {
		padding = 0
	}
	return body + strings.Repeat("\n", padding+1) + status + "\n" + help
}

// helpLine summarizes the bindings relevant to the active screen.
func (model Model) helpLine() string {
	switch model.focus {
	case FocusForm:
		return " Tab next · C-s save · Esc cancel"
	case FocusConfirm:
		return " y confirm · n cancel"
	case FocusFilter:
		return " Enter confirm · Esc clear"
	case FocusDetail:
		if model.detail != nil && model.detail.question != nil {
			return " c check answer · Esc close"
		}
		return " Esc close"
	}

	parts := []string{" j/k move", "/ filter", "a add", "e edit", "d delete", "r reload"}
	binding := model.binding(model.screen)
	if binding != nil && binding.orderable() {
		parts = append(parts, "J/K reorder")
	}
	switch model.screen {
	case ScreenThemes, ScreenLevels:
		parts = append(parts, "Enter open")
	case ScreenQuestions, ScreenUsers:
		parts = append(parts, "Enter detail")
	}
	parts = append(parts, "q quit")
	return strings.Join(parts, " · ")
}
