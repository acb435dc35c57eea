// Copyright 2026 The Civica Authors
// SPDX-License-Identifier: Apache-2.0

package adminui

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/civica-platform/civica-admin/lib/api"
	"github.com/civica-platform/civica-admin/lib/controller"
)

// tableColumn describes one column of an entity table. A width of 0
// means the column takes the remaining horizontal space.
type tableColumn struct {
	title string
	width int
}

// tableRow is one rendered table row: the entity ID for mutations,
// the cell texts in column order, and the concatenated searchable
// text for the client-side filter.
type tableRow struct {
	id     string
	cells  []string
	search string
}

// screenBinding adapts one entity controller to the uniform surface
// the model needs: table shape, form shape, and the mutation calls.
// The generics stop here; everything above works with rows and string
// values.
type screenBinding interface {
	entityName() string
	columns() []tableColumn
	rows() []tableRow
	loading() bool
	errText() string

	load(ctx context.Context, filter controller.Filter) error
	startCreate() error
	startEdit(id string) bool
	cancelEdit()

	// formFields builds the form from the controller's current draft.
	formFields() []FormField
	// applyValues converts the form values back onto the draft. A
	// conversion failure returns a ValidationError naming the field.
	applyValues(values map[string]string) error

	save(ctx context.Context) error
	remove(ctx context.Context, id string) error

	orderable() bool
	reorder(ctx context.Context, id string, direction controller.Direction) error
}

// boolField converts an active flag to its form representation.
func boolField(active bool) string {
	if active {
		return "yes"
	}
	return "no"
}

// parseIntField parses a numeric form value, reporting failures as a
// field-scoped validation error.
func parseIntField(key, value string) (int, error) {
	if value == "" {
		return 0, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, &controller.ValidationError{Field: key, Message: "must be a number"}
	}
	return parsed, nil
}

// activeMarker renders the is_active column.
func activeMarker(active bool) string {
	if active {
		return "active"
	}
	return "inactive"
}

// --- Themes ---

type themeBinding struct {
	list *controller.List[api.Theme]
}

func (binding *themeBinding) entityName() string { return "theme" }

func (binding *themeBinding) columns() []tableColumn {
	return []tableColumn{
		{title: "TITLE", width: 0},
		{title: "COLOR", width: 9},
		{title: "LEVELS", width: 8},
		{title: "STATE", width: 10},
	}
}

func (binding *themeBinding) rows() []tableRow {
	items := binding.list.Items()
	rows := make([]tableRow, 0, len(items))
	for _, item := range items {
		rows = append(rows, tableRow{
			id: item.ID,
			cells: []string{
				item.Title,
				item.Color,
				strconv.Itoa(item.LevelsCount),
				activeMarker(item.IsActive),
			},
			search: item.Title + " " + item.Description,
		})
	}
	return rows
}

func (binding *themeBinding) loading() bool   { return binding.list.Loading() }
func (binding *themeBinding) errText() string { return binding.list.Err() }

func (binding *themeBinding) load(ctx context.Context, filter controller.Filter) error {
	return binding.list.Load(ctx, filter)
}

func (binding *themeBinding) startCreate() error {
	binding.list.StartCreate()
	return nil
}

func (binding *themeBinding) startEdit(id string) bool { return binding.list.StartEdit(id) }
func (binding *themeBinding) cancelEdit()              { binding.list.CancelEdit() }

func (binding *themeBinding) formFields() []FormField {
	draft, _, ok := binding.list.Draft()
	if !ok {
		return nil
	}
	return []FormField{
		{Key: "title", Label: "Title", Value: draft.Title},
		{Key: "description", Label: "Description", Value: draft.Description},
		{Key: "color", Label: "Color", Value: draft.Color},
		{Key: "icon", Label: "Icon", Value: draft.Icon},
		{Key: "is_active", Label: "Active", Value: boolField(draft.IsActive), Options: []string{"yes", "no"}},
	}
}

func (binding *themeBinding) applyValues(values map[string]string) error {
	draft, _, ok := binding.list.Draft()
	if !ok {
		return fmt.Errorf("no theme draft open")
	}
	draft.Title = values["title"]
	draft.Description = values["description"]
	draft.Color = values["color"]
	draft.Icon = values["icon"]
	draft.IsActive = values["is_active"] == "yes"
	if draft.Color == "" {
		draft.Color = api.DefaultThemeColor
	}
	binding.list.SetDraft(draft)
	return nil
}

func (binding *themeBinding) save(ctx context.Context) error {
	_, err := binding.list.Save(ctx)
	return err
}

func (binding *themeBinding) remove(ctx context.Context, id string) error {
	return binding.list.Remove(ctx, id)
}

func (binding *themeBinding) orderable() bool { return false }

func (binding *themeBinding) reorder(context.Context, string, controller.Direction) error {
	return fmt.Errorf("themes have no display order")
}

// --- Levels ---

type levelBinding struct {
	list *controller.List[api.Level]
}

func (binding *levelBinding) entityName() string { return "level" }

func (binding *levelBinding) columns() []tableColumn {
	return []tableColumn{
		{title: "TITLE", width: 0},
		{title: "DIFFICULTY", width: 12},
		{title: "ORDER", width: 7},
		{title: "UNLOCK", width: 8},
		{title: "STATE", width: 10},
	}
}

func (binding *levelBinding) rows() []tableRow {
	// Display order follows order_index, not collection order, so a
	// persisted reorder moves the row on screen and the cursor can
	// follow it.
	items := binding.list.Items()
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].OrderIndex != items[j].OrderIndex {
			return items[i].OrderIndex < items[j].OrderIndex
		}
		return items[i].ID < items[j].ID
	})
	rows := make([]tableRow, 0, len(items))
	for _, item := range items {
		rows = append(rows, tableRow{
			id: item.ID,
			cells: []string{
				item.Title,
				string(item.Difficulty),
				strconv.Itoa(item.OrderIndex),
				strconv.Itoa(item.MinScoreToUnlock),
				activeMarker(item.IsActive),
			},
			search: item.Title + " " + item.Description + " " + string(item.Difficulty),
		})
	}
	return rows
}

func (binding *levelBinding) loading() bool   { return binding.list.Loading() }
func (binding *levelBinding) errText() string { return binding.list.Err() }

func (binding *levelBinding) load(ctx context.Context, filter controller.Filter) error {
	return binding.list.Load(ctx, filter)
}

func (binding *levelBinding) startCreate() error {
	binding.list.StartCreate()
	return nil
}

func (binding *levelBinding) startEdit(id string) bool { return binding.list.StartEdit(id) }
func (binding *levelBinding) cancelEdit()              { binding.list.CancelEdit() }

func (binding *levelBinding) formFields() []FormField {
	draft, _, ok := binding.list.Draft()
	if !ok {
		return nil
	}
	return []FormField{
		{Key: "title", Label: "Title", Value: draft.Title},
		{Key: "description", Label: "Description", Value: draft.Description},
		{Key: "theme_id", Label: "Theme ID", Value: draft.ThemeID},
		{Key: "difficulty", Label: "Difficulty", Value: string(draft.Difficulty),
			Options: []string{string(api.DifficultyEasy), string(api.DifficultyMedium), string(api.DifficultyHard)}},
		{Key: "min_score_to_unlock", Label: "Unlock score", Value: strconv.Itoa(draft.MinScoreToUnlock), Numeric: true},
		{Key: "is_active", Label: "Active", Value: boolField(draft.IsActive), Options: []string{"yes", "no"}},
	}
}

func (binding *levelBinding) applyValues(values map[string]string) error {
	draft, _, ok := binding.list.Draft()
	if !ok {
		return fmt.Errorf("no level draft open")
	}
	minScore, err := parseIntField("min_score_to_unlock", values["min_score_to_unlock"])
	if err != nil {
		return err
	}
	draft.Title = values["title"]
	draft.Description = values["description"]
	draft.ThemeID = values["theme_id"]
	draft.Difficulty = api.Difficulty(values["difficulty"])
	draft.MinScoreToUnlock = minScore
	draft.IsActive = values["is_active"] == "yes"
	binding.list.SetDraft(draft)
	return nil
}

func (binding *levelBinding) save(ctx context.Context) error {
	_, err := binding.list.Save(ctx)
	return err
}

func (binding *levelBinding) remove(ctx context.Context, id string) error {
	return binding.list.Remove(ctx, id)
}

func (binding *levelBinding) orderable() bool { return true }

func (binding *levelBinding) reorder(ctx context.Context, id string, direction controller.Direction) error {
	return binding.list.Reorder(ctx, id, direction)
}

// --- Questions ---

type questionBinding struct {
	list *controller.List[api.Question]
}

func (binding *questionBinding) entityName() string { return "question" }

func (binding *questionBinding) columns() []tableColumn {
	return []tableColumn{
		{title: "QUESTION", width: 0},
		{title: "ANSWER", width: 8},
		{title: "POINTS", width: 8},
		{title: "ORDER", width: 7},
		{title: "STATE", width: 10},
	}
}

func (binding *questionBinding) rows() []tableRow {
	// Same order_index sort as levels; see levelBinding.rows.
	items := binding.list.Items()
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].OrderIndex != items[j].OrderIndex {
			return items[i].OrderIndex < items[j].OrderIndex
		}
		return items[i].ID < items[j].ID
	})
	rows := make([]tableRow, 0, len(items))
	for _, item := range items {
		searchParts := []string{
			item.QuestionText,
			item.OptionA, item.OptionB, item.OptionC, item.OptionD,
		}
		rows = append(rows, tableRow{
			id: item.ID,
			cells: []string{
				item.QuestionText,
				string(item.CorrectAnswer),
				strconv.Itoa(item.Points),
				strconv.Itoa(item.OrderIndex),
				activeMarker(item.IsActive),
			},
			search: strings.Join(searchParts, " "),
		})
	}
	return rows
}

func (binding *questionBinding) loading() bool   { return binding.list.Loading() }
func (binding *questionBinding) errText() string { return binding.list.Err() }

func (binding *questionBinding) load(ctx context.Context, filter controller.Filter) error {
	return binding.list.Load(ctx, filter)
}

func (binding *questionBinding) startCreate() error {
	binding.list.StartCreate()
	return nil
}

func (binding *questionBinding) startEdit(id string) bool { return binding.list.StartEdit(id) }
func (binding *questionBinding) cancelEdit()              { binding.list.CancelEdit() }

func (binding *questionBinding) formFields() []FormField {
	draft, _, ok := binding.list.Draft()
	if !ok {
		return nil
	}
	return []FormField{
		{Key: "question_text", Label: "Question", Value: draft.QuestionText},
		{Key: "option_a", Label: "Option A", Value: draft.OptionA},
		{Key: "option_b", Label: "Option B", Value: draft.OptionB},
		{Key: "option_c", Label: "Option C", Value: draft.OptionC},
		{Key: "option_d", Label: "Option D", Value: draft.OptionD},
		{Key: "correct_answer", Label: "Answer", Value: string(draft.CorrectAnswer),
			Options: []string{"A", "B", "C", "D"}},
		{Key: "points", Label: "Points", Value: strconv.Itoa(draft.Points), Numeric: true},
		{Key: "explanation", Label: "Explanation", Value: draft.Explanation},
		{Key: "level_id", Label: "Level ID", Value: draft.LevelID},
		{Key: "is_active", Label: "Active", Value: boolField(draft.IsActive), Options: []string{"yes", "no"}},
	}
}

func (binding *questionBinding) applyValues(values map[string]string) error {
	draft, _, ok := binding.list.Draft()
	if !ok {
		return fmt.Errorf("no question draft open")
	}
	points, err := parseIntField("points", values["points"])
	if err != nil {
		return err
	}
	draft.QuestionText = values["question_text"]
	draft.OptionA = values["option_a"]
	draft.OptionB = values["option_b"]
	draft.OptionC = values["option_c"]
	draft.OptionD = values["option_d"]
	draft.CorrectAnswer = api.AnswerKey(values["correct_answer"])
	draft.Points = points
	draft.Explanation = values["explanation"]
	draft.LevelID = values["level_id"]
	draft.IsActive = values["is_active"] == "yes"
	binding.list.SetDraft(draft)
	return nil
}

func (binding *questionBinding) save(ctx context.Context) error {
	_, err := binding.list.Save(ctx)
	return err
}

func (binding *questionBinding) remove(ctx context.Context, id string) error {
	return binding.list.Remove(ctx, id)
}

func (binding *questionBinding) orderable() bool { return true }

func (binding *questionBinding) reorder(ctx context.Context, id string, direction controller.Direction) error {
	return binding.list.Reorder(ctx, id, direction)
}

// question returns the full entity for the detail view.
func (binding *questionBinding) question(id string) (api.Question, bool) {
	for _, item := range binding.list.Items() {
		if item.ID == id {
			return item, true
		}
	}
	return api.Question{}, false
}

// --- Users ---

type userBinding struct {
	list *controller.List[api.User]
}

func (binding *userBinding) entityName() string { return "user" }

func (binding *userBinding) columns() []tableColumn {
	return []tableColumn{
		{title: "EMAIL", width: 0},
		{title: "HANDLE", width: 16},
		{title: "ROLE", width: 7},
		{title: "STATUS", width: 10},
		{title: "POINTS", width: 8},
		{title: "LIVES", width: 7},
	}
}

func (binding *userBinding) rows() []tableRow {
	items := binding.list.Items()
	rows := make([]tableRow, 0, len(items))
	for _, item := range items {
		rows = append(rows, tableRow{
			id: item.ID,
			cells: []string{
				item.Email,
				item.Spseudo,
				string(item.Role),
				string(item.Status),
				strconv.Itoa(item.Point),
				strconv.Itoa(item.Vies),
			},
			search: item.Email + " " + item.Spseudo + " " + string(item.Role),
		})
	}
	return rows
}

func (binding *userBinding) loading() bool   { return binding.list.Loading() }
func (binding *userBinding) errText() string { return binding.list.Err() }

func (binding *userBinding) load(ctx context.Context, filter controller.Filter) error {
	return binding.list.Load(ctx, filter)
}

// startCreate reports the registration constraint: accounts are made
// through the player signup flow, not the admin panel.
func (binding *userBinding) startCreate() error {
	return fmt.Errorf("accounts are created through registration")
}

func (binding *userBinding) startEdit(id string) bool { return binding.list.StartEdit(id) }
func (binding *userBinding) cancelEdit()              { binding.list.CancelEdit() }

func (binding *userBinding) formFields() []FormField {
	draft, _, ok := binding.list.Draft()
	if !ok {
		return nil
	}
	return []FormField{
		{Key: "email", Label: "Email", Value: draft.Email},
		{Key: "spseudo", Label: "Handle", Value: draft.Spseudo},
		{Key: "role", Label: "Role", Value: string(draft.Role),
			Options: []string{string(api.RoleUser), string(api.RoleAdmin)}},
		{Key: "status", Label: "Status", Value: string(draft.Status),
			Options: []string{string(api.StatusActive), string(api.StatusInactive)}},
		{Key: "is_verified", Label: "Verified", Value: draft.IsVerified, Options: []string{"YES", "NO"}},
		{Key: "vies", Label: "Lives", Value: strconv.Itoa(draft.Vies), Numeric: true},
	}
}

func (binding *userBinding) applyValues(values map[string]string) error {
	draft, _, ok := binding.list.Draft()
	if !ok {
		return fmt.Errorf("no user draft open")
	}
	vies, err := parseIntField("vies", values["vies"])
	if err != nil {
		return err
	}
	draft.Email = values["email"]
	draft.Spseudo = values["spseudo"]
	draft.Role = api.Role(values["role"])
	draft.Status = api.AccountStatus(values["status"])
	draft.IsVerified = values["is_verified"]
	draft.Vies = vies
	binding.list.SetDraft(draft)
	return nil
}

func (binding *userBinding) save(ctx context.Context) error {
	_, err := binding.list.Save(ctx)
	return err
}

func (binding *userBinding) remove(ctx context.Context, id string) error {
	return binding.list.Remove(ctx, id)
}

func (binding *userBinding) orderable() bool { return false }

func (binding *userBinding) reorder(context.Context, string, controller.Direction) error {
	return fmt.Errorf("users have no display order")
}
