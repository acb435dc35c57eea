// Copyright 2026 The Civica Authors
// SPDX-License-Identifier: Apache-2.0

package controller

import (
	"context"

	"github.com/civica-platform/civica-admin/lib/api"
)

// ThemeResource binds the generic controller to the theme endpoints.
type ThemeResource struct {
	Client *api.Client
}

func (ThemeResource) Name() string { return "theme" }
func (ThemeResource) ID(item api.Theme) string { return item.ID }

func (resource ThemeResource) List(ctx context.Context, _ Filter) ([]api.Theme, error) {
	return resource.Client.ListThemes(ctx)
}

func (resource ThemeResource) Create(ctx context.Context, draft api.Theme) (api.Theme, error) {
	return resource.Client.CreateTheme(ctx, themeRequest(draft))
}

func (resource ThemeResource) Update(ctx context.Context, id string, draft api.Theme) (api.Theme, error) {
	return resource.Client.UpdateTheme(ctx, id, themeRequest(draft))
}

func (resource ThemeResource) Delete(ctx context.Context, id string) error {
	return resource.Client.DeleteTheme(ctx, id)
}

func (ThemeResource) Validate(draft api.Theme) error {
	if draft.Title == "" {
		return Required("title")
	}
	return nil
}

func (ThemeResource) NewDraft(_ Filter) api.Theme {
	return api.Theme{Color: api.DefaultThemeColor, IsActive: true}
}

func themeRequest(draft api.Theme) api.CreateThemeRequest {
	color := draft.Color
	if color == "" {
		color = api.DefaultThemeColor
	}
	return api.CreateThemeRequest{
		Title:       draft.Title,
		Description: draft.Description,
		Color:       color,
		Icon:        draft.Icon,
		IsActive:    draft.IsActive,
	}
}

// LevelResource binds the generic controller to the level endpoints.
// Lists scoped by Filter.ThemeID use the theme's nested levels route.
type LevelResource struct {
	Client *api.Client
}

func (LevelResource) Name() string { return "level" }
func (LevelResource) ID(item api.Level) string { return item.ID }

func (resource LevelResource) List(ctx context.Context, filter Filter) ([]api.Level, error) {
	if filter.ThemeID != "" {
		return resource.Client.ListThemeLevels(ctx, filter.ThemeID)
	}
	return resource.Client.ListLevels(ctx)
}

func (resource LevelResource) Create(ctx context.Context, draft api.Level) (api.Level, error) {
	return resource.Client.CreateLevel(ctx, levelRequest(draft))
}

func (resource LevelResource) Update(ctx context.Context, id string, draft api.Level) (api.Level, error) {
	return resource.Client.UpdateLevel(ctx, id, levelRequest(draft))
}

func (resource LevelResource) Delete(ctx context.Context, id string) error {
	return resource.Client.DeleteLevel(ctx, id)
}

func (LevelResource) Validate(draft api.Level) error {
	if draft.Title == "" {
		return Required("title")
	}
	if draft.ThemeID == "" {
		return Required("theme_id")
	}
	switch draft.Difficulty {
	case api.DifficultyEasy, api.DifficultyMedium, api.DifficultyHard:
	default:
		return &ValidationError{Field: "difficulty", Message: "must be easy, medium or hard"}
	}
	if draft.MinScoreToUnlock < 0 {
		return &ValidationError{Field: "min_score_to_unlock", Message: "must be >= 0"}
	}
	return nil
}

func (LevelResource) NewDraft(filter Filter) api.Level {
	return api.Level{
		ThemeID:    filter.ThemeID,
		Difficulty: api.DifficultyEasy,
		IsActive:   true,
	}
}

func (LevelResource) OrderIndex(item api.Level) int { return item.OrderIndex }

func (LevelResource) SetOrderIndex(item *api.Level, index int) { item.OrderIndex = index }

func levelRequest(draft api.Level) api.CreateLevelRequest {
	return api.CreateLevelRequest{
		ThemeID:          draft.ThemeID,
		Title:            draft.Title,
		Description:      draft.Description,
		Difficulty:       draft.Difficulty,
		OrderIndex:       draft.OrderIndex,
		IsActive:         draft.IsActive,
		MinScoreToUnlock: draft.MinScoreToUnlock,
	}
}

// QuestionResource binds the generic controller to the question
// endpoints. Lists scoped by Filter.LevelID use the level's nested
// questions route.
type QuestionResource struct {
	Client *api.Client
}

func (QuestionResource) Name() string { return "question" }
func (QuestionResource) ID(item api.Question) string { return item.ID }

func (resource QuestionResource) List(ctx context.Context, filter Filter) ([]api.Question, error) {
	if filter.LevelID != "" {
		return resource.Client.ListLevelQuestions(ctx, filter.LevelID)
	}
	return resource.Client.ListQuestions(ctx)
}

func (resource QuestionResource) Create(ctx context.Context, draft api.Question) (api.Question, error) {
	return resource.Client.CreateQuestion(ctx, questionRequest(draft))
}

func (resource QuestionResource) Update(ctx context.Context, id string, draft api.Question) (api.Question, error) {
	return resource.Client.UpdateQuestion(ctx, id, questionRequest(draft))
}

func (resource QuestionResource) Delete(ctx context.Context, id string) error {
	return resource.Client.DeleteQuestion(ctx, id)
}

func (QuestionResource) Validate(draft api.Question) error {
	if draft.QuestionText == "" {
		return Required("question_text")
	}
	if draft.LevelID == "" {
		return Required("level_id")
	}
	if draft.OptionA == "" {
		return Required("option_a")
	}
	if draft.OptionB == "" {
		return Required("option_b")
	}
	if draft.OptionC == "" {
		return Required("option_c")
	}
	if draft.OptionD == "" {
		return Required("option_d")
	}
	if !api.ValidAnswerKey(draft.CorrectAnswer) {
		return &ValidationError{Field: "correct_answer", Message: "must be A, B, C or D"}
	}
	if draft.Points < 0 {
		return &ValidationError{Field: "points", Message: "must be >= 0"}
	}
	return nil
}

func (QuestionResource) NewDraft(filter Filter) api.Question {
	return api.Question{
		LevelID:       filter.LevelID,
		CorrectAnswer: api.AnswerA,
		Points:        10,
		IsActive:      true,
	}
}

func (QuestionResource) OrderIndex(item api.Question) int { return item.OrderIndex }

func (QuestionResource) SetOrderIndex(item *api.Question, index int) { item.OrderIndex = index }

func questionRequest(draft api.Question) api.CreateQuestionRequest {
	return api.CreateQuestionRequest{
		LevelID:       draft.LevelID,
		QuestionText:  draft.QuestionText,
		OptionA:       draft.OptionA,
		OptionB:       draft.OptionB,
		OptionC:       draft.OptionC,
		OptionD:       draft.OptionD,
		CorrectAnswer: draft.CorrectAnswer,
		Explanation:   draft.Explanation,
		Points:        draft.Points,
		OrderIndex:    draft.OrderIndex,
		IsActive:      draft.IsActive,
	}
}

// UserResource binds the generic controller to the user endpoints.
// Users are created through player-facing registration, so the admin
// list has no create path.
type UserResource struct {
	Client *api.Client
}

func (UserResource) Name() string { return "user" }
func (UserResource) ID(item api.User) string { return item.ID }

func (resource UserResource) List(ctx context.Context, filter Filter) ([]api.User, error) {
	return resource.Client.ListUsers(ctx, filter.EmailQuery)
}

func (resource UserResource) Create(_ context.Context, _ api.User) (api.User, error) {
	return api.User{}, &ValidationError{Field: "user", Message: "accounts are created through registration"}
}

func (resource UserResource) Update(ctx context.Context, id string, draft api.User) (api.User, error) {
	vies := draft.Vies
	return resource.Client.UpdateUser(ctx, id, api.UpdateUserRequest{
		Spseudo:    draft.Spseudo,
		Email:      draft.Email,
		Role:       draft.Role,
		Status:     draft.Status,
		IsVerified: draft.IsVerified,
		Vies:       &vies,
	})
}

func (resource UserResource) Delete(ctx context.Context, id string) error {
	return resource.Client.DeleteUser(ctx, id)
}

func (UserResource) Validate(draft api.User) error {
	if draft.Email == "" {
		return Required("email")
	}
	switch draft.Role {
	case api.RoleUser, api.RoleAdmin:
	default:
		return &ValidationError{Field: "role", Message: "must be USER or ADMIN"}
	}
	switch draft.Status {
	case api.StatusActive, api.StatusInactive:
	default:
		return &ValidationError{Field: "status", Message: "must be ACTIVE or INACTIVE"}
	}
	return nil
}

func (UserResource) NewDraft(_ Filter) api.User {
	return api.User{Role: api.RoleUser, Status: api.StatusActive, IsVerified: "NO"}
}
