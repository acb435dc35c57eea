// Copyright 2026 The Civica Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"net/url"
)

// CreateLevelRequest is the payload for creating a level.
type CreateLevelRequest struct {
	ThemeID          string     `json:"theme_id"`
	Title            string     `json:"title"`
	Description      string     `json:"description,omitempty"`
	Difficulty       Difficulty `json:"difficulty"`
	OrderIndex       int        `json:"order_index"`
	IsActive         bool       `json:"is_active"`
	MinScoreToUnlock int        `json:"min_score_to_unlock"`
}

// UpdateLevelRequest is the payload for updating a level.
type UpdateLevelRequest = CreateLevelRequest

// ListLevels returns all levels across all themes.
func (client *Client) ListLevels(ctx context.Context) ([]Level, error) {
	var levels []Level
	if err := client.get(ctx, "/api/level/", &levels); err != nil {
		return nil, err
	}
	return levels, nil
}

// ListThemeLevels returns the levels belonging to one theme.
func (client *Client) ListThemeLevels(ctx context.Context, themeID string) ([]Level, error) {
	var levels []Level
	if err := client.get(ctx, "/api/theme/"+url.PathEscape(themeID)+"/levels", &levels); err != nil {
		return nil, err
	}
	return levels, nil
}

// GetLevel returns a single level by ID.
func (client *Client) GetLevel(ctx context.Context, id string) (Level, error) {
	var level Level
	if err := client.get(ctx, "/api/level/"+url.PathEscape(id), &level); err != nil {
		return Level{}, err
	}
	return level, nil
}

// CreateLevel creates a level and returns the stored record.
func (client *Client) CreateLevel(ctx context.Context, request CreateLevelRequest) (Level, error) {
	var level Level
	if err := client.post(ctx, "/api/level", request, &level); err != nil {
		return Level{}, err
	}
	return level, nil
}

// UpdateLevel updates a level and returns the stored record.
func (client *Client) UpdateLevel(ctx context.Context, id string, request UpdateLevelRequest) (Level, error) {
	var level Level
	if err := client.put(ctx, "/api/level/"+url.PathEscape(id), request, &level); err != nil {
		return Level{}, err
	}
	return level, nil
}

// DeleteLevel deletes a level.
func (client *Client) DeleteLevel(ctx context.Context, id string) error {
	return client.delete(ctx, "/api/level/"+url.PathEscape(id))
}
