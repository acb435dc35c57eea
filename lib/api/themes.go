// Copyright 2026 The Civica Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"net/url"
)

// CreateThemeRequest is the payload for creating a theme. The backend
// assigns the ID and timestamps.
type CreateThemeRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Color       string `json:"color"`
	Icon        string `json:"icon,omitempty"`
	IsActive    bool   `json:"isActive"`
}

// UpdateThemeRequest is the payload for updating a theme. All fields
// are sent; the backend overwrites the record.
type UpdateThemeRequest = CreateThemeRequest

// ListThemes returns all themes.
func (client *Client) ListThemes(ctx context.Context) ([]Theme, error) {
	var themes []Theme
	if err := client.get(ctx, "/api/theme/", &themes); err != nil {
		return nil, err
	}
	return themes, nil
}

// CreateTheme creates a theme and returns the stored record.
func (client *Client) CreateTheme(ctx context.Context, request CreateThemeRequest) (Theme, error) {
	var theme Theme
	if err := client.post(ctx, "/api/theme/", request, &theme); err != nil {
		return Theme{}, err
	}
	return theme, nil
}

// UpdateTheme updates a theme and returns the stored record.
func (client *Client) UpdateTheme(ctx context.Context, id string, request UpdateThemeRequest) (Theme, error) {
	var theme Theme
	if err := client.put(ctx, "/api/theme/"+url.PathEscape(id), request, &theme); err != nil {
		return Theme{}, err
	}
	return theme, nil
}

// DeleteTheme deletes a theme. Levels under the theme are removed by
// the backend's cascade.
func (client *Client) DeleteTheme(ctx context.Context, id string) error {
	return client.delete(ctx, "/api/theme/"+url.PathEscape(id))
}
