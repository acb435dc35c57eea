// Copyright 2026 The Civica Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"net/url"
)

// Login authenticates with email and password and returns the bearer
// token plus the user's profile. This is the one call that always goes
// out without an Authorization header.
func (client *Client) Login(ctx context.Context, email, password string) (LoginResult, error) {
	payload := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{Email: email, Password: password}

	var result LoginResult
	if err := client.post(ctx, "/api/user/login", payload, &result); err != nil {
		return LoginResult{}, err
	}
	if result.Token == "" {
		return LoginResult{}, &Error{Kind: KindServer, Message: "login response carried no token"}
	}
	return result, nil
}

// Register creates a new account. Player-facing; exposed here because
// the admin tooling uses it to provision test accounts.
func (client *Client) Register(ctx context.Context, email, password, spseudo string) error {
	payload := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		Spseudo  string `json:"spseudo"`
	}{Email: email, Password: password, Spseudo: spseudo}

	return client.post(ctx, "/api/user/register", payload, nil)
}

// UpdateUserRequest is the payload for updating a user. Only the
// admin-editable fields are included; gamification counters are moved
// through UpdateUserScore.
type UpdateUserRequest struct {
	Spseudo    string        `json:"spseudo,omitempty"`
	Email      string        `json:"email,omitempty"`
	Role       Role          `json:"role,omitempty"`
	Status     AccountStatus `json:"status,omitempty"`
	IsVerified string        `json:"is_verified,omitempty"`
	Vies       *int          `json:"vies,omitempty"`
}

// ListUsers returns users, optionally filtered by an email substring
// evaluated server-side. An empty query returns everyone.
func (client *Client) ListUsers(ctx context.Context, emailQuery string) ([]User, error) {
	path := "/api/user/"
	if emailQuery != "" {
		path += "?email=" + url.QueryEscape(emailQuery)
	}

	var users []User
	if err := client.get(ctx, path, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// GetUser returns a single user by ID.
func (client *Client) GetUser(ctx context.Context, id string) (User, error) {
	var user User
	if err := client.get(ctx, "/api/user/"+url.PathEscape(id), &user); err != nil {
		return User{}, err
	}
	return user, nil
}

// UpdateUser updates a user and returns the stored record.
func (client *Client) UpdateUser(ctx context.Context, id string, request UpdateUserRequest) (User, error) {
	var user User
	if err := client.put(ctx, "/api/user/"+url.PathEscape(id), request, &user); err != nil {
		return User{}, err
	}
	return user, nil
}

// DeleteUser soft-deletes a user.
func (client *Client) DeleteUser(ctx context.Context, id string) error {
	return client.delete(ctx, "/api/user/"+url.PathEscape(id))
}

// UpdateUserScore credits points to a user and returns the updated
// profile.
func (client *Client) UpdateUserScore(ctx context.Context, id string, pointsEarned int) (User, error) {
	payload := struct {
		PointsEarned int `json:"points_earned"`
	}{PointsEarned: pointsEarned}

	var user User
	if err := client.put(ctx, "/api/user/"+url.PathEscape(id)+"/score", payload, &user); err != nil {
		return User{}, err
	}
	return user, nil
}

// GetUserStats returns a user's gamification statistics.
func (client *Client) GetUserStats(ctx context.Context, id string) (UserStats, error) {
	var stats UserStats
	if err := client.get(ctx, "/api/user/"+url.PathEscape(id)+"/stats", &stats); err != nil {
		return UserStats{}, err
	}
	return stats, nil
}

// GetDashboardStats returns the aggregate counts for the admin
// dashboard.
func (client *Client) GetDashboardStats(ctx context.Context) (DashboardStats, error) {
	var stats DashboardStats
	if err := client.get(ctx, "/api/user/dashboard/stats", &stats); err != nil {
		return DashboardStats{}, err
	}
	return stats, nil
}
