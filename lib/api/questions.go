// Copyright 2026 The Civica Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"net/url"
)

// CreateQuestionRequest is the payload for creating a question.
type CreateQuestionRequest struct {
	LevelID       string    `json:"level_id"`
	QuestionText  string    `json:"question_text"`
	OptionA       string    `json:"option_a"`
	OptionB       string    `json:"option_b"`
	OptionC       string    `json:"option_c"`
	OptionD       string    `json:"option_d"`
	CorrectAnswer AnswerKey `json:"correct_answer"`
	Explanation   string    `json:"explanation,omitempty"`
	Points        int       `json:"points"`
	OrderIndex    int       `json:"order_index"`
	IsActive      bool      `json:"is_active"`
}

// UpdateQuestionRequest is the payload for updating a question.
type UpdateQuestionRequest = CreateQuestionRequest

// ListQuestions returns all questions across all levels.
func (client *Client) ListQuestions(ctx context.Context) ([]Question, error) {
	var questions []Question
	if err := client.get(ctx, "/api/question/", &questions); err != nil {
		return nil, err
	}
	return questions, nil
}

// ListLevelQuestions returns the questions belonging to one level.
func (client *Client) ListLevelQuestions(ctx context.Context, levelID string) ([]Question, error) {
	var questions []Question
	if err := client.get(ctx, "/api/level/"+url.PathEscape(levelID)+"/questions", &questions); err != nil {
		return nil, err
	}
	return questions, nil
}

// GetQuestion returns a single question by ID.
func (client *Client) GetQuestion(ctx context.Context, id string) (Question, error) {
	var question Question
	if err := client.get(ctx, "/api/question/"+url.PathEscape(id), &question); err != nil {
		return Question{}, err
	}
	return question, nil
}

// CreateQuestion creates a question and returns the stored record.
// The creation path is /api/question/question, an oddity of the
// backend's router that the client has to match.
func (client *Client) CreateQuestion(ctx context.Context, request CreateQuestionRequest) (Question, error) {
	var question Question
	if err := client.post(ctx, "/api/question/question", request, &question); err != nil {
		return Question{}, err
	}
	return question, nil
}

// UpdateQuestion updates a question and returns the stored record.
func (client *Client) UpdateQuestion(ctx context.Context, id string, request UpdateQuestionRequest) (Question, error) {
	var question Question
	if err := client.put(ctx, "/api/question/"+url.PathEscape(id), request, &question); err != nil {
		return Question{}, err
	}
	return question, nil
}

// DeleteQuestion deletes a question.
func (client *Client) DeleteQuestion(ctx context.Context, id string) error {
	return client.delete(ctx, "/api/question/"+url.PathEscape(id))
}

// CheckAnswer submits an answer key for a question and returns the
// backend's verdict. Used by the admin preview to spot-check a stored
// answer key against the live backend.
func (client *Client) CheckAnswer(ctx context.Context, questionID string, answer AnswerKey) (CheckResult, error) {
	payload := struct {
		Answer AnswerKey `json:"answer"`
	}{Answer: answer}

	var result CheckResult
	if err := client.post(ctx, "/api/question/"+url.PathEscape(questionID)+"/check", payload, &result); err != nil {
		return CheckResult{}, err
	}
	return result, nil
}
