// Copyright 2026 The Civica Authors
// SPDX-License-Identifier: Apache-2.0

package api

// Role classifies an account's privileges.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// AccountStatus is the activation state of a user account.
type AccountStatus string

const (
	StatusActive   AccountStatus = "ACTIVE"
	StatusInactive AccountStatus = "INACTIVE"
)

// ConnexionType records how the account authenticates. The wire values
// come from the backend's user model.
type ConnexionType string

const (
	ConnexionEmail    ConnexionType = "EMAIL"
	ConnexionPhone    ConnexionType = "PHONE"
	ConnexionGoogle   ConnexionType = "GOOGLE"
	ConnexionFacebook ConnexionType = "FACEBOOK"
)

// Difficulty grades a level. The three values are fixed by the backend.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// AnswerKey identifies which of a question's four options is correct.
type AnswerKey string

const (
	AnswerA AnswerKey = "A"
	AnswerB AnswerKey = "B"
	AnswerC AnswerKey = "C"
	AnswerD AnswerKey = "D"
)

// ValidAnswerKey reports whether key is one of A, B, C, D.
func ValidAnswerKey(key AnswerKey) bool {
	switch key {
	case AnswerA, AnswerB, AnswerC, AnswerD:
		return true
	}
	return false
}

// User is an account profile: identity plus the gamification fields
// (points, level number, remaining lives). Owned by the backend; the
// client caches it read-only.
type User struct {
	ID string `json:"id"`

	// Spseudo is the user's display handle. Optional; accounts created
	// through social login may not have one.
	Spseudo string `json:"spseudo,omitempty"`

	Email         string        `json:"email"`
	Role          Role          `json:"role"`
	IsVerified    string        `json:"is_verified"` // "YES" or "NO".
	Status        AccountStatus `json:"status"`
	ConnexionType ConnexionType `json:"connexion_type"`

	Point   int `json:"point"`
	Niveaux int `json:"niveaux"`
	Vies    int `json:"vies"`

	IsDeleted bool `json:"is_deleted"`

	FCMToken        string `json:"fcm_token,omitempty"`
	LastLifeRefresh string `json:"last_life_refresh,omitempty"`

	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// Theme is the top of the content hierarchy: a topical grouping of
// levels. The wire format uses camelCase "isActive" while every other
// entity uses snake_case, a quirk of the backend contract that the
// client reproduces rather than papers over.
type Theme struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`

	// Color is a hex color code used by player-facing clients.
	// Defaults to DefaultThemeColor when the backend returns none.
	Color string `json:"color"`

	// Icon names an icon asset. Optional.
	Icon string `json:"icon,omitempty"`

	IsActive bool `json:"isActive"`

	// LevelsCount is reported by the backend on list responses.
	// Read-only; ignored on create and update.
	LevelsCount int `json:"levels_count,omitempty"`

	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

// DefaultThemeColor is applied when a theme has no color set.
const DefaultThemeColor = "#6372ff"

// Level is a progression step within a theme. OrderIndex defines the
// display and progression order; the backend does not enforce
// uniqueness, reordering simply rewrites the indices of the swapped
// pair.
type Level struct {
	ID          string     `json:"id"`
	ThemeID     string     `json:"theme_id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Difficulty  Difficulty `json:"difficulty"`
	OrderIndex  int        `json:"order_index"`
	IsActive    bool       `json:"is_active"`

	// MinScoreToUnlock is the score a player needs before this level
	// opens. Always >= 0.
	MinScoreToUnlock int `json:"min_score_to_unlock"`

	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

// Question is a multiple-choice question within a level. All four
// option fields are required non-empty strings; exactly one is
// authoritative per CorrectAnswer.
type Question struct {
	ID            string    `json:"id"`
	LevelID       string    `json:"level_id"`
	QuestionText  string    `json:"question_text"`
	OptionA       string    `json:"option_a"`
	OptionB       string    `json:"option_b"`
	OptionC       string    `json:"option_c"`
	OptionD       string    `json:"option_d"`
	CorrectAnswer AnswerKey `json:"correct_answer"`

	// Explanation is shown to players after answering. Optional;
	// markdown is allowed.
	Explanation string `json:"explanation,omitempty"`

	Points     int  `json:"points"`
	OrderIndex int  `json:"order_index"`
	IsActive   bool `json:"is_active"`

	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

// Option returns the text of the option named by key, or "" for an
// invalid key.
func (question Question) Option(key AnswerKey) string {
	switch key {
	case AnswerA:
		return question.OptionA
	case AnswerB:
		return question.OptionB
	case AnswerC:
		return question.OptionC
	case AnswerD:
		return question.OptionD
	}
	return ""
}

// LoginResult is the payload of a successful login: the bearer token
// and the authenticated user's profile.
type LoginResult struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// DashboardStats are the aggregate counts shown on the admin dashboard.
// Counts cover active, non-deleted records only.
type DashboardStats struct {
	UsersCount     int    `json:"users_count"`
	ThemesCount    int    `json:"themes_count"`
	LevelsCount    int    `json:"levels_count"`
	QuestionsCount int    `json:"questions_count"`
	LastUpdated    string `json:"last_updated"`
}

// CheckResult is the backend's verdict on a submitted answer.
type CheckResult struct {
	Correct     bool   `json:"correct"`
	Explanation string `json:"explanation,omitempty"`
}

// UserStats are per-user gamification statistics.
type UserStats struct {
	TotalPoints     int    `json:"total_points"`
	CurrentLevel    int    `json:"current_level"`
	LivesRemaining  int    `json:"lives_remaining"`
	LastLifeRefresh string `json:"last_life_refresh,omitempty"`
}
