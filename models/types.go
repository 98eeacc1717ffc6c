// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Contest phase constants
const (
	PhaseNominations = "nominations"
	PhaseVoting      = "voting"
	PhaseReveal      = "reveal"
	PhaseClosed      = "closed"
)

// Gender constants
const (
	GenderGirl    = "girl"
	GenderBoy     = "boy"
	GenderUnknown = "unknown"
)

// Roster role constants
const (
	RoleParent = "parent"
	RoleVoter  = "voter"
)

// Request types

type SubmitSuggestionRequest struct {
	Name     string `json:"name"`
	Gender   string `json:"gender"`
	Guess    string `json:"guess"`
	Relation string `json:"relation"`
	Meaning  string `json:"meaning"`
}

// EditSuggestionRequest carries replacement fields for an existing
// suggestion. Empty fields keep their prior values.
type EditSuggestionRequest struct {
	Name     string `json:"name"`
	Gender   string `json:"gender"`
	Guess    string `json:"guess"`
	Relation string `json:"relation"`
	Meaning  string `json:"meaning"`
}

type SubmitVoteRequest struct {
	Name   string `json:"name"`
	Gender string `json:"gender"`
	Score  int    `json:"score"`
}

type UpdateSettingsRequest struct {
	Settings map[string]string `json:"settings"`
}

type UpsertRosterRequest struct {
	Entries []RosterEntry `json:"entries"`
}

type DrawWinnersRequest struct {
	Count int `json:"count"`
}

// Response types

type SubmitSuggestionResponse struct {
	SuggestionID string `json:"suggestion_id"`
	Message      string `json:"message"`
}

type SubmitVoteResponse struct {
	VoteID  string `json:"vote_id"`
	Message string `json:"message"`
}

type QuotaResponse struct {
	Usage   map[int]int `json:"usage"`
	Budgets map[int]int `json:"budgets"`
}

type DrawWinnersResponse struct {
	Winners []Winner `json:"winners"`
	Message string   `json:"message"`
}

// Domain types

type Suggestion struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Gender    string    `json:"gender"`
	Suggester string    `json:"suggester"`
	Guess     string    `json:"guess"`
	Relation  string    `json:"relation"`
	Meaning   string    `json:"meaning,omitempty"`
	IPHash    *string   `json:"-"` // Never expose in JSON
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Vote struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Gender    string    `json:"gender"`
	Voter     string    `json:"voter"`
	Score     int       `json:"score"`
	UpdatedAt time.Time `json:"updated_at"`
}

type RosterEntry struct {
	Name     string `json:"name"`
	Role     string `json:"role"`
	Relation string `json:"relation"`
}

type Winner struct {
	ID      string    `json:"id"`
	Name    string    `json:"name"`
	Gender  string    `json:"gender"`
	DrawnAt time.Time `json:"drawn_at"`
}

// Error response

type ErrorResponse struct {
	Error          string `json:"error"`
	Message        string `json:"message,omitempty"`
	BudgetExceeded bool   `json:"budget_exceeded,omitempty"`
}
