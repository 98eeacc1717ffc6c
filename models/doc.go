// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - SubmitSuggestionRequest: name, gender, guess, relation, meaning
  - EditSuggestionRequest: replacement fields (empty keeps prior value)
  - SubmitVoteRequest: name, gender, score (1-5 stars)
  - UpdateSettingsRequest: settings (map of key → value)
  - UpsertRosterRequest: entries
  - DrawWinnersRequest: count

# Response Types

Types for JSON responses:

  - SubmitSuggestionResponse: suggestion_id, message
  - SubmitVoteResponse: vote_id, message
  - QuotaResponse: usage, budgets (per star value)
  - DrawWinnersResponse: winners, message
  - ErrorResponse: error, message, budget_exceeded

# Domain Types

Internal data structures:

  - Suggestion: one suggested name with gender guess and meaning
  - Vote: one (voter, name, gender) star rating
  - RosterEntry: known participant with role and relation
  - Winner: a drawn prize winner

# Constants

Phase values:

	PhaseNominations = "nominations"
	PhaseVoting      = "voting"
	PhaseReveal      = "reveal"
	PhaseClosed      = "closed"

Genders:

	GenderGirl    = "girl"
	GenderBoy     = "boy"
	GenderUnknown = "unknown"

Roster roles:

	RoleParent = "parent"
	RoleVoter  = "voter"
*/
package models
