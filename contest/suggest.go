// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package contest

import (
	"fmt"
	"strings"

	"github.com/Mukaram01/Name/models"
)

func validGender(gender string) bool {
	switch NormalizeIdentity(gender) {
	case models.GenderGirl, models.GenderBoy:
		return true
	}
	return false
}

// ValidateSuggestion checks a new suggestion against the contest phase,
// required fields, duplicates, and the suggester's per-gender caps.
func ValidateSuggestion(row models.Suggestion, existing []models.Suggestion, settings Settings) error {
	if settings.Phase != models.PhaseNominations {
		return Reject("nominations are closed")
	}
	if strings.TrimSpace(row.Name) == "" {
		return Reject("name is required")
	}
	if strings.TrimSpace(row.Gender) == "" {
		return Reject("gender is required")
	}
	if !validGender(row.Gender) {
		return Reject("gender must be girl or boy")
	}
	if strings.TrimSpace(row.Suggester) == "" {
		return Reject("suggester identity is required")
	}
	if strings.TrimSpace(row.Guess) == "" {
		return Reject("gender guess is required")
	}
	if !validGender(row.Guess) {
		return Reject("guess must be girl or boy")
	}
	if strings.TrimSpace(row.Relation) == "" {
		return Reject("relation is required")
	}

	suggester := NormalizeIdentity(row.Suggester)
	key := CandidateKey(row.Name, row.Gender)
	gender := NormalizeIdentity(row.Gender)
	count := 0

	for _, prior := range existing {
		if NormalizeIdentity(prior.Suggester) != suggester {
			continue
		}
		if CandidateKey(prior.Name, prior.Gender) == key {
			return Reject("you already suggested this name")
		}
		if NormalizeIdentity(prior.Gender) == gender {
			count++
		}
	}

	limit := settings.GirlCap()
	if gender == models.GenderBoy {
		limit = settings.BoyCap()
	}
	if limit > 0 && count >= limit {
		return RejectBudget(fmt.Sprintf(
			"you have reached the limit of %d %s name suggestions", limit, gender))
	}

	return nil
}

// IsOwner reports whether an identity owns a suggestion. The match is
// case-insensitive and whitespace-trimmed.
func IsOwner(row models.Suggestion, identity string) bool {
	return NormalizeIdentity(row.Suggester) != "" &&
		NormalizeIdentity(row.Suggester) == NormalizeIdentity(identity)
}

// MergeEdit applies an edit onto an existing suggestion. Empty fields
// keep their prior values; the suggester never changes. The caller is
// responsible for the ownership and phase checks plus refreshing the
// timestamp.
func MergeEdit(prior models.Suggestion, edit models.EditSuggestionRequest) (models.Suggestion, error) {
	merged := prior

	if strings.TrimSpace(edit.Name) != "" {
		merged.Name = strings.TrimSpace(edit.Name)
	}
	if strings.TrimSpace(edit.Gender) != "" {
		merged.Gender = strings.TrimSpace(edit.Gender)
	}
	if strings.TrimSpace(edit.Guess) != "" {
		merged.Guess = strings.TrimSpace(edit.Guess)
	}
	if strings.TrimSpace(edit.Relation) != "" {
		merged.Relation = strings.TrimSpace(edit.Relation)
	}
	if strings.TrimSpace(edit.Meaning) != "" {
		merged.Meaning = strings.TrimSpace(edit.Meaning)
	}

	if strings.TrimSpace(merged.Name) == "" {
		return models.Suggestion{}, Reject("name is required")
	}
	if !validGender(merged.Gender) {
		return models.Suggestion{}, Reject("gender must be girl or boy")
	}
	if !validGender(merged.Guess) {
		return models.Suggestion{}, Reject("guess must be girl or boy")
	}

	return merged, nil
}
