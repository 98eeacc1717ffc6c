// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package contest

import (
	"errors"
	"testing"

	"github.com/Mukaram01/Name/models"
)

func TestValidateSuggestionRejections(t *testing.T) {
	votingPhase := DefaultSettings()
	votingPhase.Phase = models.PhaseVoting

	base := suggestionRow("Luna", "girl", "Alice", "girl", "aunt", "moon")

	tests := []struct {
		name     string
		mutate   func(*models.Suggestion)
		settings Settings
	}{
		{"wrong phase", func(s *models.Suggestion) {}, votingPhase},
		{"missing name", func(s *models.Suggestion) { s.Name = " " }, DefaultSettings()},
		{"missing gender", func(s *models.Suggestion) { s.Gender = "" }, DefaultSettings()},
		{"bad gender", func(s *models.Suggestion) { s.Gender = "other" }, DefaultSettings()},
		{"missing suggester", func(s *models.Suggestion) { s.Suggester = "" }, DefaultSettings()},
		{"missing guess", func(s *models.Suggestion) { s.Guess = "" }, DefaultSettings()},
		{"bad guess", func(s *models.Suggestion) { s.Guess = "maybe" }, DefaultSettings()},
		{"missing relation", func(s *models.Suggestion) { s.Relation = "" }, DefaultSettings()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := base
			tt.mutate(&row)
			if err := ValidateSuggestion(row, nil, tt.settings); err == nil {
				t.Error("Expected rejection, got nil")
			}
		})
	}

	// Meaning is optional
	row := base
	row.Meaning = ""
	if err := ValidateSuggestion(row, nil, DefaultSettings()); err != nil {
		t.Errorf("Expected missing meaning to be allowed, got %v", err)
	}
}

func TestDuplicateSuggestionCaseInsensitive(t *testing.T) {
	existing := []models.Suggestion{
		suggestionRow("Aria", "girl", "Alice", "girl", "aunt", ""),
	}

	// Same suggester, case variant of the same candidate
	dup := suggestionRow("aria", "Girl", "ALICE", "girl", "aunt", "")
	if err := ValidateSuggestion(dup, existing, DefaultSettings()); err == nil {
		t.Error("Expected case-variant duplicate to be rejected")
	}

	// A different suggester may nominate the same name
	other := suggestionRow("aria", "girl", "Bob", "boy", "uncle", "")
	if err := ValidateSuggestion(other, existing, DefaultSettings()); err != nil {
		t.Errorf("Expected another suggester to be allowed, got %v", err)
	}
}

func TestPerGenderSuggestionCaps(t *testing.T) {
	settings := DefaultSettings()
	settings.MaxSuggestionsPerPerson = 2
	settings.MaxBoySuggestions = 1

	existing := []models.Suggestion{
		suggestionRow("Luna", "girl", "Alice", "girl", "aunt", ""),
		suggestionRow("Arlo", "boy", "Alice", "boy", "aunt", ""),
	}

	// Girl cap falls back to the shared default of 2; one slot left.
	if err := ValidateSuggestion(suggestionRow("Ivy", "girl", "Alice", "girl", "aunt", ""), existing, settings); err != nil {
		t.Errorf("Expected a free girl slot, got %v", err)
	}

	// Boy cap of 1 is already used.
	err := ValidateSuggestion(suggestionRow("Finn", "boy", "Alice", "boy", "aunt", ""), existing, settings)
	var rej *RejectionError
	if !errors.As(err, &rej) || !rej.BudgetExceeded {
		t.Errorf("Expected boy cap rejection with budget flag, got %v", err)
	}

	// Caps are per suggester.
	if err := ValidateSuggestion(suggestionRow("Finn", "boy", "Bob", "boy", "uncle", ""), existing, settings); err != nil {
		t.Errorf("Expected another suggester's cap to be untouched, got %v", err)
	}
}

func TestZeroCapIsUnlimited(t *testing.T) {
	existing := []models.Suggestion{
		suggestionRow("Luna", "girl", "Alice", "girl", "aunt", ""),
		suggestionRow("Ivy", "girl", "Alice", "girl", "aunt", ""),
		suggestionRow("Nova", "girl", "Alice", "girl", "aunt", ""),
	}
	if err := ValidateSuggestion(suggestionRow("Wren", "girl", "Alice", "girl", "aunt", ""), existing, DefaultSettings()); err != nil {
		t.Errorf("Expected unlimited suggestions with no cap, got %v", err)
	}
}

func TestIsOwner(t *testing.T) {
	row := suggestionRow("Luna", "girl", "Alice", "girl", "aunt", "")
	if !IsOwner(row, "  ALICE ") {
		t.Error("Expected case-insensitive ownership match")
	}
	if IsOwner(row, "Bob") {
		t.Error("Expected non-owner to be rejected")
	}
	empty := suggestionRow("Luna", "girl", "", "girl", "aunt", "")
	if IsOwner(empty, "") {
		t.Error("Expected empty identities to never match")
	}
}

func TestMergeEdit(t *testing.T) {
	prior := suggestionRow("Luna", "girl", "Alice", "girl", "aunt", "moon")

	merged, err := MergeEdit(prior, models.EditSuggestionRequest{Meaning: "new meaning"})
	if err != nil {
		t.Fatalf("Expected merge to succeed, got %v", err)
	}
	if merged.Name != "Luna" || merged.Gender != "girl" || merged.Guess != "girl" {
		t.Errorf("Expected empty edit fields to keep prior values, got %+v", merged)
	}
	if merged.Meaning != "new meaning" {
		t.Errorf("Expected meaning to update, got %q", merged.Meaning)
	}
	if merged.Suggester != "Alice" {
		t.Errorf("Expected suggester to never change, got %q", merged.Suggester)
	}

	if _, err := MergeEdit(prior, models.EditSuggestionRequest{Gender: "other"}); err == nil {
		t.Error("Expected merged invalid gender to be rejected")
	}
	if _, err := MergeEdit(prior, models.EditSuggestionRequest{Guess: "maybe"}); err == nil {
		t.Error("Expected merged invalid guess to be rejected")
	}
}
