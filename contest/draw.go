// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package contest

import (
	"math/rand/v2"

	"github.com/Mukaram01/Name/models"
)

// EligibleGuessers returns the distinct suggester identities whose
// gender guess matches the actual gender, in first-seen order. A
// suggester with several suggestions qualifies if any guess matches.
func EligibleGuessers(suggestions []models.Suggestion, actualGender string) []string {
	actual := NormalizeIdentity(actualGender)
	seen := make(map[string]bool)
	var eligible []string

	for _, row := range suggestions {
		suggester := NormalizeIdentity(row.Suggester)
		if suggester == "" || seen[suggester] {
			continue
		}
		if NormalizeIdentity(row.Guess) == actual {
			seen[suggester] = true
			eligible = append(eligible, row.Suggester)
		}
	}

	return eligible
}

// DrawWinners picks up to count winners uniformly at random among the
// suggesters who guessed the actual gender. An empty eligible set
// yields zero winners without error; an unrevealed gender is a
// configuration error.
func DrawWinners(suggestions []models.Suggestion, actualGender string, count int) ([]string, error) {
	actual := NormalizeIdentity(actualGender)
	if actual == "" || actual == models.GenderUnknown {
		return nil, ErrGenderNotRevealed
	}
	if count < 1 {
		return nil, Reject("winner count must be at least 1")
	}

	eligible := EligibleGuessers(suggestions, actualGender)
	if len(eligible) == 0 {
		return []string{}, nil
	}

	shuffled := make([]string, len(eligible))
	copy(shuffled, eligible)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	if count > len(shuffled) {
		count = len(shuffled)
	}
	return shuffled[:count], nil
}
