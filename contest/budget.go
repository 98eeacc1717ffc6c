// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package contest

import (
	"fmt"
	"strings"

	"github.com/Mukaram01/Name/models"
)

// ValidateVote checks a proposed vote against the contest phase,
// required fields, and the voter's star budgets. It returns the voter's
// existing vote for the same candidate when the submission is an
// update, so the caller can overwrite it in place.
//
// Budget accounting: the voter's existing votes are tallied per star
// value; when updating a vote, its old score is released from the tally
// first so re-scoring the same candidate never double-counts. A star
// value with no configured budget is unlimited.
func ValidateVote(intent models.Vote, existing []models.Vote, settings Settings) (*models.Vote, error) {
	if settings.Phase != models.PhaseVoting {
		return nil, Reject("voting is not open")
	}
	if strings.TrimSpace(intent.Name) == "" {
		return nil, Reject("name is required")
	}
	if strings.TrimSpace(intent.Gender) == "" {
		return nil, Reject("gender is required")
	}
	if intent.Score == 0 {
		return nil, Reject("score is required")
	}
	if intent.Score < 1 || intent.Score > 5 {
		return nil, Reject("score must be between 1 and 5")
	}

	voter := NormalizeIdentity(intent.Voter)
	if voter == "" {
		return nil, Reject("voter identity is required")
	}

	key := CandidateKey(intent.Name, intent.Gender)
	tally := make(map[int]int)
	var current *models.Vote

	for i, vote := range existing {
		if NormalizeIdentity(vote.Voter) != voter {
			continue
		}
		tally[vote.Score]++
		if CandidateKey(vote.Name, vote.Gender) == key {
			current = &existing[i]
		}
	}

	// Re-scoring the same candidate releases its old score first.
	if current != nil {
		tally[current.Score]--
	}

	if budget, ok := settings.StarBudgets[intent.Score]; ok {
		if tally[intent.Score]+1 > budget {
			return nil, RejectBudget(fmt.Sprintf(
				"you have used all %d of your %d-star votes", budget, intent.Score))
		}
	}

	return current, nil
}

// QuotaUsage tallies a voter's votes per star value. Every configured
// star value is present in the result, zero-initialized, so callers can
// render unused budgets.
func QuotaUsage(voterVotes []models.Vote, budgets map[int]int) map[int]int {
	usage := make(map[int]int, len(budgets))
	for star := range budgets {
		usage[star] = 0
	}
	for _, vote := range voterVotes {
		usage[vote.Score]++
	}
	return usage
}
