// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package contest

import (
	"strings"

	"github.com/Mukaram01/Name/models"
)

// NormalizeIdentity lowercases and trims an identity for matching.
// Identity comparison is always case-insensitive.
func NormalizeIdentity(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// CandidateKey builds the case-insensitive (name, gender) key under
// which suggestion and vote rows are collapsed.
func CandidateKey(name, gender string) string {
	return NormalizeIdentity(name) + "|" + NormalizeIdentity(gender)
}

// Candidate is a distinct (name, gender) pair accumulated from
// suggestion rows. Slices preserve insertion order; repeated entries
// collapse.
type Candidate struct {
	Name       string   `json:"name"`
	Gender     string   `json:"gender"`
	Suggesters []string `json:"suggesters"`
	Guesses    []string `json:"guesses"`
	Meanings   []string `json:"meanings,omitempty"`
}

func (c *Candidate) addSuggester(suggester string) {
	for _, existing := range c.Suggesters {
		if NormalizeIdentity(existing) == NormalizeIdentity(suggester) {
			return
		}
	}
	c.Suggesters = append(c.Suggesters, strings.TrimSpace(suggester))
}

func (c *Candidate) addGuess(guess string) {
	guess = strings.ToLower(strings.TrimSpace(guess))
	if guess == "" {
		return
	}
	for _, existing := range c.Guesses {
		if existing == guess {
			return
		}
	}
	c.Guesses = append(c.Guesses, guess)
}

func (c *Candidate) addMeaning(meaning string) {
	meaning = strings.TrimSpace(meaning)
	if meaning == "" {
		return
	}
	for _, existing := range c.Meanings {
		if existing == meaning {
			return
		}
	}
	c.Meanings = append(c.Meanings, meaning)
}

// CandidateSet is an insertion-ordered collection of candidates keyed
// by CandidateKey.
type CandidateSet struct {
	byKey map[string]*Candidate
	order []string
}

// Get returns the candidate for a (name, gender) pair, or nil.
func (cs *CandidateSet) Get(name, gender string) *Candidate {
	return cs.byKey[CandidateKey(name, gender)]
}

// Len returns the number of distinct candidates.
func (cs *CandidateSet) Len() int {
	return len(cs.order)
}

// Candidates returns all candidates in insertion order.
func (cs *CandidateSet) Candidates() []*Candidate {
	out := make([]*Candidate, 0, len(cs.order))
	for _, key := range cs.order {
		out = append(out, cs.byKey[key])
	}
	return out
}

// AggregateSuggestions collapses raw suggestion rows into distinct
// candidates. Rows missing a name or gender are skipped.
func AggregateSuggestions(rows []models.Suggestion) *CandidateSet {
	cs := &CandidateSet{byKey: make(map[string]*Candidate)}

	for _, row := range rows {
		name := strings.TrimSpace(row.Name)
		gender := strings.ToLower(strings.TrimSpace(row.Gender))
		if name == "" || gender == "" {
			continue
		}

		key := CandidateKey(name, gender)
		cand, ok := cs.byKey[key]
		if !ok {
			cand = &Candidate{Name: name, Gender: gender}
			cs.byKey[key] = cand
			cs.order = append(cs.order, key)
		}

		if strings.TrimSpace(row.Suggester) != "" {
			cand.addSuggester(row.Suggester)
		}
		cand.addGuess(row.Guess)
		cand.addMeaning(row.Meaning)
	}

	return cs
}

// WeightedScore is one vote's contribution to a candidate.
type WeightedScore struct {
	Score  int
	Weight float64
}

// Roster maps normalized identities to roster entries.
type Roster map[string]models.RosterEntry

// BuildRoster indexes roster entries by normalized identity.
func BuildRoster(entries []models.RosterEntry) Roster {
	roster := make(Roster, len(entries))
	for _, entry := range entries {
		roster[NormalizeIdentity(entry.Name)] = entry
	}
	return roster
}

// VoterWeight resolves a voter's influence multiplier. Parents get the
// configured weight; everyone else, including identities not on the
// roster, weighs 1.
func VoterWeight(roster Roster, voter string, parentWeight float64) float64 {
	entry, ok := roster[NormalizeIdentity(voter)]
	if ok && NormalizeIdentity(entry.Role) == models.RoleParent {
		return parentWeight
	}
	return 1
}

// AggregateVotes collapses vote rows into per-candidate weighted score
// lists. Rows missing a name, gender, or voter are skipped.
func AggregateVotes(rows []models.Vote, roster Roster, parentWeight float64) map[string][]WeightedScore {
	votes := make(map[string][]WeightedScore)

	for _, row := range rows {
		if strings.TrimSpace(row.Name) == "" ||
			strings.TrimSpace(row.Gender) == "" ||
			strings.TrimSpace(row.Voter) == "" {
			continue
		}

		key := CandidateKey(row.Name, row.Gender)
		votes[key] = append(votes[key], WeightedScore{
			Score:  row.Score,
			Weight: VoterWeight(roster, row.Voter, parentWeight),
		})
	}

	return votes
}
