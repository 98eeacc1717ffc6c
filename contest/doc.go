// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package contest implements the scoring and ranking core of the naming
contest. Everything here is a synchronous pure function over rows the
caller has already materialized; the package performs no I/O and holds
no state between calls.

# Aggregation

Raw suggestion rows collapse into distinct candidates keyed by the
case-insensitive (name, gender) pair:

	candidates := contest.AggregateSuggestions(rows)

Vote rows collapse into per-candidate weighted score lists, with parent
votes weighted by the configured factor:

	weighted := contest.AggregateVotes(votes, roster, settings.ParentWeight)

# Scoring

ComputeRankings produces the leaderboard:

	rankings := contest.ComputeRankings(candidates, weighted, settings.RankingMode)

Each candidate gets a weighted average and a Bayesian-smoothed score
(prior: 5 virtual votes at 3 stars). Candidates are ordered by ranking
score, then 5-star count, then total weight. Candidates with no votes
score 0 and still rank.

# Vote Budgets

ValidateVote enforces the per-star budgets ("5:2,4:3" means two 5-star
and three 4-star votes per voter). Re-scoring a candidate releases the
old score from the tally first, so changing your own vote never
double-counts:

	current, err := contest.ValidateVote(intent, existingVotes, settings)

A *RejectionError with BudgetExceeded set marks quota failures so
callers can render a specific message.

# Winner Draw

DrawWinners shuffles the suggesters whose gender guess matched the
actual gender and takes the first count:

	winners, err := contest.DrawWinners(suggestions, settings.ActualGender, count)

The shuffle is math/rand/v2's Fisher-Yates, which is unbiased. An empty
eligible set yields zero winners without error; an unrevealed gender is
ErrGenderNotRevealed.

# Configuration Snapshots

Settings are parsed from the setting table with SettingsFromMap. The
core never caches configuration; callers pass a fresh snapshot per
request.
*/
package contest
