// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package contest

import (
	"sort"
	"strings"

	"github.com/Mukaram01/Name/models"
)

// Bayesian smoothing constants. Every candidate starts with the
// equivalent of priorWeight votes at the neutral midpoint, so a single
// 5-star vote cannot outrank broad consistent support.
const (
	priorScore  = 3.0
	priorWeight = 5.0
)

// RankedCandidate is a candidate with its computed scores and rank.
// StarCounts[i] holds the number of raw votes at i+1 stars,
// independent of voter weight.
type RankedCandidate struct {
	Rank          int      `json:"rank"`
	Name          string   `json:"name"`
	Gender        string   `json:"gender"`
	Suggesters    []string `json:"suggesters"`
	Meanings      []string `json:"meanings,omitempty"`
	StarCounts    [5]int   `json:"star_counts"`
	TotalWeight   float64  `json:"total_weight"`
	WeightedTotal float64  `json:"weighted_total"`
	Average       float64  `json:"average"`
	Bayesian      float64  `json:"bayesian"`
}

// ComputeRankings scores every candidate and sorts them into the final
// leaderboard. Candidates with no votes score 0 and still rank.
//
// The order is (ranking score desc, 5-star count desc, total weight
// desc). Candidates identical in all three keys keep their input order,
// which is not significant.
func ComputeRankings(cands *CandidateSet, votes map[string][]WeightedScore, mode string) []RankedCandidate {
	ranked := make([]RankedCandidate, 0, cands.Len())

	for _, cand := range cands.Candidates() {
		rc := RankedCandidate{
			Name:       cand.Name,
			Gender:     cand.Gender,
			Suggesters: cand.Suggesters,
			Meanings:   cand.Meanings,
		}

		for _, v := range votes[CandidateKey(cand.Name, cand.Gender)] {
			if v.Score >= 1 && v.Score <= 5 {
				rc.StarCounts[v.Score-1]++
			}
			rc.WeightedTotal += float64(v.Score) * v.Weight
			rc.TotalWeight += v.Weight
		}

		if rc.TotalWeight > 0 {
			rc.Average = rc.WeightedTotal / rc.TotalWeight
		}
		rc.Bayesian = (rc.WeightedTotal + priorScore*priorWeight) / (rc.TotalWeight + priorWeight)

		ranked = append(ranked, rc)
	}

	rankingScore := func(rc RankedCandidate) float64 {
		if mode == RankingAverage {
			return rc.Average
		}
		return rc.Bayesian
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]

		if rankingScore(a) != rankingScore(b) {
			return rankingScore(a) > rankingScore(b)
		}
		if a.StarCounts[4] != b.StarCounts[4] {
			return a.StarCounts[4] > b.StarCounts[4]
		}
		return a.TotalWeight > b.TotalWeight
	})

	for i := range ranked {
		ranked[i].Rank = i + 1
	}

	return ranked
}

// ChartData holds the reveal-page projections built from the rankings.
type ChartData struct {
	TopGirls   []RankedCandidate `json:"top_girls"`
	TopBoys    []RankedCandidate `json:"top_boys"`
	GuessTally GuessTally        `json:"guess_tally"`
	Relations  []RelationCount   `json:"relations"`
}

// GuessTally summarizes gender guesses across all suggestion rows.
// CorrectGuessers is empty until the actual gender is revealed.
type GuessTally struct {
	Girl            int      `json:"girl"`
	Boy             int      `json:"boy"`
	CorrectGuessers []string `json:"correct_guessers,omitempty"`
}

// RelationCount is one bar of the relation-label breakdown.
type RelationCount struct {
	Relation string `json:"relation"`
	Count    int    `json:"count"`
}

const chartTopN = 10

// BuildCharts assembles the chart projections: top-10 per gender, the
// guess-correctness tally, and the relation frequency breakdown.
func BuildCharts(ranked []RankedCandidate, suggestions []models.Suggestion, actualGender string) ChartData {
	var charts ChartData

	for _, rc := range ranked {
		switch rc.Gender {
		case models.GenderGirl:
			if len(charts.TopGirls) < chartTopN {
				charts.TopGirls = append(charts.TopGirls, rc)
			}
		case models.GenderBoy:
			if len(charts.TopBoys) < chartTopN {
				charts.TopBoys = append(charts.TopBoys, rc)
			}
		}
	}

	for _, row := range suggestions {
		switch strings.ToLower(strings.TrimSpace(row.Guess)) {
		case models.GenderGirl:
			charts.GuessTally.Girl++
		case models.GenderBoy:
			charts.GuessTally.Boy++
		}
	}
	if NormalizeIdentity(actualGender) != models.GenderUnknown {
		charts.GuessTally.CorrectGuessers = EligibleGuessers(suggestions, actualGender)
	}

	relations := make(map[string]int)
	var relationOrder []string
	for _, row := range suggestions {
		relation := strings.TrimSpace(row.Relation)
		if relation == "" {
			continue
		}
		if _, seen := relations[relation]; !seen {
			relationOrder = append(relationOrder, relation)
		}
		relations[relation]++
	}
	for _, relation := range relationOrder {
		charts.Relations = append(charts.Relations, RelationCount{
			Relation: relation,
			Count:    relations[relation],
		})
	}
	sort.SliceStable(charts.Relations, func(i, j int) bool {
		if charts.Relations[i].Count != charts.Relations[j].Count {
			return charts.Relations[i].Count > charts.Relations[j].Count
		}
		return charts.Relations[i].Relation < charts.Relations[j].Relation
	})

	return charts
}
