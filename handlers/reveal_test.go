// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"math"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Mukaram01/Name/contest"
	"github.com/Mukaram01/Name/models"
	"github.com/Mukaram01/Name/testutil"
)

type revealResponse struct {
	Phase     string                    `json:"phase"`
	Rankings  []contest.RankedCandidate `json:"rankings"`
	Charts    contest.ChartData         `json:"charts"`
	VoteCount int                       `json:"vote_count"`
}

func TestGetContest(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	testutil.AddTestSuggestion(t, conn, "Luna", "girl", "Alice", "girl", "aunt", "moon")
	testutil.AddTestSuggestion(t, conn, "luna", "Girl", "Bob", "boy", "uncle", "")
	handler := NewRevealHandler(conn, testutil.GetTestConfig())

	req := testutil.MakeRequest("GET", "/contest", nil, nil)
	w := httptest.NewRecorder()
	handler.GetContest(w, req)

	testutil.AssertStatus(t, w, 200)

	var resp struct {
		Phase      string              `json:"phase"`
		Candidates []contest.Candidate `json:"candidates"`
	}
	testutil.AssertJSON(t, w, &resp)
	if resp.Phase != models.PhaseNominations {
		t.Errorf("Expected nominations phase, got %q", resp.Phase)
	}
	if len(resp.Candidates) != 1 {
		t.Fatalf("Expected case variants to collapse into 1 candidate, got %d", len(resp.Candidates))
	}
	if len(resp.Candidates[0].Suggesters) != 2 {
		t.Errorf("Expected 2 suggesters, got %v", resp.Candidates[0].Suggesters)
	}
}

func TestRevealSealedBeforeRevealPhase(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	handler := NewRevealHandler(conn, testutil.GetTestConfig())

	for _, phase := range []string{models.PhaseNominations, models.PhaseVoting} {
		testutil.SetPhase(t, conn, phase)
		req := testutil.MakeRequest("GET", "/reveal", nil, nil)
		w := httptest.NewRecorder()
		handler.GetReveal(w, req)
		testutil.AssertStatus(t, w, 403)
	}
}

func TestRevealRankings(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	testutil.AddTestSuggestion(t, conn, "Luna", "girl", "Alice", "girl", "aunt", "moon")
	testutil.AddTestSuggestion(t, conn, "Ivy", "girl", "Bob", "boy", "uncle", "")
	testutil.AddTestVote(t, conn, "Luna", "girl", "sam", 5)
	testutil.AddTestVote(t, conn, "Luna", "girl", "pat", 5)
	testutil.SetPhase(t, conn, models.PhaseReveal)
	handler := NewRevealHandler(conn, testutil.GetTestConfig())

	req := testutil.MakeRequest("GET", "/reveal", nil, nil)
	w := httptest.NewRecorder()
	handler.GetReveal(w, req)

	testutil.AssertStatus(t, w, 200)

	var resp revealResponse
	testutil.AssertJSON(t, w, &resp)

	if len(resp.Rankings) != 2 {
		t.Fatalf("Expected 2 ranked candidates, got %d", len(resp.Rankings))
	}
	luna := resp.Rankings[0]
	if luna.Name != "Luna" || luna.Rank != 1 {
		t.Errorf("Expected Luna at rank 1, got %s at rank %d", luna.Name, luna.Rank)
	}
	want := 25.0 / 7.0
	if math.Abs(luna.Bayesian-want) > 1e-9 {
		t.Errorf("Expected bayesian %f, got %f", want, luna.Bayesian)
	}
	if resp.VoteCount != 2 {
		t.Errorf("Expected vote count 2, got %d", resp.VoteCount)
	}
}

func TestRevealAppliesParentWeight(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	testutil.AddTestSuggestion(t, conn, "Luna", "girl", "Alice", "girl", "aunt", "")
	testutil.AddRosterEntry(t, conn, "Mom", "parent", "mother")
	testutil.SetSetting(t, conn, "parent_weight", "3")
	testutil.AddTestVote(t, conn, "Luna", "girl", "Mom", 5)
	testutil.SetPhase(t, conn, models.PhaseReveal)
	handler := NewRevealHandler(conn, testutil.GetTestConfig())

	req := testutil.MakeRequest("GET", "/reveal", nil, nil)
	w := httptest.NewRecorder()
	handler.GetReveal(w, req)

	testutil.AssertStatus(t, w, 200)

	var resp revealResponse
	testutil.AssertJSON(t, w, &resp)
	luna := resp.Rankings[0]
	if luna.TotalWeight != 3 {
		t.Errorf("Expected parent vote to carry weight 3, got %f", luna.TotalWeight)
	}
	if luna.WeightedTotal != 15 {
		t.Errorf("Expected weighted total 15, got %f", luna.WeightedTotal)
	}
}

func TestRevealCharts(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	testutil.AddTestSuggestion(t, conn, "Luna", "girl", "Alice", "girl", "aunt", "")
	testutil.AddTestSuggestion(t, conn, "Arlo", "boy", "Bob", "boy", "uncle", "")
	testutil.SetSetting(t, conn, "actual_gender", "girl")
	testutil.SetPhase(t, conn, models.PhaseReveal)
	handler := NewRevealHandler(conn, testutil.GetTestConfig())

	req := testutil.MakeRequest("GET", "/reveal", nil, nil)
	w := httptest.NewRecorder()
	handler.GetReveal(w, req)

	testutil.AssertStatus(t, w, 200)

	var resp revealResponse
	testutil.AssertJSON(t, w, &resp)
	if len(resp.Charts.TopGirls) != 1 || len(resp.Charts.TopBoys) != 1 {
		t.Errorf("Expected one candidate per gender chart, got %d/%d",
			len(resp.Charts.TopGirls), len(resp.Charts.TopBoys))
	}
	if resp.Charts.GuessTally.Girl != 1 || resp.Charts.GuessTally.Boy != 1 {
		t.Errorf("Unexpected guess tally: %+v", resp.Charts.GuessTally)
	}
	if len(resp.Charts.GuessTally.CorrectGuessers) != 1 || resp.Charts.GuessTally.CorrectGuessers[0] != "Alice" {
		t.Errorf("Expected Alice as the correct guesser, got %v", resp.Charts.GuessTally.CorrectGuessers)
	}
}

func TestWinnersSealedBeforeReveal(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	testutil.SetPhase(t, conn, models.PhaseVoting)
	handler := NewRevealHandler(conn, testutil.GetTestConfig())

	req := testutil.MakeRequest("GET", "/winners", nil, nil)
	w := httptest.NewRecorder()
	handler.GetWinners(w, req)

	testutil.AssertStatus(t, w, 403)
}

func TestGetWinners(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	testutil.SetPhase(t, conn, models.PhaseClosed)
	if _, err := conn.Exec(`
		INSERT INTO winner (id, name, gender, drawn_at) VALUES (?, ?, ?, ?)
	`, "w1", "Alice", "girl", time.Now()); err != nil {
		t.Fatalf("Failed to insert winner: %v", err)
	}
	handler := NewRevealHandler(conn, testutil.GetTestConfig())

	req := testutil.MakeRequest("GET", "/winners", nil, nil)
	w := httptest.NewRecorder()
	handler.GetWinners(w, req)

	testutil.AssertStatus(t, w, 200)

	var resp struct {
		Winners []models.Winner `json:"winners"`
	}
	testutil.AssertJSON(t, w, &resp)
	if len(resp.Winners) != 1 || resp.Winners[0].Name != "Alice" {
		t.Errorf("Expected Alice as winner, got %v", resp.Winners)
	}
}
