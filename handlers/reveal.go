// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/Mukaram01/Name/cliparse"
	"github.com/Mukaram01/Name/contest"
	"github.com/Mukaram01/Name/middleware"
	"github.com/Mukaram01/Name/models"
)

type RevealHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewRevealHandler(db *sql.DB, cfg cliparse.Config) *RevealHandler {
	return &RevealHandler{db: db, cfg: cfg}
}

func revealOpen(phase string) bool {
	return phase == models.PhaseReveal || phase == models.PhaseClosed
}

// GetContest handles GET /contest
// Returns the phase and candidate list, but NOT scores (results are
// sealed until the reveal).
func (h *RevealHandler) GetContest(w http.ResponseWriter, r *http.Request) {
	settings, err := loadSettings(h.db)
	if err != nil {
		slog.Error("failed to load settings", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Configuration error")
		return
	}

	suggestions, err := loadSuggestions(h.db)
	if err != nil {
		slog.Error("failed to load suggestions", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	candidates := contest.AggregateSuggestions(suggestions)

	middleware.JSONResponse(w, http.StatusOK, map[string]interface{}{
		"phase":      settings.Phase,
		"candidates": candidates.Candidates(),
	})
}

// GetReveal handles GET /reveal
// Returns 403 until the contest reaches the reveal phase.
func (h *RevealHandler) GetReveal(w http.ResponseWriter, r *http.Request) {
	settings, err := loadSettings(h.db)
	if err != nil {
		slog.Error("failed to load settings", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Configuration error")
		return
	}

	// CRITICAL: Rankings are sealed until the reveal
	if !revealOpen(settings.Phase) {
		middleware.ErrorResponse(w, http.StatusForbidden, "Results are hidden until the reveal")
		return
	}

	suggestions, err := loadSuggestions(h.db)
	if err != nil {
		slog.Error("failed to load suggestions", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	votes, err := loadVotes(h.db)
	if err != nil {
		slog.Error("failed to load votes", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	rosterRows, err := loadRoster(h.db)
	if err != nil {
		slog.Error("failed to load roster", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	candidates := contest.AggregateSuggestions(suggestions)
	roster := contest.BuildRoster(rosterRows)
	weighted := contest.AggregateVotes(votes, roster, settings.ParentWeight)
	rankings := contest.ComputeRankings(candidates, weighted, settings.RankingMode)
	charts := contest.BuildCharts(rankings, suggestions, settings.ActualGender)

	middleware.JSONResponse(w, http.StatusOK, map[string]interface{}{
		"phase":      settings.Phase,
		"rankings":   rankings,
		"charts":     charts,
		"vote_count": len(votes),
	})
}

// GetWinners handles GET /winners
func (h *RevealHandler) GetWinners(w http.ResponseWriter, r *http.Request) {
	settings, err := loadSettings(h.db)
	if err != nil {
		slog.Error("failed to load settings", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Configuration error")
		return
	}

	if !revealOpen(settings.Phase) {
		middleware.ErrorResponse(w, http.StatusForbidden, "Winners are hidden until the reveal")
		return
	}

	rows, err := h.db.Query(`
		SELECT id, name, gender, drawn_at FROM winner ORDER BY drawn_at, id
	`)
	if err != nil {
		slog.Error("failed to query winners", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	winners := []models.Winner{}
	for rows.Next() {
		var win models.Winner
		if err := rows.Scan(&win.ID, &win.Name, &win.Gender, &win.DrawnAt); err != nil {
			slog.Error("failed to scan winner", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		winners = append(winners, win)
	}

	middleware.JSONResponse(w, http.StatusOK, map[string]interface{}{
		"winners": winners,
	})
}
