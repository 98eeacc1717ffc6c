// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Mukaram01/Name/cliparse"
	"github.com/Mukaram01/Name/contest"
	"github.com/Mukaram01/Name/middleware"
	"github.com/Mukaram01/Name/models"
)

type VoteHandler struct {
	db  *sql.DB
	cfg cliparse.Config

	// Serializes the budget check-then-write per voter so two
	// in-flight submissions cannot both pass the same budget slot.
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewVoteHandler(db *sql.DB, cfg cliparse.Config) *VoteHandler {
	return &VoteHandler{db: db, cfg: cfg, locks: make(map[string]*sync.Mutex)}
}

func (h *VoteHandler) voterLock(voter string) *sync.Mutex {
	h.mu.Lock()
	defer h.mu.Unlock()

	key := contest.NormalizeIdentity(voter)
	lock, ok := h.locks[key]
	if !ok {
		lock = &sync.Mutex{}
		h.locks[key] = lock
	}
	return lock
}

// Submit handles POST /votes (create or update)
func (h *VoteHandler) Submit(w http.ResponseWriter, r *http.Request) {
	identity := middleware.Participant(r)
	if identity == "" {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "X-Participant header required")
		return
	}

	var req models.SubmitVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	lock := h.voterLock(identity)
	lock.Lock()
	defer lock.Unlock()

	settings, err := loadSettings(h.db)
	if err != nil {
		slog.Error("failed to load settings", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Configuration error")
		return
	}

	if settings.Phase != models.PhaseVoting {
		middleware.ErrorResponse(w, http.StatusConflict, "Voting is not open")
		return
	}

	suggestions, err := loadSuggestions(h.db)
	if err != nil {
		slog.Error("failed to load suggestions", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	candidates := contest.AggregateSuggestions(suggestions)
	if candidates.Get(req.Name, req.Gender) == nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "Unknown candidate")
		return
	}

	votes, err := loadVotes(h.db)
	if err != nil {
		slog.Error("failed to load votes", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	intent := models.Vote{
		Name:   req.Name,
		Gender: req.Gender,
		Voter:  identity,
		Score:  req.Score,
	}

	current, err := contest.ValidateVote(intent, votes, settings)
	if err != nil {
		var rejection *contest.RejectionError
		if errors.As(err, &rejection) {
			status := http.StatusBadRequest
			if rejection.BudgetExceeded {
				status = http.StatusConflict
			}
			middleware.RejectResponse(w, status, rejection.Reason, rejection.BudgetExceeded)
			return
		}
		slog.Error("vote validation failed", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to validate vote")
		return
	}

	now := time.Now()
	message := "Vote recorded"
	voteID := ""

	if current != nil {
		// Resubmission for the same candidate overwrites in place.
		voteID = current.ID
		message = "Vote updated"
		_, err = h.db.Exec(`
			UPDATE vote SET score = ?, updated_at = ? WHERE id = ?
		`, req.Score, now, voteID)
	} else {
		voteID = uuid.NewString()
		_, err = h.db.Exec(`
			INSERT INTO vote (id, name, gender, voter, score, updated_at)
			VALUES (?, ?, ?, ?, ?, ?)
		`, voteID, req.Name, req.Gender, identity, req.Score, now)
	}

	if err != nil {
		slog.Error("failed to save vote", "error", err, "voter", identity)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save vote")
		return
	}

	slog.Info("vote recorded", "vote_id", voteID, "voter", identity, "name", req.Name, "score", req.Score, "is_update", current != nil)

	middleware.JSONResponse(w, http.StatusCreated, models.SubmitVoteResponse{
		VoteID:  voteID,
		Message: message,
	})
}

// Mine handles GET /votes/mine
func (h *VoteHandler) Mine(w http.ResponseWriter, r *http.Request) {
	identity := middleware.Participant(r)
	if identity == "" {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "X-Participant header required")
		return
	}

	all, err := loadVotes(h.db)
	if err != nil {
		slog.Error("failed to load votes", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	mine := []models.Vote{}
	for _, v := range all {
		if contest.NormalizeIdentity(v.Voter) == contest.NormalizeIdentity(identity) {
			mine = append(mine, v)
		}
	}

	middleware.JSONResponse(w, http.StatusOK, map[string]interface{}{
		"votes": mine,
	})
}

// Quota handles GET /votes/quota
func (h *VoteHandler) Quota(w http.ResponseWriter, r *http.Request) {
	identity := middleware.Participant(r)
	if identity == "" {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "X-Participant header required")
		return
	}

	settings, err := loadSettings(h.db)
	if err != nil {
		slog.Error("failed to load settings", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Configuration error")
		return
	}

	all, err := loadVotes(h.db)
	if err != nil {
		slog.Error("failed to load votes", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	mine := []models.Vote{}
	for _, v := range all {
		if contest.NormalizeIdentity(v.Voter) == contest.NormalizeIdentity(identity) {
			mine = append(mine, v)
		}
	}

	middleware.JSONResponse(w, http.StatusOK, models.QuotaResponse{
		Usage:   contest.QuotaUsage(mine, settings.StarBudgets),
		Budgets: settings.StarBudgets,
	})
}
