// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Mukaram01/Name/auth"
	"github.com/Mukaram01/Name/cliparse"
	"github.com/Mukaram01/Name/contest"
	"github.com/Mukaram01/Name/middleware"
	"github.com/Mukaram01/Name/models"
)

type SuggestionHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewSuggestionHandler(db *sql.DB, cfg cliparse.Config) *SuggestionHandler {
	return &SuggestionHandler{db: db, cfg: cfg}
}

// Create handles POST /suggestions
func (h *SuggestionHandler) Create(w http.ResponseWriter, r *http.Request) {
	identity := middleware.Participant(r)
	if identity == "" {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "X-Participant header required")
		return
	}

	var req models.SubmitSuggestionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	settings, err := loadSettings(h.db)
	if err != nil {
		slog.Error("failed to load settings", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Configuration error")
		return
	}

	if settings.Phase != models.PhaseNominations {
		middleware.ErrorResponse(w, http.StatusConflict, "Nominations are closed")
		return
	}

	existing, err := loadSuggestions(h.db)
	if err != nil {
		slog.Error("failed to load suggestions", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	now := time.Now()
	row := models.Suggestion{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(req.Name),
		Gender:    strings.ToLower(strings.TrimSpace(req.Gender)),
		Suggester: identity,
		Guess:     strings.ToLower(strings.TrimSpace(req.Guess)),
		Relation:  strings.TrimSpace(req.Relation),
		Meaning:   strings.TrimSpace(req.Meaning),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := contest.ValidateSuggestion(row, existing, settings); err != nil {
		var rejection *contest.RejectionError
		if errors.As(err, &rejection) {
			status := http.StatusBadRequest
			if rejection.BudgetExceeded {
				status = http.StatusConflict
			}
			middleware.RejectResponse(w, status, rejection.Reason, rejection.BudgetExceeded)
			return
		}
		slog.Error("suggestion validation failed", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to validate suggestion")
		return
	}

	ipHash := auth.HashIP(middleware.GetClientIP(r), h.cfg.AdminKeySalt)

	_, err = h.db.Exec(`
		INSERT INTO suggestion (id, name, gender, suggester, guess, relation, meaning, ip_hash, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, row.ID, row.Name, row.Gender, row.Suggester, row.Guess, row.Relation, row.Meaning, ipHash, row.CreatedAt, row.UpdatedAt)

	if err != nil {
		slog.Error("failed to insert suggestion", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save suggestion")
		return
	}

	slog.Info("suggestion recorded", "suggestion_id", row.ID, "name", row.Name, "gender", row.Gender, "suggester", identity)

	middleware.JSONResponse(w, http.StatusCreated, models.SubmitSuggestionResponse{
		SuggestionID: row.ID,
		Message:      "Suggestion recorded",
	})
}

// Update handles PUT /suggestions/{id}
func (h *SuggestionHandler) Update(w http.ResponseWriter, r *http.Request) {
	identity := middleware.Participant(r)
	if identity == "" {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "X-Participant header required")
		return
	}

	id := r.PathValue("id")
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "suggestion id is required")
		return
	}

	var req models.EditSuggestionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	settings, err := loadSettings(h.db)
	if err != nil {
		slog.Error("failed to load settings", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Configuration error")
		return
	}

	prior, err := getSuggestion(h.db, id)
	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Suggestion not found")
		return
	}
	if err != nil {
		slog.Error("failed to query suggestion", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	if !contest.IsOwner(prior, identity) {
		middleware.ErrorResponse(w, http.StatusForbidden, "Only the original suggester may edit a suggestion")
		return
	}

	// Edits are gated to the nominations phase; deletes are not.
	if settings.Phase != models.PhaseNominations {
		middleware.ErrorResponse(w, http.StatusConflict, "Nominations are closed")
		return
	}

	merged, err := contest.MergeEdit(prior, req)
	if err != nil {
		var rejection *contest.RejectionError
		if errors.As(err, &rejection) {
			middleware.ErrorResponse(w, http.StatusBadRequest, rejection.Reason)
			return
		}
		slog.Error("failed to merge edit", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to edit suggestion")
		return
	}
	merged.UpdatedAt = time.Now()

	_, err = h.db.Exec(`
		UPDATE suggestion
		SET name = ?, gender = ?, guess = ?, relation = ?, meaning = ?, updated_at = ?
		WHERE id = ?
	`, merged.Name, merged.Gender, merged.Guess, merged.Relation, merged.Meaning, merged.UpdatedAt, merged.ID)

	if err != nil {
		slog.Error("failed to update suggestion", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to edit suggestion")
		return
	}

	slog.Info("suggestion edited", "suggestion_id", merged.ID, "suggester", identity)

	middleware.JSONResponse(w, http.StatusOK, merged)
}

// Delete handles DELETE /suggestions/{id}
func (h *SuggestionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	identity := middleware.Participant(r)
	if identity == "" {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "X-Participant header required")
		return
	}

	id := r.PathValue("id")
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "suggestion id is required")
		return
	}

	prior, err := getSuggestion(h.db, id)
	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Suggestion not found")
		return
	}
	if err != nil {
		slog.Error("failed to query suggestion", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	if !contest.IsOwner(prior, identity) {
		middleware.ErrorResponse(w, http.StatusForbidden, "Only the original suggester may delete a suggestion")
		return
	}

	_, err = h.db.Exec(`DELETE FROM suggestion WHERE id = ?`, id)
	if err != nil {
		slog.Error("failed to delete suggestion", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete suggestion")
		return
	}

	slog.Info("suggestion deleted", "suggestion_id", id, "suggester", identity)

	middleware.JSONResponse(w, http.StatusOK, map[string]string{
		"message": "Suggestion deleted",
	})
}

// Mine handles GET /suggestions/mine
func (h *SuggestionHandler) Mine(w http.ResponseWriter, r *http.Request) {
	identity := middleware.Participant(r)
	if identity == "" {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "X-Participant header required")
		return
	}

	all, err := loadSuggestions(h.db)
	if err != nil {
		slog.Error("failed to load suggestions", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	mine := []models.Suggestion{}
	for _, s := range all {
		if contest.IsOwner(s, identity) {
			mine = append(mine, s)
		}
	}

	middleware.JSONResponse(w, http.StatusOK, map[string]interface{}{
		"suggestions": mine,
	})
}
