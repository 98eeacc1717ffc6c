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

type AdminHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewAdminHandler(db *sql.DB, cfg cliparse.Config) *AdminHandler {
	return &AdminHandler{db: db, cfg: cfg}
}

func (h *AdminHandler) requireAdmin(w http.ResponseWriter, r *http.Request) bool {
	adminKey := r.Header.Get("X-Admin-Key")
	if err := auth.ValidateAdminKey(adminKey, h.cfg.AdminKeySalt); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid admin key")
		return false
	}
	return true
}

// GetSettings handles GET /admin/settings
func (h *AdminHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	values, err := loadSettingValues(h.db)
	if err != nil {
		slog.Error("failed to load settings", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.UpdateSettingsRequest{
		Settings: values,
	})
}

// UpdateSettings handles PUT /admin/settings
// The merged snapshot is validated as a whole before anything is written.
func (h *AdminHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	var req models.UpdateSettingsRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if len(req.Settings) == 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "settings cannot be empty")
		return
	}

	current, err := loadSettingValues(h.db)
	if err != nil {
		slog.Error("failed to load settings", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	merged := make(map[string]string, len(current)+len(req.Settings))
	for k, v := range current {
		merged[k] = v
	}
	for k, v := range req.Settings {
		merged[k] = strings.TrimSpace(v)
	}

	if _, err := contest.SettingsFromMap(merged); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	tx, err := h.db.Begin()
	if err != nil {
		slog.Error("failed to begin transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer tx.Rollback()

	for key, value := range req.Settings {
		_, err = tx.Exec(`
			INSERT INTO setting (key, value) VALUES (?, ?)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value
		`, key, strings.TrimSpace(value))
		if err != nil {
			slog.Error("failed to update setting", "error", err, "key", key)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update settings")
			return
		}
	}

	if err := tx.Commit(); err != nil {
		slog.Error("failed to commit transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update settings")
		return
	}

	slog.Info("settings updated", "keys", len(req.Settings))

	middleware.JSONResponse(w, http.StatusOK, models.UpdateSettingsRequest{
		Settings: merged,
	})
}

// UpsertRoster handles PUT /admin/roster
func (h *AdminHandler) UpsertRoster(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	var req models.UpsertRosterRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if len(req.Entries) == 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "entries cannot be empty")
		return
	}

	for _, entry := range req.Entries {
		if strings.TrimSpace(entry.Name) == "" {
			middleware.ErrorResponse(w, http.StatusBadRequest, "roster entry name is required")
			return
		}
		role := strings.ToLower(strings.TrimSpace(entry.Role))
		if role != models.RoleParent && role != models.RoleVoter {
			middleware.ErrorResponse(w, http.StatusBadRequest, "role must be parent or voter")
			return
		}
	}

	tx, err := h.db.Begin()
	if err != nil {
		slog.Error("failed to begin transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer tx.Rollback()

	for _, entry := range req.Entries {
		_, err = tx.Exec(`
			INSERT INTO roster (name, role, relation) VALUES (?, ?, ?)
			ON CONFLICT(name) DO UPDATE SET role = excluded.role, relation = excluded.relation
		`, strings.TrimSpace(entry.Name), strings.ToLower(strings.TrimSpace(entry.Role)), strings.TrimSpace(entry.Relation))
		if err != nil {
			slog.Error("failed to upsert roster entry", "error", err, "name", entry.Name)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update roster")
			return
		}
	}

	if err := tx.Commit(); err != nil {
		slog.Error("failed to commit transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update roster")
		return
	}

	slog.Info("roster updated", "entries", len(req.Entries))

	middleware.JSONResponse(w, http.StatusOK, map[string]interface{}{
		"message": "Roster updated",
		"count":   len(req.Entries),
	})
}

// DrawWinners handles POST /admin/winners/draw
func (h *AdminHandler) DrawWinners(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	var req models.DrawWinnersRequest
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

	suggestions, err := loadSuggestions(h.db)
	if err != nil {
		slog.Error("failed to load suggestions", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	drawn, err := contest.DrawWinners(suggestions, settings.ActualGender, req.Count)
	if err != nil {
		if errors.Is(err, contest.ErrGenderNotRevealed) {
			middleware.ErrorResponse(w, http.StatusConflict, "Set the actual gender before drawing winners")
			return
		}
		var rejection *contest.RejectionError
		if errors.As(err, &rejection) {
			middleware.ErrorResponse(w, http.StatusBadRequest, rejection.Reason)
			return
		}
		slog.Error("winner draw failed", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to draw winners")
		return
	}

	if len(drawn) == 0 {
		middleware.JSONResponse(w, http.StatusOK, models.DrawWinnersResponse{
			Winners: []models.Winner{},
			Message: "No eligible guessers",
		})
		return
	}

	now := time.Now()

	tx, err := h.db.Begin()
	if err != nil {
		slog.Error("failed to begin transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer tx.Rollback()

	winners := make([]models.Winner, 0, len(drawn))
	for _, name := range drawn {
		win := models.Winner{
			ID:      uuid.NewString(),
			Name:    name,
			Gender:  settings.ActualGender,
			DrawnAt: now,
		}
		_, err = tx.Exec(`
			INSERT INTO winner (id, name, gender, drawn_at) VALUES (?, ?, ?, ?)
		`, win.ID, win.Name, win.Gender, win.DrawnAt)
		if err != nil {
			slog.Error("failed to insert winner", "error", err, "name", name)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save winners")
			return
		}
		winners = append(winners, win)
	}

	if err := tx.Commit(); err != nil {
		slog.Error("failed to commit transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save winners")
		return
	}

	slog.Info("winners drawn", "count", len(winners), "gender", settings.ActualGender)

	middleware.JSONResponse(w, http.StatusCreated, models.DrawWinnersResponse{
		Winners: winners,
		Message: "Winners drawn",
	})
}
