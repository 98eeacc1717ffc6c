// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/Mukaram01/Name/cliparse"
	"github.com/Mukaram01/Name/handlers"
	"github.com/Mukaram01/Name/middleware"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	suggestionHandler := handlers.NewSuggestionHandler(db, cfg)
	voteHandler := handlers.NewVoteHandler(db, cfg)
	revealHandler := handlers.NewRevealHandler(db, cfg)
	adminHandler := handlers.NewAdminHandler(db, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Contest overview (public)
	mux.HandleFunc("GET /contest", middleware.WithLogging(revealHandler.GetContest))

	// Suggestions (public, identified by X-Participant)
	mux.HandleFunc("POST /suggestions", middleware.WithLogging(suggestionHandler.Create))
	mux.HandleFunc("PUT /suggestions/{id}", middleware.WithLogging(suggestionHandler.Update))
	mux.HandleFunc("DELETE /suggestions/{id}", middleware.WithLogging(suggestionHandler.Delete))
	mux.HandleFunc("GET /suggestions/mine", middleware.WithLogging(suggestionHandler.Mine))

	// Votes (public, identified by X-Participant)
	mux.HandleFunc("POST /votes", middleware.WithLogging(voteHandler.Submit))
	mux.HandleFunc("GET /votes/mine", middleware.WithLogging(voteHandler.Mine))
	mux.HandleFunc("GET /votes/quota", middleware.WithLogging(voteHandler.Quota))

	// Reveal (public, sealed until the reveal phase)
	mux.HandleFunc("GET /reveal", middleware.WithLogging(revealHandler.GetReveal))
	mux.HandleFunc("GET /winners", middleware.WithLogging(revealHandler.GetWinners))

	// Administration (requires X-Admin-Key)
	mux.HandleFunc("GET /admin/settings", middleware.WithLogging(adminHandler.GetSettings))
	mux.HandleFunc("PUT /admin/settings", middleware.WithLogging(adminHandler.UpdateSettings))
	mux.HandleFunc("PUT /admin/roster", middleware.WithLogging(adminHandler.UpsertRoster))
	mux.HandleFunc("POST /admin/winners/draw", middleware.WithLogging(adminHandler.DrawWinners))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("naming contest API v1"))
	})

	return mux
}
