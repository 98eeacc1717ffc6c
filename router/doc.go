// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the naming contest API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg)

# Endpoints

Health:

	GET /health

Contest overview (public):

	GET /contest - Phase and candidate list (no scores)

Suggestions (identified by X-Participant):

	POST   /suggestions        - Submit a name
	PUT    /suggestions/{id}   - Edit own suggestion
	DELETE /suggestions/{id}   - Delete own suggestion
	GET    /suggestions/mine   - List own suggestions

Votes (identified by X-Participant):

	POST /votes       - Submit or update a vote
	GET  /votes/mine  - List own votes
	GET  /votes/quota - Per-star budget usage

Reveal (public, sealed until the reveal phase):

	GET /reveal  - Rankings and charts
	GET /winners - Drawn winners

Administration (requires X-Admin-Key):

	GET  /admin/settings     - Read configuration
	PUT  /admin/settings     - Update configuration
	PUT  /admin/roster       - Upsert roster entries
	POST /admin/winners/draw - Draw prize winners

# Handler Initialization

The router creates handler instances with dependency injection:

	suggestionHandler := handlers.NewSuggestionHandler(db, cfg)
	voteHandler := handlers.NewVoteHandler(db, cfg)
	revealHandler := handlers.NewRevealHandler(db, cfg)
	adminHandler := handlers.NewAdminHandler(db, cfg)

All handlers receive the database connection and configuration.
*/
package router
