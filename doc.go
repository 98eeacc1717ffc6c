// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the naming contest API server.

The server runs a small multi-phase baby-naming contest: participants
suggest names with a gender guess, vote on candidates under per-star
vote budgets, and at reveal time the server computes a weighted,
Bayesian-smoothed leaderboard and draws prize winners among the
correct guessers.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_PATH=contest.db ADMIN_KEY_SALT=... go run main.go

Or with flags:

	go run main.go -p 4100 -d contest.db -admin-salt ...

A .env file in the working directory is loaded automatically.

# Configuration

Required settings:

  - DATABASE_PATH (-d): SQLite database path
  - ADMIN_KEY_SALT (-admin-salt): Secret for admin key HMAC

Optional settings:

  - PORT (-p): Server port (default: 4100)

Contest-level settings (phase, star budgets, suggestion caps, parent
weight, actual gender, ranking mode) live in the setting table and are
managed through the /admin/settings endpoints.

# Architecture

The server uses a handler-based architecture with dependency injection:

  - contest: pure scoring, budget, aggregation, and draw logic
  - handlers: HTTP request handlers (suggestions, votes, reveal, admin)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers, participant identity
  - models: Request/response types
  - auth: Admin key validation and IP hashing
  - db: Schema creation and default settings
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
