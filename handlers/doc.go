// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the naming contest API.

# Handler Types

Each handler is a struct with database and config dependencies:

  - SuggestionHandler: Name suggestion lifecycle (create, edit, delete)
  - VoteHandler: Vote submission with budget enforcement
  - RevealHandler: Candidate list, rankings, charts, winners
  - AdminHandler: Settings, roster, and winner draw

Handlers are created via constructor functions that accept *sql.DB and Config:

	suggestionHandler := handlers.NewSuggestionHandler(db, cfg)

# Contest Lifecycle

The contest progresses through four phases, stored in the setting
table: nominations → voting → reveal → closed

	POST   /suggestions        → Create (nominations only)
	PUT    /suggestions/{id}   → Update (owner, nominations only)
	DELETE /suggestions/{id}   → Delete (owner)
	POST   /votes              → Submit (voting only, budget-enforced)
	GET    /reveal             → GetReveal (reveal/closed only)
	POST   /admin/winners/draw → DrawWinners (requires actual gender)

Participants identify themselves with the X-Participant header; admin
operations require the X-Admin-Key header.

# Vote Budgets

Submit serializes the budget check-then-write per voter with an
in-process mutex, so two in-flight submissions cannot both pass the
same budget slot. The budget rules themselves live in the contest
package.

# Scoring

All aggregation and scoring is delegated to the contest package;
handlers only scan rows and translate rejections into HTTP statuses.
Validation failures are 400, quota and phase violations 409 (with
budget_exceeded set on quota failures), ownership violations 403, and
sealed results 403.
*/
package handlers
