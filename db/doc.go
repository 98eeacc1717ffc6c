// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation and default settings.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and
indexes. SeedDefaultSettings fills the setting table with defaults for
any missing key (INSERT OR IGNORE; existing values are never touched).

# Tables

The schema includes:

  - setting: Contest configuration (phase, budgets, caps, gender)
  - roster: Known participants with roles
  - suggestion: Name suggestions with gender guess and meaning
  - vote: One row per (voter, name, gender) star rating
  - winner: Drawn prize winners

# Identifiers

All rows carry generated surrogate IDs, never positional row numbers,
so deleting a row cannot invalidate references to another.

# Indexes

Performance indexes on:

  - suggestion.suggester (NOCASE)
  - vote.voter (NOCASE)
*/
package db
