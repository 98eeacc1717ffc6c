// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"

	"github.com/Mukaram01/Name/contest"
	"github.com/Mukaram01/Name/models"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// SeedDefaultSettings inserts the default configuration for any setting
// key not already present. Existing values are never overwritten.
func SeedDefaultSettings(db *sql.DB) error {
	defaults := map[string]string{
		contest.KeyPhase:          models.PhaseNominations,
		contest.KeyStarBudgets:    "",
		contest.KeyParentWeight:   "1",
		contest.KeyMaxSuggestions: "0",
		contest.KeyMaxGirlNames:   "0",
		contest.KeyMaxBoyNames:    "0",
		contest.KeyActualGender:   models.GenderUnknown,
		contest.KeyRankingMode:    contest.RankingBayesian,
	}

	for key, value := range defaults {
		_, err := db.Exec(`
			INSERT OR IGNORE INTO setting (key, value) VALUES (?, ?)
		`, key, value)
		if err != nil {
			return fmt.Errorf("failed to seed setting %s: %w", key, err)
		}
	}

	return nil
}

const schema = `
-- Contest configuration
CREATE TABLE IF NOT EXISTS setting (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL
);

-- Known participants and their roles
CREATE TABLE IF NOT EXISTS roster (
    name TEXT PRIMARY KEY COLLATE NOCASE,
    role TEXT NOT NULL DEFAULT 'voter',
    relation TEXT NOT NULL DEFAULT ''
);

-- Name suggestions
CREATE TABLE IF NOT EXISTS suggestion (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    gender TEXT NOT NULL,
    suggester TEXT NOT NULL,
    guess TEXT NOT NULL,
    relation TEXT NOT NULL,
    meaning TEXT NOT NULL DEFAULT '',
    ip_hash TEXT,
    created_at TIMESTAMP NOT NULL,
    updated_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_suggestion_suggester ON suggestion(suggester COLLATE NOCASE);

-- Votes, one row per (voter, name, gender)
CREATE TABLE IF NOT EXISTS vote (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    gender TEXT NOT NULL,
    voter TEXT NOT NULL,
    score INTEGER NOT NULL CHECK (score BETWEEN 1 AND 5),
    updated_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_vote_voter ON vote(voter COLLATE NOCASE);

-- Drawn prize winners
CREATE TABLE IF NOT EXISTS winner (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    gender TEXT NOT NULL,
    drawn_at TIMESTAMP NOT NULL
);
`
