// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"

	"github.com/Mukaram01/Name/contest"
	"github.com/Mukaram01/Name/models"
)

// ErrNoConfiguration indicates an empty setting table, which requires
// administrator action before the contest can serve requests.
var ErrNoConfiguration = errors.New("configuration store is empty")

// loadSettingValues reads the raw setting table into a map.
func loadSettingValues(db *sql.DB) (map[string]string, error) {
	rows, err := db.Query(`SELECT key, value FROM setting`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	values := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, err
		}
		values[key] = value
	}

	return values, rows.Err()
}

// loadSettings reads a fresh configuration snapshot. Nothing is cached;
// every request sees the setting table as it is now.
func loadSettings(db *sql.DB) (contest.Settings, error) {
	values, err := loadSettingValues(db)
	if err != nil {
		return contest.Settings{}, err
	}
	if len(values) == 0 {
		return contest.Settings{}, ErrNoConfiguration
	}
	return contest.SettingsFromMap(values)
}

// loadSuggestions scans all suggestion rows in insertion order.
func loadSuggestions(db *sql.DB) ([]models.Suggestion, error) {
	rows, err := db.Query(`
		SELECT id, name, gender, suggester, guess, relation, meaning, created_at, updated_at
		FROM suggestion
		ORDER BY rowid
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	suggestions := []models.Suggestion{}
	for rows.Next() {
		var s models.Suggestion
		if err := rows.Scan(&s.ID, &s.Name, &s.Gender, &s.Suggester, &s.Guess,
			&s.Relation, &s.Meaning, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		suggestions = append(suggestions, s)
	}

	return suggestions, rows.Err()
}

// loadVotes scans all vote rows in insertion order.
func loadVotes(db *sql.DB) ([]models.Vote, error) {
	rows, err := db.Query(`
		SELECT id, name, gender, voter, score, updated_at
		FROM vote
		ORDER BY rowid
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	votes := []models.Vote{}
	for rows.Next() {
		var v models.Vote
		if err := rows.Scan(&v.ID, &v.Name, &v.Gender, &v.Voter, &v.Score, &v.UpdatedAt); err != nil {
			return nil, err
		}
		votes = append(votes, v)
	}

	return votes, rows.Err()
}

// loadRoster scans all roster entries.
func loadRoster(db *sql.DB) ([]models.RosterEntry, error) {
	rows, err := db.Query(`SELECT name, role, relation FROM roster`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []models.RosterEntry{}
	for rows.Next() {
		var e models.RosterEntry
		if err := rows.Scan(&e.Name, &e.Role, &e.Relation); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// getSuggestion fetches one suggestion by its surrogate ID.
func getSuggestion(db *sql.DB, id string) (models.Suggestion, error) {
	var s models.Suggestion
	err := db.QueryRow(`
		SELECT id, name, gender, suggester, guess, relation, meaning, created_at, updated_at
		FROM suggestion
		WHERE id = ?
	`, id).Scan(&s.ID, &s.Name, &s.Gender, &s.Suggester, &s.Guess,
		&s.Relation, &s.Meaning, &s.CreatedAt, &s.UpdatedAt)
	return s, err
}
