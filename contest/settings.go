// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package contest

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Mukaram01/Name/models"
)

// Ranking mode constants
const (
	RankingBayesian = "bayesian"
	RankingAverage  = "average"
)

// Setting keys as stored in the setting table
const (
	KeyPhase          = "phase"
	KeyStarBudgets    = "star_budgets"
	KeyParentWeight   = "parent_weight"
	KeyMaxSuggestions = "max_suggestions_per_person"
	KeyMaxGirlNames   = "max_girl_suggestions"
	KeyMaxBoyNames    = "max_boy_suggestions"
	KeyActualGender   = "actual_gender"
	KeyRankingMode    = "ranking_mode"
)

// Settings is a point-in-time snapshot of the contest configuration.
// Callers load a fresh snapshot per request; the core never caches.
type Settings struct {
	Phase                   string
	StarBudgets             map[int]int
	ParentWeight            float64
	MaxSuggestionsPerPerson int
	MaxGirlSuggestions      int
	MaxBoySuggestions       int
	ActualGender            string
	RankingMode             string
}

// DefaultSettings returns the configuration a fresh contest starts with.
func DefaultSettings() Settings {
	return Settings{
		Phase:        models.PhaseNominations,
		StarBudgets:  map[int]int{},
		ParentWeight: 1,
		ActualGender: models.GenderUnknown,
		RankingMode:  RankingBayesian,
	}
}

// SettingsFromMap parses a setting-table snapshot. Unknown keys are
// ignored; malformed values are configuration errors.
func SettingsFromMap(values map[string]string) (Settings, error) {
	s := DefaultSettings()

	if v, ok := values[KeyPhase]; ok {
		phase := strings.ToLower(strings.TrimSpace(v))
		switch phase {
		case models.PhaseNominations, models.PhaseVoting, models.PhaseReveal, models.PhaseClosed:
			s.Phase = phase
		default:
			return Settings{}, fmt.Errorf("invalid phase %q", v)
		}
	}

	if v, ok := values[KeyStarBudgets]; ok {
		budgets, err := ParseStarBudgets(v)
		if err != nil {
			return Settings{}, err
		}
		s.StarBudgets = budgets
	}

	if v, ok := values[KeyParentWeight]; ok && strings.TrimSpace(v) != "" {
		w, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil || w <= 0 {
			return Settings{}, fmt.Errorf("invalid parent_weight %q", v)
		}
		s.ParentWeight = w
	}

	for _, f := range []struct {
		key  string
		dest *int
	}{
		{KeyMaxSuggestions, &s.MaxSuggestionsPerPerson},
		{KeyMaxGirlNames, &s.MaxGirlSuggestions},
		{KeyMaxBoyNames, &s.MaxBoySuggestions},
	} {
		v, ok := values[f.key]
		if !ok || strings.TrimSpace(v) == "" {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil || n < 0 {
			return Settings{}, fmt.Errorf("invalid %s %q", f.key, v)
		}
		*f.dest = n
	}

	if v, ok := values[KeyActualGender]; ok && strings.TrimSpace(v) != "" {
		gender := strings.ToLower(strings.TrimSpace(v))
		switch gender {
		case models.GenderGirl, models.GenderBoy, models.GenderUnknown:
			s.ActualGender = gender
		default:
			return Settings{}, fmt.Errorf("invalid actual_gender %q", v)
		}
	}

	if v, ok := values[KeyRankingMode]; ok && strings.TrimSpace(v) != "" {
		mode := strings.ToLower(strings.TrimSpace(v))
		switch mode {
		case RankingBayesian, RankingAverage:
			s.RankingMode = mode
		default:
			return Settings{}, fmt.Errorf("invalid ranking_mode %q", v)
		}
	}

	return s, nil
}

// ParseStarBudgets parses a compact "star:count" list like "5:2,4:3".
// A star value absent from the list has no budget (unlimited).
func ParseStarBudgets(value string) (map[int]int, error) {
	budgets := make(map[int]int)
	value = strings.TrimSpace(value)
	if value == "" {
		return budgets, nil
	}

	for _, pair := range strings.Split(value, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}

		star, count, found := strings.Cut(pair, ":")
		if !found {
			return nil, fmt.Errorf("invalid star budget entry %q", pair)
		}

		s, err := strconv.Atoi(strings.TrimSpace(star))
		if err != nil || s < 1 || s > 5 {
			return nil, fmt.Errorf("invalid star value in %q", pair)
		}

		c, err := strconv.Atoi(strings.TrimSpace(count))
		if err != nil || c < 0 {
			return nil, fmt.Errorf("invalid budget count in %q", pair)
		}

		budgets[s] = c
	}

	return budgets, nil
}

// GirlCap returns the per-person girl suggestion cap, falling back to
// the shared default. Zero means unlimited.
func (s Settings) GirlCap() int {
	if s.MaxGirlSuggestions > 0 {
		return s.MaxGirlSuggestions
	}
	return s.MaxSuggestionsPerPerson
}

// BoyCap returns the per-person boy suggestion cap, falling back to
// the shared default. Zero means unlimited.
func (s Settings) BoyCap() int {
	if s.MaxBoySuggestions > 0 {
		return s.MaxBoySuggestions
	}
	return s.MaxSuggestionsPerPerson
}
