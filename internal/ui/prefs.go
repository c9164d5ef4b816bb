package ui

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// TablePrefs stores per-table UI preferences.
type TablePrefs struct {
	HiddenColumns []string `json:"hidden_columns"`
	ActiveColumn  string   `json:"active_column"`
}

// CriteriaPrefs stores the last control positions of one variant.
type CriteriaPrefs struct {
	Mood         string  `json:"mood"`
	Area         string  `json:"area"`
	MaxCost      float64 `json:"max_cost"`
	MinRating    float64 `json:"min_rating"`
	OnlineOrder  string  `json:"online_order"`
	TableBooking string  `json:"table_booking"`
	Query        string  `json:"query"`
}

// UIPreferences stores persisted app preferences.
type UIPreferences struct {
	Nearby    *CriteriaPrefs `json:"nearby,omitempty"`
	Dining    *CriteriaPrefs `json:"dining,omitempty"`
	Results   TablePrefs     `json:"results"`
	Shortlist TablePrefs     `json:"shortlist"`
}

// loadUIPreferences never fails; an unreadable file yields empty prefs.
func loadUIPreferences(path string) UIPreferences {
	var prefs UIPreferences
	if path == "" {
		return prefs
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Printf("[prefs] read %s: %v", path, err)
		}
		return prefs
	}
	if err := json.Unmarshal(data, &prefs); err != nil {
		log.Printf("[prefs] ignoring corrupt %s: %v", path, err)
		return UIPreferences{}
	}
	return prefs
}

// saveUIPreferences writes prefs under an exclusive lock so two running
// instances cannot interleave writes.
func saveUIPreferences(path string, prefs UIPreferences) error {
	if path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create prefs dir: %w", err)
	}

	lock := flock.New(path + ".lock")
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("failed to lock prefs: %w", err)
	}
	defer lock.Unlock()

	data, err := json.MarshalIndent(prefs, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal prefs: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write prefs: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to write prefs: %w", err)
	}
	return nil
}
