package model

import (
	"strings"
	"time"
)

// Mood is the dining occasion a place suits.
type Mood string

// Moods assigned by the classifier.
const (
	MoodWork           Mood = "Work"
	MoodBudgetFriendly Mood = "Budget Friendly"
	MoodDate           Mood = "Date"
	MoodQuickBite      Mood = "Quick Bite"
	MoodParty          Mood = "Party"
	MoodHappy          Mood = "Happy"
	MoodFamily         Mood = "Family"
)

// Variant identifies which dataset shape a table was loaded from.
type Variant string

const (
	// VariantNearby is the built-in nearby places table with a literal mood column.
	VariantNearby Variant = "nearby"
	// VariantDining is the restaurant CSV whose moods are derived.
	VariantDining Variant = "dining"
)

// Place represents one row of the loaded table.
type Place struct {
	Name         string
	Category     string
	Mood         Mood
	Rating       float64
	Cost         float64 // average cost for two
	DistanceKm   float64
	PriceLevel   int
	Votes        int
	IsOpen       bool
	OnlineOrder  bool
	TableBooking bool
	Area         string
	Address      string
}

// Recommendation is a place with its computed score.
type Recommendation struct {
	Place
	Score float64
}

// Choice is a tri-state facility selection.
type Choice int

const (
	ChoiceAll Choice = iota
	ChoiceYes
	ChoiceNo
)

// String returns the selector label.
func (c Choice) String() string {
	switch c {
	case ChoiceYes:
		return "Yes"
	case ChoiceNo:
		return "No"
	default:
		return "All"
	}
}

// Matches reports whether v satisfies the selection.
func (c Choice) Matches(v bool) bool {
	switch c {
	case ChoiceYes:
		return v
	case ChoiceNo:
		return !v
	default:
		return true
	}
}

// ParseChoice maps "all", "yes" or "no" to a Choice. Unknown values are All.
func ParseChoice(s string) Choice {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes":
		return ChoiceYes
	case "no":
		return ChoiceNo
	default:
		return ChoiceAll
	}
}

// ShortlistEntry is a place the user kept from a recommendation list.
type ShortlistEntry struct {
	ID        int64
	Name      string
	Category  string
	Area      string
	Mood      Mood
	Rating    float64
	Cost      float64
	Score     float64
	Notes     string
	CreatedAt time.Time
}

// NewShortlistEntry represents data for creating a shortlist entry.
type NewShortlistEntry struct {
	Name     string
	Category string
	Area     string
	Mood     Mood
	Rating   float64
	Cost     float64
	Score    float64
	Notes    string
}

// ShortlistFromRecommendation builds a shortlist entry for r.
func ShortlistFromRecommendation(r Recommendation) NewShortlistEntry {
	return NewShortlistEntry{
		Name:     r.Name,
		Category: r.Category,
		Area:     r.Area,
		Mood:     r.Mood,
		Rating:   r.Rating,
		Cost:     r.Cost,
		Score:    r.Score,
	}
}
