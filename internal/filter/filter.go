// Package filter narrows a table of places by user-selected criteria.
package filter

import (
	"strings"

	"mooddine/internal/model"
)

// Criteria holds the user's selections. Zero values disable a predicate:
// empty Mood or Area, MaxCost <= 0, MinRating <= 0, ChoiceAll and an empty
// Query all match every row.
type Criteria struct {
	Mood         model.Mood
	Area         string
	MaxCost      float64
	MinRating    float64
	OnlineOrder  model.Choice
	TableBooking model.Choice
	Query        string
}

// Predicate reports whether a place passes one criterion.
type Predicate func(p model.Place) bool

// Predicates returns the active predicates for c, in application order.
func Predicates(c Criteria) []Predicate {
	var preds []Predicate
	if c.Mood != "" {
		preds = append(preds, func(p model.Place) bool { return p.Mood == c.Mood })
	}
	if c.Area != "" {
		preds = append(preds, func(p model.Place) bool { return p.Area == c.Area })
	}
	if c.MaxCost > 0 {
		preds = append(preds, func(p model.Place) bool { return p.Cost <= c.MaxCost })
	}
	// Ratings are in [0, 5], so a floor of 0 admits every row.
	if c.MinRating > 0 {
		preds = append(preds, func(p model.Place) bool { return p.Rating >= c.MinRating })
	}
	if c.OnlineOrder != model.ChoiceAll {
		preds = append(preds, func(p model.Place) bool { return c.OnlineOrder.Matches(p.OnlineOrder) })
	}
	if c.TableBooking != model.ChoiceAll {
		preds = append(preds, func(p model.Place) bool { return c.TableBooking.Matches(p.TableBooking) })
	}
	if q := strings.ToLower(strings.TrimSpace(c.Query)); q != "" {
		preds = append(preds, func(p model.Place) bool { return strings.Contains(strings.ToLower(p.Name), q) })
	}
	return preds
}

// Apply returns a new slice with the rows that satisfy every active
// predicate, in input order. The input is not modified.
func Apply(rows []model.Place, c Criteria) []model.Place {
	return Chain(rows, Predicates(c)...)
}

// Chain narrows rows through each predicate in turn.
func Chain(rows []model.Place, preds ...Predicate) []model.Place {
	out := append([]model.Place(nil), rows...)
	for _, pred := range preds {
		kept := out[:0]
		for _, p := range out {
			if pred(p) {
				kept = append(kept, p)
			}
		}
		out = kept
	}
	return out
}

// Matches reports whether p satisfies every active predicate of c.
func Matches(p model.Place, c Criteria) bool {
	for _, pred := range Predicates(c) {
		if !pred(p) {
			return false
		}
	}
	return true
}
