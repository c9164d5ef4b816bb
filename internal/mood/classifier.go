// Package mood assigns a dining mood to a place from its category text and cost.
package mood

import (
	"fmt"
	"strconv"
	"strings"

	"mooddine/internal/model"
)

// BudgetCeiling is the highest cost for two still labelled Budget Friendly.
const BudgetCeiling = 300

type rule struct {
	label model.Mood
	match func(category string, cost float64) bool
}

func containsAny(needles ...string) func(string, float64) bool {
	return func(category string, _ float64) bool {
		for _, n := range needles {
			if strings.Contains(category, n) {
				return true
			}
		}
		return false
	}
}

// rules are evaluated in order; the first match wins.
var rules = []rule{
	{label: model.MoodWork, match: containsAny("cafe", "bakery")},
	{label: model.MoodBudgetFriendly, match: func(_ string, cost float64) bool { return cost <= BudgetCeiling }},
	{label: model.MoodDate, match: containsAny("fine dining", "lounge")},
	{label: model.MoodQuickBite, match: containsAny("quick bites", "fast food")},
	{label: model.MoodParty, match: containsAny("bar", "pub", "brewery")},
	// "cafe" never reaches this rule, the Work rule takes it first.
	{label: model.MoodHappy, match: containsAny("dessert", "ice cream", "cafe")},
}

// Classify returns the mood for a category and cost for two. It always
// returns exactly one label and falls back to Family.
func Classify(category string, cost float64) model.Mood {
	c := strings.ToLower(category)
	for _, r := range rules {
		if r.match(c, cost) {
			return r.label
		}
	}
	return model.MoodFamily
}

// ClassifyText is Classify for a raw cost cell. A missing or non-numeric
// cost is an error, never a default.
func ClassifyText(category, costText string) (model.Mood, error) {
	cost, err := strconv.ParseFloat(strings.TrimSpace(costText), 64)
	if err != nil {
		return "", fmt.Errorf("failed to parse cost %q: %w", costText, err)
	}
	return Classify(category, cost), nil
}

// Labels returns every mood the classifier can produce, in rule order.
func Labels() []model.Mood {
	labels := make([]model.Mood, 0, len(rules)+1)
	for _, r := range rules {
		labels = append(labels, r.label)
	}
	return append(labels, model.MoodFamily)
}
