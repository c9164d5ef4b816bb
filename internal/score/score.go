// Package score computes ranking scores for places.
package score

import (
	"sort"

	"mooddine/internal/model"
)

// Scorer computes a score for one place. Higher is more recommended.
type Scorer interface {
	Score(p model.Place) float64
}

// NearbyScorer scores the built-in nearby table:
// rating/5 + 1/(distance+0.1) + 1/(price_level+1) + is_open.
type NearbyScorer struct{}

func (NearbyScorer) Score(p model.Place) float64 {
	open := 0.0
	if p.IsOpen {
		open = 1
	}
	return p.Rating/5 +
		1/(p.DistanceKm+0.1) +
		1/(float64(p.PriceLevel)+1) +
		open
}

// Weights used by BudgetScorer.
const (
	RatingWeight = 0.6
	PriceWeight  = 0.4
)

// BudgetScorer scores dining rows by rating and cost relative to MaxCost.
// MaxCost is the largest cost in the unfiltered table.
type BudgetScorer struct {
	MaxCost float64
}

func (s BudgetScorer) Score(p model.Place) float64 {
	ratingNorm := p.Rating / 5
	priceNorm := 0.0
	if s.MaxCost > 0 {
		priceNorm = 1 - p.Cost/s.MaxCost
	}
	return RatingWeight*ratingNorm + PriceWeight*priceNorm
}

// Rank scores every place, sorts by score descending keeping input order on
// ties, and keeps the first limit entries when limit > 0.
func Rank(places []model.Place, s Scorer, limit int) []model.Recommendation {
	out := make([]model.Recommendation, len(places))
	for i, p := range places {
		out[i] = model.Recommendation{Place: p, Score: s.Score(p)}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
