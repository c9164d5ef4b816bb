package score

import (
	"math"
	"testing"

	"mooddine/internal/model"
)

func TestNearbyScorer(t *testing.T) {
	p := model.Place{Rating: 4.6, DistanceKm: 0.5, PriceLevel: 2, IsOpen: true}
	got := NearbyScorer{}.Score(p)
	want := 0.92 + 1/0.6 + 1.0/3 + 1
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("got %v, want %v", got, want)
	}
	if math.Abs(got-3.5533) > 1e-3 {
		t.Fatalf("got %v, want ~3.5533", got)
	}

	closed := p
	closed.IsOpen = false
	if diff := got - (NearbyScorer{}).Score(closed); math.Abs(diff-1) > 1e-9 {
		t.Fatalf("open bonus = %v, want 1", diff)
	}
}

func TestBudgetScorer(t *testing.T) {
	s := BudgetScorer{MaxCost: 1000}
	got := s.Score(model.Place{Rating: 4.0, Cost: 300})
	if math.Abs(got-0.76) > 1e-6 {
		t.Fatalf("got %v, want 0.76", got)
	}
}

func TestBudgetScorerZeroMaxCost(t *testing.T) {
	got := BudgetScorer{}.Score(model.Place{Rating: 5, Cost: 0})
	if math.Abs(got-RatingWeight) > 1e-9 {
		t.Fatalf("got %v, want %v", got, RatingWeight)
	}
}

func TestScorersMonotonic(t *testing.T) {
	base := model.Place{Rating: 3, Cost: 500, DistanceKm: 1, PriceLevel: 2, IsOpen: true}

	scorers := map[string]Scorer{
		"nearby": NearbyScorer{},
		"budget": BudgetScorer{MaxCost: 1000},
	}
	for name, s := range scorers {
		higher := base
		higher.Rating = 4
		if s.Score(higher) <= s.Score(base) {
			t.Errorf("%s: score not increasing in rating", name)
		}
	}

	cheaper := base
	cheaper.Cost = 400
	b := BudgetScorer{MaxCost: 1000}
	if b.Score(cheaper) <= b.Score(base) {
		t.Errorf("budget: score not decreasing in cost")
	}

	n := NearbyScorer{}
	closer := base
	closer.DistanceKm = 0.5
	if n.Score(closer) <= n.Score(base) {
		t.Errorf("nearby: score not decreasing in distance")
	}
	pricier := base
	pricier.PriceLevel = 4
	if n.Score(pricier) >= n.Score(base) {
		t.Errorf("nearby: score not decreasing in price level")
	}
	worst := model.Place{Rating: 0, DistanceKm: 1e9, PriceLevel: 1e6}
	if n.Score(worst) < 0 {
		t.Errorf("nearby: score below zero")
	}
}

type fixedScorer map[string]float64

func (f fixedScorer) Score(p model.Place) float64 { return f[p.Name] }

func TestRankStableDescending(t *testing.T) {
	places := []model.Place{{Name: "a"}, {Name: "b"}, {Name: "c"}, {Name: "d"}}
	s := fixedScorer{"a": 1, "b": 3, "c": 1, "d": 3}

	got := Rank(places, s, 0)
	want := []string{"b", "d", "a", "c"}
	if len(got) != len(want) {
		t.Fatalf("got %d rows, want %d", len(got), len(want))
	}
	for i, name := range want {
		if got[i].Name != name {
			t.Fatalf("position %d = %s, want %s (%+v)", i, got[i].Name, name, got)
		}
	}
	if places[0].Name != "a" || places[1].Name != "b" {
		t.Fatalf("input slice was reordered: %+v", places)
	}
}

func TestRankLimit(t *testing.T) {
	places := make([]model.Place, 15)
	for i := range places {
		places[i] = model.Place{Rating: float64(i % 5), Cost: 100}
	}
	if got := Rank(places, BudgetScorer{MaxCost: 100}, 10); len(got) != 10 {
		t.Fatalf("got %d rows, want 10", len(got))
	}
	if got := Rank(places, BudgetScorer{MaxCost: 100}, 0); len(got) != 15 {
		t.Fatalf("got %d rows, want 15", len(got))
	}
	if got := Rank(nil, NearbyScorer{}, 10); len(got) != 0 {
		t.Fatalf("got %d rows, want 0", len(got))
	}
}
