package ui

import (
	"os"
	"path/filepath"
	"testing"

	"mooddine/internal/config"
	"mooddine/internal/model"
	"mooddine/internal/mood"
)

func diningControls() *ControlsModel {
	return NewControlsModel(model.VariantDining, mood.Labels(), []string{"BTM", "Indiranagar"}, 1000, 50)
}

func TestBudgetSliderBounds(t *testing.T) {
	c := diningControls()
	c.focused = 2

	if c.Increase() {
		t.Fatalf("budget already at max, Increase should report no change")
	}
	for i := 0; i < 40; i++ {
		c.Decrease()
	}
	if got := c.Criteria().MaxCost; got != 100 {
		t.Fatalf("budget floor = %v, want 100", got)
	}

	// A table cheaper than the floor starts the slider at its max.
	small := NewControlsModel(model.VariantDining, mood.Labels(), nil, 80, 50)
	if small.budgetMin != 80 || small.Criteria().MaxCost != 80 {
		t.Fatalf("small table slider = [%v, %v]", small.budgetMin, small.Criteria().MaxCost)
	}
	if small.has(controlArea) {
		t.Fatalf("no areas should hide the area selector")
	}
}

func TestRatingSliderSteps(t *testing.T) {
	c := diningControls()
	c.focused = 3

	for i := 0; i < 42; i++ {
		c.Increase()
	}
	if got := c.Criteria().MinRating; got != 4.2 {
		t.Fatalf("min rating = %v, want 4.2", got)
	}
	for i := 0; i < 60; i++ {
		c.Increase()
	}
	if got := c.Criteria().MinRating; got != 5 {
		t.Fatalf("min rating ceiling = %v", got)
	}
}

func TestChoiceSelectorCycles(t *testing.T) {
	c := diningControls()
	c.focused = 4

	want := []model.Choice{model.ChoiceYes, model.ChoiceNo, model.ChoiceAll}
	for _, w := range want {
		c.Increase()
		if got := c.Criteria().OnlineOrder; got != w {
			t.Fatalf("online = %v, want %v", got, w)
		}
	}
	c.Decrease()
	if got := c.Criteria().OnlineOrder; got != model.ChoiceNo {
		t.Fatalf("decrease from All = %v", got)
	}
}

func TestNearbyControlsOnlySetMood(t *testing.T) {
	c := NewControlsModel(model.VariantNearby, []model.Mood{"work", "date"}, nil, 0, 50)
	got := c.Criteria()
	if got.Mood != "work" || got.MaxCost != 0 || got.MinRating != 0 || got.Area != "" {
		t.Fatalf("nearby criteria = %+v", got)
	}
}

func TestControlsPrefsRoundTrip(t *testing.T) {
	c := diningControls()
	c.ApplyDefaults(config.Defaults{Mood: "party", Area: "indiranagar", MaxCost: 600, MinRating: 3.5, OnlineOrder: "yes", TableBooking: "no"})
	c.QueryInput().SetValue("toit")

	p := c.Prefs()
	restored := diningControls()
	restored.ApplyPrefs(p)

	if restored.Criteria() != c.Criteria() {
		t.Fatalf("restored %+v, want %+v", restored.Criteria(), c.Criteria())
	}
	if restored.Criteria().Mood != model.MoodParty || restored.Criteria().Area != "Indiranagar" {
		t.Fatalf("defaults not applied case-insensitively: %+v", restored.Criteria())
	}
}

func TestPrefsSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "prefs.json")
	want := UIPreferences{
		Dining:  &CriteriaPrefs{Mood: "Date", MaxCost: 800, OnlineOrder: "all", TableBooking: "yes"},
		Results: TablePrefs{HiddenColumns: []string{"votes"}, ActiveColumn: "score"},
	}
	if err := saveUIPreferences(path, want); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := os.Stat(path + ".lock"); err != nil {
		t.Fatalf("expected lock file: %v", err)
	}

	got := loadUIPreferences(path)
	if got.Dining == nil || *got.Dining != *want.Dining {
		t.Fatalf("dining prefs = %+v", got.Dining)
	}
	if got.Nearby != nil {
		t.Fatalf("nearby prefs should be absent")
	}
	if got.Results.ActiveColumn != "score" || len(got.Results.HiddenColumns) != 1 {
		t.Fatalf("results prefs = %+v", got.Results)
	}
}

func TestPrefsCorruptOrDisabled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if got := loadUIPreferences(path); got.Dining != nil || got.Nearby != nil {
		t.Fatalf("corrupt prefs should load empty, got %+v", got)
	}
	if err := saveUIPreferences("", UIPreferences{}); err != nil {
		t.Fatalf("empty path should be a no-op: %v", err)
	}
}

func TestColumnSetHideAndRestore(t *testing.T) {
	r := NewResultsModel(model.VariantDining)
	r.ApplyPrefs(TablePrefs{HiddenColumns: []string{"name"}, ActiveColumn: "name"})
	if r.active == 0 {
		t.Fatalf("active column must move off a hidden column")
	}
	r.ShowAllColumns()
	for i := 0; i < len(r.columns)-1; i++ {
		if !r.HideActiveColumn() {
			t.Fatalf("hide %d failed", i)
		}
	}
	if r.HideActiveColumn() {
		t.Fatalf("last visible column must stay")
	}
	if len(r.visibleIndexes()) != 1 {
		t.Fatalf("visible = %v", r.visibleIndexes())
	}
}
