package dataset

import "mooddine/internal/model"

// Nearby returns the built-in nearby places table.
func Nearby() *Table {
	rows := []model.Place{
		{Name: "Cafe Aroma", Mood: "work", Rating: 4.6, DistanceKm: 0.5, PriceLevel: 2, IsOpen: true},
		{Name: "WorkHub Cafe", Mood: "work", Rating: 4.2, DistanceKm: 1.2, PriceLevel: 1, IsOpen: true},
		{Name: "Budget Bites", Mood: "budget", Rating: 3.8, DistanceKm: 2.0, PriceLevel: 1, IsOpen: true},
		{Name: "Romantic Rooftop", Mood: "date", Rating: 4.9, DistanceKm: 1.5, PriceLevel: 3, IsOpen: true},
		{Name: "Quick Snacks", Mood: "quick_bite", Rating: 3.9, DistanceKm: 0.8, PriceLevel: 1, IsOpen: false},
		{Name: "Luxury Dine", Mood: "date", Rating: 4.7, DistanceKm: 2.5, PriceLevel: 4, IsOpen: true},
	}
	return NewTable(model.VariantNearby, "built-in", rows)
}
