package util

import (
	"testing"
	"time"
)

func TestFormatCost(t *testing.T) {
	tests := map[float64]string{0: "₹0", 250: "₹250", 1500: "₹1,500", 12000.4: "₹12,000"}
	for in, want := range tests {
		if got := FormatCost(in); got != want {
			t.Errorf("FormatCost(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatRating(t *testing.T) {
	if got := FormatRating(4.0); got != "4★" {
		t.Fatalf("got %q", got)
	}
	if got := FormatRating(4.65); got != "4.7★" && got != "4.6★" {
		t.Fatalf("got %q", got)
	}
	if got := FormatRatingStars(3.6); got != "★★★★☆" {
		t.Fatalf("got %q", got)
	}
}

func TestFormatPriceLevel(t *testing.T) {
	if got := FormatPriceLevel(3); got != "₹₹₹" {
		t.Fatalf("got %q", got)
	}
	if got := FormatPriceLevel(0); got != "—" {
		t.Fatalf("got %q", got)
	}
}

func TestFormatAddedAt(t *testing.T) {
	if got := FormatAddedAt(time.Time{}); got != "—" {
		t.Fatalf("got %q", got)
	}
	if got := FormatAddedAt(time.Now().Add(-3 * 24 * time.Hour)); got != "3 days ago" {
		t.Fatalf("got %q", got)
	}
}

func TestTruncateString(t *testing.T) {
	if got := TruncateString("Romantic Rooftop", 10); got != "Romanti..." {
		t.Fatalf("got %q", got)
	}
	if got := TruncateString("Toit", 10); got != "Toit" {
		t.Fatalf("got %q", got)
	}
	if got := TruncateString("Toit", 2); got != "To" {
		t.Fatalf("got %q", got)
	}
}
