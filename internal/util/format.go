package util

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// FormatCost formats a cost for two with thousands separators, e.g. "₹1,500".
func FormatCost(cost float64) string {
	return "₹" + humanize.Comma(int64(math.Round(cost)))
}

// FormatDistance formats a distance in kilometres.
func FormatDistance(km float64) string {
	return strconv.FormatFloat(km, 'f', 1, 64) + " km"
}

// FormatPriceLevel formats a price tier as repeated currency signs.
func FormatPriceLevel(level int) string {
	if level <= 0 {
		return "—"
	}
	return strings.Repeat("₹", level)
}

// FormatRating formats a rating as "4.6★".
func FormatRating(rating float64) string {
	return formatRatingNumber(rating) + "★"
}

// FormatRatingStars formats a 0-5 rating as stars (e.g., "★★★★☆").
func FormatRatingStars(rating float64) string {
	stars := int(math.Round(rating))
	if stars < 0 {
		stars = 0
	}
	if stars > 5 {
		stars = 5
	}
	return strings.Repeat("★", stars) + strings.Repeat("☆", 5-stars)
}

// FormatScore formats a score with three decimals.
func FormatScore(score float64) string {
	return fmt.Sprintf("%.3f", score)
}

// FormatFlag formats a facility flag as Yes or No.
func FormatFlag(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

// FormatAddedAt formats when a shortlist entry was added, e.g. "3 days ago".
func FormatAddedAt(t time.Time) string {
	if t.IsZero() {
		return "—"
	}
	return humanize.Time(t)
}

func formatRatingNumber(v float64) string {
	// Keep one decimal at most, but avoid trailing .0 for whole values.
	s := strconv.FormatFloat(v, 'f', 1, 64)
	s = strings.TrimSuffix(s, ".0")
	return s
}

// TruncateString truncates a string to maxLen and adds "..." if needed.
func TruncateString(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen < 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}
