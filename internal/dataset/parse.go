package dataset

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	errNegative  = errors.New("must not be negative")
	errNotFlag   = errors.New("not a yes/no value")
	errNotFinite = errors.New("must be a finite number")
)

// ParseFlag normalizes a boolean-like cell: yes/no, true/false, y/n, 1/0.
func ParseFlag(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "y", "true", "1":
		return true, nil
	case "no", "n", "false", "0":
		return false, nil
	default:
		return false, errNotFlag
	}
}

// ParseCost parses a non-negative cost. Thousands separators are accepted.
func ParseCost(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(s), ",", ""), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errNotFinite
	}
	if v < 0 {
		return 0, errNegative
	}
	return v, nil
}

// ParseRating parses a rating in [0, 5]. A "/5" suffix is accepted.
func ParseRating(s string) (float64, error) {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "/5"))
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errNotFinite
	}
	if v < 0 || v > 5 {
		return 0, fmt.Errorf("rating %v out of range [0, 5]", v)
	}
	return v, nil
}
