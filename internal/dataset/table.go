// Package dataset loads the place table a session works on.
package dataset

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"mooddine/internal/model"
)

var (
	// ErrEmptyDataset is returned when a source has a header but no rows.
	ErrEmptyDataset = errors.New("dataset has no rows")
	// ErrMissingColumn is returned when a required CSV column is absent.
	ErrMissingColumn = errors.New("missing column")
)

// FieldError describes a malformed cell in a source file.
type FieldError struct {
	Line   int
	Column string
	Value  string
	Err    error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("line %d, column %q: invalid value %q: %v", e.Line, e.Column, e.Value, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

// Table is a read-only set of places. It is never mutated after NewTable.
type Table struct {
	variant model.Variant
	source  string
	rows    []model.Place
	maxCost float64
}

// NewTable builds a table from rows. The rows are copied.
func NewTable(variant model.Variant, source string, rows []model.Place) *Table {
	t := &Table{
		variant: variant,
		source:  source,
		rows:    append([]model.Place(nil), rows...),
	}
	for _, r := range t.rows {
		if r.Cost > t.maxCost {
			t.maxCost = r.Cost
		}
	}
	return t
}

// Variant returns the dataset shape the table was loaded from.
func (t *Table) Variant() model.Variant { return t.variant }

// Source describes where the rows came from.
func (t *Table) Source() string { return t.source }

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.rows) }

// Rows returns a copy of every row in load order.
func (t *Table) Rows() []model.Place {
	return append([]model.Place(nil), t.rows...)
}

// MaxCost returns the largest cost across the whole table.
func (t *Table) MaxCost() float64 { return t.maxCost }

// Moods returns the distinct non-empty moods in order of first appearance.
func (t *Table) Moods() []model.Mood {
	seen := map[model.Mood]bool{}
	var out []model.Mood
	for _, r := range t.rows {
		if r.Mood == "" || seen[r.Mood] {
			continue
		}
		seen[r.Mood] = true
		out = append(out, r.Mood)
	}
	return out
}

// Areas returns the distinct non-empty areas, sorted.
func (t *Table) Areas() []string {
	seen := map[string]bool{}
	var out []string
	for _, r := range t.rows {
		a := strings.TrimSpace(r.Area)
		if a == "" || seen[a] {
			continue
		}
		seen[a] = true
		out = append(out, a)
	}
	sort.Strings(out)
	return out
}

// Loader produces a table.
type Loader func() (*Table, error)

// Handle loads a table on first use and returns the same table afterwards.
type Handle struct {
	load  Loader
	once  sync.Once
	table *Table
	err   error
}

// NewHandle wraps load in a load-once handle.
func NewHandle(load Loader) *Handle {
	return &Handle{load: load}
}

// StaticHandle returns a handle over an already built table.
func StaticHandle(t *Table) *Handle {
	return NewHandle(func() (*Table, error) { return t, nil })
}

// Get returns the table, loading it on the first call. A failed load is
// not retried.
func (h *Handle) Get() (*Table, error) {
	h.once.Do(func() {
		h.table, h.err = h.load()
		if h.err == nil && h.table == nil {
			h.err = errors.New("loader returned no table")
		}
	})
	return h.table, h.err
}

// Open returns a handle for variant. Dining needs a CSV path; nearby
// ignores path and uses the built-in rows.
func Open(variant model.Variant, path string) (*Handle, error) {
	switch variant {
	case model.VariantNearby:
		return NewHandle(func() (*Table, error) { return Nearby(), nil }), nil
	case model.VariantDining:
		if strings.TrimSpace(path) == "" {
			return nil, errors.New("dining variant requires a CSV path")
		}
		return NewHandle(func() (*Table, error) { return LoadCSV(path) }), nil
	default:
		return nil, fmt.Errorf("unknown variant %q", variant)
	}
}
