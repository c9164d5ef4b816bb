// Package recommend turns a loaded table and a set of criteria into a ranked
// list of places.
package recommend

import (
	"mooddine/internal/dataset"
	"mooddine/internal/filter"
	"mooddine/internal/model"
	"mooddine/internal/mood"
	"mooddine/internal/score"
)

// DefaultDiningLimit is how many dining rows are shown.
const DefaultDiningLimit = 10

// Status tells a caller whether a result has been evaluated and matched.
type Status int

const (
	// StatusPending is the zero value: nothing has been evaluated yet.
	StatusPending Status = iota
	// StatusEmpty means the criteria were applied and nothing matched.
	StatusEmpty
	// StatusReady means at least one row matched.
	StatusReady
)

func (s Status) String() string {
	switch s {
	case StatusEmpty:
		return "empty"
	case StatusReady:
		return "ready"
	default:
		return "pending"
	}
}

// Result is the outcome of one evaluation.
type Result struct {
	Status   Status
	Items    []model.Recommendation
	Matched  int // rows that passed the filters, before truncation
	Total    int // rows in the base table
	Criteria filter.Criteria
}

// Engine evaluates criteria against one table.
type Engine struct {
	table    *dataset.Table
	classify func(category string, cost float64) model.Mood
	scorer   score.Scorer
	limit    int
}

// Option configures an Engine.
type Option func(*Engine)

// WithLimit overrides how many rows are kept. Zero keeps all rows.
func WithLimit(n int) Option {
	return func(e *Engine) { e.limit = n }
}

// WithScorer overrides the scorer chosen for the table's variant.
func WithScorer(s score.Scorer) Option {
	return func(e *Engine) { e.scorer = s }
}

// New returns an engine for table. Nearby tables keep their mood column and
// are ranked in full; dining tables get derived moods, a budget scorer
// bound to the table's max cost, and a top-10 cut.
func New(table *dataset.Table, opts ...Option) *Engine {
	e := &Engine{table: table}
	switch table.Variant() {
	case model.VariantDining:
		e.classify = mood.Classify
		e.scorer = score.BudgetScorer{MaxCost: table.MaxCost()}
		e.limit = DefaultDiningLimit
	default:
		e.scorer = score.NearbyScorer{}
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Table returns the engine's base table.
func (e *Engine) Table() *dataset.Table { return e.table }

// Annotated returns the table rows with derived moods filled in.
func (e *Engine) Annotated() []model.Place {
	rows := e.table.Rows()
	if e.classify != nil {
		for i := range rows {
			rows[i].Mood = e.classify(rows[i].Category, rows[i].Cost)
		}
	}
	return rows
}

// Recommend runs classifier, filters, scorer and sort for c.
func (e *Engine) Recommend(c filter.Criteria) Result {
	matched := filter.Apply(e.Annotated(), c)
	res := Result{
		Status:   StatusEmpty,
		Items:    score.Rank(matched, e.scorer, e.limit),
		Matched:  len(matched),
		Total:    e.table.Len(),
		Criteria: c,
	}
	if len(res.Items) > 0 {
		res.Status = StatusReady
	}
	return res
}

// Moods returns the options for the mood selector.
func (e *Engine) Moods() []model.Mood {
	if e.classify != nil {
		return mood.Labels()
	}
	return e.table.Moods()
}
