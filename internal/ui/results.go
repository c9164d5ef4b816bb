package ui

import (
	"fmt"
	"strings"

	"mooddine/internal/model"
	"mooddine/internal/recommend"
	"mooddine/internal/util"

	"github.com/charmbracelet/lipgloss"
)

// EmptyResultText is shown when the filters leave no rows.
const EmptyResultText = "No places match your filters. Try widening the budget or lowering the rating."

// ResultsModel renders a recommendation result as a table.
type ResultsModel struct {
	columnSet
	cursor

	variant model.Variant
	result  recommend.Result
}

func nearbyColumns() []column {
	return []column{
		{key: "name", label: "Place", width: 20},
		{key: "mood", label: "Mood", width: 10},
		{key: "rating", label: "Rating", width: 7},
		{key: "distance", label: "Distance", width: 9},
		{key: "price", label: "Price", width: 6},
		{key: "open", label: "Open", width: 5},
		{key: "score", label: "Score", width: 7},
	}
}

func diningColumns() []column {
	return []column{
		{key: "name", label: "Restaurant", width: 24},
		{key: "category", label: "Type", width: 16},
		{key: "mood", label: "Mood", width: 12},
		{key: "rating", label: "Rating", width: 7},
		{key: "votes", label: "Votes", width: 6},
		{key: "cost", label: "Cost", width: 8},
		{key: "area", label: "Area", width: 14},
		{key: "online", label: "Online", width: 6},
		{key: "booking", label: "Booking", width: 7},
		{key: "score", label: "Score", width: 7},
	}
}

// NewResultsModel builds an empty results table for a variant.
func NewResultsModel(variant model.Variant) *ResultsModel {
	cols := nearbyColumns()
	if variant == model.VariantDining {
		cols = diningColumns()
	}
	return &ResultsModel{columnSet: columnSet{columns: cols}, variant: variant}
}

// ApplyPrefs restores hidden columns and the active column.
func (m *ResultsModel) ApplyPrefs(p TablePrefs) { m.apply(p) }

// Prefs returns the table preferences for persistence.
func (m *ResultsModel) Prefs() TablePrefs { return m.prefs() }

// SetResult replaces the displayed result, keeping the cursor in range.
func (m *ResultsModel) SetResult(r recommend.Result) {
	m.result = r
	m.clamp(len(r.Items))
}

// Result returns the displayed result.
func (m *ResultsModel) Result() recommend.Result { return m.result }

// Selected returns the row under the cursor.
func (m *ResultsModel) Selected() (model.Recommendation, bool) {
	if m.pos < 0 || m.pos >= len(m.result.Items) {
		return model.Recommendation{}, false
	}
	return m.result.Items[m.pos], true
}

func (m *ResultsModel) MoveDown()     { m.down(len(m.result.Items)) }
func (m *ResultsModel) MoveUp()       { m.up() }
func (m *ResultsModel) JumpToTop()    { m.top() }
func (m *ResultsModel) JumpToBottom() { m.bottom(len(m.result.Items)) }
func (m *ResultsModel) Len() int      { return len(m.result.Items) }

func (m *ResultsModel) cell(r model.Recommendation, key string) string {
	switch key {
	case "name":
		return r.Name
	case "category":
		return r.Category
	case "mood":
		return string(r.Mood)
	case "rating":
		return util.FormatRating(r.Rating)
	case "votes":
		return fmt.Sprintf("%d", r.Votes)
	case "cost":
		return util.FormatCost(r.Cost)
	case "distance":
		return util.FormatDistance(r.DistanceKm)
	case "price":
		return util.FormatPriceLevel(r.PriceLevel)
	case "open":
		return util.FormatFlag(r.IsOpen)
	case "area":
		return r.Area
	case "online":
		return util.FormatFlag(r.OnlineOrder)
	case "booking":
		return util.FormatFlag(r.TableBooking)
	case "score":
		return util.FormatScore(r.Score)
	}
	return ""
}

// View renders the table, the empty warning, or the pending placeholder.
func (m *ResultsModel) View(width, height int, active bool) string {
	switch m.result.Status {
	case recommend.StatusPending:
		return EmptyStateStyle.Render("Loading places…")
	case recommend.StatusEmpty:
		return WarningStyle.Render(EmptyResultText)
	}

	m.viewport = max(1, height-4)
	header, widths := m.header(width)
	visible := m.visibleIndexes()

	lines := []string{header}
	end := min(len(m.result.Items), m.offset+m.viewport)
	for i := m.offset; i < end; i++ {
		r := m.result.Items[i]
		cells := make([]string, 0, len(visible))
		for j, idx := range visible {
			cells = append(cells, util.TruncateString(m.cell(r, m.columns[idx].key), widths[j]-2))
		}
		style := NormalRowStyle
		if active && i == m.pos {
			style = SelectedRowStyle.Padding(0, 1)
		}
		lines = append(lines, renderTableRow(cells, widths, style))
	}

	status := fmt.Sprintf("%d of %d places match · showing top %d · %s",
		m.result.Matched, m.result.Total, len(m.result.Items), m.TableMeta())
	lines = append(lines, StatusBarStyle.Render(status))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// summary is a one-line description of the current criteria.
func (m *ResultsModel) summary() string {
	c := m.result.Criteria
	parts := []string{string(c.Mood)}
	if c.Area != "" {
		parts = append(parts, c.Area)
	}
	if c.MaxCost > 0 {
		parts = append(parts, "≤ "+util.FormatCost(c.MaxCost))
	}
	if c.MinRating > 0 {
		parts = append(parts, "≥ "+util.FormatRating(c.MinRating))
	}
	return strings.Join(parts, " · ")
}
