package ui

import (
	"mooddine/internal/model"
	"mooddine/internal/util"

	"github.com/charmbracelet/lipgloss"
)

// ShortlistModel lists the places the user kept.
type ShortlistModel struct {
	columnSet
	cursor

	entries []model.ShortlistEntry
}

// NewShortlistModel builds the shortlist screen.
func NewShortlistModel(entries []model.ShortlistEntry) *ShortlistModel {
	return &ShortlistModel{
		entries: entries,
		columnSet: columnSet{columns: []column{
			{key: "name", label: "Name", width: 24},
			{key: "area", label: "Area", width: 14},
			{key: "mood", label: "Mood", width: 12},
			{key: "rating", label: "Rating", width: 7},
			{key: "cost", label: "Cost", width: 8},
			{key: "score", label: "Score", width: 7},
			{key: "added", label: "Added", width: 14},
		}},
	}
}

// ApplyPrefs restores hidden columns and the active column.
func (m *ShortlistModel) ApplyPrefs(p TablePrefs) { m.apply(p) }

// Prefs returns the table preferences for persistence.
func (m *ShortlistModel) Prefs() TablePrefs { return m.prefs() }

// SelectedEntry returns the entry under the cursor, or nil.
func (m *ShortlistModel) SelectedEntry() *model.ShortlistEntry {
	if m.pos < 0 || m.pos >= len(m.entries) {
		return nil
	}
	return &m.entries[m.pos]
}

func (m *ShortlistModel) CursorDown()   { m.down(len(m.entries)) }
func (m *ShortlistModel) CursorUp()     { m.up() }
func (m *ShortlistModel) JumpToTop()    { m.top() }
func (m *ShortlistModel) JumpToBottom() { m.bottom(len(m.entries)) }

func (m *ShortlistModel) cell(e model.ShortlistEntry, key string) string {
	switch key {
	case "name":
		return e.Name
	case "area":
		return e.Area
	case "mood":
		return string(e.Mood)
	case "rating":
		return util.FormatRating(e.Rating)
	case "cost":
		return util.FormatCost(e.Cost)
	case "score":
		return util.FormatScore(e.Score)
	case "added":
		return util.FormatAddedAt(e.CreatedAt)
	}
	return ""
}

// View renders the shortlist.
func (m *ShortlistModel) View(width, height int) string {
	if len(m.entries) == 0 {
		return EmptyStateStyle.Render("Your shortlist is empty. Press a on a recommendation to keep it.")
	}

	m.viewport = max(1, height-3)
	m.clamp(len(m.entries))
	header, widths := m.header(width)
	visible := m.visibleIndexes()

	lines := []string{header}
	end := min(len(m.entries), m.offset+m.viewport)
	for i := m.offset; i < end; i++ {
		cells := make([]string, 0, len(visible))
		for j, idx := range visible {
			cells = append(cells, util.TruncateString(m.cell(m.entries[i], m.columns[idx].key), widths[j]-2))
		}
		style := NormalRowStyle
		if i == m.pos {
			style = SelectedRowStyle.Padding(0, 1)
		}
		lines = append(lines, renderTableRow(cells, widths, style))
	}
	lines = append(lines, StatusBarStyle.Render(m.TableMeta()))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
