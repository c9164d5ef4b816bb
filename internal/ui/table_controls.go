package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type tableController interface {
	NextColumn()
	PrevColumn()
	JumpToColumn(number int) bool
	HideActiveColumn() bool
	ShowAllColumns()
	TableMeta() string
}

type column struct {
	key    string
	label  string
	width  int
	hidden bool
}

// columnSet is the column state shared by the list screens.
type columnSet struct {
	columns []column
	active  int
}

func (c *columnSet) apply(prefs TablePrefs) {
	hidden := make(map[string]bool, len(prefs.HiddenColumns))
	for _, k := range prefs.HiddenColumns {
		hidden[k] = true
	}
	for i := range c.columns {
		c.columns[i].hidden = hidden[c.columns[i].key]
	}
	if prefs.ActiveColumn != "" {
		for i, col := range c.columns {
			if col.key == prefs.ActiveColumn {
				c.active = i
				break
			}
		}
	}
	c.ensureVisibleActive()
}

func (c *columnSet) prefs() TablePrefs {
	var hidden []string
	for _, col := range c.columns {
		if col.hidden {
			hidden = append(hidden, col.key)
		}
	}
	return TablePrefs{HiddenColumns: hidden, ActiveColumn: c.columns[c.active].key}
}

func (c *columnSet) visibleIndexes() []int {
	var idxs []int
	for i, col := range c.columns {
		if !col.hidden {
			idxs = append(idxs, i)
		}
	}
	return idxs
}

func (c *columnSet) ensureVisibleActive() {
	if !c.columns[c.active].hidden {
		return
	}
	for i := range c.columns {
		if !c.columns[i].hidden {
			c.active = i
			return
		}
	}
	c.columns[0].hidden = false
	c.active = 0
}

func (c *columnSet) NextColumn() {
	start := c.active
	for {
		c.active = (c.active + 1) % len(c.columns)
		if !c.columns[c.active].hidden || c.active == start {
			return
		}
	}
}

func (c *columnSet) PrevColumn() {
	start := c.active
	for {
		c.active--
		if c.active < 0 {
			c.active = len(c.columns) - 1
		}
		if !c.columns[c.active].hidden || c.active == start {
			return
		}
	}
}

func (c *columnSet) JumpToColumn(number int) bool {
	if number < 1 || number > len(c.columns) {
		return false
	}
	idx := number - 1
	if c.columns[idx].hidden {
		return false
	}
	c.active = idx
	return true
}

func (c *columnSet) HideActiveColumn() bool {
	if len(c.visibleIndexes()) <= 1 {
		return false
	}
	c.columns[c.active].hidden = true
	c.ensureVisibleActive()
	return true
}

func (c *columnSet) ShowAllColumns() {
	for i := range c.columns {
		c.columns[i].hidden = false
	}
}

func (c *columnSet) TableMeta() string {
	return fmt.Sprintf("col %s", strings.ToUpper(c.columns[c.active].label))
}

// header renders the header and divider lines and returns the cell widths
// for the visible columns, stretched to fill width.
func (c *columnSet) header(width int) (string, []int) {
	visible := c.visibleIndexes()
	widths := make([]int, 0, len(visible))
	labels := make([]string, 0, len(visible))
	total := 0
	for _, idx := range visible {
		col := c.columns[idx]
		label := strings.ToUpper(col.label)
		if idx == c.active {
			label = "▸" + label
		}
		w := max(col.width+2, lipgloss.Width(label)+2)
		total += w
		widths = append(widths, w)
		labels = append(labels, label)
	}
	if extra := width - total - 2; extra > 0 && len(widths) > 0 {
		widths[len(widths)-1] += extra
		total += extra
	}

	head := renderTableRow(labels, widths, TableHeaderStyle)
	divider := BreadcrumbStyle.Render(strings.Repeat("─", total))
	return lipgloss.JoinVertical(lipgloss.Left, head, divider), widths
}

func renderTableRow(cells []string, widths []int, style lipgloss.Style) string {
	var parts []string
	for i, cell := range cells {
		if i >= len(widths) {
			continue
		}
		parts = append(parts, style.Width(widths[i]).Render(cell))
	}
	return lipgloss.JoinHorizontal(lipgloss.Left, parts...)
}

// cursor tracks the selected row and scroll offset of a list.
type cursor struct {
	pos      int
	offset   int
	viewport int
}

func (c *cursor) clamp(n int) {
	if n == 0 {
		c.pos, c.offset = 0, 0
		return
	}
	if c.pos >= n {
		c.pos = n - 1
	}
	if c.pos < 0 {
		c.pos = 0
	}
	if c.offset > c.pos {
		c.offset = c.pos
	}
}

func (c *cursor) height() int {
	if c.viewport <= 0 {
		return 10
	}
	return c.viewport
}

func (c *cursor) down(n int) {
	if c.pos < n-1 {
		c.pos++
		if c.pos >= c.offset+c.height() {
			c.offset++
		}
	}
}

func (c *cursor) up() {
	if c.pos > 0 {
		c.pos--
		if c.pos < c.offset {
			c.offset--
		}
	}
}

func (c *cursor) top() {
	c.pos, c.offset = 0, 0
}

func (c *cursor) bottom(n int) {
	if n == 0 {
		return
	}
	c.pos = n - 1
	if c.pos >= c.height() {
		c.offset = c.pos - c.height() + 1
	}
}
