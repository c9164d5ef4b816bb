package ui

import (
	"fmt"
	"math"
	"strings"

	"mooddine/internal/config"
	"mooddine/internal/filter"
	"mooddine/internal/model"
	"mooddine/internal/util"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// budgetFloor is the lowest budget the slider offers.
const budgetFloor = 100

type controlKind int

const (
	controlMood controlKind = iota
	controlArea
	controlBudget
	controlRating
	controlOnline
	controlBooking
	controlQuery
)

var choices = []model.Choice{model.ChoiceAll, model.ChoiceYes, model.ChoiceNo}

// ControlsModel holds the selector and slider state of the recommend screen.
type ControlsModel struct {
	kinds   []controlKind
	focused int

	moods   []model.Mood
	areas   []string
	moodIdx int
	areaIdx int

	budgetMin  float64
	budgetMax  float64
	budgetStep float64
	budget     float64

	ratingTenths int
	online       model.Choice
	booking      model.Choice
	query        textinput.Model
}

// NewControlsModel builds the controls for a variant. Nearby only offers the
// mood selector.
func NewControlsModel(variant model.Variant, moods []model.Mood, areas []string, maxCost, step float64) *ControlsModel {
	query := textinput.New()
	query.Placeholder = "name contains…"
	query.CharLimit = 60
	query.Prompt = ""

	m := &ControlsModel{
		moods:      append([]model.Mood(nil), moods...),
		areas:      append([]string(nil), areas...),
		budgetMin:  math.Min(budgetFloor, maxCost),
		budgetMax:  maxCost,
		budgetStep: step,
		budget:     maxCost,
		query:      query,
	}
	if m.budgetStep <= 0 {
		m.budgetStep = 50
	}

	m.kinds = []controlKind{controlMood}
	if variant == model.VariantDining {
		if len(m.areas) > 0 {
			m.kinds = append(m.kinds, controlArea)
		}
		m.kinds = append(m.kinds, controlBudget, controlRating, controlOnline, controlBooking, controlQuery)
	}
	return m
}

func (m *ControlsModel) has(k controlKind) bool {
	for _, kind := range m.kinds {
		if kind == k {
			return true
		}
	}
	return false
}

// Criteria returns the filter criteria for the current control positions.
func (m *ControlsModel) Criteria() filter.Criteria {
	var c filter.Criteria
	if len(m.moods) > 0 {
		c.Mood = m.moods[m.moodIdx]
	}
	if m.has(controlArea) {
		c.Area = m.areas[m.areaIdx]
	}
	if m.has(controlBudget) {
		c.MaxCost = m.budget
	}
	if m.has(controlRating) {
		c.MinRating = float64(m.ratingTenths) / 10
	}
	if m.has(controlOnline) {
		c.OnlineOrder = m.online
	}
	if m.has(controlBooking) {
		c.TableBooking = m.booking
	}
	if m.has(controlQuery) {
		c.Query = m.query.Value()
	}
	return c
}

// Next moves focus to the next control.
func (m *ControlsModel) Next() {
	m.focused = (m.focused + 1) % len(m.kinds)
}

// Prev moves focus to the previous control.
func (m *ControlsModel) Prev() {
	m.focused--
	if m.focused < 0 {
		m.focused = len(m.kinds) - 1
	}
}

// FocusedIsQuery reports whether the text query control has focus.
func (m *ControlsModel) FocusedIsQuery() bool {
	return m.kinds[m.focused] == controlQuery
}

// Increase moves the focused control one step up. It reports whether the
// value changed.
func (m *ControlsModel) Increase() bool { return m.step(1) }

// Decrease moves the focused control one step down.
func (m *ControlsModel) Decrease() bool { return m.step(-1) }

func (m *ControlsModel) step(dir int) bool {
	switch m.kinds[m.focused] {
	case controlMood:
		return cycle(&m.moodIdx, len(m.moods), dir)
	case controlArea:
		return cycle(&m.areaIdx, len(m.areas), dir)
	case controlBudget:
		next := m.budget + float64(dir)*m.budgetStep
		next = math.Max(m.budgetMin, math.Min(m.budgetMax, next))
		changed := next != m.budget
		m.budget = next
		return changed
	case controlRating:
		next := max(0, min(50, m.ratingTenths+dir))
		changed := next != m.ratingTenths
		m.ratingTenths = next
		return changed
	case controlOnline:
		return cycleChoice(&m.online, dir)
	case controlBooking:
		return cycleChoice(&m.booking, dir)
	}
	return false
}

func cycle(idx *int, n, dir int) bool {
	if n <= 1 {
		return false
	}
	*idx = ((*idx+dir)%n + n) % n
	return true
}

func cycleChoice(c *model.Choice, dir int) bool {
	i := int(*c)
	cycle(&i, len(choices), dir)
	*c = choices[i]
	return true
}

// StartQuery focuses the text input.
func (m *ControlsModel) StartQuery() tea.Cmd {
	return m.query.Focus()
}

// StopQuery blurs the text input.
func (m *ControlsModel) StopQuery() {
	m.query.Blur()
}

// QueryInput exposes the text input for key handling.
func (m *ControlsModel) QueryInput() *textinput.Model {
	return &m.query
}

// ApplyDefaults positions the controls from config defaults.
func (m *ControlsModel) ApplyDefaults(d config.Defaults) {
	m.applyPrefs(CriteriaPrefs{
		Mood:         d.Mood,
		Area:         d.Area,
		MaxCost:      d.MaxCost,
		MinRating:    d.MinRating,
		OnlineOrder:  d.OnlineOrder,
		TableBooking: d.TableBooking,
	})
}

// ApplyPrefs restores saved control positions. Values no longer offered by
// the table are ignored.
func (m *ControlsModel) ApplyPrefs(p CriteriaPrefs) {
	m.applyPrefs(p)
	m.query.SetValue(p.Query)
}

func (m *ControlsModel) applyPrefs(p CriteriaPrefs) {
	for i, md := range m.moods {
		if strings.EqualFold(string(md), p.Mood) {
			m.moodIdx = i
		}
	}
	for i, a := range m.areas {
		if strings.EqualFold(a, p.Area) {
			m.areaIdx = i
		}
	}
	if p.MaxCost > 0 {
		m.budget = math.Max(m.budgetMin, math.Min(m.budgetMax, p.MaxCost))
	}
	m.ratingTenths = max(0, min(50, int(math.Round(p.MinRating*10))))
	m.online = model.ParseChoice(p.OnlineOrder)
	m.booking = model.ParseChoice(p.TableBooking)
}

// Prefs returns the control positions for persistence.
func (m *ControlsModel) Prefs() CriteriaPrefs {
	c := m.Criteria()
	return CriteriaPrefs{
		Mood:         string(c.Mood),
		Area:         c.Area,
		MaxCost:      c.MaxCost,
		MinRating:    c.MinRating,
		OnlineOrder:  strings.ToLower(m.online.String()),
		TableBooking: strings.ToLower(m.booking.String()),
		Query:        m.query.Value(),
	}
}

// View renders the control panel.
func (m *ControlsModel) View(width int, active bool) string {
	lines := make([]string, 0, len(m.kinds))
	for i, k := range m.kinds {
		label, value := m.render(k)
		labelStyle := ControlLabelStyle
		if active && i == m.focused {
			labelStyle = ControlFocusedStyle
			label = "▸ " + label
		} else {
			label = "  " + label
		}
		lines = append(lines, labelStyle.Render(label)+ControlValueStyle.Render(value))
	}

	style := PanelStyle
	if active {
		style = ActivePanelStyle
	}
	return style.Width(max(20, width-2)).Render(strings.Join(lines, "\n"))
}

func (m *ControlsModel) render(k controlKind) (string, string) {
	switch k {
	case controlMood:
		if len(m.moods) == 0 {
			return "Mood", "—"
		}
		return "Mood", selector(string(m.moods[m.moodIdx]))
	case controlArea:
		return "Area", selector(m.areas[m.areaIdx])
	case controlBudget:
		return "Budget", slider(m.budget-m.budgetMin, m.budgetMax-m.budgetMin) + " " + util.FormatCost(m.budget)
	case controlRating:
		return "Min rating", slider(float64(m.ratingTenths), 50) + " " + fmt.Sprintf("%.1f", float64(m.ratingTenths)/10)
	case controlOnline:
		return "Online order", selector(m.online.String())
	case controlBooking:
		return "Table booking", selector(m.booking.String())
	case controlQuery:
		return "Name", m.query.View()
	}
	return "", ""
}

func selector(v string) string {
	return "‹ " + v + " ›"
}

const sliderWidth = 20

func slider(v, span float64) string {
	pos := sliderWidth
	if span > 0 {
		pos = int(math.Round(v / span * sliderWidth))
	}
	pos = max(0, min(sliderWidth, pos))
	return lipgloss.NewStyle().Foreground(ColorAccent).Render(strings.Repeat("━", pos)+"●") +
		BreadcrumbStyle.Render(strings.Repeat("─", sliderWidth-pos))
}
