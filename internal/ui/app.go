package ui

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"mooddine/internal/config"
	"mooddine/internal/dataset"
	"mooddine/internal/db"
	"mooddine/internal/model"
	"mooddine/internal/recommend"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// tableLoadedMsg carries the base table once the handle has resolved it.
type tableLoadedMsg struct {
	table *dataset.Table
}

// Model is the root Bubble Tea model.
type Model struct {
	handle *dataset.Handle
	engine *recommend.Engine
	db     *sql.DB
	cfg    config.Config

	screen model.Screen
	mode   model.Mode
	pane   model.Pane
	gState GState

	width  int
	height int

	error       string
	info        string
	showingHelp bool
	columnJump  bool
	fatal       error

	controls  *ControlsModel
	results   *ResultsModel
	shortlist *ShortlistModel

	keys      KeyMap
	inputKeys InputKeyMap
	prefs     UIPreferences
}

// New creates a new root model. A nil database disables the shortlist.
func New(handle *dataset.Handle, database *sql.DB, cfg config.Config) Model {
	return Model{
		handle:    handle,
		db:        database,
		cfg:       cfg,
		screen:    model.ScreenRecommend,
		mode:      model.ModeNav,
		pane:      model.PaneControls,
		gState:    GStateIdle,
		keys:      DefaultKeyMap(),
		inputKeys: DefaultInputKeyMap(),
		prefs:     loadUIPreferences(cfg.Storage.PrefsPath),
	}
}

// Err returns the error that ended the session, if any.
func (m Model) Err() error { return m.fatal }

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(loadTableCmd(m.handle), loadShortlistCmd(m.db))
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		if m.mode == model.ModeInsert {
			return m.handleInsertMode(msg)
		}

		if m.columnJump {
			if msg.String() == "esc" {
				m.columnJump = false
				m.info = ""
				return m, nil
			}
			if n, err := strconv.Atoi(msg.String()); err == nil {
				table := m.currentTable()
				if table != nil && table.JumpToColumn(n) {
					m.columnJump = false
					m.info = fmt.Sprintf("Jumped to column %d", n)
					m.persistPrefs()
					return m, nil
				}
				m.info = fmt.Sprintf("Column %d unavailable", n)
				return m, nil
			}
		}

		if key.Matches(msg, m.keys.Help) {
			m.showingHelp = !m.showingHelp
			return m, nil
		}

		if m.showingHelp {
			if msg.String() == "esc" {
				m.showingHelp = false
			}
			return m, nil
		}

		return m.handleNavMode(msg)

	case tableLoadedMsg:
		m.setTable(msg.table)
		return m, nil

	case model.FatalMsg:
		m.fatal = msg.Err
		log.Printf("[ui] fatal: %v", msg.Err)
		return m, tea.Quit

	case model.ErrorMsg:
		if errors.Is(msg.Err, db.ErrAlreadyShortlisted) {
			m.info = "Already on your shortlist"
			m.error = ""
			return m, nil
		}
		m.error = msg.Err.Error()
		return m, nil

	case model.ShortlistLoadedMsg:
		m.shortlist = NewShortlistModel(msg.Entries)
		m.shortlist.ApplyPrefs(m.prefs.Shortlist)
		return m, nil

	case model.ShortlistSavedMsg:
		log.Printf("[ui] shortlisted %q (id %d)", msg.Name, msg.ID)
		m.info = fmt.Sprintf("Added %s to shortlist", msg.Name)
		m.error = ""
		return m, loadShortlistCmd(m.db)

	case model.DeleteShortlistMsg:
		log.Printf("[ui] removed shortlist entry %d", msg.ID)
		m.info = fmt.Sprintf("Removed %s from shortlist", msg.Deleted.Name)
		m.error = ""
		return m, loadShortlistCmd(m.db)

	default:
		if m.mode == model.ModeInsert && m.controls != nil {
			in := m.controls.QueryInput()
			var cmd tea.Cmd
			*in, cmd = in.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

// setTable builds the engine and controls for a freshly loaded table.
func (m *Model) setTable(table *dataset.Table) {
	var opts []recommend.Option
	if table.Variant() == model.VariantDining {
		opts = append(opts, recommend.WithLimit(m.cfg.Display.TopN))
	}
	m.engine = recommend.New(table, opts...)
	log.Printf("[ui] table loaded: variant=%s rows=%d max_cost=%.0f source=%s",
		table.Variant(), table.Len(), table.MaxCost(), table.Source())

	m.controls = m.newControls(true)
	m.results = NewResultsModel(table.Variant())
	m.results.ApplyPrefs(m.prefs.Results)
	m.evaluate()
}

func (m *Model) newControls(restore bool) *ControlsModel {
	table := m.engine.Table()
	c := NewControlsModel(table.Variant(), m.engine.Moods(), table.Areas(), table.MaxCost(), m.cfg.Display.BudgetStep)
	c.ApplyDefaults(m.cfg.Defaults)
	if !restore {
		return c
	}
	if p := m.variantPrefs(); p != nil {
		c.ApplyPrefs(*p)
	}
	return c
}

func (m *Model) variantPrefs() *CriteriaPrefs {
	if m.engine.Table().Variant() == model.VariantDining {
		return m.prefs.Dining
	}
	return m.prefs.Nearby
}

// evaluate re-runs the pipeline for the current control positions.
func (m *Model) evaluate() {
	if m.engine == nil || m.controls == nil {
		return
	}
	m.results.SetResult(m.engine.Recommend(m.controls.Criteria()))
}

func (m *Model) persistPrefs() {
	if m.controls != nil {
		p := m.controls.Prefs()
		if m.engine.Table().Variant() == model.VariantDining {
			m.prefs.Dining = &p
		} else {
			m.prefs.Nearby = &p
		}
	}
	if m.results != nil {
		m.prefs.Results = m.results.Prefs()
	}
	if m.shortlist != nil {
		m.prefs.Shortlist = m.shortlist.Prefs()
	}
	if err := saveUIPreferences(m.cfg.Storage.PrefsPath, m.prefs); err != nil {
		log.Printf("[prefs] save failed: %v", err)
	}
}

// View renders the UI.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if m.showingHelp {
		return RenderFullHelp(m.width, m.height)
	}

	// Header 2 lines, tabs 2 lines, footer 2 lines.
	contentHeight := m.height - 6
	var content string
	var breadcrumbParts []string

	switch m.screen {
	case model.ScreenRecommend:
		breadcrumbParts = []string{"Recommend"}
		if m.controls == nil {
			content = EmptyStateStyle.Render("Loading places…")
			break
		}
		if s := m.results.summary(); s != "" {
			breadcrumbParts = append(breadcrumbParts, s)
		}
		panel := m.controls.View(m.width, m.pane == model.PaneControls)
		table := m.results.View(m.width, contentHeight-lipgloss.Height(panel), m.pane == model.PaneResults)
		content = lipgloss.JoinVertical(lipgloss.Left, panel, table)
	case model.ScreenShortlist:
		breadcrumbParts = []string{"Shortlist"}
		switch {
		case m.db == nil:
			content = EmptyStateStyle.Render("Shortlist storage is unavailable.")
		case m.shortlist == nil:
			content = EmptyStateStyle.Render("Loading shortlist…")
		default:
			content = m.shortlist.View(m.width, contentHeight)
		}
	}

	header := renderHeader(breadcrumbParts, m.width)
	tabs := renderTabs(m.screen, m.width)
	footer := RenderHelp(m.screen, m.mode, m.pane, m.width)

	parts := []string{header, tabs}
	if m.error != "" {
		parts = append(parts, ErrorStyle.Width(m.width).Render("Error: "+m.error))
		contentHeight--
	}
	if m.info != "" {
		parts = append(parts, SuccessStyle.Width(m.width).Render(m.info))
		contentHeight--
	}
	content = lipgloss.NewStyle().
		Width(m.width).
		Height(max(0, contentHeight)).
		Render(content)
	parts = append(parts, content, footer)
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func renderTabs(screen model.Screen, width int) string {
	tabs := []struct {
		name   string
		screen model.Screen
	}{
		{"Recommend", model.ScreenRecommend},
		{"Shortlist", model.ScreenShortlist},
	}

	var tabStrings []string
	for _, tab := range tabs {
		tabStyle := lipgloss.NewStyle().
			Padding(0, 2).
			Foreground(ColorMuted)
		if screen == tab.screen {
			tabStyle = tabStyle.
				Foreground(ColorText).
				Bold(true).
				Underline(true)
		}
		tabStrings = append(tabStrings, tabStyle.Render(tab.name))
	}
	tabBar := lipgloss.JoinHorizontal(lipgloss.Left, tabStrings...)

	return lipgloss.NewStyle().
		Width(width).
		Padding(0, 2).
		BorderBottom(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(ColorMuted).
		Render(tabBar)
}

func renderHeader(breadcrumbParts []string, width int) string {
	title := HeaderStyle.Render("mooddine")
	var breadcrumb string
	if len(breadcrumbParts) > 0 {
		separator := BreadcrumbStyle.Render(" › ")
		parts := make([]string, len(breadcrumbParts))
		for i, part := range breadcrumbParts {
			if i == len(breadcrumbParts)-1 {
				parts[i] = BreadcrumbActiveStyle.Render(part)
			} else {
				parts[i] = BreadcrumbStyle.Render(part)
			}
		}
		breadcrumb = separator + strings.Join(parts, separator)
	}
	left := "  " + title + breadcrumb

	right := BreadcrumbStyle.Render(time.Now().Format("Mon 02 Jan")) + "  "

	padding := max(0, width-lipgloss.Width(left)-lipgloss.Width(right))
	return TitleStyle.Width(width).Render(left + strings.Repeat(" ", padding) + right)
}

// handleNavMode handles navigation mode input.
func (m Model) handleNavMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "g" {
		if m.gState == GStateFirstG {
			m.gState = GStateIdle
			if t := m.currentList(); t != nil {
				t.JumpToTop()
			}
			return m, nil
		}
		m.gState = GStateFirstG
		return m, nil
	}
	m.gState = GStateIdle

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.persistPrefs()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Recommend):
		m.screen = model.ScreenRecommend
		return m, nil
	case key.Matches(msg, m.keys.Shortlist):
		m.screen = model.ScreenShortlist
		return m, nil
	}

	if m.screen == model.ScreenShortlist {
		return m.handleShortlistNav(msg)
	}
	if m.controls == nil {
		return m, nil
	}
	if m.pane == model.PaneResults {
		return m.handleResultsNav(msg)
	}
	return m.handleControlsNav(msg)
}

func (m Model) handleControlsNav(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Down):
		m.controls.Next()
	case key.Matches(msg, m.keys.Up):
		m.controls.Prev()
	case key.Matches(msg, m.keys.Increase):
		if m.controls.Increase() {
			m.evaluate()
			m.persistPrefs()
		}
	case key.Matches(msg, m.keys.Decrease):
		if m.controls.Decrease() {
			m.evaluate()
			m.persistPrefs()
		}
	case key.Matches(msg, m.keys.Select):
		if m.controls.FocusedIsQuery() {
			m.mode = model.ModeInsert
			return m, m.controls.StartQuery()
		}
	case key.Matches(msg, m.keys.Reset):
		m.controls = m.newControls(false)
		m.evaluate()
		m.persistPrefs()
		m.info = "Filters reset"
	case key.Matches(msg, m.keys.SwitchPane):
		m.pane = model.PaneResults
	}
	return m, nil
}

func (m Model) handleResultsNav(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if handled := m.handleTableKeys(msg, m.results); handled {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Down):
		m.results.MoveDown()
	case key.Matches(msg, m.keys.Up):
		m.results.MoveUp()
	case key.Matches(msg, m.keys.Bottom):
		m.results.JumpToBottom()
	case key.Matches(msg, m.keys.Back):
		m.pane = model.PaneControls
	case key.Matches(msg, m.keys.Add):
		if m.db == nil {
			m.error = "shortlist storage is unavailable"
			return m, nil
		}
		if r, ok := m.results.Selected(); ok {
			return m, addShortlistCmd(m.db, model.ShortlistFromRecommendation(r))
		}
	}
	return m, nil
}

func (m Model) handleShortlistNav(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Back) {
		m.screen = model.ScreenRecommend
		return m, nil
	}
	if m.shortlist == nil {
		return m, nil
	}
	if handled := m.handleTableKeys(msg, m.shortlist); handled {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Down):
		m.shortlist.CursorDown()
	case key.Matches(msg, m.keys.Up):
		m.shortlist.CursorUp()
	case key.Matches(msg, m.keys.Bottom):
		m.shortlist.JumpToBottom()
	case key.Matches(msg, m.keys.Delete):
		if e := m.shortlist.SelectedEntry(); e != nil {
			return m, deleteShortlistCmd(m.db, *e)
		}
	}
	return m, nil
}

// handleTableKeys applies the column keys shared by both tables.
func (m *Model) handleTableKeys(msg tea.KeyMsg, t tableController) bool {
	switch {
	case key.Matches(msg, m.keys.NextColumn):
		t.NextColumn()
	case key.Matches(msg, m.keys.PrevColumn):
		t.PrevColumn()
	case key.Matches(msg, m.keys.ColumnJump):
		m.columnJump = true
		m.info = "Jump to column: press 1-9 (esc to cancel)"
		return true
	case key.Matches(msg, m.keys.HideColumn):
		if !t.HideActiveColumn() {
			m.info = "Cannot hide last visible column"
			return true
		}
		m.info = "Column hidden"
	case key.Matches(msg, m.keys.ShowColumns):
		t.ShowAllColumns()
		m.info = "All columns shown"
	default:
		return false
	}
	m.persistPrefs()
	return true
}

// handleInsertMode routes keys to the name query input.
func (m Model) handleInsertMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.controls == nil {
		m.mode = model.ModeNav
		return m, nil
	}
	switch {
	case key.Matches(msg, m.inputKeys.Done):
		m.controls.StopQuery()
		m.mode = model.ModeNav
		m.persistPrefs()
		return m, nil
	case key.Matches(msg, m.inputKeys.Cancel):
		m.controls.QueryInput().SetValue("")
		m.controls.StopQuery()
		m.mode = model.ModeNav
		m.evaluate()
		m.persistPrefs()
		return m, nil
	}

	in := m.controls.QueryInput()
	before := in.Value()
	var cmd tea.Cmd
	*in, cmd = in.Update(msg)
	if in.Value() != before {
		m.evaluate()
	}
	return m, cmd
}

func (m *Model) currentTable() tableController {
	switch m.screen {
	case model.ScreenRecommend:
		if m.results != nil && m.pane == model.PaneResults {
			return m.results
		}
	case model.ScreenShortlist:
		if m.shortlist != nil {
			return m.shortlist
		}
	}
	return nil
}

type topJumper interface {
	JumpToTop()
}

func (m *Model) currentList() topJumper {
	if t, ok := m.currentTable().(topJumper); ok {
		return t
	}
	return nil
}

// Commands

func loadTableCmd(handle *dataset.Handle) tea.Cmd {
	return func() tea.Msg {
		table, err := handle.Get()
		if err != nil {
			return model.FatalMsg{Err: err}
		}
		return tableLoadedMsg{table: table}
	}
}

func loadShortlistCmd(database *sql.DB) tea.Cmd {
	if database == nil {
		return nil
	}
	return func() tea.Msg {
		entries, err := db.ListShortlist(database)
		if err != nil {
			return model.ErrorMsg{Err: err}
		}
		return model.ShortlistLoadedMsg{Entries: entries}
	}
}

func addShortlistCmd(database *sql.DB, e model.NewShortlistEntry) tea.Cmd {
	return func() tea.Msg {
		id, err := db.AddShortlist(database, e)
		if err != nil {
			return model.ErrorMsg{Err: err}
		}
		return model.ShortlistSavedMsg{ID: id, Name: e.Name}
	}
}

func deleteShortlistCmd(database *sql.DB, e model.ShortlistEntry) tea.Cmd {
	return func() tea.Msg {
		if err := db.DeleteShortlist(database, e.ID); err != nil {
			return model.ErrorMsg{Err: fmt.Errorf("failed to remove %s: %w", e.Name, err)}
		}
		return model.DeleteShortlistMsg{ID: e.ID, Deleted: e}
	}
}
