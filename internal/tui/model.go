package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/existflow/mergeflow/internal/logger"
	"github.com/existflow/mergeflow/internal/model"
	"github.com/existflow/mergeflow/internal/query"
	"github.com/existflow/mergeflow/internal/store"
)

// Tab is one dashboard view
type Tab int

const (
	TabAll Tab = iota
	TabUrgent
	TabPerformance
	TabMyWork
	TabAvailable
	TabCompleted
)

func (t Tab) String() string {
	switch t {
	case TabAll:
		return "All"
	case TabUrgent:
		return "Urgent"
	case TabPerformance:
		return "Performance"
	case TabMyWork:
		return "My Work"
	case TabAvailable:
		return "New"
	case TabCompleted:
		return "Completed"
	}
	return "?"
}

// TabsFor returns the tabs shown to an identity
func TabsFor(id model.Identity) []Tab {
	if id.IsEditor() {
		return []Tab{TabMyWork, TabAvailable, TabCompleted, TabAll}
	}
	return []Tab{TabAll, TabUrgent, TabPerformance}
}

// defaultSort is the order a tab opens with
func (t Tab) defaultSort() query.Sort {
	if t == TabCompleted {
		return query.Sort{Key: query.SortCompletionDate, Direction: query.Descending}
	}
	return query.DefaultSort()
}

// Mode represents the current UI mode
type Mode int

const (
	ModeNormal Mode = iota
	ModeFilter
	ModeConfirmDelete
	ModeHelp
)

// Model is the main TUI model
type Model struct {
	store    *store.Store
	identity model.Identity

	// Derived data for the current tab
	tabs    []Tab
	tab     int
	rows    []model.Project
	perf    []query.PerformanceRow
	editors []model.Editor
	team    query.TeamStats
	mine    query.EditorStats
	urgent  int
	now     time.Time

	// UI state
	width  int
	height int
	mode   Mode
	cursor int

	// Input
	input textinput.Model

	// Filter and sort
	filterText   string
	statusFilter int // 0 = every status, otherwise 1 + index into model.Statuses()
	sort         query.Sort

	message string
}

// NewModel creates a new TUI model
func NewModel(s *store.Store, identity model.Identity) Model {
	logger.Info("Initializing TUI model", logger.F("identity", identity.String()))

	ti := textinput.New()
	ti.Placeholder = "Search id, name or editor..."
	ti.CharLimit = 128
	ti.Width = 40

	tabs := TabsFor(identity)
	m := Model{
		store:    s,
		identity: identity,
		tabs:     tabs,
		mode:     ModeNormal,
		input:    ti,
		sort:     tabs[0].defaultSort(),
	}
	m.loadData()
	logger.Debug("TUI model initialized",
		logger.F("tab", m.currentTab().String()),
		logger.F("rows", len(m.rows)))
	return m
}

func (m *Model) currentTab() Tab {
	return m.tabs[m.tab]
}

// filter builds the query filter from the search text and status cycle
func (m *Model) filter() query.Filter {
	f := query.Filter{Text: m.filterText}
	if m.statusFilter > 0 {
		f.Statuses = []model.Status{model.Statuses()[m.statusFilter-1]}
	}
	return f
}

func (m *Model) loadData() {
	m.now = m.store.Now()
	projects := m.store.Projects()
	roster := m.store.Roster()
	m.editors = m.store.ListEditors()

	m.team = query.ComputeTeamStats(projects, m.now)
	m.urgent = query.Urgent(projects, m.now, 0).Total()
	if m.identity.IsEditor() {
		m.mine = query.ComputeEditorStats(projects, m.identity.EditorID, m.now)
	}

	var base []model.Project
	switch m.currentTab() {
	case TabPerformance:
		m.perf = query.Performance(m.editors, projects, m.now)
		m.rows = nil
		m.cursor = 0
		return
	case TabUrgent:
		base = query.Urgent(projects, m.now, 0).Top
	case TabMyWork:
		base = query.MyActiveWork(projects, m.identity.EditorID)
	case TabAvailable:
		base = query.Available(projects)
	case TabCompleted:
		base = query.MyCompleted(projects, m.identity.EditorID)
	default:
		base = projects
	}

	m.rows = query.Table(base, m.filter(), m.sort, roster)
	if m.cursor >= len(m.rows) {
		m.cursor = max(len(m.rows)-1, 0)
	}
}

func (m *Model) currentProject() *model.Project {
	if m.cursor < len(m.rows) {
		return &m.rows[m.cursor]
	}
	return nil
}

func (m *Model) editorName(id *string) string {
	name, ok := m.store.Roster().Name(id)
	if !ok {
		return "—"
	}
	return name
}
