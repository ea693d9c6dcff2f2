package tui

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/existflow/mergeflow/internal/logger"
	"github.com/existflow/mergeflow/internal/model"
	"github.com/existflow/mergeflow/internal/query"
	"github.com/existflow/mergeflow/internal/store"
)

// tickMsg is sent every minute so delayed and urgent flags follow the clock
type tickMsg time.Time

// Init initializes the model with a tick command
func (m Model) Init() tea.Cmd {
	return tickCmd()
}

func tickCmd() tea.Cmd {
	return tea.Every(time.Minute, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.loadData()
		return m, tickCmd()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case ModeFilter:
			return m.updateFilter(msg)
		case ModeConfirmDelete:
			return m.updateConfirmDelete(msg)
		case ModeHelp:
			m.mode = ModeNormal
			return m, nil
		}
		return m.handleNormalKeys(msg)
	}

	return m, nil
}

// handleNormalKeys handles key presses in normal mode
func (m Model) handleNormalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.message = ""

	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.Tab):
		m.switchTab(1)

	case key.Matches(msg, keys.PrevTab):
		m.switchTab(-1)

	case key.Matches(msg, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, keys.Down):
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}

	case key.Matches(msg, keys.GoTop):
		m.cursor = 0

	case key.Matches(msg, keys.GoBottom):
		m.cursor = max(len(m.rows)-1, 0)

	case key.Matches(msg, keys.Search):
		return m.startFilter()

	case key.Matches(msg, keys.SortKey):
		m.cycleSortKey()

	case key.Matches(msg, keys.SortDir):
		m.sort = m.sort.Toggle(m.sort.Key)
		m.loadData()
		m.message = fmt.Sprintf("Sorted by %s %s", m.sort.Key, m.sort.Direction)

	case key.Matches(msg, keys.Status):
		m.cycleStatusFilter()

	case key.Matches(msg, keys.Claim):
		m.handleClaim()

	case key.Matches(msg, keys.Done):
		m.handleToggleDone()

	case key.Matches(msg, keys.Pending):
		m.handleTogglePending()

	case key.Matches(msg, keys.Delete):
		if m.identity.IsEditor() {
			m.message = "Only the team leader can delete projects"
		} else if p := m.currentProject(); p != nil {
			m.mode = ModeConfirmDelete
		}

	case key.Matches(msg, keys.Escape):
		if m.filterText != "" || m.statusFilter != 0 {
			m.filterText = ""
			m.statusFilter = 0
			m.input.SetValue("")
			m.loadData()
			m.message = "Filter cleared"
		}

	case key.Matches(msg, keys.Refresh):
		m.handleRefresh()

	case key.Matches(msg, keys.Help):
		m.mode = ModeHelp
	}

	return m, nil
}

func (m *Model) switchTab(delta int) {
	m.tab = (m.tab + delta + len(m.tabs)) % len(m.tabs)
	m.cursor = 0
	m.sort = m.currentTab().defaultSort()
	m.loadData()
}

func (m *Model) cycleSortKey() {
	sortKeys := query.SortKeys()
	i := slices.Index(sortKeys, m.sort.Key)
	m.sort = query.Sort{Key: sortKeys[(i+1)%len(sortKeys)], Direction: query.Ascending}
	m.loadData()
	m.message = fmt.Sprintf("Sorted by %s %s", m.sort.Key, m.sort.Direction)
}

func (m *Model) cycleStatusFilter() {
	m.statusFilter = (m.statusFilter + 1) % (len(model.Statuses()) + 1)
	m.cursor = 0
	m.loadData()
	if m.statusFilter == 0 {
		m.message = "Showing every status"
		return
	}
	m.message = "Showing " + string(model.Statuses()[m.statusFilter-1])
}

// canChange reports whether the identity may change the status of p
func (m *Model) canChange(p *model.Project) bool {
	return !m.identity.IsEditor() || p.AssignedTo(m.identity.EditorID)
}

func (m *Model) handleClaim() {
	p := m.currentProject()
	if p == nil {
		return
	}
	if !m.identity.IsEditor() {
		m.message = "Switch to an editor identity to claim projects"
		return
	}
	if p.Status != model.StatusNew {
		m.message = fmt.Sprintf("%s is already %s", p.ID, p.Status)
		return
	}
	m.apply(p.ID, model.ClaimPatch(*p, m.identity.EditorID, m.now), "Claimed")
}

func (m *Model) handleToggleDone() {
	p := m.currentProject()
	if p == nil {
		return
	}
	if !m.canChange(p) {
		m.message = fmt.Sprintf("%s is not assigned to you", p.ID)
		return
	}
	status := model.StatusDone
	if p.Status == model.StatusDone {
		status = model.StatusInProgress
	}
	m.apply(p.ID, model.StatusPatch(*p, status, m.now), string(status)+":")
}

func (m *Model) handleTogglePending() {
	p := m.currentProject()
	if p == nil {
		return
	}
	if !m.canChange(p) {
		m.message = fmt.Sprintf("%s is not assigned to you", p.ID)
		return
	}
	status := model.StatusPending
	if p.Status == model.StatusPending {
		status = model.StatusInProgress
	}
	m.apply(p.ID, model.StatusPatch(*p, status, m.now), string(status)+":")
}

// apply runs an update and reports the outcome on the status line
func (m *Model) apply(id string, patch model.Patch, verb string) {
	_, err := m.store.UpdateProject(context.Background(), id, patch)
	m.loadData()
	switch {
	case errors.Is(err, store.ErrDurabilityDegraded):
		logger.Warn("TUI change kept in memory only", logger.F("id", id), logger.Err(err))
		m.message = fmt.Sprintf("%s %s (not saved: %v)", verb, id, err)
	case err != nil:
		logger.Error("TUI update failed", logger.F("id", id), logger.Err(err))
		m.message = fmt.Sprintf("Error: %v", err)
	default:
		m.message = fmt.Sprintf("%s %s", verb, id)
	}
}

func (m Model) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.mode = ModeNormal
	if !key.Matches(msg, keys.Confirm) {
		m.message = "Delete cancelled"
		return m, nil
	}

	p := m.currentProject()
	if p == nil {
		return m, nil
	}
	id := p.ID
	err := m.store.DeleteProject(context.Background(), id)
	m.loadData()
	switch {
	case errors.Is(err, store.ErrDurabilityDegraded):
		m.message = fmt.Sprintf("Deleted %s (not saved: %v)", id, err)
	case err != nil:
		m.message = fmt.Sprintf("Error: %v", err)
	default:
		m.message = "Deleted " + id
	}
	return m, nil
}

func (m *Model) handleRefresh() {
	if err := m.store.Load(context.Background()); err != nil {
		logger.Error("TUI reload failed", logger.Err(err))
		m.message = fmt.Sprintf("Reload failed: %v", err)
		return
	}
	m.loadData()
	m.message = "Reloaded"
}

func (m Model) startFilter() (tea.Model, tea.Cmd) {
	m.mode = ModeFilter
	m.input.SetValue(m.filterText)
	m.input.Focus()
	return m, textinput.Blink
}

func (m Model) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Escape):
		m.mode = ModeNormal
		m.filterText = ""
		m.input.SetValue("")
		m.input.Blur()
		m.loadData()
		return m, nil

	case key.Matches(msg, keys.Enter):
		m.mode = ModeNormal
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	// Live filter as user types
	m.filterText = m.input.Value()
	m.cursor = 0
	m.loadData()
	return m, cmd
}
