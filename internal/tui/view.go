package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/existflow/mergeflow/internal/model"
)

// View renders the UI
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	header := m.renderHeader()
	tabs := m.renderTabs()
	cards := m.renderCards()
	statusBar := m.renderStatusBar()

	bodyHeight := m.height - lipgloss.Height(header) - lipgloss.Height(tabs) -
		lipgloss.Height(cards) - lipgloss.Height(statusBar)
	body := m.renderTable(bodyHeight)
	if m.currentTab() == TabPerformance {
		body = m.renderPerformance()
	}

	mainContent := lipgloss.JoinVertical(lipgloss.Left, header, tabs, cards, body)

	if m.mode == ModeConfirmDelete {
		mainContent = lipgloss.Place(
			m.width, m.height-2,
			lipgloss.Center, lipgloss.Center,
			m.renderConfirmModal(),
			lipgloss.WithWhitespaceChars(" "),
		)
	}

	if m.mode == ModeHelp {
		mainContent = m.renderHelp()
	}

	return lipgloss.JoinVertical(lipgloss.Left, mainContent, statusBar)
}

func (m Model) renderHeader() string {
	title := HeaderStyle.Render("MergeFlow")
	who := HelpStyle.Render(m.identity.String())
	clock := HelpStyle.Render(m.now.Format("Mon Jan 02 15:04"))

	gap := m.width - lipgloss.Width(title) - lipgloss.Width(who) - lipgloss.Width(clock) - 2
	if gap < 1 {
		gap = 1
	}
	return title + " " + who + strings.Repeat(" ", gap) + clock
}

func (m Model) renderTabs() string {
	var parts []string
	for i, t := range m.tabs {
		label := t.String()
		if t == TabUrgent && m.urgent > 0 {
			label = fmt.Sprintf("%s (%d)", label, m.urgent)
		}
		if i == m.tab {
			parts = append(parts, TabActiveStyle.Render(label))
		} else {
			parts = append(parts, TabStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...) + "\n"
}

func card(label string, value string) string {
	return CardStyle.Render(CardValueStyle.Render(value) + "\n" + HelpStyle.Render(label))
}

func (m Model) renderCards() string {
	if m.identity.IsEditor() {
		rating := "-"
		for _, e := range m.editors {
			if e.ID == m.identity.EditorID {
				rating = RatingStyle(e.Rating).Render(fmt.Sprintf("%.1f ★", e.Rating))
			}
		}
		return lipgloss.JoinHorizontal(lipgloss.Top,
			card("Active", fmt.Sprint(m.mine.Active)),
			card("Completed", fmt.Sprint(m.mine.Completed)),
			card("Delayed", fmt.Sprint(m.mine.Delayed)),
			card("Pictures", fmt.Sprint(m.mine.PicturesEdited)),
			card("Rating", rating),
		)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		card("Total", fmt.Sprint(m.team.Total)),
		card("In Progress", fmt.Sprint(m.team.InProgress)),
		card("Completed", fmt.Sprint(m.team.Completed)),
		card("Delayed", fmt.Sprint(m.team.Delayed)),
		card("Due ≤ 3 days", fmt.Sprint(m.urgent)),
	)
}

// column widths for the project table
const (
	colID       = 9
	colEditor   = 16
	colDeadline = 18
	colStatus   = 22
)

func (m Model) renderTable(height int) string {
	width := m.width - 4
	nameWidth := width - colID - colEditor - colDeadline - colStatus - 8
	if nameWidth < 10 {
		nameWidth = 10
	}

	var s string
	sortLabel := fmt.Sprintf("sort: %s %s", m.sort.Key, m.sort.Direction)
	s += TableHeaderStyle.Render(fmt.Sprintf("  %s %s %s %s %s",
		pad("ID", colID), pad("Name", nameWidth), pad("Editor", colEditor),
		pad("Deadline", colDeadline), pad("Status", colStatus))) + "  " + HelpStyle.Render(sortLabel) + "\n"
	s += lipgloss.NewStyle().Foreground(Border).Render(strings.Repeat("─", max(width, 0))) + "\n"

	if len(m.rows) == 0 {
		s += HelpStyle.Render("  No projects match.")
		return TableStyle.Width(m.width).Render(s)
	}

	// Keep the cursor on screen
	visible := max(height-4, 1)
	start := 0
	if m.cursor >= visible {
		start = m.cursor - visible + 1
	}
	end := min(start+visible, len(m.rows))

	for i := start; i < end; i++ {
		p := &m.rows[i]
		cursor := "  "
		style := RowStyle
		if i == m.cursor {
			cursor = "❯ "
			style = RowSelectedStyle
		} else if p.Status == model.StatusDone {
			style = RowDoneStyle
		}

		deadline := pad(deadlineLabel(p, m.now), colDeadline)
		if p.IsUrgent(m.now) {
			deadline = UrgentStyle.Render(deadline)
		}

		line := style.Render(fmt.Sprintf("%s%s %s %s",
			cursor, pad(p.ID, colID), pad(p.Name, nameWidth), pad(m.editorName(p.EditorID), colEditor)))
		s += line + " " + deadline + " " + FormatStatus(p.EffectiveStatus(m.now)) + "\n"
	}

	if len(m.rows) > visible {
		s += HelpStyle.Render(fmt.Sprintf("  %d-%d of %d", start+1, end, len(m.rows)))
	}
	return TableStyle.Width(m.width).Render(s)
}

func (m Model) renderPerformance() string {
	const barWidth = 30
	var s string

	ratings := make(map[string]float64, len(m.editors))
	for _, e := range m.editors {
		ratings[e.ID] = e.Rating
	}

	s += TableHeaderStyle.Render(fmt.Sprintf("  %s %s %s", pad("Editor", 12), pad("Rating", 8), "Done / In progress / Delayed")) + "\n\n"
	for _, row := range m.perf {
		total := row.Done + row.InProgress + row.Delayed
		chart := StatusStyle(model.DisplayDone).Render(bar(row.Done, total, barWidth)) +
			StatusStyle(model.DisplayInProgress).Render(bar(row.InProgress, total, barWidth)) +
			StatusStyle(model.DisplayDelayed).Render(bar(row.Delayed, total, barWidth))
		rating := RatingStyle(ratings[row.EditorID]).Render(pad(fmt.Sprintf("%.1f", ratings[row.EditorID]), 8))
		s += fmt.Sprintf("  %s %s %s %s\n", pad(row.Name, 12), rating, chart,
			HelpStyle.Render(fmt.Sprintf("%d/%d/%d", row.Done, row.InProgress, row.Delayed)))
	}
	if len(m.perf) == 0 {
		s += HelpStyle.Render("  No editors on the roster.")
	}
	return TableStyle.Width(m.width).Render(s)
}

func (m Model) renderStatusBar() string {
	// When in filter mode, show inline search input (like vim)
	if m.mode == ModeFilter {
		return StatusBarStyle.Width(m.width).Render(fmt.Sprintf("/%s  [%d matches]", m.input.View(), len(m.rows)))
	}

	help := "/:search  s/o:sort  f:status  x:done  p:pending  d:del  r:reload  ?:help  q:quit"
	if m.identity.IsEditor() {
		help = "/:search  s/o:sort  f:status  c:claim  x:done  p:pending  r:reload  ?:help  q:quit"
	}

	var active []string
	if m.filterText != "" {
		active = append(active, "/"+m.filterText)
	}
	if m.statusFilter > 0 {
		active = append(active, "status="+string(model.Statuses()[m.statusFilter-1]))
	}
	if len(active) > 0 {
		help = strings.Join(active, "  ") + "  Esc:clear"
	}
	if m.message != "" {
		help = m.message
	}

	return StatusBarStyle.Width(m.width).Render(help)
}

func (m Model) renderConfirmModal() string {
	p := m.currentProject()
	if p == nil {
		return ""
	}
	content := lipgloss.NewStyle().Bold(true).Render("Delete project?") + "\n\n"
	content += fmt.Sprintf("%s  %s", p.ID, truncate(p.Name, 40)) + "\n\n"
	content += HelpStyle.Render("y:delete  any other key:cancel")
	return ModalStyle.Render(content)
}

func (m Model) renderHelp() string {
	help := `
╭──── Keyboard Shortcuts ────╮
│                            │
│  Navigation                │
│  ──────────                │
│  j/↓      Move down        │
│  k/↑      Move up          │
│  g/G      Top / bottom     │
│  Tab      Next tab         │
│  S-Tab    Previous tab     │
│                            │
│  Table                     │
│  ─────                     │
│  /        Search           │
│  s        Next sort column │
│  o        Flip sort order  │
│  f        Cycle status     │
│  Esc      Clear filters    │
│                            │
│  Actions                   │
│  ───────                   │
│  c        Claim (editor)   │
│  x        Toggle done      │
│  p        Pending toggle   │
│  d        Delete (leader)  │
│  r        Reload           │
│                            │
│  ?        Toggle help      │
│  q        Quit             │
│                            │
╰────────────────────────────╯

     Press any key to close
`
	var legend []string
	for _, st := range model.DisplayStatuses() {
		legend = append(legend, FormatStatus(st))
	}
	help += "\n" + strings.Join(legend, "  ")
	return lipgloss.Place(m.width, m.height-2, lipgloss.Center, lipgloss.Center, help)
}
