package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/existflow/mergeflow/internal/model"
)

// truncate shortens a string to max runes with ellipsis
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 1 {
		return string(r[:max])
	}
	return string(r[:max-1]) + "…"
}

// pad right-pads s to width runes
func pad(s string, width int) string {
	s = truncate(s, width)
	if n := width - len([]rune(s)); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}

// bar draws n cells of a horizontal chart scaled to total
func bar(n, total, width int) string {
	if total <= 0 || n <= 0 {
		return ""
	}
	cells := n * width / total
	if cells == 0 {
		cells = 1
	}
	return strings.Repeat("█", cells)
}

// deadlineLabel renders a deadline relative to now
func deadlineLabel(p *model.Project, now time.Time) string {
	date := p.Deadline.Format("Jan 02")
	if p.Status == model.StatusDone {
		return date
	}
	switch d := p.DaysUntilDeadline(now); {
	case d < 0:
		return fmt.Sprintf("%s (%dd late)", date, -d)
	case d == 0:
		return date + " (today)"
	default:
		return fmt.Sprintf("%s (%dd)", date, d)
	}
}
