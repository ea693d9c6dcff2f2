package query

import (
	"fmt"
	"strings"
	"time"

	"github.com/existflow/mergeflow/internal/model"
)

// Window is a reporting time window counted back from now
type Window string

const (
	WindowAll     Window = "all"
	Window7Days   Window = "7d"
	Window30Days  Window = "30d"
	Window365Days Window = "365d"
)

// Windows lists the selectable windows, widest first
func Windows() []Window {
	return []Window{WindowAll, Window365Days, Window30Days, Window7Days}
}

// ParseWindow accepts the window tag or its long form (last-30-days)
func ParseWindow(s string) (Window, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return WindowAll, nil
	case "7d", "last-7-days":
		return Window7Days, nil
	case "30d", "last-30-days":
		return Window30Days, nil
	case "365d", "last-365-days":
		return Window365Days, nil
	}
	names := make([]string, 0, len(Windows()))
	for _, w := range Windows() {
		names = append(names, string(w))
	}
	return "", fmt.Errorf("invalid window %q (want %s)", s, strings.Join(names, ", "))
}

// Label is the human-readable window name
func (w Window) Label() string {
	switch w {
	case Window7Days:
		return "Last 7 days"
	case Window30Days:
		return "Last 30 days"
	case Window365Days:
		return "Last 365 days"
	}
	return "All time"
}

// Cutoff returns the earliest instant inside the window. The zero time
// means no cutoff.
func (w Window) Cutoff(now time.Time) time.Time {
	switch w {
	case Window7Days:
		return now.AddDate(0, 0, -7)
	case Window30Days:
		return now.AddDate(0, 0, -30)
	case Window365Days:
		return now.AddDate(0, 0, -365)
	}
	return time.Time{}
}

// DateField picks which project date a window is applied to
type DateField int

const (
	ByCompletion DateField = iota
	ByAssign
	ByCreation
	ByDeadline
)

func (f DateField) of(p *model.Project) *time.Time {
	switch f {
	case ByAssign:
		return p.AssignDate
	case ByCreation:
		if p.CreationDate.IsZero() {
			return nil
		}
		return &p.CreationDate
	case ByDeadline:
		return &p.Deadline
	}
	return p.CompletionDate
}

// InWindow keeps projects whose date field falls on or after the window
// cutoff. WindowAll keeps everything, including projects without the date.
func InWindow(projects []model.Project, w Window, now time.Time, field DateField) []model.Project {
	cutoff := w.Cutoff(now)
	out := make([]model.Project, 0, len(projects))
	for i := range projects {
		if cutoff.IsZero() {
			out = append(out, projects[i])
			continue
		}
		d := field.of(&projects[i])
		if d != nil && !d.Before(cutoff) {
			out = append(out, projects[i])
		}
	}
	return out
}
