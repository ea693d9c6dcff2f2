package query

import (
	"slices"
	"time"

	"github.com/existflow/mergeflow/internal/model"
)

// UrgentLimit is how many urgent projects the compact dashboard list shows
const UrgentLimit = 5

func selectProjects(projects []model.Project, keep func(p *model.Project) bool) []model.Project {
	out := make([]model.Project, 0)
	for i := range projects {
		if keep(&projects[i]) {
			out = append(out, projects[i])
		}
	}
	return out
}

func byDeadline(a, b model.Project) int {
	return a.Deadline.Compare(b.Deadline)
}

// MyActiveWork is the editor's assigned, in-progress and pending work,
// nearest deadline first
func MyActiveWork(projects []model.Project, editorID string) []model.Project {
	out := selectProjects(projects, func(p *model.Project) bool {
		return p.AssignedTo(editorID) && p.Status.IsActive()
	})
	slices.SortStableFunc(out, byDeadline)
	return out
}

// Available is the new work nobody has claimed yet
func Available(projects []model.Project) []model.Project {
	return selectProjects(projects, func(p *model.Project) bool {
		return p.Status == model.StatusNew
	})
}

// RecentlyAssigned is assigned work with an assign date, newest first
func RecentlyAssigned(projects []model.Project) []model.Project {
	out := selectProjects(projects, func(p *model.Project) bool {
		return p.Status == model.StatusAssigned && p.AssignDate != nil
	})
	slices.SortStableFunc(out, func(a, b model.Project) int {
		return b.AssignDate.Compare(*a.AssignDate)
	})
	return out
}

// UrgentDigest is the compact urgent list plus how many were left out
type UrgentDigest struct {
	Top      []model.Project
	Overflow int
}

// Total is the number of urgent projects including the overflow
func (d UrgentDigest) Total() int {
	return len(d.Top) + d.Overflow
}

// Urgent returns unfinished work due within the urgent window, nearest
// deadline first, capped at limit. A limit <= 0 means no cap.
func Urgent(projects []model.Project, now time.Time, limit int) UrgentDigest {
	all := selectProjects(projects, func(p *model.Project) bool {
		return p.IsUrgent(now)
	})
	slices.SortStableFunc(all, byDeadline)
	if limit <= 0 || len(all) <= limit {
		return UrgentDigest{Top: all}
	}
	return UrgentDigest{Top: all[:limit], Overflow: len(all) - limit}
}

// Mine is every project assigned to the editor
func Mine(projects []model.Project, editorID string) []model.Project {
	return selectProjects(projects, func(p *model.Project) bool {
		return p.AssignedTo(editorID)
	})
}

// MyCompleted is the editor's finished work, most recently completed first
func MyCompleted(projects []model.Project, editorID string) []model.Project {
	out := selectProjects(projects, func(p *model.Project) bool {
		return p.AssignedTo(editorID) && p.Status == model.StatusDone
	})
	slices.SortStableFunc(out, func(a, b model.Project) int {
		switch {
		case a.CompletionDate == nil && b.CompletionDate == nil:
			return 0
		case a.CompletionDate == nil:
			return 1
		case b.CompletionDate == nil:
			return -1
		}
		return b.CompletionDate.Compare(*a.CompletionDate)
	})
	return out
}

// MyOnTrack is the editor's assigned or in-progress work that isn't overdue
func MyOnTrack(projects []model.Project, editorID string, now time.Time) []model.Project {
	return selectProjects(projects, func(p *model.Project) bool {
		return p.AssignedTo(editorID) &&
			(p.Status == model.StatusAssigned || p.Status == model.StatusInProgress) &&
			!p.IsDelayed(now)
	})
}

// MyDelayed is the editor's unfinished work that is past its deadline
func MyDelayed(projects []model.Project, editorID string, now time.Time) []model.Project {
	return selectProjects(projects, func(p *model.Project) bool {
		return p.AssignedTo(editorID) && DelayedActive(p, now)
	})
}

// OtherProjects is the editor dashboard's view of work that is new or assigned
func OtherProjects(projects []model.Project) []model.Project {
	return selectProjects(projects, func(p *model.Project) bool {
		return p.Status == model.StatusNew || p.Status == model.StatusAssigned
	})
}

// DelayedActive reports unfinished work past its deadline. Completed-late
// work is excluded; use Project.IsDelayed for that.
func DelayedActive(p *model.Project, now time.Time) bool {
	return p.Status != model.StatusDone && p.IsDelayed(now)
}
