package query

import (
	"time"

	"github.com/existflow/mergeflow/internal/model"
)

// TeamStats are the team leader's dashboard cards
type TeamStats struct {
	Total      int
	InProgress int
	Completed  int
	Delayed    int
}

// ComputeTeamStats counts the whole collection
func ComputeTeamStats(projects []model.Project, now time.Time) TeamStats {
	var s TeamStats
	for i := range projects {
		p := &projects[i]
		s.Total++
		switch p.Status {
		case model.StatusInProgress:
			s.InProgress++
		case model.StatusDone:
			s.Completed++
		}
		if DelayedActive(p, now) {
			s.Delayed++
		}
	}
	return s
}

// EditorStats are an editor's dashboard cards
type EditorStats struct {
	Active         int
	Completed      int
	Delayed        int
	PicturesEdited int
}

// ComputeEditorStats counts the projects assigned to editorID. Pictures
// are only counted for completed work.
func ComputeEditorStats(projects []model.Project, editorID string, now time.Time) EditorStats {
	var s EditorStats
	for i := range projects {
		p := &projects[i]
		if !p.AssignedTo(editorID) {
			continue
		}
		switch p.Status {
		case model.StatusAssigned, model.StatusInProgress:
			s.Active++
		case model.StatusDone:
			s.Completed++
			s.PicturesEdited += p.PicturesEdited
		}
		if DelayedActive(p, now) {
			s.Delayed++
		}
	}
	return s
}

// PerformanceRow is one editor's bar in the performance chart
type PerformanceRow struct {
	EditorID   string
	Name       string
	Done       int
	InProgress int
	Delayed    int
}

// Performance builds the per-editor workload chart in roster order
func Performance(editors []model.Editor, projects []model.Project, now time.Time) []PerformanceRow {
	rows := make([]PerformanceRow, 0, len(editors))
	for _, e := range editors {
		row := PerformanceRow{EditorID: e.ID, Name: e.FirstName()}
		for i := range projects {
			p := &projects[i]
			if !p.AssignedTo(e.ID) {
				continue
			}
			switch p.Status {
			case model.StatusDone:
				row.Done++
			case model.StatusInProgress, model.StatusAssigned:
				row.InProgress++
			}
			if DelayedActive(p, now) {
				row.Delayed++
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// ThroughputRow is one editor's completed output inside a window
type ThroughputRow struct {
	EditorID       string
	Name           string
	Completed      int
	Late           int
	PicturesEdited int
}

// Throughput counts completions per editor whose completion date falls
// inside the window
func Throughput(editors []model.Editor, projects []model.Project, w Window, now time.Time) []ThroughputRow {
	done := selectProjects(projects, func(p *model.Project) bool {
		return p.Status == model.StatusDone
	})
	done = InWindow(done, w, now, ByCompletion)

	rows := make([]ThroughputRow, 0, len(editors))
	for _, e := range editors {
		row := ThroughputRow{EditorID: e.ID, Name: e.Name}
		for i := range done {
			p := &done[i]
			if !p.AssignedTo(e.ID) {
				continue
			}
			row.Completed++
			row.PicturesEdited += p.PicturesEdited
			if p.IsDelayed(now) {
				row.Late++
			}
		}
		rows = append(rows, row)
	}
	return rows
}
