package query

import (
	"time"

	"github.com/existflow/mergeflow/internal/model"
)

// MonthlyReport summarises one editor's month
type MonthlyReport struct {
	EditorID       string
	Year           int
	Month          time.Month
	Projects       []model.Project
	Completed      int
	OnTime         int
	Delayed        int
	PicturesEdited int
}

// BuildMonthlyReport selects the editor's projects whose completion date,
// or assign date when not completed, falls in the given month. Dates are
// compared in their own location.
func BuildMonthlyReport(projects []model.Project, editorID string, year int, month time.Month) MonthlyReport {
	r := MonthlyReport{EditorID: editorID, Year: year, Month: month}
	r.Projects = selectProjects(projects, func(p *model.Project) bool {
		if !p.AssignedTo(editorID) {
			return false
		}
		d := p.CompletionDate
		if d == nil {
			d = p.AssignDate
		}
		return d != nil && d.Year() == year && d.Month() == month
	})

	for i := range r.Projects {
		p := &r.Projects[i]
		if p.Status != model.StatusDone {
			continue
		}
		r.Completed++
		r.PicturesEdited += p.PicturesEdited
		if p.IsDelayed(p.Deadline) {
			r.Delayed++
		}
	}
	r.OnTime = r.Completed - r.Delayed
	return r
}
