// Package query builds the derived project sets behind every dashboard view.
// Nothing here mutates its input.
package query

import (
	"slices"
	"strings"

	"github.com/existflow/mergeflow/internal/model"
)

// unknownEditor is shown for an editor id missing from the roster
const unknownEditor = "Unknown"

// Roster resolves editor ids to editors
type Roster map[string]model.Editor

// NewRoster indexes editors by id
func NewRoster(editors []model.Editor) Roster {
	r := make(Roster, len(editors))
	for _, e := range editors {
		r[e.ID] = e
	}
	return r
}

// Name resolves an editor id. ok is false for unassigned projects.
func (r Roster) Name(editorID *string) (name string, ok bool) {
	if editorID == nil {
		return "", false
	}
	if e, found := r[*editorID]; found {
		return e.Name, true
	}
	return unknownEditor, true
}

// Dedup keeps the first occurrence of every project id, in order
func Dedup(projects []model.Project) []model.Project {
	seen := make(map[string]struct{}, len(projects))
	out := make([]model.Project, 0, len(projects))
	for _, p := range projects {
		if _, dup := seen[p.ID]; dup {
			continue
		}
		seen[p.ID] = struct{}{}
		out = append(out, p)
	}
	return out
}

// Filter selects projects. Zero-valued fields don't filter.
// EditorID and Unassigned are alternatives: a project passes if it matches either.
type Filter struct {
	Statuses   []model.Status
	EditorID   string
	Unassigned bool
	Text       string
}

// IsZero reports whether the filter lets everything through
func (f Filter) IsZero() bool {
	return len(f.Statuses) == 0 && f.EditorID == "" && !f.Unassigned && strings.TrimSpace(f.Text) == ""
}

// Match reports whether p passes the filter
func (f Filter) Match(p *model.Project, roster Roster) bool {
	if len(f.Statuses) > 0 && !slices.Contains(f.Statuses, p.Status) {
		return false
	}

	if f.EditorID != "" || f.Unassigned {
		mine := f.EditorID != "" && p.AssignedTo(f.EditorID)
		free := f.Unassigned && p.EditorID == nil
		if !mine && !free {
			return false
		}
	}

	text := strings.ToLower(strings.TrimSpace(f.Text))
	if text == "" {
		return true
	}
	if strings.Contains(strings.ToLower(p.ID), text) || strings.Contains(strings.ToLower(p.Name), text) {
		return true
	}
	name, ok := roster.Name(p.EditorID)
	return ok && strings.Contains(strings.ToLower(name), text)
}

// Apply returns the projects that pass the filter, in input order
func (f Filter) Apply(projects []model.Project, roster Roster) []model.Project {
	out := make([]model.Project, 0, len(projects))
	for i := range projects {
		if f.Match(&projects[i], roster) {
			out = append(out, projects[i])
		}
	}
	return out
}

// Table is the dedupe, filter and sort pipeline behind the projects table
func Table(projects []model.Project, f Filter, s Sort, roster Roster) []model.Project {
	return s.Apply(f.Apply(Dedup(projects), roster), roster)
}
