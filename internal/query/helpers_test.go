package query_test

import (
	"time"

	"github.com/existflow/mergeflow/internal/model"
	"github.com/existflow/mergeflow/internal/query"
)

var now = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

var editors = []model.Editor{
	{ID: "ED-001", Name: "Alice Moreau", Rating: 4.5},
	{ID: "ED-002", Name: "Bob Tanaka", Rating: 3.0},
	{ID: "ED-003", Name: "Carla Diaz", Rating: 1.0},
}

var roster = query.NewRoster(editors)

type opt func(p *model.Project)

func proj(id string, status model.Status, deadline time.Time, opts ...opt) model.Project {
	p := model.Project{
		ID:           id,
		Name:         "Project " + id,
		Status:       status,
		Category:     model.CategoryWedding,
		Deadline:     deadline,
		CreationDate: now.AddDate(0, 0, -30),
	}
	for _, o := range opts {
		o(&p)
	}
	return p
}

func editor(id string) opt {
	return func(p *model.Project) { p.EditorID = model.StringPtr(id) }
}

func named(name string) opt {
	return func(p *model.Project) { p.Name = name }
}

func assigned(t time.Time) opt {
	return func(p *model.Project) { p.AssignDate = model.TimePtr(t) }
}

func completed(t time.Time) opt {
	return func(p *model.Project) { p.CompletionDate = model.TimePtr(t) }
}

func pictures(n int) opt {
	return func(p *model.Project) { p.PicturesEdited = n }
}

func ids(projects []model.Project) []string {
	out := make([]string, len(projects))
	for i, p := range projects {
		out[i] = p.ID
	}
	return out
}

func days(n int) time.Time {
	return now.AddDate(0, 0, n)
}
