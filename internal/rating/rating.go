// Package rating derives editor ratings from completed-project history.
package rating

import (
	"math"

	"github.com/existflow/mergeflow/internal/model"
)

const (
	base         = 5.0
	delayPenalty = 0.5
	onTimeBonus  = 0.25
	onTimeBlock  = 10
)

// Calculate scores an editor from the projects assigned to them.
//
// No completed work means the floor rating. Otherwise the editor starts at
// 5.0, loses 0.5 per late completion and gains 0.25 per full block of ten
// on-time completions. The result is clamped to [1, 5] and rounded to two
// decimals.
func Calculate(projects []model.Project) float64 {
	completed, delayed := 0, 0
	for i := range projects {
		p := &projects[i]
		if p.Status != model.StatusDone {
			continue
		}
		completed++
		// completion lateness does not depend on the evaluation instant
		if p.IsDelayed(p.Deadline) {
			delayed++
		}
	}
	if completed == 0 {
		return model.MinRating
	}

	onTime := completed - delayed
	r := base
	r -= float64(delayed) * delayPenalty
	r += float64(onTime/onTimeBlock) * onTimeBonus

	r = math.Max(model.MinRating, math.Min(model.MaxRating, r))
	return math.Round(r*100) / 100
}

// Recompute returns a copy of roster with every rating derived from the
// projects currently assigned to each editor
func Recompute(roster []model.Editor, projects []model.Project) []model.Editor {
	byEditor := make(map[string][]model.Project, len(roster))
	for _, p := range projects {
		if p.EditorID == nil {
			continue
		}
		byEditor[*p.EditorID] = append(byEditor[*p.EditorID], p)
	}

	out := make([]model.Editor, len(roster))
	for i, e := range roster {
		e.Rating = Calculate(byEditor[e.ID])
		out[i] = e
	}
	return out
}
