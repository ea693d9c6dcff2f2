package model_test

import (
	"testing"
	"time"

	"github.com/existflow/mergeflow/internal/model"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func project(status model.Status, deadline time.Time) model.Project {
	return model.Project{
		ID:       "PROJ-001",
		Name:     "Wedding retouch",
		Status:   status,
		Category: model.CategoryWedding,
		Deadline: deadline,
	}
}

func TestIsDelayed_ActiveUsesNow(t *testing.T) {
	for _, st := range []model.Status{model.StatusNew, model.StatusAssigned, model.StatusInProgress, model.StatusPending} {
		p := project(st, now.Add(-time.Minute))
		require.True(t, p.IsDelayed(now), st)

		p = project(st, now.Add(time.Minute))
		require.False(t, p.IsDelayed(now), st)
	}
}

func TestIsDelayed_DeadlineBoundaryIsNotDelayed(t *testing.T) {
	p := project(model.StatusInProgress, now)
	require.False(t, p.IsDelayed(now))
}

func TestIsDelayed_DoneUsesCompletionDate(t *testing.T) {
	p := project(model.StatusDone, now)

	p.CompletionDate = model.TimePtr(now.Add(time.Hour))
	require.True(t, p.IsDelayed(now.Add(-48*time.Hour)))
	require.True(t, p.IsDelayed(now.Add(48*time.Hour)))

	p.CompletionDate = model.TimePtr(now)
	require.False(t, p.IsDelayed(now.Add(48*time.Hour)), "equal instants are on time")

	p.CompletionDate = model.TimePtr(now.Add(-time.Hour))
	require.False(t, p.IsDelayed(now.Add(48*time.Hour)))
}

func TestIsDelayed_DoneWithoutCompletionDate(t *testing.T) {
	p := project(model.StatusDone, now.Add(-time.Hour))
	require.False(t, p.IsDelayed(now))
}

func TestEffectiveStatus(t *testing.T) {
	overdue := project(model.StatusInProgress, now.Add(-24*time.Hour))
	require.Equal(t, model.DisplayDelayed, overdue.EffectiveStatus(now))

	onTrack := project(model.StatusPending, now.Add(24*time.Hour))
	require.Equal(t, model.DisplayPending, onTrack.EffectiveStatus(now))

	lateDone := project(model.StatusDone, now.Add(-24*time.Hour))
	lateDone.CompletionDate = model.TimePtr(now)
	require.True(t, lateDone.IsDelayed(now))
	require.Equal(t, model.DisplayDone, lateDone.EffectiveStatus(now))
}

func TestIsUrgent(t *testing.T) {
	tests := []struct {
		name     string
		status   model.Status
		deadline time.Time
		want     bool
	}{
		{"due in two days", model.StatusInProgress, now.Add(48 * time.Hour), true},
		{"due in exactly three days", model.StatusAssigned, now.Add(72 * time.Hour), true},
		{"due in four days", model.StatusInProgress, now.Add(96 * time.Hour), false},
		{"already overdue", model.StatusInProgress, now.Add(-24 * time.Hour), false},
		{"due right now", model.StatusInProgress, now, false},
		{"done", model.StatusDone, now.Add(24 * time.Hour), false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := project(tc.status, tc.deadline)
			require.Equal(t, tc.want, p.IsUrgent(now))
		})
	}
}

func TestDaysUntilDeadline(t *testing.T) {
	p := project(model.StatusInProgress, now.Add(50*time.Hour))
	require.Equal(t, 2, p.DaysUntilDeadline(now))
}
