package query_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/existflow/mergeflow/internal/model"
	"github.com/existflow/mergeflow/internal/query"
	"github.com/stretchr/testify/require"
)

func TestUrgent_Window(t *testing.T) {
	projects := []model.Project{
		proj("PROJ-001", model.StatusInProgress, days(2)),
		proj("PROJ-002", model.StatusInProgress, days(4)),
		proj("PROJ-003", model.StatusInProgress, days(-1)),
		proj("PROJ-004", model.StatusDone, days(1), completed(days(-1))),
	}
	d := query.Urgent(projects, now, query.UrgentLimit)
	require.Equal(t, []string{"PROJ-001"}, ids(d.Top))
	require.Zero(t, d.Overflow)
}

func TestUrgent_TopNWithOverflow(t *testing.T) {
	var projects []model.Project
	for i := 7; i >= 1; i-- {
		projects = append(projects, proj(model.FormatID(i), model.StatusAssigned, now.Add(time.Duration(i)*time.Hour)))
	}

	d := query.Urgent(projects, now, 5)
	require.Equal(t, []string{"PROJ-001", "PROJ-002", "PROJ-003", "PROJ-004", "PROJ-005"}, ids(d.Top))
	require.Equal(t, 2, d.Overflow)
	require.Equal(t, 7, d.Total())

	uncapped := query.Urgent(projects, now, 0)
	require.Len(t, uncapped.Top, 7)
}

func TestMyActiveWork(t *testing.T) {
	projects := []model.Project{
		proj("PROJ-001", model.StatusInProgress, days(5), editor("ED-001")),
		proj("PROJ-002", model.StatusPending, days(1), editor("ED-001")),
		proj("PROJ-003", model.StatusDone, days(1), editor("ED-001")),
		proj("PROJ-004", model.StatusAssigned, days(3), editor("ED-002")),
		proj("PROJ-005", model.StatusAssigned, days(3), editor("ED-001")),
	}
	require.Equal(t, []string{"PROJ-002", "PROJ-005", "PROJ-001"}, ids(query.MyActiveWork(projects, "ED-001")))
}

func TestAvailableAndRecentlyAssigned(t *testing.T) {
	projects := []model.Project{
		proj("PROJ-001", model.StatusNew, days(5)),
		proj("PROJ-002", model.StatusAssigned, days(5), editor("ED-001"), assigned(days(-5))),
		proj("PROJ-003", model.StatusAssigned, days(5), editor("ED-002"), assigned(days(-1))),
		proj("PROJ-004", model.StatusAssigned, days(5), editor("ED-002")),
	}
	require.Equal(t, []string{"PROJ-001"}, ids(query.Available(projects)))
	require.Equal(t, []string{"PROJ-003", "PROJ-002"}, ids(query.RecentlyAssigned(projects)))
	require.Equal(t, []string{"PROJ-001", "PROJ-002", "PROJ-003", "PROJ-004"}, ids(query.OtherProjects(projects)))
}

func TestEditorBuckets(t *testing.T) {
	projects := []model.Project{
		proj("PROJ-001", model.StatusDone, days(-10), editor("ED-001"), completed(days(-12))),
		proj("PROJ-002", model.StatusDone, days(-10), editor("ED-001"), completed(days(-2))),
		proj("PROJ-003", model.StatusInProgress, days(-1), editor("ED-001")),
		proj("PROJ-004", model.StatusAssigned, days(3), editor("ED-001")),
		proj("PROJ-005", model.StatusPending, days(-3), editor("ED-001")),
		proj("PROJ-006", model.StatusAssigned, days(3), editor("ED-002")),
	}

	require.Len(t, query.Mine(projects, "ED-001"), 5)
	require.Equal(t, []string{"PROJ-002", "PROJ-001"}, ids(query.MyCompleted(projects, "ED-001")))
	require.Equal(t, []string{"PROJ-004"}, ids(query.MyOnTrack(projects, "ED-001", now)))
	require.Equal(t, []string{"PROJ-003", "PROJ-005"}, ids(query.MyDelayed(projects, "ED-001", now)))
}

func TestDelayedActive_ExcludesLateCompletions(t *testing.T) {
	late := proj("PROJ-001", model.StatusDone, days(-10), completed(days(-5)))
	require.True(t, late.IsDelayed(now))
	require.False(t, query.DelayedActive(&late, now))

	overdue := proj("PROJ-002", model.StatusNew, days(-1))
	require.True(t, query.DelayedActive(&overdue, now))
}

func ExampleUrgent() {
	projects := []model.Project{
		{ID: "PROJ-001", Status: model.StatusInProgress, Deadline: now.Add(48 * time.Hour)},
		{ID: "PROJ-002", Status: model.StatusInProgress, Deadline: now.Add(96 * time.Hour)},
	}
	d := query.Urgent(projects, now, query.UrgentLimit)
	fmt.Println(len(d.Top), d.Top[0].ID)
	// Output: 1 PROJ-001
}
