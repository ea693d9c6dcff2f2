package query_test

import (
	"testing"
	"time"

	"github.com/existflow/mergeflow/internal/model"
	"github.com/existflow/mergeflow/internal/query"
	"github.com/stretchr/testify/require"
)

func statsFixture() []model.Project {
	return []model.Project{
		proj("PROJ-001", model.StatusDone, days(-20), editor("ED-001"), completed(days(-21)), pictures(100)),
		proj("PROJ-002", model.StatusDone, days(-20), editor("ED-001"), completed(days(-15)), pictures(50)),
		proj("PROJ-003", model.StatusInProgress, days(-2), editor("ED-001")),
		proj("PROJ-004", model.StatusAssigned, days(4), editor("ED-001")),
		proj("PROJ-005", model.StatusInProgress, days(6), editor("ED-002")),
		proj("PROJ-006", model.StatusPending, days(-1), editor("ED-002")),
		proj("PROJ-007", model.StatusNew, days(10)),
	}
}

func TestComputeTeamStats(t *testing.T) {
	s := query.ComputeTeamStats(statsFixture(), now)
	require.Equal(t, query.TeamStats{Total: 7, InProgress: 2, Completed: 2, Delayed: 2}, s)
}

func TestComputeEditorStats(t *testing.T) {
	s := query.ComputeEditorStats(statsFixture(), "ED-001", now)
	require.Equal(t, query.EditorStats{Active: 2, Completed: 2, Delayed: 1, PicturesEdited: 150}, s)

	require.Equal(t, query.EditorStats{}, query.ComputeEditorStats(statsFixture(), "ED-003", now))
}

func TestPerformance(t *testing.T) {
	rows := query.Performance(editors, statsFixture(), now)
	require.Len(t, rows, 3)
	require.Equal(t, query.PerformanceRow{EditorID: "ED-001", Name: "Alice", Done: 2, InProgress: 2, Delayed: 1}, rows[0])
	require.Equal(t, query.PerformanceRow{EditorID: "ED-002", Name: "Bob", Done: 0, InProgress: 1, Delayed: 1}, rows[1])
	require.Equal(t, query.PerformanceRow{EditorID: "ED-003", Name: "Carla"}, rows[2])
}

func TestThroughput(t *testing.T) {
	projects := statsFixture()

	all := query.Throughput(editors, projects, query.WindowAll, now)
	require.Equal(t, 2, all[0].Completed)
	require.Equal(t, 1, all[0].Late)
	require.Equal(t, 150, all[0].PicturesEdited)

	month := query.Throughput(editors, projects, query.Window30Days, now)
	require.Equal(t, 2, month[0].Completed)

	week := query.Throughput(editors, projects, query.Window7Days, now)
	require.Zero(t, week[0].Completed)
}

func TestBuildMonthlyReport(t *testing.T) {
	march := func(day int) time.Time { return time.Date(2025, 3, day, 10, 0, 0, 0, time.UTC) }
	feb := time.Date(2025, 2, 27, 10, 0, 0, 0, time.UTC)

	projects := []model.Project{
		proj("PROJ-001", model.StatusDone, march(5), editor("ED-001"), assigned(feb), completed(march(4)), pictures(30)),
		proj("PROJ-002", model.StatusDone, march(5), editor("ED-001"), assigned(feb), completed(march(8)), pictures(20)),
		proj("PROJ-003", model.StatusInProgress, march(20), editor("ED-001"), assigned(march(2))),
		proj("PROJ-004", model.StatusDone, feb, editor("ED-001"), assigned(feb), completed(feb), pictures(99)),
		proj("PROJ-005", model.StatusDone, march(5), editor("ED-002"), completed(march(3)), pictures(10)),
	}

	r := query.BuildMonthlyReport(projects, "ED-001", 2025, time.March)
	require.Equal(t, []string{"PROJ-001", "PROJ-002", "PROJ-003"}, ids(r.Projects))
	require.Equal(t, 2, r.Completed)
	require.Equal(t, 1, r.OnTime)
	require.Equal(t, 1, r.Delayed)
	require.Equal(t, 50, r.PicturesEdited)
}
