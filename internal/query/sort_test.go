package query_test

import (
	"testing"

	"github.com/existflow/mergeflow/internal/model"
	"github.com/existflow/mergeflow/internal/query"
	"github.com/stretchr/testify/require"
)

func TestSort_CompletionDateNullsLast(t *testing.T) {
	projects := []model.Project{
		proj("PROJ-001", model.StatusInProgress, days(1)),
		proj("PROJ-002", model.StatusDone, days(1), completed(days(-2))),
		proj("PROJ-003", model.StatusNew, days(1)),
		proj("PROJ-004", model.StatusDone, days(1), completed(days(-5))),
	}

	asc := query.Sort{Key: query.SortCompletionDate, Direction: query.Ascending}.Apply(projects, roster)
	require.Equal(t, []string{"PROJ-004", "PROJ-002", "PROJ-001", "PROJ-003"}, ids(asc))

	desc := query.Sort{Key: query.SortCompletionDate, Direction: query.Descending}.Apply(projects, roster)
	require.Equal(t, []string{"PROJ-002", "PROJ-004", "PROJ-001", "PROJ-003"}, ids(desc))
}

func TestSort_EditorNameUnassignedLast(t *testing.T) {
	projects := []model.Project{
		proj("PROJ-001", model.StatusNew, days(1)),
		proj("PROJ-002", model.StatusAssigned, days(1), editor("ED-002")),
		proj("PROJ-003", model.StatusAssigned, days(1), editor("ED-001")),
	}

	asc := query.Sort{Key: query.SortEditorName}.Apply(projects, roster)
	require.Equal(t, []string{"PROJ-003", "PROJ-002", "PROJ-001"}, ids(asc))

	desc := query.Sort{Key: query.SortEditorName, Direction: query.Descending}.Apply(projects, roster)
	require.Equal(t, []string{"PROJ-002", "PROJ-003", "PROJ-001"}, ids(desc))
}

func TestSort_StableOnTies(t *testing.T) {
	projects := []model.Project{
		proj("PROJ-003", model.StatusNew, days(2)),
		proj("PROJ-001", model.StatusNew, days(1)),
		proj("PROJ-002", model.StatusNew, days(2)),
	}
	out := query.Sort{Key: query.SortDeadline, Direction: query.Descending}.Apply(projects, roster)
	require.Equal(t, []string{"PROJ-003", "PROJ-002", "PROJ-001"}, ids(out))
}

func TestSort_Pictures(t *testing.T) {
	projects := []model.Project{
		proj("PROJ-001", model.StatusDone, days(1), pictures(40)),
		proj("PROJ-002", model.StatusDone, days(1), pictures(5)),
		proj("PROJ-003", model.StatusDone, days(1), pictures(120)),
	}
	out := query.Sort{Key: query.SortPictures}.Apply(projects, roster)
	require.Equal(t, []string{"PROJ-002", "PROJ-001", "PROJ-003"}, ids(out))
}

func TestSort_DoesNotMutateInput(t *testing.T) {
	projects := []model.Project{
		proj("PROJ-002", model.StatusNew, days(2)),
		proj("PROJ-001", model.StatusNew, days(1)),
	}
	_ = query.DefaultSort().Apply(projects, roster)
	require.Equal(t, []string{"PROJ-002", "PROJ-001"}, ids(projects))
}

func TestSort_Toggle(t *testing.T) {
	s := query.DefaultSort()
	require.Equal(t, query.Sort{Key: query.SortDeadline, Direction: query.Ascending}, s)

	s = s.Toggle(query.SortDeadline)
	require.Equal(t, query.Descending, s.Direction)

	s = s.Toggle(query.SortDeadline)
	require.Equal(t, query.Ascending, s.Direction)

	s = s.Toggle(query.SortDeadline).Toggle(query.SortName)
	require.Equal(t, query.Sort{Key: query.SortName, Direction: query.Ascending}, s)
}

func TestParseSortKey(t *testing.T) {
	k, err := query.ParseSortKey("EditorName")
	require.NoError(t, err)
	require.Equal(t, query.SortEditorName, k)

	_, err = query.ParseSortKey("rating")
	require.Error(t, err)
}
