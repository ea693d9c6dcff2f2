package model_test

import (
	"testing"
	"time"

	"github.com/existflow/mergeflow/internal/model"
	"github.com/stretchr/testify/require"
)

func TestPatchApply(t *testing.T) {
	base := model.Project{
		ID:       "PROJ-004",
		Name:     "Old name",
		Status:   model.StatusAssigned,
		EditorID: model.StringPtr("ED-001"),
		Deadline: now,
	}

	name := "New name"
	pics := 120
	out := model.Patch{Name: &name, PicturesEdited: &pics, ClearEditor: true}.Apply(base)

	require.Equal(t, "New name", out.Name)
	require.Equal(t, 120, out.PicturesEdited)
	require.Nil(t, out.EditorID)
	require.Equal(t, "Old name", base.Name, "source untouched")
	require.NotNil(t, base.EditorID)
}

func TestPatchIsEmpty(t *testing.T) {
	require.True(t, model.Patch{}.IsEmpty())
	require.False(t, model.Patch{ClearAssign: true}.IsEmpty())
}

func TestStatusPatch_DoneSetsCompletionDate(t *testing.T) {
	p := model.Project{Status: model.StatusInProgress, EditorID: model.StringPtr("ED-001"), AssignDate: model.TimePtr(now.Add(-time.Hour))}

	out := model.StatusPatch(p, model.StatusDone, now).Apply(p)
	require.Equal(t, model.StatusDone, out.Status)
	require.NotNil(t, out.CompletionDate)
	require.True(t, out.CompletionDate.Equal(now))
	require.True(t, out.AssignDate.Equal(now.Add(-time.Hour)), "existing assign date kept")
}

func TestStatusPatch_DoneKeepsExistingCompletionDate(t *testing.T) {
	done := now.Add(-72 * time.Hour)
	p := model.Project{Status: model.StatusDone, CompletionDate: &done}

	out := model.StatusPatch(p, model.StatusDone, now).Apply(p)
	require.True(t, out.CompletionDate.Equal(done))
}

func TestStatusPatch_ReopenClearsCompletionDate(t *testing.T) {
	p := model.Project{Status: model.StatusDone, CompletionDate: model.TimePtr(now)}

	out := model.StatusPatch(p, model.StatusInProgress, now).Apply(p)
	require.Nil(t, out.CompletionDate)
}

func TestClaimPatch(t *testing.T) {
	p := model.Project{ID: "PROJ-009", Status: model.StatusNew}

	out := model.ClaimPatch(p, "ED-002", now).Apply(p)
	require.Equal(t, model.StatusAssigned, out.Status)
	require.True(t, out.AssignedTo("ED-002"))
	require.True(t, out.AssignDate.Equal(now))
}

func TestWithDerivedDates_UnassignClearsAssignDate(t *testing.T) {
	p := model.Project{EditorID: model.StringPtr("ED-001"), AssignDate: model.TimePtr(now), Status: model.StatusAssigned}

	out := model.Patch{ClearEditor: true}.WithDerivedDates(p, now).Apply(p)
	require.Nil(t, out.EditorID)
	require.Nil(t, out.AssignDate)
}

func TestNewProject_Defaults(t *testing.T) {
	p := model.NewProject{Name: "Catalog", Category: model.CategoryProduct, Deadline: now.Add(48 * time.Hour)}.Project("PROJ-016", now)

	require.Equal(t, "PROJ-016", p.ID)
	require.Equal(t, model.StatusNew, p.Status)
	require.Equal(t, now, p.CreationDate)
	require.Nil(t, p.EditorID)
}

func TestNewProject_WithDerivedDates(t *testing.T) {
	np := model.NewProject{
		Name:     "Gala",
		Status:   model.StatusDone,
		EditorID: model.StringPtr("ED-002"),
	}.WithDerivedDates(now)
	require.Equal(t, now, *np.AssignDate)
	require.Equal(t, now, *np.CompletionDate)

	np = model.NewProject{
		Name:           "Gala",
		Status:         model.StatusNew,
		AssignDate:     model.TimePtr(now),
		CompletionDate: model.TimePtr(now),
	}.WithDerivedDates(now)
	require.Nil(t, np.AssignDate)
	require.Nil(t, np.CompletionDate)
}
