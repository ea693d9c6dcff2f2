package store_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/existflow/mergeflow/internal/db"
	"github.com/existflow/mergeflow/internal/model"
	"github.com/existflow/mergeflow/internal/query"
	"github.com/existflow/mergeflow/internal/store"
	"github.com/existflow/mergeflow/internal/store/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func clock() time.Time { return now }

func seedOf(s store.Seed) *store.Seed { return &s }

// newSQLiteStore wires a store to a fresh in-memory database
func newSQLiteStore(t *testing.T, seed store.Seed) (*store.Store, *db.SnapshotStore, *db.ImageStore) {
	t.Helper()
	conn, err := db.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	snaps := db.NewSnapshotStore(conn, 0)
	images := db.NewImageStore(conn, 0)
	s := store.New(snaps, store.Options{Images: images, Seed: &seed, Clock: clock})
	return s, snaps, images
}

func smallSeed() store.Seed {
	return store.Seed{
		Editors: []model.Editor{
			{ID: "ED-001", Name: "Alice Moreau", Rating: model.MinRating},
			{ID: "ED-002", Name: "Bob Tanaka", Rating: model.MinRating},
		},
		Projects: []model.Project{
			{ID: "PROJ-003", Name: "Three", Status: model.StatusNew, Category: model.CategoryEvent, Deadline: now.AddDate(0, 0, 5), CreationDate: now},
			{ID: "PROJ-015", Name: "Fifteen", Status: model.StatusNew, Category: model.CategoryEvent, Deadline: now.AddDate(0, 0, 5), CreationDate: now},
			{ID: "PROJ-009", Name: "Nine", Status: model.StatusNew, Category: model.CategoryEvent, Deadline: now.AddDate(0, 0, 5), CreationDate: now},
		},
	}
}

func newProject(name string) model.NewProject {
	return model.NewProject{
		Name:     name,
		Category: model.CategoryWedding,
		Deadline: now.AddDate(0, 0, 7),
	}
}

func TestNew_SortsSeedAndRatesEditors(t *testing.T) {
	s := store.New(&mocks.Snapshotter{}, store.Options{Seed: seedOf(smallSeed())})

	var ids []string
	for _, p := range s.Projects() {
		ids = append(ids, p.ID)
	}
	require.Equal(t, []string{"PROJ-015", "PROJ-009", "PROJ-003"}, ids)

	for _, e := range s.ListEditors() {
		require.Equal(t, model.MinRating, e.Rating, e.ID)
	}
}

func TestDefaultSeed(t *testing.T) {
	seed := store.DefaultSeed()
	require.Len(t, seed.Editors, 4)
	require.Len(t, seed.Projects, 12)

	s := store.New(&mocks.Snapshotter{}, store.Options{})
	ratings := map[string]float64{}
	for _, e := range s.ListEditors() {
		ratings[e.ID] = e.Rating
	}
	require.Equal(t, map[string]float64{"ED-001": 5.0, "ED-002": 4.5, "ED-003": 5.0, "ED-004": 4.5}, ratings)
}

func TestAddProject_IssuesNextID(t *testing.T) {
	ctx := context.Background()
	s, _, _ := newSQLiteStore(t, smallSeed())

	p, err := s.AddProject(ctx, newProject("Sixteen"))
	require.NoError(t, err)
	require.Equal(t, "PROJ-016", p.ID)
	require.Equal(t, model.StatusNew, p.Status)
	require.Equal(t, now, p.CreationDate)
	require.Equal(t, "PROJ-016", s.Projects()[0].ID)

	got, ok := s.GetProjectByID("PROJ-016")
	require.True(t, ok)
	require.Equal(t, "Sixteen", got.Name)
}

func TestAddProject_EmptyCollection(t *testing.T) {
	ctx := context.Background()
	s, _, _ := newSQLiteStore(t, store.Seed{})

	p, err := s.AddProject(ctx, newProject("First"))
	require.NoError(t, err)
	require.Equal(t, "PROJ-001", p.ID)
}

func TestAddProject_Validation(t *testing.T) {
	ctx := context.Background()
	s := store.New(&mocks.Snapshotter{}, store.Options{Seed: seedOf(smallSeed())})

	_, err := s.AddProject(ctx, newProject("  "))
	require.ErrorIs(t, err, store.ErrInvalidInput)

	np := newProject("No deadline")
	np.Deadline = time.Time{}
	_, err = s.AddProject(ctx, np)
	require.ErrorIs(t, err, store.ErrInvalidInput)

	require.Len(t, s.Projects(), 3)
}

func TestUpdateProject_MergesFieldsAndRecomputesRatings(t *testing.T) {
	ctx := context.Background()
	s, _, _ := newSQLiteStore(t, smallSeed())

	p, _ := s.GetProjectByID("PROJ-009")
	patch := model.StatusPatch(p, model.StatusDone, now)
	patch.EditorID = model.StringPtr("ED-001")
	patch = patch.WithDerivedDates(p, now)

	updated, err := s.UpdateProject(ctx, "PROJ-009", patch)
	require.NoError(t, err)
	require.Equal(t, model.StatusDone, updated.Status)
	require.Equal(t, now, *updated.CompletionDate)
	require.Equal(t, now, *updated.AssignDate)
	require.Equal(t, "Nine", updated.Name)

	ed, ok := s.GetEditor("ED-001")
	require.True(t, ok)
	require.Equal(t, 5.0, ed.Rating)

	// Reopening drops the only completion, so the rating falls to the floor
	p, _ = s.GetProjectByID("PROJ-009")
	_, err = s.UpdateProject(ctx, "PROJ-009", model.StatusPatch(p, model.StatusInProgress, now))
	require.NoError(t, err)
	ed, _ = s.GetEditor("ED-001")
	require.Equal(t, model.MinRating, ed.Rating)
}

func TestUpdateProject_LateCompletionLowersRating(t *testing.T) {
	ctx := context.Background()
	snaps := &mocks.Snapshotter{}
	snaps.On("SaveProjects", ctx, mock.Anything).Return(nil)
	s := store.New(snaps, store.Options{Seed: seedOf(smallSeed()), Clock: clock})

	late := now.AddDate(0, 0, 6)
	status := model.StatusDone
	_, err := s.UpdateProject(ctx, "PROJ-003", model.Patch{
		Status:         &status,
		EditorID:       model.StringPtr("ED-002"),
		CompletionDate: &late,
	})
	require.NoError(t, err)

	ed, _ := s.GetEditor("ED-002")
	require.Equal(t, 4.5, ed.Rating)
	snaps.AssertNumberOfCalls(t, "SaveProjects", 1)
}

func TestUpdateProject_NotFound(t *testing.T) {
	ctx := context.Background()
	snaps := &mocks.Snapshotter{}
	s := store.New(snaps, store.Options{Seed: seedOf(smallSeed())})
	before := s.Projects()

	name := "x"
	_, err := s.UpdateProject(ctx, "PROJ-999", model.Patch{Name: &name})
	require.ErrorIs(t, err, store.ErrProjectNotFound)
	require.Equal(t, before, s.Projects())
	snaps.AssertNotCalled(t, "SaveProjects", mock.Anything, mock.Anything)
}

func TestDeleteProject(t *testing.T) {
	ctx := context.Background()
	s, snaps, _ := newSQLiteStore(t, smallSeed())

	require.NoError(t, s.DeleteProject(ctx, "PROJ-009"))
	_, ok := s.GetProjectByID("PROJ-009")
	require.False(t, ok)
	require.Len(t, s.Projects(), 2)

	saved, err := snaps.LoadProjects(ctx)
	require.NoError(t, err)
	require.Len(t, saved, 2)

	// Unknown ids are a no-op
	require.NoError(t, s.DeleteProject(ctx, "PROJ-009"))
	require.Len(t, s.Projects(), 2)
}

func TestPersistence_RoundTripWithImages(t *testing.T) {
	ctx := context.Background()
	conn, err := db.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	snaps, images := db.NewSnapshotStore(conn, 0), db.NewImageStore(conn, 0)

	s := store.New(snaps, store.Options{Images: images, Seed: seedOf(smallSeed()), Clock: clock})
	np := newProject("With image")
	np.ImageURL = "data:image/png;base64,AAAA"
	added, err := s.AddProject(ctx, np)
	require.NoError(t, err)

	np = newProject("Remote image")
	np.ImageURL = "https://cdn.example.com/a.jpg"
	_, err = s.AddProject(ctx, np)
	require.NoError(t, err)

	saved, err := snaps.LoadProjects(ctx)
	require.NoError(t, err)
	for _, p := range saved {
		require.NotContains(t, p.ImageURL, "data:", "inline images stay out of the snapshot")
	}
	stored, err := images.LoadImages(ctx)
	require.NoError(t, err)
	require.Equal(t, map[string]string{added.ID: "data:image/png;base64,AAAA"}, stored)

	reloaded := store.New(snaps, store.Options{Images: images, Seed: seedOf(store.DefaultSeed())})
	require.NoError(t, reloaded.Load(ctx))
	require.Equal(t, s.Projects(), reloaded.Projects())
}

func TestLoad_FallsBackToSeed(t *testing.T) {
	ctx := context.Background()

	missing := &mocks.Snapshotter{}
	missing.On("LoadProjects", ctx).Return(nil, db.ErrNoSnapshot)
	s := store.New(missing, store.Options{Seed: seedOf(smallSeed())})
	require.NoError(t, s.Load(ctx))
	require.Len(t, s.Projects(), 3)

	corrupt := &mocks.Snapshotter{}
	corrupt.On("LoadProjects", ctx).Return(nil, fmt.Errorf("%w: bad json", db.ErrCorruptSnapshot))
	s = store.New(corrupt, store.Options{Seed: seedOf(smallSeed())})
	require.NoError(t, s.Load(ctx))
	require.Len(t, s.Projects(), 3)
}

func TestLoad_DedupsSavedProjects(t *testing.T) {
	ctx := context.Background()
	seed := smallSeed()
	dup := append(model.CloneAll(seed.Projects), seed.Projects[0])

	snaps := &mocks.Snapshotter{}
	snaps.On("LoadProjects", ctx).Return(dup, nil)
	imgs := &mocks.ImageStore{}
	imgs.On("LoadImages", ctx).Return(nil, errors.New("redis down"))

	s := store.New(snaps, store.Options{Images: imgs, Seed: seedOf(store.Seed{Editors: seed.Editors})})
	require.NoError(t, s.Load(ctx))
	require.Len(t, s.Projects(), 3)
}

func TestResetData(t *testing.T) {
	ctx := context.Background()
	s, snaps, images := newSQLiteStore(t, smallSeed())

	np := newProject("Temp")
	np.ImageURL = "data:image/png;base64,AAAA"
	_, err := s.AddProject(ctx, np)
	require.NoError(t, err)
	require.NoError(t, s.DeleteProject(ctx, "PROJ-003"))

	require.NoError(t, s.ResetData(ctx))
	require.Len(t, s.Projects(), 3)
	_, ok := s.GetProjectByID("PROJ-003")
	require.True(t, ok)

	_, err = snaps.LoadProjects(ctx)
	require.ErrorIs(t, err, db.ErrNoSnapshot)
	stored, err := images.LoadImages(ctx)
	require.NoError(t, err)
	require.Empty(t, stored)
}

func TestDurabilityDegraded(t *testing.T) {
	ctx := context.Background()
	conn, err := db.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	s := store.New(db.NewSnapshotStore(conn, 32), store.Options{Seed: seedOf(smallSeed()), Clock: clock})

	p, err := s.AddProject(ctx, newProject("Too big to save"))
	require.ErrorIs(t, err, store.ErrDurabilityDegraded)
	require.ErrorIs(t, err, db.ErrQuotaExceeded)
	require.Equal(t, "PROJ-016", p.ID, "mutated value still returned")

	_, ok := s.GetProjectByID("PROJ-016")
	require.True(t, ok, "memory stays authoritative")
}

func TestResetData_ClearFailure(t *testing.T) {
	ctx := context.Background()
	snaps := &mocks.Snapshotter{}
	snaps.On("ClearProjects", ctx).Return(errors.New("disk full"))

	s := store.New(snaps, store.Options{Seed: seedOf(smallSeed())})
	err := s.ResetData(ctx)
	require.ErrorIs(t, err, store.ErrDurabilityDegraded)
	require.Len(t, s.Projects(), 3)
}

func TestListProjects(t *testing.T) {
	s := store.New(&mocks.Snapshotter{}, store.Options{})

	mine := s.ListProjects(query.Filter{EditorID: "ED-001"})
	require.NotEmpty(t, mine)
	for _, p := range mine {
		require.Equal(t, "ED-001", *p.EditorID)
	}

	// Search resolves editor names through the roster
	byName := s.ListProjects(query.Filter{Text: "lindqvist"})
	require.Equal(t, len(mine), len(byName))

	all := s.ListProjects(query.Filter{})
	require.Len(t, all, 12)
}

func TestProjects_ReturnsCopies(t *testing.T) {
	s := store.New(&mocks.Snapshotter{}, store.Options{Seed: seedOf(smallSeed())})

	ps := s.Projects()
	ps[0].Name = "mutated"
	ps[0].EditorID = model.StringPtr("ED-001")

	p, _ := s.GetProjectByID(ps[0].ID)
	require.NotEqual(t, "mutated", p.Name)
	require.Nil(t, p.EditorID)
}
