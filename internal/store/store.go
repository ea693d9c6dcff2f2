// Package store owns the project collection and the editor roster.
// Every mutation recomputes ratings before it returns, then saves.
package store

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/existflow/mergeflow/internal/db"
	"github.com/existflow/mergeflow/internal/logger"
	"github.com/existflow/mergeflow/internal/model"
	"github.com/existflow/mergeflow/internal/query"
	"github.com/existflow/mergeflow/internal/rating"
)

// dataURLPrefix marks an inline image payload
const dataURLPrefix = "data:"

// Store is the single source of truth for projects and editors
type Store struct {
	mu       sync.RWMutex
	projects []model.Project
	editors  []model.Editor

	snapshots Snapshotter
	images    ImageStore
	seed      Seed
	now       func() time.Time
	log       *logger.Logger
}

// New creates a store holding the seed dataset. Call Load to replace it
// with the saved snapshot.
func New(snapshots Snapshotter, opts Options) *Store {
	opts = opts.withDefaults()
	s := &Store{
		snapshots: snapshots,
		images:    opts.Images,
		seed:      *opts.Seed,
		now:       opts.Clock,
		log:       opts.Logger,
	}
	s.restoreSeed()
	return s
}

func (s *Store) restoreSeed() {
	s.projects = sortByID(model.CloneAll(s.seed.Projects))
	s.editors = rating.Recompute(s.seed.Editors, s.projects)
}

// Load reads the saved snapshot and merges inline images back in. A
// missing or unreadable snapshot falls back to the seed.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	projects, err := s.snapshots.LoadProjects(ctx)
	switch {
	case errors.Is(err, db.ErrNoSnapshot):
		s.log.Info("no snapshot, using seed data")
		s.restoreSeed()
		return nil
	case err != nil:
		s.log.Warn("snapshot unreadable, using seed data", logger.Err(err))
		s.restoreSeed()
		return nil
	}

	if s.images != nil {
		images, err := s.images.LoadImages(ctx)
		if err != nil {
			s.log.Warn("failed to load images", logger.Err(err))
		}
		for i := range projects {
			if img, ok := images[projects[i].ID]; ok && projects[i].ImageURL == "" {
				projects[i].ImageURL = img
			}
		}
	}

	s.projects = sortByID(query.Dedup(projects))
	s.editors = rating.Recompute(s.seed.Editors, s.projects)
	s.log.Info("snapshot loaded", logger.F("projects", len(s.projects)))
	return nil
}

// AddProject issues the next id, stores the project and returns it
func (s *Store) AddProject(ctx context.Context, np model.NewProject) (model.Project, error) {
	if strings.TrimSpace(np.Name) == "" {
		return model.Project{}, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if np.Deadline.IsZero() {
		return model.Project{}, fmt.Errorf("%w: deadline is required", ErrInvalidInput)
	}
	if np.PicturesEdited < 0 {
		return model.Project{}, fmt.Errorf("%w: pictures edited must not be negative", ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p := np.Project(model.FormatID(nextSeq(s.projects)), s.now())
	s.projects = sortByID(append([]model.Project{p}, s.projects...))
	s.afterMutation()

	s.log.Info("project added", logger.F("id", p.ID), logger.F("status", p.Status))
	return p.Clone(), s.persist(ctx)
}

// UpdateProject merges the patch into the project with the given id
func (s *Store) UpdateProject(ctx context.Context, id string, patch model.Patch) (model.Project, error) {
	if patch.PicturesEdited != nil && *patch.PicturesEdited < 0 {
		return model.Project{}, fmt.Errorf("%w: pictures edited must not be negative", ErrInvalidInput)
	}
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return model.Project{}, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return model.Project{}, fmt.Errorf("%w: %s", ErrProjectNotFound, id)
	}

	updated := patch.Apply(s.projects[idx])
	s.projects = slices.Clone(s.projects)
	s.projects[idx] = updated
	s.afterMutation()

	s.log.Info("project updated", logger.F("id", id), logger.F("status", updated.Status))
	return updated.Clone(), s.persist(ctx)
}

// DeleteProject removes the project. Deleting an unknown id is a no-op.
func (s *Store) DeleteProject(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		s.log.Debug("delete of unknown project ignored", logger.F("id", id))
		return nil
	}

	s.projects = slices.Delete(slices.Clone(s.projects), idx, idx+1)
	s.afterMutation()

	s.log.Info("project deleted", logger.F("id", id))
	return s.persist(ctx)
}

// ResetData wipes saved data and restores the seed
func (s *Store) ResetData(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var errs []error
	if err := s.snapshots.ClearProjects(ctx); err != nil {
		errs = append(errs, err)
	}
	if s.images != nil {
		if err := s.images.ClearImages(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	s.restoreSeed()

	s.log.Info("data reset to seed", logger.F("projects", len(s.projects)))
	if len(errs) > 0 {
		err := errors.Join(errs...)
		s.log.Warn("failed to clear saved data", logger.Err(err))
		return fmt.Errorf("%w: %w", ErrDurabilityDegraded, err)
	}
	return nil
}

// GetProjectByID returns a copy of the project
func (s *Store) GetProjectByID(id string) (model.Project, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return model.Project{}, false
	}
	return s.projects[idx].Clone(), true
}

// Projects returns a copy of every project, highest id first
func (s *Store) Projects() []model.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return model.CloneAll(s.projects)
}

// ListProjects returns the projects passing the filter
func (s *Store) ListProjects(f query.Filter) []model.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return model.CloneAll(f.Apply(s.projects, query.NewRoster(s.editors)))
}

// ListEditors returns the roster with current ratings
func (s *Store) ListEditors() []model.Editor {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.editors)
}

// GetEditor looks an editor up by id
func (s *Store) GetEditor(id string) (model.Editor, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.editors {
		if e.ID == id {
			return e, true
		}
	}
	return model.Editor{}, false
}

// Roster indexes the current editors for queries
func (s *Store) Roster() query.Roster {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return query.NewRoster(s.editors)
}

// Now is the store's clock
func (s *Store) Now() time.Time {
	return s.now()
}

func (s *Store) indexOf(id string) int {
	return slices.IndexFunc(s.projects, func(p model.Project) bool { return p.ID == id })
}

// afterMutation must run with the write lock held
func (s *Store) afterMutation() {
	s.editors = rating.Recompute(s.editors, s.projects)
}

// persist saves the snapshot and images. Caller holds the write lock.
func (s *Store) persist(ctx context.Context) error {
	snapshot, images := splitImages(s.projects)

	var errs []error
	if err := s.snapshots.SaveProjects(ctx, snapshot); err != nil {
		errs = append(errs, fmt.Errorf("saving snapshot: %w", err))
	}
	if s.images != nil {
		if err := s.images.SaveImages(ctx, images); err != nil {
			errs = append(errs, fmt.Errorf("saving images: %w", err))
		}
	}
	if len(errs) == 0 {
		return nil
	}

	err := errors.Join(errs...)
	s.log.Warn("durability degraded", logger.Err(err))
	return fmt.Errorf("%w: %w", ErrDurabilityDegraded, err)
}

// splitImages copies projects with inline images stripped, and returns
// the stripped payloads by project id
func splitImages(projects []model.Project) ([]model.Project, map[string]string) {
	out := model.CloneAll(projects)
	images := make(map[string]string)
	for i := range out {
		if strings.HasPrefix(out[i].ImageURL, dataURLPrefix) {
			images[out[i].ID] = out[i].ImageURL
			out[i].ImageURL = ""
		}
	}
	return out, images
}

func nextSeq(projects []model.Project) int {
	highest := 0
	for _, p := range projects {
		if n, ok := model.ParseID(p.ID); ok && n > highest {
			highest = n
		}
	}
	return highest + 1
}

// sortByID orders by numeric id suffix descending. Ids without a numeric
// suffix go last, by string descending.
func sortByID(projects []model.Project) []model.Project {
	slices.SortStableFunc(projects, func(a, b model.Project) int {
		na, oka := model.ParseID(a.ID)
		nb, okb := model.ParseID(b.ID)
		switch {
		case oka && okb:
			if na != nb {
				return nb - na
			}
		case oka:
			return -1
		case okb:
			return 1
		}
		return strings.Compare(b.ID, a.ID)
	})
	return projects
}
