package store

import (
	"context"

	"github.com/existflow/mergeflow/internal/model"
)

// Snapshotter persists the whole project collection as one value.
// LoadProjects returns db.ErrNoSnapshot when nothing was saved yet.
type Snapshotter interface {
	LoadProjects(ctx context.Context) ([]model.Project, error)
	SaveProjects(ctx context.Context, projects []model.Project) error
	ClearProjects(ctx context.Context) error
}

// ImageStore persists inline image payloads keyed by project id
type ImageStore interface {
	LoadImages(ctx context.Context) (map[string]string, error)
	SaveImages(ctx context.Context, images map[string]string) error
	ClearImages(ctx context.Context) error
}
