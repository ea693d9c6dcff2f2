package mocks

import (
	"context"

	"github.com/existflow/mergeflow/internal/model"
	"github.com/stretchr/testify/mock"
)

// Snapshotter is a mock for store.Snapshotter.
type Snapshotter struct {
	mock.Mock
}

func (m *Snapshotter) LoadProjects(ctx context.Context) ([]model.Project, error) {
	args := m.Called(ctx)
	if projects, ok := args.Get(0).([]model.Project); ok {
		return projects, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Snapshotter) SaveProjects(ctx context.Context, projects []model.Project) error {
	args := m.Called(ctx, projects)
	return args.Error(0)
}

func (m *Snapshotter) ClearProjects(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// ImageStore is a mock for store.ImageStore.
type ImageStore struct {
	mock.Mock
}

func (m *ImageStore) LoadImages(ctx context.Context) (map[string]string, error) {
	args := m.Called(ctx)
	if images, ok := args.Get(0).(map[string]string); ok {
		return images, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ImageStore) SaveImages(ctx context.Context, images map[string]string) error {
	args := m.Called(ctx, images)
	return args.Error(0)
}

func (m *ImageStore) ClearImages(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
