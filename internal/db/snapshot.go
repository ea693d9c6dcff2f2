package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/existflow/mergeflow/internal/model"
)

// ProjectsKey is the snapshot key holding the project collection
const ProjectsKey = "mergeflow_projects"

// SnapshotStore keeps the project collection as one JSON value
type SnapshotStore struct {
	db       *DB
	key      string
	maxBytes int
}

// NewSnapshotStore creates a snapshot store. maxBytes <= 0 disables the quota.
func NewSnapshotStore(db *DB, maxBytes int) *SnapshotStore {
	return &SnapshotStore{db: db, key: ProjectsKey, maxBytes: maxBytes}
}

// LoadProjects decodes the saved collection
func (s *SnapshotStore) LoadProjects(ctx context.Context) ([]model.Project, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM snapshots WHERE key = ?`, s.key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoSnapshot
	}
	if err != nil {
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}

	var projects []model.Project
	if err := json.Unmarshal([]byte(value), &projects); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptSnapshot, err)
	}
	return projects, nil
}

// SaveProjects replaces the saved collection
func (s *SnapshotStore) SaveProjects(ctx context.Context, projects []model.Project) error {
	if projects == nil {
		projects = []model.Project{}
	}
	data, err := json.Marshal(projects)
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	if s.maxBytes > 0 && len(data) > s.maxBytes {
		return fmt.Errorf("%w: snapshot is %d bytes, limit %d", ErrQuotaExceeded, len(data), s.maxBytes)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO snapshots (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		s.key, string(data), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	return nil
}

// ClearProjects deletes the saved collection
func (s *SnapshotStore) ClearProjects(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM snapshots WHERE key = ?`, s.key); err != nil {
		return fmt.Errorf("clearing snapshot: %w", err)
	}
	return nil
}
