package db

import (
	"context"
	"fmt"
	"time"
)

// ImageStore keeps inline image payloads in their own table, out of the
// project snapshot
type ImageStore struct {
	db       *DB
	maxBytes int
}

// NewImageStore creates an image store. maxBytes <= 0 disables the
// per-image quota.
func NewImageStore(db *DB, maxBytes int) *ImageStore {
	return &ImageStore{db: db, maxBytes: maxBytes}
}

// LoadImages returns every payload keyed by project id
func (s *ImageStore) LoadImages(ctx context.Context) (map[string]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT project_id, data FROM images`)
	if err != nil {
		return nil, fmt.Errorf("reading images: %w", err)
	}
	defer rows.Close()

	images := make(map[string]string)
	for rows.Next() {
		var id, data string
		if err := rows.Scan(&id, &data); err != nil {
			return nil, fmt.Errorf("scanning image: %w", err)
		}
		images[id] = data
	}
	return images, rows.Err()
}

// SaveImages replaces the stored payloads with images
func (s *ImageStore) SaveImages(ctx context.Context, images map[string]string) error {
	for id, data := range images {
		if s.maxBytes > 0 && len(data) > s.maxBytes {
			return fmt.Errorf("%w: image for %s is %d bytes, limit %d", ErrQuotaExceeded, id, len(data), s.maxBytes)
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM images`); err != nil {
		return fmt.Errorf("clearing images: %w", err)
	}
	now := time.Now().UTC().Format(time.RFC3339)
	for id, data := range images {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO images (project_id, data, updated_at) VALUES (?, ?, ?)`, id, data, now); err != nil {
			return fmt.Errorf("writing image for %s: %w", id, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit images: %w", err)
	}
	return nil
}

// ClearImages deletes every payload
func (s *ImageStore) ClearImages(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM images`); err != nil {
		return fmt.Errorf("clearing images: %w", err)
	}
	return nil
}
