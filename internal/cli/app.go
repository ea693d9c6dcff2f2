package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/existflow/mergeflow/internal/config"
	"github.com/existflow/mergeflow/internal/db"
	"github.com/existflow/mergeflow/internal/imagecache"
	"github.com/existflow/mergeflow/internal/logger"
	"github.com/existflow/mergeflow/internal/store"
	"github.com/spf13/cobra"
)

// app is an open database plus the store loaded from it
type app struct {
	db      *db.DB
	store   *store.Store
	closers []io.Closer
}

// openApp opens the database, picks the image backend and loads the store
func openApp(ctx context.Context, cfg *config.Config) (*app, error) {
	conn, err := db.Open(cfg.DBPath)
	if err != nil {
		logger.Error("Failed to open database", logger.F("path", cfg.DBPath), logger.Err(err))
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	a := &app{db: conn}

	a.store = store.New(db.NewSnapshotStore(conn, cfg.Storage.MaxSnapshotBytes), store.Options{
		Images: a.imageStore(ctx, cfg),
		Logger: logger.WithFields(logger.F("component", "store"), logger.F("run", runID)),
	})
	if err := a.store.Load(ctx); err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to load projects: %w", err)
	}
	return a, nil
}

// imageStore returns the configured image backend. An unreachable Redis
// falls back to the SQLite table.
func (a *app) imageStore(ctx context.Context, cfg *config.Config) store.ImageStore {
	switch cfg.Images.Backend {
	case config.ImagesNone:
		return nil
	case config.ImagesRedis:
		rs := imagecache.NewRedisStore(cfg.Images.RedisAddr, cfg.Images.RedisPassword, cfg.Images.TTL, cfg.Storage.MaxImageBytes)
		if err := rs.Ping(ctx); err != nil {
			logger.Warn("Redis unreachable, keeping images in SQLite",
				logger.F("addr", cfg.Images.RedisAddr), logger.Err(err))
			_ = rs.Close()
			break
		}
		a.closers = append(a.closers, rs)
		return rs
	}
	return db.NewImageStore(a.db, cfg.Storage.MaxImageBytes)
}

// Close releases the image backend and the database
func (a *app) Close() {
	for _, c := range a.closers {
		_ = c.Close()
	}
	if err := a.db.Close(); err != nil {
		logger.Warn("Failed to close database", logger.Err(err))
	}
}

// withApp runs fn against an opened app and closes it afterwards
func withApp(cmd *cobra.Command, fn func(a *app) error) error {
	a, err := openApp(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer a.Close()
	return fn(a)
}

// saveErr turns a failed save into a command error. The change itself was
// applied in memory but is lost once the command exits.
func saveErr(err error) error {
	if errors.Is(err, store.ErrDurabilityDegraded) {
		return fmt.Errorf("change was not saved: %w", err)
	}
	return err
}
