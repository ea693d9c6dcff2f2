package store

import (
	"time"

	"github.com/existflow/mergeflow/internal/logger"
)

// Options configures a Store. Zero fields take defaults.
type Options struct {
	// Images keeps inline image payloads. Nil keeps them in memory only.
	Images ImageStore
	// Seed replaces the built-in seed dataset when set
	Seed *Seed
	// Clock overrides time.Now
	Clock  func() time.Time
	Logger *logger.Logger
}

func (o Options) withDefaults() Options {
	if o.Seed == nil {
		seed := DefaultSeed()
		o.Seed = &seed
	}
	if o.Clock == nil {
		o.Clock = time.Now
	}
	if o.Logger == nil {
		o.Logger = logger.Discard()
	}
	return o
}
