package store

import "errors"

var (
	// ErrProjectNotFound indicates the project doesn't exist.
	ErrProjectNotFound = errors.New("project not found")
	// ErrDurabilityDegraded indicates the change applied in memory but
	// could not be saved. The returned value is still current.
	ErrDurabilityDegraded = errors.New("change not persisted")
	// ErrInvalidInput indicates a project failed basic validation.
	ErrInvalidInput = errors.New("invalid project input")
)
