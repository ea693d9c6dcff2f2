package db

import "errors"

var (
	// ErrNoSnapshot indicates nothing has been saved under the key yet.
	ErrNoSnapshot = errors.New("no snapshot")
	// ErrCorruptSnapshot indicates the saved value could not be decoded.
	ErrCorruptSnapshot = errors.New("corrupt snapshot")
	// ErrQuotaExceeded indicates a value is larger than the configured limit.
	ErrQuotaExceeded = errors.New("storage quota exceeded")
)
