package store

import "fmt"

// StorageError wraps database failures so callers can distinguish
// persistence problems from validation or generation errors and degrade
// gracefully (a practice session keeps running even when a write
// fails).
type StorageError struct {
	Op  string // operation that failed: open, migrate, append, query, clear
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
