package fsutil

import (
	"fmt"

	"gitlab.com/tozd/go/errors"
)

// -- Errors --

// RenameError is returned when the OS refuses a rename.
type RenameError struct {
	Old   string
	New   string
	Cause error
}

func (e *RenameError) Error() string {
	return fmt.Sprintf("failed to rename %s to %s: %v", e.Old, e.New, e.Cause)
}
func (e *RenameError) Unwrap() error { return e.Cause }

// StatError is returned when a path cannot be inspected.
type StatError struct {
	Path  string
	Cause error
}

func (e *StatError) Error() string {
	return fmt.Sprintf("failed to stat %s: %v", e.Path, e.Cause)
}
func (e *StatError) Unwrap() error { return e.Cause }

// -- Sentinels --

var (
	ErrInvalidOffset = errors.Base("offset must be >= 0")
	ErrInvalidLimit  = errors.Base("limit must be >= 0")
)
