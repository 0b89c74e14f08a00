package selector

import (
	"fmt"

	"gitlab.com/tozd/go/errors"
)

// -- Errors --

// InvalidPatternError is returned for an include/exclude glob doublestar rejects.
type InvalidPatternError struct {
	Pattern string
}

func (e *InvalidPatternError) Error() string {
	return fmt.Sprintf("invalid pattern %q", e.Pattern)
}

// Is lets errors.Is(err, ErrInvalidPattern) match.
func (e *InvalidPatternError) Is(target error) bool { return target == ErrInvalidPattern }

// GitignoreReadError is returned when .gitignore exists but cannot be read.
type GitignoreReadError struct {
	Path  string
	Cause error
}

func (e *GitignoreReadError) Error() string {
	return fmt.Sprintf("failed to read .gitignore at %s: %v", e.Path, e.Cause)
}
func (e *GitignoreReadError) Unwrap() error { return e.Cause }

// -- Sentinels --

var (
	ErrRootRequired     = errors.Base("root directory is required")
	ErrRootNotFound     = errors.Base("root directory does not exist")
	ErrRootNotDirectory = errors.Base("root is not a directory")
	ErrInvalidPattern   = errors.Base("invalid pattern")
)
