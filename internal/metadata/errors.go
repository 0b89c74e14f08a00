package metadata

import (
	"fmt"

	"gitlab.com/tozd/go/errors"
)

// -- Errors --

// ExtractError is returned when a supported file cannot be parsed.
type ExtractError struct {
	Path  string
	Cause error
}

func (e *ExtractError) Error() string {
	return fmt.Sprintf("failed to extract metadata from %s: %v", e.Path, e.Cause)
}
func (e *ExtractError) Unwrap() error { return e.Cause }

// -- Sentinels --

var (
	// ErrUnsupportedFormat means the file type carries no author field we read.
	ErrUnsupportedFormat = errors.Base("metadata format not supported")
	// ErrAuthorAbsent means the format is supported but no author is recorded.
	ErrAuthorAbsent = errors.Base("author not recorded")
)
