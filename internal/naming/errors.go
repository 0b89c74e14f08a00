package naming

import (
	"fmt"

	"gitlab.com/tozd/go/errors"
)

// -- Errors --

// CollisionLimitError is returned when every disambiguated candidate up to
// the configured bound already exists.
type CollisionLimitError struct {
	Path     string
	Attempts int
}

func (e *CollisionLimitError) Error() string {
	return fmt.Sprintf("no free name for %s after %d attempts", e.Path, e.Attempts)
}

// Is lets errors.Is(err, ErrCollisionLimit) match.
func (e *CollisionLimitError) Is(target error) bool { return target == ErrCollisionLimit }

// -- Sentinels --

var (
	ErrCollisionLimit = errors.Base("collision limit reached")
	ErrInvalidName    = errors.Base("sanitized name is empty or a dot entry")
)
