package orchestrator

import (
	"gitlab.com/tozd/go/errors"
)

// -- Sentinels --

var (
	ErrRootRequired     = errors.Base("root directory is required")
	ErrInvalidMode      = errors.Base("invalid rename mode")
	ErrInvalidAttempts  = errors.Base("max collision attempts must be >= 0")
	ErrInvalidState     = errors.Base("operation not allowed in current state")
	ErrInterrupted      = errors.Base("run interrupted")
	ErrInvalidRunConfig = errors.Base("invalid run configuration")
)
