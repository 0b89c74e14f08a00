package strategy

import (
	"gitlab.com/tozd/go/errors"
)

// -- Sentinels --

var (
	ErrUnknownKind       = errors.Base("unknown rename mode")
	ErrInvalidDateFormat = errors.Base("invalid date format")
	ErrInvalidDigits     = errors.Base("digits must be >= 0")
	ErrInvalidDateKind   = errors.Base("date kind must be modified or created")
	ErrInvalidOrder      = errors.Base("ordering is not a permutation of the input")
)
