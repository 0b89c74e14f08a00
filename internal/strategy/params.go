package strategy

import (
	"time"
)

// DateKind selects which timestamp the date strategy formats.
type DateKind string

const (
	DateModified DateKind = "modified"
	DateCreated  DateKind = "created"
)

// Defaults mirror the interactive tool's prompts.
const (
	DefaultStart           = 1
	DefaultDigits          = 3
	DefaultDateFormat      = "%Y-%m-%d_%H%M%S"
	DefaultSummaryMaxChars = 10000
)

// Params carries the strategy-specific settings of a run.
type Params struct {
	Start           int
	Digits          int
	DateKind        DateKind
	DateFormat      string         // strftime pattern
	Location        *time.Location // nil means time.Local
	SummaryMaxChars int
}

// DefaultParams returns the interactive tool's defaults.
func DefaultParams() Params {
	return Params{
		Start:           DefaultStart,
		Digits:          DefaultDigits,
		DateKind:        DateModified,
		DateFormat:      DefaultDateFormat,
		SummaryMaxChars: DefaultSummaryMaxChars,
	}
}

// Dependencies are the capabilities strategies may consult. Any of the
// capability fields may be nil; the strategies that need them fall back
// to placeholders or the original order.
type Dependencies struct {
	Content    ContentReader
	Author     AuthorReader
	Summarizer Summarizer
	Orderer    Orderer
}
