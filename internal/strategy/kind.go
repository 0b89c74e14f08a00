package strategy

import (
	"strings"

	"gitlab.com/tozd/go/errors"
)

// Kind is the closed set of naming strategies.
type Kind int

const (
	KindSequential Kind = iota
	KindDate
	KindSize
	KindAuthor
	KindAISummary
	KindAISort
)

// Kinds lists every strategy in menu order.
var Kinds = []Kind{KindSequential, KindDate, KindSize, KindAuthor, KindAISummary, KindAISort}

var kindNames = map[Kind]string{
	KindSequential: "simple",
	KindDate:       "date",
	KindSize:       "size",
	KindAuthor:     "author",
	KindAISummary:  "ai-summary",
	KindAISort:     "ai-sort",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// NeedsAI reports whether the strategy consults the AI capability.
func (k Kind) NeedsAI() bool {
	return k == KindAISummary || k == KindAISort
}

// ParseKind maps a user-facing mode name to its Kind.
// "sequential" is accepted as an alias of "simple".
func ParseKind(name string) (Kind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "sequential" {
		return KindSequential, nil
	}
	for kind, n := range kindNames {
		if n == name {
			return kind, nil
		}
	}
	return 0, errors.WithDetails(ErrUnknownKind, "mode", name)
}
