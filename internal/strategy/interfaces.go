package strategy

import (
	"context"

	"github.com/Cyclone1070/renban/internal/model"
)

// Strategy maps the ordered selection to proposed base names.
// Plan is total: capability failures become placeholder names.
type Strategy interface {
	Kind() Kind
	Plan(ctx context.Context, files []model.FileEntry) []model.RenamePlan
}

// AuthorReader extracts the author recorded inside a file.
// Implementations report metadata.ErrUnsupportedFormat and
// metadata.ErrAuthorAbsent for the two non-failure misses.
type AuthorReader interface {
	Author(ctx context.Context, path string) (string, error)
}

// Summarizer produces a short description of text.
type Summarizer interface {
	Summarize(ctx context.Context, text string) (string, error)
}

// Orderer returns a permutation of label indices in a meaningful order.
type Orderer interface {
	Order(ctx context.Context, labels []string) ([]int, error)
}

// ContentReader reads a bounded prefix of a file.
type ContentReader interface {
	ReadFileRange(path string, offset, limit int64) ([]byte, error)
}
