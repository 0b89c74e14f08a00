package strategy

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/Cyclone1070/renban/internal/metadata"
	"github.com/Cyclone1070/renban/internal/model"
)

// Author prefixes each stem with the author stored in the file's metadata.
type Author struct {
	reader AuthorReader
}

// NewAuthor creates an author strategy. A nil reader treats every format as unsupported.
func NewAuthor(reader AuthorReader) *Author {
	return &Author{reader: reader}
}

func (a *Author) Kind() Kind { return KindAuthor }

func (a *Author) Plan(ctx context.Context, files []model.FileEntry) []model.RenamePlan {
	plans := make([]model.RenamePlan, len(files))
	for i, f := range files {
		plans[i] = model.RenamePlan{Entry: f, Base: a.author(ctx, f) + "_" + f.Stem}
	}
	return plans
}

func (a *Author) author(ctx context.Context, f model.FileEntry) string {
	if a.reader == nil {
		return AuthorNotSupported
	}
	name, err := a.reader.Author(ctx, f.Path)
	switch {
	case errors.Is(err, metadata.ErrUnsupportedFormat):
		return AuthorNotSupported
	case errors.Is(err, metadata.ErrAuthorAbsent):
		return AuthorAbsent
	case err != nil:
		zerolog.Ctx(ctx).Debug().Err(err).Str("path", f.Path).Msg("author extraction failed")
		return AuthorFailed
	}
	if name = strings.TrimSpace(name); name == "" {
		return AuthorAbsent
	}
	return name
}
