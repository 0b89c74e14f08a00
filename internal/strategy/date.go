package strategy

import (
	"context"
	"time"

	"github.com/lestrrat-go/strftime"
	"gitlab.com/tozd/go/errors"

	"github.com/Cyclone1070/renban/internal/model"
)

// Date names files after their modification or creation timestamp.
type Date struct {
	kind     DateKind
	format   *strftime.Strftime
	location *time.Location
}

// NewDate compiles the strftime pattern once.
func NewDate(kind DateKind, pattern string, loc *time.Location) (*Date, error) {
	switch kind {
	case "":
		kind = DateModified
	case DateModified, DateCreated:
	default:
		return nil, errors.WithDetails(ErrInvalidDateKind, "kind", string(kind))
	}
	if pattern == "" {
		pattern = DefaultDateFormat
	}
	f, err := strftime.New(pattern)
	if err != nil {
		return nil, errors.WrapWith(err, ErrInvalidDateFormat)
	}
	if loc == nil {
		loc = time.Local
	}
	return &Date{kind: kind, format: f, location: loc}, nil
}

func (d *Date) Kind() Kind { return KindDate }

func (d *Date) Plan(_ context.Context, files []model.FileEntry) []model.RenamePlan {
	plans := make([]model.RenamePlan, len(files))
	for i, f := range files {
		ts := f.ModTime
		if d.kind == DateCreated {
			ts = f.CreatedTime
		}
		plans[i] = model.RenamePlan{Entry: f, Base: d.format.FormatString(ts.In(d.location))}
	}
	return plans
}
