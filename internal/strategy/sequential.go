package strategy

import (
	"context"
	"fmt"

	"github.com/Cyclone1070/renban/internal/model"
)

// Sequential numbers files in selection order.
type Sequential struct {
	start  int
	digits int
}

// NewSequential creates a zero-padded counter starting at start.
func NewSequential(start, digits int) *Sequential {
	return &Sequential{start: start, digits: digits}
}

func (s *Sequential) Kind() Kind { return KindSequential }

func (s *Sequential) Plan(_ context.Context, files []model.FileEntry) []model.RenamePlan {
	return numbered(files, s.start, s.digits)
}

// numbered assigns start, start+1, ... in the given order.
func numbered(files []model.FileEntry, start, digits int) []model.RenamePlan {
	plans := make([]model.RenamePlan, len(files))
	for i, f := range files {
		plans[i] = model.RenamePlan{
			Entry: f,
			Base:  fmt.Sprintf("%0*d", digits, start+i),
		}
	}
	return plans
}
