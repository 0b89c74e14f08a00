package strategy

import (
	"context"
	"fmt"

	"github.com/Cyclone1070/renban/internal/model"
)

// Size names files after their byte count.
type Size struct{}

func (Size) Kind() Kind { return KindSize }

func (Size) Plan(_ context.Context, files []model.FileEntry) []model.RenamePlan {
	plans := make([]model.RenamePlan, len(files))
	for i, f := range files {
		plans[i] = model.RenamePlan{Entry: f, Base: fmt.Sprintf("size_%dB", f.Size)}
	}
	return plans
}
