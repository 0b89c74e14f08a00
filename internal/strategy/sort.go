package strategy

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/Cyclone1070/renban/internal/model"
)

// AISort lets the AI capability reorder the selection, then numbers it.
type AISort struct {
	orderer Orderer
	start   int
	digits  int
}

// NewAISort creates the AI ordering strategy. A nil orderer keeps selection order.
func NewAISort(orderer Orderer, start, digits int) *AISort {
	return &AISort{orderer: orderer, start: start, digits: digits}
}

func (s *AISort) Kind() Kind { return KindAISort }

func (s *AISort) Plan(ctx context.Context, files []model.FileEntry) []model.RenamePlan {
	return numbered(s.order(ctx, files), s.start, s.digits)
}

// order returns files in the AI-chosen order, or unchanged when the
// capability is missing, fails, or answers with something that is not a
// permutation.
func (s *AISort) order(ctx context.Context, files []model.FileEntry) []model.FileEntry {
	log := zerolog.Ctx(ctx)

	if s.orderer == nil || len(files) < 2 {
		return files
	}

	labels := make([]string, len(files))
	for i, f := range files {
		labels[i] = fmt.Sprintf("[%d] %s", i, f.Name)
	}

	indices, err := s.orderer.Order(ctx, labels)
	if err != nil {
		log.Warn().Err(err).Msg("AI ordering failed, keeping selection order")
		return files
	}
	if err := ValidatePermutation(indices, len(files)); err != nil {
		log.Warn().Err(err).Ints("indices", indices).Msg("AI returned an invalid order, keeping selection order")
		return files
	}

	ordered := make([]model.FileEntry, len(files))
	for i, idx := range indices {
		ordered[i] = files[idx]
	}
	return ordered
}

// ValidatePermutation checks that indices holds each of 0..n-1 exactly once.
func ValidatePermutation(indices []int, n int) error {
	if len(indices) != n {
		return errors.WithDetails(ErrInvalidOrder, "want", n, "got", len(indices))
	}
	seen := make([]bool, n)
	for _, idx := range indices {
		if idx < 0 || idx >= n {
			return errors.WithDetails(ErrInvalidOrder, "index", idx, "reason", "out of range")
		}
		if seen[idx] {
			return errors.WithDetails(ErrInvalidOrder, "index", idx, "reason", "duplicate")
		}
		seen[idx] = true
	}
	return nil
}
