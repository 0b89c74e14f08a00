// Package provider defines the AI capability used by the ai-summary and
// ai-sort modes, and the errors its backends report.
package provider

import (
	"context"
)

// Provider is a text-generation backend that can name and order files.
type Provider interface {
	// Summarize returns a short English phrase usable as a file name.
	Summarize(ctx context.Context, text string) (string, error)

	// Order returns the indices of labels in a logical order. The result is
	// the model's raw answer; callers validate that it is a permutation.
	Order(ctx context.Context, labels []string) ([]int, error)
}
