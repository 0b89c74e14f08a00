package orchestrator

import (
	"context"
	"slices"
	"strings"

	"github.com/Cyclone1070/renban/internal/strategy"
)

// memoSummarizer answers repeated texts from the first successful reply so
// the apply pass names files the way the preview showed.
type memoSummarizer struct {
	next    strategy.Summarizer
	answers map[string]string
}

func newMemoSummarizer(next strategy.Summarizer) *memoSummarizer {
	return &memoSummarizer{next: next, answers: make(map[string]string)}
}

func (m *memoSummarizer) Summarize(ctx context.Context, text string) (string, error) {
	if answer, ok := m.answers[text]; ok {
		return answer, nil
	}
	answer, err := m.next.Summarize(ctx, text)
	if err != nil {
		return "", err
	}
	m.answers[text] = answer
	return answer, nil
}

// memoOrderer does the same for orderings, keyed by the full label list.
type memoOrderer struct {
	next    strategy.Orderer
	answers map[string][]int
}

func newMemoOrderer(next strategy.Orderer) *memoOrderer {
	return &memoOrderer{next: next, answers: make(map[string][]int)}
}

func (m *memoOrderer) Order(ctx context.Context, labels []string) ([]int, error) {
	key := strings.Join(labels, "\x00")
	if answer, ok := m.answers[key]; ok {
		return slices.Clone(answer), nil
	}
	answer, err := m.next.Order(ctx, labels)
	if err != nil {
		return nil, err
	}
	m.answers[key] = slices.Clone(answer)
	return answer, nil
}
