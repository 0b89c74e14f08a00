// Package testhelpers provides shared fixtures and capability mocks for
// tests that run whole rename passes against temporary directories.
package testhelpers

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// CreateTree creates a temporary directory holding the given files, each
// with its relative path as content. Paths may contain subdirectories.
func CreateTree(t *testing.T, files ...string) string {
	t.Helper()
	root := t.TempDir()
	WriteFiles(t, root, files...)
	return root
}

// WriteFiles adds files below root, creating parent directories as needed.
func WriteFiles(t *testing.T, root string, files ...string) {
	t.Helper()
	for _, rel := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(rel), 0o644))
	}
}

// ListTree returns the slash-separated relative paths of every regular
// file below root, sorted.
func ListTree(t *testing.T, root string) []string {
	t.Helper()
	var out []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Type().IsRegular() {
			rel, err := filepath.Rel(root, path)
			if err != nil {
				return err
			}
			out = append(out, filepath.ToSlash(rel))
		}
		return nil
	})
	require.NoError(t, err)
	sort.Strings(out)
	return out
}

// ReadContent returns the content of a file below root.
func ReadContent(t *testing.T, root, rel string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
	require.NoError(t, err)
	return string(data)
}

// MockSummarizer is a controllable Summarizer.
type MockSummarizer struct {
	mu            sync.Mutex
	SummarizeFunc func(ctx context.Context, text string) (string, error)
	Calls         []string
}

func (m *MockSummarizer) Summarize(ctx context.Context, text string) (string, error) {
	m.mu.Lock()
	m.Calls = append(m.Calls, text)
	m.mu.Unlock()
	if m.SummarizeFunc != nil {
		return m.SummarizeFunc(ctx, text)
	}
	return "Summary", nil
}

// CallCount returns the number of Summarize calls.
func (m *MockSummarizer) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

// MockOrderer is a controllable Orderer.
type MockOrderer struct {
	mu        sync.Mutex
	OrderFunc func(ctx context.Context, labels []string) ([]int, error)
	Calls     [][]string
}

// NewStaticOrderer answers every call with indices.
func NewStaticOrderer(indices ...int) *MockOrderer {
	return &MockOrderer{
		OrderFunc: func(context.Context, []string) ([]int, error) {
			return append([]int(nil), indices...), nil
		},
	}
}

func (m *MockOrderer) Order(ctx context.Context, labels []string) ([]int, error) {
	m.mu.Lock()
	m.Calls = append(m.Calls, labels)
	m.mu.Unlock()
	if m.OrderFunc != nil {
		return m.OrderFunc(ctx, labels)
	}
	identity := make([]int, len(labels))
	for i := range identity {
		identity[i] = i
	}
	return identity, nil
}

// CallCount returns the number of Order calls.
func (m *MockOrderer) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

// MockAuthorReader answers Author by base name.
type MockAuthorReader struct {
	Authors map[string]string // base name -> author
	Errors  map[string]error  // base name -> error
}

func (m *MockAuthorReader) Author(_ context.Context, path string) (string, error) {
	name := filepath.Base(path)
	if err, ok := m.Errors[name]; ok {
		return "", err
	}
	return m.Authors[name], nil
}
