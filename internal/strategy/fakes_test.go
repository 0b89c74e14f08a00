package strategy

import (
	"context"
	"os"
	"strings"

	"github.com/Cyclone1070/renban/internal/model"
)

type fakeContent map[string]string

func (f fakeContent) ReadFileRange(path string, offset, limit int64) ([]byte, error) {
	body, ok := f[path]
	if !ok {
		return nil, os.ErrNotExist
	}
	if int64(len(body)) > limit {
		body = body[:limit]
	}
	return []byte(body), nil
}

type fakeSummarizer struct {
	answer string
	err    error
	seen   []string
}

func (f *fakeSummarizer) Summarize(_ context.Context, text string) (string, error) {
	f.seen = append(f.seen, text)
	return f.answer, f.err
}

type fakeOrderer struct {
	indices []int
	err     error
	calls   int
	labels  []string
}

func (f *fakeOrderer) Order(_ context.Context, labels []string) ([]int, error) {
	f.calls++
	f.labels = labels
	return f.indices, f.err
}

type fakeAuthors map[string]authorAnswer

type authorAnswer struct {
	name string
	err  error
}

func (f fakeAuthors) Author(_ context.Context, path string) (string, error) {
	a := f[path]
	return a.name, a.err
}

func entry(name string) model.FileEntry {
	ext := ""
	stem := name
	if i := strings.LastIndex(name, "."); i > 0 {
		stem, ext = name[:i], name[i:]
	}
	return model.FileEntry{Path: "/data/" + name, Name: name, Stem: stem, Ext: ext}
}

func entries(names ...string) []model.FileEntry {
	out := make([]model.FileEntry, len(names))
	for i, n := range names {
		out[i] = entry(n)
	}
	return out
}

func bases(plans []model.RenamePlan) []string {
	out := make([]string, len(plans))
	for i, p := range plans {
		out[i] = p.Base
	}
	return out
}

func sources(plans []model.RenamePlan) []string {
	out := make([]string, len(plans))
	for i, p := range plans {
		out[i] = p.Entry.Name
	}
	return out
}
