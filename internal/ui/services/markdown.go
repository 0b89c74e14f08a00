// Package services holds the rendering helpers the confirmation screen uses.
package services

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

// MarkdownRenderer renders markdown for a terminal of the given width.
type MarkdownRenderer interface {
	Render(content string, width int) (string, error)
}

// GlamourRenderer renders markdown with glamour, caching one renderer per width.
type GlamourRenderer struct {
	mu        sync.Mutex
	noColor   bool
	renderers map[int]*glamour.TermRenderer
}

// NewGlamourRenderer creates a GlamourRenderer. noColor selects the
// "notty" style, which emits no escape sequences.
func NewGlamourRenderer(noColor bool) *GlamourRenderer {
	return &GlamourRenderer{noColor: noColor, renderers: make(map[int]*glamour.TermRenderer)}
}

func (g *GlamourRenderer) Render(content string, width int) (string, error) {
	r, err := g.renderer(width)
	if err != nil {
		return "", err
	}
	return r.Render(content)
}

func (g *GlamourRenderer) renderer(width int) (*glamour.TermRenderer, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if r, ok := g.renderers[width]; ok {
		return r, nil
	}

	style := glamour.WithAutoStyle()
	if g.noColor {
		style = glamour.WithStandardStyle("notty")
	}
	r, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(width))
	if err != nil {
		return nil, err
	}
	g.renderers[width] = r
	return r, nil
}

// RenderMarkdown renders content, falling back to the raw text when the
// renderer is missing or fails.
func RenderMarkdown(content string, width int, renderer MarkdownRenderer) (string, error) {
	if renderer == nil {
		return content, nil
	}
	out, err := renderer.Render(content, width)
	if err != nil {
		return content, err
	}
	return strings.TrimRight(out, "\n"), nil
}
