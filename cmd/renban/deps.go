package main

import (
	"context"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/Cyclone1070/renban/internal/config"
	"github.com/Cyclone1070/renban/internal/fsutil"
	"github.com/Cyclone1070/renban/internal/metadata"
	"github.com/Cyclone1070/renban/internal/provider"
	"github.com/Cyclone1070/renban/internal/provider/gemini"
	"github.com/Cyclone1070/renban/internal/strategy"
	"github.com/Cyclone1070/renban/internal/ui"
)

// Environment variables holding the Gemini API key, in lookup order.
var apiKeyEnv = []string{"GEMINI_API_KEY", "GOOGLE_API_KEY"}

// Dependencies holds the components required to run the application.
// Tests replace the interactive and networked ones.
type Dependencies struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	Getenv     func(string) string
	LoadConfig func() (*config.Config, error)
	FS         *fsutil.OSFileSystem
	Author     strategy.AuthorReader

	// NewProvider creates the AI capability for an API key.
	NewProvider func(ctx context.Context, apiKey, model string) (provider.Provider, error)
	// NewModelLister creates the client behind "renban models".
	NewModelLister func(ctx context.Context, apiKey string) (modelLister, error)

	IsTerminal func(r io.Reader) bool
	Confirm    func(ctx context.Context, preview, question string, styles ui.Styles) (bool, error)
}

type modelLister interface {
	ListModels(ctx context.Context) ([]gemini.ModelInfo, error)
}

func defaultDependencies() Dependencies {
	return Dependencies{
		Stdin:      os.Stdin,
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
		Getenv:     os.Getenv,
		LoadConfig: config.Load,
		FS:         fsutil.NewOSFileSystem(),
		Author:     metadata.NewExtractor(),
		NewProvider: func(ctx context.Context, apiKey, model string) (provider.Provider, error) {
			client, err := gemini.NewClientFromAPIKey(ctx, apiKey)
			if err != nil {
				return nil, err
			}
			return gemini.New(client, model), nil
		},
		NewModelLister: func(ctx context.Context, apiKey string) (modelLister, error) {
			return gemini.NewClientFromAPIKey(ctx, apiKey)
		},
		IsTerminal: isTerminal,
		Confirm: func(ctx context.Context, preview, question string, styles ui.Styles) (bool, error) {
			return ui.Confirm(ctx, preview, question, styles)
		},
	}
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (d Dependencies) apiKey() string {
	for _, name := range apiKeyEnv {
		if v := d.Getenv(name); v != "" {
			return v
		}
	}
	return ""
}
