package main

import (
	"bytes"
	"context"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Cyclone1070/renban/internal/config"
	"github.com/Cyclone1070/renban/internal/fsutil"
	"github.com/Cyclone1070/renban/internal/metadata"
	"github.com/Cyclone1070/renban/internal/provider"
	"github.com/Cyclone1070/renban/internal/provider/gemini"
	"github.com/Cyclone1070/renban/internal/testing/testhelpers"
	"github.com/Cyclone1070/renban/internal/ui"
)

type fakeProvider struct {
	summary string
	order   []int
}

func (f *fakeProvider) Summarize(context.Context, string) (string, error) { return f.summary, nil }
func (f *fakeProvider) Order(context.Context, []string) ([]int, error) { return f.order, nil }

type fakeLister struct {
	models []gemini.ModelInfo
	err    error
}

func (f *fakeLister) ListModels(context.Context) ([]gemini.ModelInfo, error) { return f.models, f.err }

type harness struct {
	deps     Dependencies
	stdout   *bytes.Buffer
	stderr   *bytes.Buffer
	env      map[string]string
	cfg      *config.Config
	answer   bool
	asked    int
	gotKey   string
	gotModel string
	provider *fakeProvider
	terminal bool
}

func newHarness() *harness {
	h := &harness{
		stdout:   &bytes.Buffer{},
		stderr:   &bytes.Buffer{},
		env:      map[string]string{},
		cfg:      config.DefaultConfig(),
		provider: &fakeProvider{summary: "Meeting Notes", order: []int{1, 0}},
	}
	h.deps = Dependencies{
		Stdin:      strings.NewReader(""),
		Stdout:     h.stdout,
		Stderr:     h.stderr,
		Getenv:     func(k string) string { return h.env[k] },
		LoadConfig: func() (*config.Config, error) { return h.cfg, nil },
		FS:         fsutil.NewOSFileSystem(),
		Author:     metadata.NewExtractor(),
		NewProvider: func(_ context.Context, apiKey, model string) (provider.Provider, error) {
			h.gotKey, h.gotModel = apiKey, model
			return h.provider, nil
		},
		NewModelLister: func(context.Context, string) (modelLister, error) {
			return &fakeLister{models: []gemini.ModelInfo{{Name: "gemini-2.5-flash", InputTokenLimit: 1048576, OutputTokenLimit: 65536}}}, nil
		},
		IsTerminal: func(io.Reader) bool { return h.terminal },
		Confirm: func(context.Context, string, string, ui.Styles) (bool, error) {
			h.asked++
			return h.answer, nil
		},
	}
	return h
}

func (h *harness) run(args ...string) int {
	return execute(context.Background(), append(args, "--no-color"), h.deps)
}

// --- HAPPY PATH TESTS ---

func TestExecute_Yes_RenamesSequentially(t *testing.T) {
	root := testhelpers.CreateTree(t, "b.txt", "a.txt", "c.txt")
	h := newHarness()

	code := h.run(root, "--yes")

	assert.Equal(t, 0, code, h.stderr.String())
	assert.Equal(t, []string{"001.txt", "002.txt", "003.txt"}, testhelpers.ListTree(t, root))
	assert.Contains(t, h.stdout.String(), "3 renamed")
	assert.Zero(t, h.asked)
}

func TestExecute_DryRun_LeavesFilesAlone(t *testing.T) {
	root := testhelpers.CreateTree(t, "b.txt", "a.txt")
	h := newHarness()

	code := h.run(root, "--dry-run")

	assert.Equal(t, 0, code)
	assert.Equal(t, []string{"a.txt", "b.txt"}, testhelpers.ListTree(t, root))
	assert.Contains(t, h.stdout.String(), "001.txt")
	assert.Contains(t, h.stdout.String(), "2 to rename")
}

func TestExecute_ConfirmYes_Applies(t *testing.T) {
	root := testhelpers.CreateTree(t, "a.txt")
	h := newHarness()
	h.terminal, h.answer = true, true

	code := h.run(root)

	assert.Equal(t, 0, code)
	assert.Equal(t, 1, h.asked)
	assert.Equal(t, []string{"001.txt"}, testhelpers.ListTree(t, root))
}

func TestExecute_ConfirmNo_Aborts(t *testing.T) {
	root := testhelpers.CreateTree(t, "a.txt")
	h := newHarness()
	h.terminal, h.answer = true, false

	code := h.run(root)

	assert.Equal(t, 0, code)
	assert.Equal(t, []string{"a.txt"}, testhelpers.ListTree(t, root))
	assert.Contains(t, h.stdout.String(), "Aborted")
}

func TestExecute_NothingToRename_SkipsConfirmation(t *testing.T) {
	root := testhelpers.CreateTree(t, "001.txt")
	h := newHarness()
	h.terminal = true

	code := h.run(root)

	assert.Equal(t, 0, code)
	assert.Zero(t, h.asked)
	assert.Contains(t, h.stdout.String(), "Nothing to rename.")
}

func TestExecute_ConfigAndFlags_LayeredOverDefaults(t *testing.T) {
	root := testhelpers.CreateTree(t, "a.txt")
	h := newHarness()
	h.cfg.Rename.Digits = 2
	h.cfg.Rename.Start = 5

	require.Equal(t, 0, h.run(root, "--yes"))
	assert.Equal(t, []string{"05.txt"}, testhelpers.ListTree(t, root))

	require.Equal(t, 0, h.run(root, "--yes", "--digits", "4", "--prefix", "x_"))
	assert.Equal(t, []string{"x_0005.txt"}, testhelpers.ListTree(t, root))
}

func TestExecute_ExtensionAndRecursiveFlags(t *testing.T) {
	root := testhelpers.CreateTree(t, "a.jpg", "b.txt", "sub/c.JPG")
	h := newHarness()

	code := h.run(root, "--yes", "-r", "--ext", "jpg")

	assert.Equal(t, 0, code)
	assert.Equal(t, []string{"001.jpg", "b.txt", "sub/002.JPG"}, testhelpers.ListTree(t, root))
}

func TestExecute_AISummary_UsesProviderWithEnvKey(t *testing.T) {
	root := testhelpers.CreateTree(t, "notes.txt")
	h := newHarness()
	h.env["GOOGLE_API_KEY"] = "google-key"

	code := h.run(root, "--yes", "--mode", "ai-summary", "--model", "gemini-test")

	assert.Equal(t, 0, code)
	assert.Equal(t, "google-key", h.gotKey)
	assert.Equal(t, "gemini-test", h.gotModel)
	assert.Equal(t, []string{"Meeting_Notes.txt"}, testhelpers.ListTree(t, root))
}

func TestExecute_AISort_GeminiKeyPreferred(t *testing.T) {
	root := testhelpers.CreateTree(t, "a.txt", "b.txt")
	h := newHarness()
	h.env["GEMINI_API_KEY"] = "gemini-key"
	h.env["GOOGLE_API_KEY"] = "google-key"

	code := h.run(root, "--yes", "-m", "ai-sort")

	assert.Equal(t, 0, code)
	assert.Equal(t, "gemini-key", h.gotKey)
	assert.Equal(t, h.cfg.AI.Model, h.gotModel)
	assert.Equal(t, "b.txt", testhelpers.ReadContent(t, root, "001.txt"))
}

func TestExecute_AIWithoutKey_FallsBackWithNotice(t *testing.T) {
	root := testhelpers.CreateTree(t, "b.txt", "a.txt")
	h := newHarness()

	code := h.run(root, "--yes", "-m", "ai-sort")

	assert.Equal(t, 0, code)
	assert.Empty(t, h.gotKey)
	assert.Equal(t, "a.txt", testhelpers.ReadContent(t, root, "001.txt"))
	assert.Contains(t, h.stdout.String(), "keeping selection order")
}

func TestExecute_Models_ListsModels(t *testing.T) {
	h := newHarness()
	h.env["GEMINI_API_KEY"] = "k"

	code := h.run("models")

	assert.Equal(t, 0, code)
	assert.Contains(t, h.stdout.String(), "gemini-2.5-flash")
	assert.Contains(t, h.stdout.String(), "1048576")
}

// --- ERROR TESTS ---

func TestExecute_NonTerminalWithoutYes_Fails(t *testing.T) {
	root := testhelpers.CreateTree(t, "a.txt")
	h := newHarness()

	code := h.run(root)

	assert.Equal(t, 1, code)
	assert.Contains(t, h.stderr.String(), "--yes")
	assert.Equal(t, []string{"a.txt"}, testhelpers.ListTree(t, root))
}

func TestExecute_MissingDirectory_Fails(t *testing.T) {
	h := newHarness()

	code := h.run(filepath.Join(t.TempDir(), "missing"), "--yes")

	assert.Equal(t, 1, code)
	assert.Contains(t, h.stderr.String(), "does not exist")
}

func TestExecute_UnknownMode_Fails(t *testing.T) {
	h := newHarness()

	code := h.run(t.TempDir(), "--mode", "random")

	assert.Equal(t, 1, code)
	assert.Contains(t, h.stderr.String(), "unknown rename mode")
}

func TestExecute_InvalidDateFormat_Fails(t *testing.T) {
	h := newHarness()

	code := h.run(t.TempDir(), "--mode", "date", "--date-format", "%Q")

	assert.Equal(t, 1, code)
}

func TestExecute_NoArgs_Fails(t *testing.T) {
	h := newHarness()

	assert.Equal(t, 1, execute(context.Background(), []string{"--no-color"}, h.deps))
}

func TestExecute_ModelsWithoutKey_Fails(t *testing.T) {
	h := newHarness()

	code := h.run("models")

	assert.Equal(t, 1, code)
	assert.Contains(t, h.stderr.String(), "GEMINI_API_KEY")
}

func TestExecute_ModelsRateLimited_SuggestsRetry(t *testing.T) {
	h := newHarness()
	h.env["GEMINI_API_KEY"] = "k"
	h.deps.NewModelLister = func(context.Context, string) (modelLister, error) {
		return &fakeLister{err: &provider.ProviderError{Code: provider.ErrorCodeRateLimit, Message: "quota", Retryable: true}}, nil
	}

	code := h.run("models")

	assert.Equal(t, 1, code)
	assert.Contains(t, h.stderr.String(), "try again")
}

func TestExecute_DirectoryNamedModels_ReachedWithDotSlash(t *testing.T) {
	root := testhelpers.CreateTree(t, "models/a.txt")
	t.Chdir(root)
	h := newHarness()

	code := h.run("./models", "--yes")

	assert.Equal(t, 0, code, h.stderr.String())
	assert.Equal(t, []string{"models/001.txt"}, testhelpers.ListTree(t, root))
}
