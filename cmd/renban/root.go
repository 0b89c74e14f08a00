package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/Cyclone1070/renban/internal/config"
	"github.com/Cyclone1070/renban/internal/orchestrator"
	"github.com/Cyclone1070/renban/internal/provider"
	"github.com/Cyclone1070/renban/internal/report"
	"github.com/Cyclone1070/renban/internal/strategy"
	"github.com/Cyclone1070/renban/internal/ui"
	"github.com/Cyclone1070/renban/internal/ui/services"
)

const (
	previewWidth    = 100
	confirmQuestion = "Apply these renames?"
)

var (
	ErrConfirmationRequired = errors.Base("stdin is not a terminal; pass --yes to apply without confirmation")
	ErrNoAPIKey             = errors.Base("GEMINI_API_KEY or GOOGLE_API_KEY must be set")
)

// rootOpts are the flag values of the root command.
type rootOpts struct {
	mode       string
	recursive  bool
	extensions []string
	include    []string
	exclude    []string
	gitignore  bool
	prefix     string
	suffix     string
	start      int
	digits     int
	dateKind   string
	dateFormat string
	dryRun     bool
	yes        bool
	verbose    bool
	model      string
	noColor    bool
}

// execute runs the CLI and returns the process exit code.
func execute(ctx context.Context, args []string, deps Dependencies) int {
	cmd := newRootCmd(deps)
	cmd.SetArgs(args)
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd(deps Dependencies) *cobra.Command {
	opts := &rootOpts{}

	cmd := &cobra.Command{
		Use:   "renban [flags] DIR",
		Short: "Batch-rename the files of a directory",
		Long: `renban renames every matching file in DIR using one naming mode:

  simple      zero-padded sequence numbers (001, 002, ...)
  date        modification or creation timestamp
  size        byte count (size_1024B)
  author      author recorded in .docx or JPEG/TIFF metadata
  ai-summary  a short AI-written summary of text files
  ai-sort     sequence numbers in an AI-chosen order

A preview is always shown first. Existing names are never overwritten;
colliding names get _1, _2, ... appended.

"renban models" lists the Gemini models; to rename a directory named
models, pass it as ./models.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			cmd.SetContext(newLogger(deps.Stderr, opts.verbose).WithContext(cmd.Context()))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRename(cmd, args[0], opts, deps)
		},
	}
	cmd.SetIn(deps.Stdin)
	cmd.SetOut(deps.Stdout)
	cmd.SetErr(deps.Stderr)

	f := cmd.Flags()
	f.StringVarP(&opts.mode, "mode", "m", strategy.KindSequential.String(), "naming mode: simple, date, size, author, ai-summary, ai-sort")
	f.BoolVarP(&opts.recursive, "recursive", "r", false, "include files in subdirectories")
	f.StringSliceVar(&opts.extensions, "ext", nil, "only rename these extensions (repeatable, comma separated)")
	f.StringArrayVar(&opts.include, "include", nil, "only rename paths matching this glob (repeatable)")
	f.StringArrayVar(&opts.exclude, "exclude", nil, "skip paths matching this glob (repeatable)")
	f.BoolVar(&opts.gitignore, "gitignore", false, "skip files ignored by DIR/.gitignore")
	f.StringVar(&opts.prefix, "prefix", "", "text placed before every new name")
	f.StringVar(&opts.suffix, "suffix", "", "text placed after every new name, before the extension")
	f.IntVar(&opts.start, "start", 1, "first sequence number (simple, ai-sort)")
	f.IntVar(&opts.digits, "digits", 3, "zero-padding width of sequence numbers (simple, ai-sort)")
	f.StringVar(&opts.dateKind, "date-kind", string(strategy.DateModified), "timestamp for date mode: modified or created")
	f.StringVar(&opts.dateFormat, "date-format", strategy.DefaultDateFormat, "strftime pattern for date mode")
	f.BoolVar(&opts.dryRun, "dry-run", false, "show the preview and exit")
	f.BoolVarP(&opts.yes, "yes", "y", false, "apply without asking for confirmation")
	f.StringVar(&opts.model, "model", "", "Gemini model for the ai modes")
	pf := cmd.PersistentFlags()
	pf.BoolVar(&opts.noColor, "no-color", false, "disable colored output")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "log every decision to stderr")

	cmd.AddCommand(newModelsCmd(deps))
	return cmd
}

func newLogger(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}).
		Level(level).With().Timestamp().Logger()
}

func runRename(cmd *cobra.Command, root string, opts *rootOpts, deps Dependencies) error {
	ctx := cmd.Context()
	log := zerolog.Ctx(ctx)

	cfg, err := deps.LoadConfig()
	if err != nil {
		log.Warn().Err(err).Msg("ignoring config file, using defaults")
		cfg = config.DefaultConfig()
	}

	runCfg, err := buildRunConfig(cmd, root, opts, cfg)
	if err != nil {
		return err
	}

	orchDeps := orchestrator.Dependencies{FS: deps.FS, Author: deps.Author}
	if runCfg.Mode.NeedsAI() {
		ai, err := newAI(ctx, deps, modelName(cmd, opts, cfg))
		if err != nil {
			log.Warn().Err(err).Msg("AI capability not available")
		} else {
			orchDeps.Summarizer, orchDeps.Orderer = ai, ai
		}
	}

	orch, err := orchestrator.New(runCfg, orchDeps)
	if err != nil {
		return err
	}

	preview, err := orch.ComputeDryRun(ctx)
	if err != nil {
		return err
	}

	noColor := opts.noColor || cfg.UI.NoColor
	styles := report.NewStyles(noColor)
	out := cmd.OutOrStdout()

	rendered, err := services.RenderMarkdown(report.Markdown(preview), previewWidth, services.NewGlamourRenderer(noColor))
	if err != nil {
		log.Debug().Err(err).Msg("markdown rendering failed, showing plain preview")
	}

	if opts.dryRun {
		fmt.Fprintln(out, rendered)
		fmt.Fprintln(out, report.Summary(preview, styles))
		return nil
	}
	if !preview.HasChanges() {
		fmt.Fprintln(out, rendered)
		fmt.Fprintln(out, "Nothing to rename.")
		return nil
	}

	if !opts.yes {
		if !deps.IsTerminal(cmd.InOrStdin()) {
			fmt.Fprintln(out, rendered)
			return ErrConfirmationRequired
		}
		ok, err := deps.Confirm(ctx, rendered, confirmQuestion, ui.DefaultStyles(noColor))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(out, "Aborted. No files were renamed.")
			return nil
		}
	} else {
		fmt.Fprintln(out, rendered)
	}

	result, err := orch.ApplyPlan(ctx)
	if result != nil {
		printResult(out, result, styles)
	}
	return err
}

func printResult(w io.Writer, r *orchestrator.Report, styles report.Styles) {
	fmt.Fprintln(w, report.Summary(r, styles))
	for _, o := range r.Failures() {
		fmt.Fprintf(w, "  %s: %v\n", o.Source, o.Err)
	}
}

// buildRunConfig layers flags over the config file over built-in defaults.
func buildRunConfig(cmd *cobra.Command, root string, opts *rootOpts, cfg *config.Config) (orchestrator.RunConfig, error) {
	bag := map[string]any{
		"root":                   root,
		"mode":                   opts.mode,
		"recursive":              opts.recursive,
		"extensions":             opts.extensions,
		"include":                opts.include,
		"exclude":                opts.exclude,
		"gitignore":              opts.gitignore,
		"prefix":                 opts.prefix,
		"suffix":                 opts.suffix,
		"start":                  cfg.Rename.Start,
		"digits":                 cfg.Rename.Digits,
		"date_kind":              cfg.Rename.DateKind,
		"date_format":            cfg.Rename.DateFormat,
		"summary_max_chars":      cfg.AI.SummaryMaxChars,
		"max_collision_attempts": cfg.Rename.MaxCollisionAttempts,
	}

	f := cmd.Flags()
	if f.Changed("start") {
		bag["start"] = opts.start
	}
	if f.Changed("digits") {
		bag["digits"] = opts.digits
	}
	if f.Changed("date-kind") {
		bag["date_kind"] = opts.dateKind
	}
	if f.Changed("date-format") {
		bag["date_format"] = opts.dateFormat
	}
	return orchestrator.DecodeRunConfig(bag)
}

func modelName(cmd *cobra.Command, opts *rootOpts, cfg *config.Config) string {
	if cmd.Flags().Changed("model") {
		return opts.model
	}
	return cfg.AI.Model
}

func newAI(ctx context.Context, deps Dependencies, model string) (provider.Provider, error) {
	key := deps.apiKey()
	if key == "" {
		return nil, ErrNoAPIKey
	}
	p, err := deps.NewProvider(ctx, key, model)
	if err != nil {
		return nil, errors.Errorf("creating Gemini client: %w", err)
	}
	return p, nil
}
